package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fundacion-admin/backend/internal/apperrors"
	"github.com/fundacion-admin/backend/internal/core/domain"
	portsrepo "github.com/fundacion-admin/backend/internal/core/ports/repositories"
	portssvc "github.com/fundacion-admin/backend/internal/core/ports/services"
	"github.com/fundacion-admin/backend/internal/dto"
	"github.com/google/uuid"
)

type projectService struct {
	BaseService
	repo portsrepo.ProjectRepositoryFacade
}

// NewProjectService creates the project service.
func NewProjectService(repo portsrepo.ProjectRepositoryFacade, audit portsrepo.AuditRecorder) portssvc.ProjectSvcFacade {
	return &projectService{
		BaseService: BaseService{Audit: audit},
		repo:        repo,
	}
}

// Ensure implementation matches interface
var _ portssvc.ProjectSvcFacade = (*projectService)(nil)

// CreateProject registers a project. Title+place+area acts as a natural key;
// a second project with the same triple is rejected.
func (s *projectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest, creatorUserID string) (*domain.Project, error) {
	if _, err := s.repo.FindProjectByTitlePlaceArea(ctx, req.Title, req.Place, req.Area); err == nil {
		return nil, fmt.Errorf("%w: project %q already exists at %s/%s", apperrors.ErrDuplicate, req.Title, req.Place, req.Area)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	p := domain.Project{
		ProjectID:   uuid.NewString(),
		Title:       req.Title,
		Place:       req.Place,
		Area:        req.Area,
		Description: req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.repo.SaveProject(ctx, p); err != nil {
		s.LogError(ctx, err, "Failed to save project", slog.String("title", req.Title))
		return nil, err
	}

	s.LogInfo(ctx, "Project created", slog.String("project_id", p.ProjectID))
	s.RecordAudit(ctx, creatorUserID, "create", "project", p.ProjectID)
	return &p, nil
}

// UpdateProject changes a project's mutable fields, keeping the natural key
// unique.
func (s *projectService) UpdateProject(ctx context.Context, projectID string, req dto.UpdateProjectRequest, updaterUserID string) (*domain.Project, error) {
	p, err := s.repo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Place != nil {
		p.Place = *req.Place
	}
	if req.Area != nil {
		p.Area = *req.Area
	}
	if req.Description != nil {
		p.Description = *req.Description
	}

	if req.Title != nil || req.Place != nil || req.Area != nil {
		existing, err := s.repo.FindProjectByTitlePlaceArea(ctx, p.Title, p.Place, p.Area)
		if err == nil && existing.ProjectID != projectID {
			return nil, fmt.Errorf("%w: project %q already exists at %s/%s", apperrors.ErrDuplicate, p.Title, p.Place, p.Area)
		} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
	}

	p.LastUpdatedAt = time.Now()
	p.LastUpdatedBy = updaterUserID

	if err := s.repo.UpdateProject(ctx, *p); err != nil {
		s.LogError(ctx, err, "Failed to update project", slog.String("project_id", projectID))
		return nil, err
	}

	s.RecordAudit(ctx, updaterUserID, "update", "project", projectID)
	return p, nil
}

// GetProject retrieves a project by ID.
func (s *projectService) GetProject(ctx context.Context, projectID string) (*domain.Project, error) {
	return s.repo.FindProjectByID(ctx, projectID)
}

// ListProjects retrieves a paginated list of projects.
func (s *projectService) ListProjects(ctx context.Context, limit int, offset int) ([]domain.Project, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.repo.FindProjects(ctx, limit, offset)
}

// DeleteProject soft-deletes a project.
func (s *projectService) DeleteProject(ctx context.Context, projectID string, deleterUserID string) error {
	if err := s.repo.MarkProjectDeleted(ctx, projectID, time.Now(), deleterUserID); err != nil {
		s.LogError(ctx, err, "Failed to delete project", slog.String("project_id", projectID))
		return err
	}
	s.RecordAudit(ctx, deleterUserID, "delete", "project", projectID)
	return nil
}
