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

type volunteerService struct {
	BaseService
	repo portsrepo.VolunteerRepositoryFacade
}

// NewVolunteerService creates the volunteer registry service.
func NewVolunteerService(repo portsrepo.VolunteerRepositoryFacade, audit portsrepo.AuditRecorder) portssvc.VolunteerSvcFacade {
	return &volunteerService{
		BaseService: BaseService{Audit: audit},
		repo:        repo,
	}
}

// Ensure implementation matches interface
var _ portssvc.VolunteerSvcFacade = (*volunteerService)(nil)

// CreateVolunteer registers a volunteer. Email and cedula must be unused.
func (s *volunteerService) CreateVolunteer(ctx context.Context, req dto.CreateVolunteerRequest, creatorUserID string) (*domain.Volunteer, error) {
	if _, err := s.repo.FindVolunteerByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if _, err := s.repo.FindVolunteerByCedula(ctx, req.Cedula); err == nil {
		return nil, fmt.Errorf("%w: cedula already registered", apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	v := domain.Volunteer{
		VolunteerID: uuid.NewString(),
		Email:       req.Email,
		Cedula:      req.Cedula,
		Name:        req.Name,
		Phone:       req.Phone,
		BirthDate:   req.BirthDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.repo.SaveVolunteer(ctx, v); err != nil {
		s.LogError(ctx, err, "Failed to save volunteer", slog.String("email", req.Email))
		return nil, err
	}

	s.LogInfo(ctx, "Volunteer created", slog.String("volunteer_id", v.VolunteerID))
	s.RecordAudit(ctx, creatorUserID, "create", "volunteer", v.VolunteerID)
	return &v, nil
}

// UpdateVolunteer changes a volunteer's mutable fields.
func (s *volunteerService) UpdateVolunteer(ctx context.Context, volunteerID string, req dto.UpdateVolunteerRequest, updaterUserID string) (*domain.Volunteer, error) {
	v, err := s.repo.FindVolunteerByID(ctx, volunteerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		v.Name = *req.Name
	}
	if req.Phone != nil {
		v.Phone = *req.Phone
	}
	v.LastUpdatedAt = time.Now()
	v.LastUpdatedBy = updaterUserID

	if err := s.repo.UpdateVolunteer(ctx, *v); err != nil {
		s.LogError(ctx, err, "Failed to update volunteer", slog.String("volunteer_id", volunteerID))
		return nil, err
	}

	s.RecordAudit(ctx, updaterUserID, "update", "volunteer", volunteerID)
	return v, nil
}

// GetVolunteer retrieves a volunteer by ID.
func (s *volunteerService) GetVolunteer(ctx context.Context, volunteerID string) (*domain.Volunteer, error) {
	return s.repo.FindVolunteerByID(ctx, volunteerID)
}

// ListVolunteers retrieves a paginated list of volunteers.
func (s *volunteerService) ListVolunteers(ctx context.Context, limit int, offset int) ([]domain.Volunteer, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.repo.FindVolunteers(ctx, limit, offset)
}

// DeleteVolunteer soft-deletes a volunteer.
func (s *volunteerService) DeleteVolunteer(ctx context.Context, volunteerID string, deleterUserID string) error {
	if err := s.repo.MarkVolunteerDeleted(ctx, volunteerID, time.Now(), deleterUserID); err != nil {
		s.LogError(ctx, err, "Failed to delete volunteer", slog.String("volunteer_id", volunteerID))
		return err
	}
	s.RecordAudit(ctx, deleterUserID, "delete", "volunteer", volunteerID)
	return nil
}
