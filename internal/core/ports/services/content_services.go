package services

import (
	"context"

	"github.com/fundacion-admin/backend/internal/core/domain"
	"github.com/fundacion-admin/backend/internal/dto"
)

// ProjectSvcFacade manages projects.
type ProjectSvcFacade interface {
	CreateProject(ctx context.Context, req dto.CreateProjectRequest, creatorUserID string) (*domain.Project, error)
	UpdateProject(ctx context.Context, projectID string, req dto.UpdateProjectRequest, updaterUserID string) (*domain.Project, error)
	GetProject(ctx context.Context, projectID string) (*domain.Project, error)
	ListProjects(ctx context.Context, limit int, offset int) ([]domain.Project, error)
	DeleteProject(ctx context.Context, projectID string, deleterUserID string) error
}

// NewsSvcFacade manages news articles.
type NewsSvcFacade interface {
	CreateNews(ctx context.Context, req dto.CreateNewsRequest, creatorUserID string) (*domain.News, error)
	UpdateNews(ctx context.Context, newsID string, req dto.UpdateNewsRequest, updaterUserID string) (*domain.News, error)
	GetNewsBySlug(ctx context.Context, slug string) (*domain.News, error)
	ListNews(ctx context.Context, limit int, offset int) ([]domain.News, error)
	DeleteNews(ctx context.Context, newsID string) error
}

// VolunteerSvcFacade manages volunteers.
type VolunteerSvcFacade interface {
	CreateVolunteer(ctx context.Context, req dto.CreateVolunteerRequest, creatorUserID string) (*domain.Volunteer, error)
	UpdateVolunteer(ctx context.Context, volunteerID string, req dto.UpdateVolunteerRequest, updaterUserID string) (*domain.Volunteer, error)
	GetVolunteer(ctx context.Context, volunteerID string) (*domain.Volunteer, error)
	ListVolunteers(ctx context.Context, limit int, offset int) ([]domain.Volunteer, error)
	DeleteVolunteer(ctx context.Context, volunteerID string, deleterUserID string) error
}
