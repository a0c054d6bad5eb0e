package repositories

import (
	"context"
	"time"

	"github.com/fundacion-admin/backend/internal/core/domain"
)

// ProjectRepositoryFacade manages the foundation's projects.
type ProjectRepositoryFacade interface {
	SaveProject(ctx context.Context, p domain.Project) error
	UpdateProject(ctx context.Context, p domain.Project) error
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)

	// FindProjectByTitlePlaceArea locates a project by its natural key, used
	// for duplicate detection.
	FindProjectByTitlePlaceArea(ctx context.Context, title, place, area string) (*domain.Project, error)
	FindProjects(ctx context.Context, limit int, offset int) ([]domain.Project, error)
	MarkProjectDeleted(ctx context.Context, projectID string, deletedAt time.Time, deletedBy string) error
}

// NewsRepositoryFacade manages news articles.
type NewsRepositoryFacade interface {
	SaveNews(ctx context.Context, n domain.News) error
	UpdateNews(ctx context.Context, n domain.News) error
	FindNewsByID(ctx context.Context, newsID string) (*domain.News, error)
	FindNewsBySlug(ctx context.Context, slug string) (*domain.News, error)
	FindNews(ctx context.Context, limit int, offset int) ([]domain.News, error)
	DeleteNews(ctx context.Context, newsID string) error
}

// VolunteerRepositoryFacade manages volunteers.
type VolunteerRepositoryFacade interface {
	SaveVolunteer(ctx context.Context, v domain.Volunteer) error
	UpdateVolunteer(ctx context.Context, v domain.Volunteer) error
	FindVolunteerByID(ctx context.Context, volunteerID string) (*domain.Volunteer, error)
	FindVolunteerByEmail(ctx context.Context, email string) (*domain.Volunteer, error)
	FindVolunteerByCedula(ctx context.Context, cedula string) (*domain.Volunteer, error)
	FindVolunteers(ctx context.Context, limit int, offset int) ([]domain.Volunteer, error)
	MarkVolunteerDeleted(ctx context.Context, volunteerID string, deletedAt time.Time, deletedBy string) error
}
