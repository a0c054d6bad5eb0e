package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fundacion-admin/backend/internal/apperrors"
	"github.com/fundacion-admin/backend/internal/core/domain"
	portsrepo "github.com/fundacion-admin/backend/internal/core/ports/repositories"
	"github.com/fundacion-admin/backend/internal/models"
	"github.com/fundacion-admin/backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxProjectRepository struct {
	BaseRepository
}

// newPgxProjectRepository creates a new repository for project data.
func newPgxProjectRepository(pool *pgxpool.Pool) portsrepo.ProjectRepositoryFacade {
	return &PgxProjectRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ProjectRepositoryFacade = (*PgxProjectRepository)(nil)

const projectColumns = `project_id, title, place, area, description, created_at, created_by, last_updated_at, last_updated_by, deleted_at`

func scanProject(row pgx.Row) (models.Project, error) {
	var m models.Project
	err := row.Scan(
		&m.ProjectID,
		&m.Title,
		&m.Place,
		&m.Area,
		&m.Description,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
	)
	return m, err
}

// SaveProject persists a new project.
func (r *PgxProjectRepository) SaveProject(ctx context.Context, p domain.Project) error {
	m := mapping.ToModelProject(p)

	query := `
		INSERT INTO projects (project_id, title, place, area, description, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ProjectID,
		m.Title,
		m.Place,
		m.Area,
		m.Description,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("project %s", m.ProjectID))
	}
	return nil
}

// UpdateProject updates the mutable fields of a project.
func (r *PgxProjectRepository) UpdateProject(ctx context.Context, p domain.Project) error {
	m := mapping.ToModelProject(p)

	query := `
		UPDATE projects
		SET title = $2, place = $3, area = $4, description = $5, last_updated_at = $6, last_updated_by = $7
		WHERE project_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ProjectID,
		m.Title,
		m.Place,
		m.Area,
		m.Description,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("project %s", m.ProjectID))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindProjectByID retrieves a non-deleted project by ID.
func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE project_id = $1 AND deleted_at IS NULL;
	`
	m, err := scanProject(r.Pool.QueryRow(ctx, query, projectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find project %s: %w", projectID, err)
	}

	d := mapping.ToDomainProject(m)
	return &d, nil
}

// FindProjectByTitlePlaceArea locates a project by its natural key, used for
// duplicate detection. The comparison is case-insensitive.
func (r *PgxProjectRepository) FindProjectByTitlePlaceArea(ctx context.Context, title, place, area string) (*domain.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE lower(title) = lower($1) AND lower(place) = lower($2) AND lower(area) = lower($3)
		  AND deleted_at IS NULL;
	`
	m, err := scanProject(r.Pool.QueryRow(ctx, query, title, place, area))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find project by title/place/area: %w", err)
	}

	d := mapping.ToDomainProject(m)
	return &d, nil
}

// FindProjects retrieves a paginated list of non-deleted projects.
func (r *PgxProjectRepository) FindProjects(ctx context.Context, limit int, offset int) ([]domain.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	modelProjects, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Project, error) {
		return scanProject(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan projects: %w", err)
	}
	return mapping.ToDomainProjectSlice(modelProjects), nil
}

// MarkProjectDeleted soft-deletes a project.
func (r *PgxProjectRepository) MarkProjectDeleted(ctx context.Context, projectID string, deletedAt time.Time, deletedBy string) error {
	query := `
		UPDATE projects
		SET deleted_at = $2, last_updated_at = $2, last_updated_by = $3
		WHERE project_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, projectID, deletedAt, deletedBy)
	if err != nil {
		return fmt.Errorf("failed to mark project %s deleted: %w", projectID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
