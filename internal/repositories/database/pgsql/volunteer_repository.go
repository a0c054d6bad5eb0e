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

type PgxVolunteerRepository struct {
	BaseRepository
}

// newPgxVolunteerRepository creates a new repository for volunteer data.
func newPgxVolunteerRepository(pool *pgxpool.Pool) portsrepo.VolunteerRepositoryFacade {
	return &PgxVolunteerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.VolunteerRepositoryFacade = (*PgxVolunteerRepository)(nil)

const volunteerColumns = `volunteer_id, email, cedula, name, phone, birth_date, created_at, created_by, last_updated_at, last_updated_by, deleted_at`

func scanVolunteer(row pgx.Row) (models.Volunteer, error) {
	var m models.Volunteer
	err := row.Scan(
		&m.VolunteerID,
		&m.Email,
		&m.Cedula,
		&m.Name,
		&m.Phone,
		&m.BirthDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
	)
	return m, err
}

// SaveVolunteer persists a new volunteer.
func (r *PgxVolunteerRepository) SaveVolunteer(ctx context.Context, v domain.Volunteer) error {
	m := mapping.ToModelVolunteer(v)

	query := `
		INSERT INTO volunteers (volunteer_id, email, cedula, name, phone, birth_date, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.VolunteerID,
		m.Email,
		m.Cedula,
		m.Name,
		m.Phone,
		m.BirthDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("volunteer %s", m.VolunteerID))
	}
	return nil
}

// UpdateVolunteer updates the mutable fields of a volunteer.
func (r *PgxVolunteerRepository) UpdateVolunteer(ctx context.Context, v domain.Volunteer) error {
	m := mapping.ToModelVolunteer(v)

	query := `
		UPDATE volunteers
		SET email = $2, cedula = $3, name = $4, phone = $5, birth_date = $6, last_updated_at = $7, last_updated_by = $8
		WHERE volunteer_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.VolunteerID,
		m.Email,
		m.Cedula,
		m.Name,
		m.Phone,
		m.BirthDate,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("volunteer %s", m.VolunteerID))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindVolunteerByID retrieves a non-deleted volunteer by ID.
func (r *PgxVolunteerRepository) FindVolunteerByID(ctx context.Context, volunteerID string) (*domain.Volunteer, error) {
	query := `
		SELECT ` + volunteerColumns + `
		FROM volunteers
		WHERE volunteer_id = $1 AND deleted_at IS NULL;
	`
	m, err := scanVolunteer(r.Pool.QueryRow(ctx, query, volunteerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find volunteer %s: %w", volunteerID, err)
	}

	d := mapping.ToDomainVolunteer(m)
	return &d, nil
}

// FindVolunteerByEmail retrieves a non-deleted volunteer by email.
func (r *PgxVolunteerRepository) FindVolunteerByEmail(ctx context.Context, email string) (*domain.Volunteer, error) {
	query := `
		SELECT ` + volunteerColumns + `
		FROM volunteers
		WHERE lower(email) = lower($1) AND deleted_at IS NULL;
	`
	m, err := scanVolunteer(r.Pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find volunteer by email: %w", err)
	}

	d := mapping.ToDomainVolunteer(m)
	return &d, nil
}

// FindVolunteerByCedula retrieves a non-deleted volunteer by cedula.
func (r *PgxVolunteerRepository) FindVolunteerByCedula(ctx context.Context, cedula string) (*domain.Volunteer, error) {
	query := `
		SELECT ` + volunteerColumns + `
		FROM volunteers
		WHERE cedula = $1 AND deleted_at IS NULL;
	`
	m, err := scanVolunteer(r.Pool.QueryRow(ctx, query, cedula))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find volunteer by cedula: %w", err)
	}

	d := mapping.ToDomainVolunteer(m)
	return &d, nil
}

// FindVolunteers retrieves a paginated list of non-deleted volunteers.
func (r *PgxVolunteerRepository) FindVolunteers(ctx context.Context, limit int, offset int) ([]domain.Volunteer, error) {
	query := `
		SELECT ` + volunteerColumns + `
		FROM volunteers
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query volunteers: %w", err)
	}
	defer rows.Close()

	modelVolunteers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Volunteer, error) {
		return scanVolunteer(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan volunteers: %w", err)
	}
	return mapping.ToDomainVolunteerSlice(modelVolunteers), nil
}

// MarkVolunteerDeleted soft-deletes a volunteer.
func (r *PgxVolunteerRepository) MarkVolunteerDeleted(ctx context.Context, volunteerID string, deletedAt time.Time, deletedBy string) error {
	query := `
		UPDATE volunteers
		SET deleted_at = $2, last_updated_at = $2, last_updated_by = $3
		WHERE volunteer_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, volunteerID, deletedAt, deletedBy)
	if err != nil {
		return fmt.Errorf("failed to mark volunteer %s deleted: %w", volunteerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
