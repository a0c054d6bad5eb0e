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

type PgxCollaboratorRepository struct {
	BaseRepository
}

// newPgxCollaboratorRepository creates a new repository for collaborator data.
func newPgxCollaboratorRepository(pool *pgxpool.Pool) portsrepo.CollaboratorRepositoryFacade {
	return &PgxCollaboratorRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CollaboratorRepositoryFacade = (*PgxCollaboratorRepository)(nil)

const collaboratorColumns = `collaborator_id, email, cedula, name, phone, birth_date, password_hash, role_id, created_at, created_by, last_updated_at, last_updated_by, deleted_at`

func scanCollaborator(row pgx.Row) (models.Collaborator, error) {
	var m models.Collaborator
	err := row.Scan(
		&m.CollaboratorID,
		&m.Email,
		&m.Cedula,
		&m.Name,
		&m.Phone,
		&m.BirthDate,
		&m.PasswordHash,
		&m.RoleID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
	)
	return m, err
}

// SaveCollaborator persists a new collaborator.
func (r *PgxCollaboratorRepository) SaveCollaborator(ctx context.Context, c domain.Collaborator) error {
	m := mapping.ToModelCollaborator(c)

	query := `
		INSERT INTO collaborators (collaborator_id, email, cedula, name, phone, birth_date, password_hash, role_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CollaboratorID,
		m.Email,
		m.Cedula,
		m.Name,
		m.Phone,
		m.BirthDate,
		m.PasswordHash,
		m.RoleID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("collaborator %s", m.CollaboratorID))
	}
	return nil
}

// UpdateCollaborator updates the mutable fields of a collaborator.
func (r *PgxCollaboratorRepository) UpdateCollaborator(ctx context.Context, c domain.Collaborator) error {
	m := mapping.ToModelCollaborator(c)

	query := `
		UPDATE collaborators
		SET email = $2, cedula = $3, name = $4, phone = $5, birth_date = $6, password_hash = $7, role_id = $8,
			last_updated_at = $9, last_updated_by = $10
		WHERE collaborator_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.CollaboratorID,
		m.Email,
		m.Cedula,
		m.Name,
		m.Phone,
		m.BirthDate,
		m.PasswordHash,
		m.RoleID,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("collaborator %s", m.CollaboratorID))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindCollaboratorByID retrieves a non-deleted collaborator by ID.
func (r *PgxCollaboratorRepository) FindCollaboratorByID(ctx context.Context, collaboratorID string) (*domain.Collaborator, error) {
	query := `
		SELECT ` + collaboratorColumns + `
		FROM collaborators
		WHERE collaborator_id = $1 AND deleted_at IS NULL;
	`
	m, err := scanCollaborator(r.Pool.QueryRow(ctx, query, collaboratorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find collaborator %s: %w", collaboratorID, err)
	}

	d := mapping.ToDomainCollaborator(m)
	return &d, nil
}

// FindCollaboratorByEmail retrieves a non-deleted collaborator by email.
func (r *PgxCollaboratorRepository) FindCollaboratorByEmail(ctx context.Context, email string) (*domain.Collaborator, error) {
	query := `
		SELECT ` + collaboratorColumns + `
		FROM collaborators
		WHERE lower(email) = lower($1) AND deleted_at IS NULL;
	`
	m, err := scanCollaborator(r.Pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find collaborator by email: %w", err)
	}

	d := mapping.ToDomainCollaborator(m)
	return &d, nil
}

// FindCollaboratorByCedula retrieves a non-deleted collaborator by cedula.
func (r *PgxCollaboratorRepository) FindCollaboratorByCedula(ctx context.Context, cedula string) (*domain.Collaborator, error) {
	query := `
		SELECT ` + collaboratorColumns + `
		FROM collaborators
		WHERE cedula = $1 AND deleted_at IS NULL;
	`
	m, err := scanCollaborator(r.Pool.QueryRow(ctx, query, cedula))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find collaborator by cedula: %w", err)
	}

	d := mapping.ToDomainCollaborator(m)
	return &d, nil
}

// FindCollaborators retrieves a paginated list of non-deleted collaborators.
func (r *PgxCollaboratorRepository) FindCollaborators(ctx context.Context, limit int, offset int) ([]domain.Collaborator, error) {
	query := `
		SELECT ` + collaboratorColumns + `
		FROM collaborators
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query collaborators: %w", err)
	}
	defer rows.Close()

	modelCollaborators, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Collaborator, error) {
		return scanCollaborator(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan collaborators: %w", err)
	}
	return mapping.ToDomainCollaboratorSlice(modelCollaborators), nil
}

// MarkCollaboratorDeleted soft-deletes a collaborator.
func (r *PgxCollaboratorRepository) MarkCollaboratorDeleted(ctx context.Context, collaboratorID string, deletedAt time.Time, deletedBy string) error {
	query := `
		UPDATE collaborators
		SET deleted_at = $2, last_updated_at = $2, last_updated_by = $3
		WHERE collaborator_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, collaboratorID, deletedAt, deletedBy)
	if err != nil {
		return fmt.Errorf("failed to mark collaborator %s deleted: %w", collaboratorID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
