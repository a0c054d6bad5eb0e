package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fundacion-admin/backend/internal/apperrors"
	"github.com/fundacion-admin/backend/internal/core/domain"
	portsrepo "github.com/fundacion-admin/backend/internal/core/ports/repositories"
	"github.com/fundacion-admin/backend/internal/models"
	"github.com/fundacion-admin/backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxRoleRepository struct {
	BaseRepository
}

// newPgxRoleRepository creates a new repository for role data.
func newPgxRoleRepository(pool *pgxpool.Pool) portsrepo.RoleRepositoryFacade {
	return &PgxRoleRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.RoleRepositoryFacade = (*PgxRoleRepository)(nil)

const roleColumns = `role_id, name, description, created_at, created_by, last_updated_at, last_updated_by`

func scanRole(row pgx.Row) (models.Role, error) {
	var m models.Role
	err := row.Scan(
		&m.RoleID,
		&m.Name,
		&m.Description,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveRole persists a new role and its initial permission set.
func (r *PgxRoleRepository) SaveRole(ctx context.Context, role domain.Role) error {
	m := mapping.ToModelRole(role)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO roles (` + roleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = tx.Exec(ctx, query,
		m.RoleID,
		m.Name,
		m.Description,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("role %s", m.RoleID))
	}

	if err := insertPermissions(ctx, tx, m.RoleID, role.Permissions); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit role transaction: %w", err)
	}
	return nil
}

// UpdateRole updates a role's name and description. Permissions change only
// through ApplyPermissionDiff.
func (r *PgxRoleRepository) UpdateRole(ctx context.Context, role domain.Role) error {
	m := mapping.ToModelRole(role)

	query := `
		UPDATE roles
		SET name = $2, description = $3, last_updated_at = $4, last_updated_by = $5
		WHERE role_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.RoleID,
		m.Name,
		m.Description,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("role %s", m.RoleID))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindRoleByID retrieves a role with its permissions.
func (r *PgxRoleRepository) FindRoleByID(ctx context.Context, roleID string) (*domain.Role, error) {
	query := `
		SELECT ` + roleColumns + `
		FROM roles
		WHERE role_id = $1;
	`
	m, err := scanRole(r.Pool.QueryRow(ctx, query, roleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find role %s: %w", roleID, err)
	}

	permissions, err := r.FindPermissions(ctx, roleID)
	if err != nil {
		return nil, err
	}

	d := mapping.ToDomainRole(m, permissions)
	return &d, nil
}

// FindRoles retrieves all roles with their permissions.
func (r *PgxRoleRepository) FindRoles(ctx context.Context) ([]domain.Role, error) {
	query := `
		SELECT ` + roleColumns + `
		FROM roles
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query roles: %w", err)
	}
	defer rows.Close()

	modelRoles, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Role, error) {
		return scanRole(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan roles: %w", err)
	}

	domainRoles := make([]domain.Role, len(modelRoles))
	for i, m := range modelRoles {
		permissions, err := r.FindPermissions(ctx, m.RoleID)
		if err != nil {
			return nil, err
		}
		domainRoles[i] = mapping.ToDomainRole(m, permissions)
	}
	return domainRoles, nil
}

// DeleteRole removes a role and its permission links.
func (r *PgxRoleRepository) DeleteRole(ctx context.Context, roleID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM role_permissions WHERE role_id = $1;`, roleID); err != nil {
		return fmt.Errorf("failed to delete permissions of role %s: %w", roleID, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM roles WHERE role_id = $1;`, roleID)
	if err != nil {
		return fmt.Errorf("failed to delete role %s: %w", roleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit role deletion: %w", err)
	}
	return nil
}

// FindPermissions returns the permission IDs currently attached to a role.
func (r *PgxRoleRepository) FindPermissions(ctx context.Context, roleID string) ([]string, error) {
	query := `
		SELECT permission_id
		FROM role_permissions
		WHERE role_id = $1
		ORDER BY permission_id;
	`
	rows, err := r.Pool.Query(ctx, query, roleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query permissions of role %s: %w", roleID, err)
	}
	defer rows.Close()

	permissions, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (string, error) {
		var p string
		err := row.Scan(&p)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan permissions: %w", err)
	}
	return permissions, nil
}

// ApplyPermissionDiff adds and removes role-permission links in one database
// transaction. The role keeps its untouched permissions throughout, so
// concurrent permission checks never observe an empty set mid-update.
func (r *PgxRoleRepository) ApplyPermissionDiff(ctx context.Context, roleID string, add []string, remove []string) error {
	if len(add) == 0 && len(remove) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if len(remove) > 0 {
		_, err := tx.Exec(ctx, `DELETE FROM role_permissions WHERE role_id = $1 AND permission_id = ANY($2);`, roleID, remove)
		if err != nil {
			return fmt.Errorf("failed to remove permissions from role %s: %w", roleID, err)
		}
	}

	if err := insertPermissions(ctx, tx, roleID, add); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit permission diff: %w", err)
	}
	return nil
}

func insertPermissions(ctx context.Context, tx pgx.Tx, roleID string, permissions []string) error {
	for _, p := range permissions {
		_, err := tx.Exec(ctx, `
			INSERT INTO role_permissions (role_id, permission_id)
			VALUES ($1, $2)
			ON CONFLICT (role_id, permission_id) DO NOTHING;
		`, roleID, p)
		if err != nil {
			return fmt.Errorf("failed to add permission %s to role %s: %w", p, roleID, err)
		}
	}
	return nil
}
