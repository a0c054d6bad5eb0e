package repositories

import (
	"context"
	"time"

	"github.com/fundacion-admin/backend/internal/core/domain"
)

// UserReader defines read operations for admin users.
type UserReader interface {
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)
}

// UserWriter defines write operations for admin users.
type UserWriter interface {
	SaveUser(ctx context.Context, user domain.User) error
	UpdateUser(ctx context.Context, user domain.User) error
	MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error
}

// UserRepositoryFacade combines all user repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}

// CollaboratorRepositoryFacade manages collaborator accounts.
type CollaboratorRepositoryFacade interface {
	SaveCollaborator(ctx context.Context, c domain.Collaborator) error
	UpdateCollaborator(ctx context.Context, c domain.Collaborator) error
	FindCollaboratorByID(ctx context.Context, collaboratorID string) (*domain.Collaborator, error)
	FindCollaboratorByEmail(ctx context.Context, email string) (*domain.Collaborator, error)
	FindCollaboratorByCedula(ctx context.Context, cedula string) (*domain.Collaborator, error)
	FindCollaborators(ctx context.Context, limit int, offset int) ([]domain.Collaborator, error)
	MarkCollaboratorDeleted(ctx context.Context, collaboratorID string, deletedAt time.Time, deletedBy string) error
}

// RoleRepositoryFacade manages roles and their permission sets.
type RoleRepositoryFacade interface {
	SaveRole(ctx context.Context, role domain.Role) error
	UpdateRole(ctx context.Context, role domain.Role) error
	FindRoleByID(ctx context.Context, roleID string) (*domain.Role, error)
	FindRoles(ctx context.Context) ([]domain.Role, error)
	DeleteRole(ctx context.Context, roleID string) error

	// FindPermissions returns the permission IDs currently attached to a role.
	FindPermissions(ctx context.Context, roleID string) ([]string, error)

	// ApplyPermissionDiff adds and removes role-permission links in one
	// database transaction.
	ApplyPermissionDiff(ctx context.Context, roleID string, add []string, remove []string) error
}

// AuditRecorder appends entries to the audit trail.
type AuditRecorder interface {
	RecordAudit(ctx context.Context, entry domain.AuditEntry) error
}
