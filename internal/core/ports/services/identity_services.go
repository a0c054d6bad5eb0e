package services

import (
	"context"

	"github.com/fundacion-admin/backend/internal/core/domain"
	"github.com/fundacion-admin/backend/internal/dto"
)

// CollaboratorSvcFacade manages collaborator accounts.
type CollaboratorSvcFacade interface {
	CreateCollaborator(ctx context.Context, req dto.CreateCollaboratorRequest, creatorUserID string) (*domain.Collaborator, error)
	UpdateCollaborator(ctx context.Context, collaboratorID string, req dto.UpdateCollaboratorRequest, updaterUserID string) (*domain.Collaborator, error)
	GetCollaborator(ctx context.Context, collaboratorID string) (*domain.Collaborator, error)
	ListCollaborators(ctx context.Context, limit int, offset int) ([]domain.Collaborator, error)
	DeleteCollaborator(ctx context.Context, collaboratorID string, deleterUserID string) error
}

// UserSvcFacade manages admin users.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error)
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterUserID string) (*domain.User, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)
	DeleteUser(ctx context.Context, userID string, deleterUserID string) error
}

// RoleSvcFacade manages roles and their permission sets.
type RoleSvcFacade interface {
	CreateRole(ctx context.Context, req dto.CreateRoleRequest, creatorUserID string) (*domain.Role, error)
	UpdateRole(ctx context.Context, roleID string, req dto.UpdateRoleRequest, updaterUserID string) (*domain.Role, error)
	GetRole(ctx context.Context, roleID string) (*domain.Role, error)
	ListRoles(ctx context.Context) ([]domain.Role, error)
	DeleteRole(ctx context.Context, roleID string) error

	// ReplacePermissions swaps the role's permission set for the supplied
	// one, applying only the computed additions and removals.
	ReplacePermissions(ctx context.Context, roleID string, permissions []string, actorUserID string) (*domain.Role, error)
}

// AuthSvcFacade authenticates users and issues tokens.
type AuthSvcFacade interface {
	// Login verifies credentials and returns a signed bearer token.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
