package dto

import (
	"time"

	"github.com/fundacion-admin/backend/internal/core/domain"
)

// CreateCollaboratorRequest registers a staff member. The account must
// belong to an adult; email and cedula are unique.
type CreateCollaboratorRequest struct {
	Email     string    `json:"email" binding:"required,email"`
	Cedula    string    `json:"cedula" binding:"required"`
	Name      string    `json:"name" binding:"required"`
	Phone     string    `json:"phone"`
	BirthDate time.Time `json:"birthDate" binding:"required"`
	Password  string    `json:"password" binding:"required,min=8"`
	RoleID    string    `json:"roleID"`
}

// UpdateCollaboratorRequest changes a collaborator's mutable fields.
type UpdateCollaboratorRequest struct {
	Name   *string `json:"name"`
	Phone  *string `json:"phone"`
	RoleID *string `json:"roleID"`
}

// CollaboratorResponse is the API shape of a collaborator.
type CollaboratorResponse struct {
	CollaboratorID string    `json:"collaboratorID"`
	Email          string    `json:"email"`
	Cedula         string    `json:"cedula"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone,omitempty"`
	BirthDate      time.Time `json:"birthDate"`
	RoleID         string    `json:"roleID,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

func ToCollaboratorResponse(c *domain.Collaborator) CollaboratorResponse {
	return CollaboratorResponse{
		CollaboratorID: c.CollaboratorID,
		Email:          c.Email,
		Cedula:         c.Cedula,
		Name:           c.Name,
		Phone:          c.Phone,
		BirthDate:      c.BirthDate,
		RoleID:         c.RoleID,
		CreatedAt:      c.CreatedAt,
	}
}

// CreateUserRequest registers an admin user.
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	RoleID   string `json:"roleID"`
}

// UpdateUserRequest changes an admin user's mutable fields.
type UpdateUserRequest struct {
	Name   *string `json:"name"`
	RoleID *string `json:"roleID"`
}

// UserResponse is the API shape of an admin user.
type UserResponse struct {
	UserID    string    `json:"userID"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	RoleID    string    `json:"roleID,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Email:     u.Email,
		Name:      u.Name,
		RoleID:    u.RoleID,
		CreatedAt: u.CreatedAt,
	}
}

// CreateRoleRequest registers a role with an initial permission set.
type CreateRoleRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
}

// UpdateRoleRequest changes a role's name or description.
type UpdateRoleRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// ReplacePermissionsRequest replaces a role's permission set wholesale.
type ReplacePermissionsRequest struct {
	Permissions []string `json:"permissions" binding:"required"`
}

// RoleResponse is the API shape of a role.
type RoleResponse struct {
	RoleID      string   `json:"roleID"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Permissions []string `json:"permissions"`
}

func ToRoleResponse(r *domain.Role) RoleResponse {
	return RoleResponse{
		RoleID:      r.RoleID,
		Name:        r.Name,
		Description: r.Description,
		Permissions: r.Permissions,
	}
}

// LoginRequest carries password credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	UserID    string    `json:"userID"`
	Name      string    `json:"name"`
}
