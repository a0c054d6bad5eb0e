package domain

import "time"

// User is an administrative account of the backoffice.
type User struct {
	UserID       string `json:"userID"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	RoleID       string `json:"roleID,omitempty"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// Collaborator is a registered member of the organization's staff.
type Collaborator struct {
	CollaboratorID string    `json:"collaboratorID"`
	Email          string    `json:"email"`
	Cedula         string    `json:"cedula"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone,omitempty"`
	BirthDate      time.Time `json:"birthDate"`
	PasswordHash   string    `json:"-"`
	RoleID         string    `json:"roleID,omitempty"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// Role groups a set of permissions.
type Role struct {
	RoleID      string   `json:"roleID"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Permissions []string `json:"permissions"`
	AuditFields
}
