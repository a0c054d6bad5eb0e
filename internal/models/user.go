package models

import (
	"database/sql"
	"time"
)

type User struct {
	UserID       string         `db:"user_id"`
	Email        string         `db:"email"`
	Name         string         `db:"name"`
	PasswordHash string         `db:"password_hash"`
	RoleID       sql.NullString `db:"role_id"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}

type Collaborator struct {
	CollaboratorID string         `db:"collaborator_id"`
	Email          string         `db:"email"`
	Cedula         string         `db:"cedula"`
	Name           string         `db:"name"`
	Phone          sql.NullString `db:"phone"`
	BirthDate      time.Time      `db:"birth_date"`
	PasswordHash   string         `db:"password_hash"`
	RoleID         sql.NullString `db:"role_id"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}

type Role struct {
	RoleID      string         `db:"role_id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	AuditFields
}
