package models

import (
	"database/sql"
	"time"
)

type Project struct {
	ProjectID   string         `db:"project_id"`
	Title       string         `db:"title"`
	Place       string         `db:"place"`
	Area        string         `db:"area"`
	Description sql.NullString `db:"description"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}

type News struct {
	NewsID  string         `db:"news_id"`
	Slug    string         `db:"slug"`
	Title   string         `db:"title"`
	Body    string         `db:"body"`
	Author  sql.NullString `db:"author"`
	Publish bool           `db:"publish"`
	AuditFields
}

type Volunteer struct {
	VolunteerID string         `db:"volunteer_id"`
	Email       string         `db:"email"`
	Cedula      string         `db:"cedula"`
	Name        string         `db:"name"`
	Phone       sql.NullString `db:"phone"`
	BirthDate   time.Time      `db:"birth_date"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}

type AuditEntry struct {
	AuditID  string    `db:"audit_id"`
	Actor    string    `db:"actor"`
	Action   string    `db:"action"`
	Entity   string    `db:"entity"`
	EntityID string    `db:"entity_id"`
	At       time.Time `db:"at"`
}
