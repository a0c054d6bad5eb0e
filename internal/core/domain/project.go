package domain

import "time"

// Project is one of the foundation's programs.
type Project struct {
	ProjectID   string `json:"projectID"`
	Title       string `json:"title"`
	Place       string `json:"place"`
	Area        string `json:"area"`
	Description string `json:"description,omitempty"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// News is a published article. Slug is unique.
type News struct {
	NewsID  string `json:"newsID"`
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Body    string `json:"body"`
	Author  string `json:"author,omitempty"`
	Publish bool   `json:"publish"`
	AuditFields
}

// Volunteer is a registered volunteer; sanctions reference volunteers.
type Volunteer struct {
	VolunteerID string    `json:"volunteerID"`
	Email       string    `json:"email"`
	Cedula      string    `json:"cedula"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone,omitempty"`
	BirthDate   time.Time `json:"birthDate"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
