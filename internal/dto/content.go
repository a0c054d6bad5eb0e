package dto

import (
	"time"

	"github.com/fundacion-admin/backend/internal/core/domain"
)

// CreateProjectRequest registers a project. Title+place+area must be unique.
type CreateProjectRequest struct {
	Title       string `json:"title" binding:"required"`
	Place       string `json:"place" binding:"required"`
	Area        string `json:"area" binding:"required"`
	Description string `json:"description"`
}

// UpdateProjectRequest changes a project's mutable fields.
type UpdateProjectRequest struct {
	Title       *string `json:"title"`
	Place       *string `json:"place"`
	Area        *string `json:"area"`
	Description *string `json:"description"`
}

// ProjectResponse is the API shape of a project.
type ProjectResponse struct {
	ProjectID   string    `json:"projectID"`
	Title       string    `json:"title"`
	Place       string    `json:"place"`
	Area        string    `json:"area"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func ToProjectResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ProjectID:   p.ProjectID,
		Title:       p.Title,
		Place:       p.Place,
		Area:        p.Area,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	}
}

// CreateNewsRequest publishes an article. Slug is unique.
type CreateNewsRequest struct {
	Slug    string `json:"slug" binding:"required"`
	Title   string `json:"title" binding:"required"`
	Body    string `json:"body" binding:"required"`
	Author  string `json:"author"`
	Publish bool   `json:"publish"`
}

// UpdateNewsRequest changes an article's mutable fields.
type UpdateNewsRequest struct {
	Title   *string `json:"title"`
	Body    *string `json:"body"`
	Author  *string `json:"author"`
	Publish *bool   `json:"publish"`
}

// NewsResponse is the API shape of an article.
type NewsResponse struct {
	NewsID    string    `json:"newsID"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Author    string    `json:"author,omitempty"`
	Publish   bool      `json:"publish"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToNewsResponse(n *domain.News) NewsResponse {
	return NewsResponse{
		NewsID:    n.NewsID,
		Slug:      n.Slug,
		Title:     n.Title,
		Body:      n.Body,
		Author:    n.Author,
		Publish:   n.Publish,
		CreatedAt: n.CreatedAt,
	}
}

// CreateVolunteerRequest registers a volunteer.
type CreateVolunteerRequest struct {
	Email     string    `json:"email" binding:"required,email"`
	Cedula    string    `json:"cedula" binding:"required"`
	Name      string    `json:"name" binding:"required"`
	Phone     string    `json:"phone"`
	BirthDate time.Time `json:"birthDate" binding:"required"`
}

// UpdateVolunteerRequest changes a volunteer's mutable fields.
type UpdateVolunteerRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

// VolunteerResponse is the API shape of a volunteer.
type VolunteerResponse struct {
	VolunteerID string    `json:"volunteerID"`
	Email       string    `json:"email"`
	Cedula      string    `json:"cedula"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone,omitempty"`
	BirthDate   time.Time `json:"birthDate"`
	CreatedAt   time.Time `json:"createdAt"`
}

func ToVolunteerResponse(v *domain.Volunteer) VolunteerResponse {
	return VolunteerResponse{
		VolunteerID: v.VolunteerID,
		Email:       v.Email,
		Cedula:      v.Cedula,
		Name:        v.Name,
		Phone:       v.Phone,
		BirthDate:   v.BirthDate,
		CreatedAt:   v.CreatedAt,
	}
}

// ListParams carries the standard limit/offset pagination query.
type ListParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// FileUpload carries an uploaded file from the HTTP layer to a service.
type FileUpload struct {
	Filename string
	Mime     string
	Size     int64
	Content  []byte
}
