package mapping

import (
	"github.com/fundacion-admin/backend/internal/core/domain"
	"github.com/fundacion-admin/backend/internal/models"
)

// ToModelProject converts a domain Project to a model Project
func ToModelProject(d domain.Project) models.Project {
	return models.Project{
		ProjectID:   d.ProjectID,
		Title:       d.Title,
		Place:       d.Place,
		Area:        d.Area,
		Description: toNullString(d.Description),
		AuditFields: ToModelAuditFields(d.AuditFields),
		DeletedAt:   d.DeletedAt,
	}
}

// ToDomainProject converts a model Project to a domain Project
func ToDomainProject(m models.Project) domain.Project {
	return domain.Project{
		ProjectID:   m.ProjectID,
		Title:       m.Title,
		Place:       m.Place,
		Area:        m.Area,
		Description: fromNullString(m.Description),
		AuditFields: ToDomainAuditFields(m.AuditFields),
		DeletedAt:   m.DeletedAt,
	}
}

// ToDomainProjectSlice converts a slice of model Projects to domain Projects
func ToDomainProjectSlice(ms []models.Project) []domain.Project {
	ds := make([]domain.Project, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProject(m)
	}
	return ds
}

// ToModelNews converts a domain News to a model News
func ToModelNews(d domain.News) models.News {
	return models.News{
		NewsID:      d.NewsID,
		Slug:        d.Slug,
		Title:       d.Title,
		Body:        d.Body,
		Author:      toNullString(d.Author),
		Publish:     d.Publish,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainNews converts a model News to a domain News
func ToDomainNews(m models.News) domain.News {
	return domain.News{
		NewsID:      m.NewsID,
		Slug:        m.Slug,
		Title:       m.Title,
		Body:        m.Body,
		Author:      fromNullString(m.Author),
		Publish:     m.Publish,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainNewsSlice converts a slice of model News to domain News
func ToDomainNewsSlice(ms []models.News) []domain.News {
	ds := make([]domain.News, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainNews(m)
	}
	return ds
}

// ToModelVolunteer converts a domain Volunteer to a model Volunteer
func ToModelVolunteer(d domain.Volunteer) models.Volunteer {
	return models.Volunteer{
		VolunteerID: d.VolunteerID,
		Email:       d.Email,
		Cedula:      d.Cedula,
		Name:        d.Name,
		Phone:       toNullString(d.Phone),
		BirthDate:   d.BirthDate,
		AuditFields: ToModelAuditFields(d.AuditFields),
		DeletedAt:   d.DeletedAt,
	}
}

// ToDomainVolunteer converts a model Volunteer to a domain Volunteer
func ToDomainVolunteer(m models.Volunteer) domain.Volunteer {
	return domain.Volunteer{
		VolunteerID: m.VolunteerID,
		Email:       m.Email,
		Cedula:      m.Cedula,
		Name:        m.Name,
		Phone:       fromNullString(m.Phone),
		BirthDate:   m.BirthDate,
		AuditFields: ToDomainAuditFields(m.AuditFields),
		DeletedAt:   m.DeletedAt,
	}
}

// ToDomainVolunteerSlice converts a slice of model Volunteers to domain Volunteers
func ToDomainVolunteerSlice(ms []models.Volunteer) []domain.Volunteer {
	ds := make([]domain.Volunteer, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainVolunteer(m)
	}
	return ds
}
