package mapping

import (
	"github.com/fundacion-admin/backend/internal/core/domain"
	"github.com/fundacion-admin/backend/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:       d.UserID,
		Email:        d.Email,
		Name:         d.Name,
		PasswordHash: d.PasswordHash,
		RoleID:       toNullString(d.RoleID),
		AuditFields:  ToModelAuditFields(d.AuditFields),
		DeletedAt:    d.DeletedAt,
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Email:        m.Email,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		RoleID:       fromNullString(m.RoleID),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
		DeletedAt:    m.DeletedAt,
	}
}

// ToDomainUserSlice converts a slice of model Users to a slice of domain Users
func ToDomainUserSlice(ms []models.User) []domain.User {
	ds := make([]domain.User, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUser(m)
	}
	return ds
}

// ToModelCollaborator converts a domain Collaborator to a model Collaborator
func ToModelCollaborator(d domain.Collaborator) models.Collaborator {
	return models.Collaborator{
		CollaboratorID: d.CollaboratorID,
		Email:          d.Email,
		Cedula:         d.Cedula,
		Name:           d.Name,
		Phone:          toNullString(d.Phone),
		BirthDate:      d.BirthDate,
		PasswordHash:   d.PasswordHash,
		RoleID:         toNullString(d.RoleID),
		AuditFields:    ToModelAuditFields(d.AuditFields),
		DeletedAt:      d.DeletedAt,
	}
}

// ToDomainCollaborator converts a model Collaborator to a domain Collaborator
func ToDomainCollaborator(m models.Collaborator) domain.Collaborator {
	return domain.Collaborator{
		CollaboratorID: m.CollaboratorID,
		Email:          m.Email,
		Cedula:         m.Cedula,
		Name:           m.Name,
		Phone:          fromNullString(m.Phone),
		BirthDate:      m.BirthDate,
		PasswordHash:   m.PasswordHash,
		RoleID:         fromNullString(m.RoleID),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
		DeletedAt:      m.DeletedAt,
	}
}

// ToDomainCollaboratorSlice converts a slice of model Collaborators to domain Collaborators
func ToDomainCollaboratorSlice(ms []models.Collaborator) []domain.Collaborator {
	ds := make([]domain.Collaborator, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCollaborator(m)
	}
	return ds
}

// ToModelRole converts a domain Role to a model Role. Permissions live in a
// join table and are persisted separately.
func ToModelRole(d domain.Role) models.Role {
	return models.Role{
		RoleID:      d.RoleID,
		Name:        d.Name,
		Description: toNullString(d.Description),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRole converts a model Role to a domain Role
func ToDomainRole(m models.Role, permissions []string) domain.Role {
	return domain.Role{
		RoleID:      m.RoleID,
		Name:        m.Name,
		Description: fromNullString(m.Description),
		Permissions: permissions,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
