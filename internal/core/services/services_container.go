package services

import (
	portsrepo "github.com/fundacion-admin/backend/internal/core/ports/repositories"
	portssvc "github.com/fundacion-admin/backend/internal/core/ports/services"
	"github.com/fundacion-admin/backend/internal/platform/config"
	"github.com/fundacion-admin/backend/internal/platform/printing"
	"github.com/fundacion-admin/backend/internal/platform/storage"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, files storage.FileStore, mail AsyncMailer, renderer printing.PDFRenderer) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Billing = NewBillingService(
		repos.BillingRepo,
		repos.ContabilidadRepo,
		files,
		WithBillingAuditRecorder(repos.AuditRepo),
	)
	container.Contabilidad = NewContabilidadService(repos.ContabilidadRepo, files, repos.AuditRepo)
	container.Report = NewReportService(repos.ReportRepo, renderer)
	container.Sancion = NewSancionService(repos.SancionRepo, repos.AuditRepo)

	collaboratorOpts := []CollaboratorServiceOption{
		WithCollaboratorAuditRecorder(repos.AuditRepo),
	}
	if mail != nil {
		collaboratorOpts = append(collaboratorOpts, WithWelcomeMailer(mail))
	}
	container.Collaborator = NewCollaboratorService(repos.CollaboratorRepo, collaboratorOpts...)

	container.User = NewUserService(repos.UserRepo, repos.AuditRepo)
	container.Role = NewRoleService(repos.RoleRepo, repos.AuditRepo)
	container.Project = NewProjectService(repos.ProjectRepo, repos.AuditRepo)
	container.News = NewNewsService(repos.NewsRepo, repos.AuditRepo)
	container.Volunteer = NewVolunteerService(repos.VolunteerRepo, repos.AuditRepo)
	container.Auth = NewAuthService(cfg, repos.UserRepo)

	return container
}
