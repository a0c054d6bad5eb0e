package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	BillingRepo      BillingRepositoryFacade
	ContabilidadRepo ContabilidadRepositoryFacade
	SancionRepo      SancionRepositoryFacade
	UserRepo         UserRepositoryFacade
	CollaboratorRepo CollaboratorRepositoryFacade
	RoleRepo         RoleRepositoryFacade
	ProjectRepo      ProjectRepositoryFacade
	NewsRepo         NewsRepositoryFacade
	VolunteerRepo    VolunteerRepositoryFacade
	ReportRepo       ReportRepositoryFacade
	AuditRepo        AuditRecorder
}
