package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Billing      BillingSvcFacade
	Contabilidad ContabilidadSvcFacade
	Report       ReportSvcFacade
	Sancion      SancionSvcFacade
	Collaborator CollaboratorSvcFacade
	User         UserSvcFacade
	Role         RoleSvcFacade
	Project      ProjectSvcFacade
	News         NewsSvcFacade
	Volunteer    VolunteerSvcFacade
	Auth         AuthSvcFacade
}
