package pgsql

import (
	portsrepo "github.com/fundacion-admin/backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		BillingRepo:      newPgxBillingRepository(dbPool),
		ContabilidadRepo: newPgxContabilidadRepository(dbPool),
		SancionRepo:      newPgxSancionRepository(dbPool),
		UserRepo:         newPgxUserRepository(dbPool),
		CollaboratorRepo: newPgxCollaboratorRepository(dbPool),
		RoleRepo:         newPgxRoleRepository(dbPool),
		ProjectRepo:      newPgxProjectRepository(dbPool),
		NewsRepo:         newPgxNewsRepository(dbPool),
		VolunteerRepo:    newPgxVolunteerRepository(dbPool),
		ReportRepo:       newPgxReportRepository(dbPool),
		AuditRepo:        newPgxAuditRepository(dbPool),
	}
}
