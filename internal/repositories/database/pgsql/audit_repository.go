package pgsql

import (
	"context"

	"github.com/fundacion-admin/backend/internal/core/domain"
	portsrepo "github.com/fundacion-admin/backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAuditRepository struct {
	BaseRepository
}

// newPgxAuditRepository creates a new repository for the audit trail.
func newPgxAuditRepository(pool *pgxpool.Pool) portsrepo.AuditRecorder {
	return &PgxAuditRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.AuditRecorder = (*PgxAuditRepository)(nil)

// RecordAudit appends one entry to the audit trail.
func (r *PgxAuditRepository) RecordAudit(ctx context.Context, entry domain.AuditEntry) error {
	query := `
		INSERT INTO audit_entries (audit_id, actor, action, entity, entity_id, at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		entry.AuditID,
		entry.Actor,
		entry.Action,
		entry.Entity,
		entry.EntityID,
		entry.At,
	)
	if err != nil {
		return mapWriteError(err, "audit entry")
	}
	return nil
}
