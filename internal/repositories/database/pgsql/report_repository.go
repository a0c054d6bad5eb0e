package pgsql

import (
	"context"
	"fmt"
	"time"

	portsrepo "github.com/fundacion-admin/backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReportRepository struct {
	BaseRepository
}

// newPgxReportRepository creates a new repository for report row counting.
func newPgxReportRepository(pool *pgxpool.Pool) portsrepo.ReportRepositoryFacade {
	return &PgxReportRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ReportRepositoryFacade = (*PgxReportRepository)(nil)

// datesIn runs a single-column timestamp query over [from, to].
func (r *PgxReportRepository) datesIn(ctx context.Context, table, column string, from, to time.Time) ([]time.Time, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s >= $1 AND %s <= $2 ORDER BY %s;`,
		column, table, column, column, column)

	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s dates: %w", table, err)
	}
	defer rows.Close()

	dates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (time.Time, error) {
		var t time.Time
		err := row.Scan(&t)
		return t, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s dates: %w", table, err)
	}
	return dates, nil
}

// ProjectDates returns the creation dates of projects inside the window.
func (r *PgxReportRepository) ProjectDates(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	return r.datesIn(ctx, "projects", "created_at", from, to)
}

// InvoiceDates returns the invoice dates inside the window.
func (r *PgxReportRepository) InvoiceDates(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	return r.datesIn(ctx, "billing_invoices", "date", from, to)
}

// TransaccionDates returns the movement dates inside the window.
func (r *PgxReportRepository) TransaccionDates(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	return r.datesIn(ctx, "transacciones", "fecha", from, to)
}

// CollaboratorDates returns the registration dates of collaborators inside the window.
func (r *PgxReportRepository) CollaboratorDates(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	return r.datesIn(ctx, "collaborators", "created_at", from, to)
}

// SolicitudDates returns the creation dates of billing requests inside the window.
func (r *PgxReportRepository) SolicitudDates(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	return r.datesIn(ctx, "billing_requests", "created_at", from, to)
}

// VolunteerDates returns the registration dates of volunteers inside the window.
func (r *PgxReportRepository) VolunteerDates(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	return r.datesIn(ctx, "volunteers", "created_at", from, to)
}
