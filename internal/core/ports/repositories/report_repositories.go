package repositories

import (
	"context"
	"time"
)

// ReportRepositoryFacade fetches the dated rows each report module counts.
// Each method returns the relevant timestamp (createdAt or fecha) of every
// row whose date falls inside [from, to].
type ReportRepositoryFacade interface {
	ProjectDates(ctx context.Context, from, to time.Time) ([]time.Time, error)
	InvoiceDates(ctx context.Context, from, to time.Time) ([]time.Time, error)
	TransaccionDates(ctx context.Context, from, to time.Time) ([]time.Time, error)
	CollaboratorDates(ctx context.Context, from, to time.Time) ([]time.Time, error)
	SolicitudDates(ctx context.Context, from, to time.Time) ([]time.Time, error)
	VolunteerDates(ctx context.Context, from, to time.Time) ([]time.Time, error)
}
