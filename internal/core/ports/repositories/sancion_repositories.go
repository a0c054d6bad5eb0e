package repositories

import (
	"context"
	"time"

	"github.com/fundacion-admin/backend/internal/core/domain"
)

// SancionRepositoryFacade manages disciplinary sanctions.
type SancionRepositoryFacade interface {
	SaveSancion(ctx context.Context, s domain.Sancion) error
	UpdateSancion(ctx context.Context, s domain.Sancion) error
	FindSancionByID(ctx context.Context, sancionID string) (*domain.Sancion, error)
	FindSanciones(ctx context.Context, voluntarioID string, estado domain.EstadoSancion) ([]domain.Sancion, error)

	// ExpireDueSanciones bulk-marks as EXPIRADA every sanction that is still
	// ACTIVA, not revoked, and whose vencimiento date lies before now.
	// Returns the number of rows flipped.
	ExpireDueSanciones(ctx context.Context, now time.Time) (int64, error)
}
