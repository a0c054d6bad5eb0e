package repositories

import (
	"context"
	"time"

	"github.com/fundacion-admin/backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PresupuestoRepository manages project budgets.
type PresupuestoRepository interface {
	SavePresupuesto(ctx context.Context, p domain.Presupuesto) error
	UpdatePresupuesto(ctx context.Context, p domain.Presupuesto) error
	FindPresupuestoByID(ctx context.Context, presupuestoID string) (*domain.Presupuesto, error)
	FindPresupuestosByProject(ctx context.Context, projectID string) ([]domain.Presupuesto, error)

	// SumMontoAsignadoByProject totals the budget assigned to a project.
	SumMontoAsignadoByProject(ctx context.Context, projectID string) (decimal.Decimal, error)
	DeletePresupuesto(ctx context.Context, presupuestoID string) error
}

// TransaccionRepository manages accounting movements.
type TransaccionRepository interface {
	SaveTransaccion(ctx context.Context, t domain.Transaccion) error
	FindTransaccionByID(ctx context.Context, transaccionID string) (*domain.Transaccion, error)
	FindTransaccionesByProject(ctx context.Context, projectID string) ([]domain.Transaccion, error)
	FindTransaccionesInRange(ctx context.Context, from, to time.Time) ([]domain.Transaccion, error)
	DeleteTransaccion(ctx context.Context, transaccionID string) error
}

// DocumentoRepository manages accounting document metadata.
type DocumentoRepository interface {
	SaveDocumento(ctx context.Context, d domain.Documento) error
	FindDocumentosByProject(ctx context.Context, projectID string) ([]domain.Documento, error)
}

// ContabilidadRepositoryFacade combines all accounting repository interfaces.
type ContabilidadRepositoryFacade interface {
	PresupuestoRepository
	TransaccionRepository
	DocumentoRepository
}
