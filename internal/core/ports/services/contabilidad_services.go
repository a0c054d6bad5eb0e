package services

import (
	"context"

	"github.com/fundacion-admin/backend/internal/core/domain"
	"github.com/fundacion-admin/backend/internal/dto"
)

// ContabilidadSvcFacade manages budgets, movements and accounting documents.
type ContabilidadSvcFacade interface {
	CreatePresupuesto(ctx context.Context, req dto.CreatePresupuestoRequest, creatorUserID string) (*domain.Presupuesto, error)
	UpdatePresupuesto(ctx context.Context, presupuestoID string, req dto.UpdatePresupuestoRequest, updaterUserID string) (*domain.Presupuesto, error)
	ListPresupuestos(ctx context.Context, projectID string) ([]domain.Presupuesto, error)
	DeletePresupuesto(ctx context.Context, presupuestoID string) error

	CreateTransaccion(ctx context.Context, req dto.CreateTransaccionRequest, creatorUserID string) (*domain.Transaccion, error)
	ListTransacciones(ctx context.Context, projectID string) ([]domain.Transaccion, error)
	DeleteTransaccion(ctx context.Context, transaccionID string) error

	// Resumen totals ingresos/egresos/saldo for a project.
	Resumen(ctx context.Context, projectID string) (*domain.ResumenContable, error)

	// UploadDocumento stores a supporting accounting document.
	UploadDocumento(ctx context.Context, projectID string, file dto.FileUpload, uploaderUserID string) (*domain.Documento, error)
	ListDocumentos(ctx context.Context, projectID string) ([]domain.Documento, error)
}
