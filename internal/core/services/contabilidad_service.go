package services

import (
	"context"
	"log/slog"
	"path"
	"time"

	"github.com/fundacion-admin/backend/internal/core/domain"
	portsrepo "github.com/fundacion-admin/backend/internal/core/ports/repositories"
	portssvc "github.com/fundacion-admin/backend/internal/core/ports/services"
	"github.com/fundacion-admin/backend/internal/dto"
	"github.com/fundacion-admin/backend/internal/platform/storage"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type contabilidadService struct {
	BaseService
	repo  portsrepo.ContabilidadRepositoryFacade
	files storage.FileStore
}

// NewContabilidadService creates the accounting service.
func NewContabilidadService(repo portsrepo.ContabilidadRepositoryFacade, files storage.FileStore, audit portsrepo.AuditRecorder) portssvc.ContabilidadSvcFacade {
	return &contabilidadService{
		BaseService: BaseService{Audit: audit},
		repo:        repo,
		files:       files,
	}
}

// Ensure implementation matches interface
var _ portssvc.ContabilidadSvcFacade = (*contabilidadService)(nil)

// CreatePresupuesto registers a monthly budget for a project.
func (s *contabilidadService) CreatePresupuesto(ctx context.Context, req dto.CreatePresupuestoRequest, creatorUserID string) (*domain.Presupuesto, error) {
	now := time.Now()
	p := domain.Presupuesto{
		PresupuestoID:  uuid.NewString(),
		ProjectID:      req.ProjectID,
		Proyecto:       req.Proyecto,
		Mes:            req.Mes,
		Anio:           req.Anio,
		MontoAsignado:  req.MontoAsignado,
		MontoEjecutado: req.MontoEjecutado,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.repo.SavePresupuesto(ctx, p); err != nil {
		s.LogError(ctx, err, "Failed to save presupuesto", slog.String("project_id", req.ProjectID))
		return nil, err
	}

	s.LogInfo(ctx, "Presupuesto created",
		slog.String("presupuesto_id", p.PresupuestoID),
		slog.String("project_id", p.ProjectID))
	s.RecordAudit(ctx, creatorUserID, "create", "presupuesto", p.PresupuestoID)
	return &p, nil
}

// UpdatePresupuesto adjusts an existing budget's amounts.
func (s *contabilidadService) UpdatePresupuesto(ctx context.Context, presupuestoID string, req dto.UpdatePresupuestoRequest, updaterUserID string) (*domain.Presupuesto, error) {
	p, err := s.repo.FindPresupuestoByID(ctx, presupuestoID)
	if err != nil {
		return nil, err
	}

	if req.MontoAsignado != nil {
		p.MontoAsignado = *req.MontoAsignado
	}
	if req.MontoEjecutado != nil {
		p.MontoEjecutado = *req.MontoEjecutado
	}
	p.LastUpdatedAt = time.Now()
	p.LastUpdatedBy = updaterUserID

	if err := s.repo.UpdatePresupuesto(ctx, *p); err != nil {
		s.LogError(ctx, err, "Failed to update presupuesto", slog.String("presupuesto_id", presupuestoID))
		return nil, err
	}

	s.RecordAudit(ctx, updaterUserID, "update", "presupuesto", presupuestoID)
	return p, nil
}

// ListPresupuestos retrieves all budgets of a project.
func (s *contabilidadService) ListPresupuestos(ctx context.Context, projectID string) ([]domain.Presupuesto, error) {
	return s.repo.FindPresupuestosByProject(ctx, projectID)
}

// DeletePresupuesto removes a budget.
func (s *contabilidadService) DeletePresupuesto(ctx context.Context, presupuestoID string) error {
	if err := s.repo.DeletePresupuesto(ctx, presupuestoID); err != nil {
		s.LogError(ctx, err, "Failed to delete presupuesto", slog.String("presupuesto_id", presupuestoID))
		return err
	}
	return nil
}

// CreateTransaccion registers an accounting movement.
func (s *contabilidadService) CreateTransaccion(ctx context.Context, req dto.CreateTransaccionRequest, creatorUserID string) (*domain.Transaccion, error) {
	now := time.Now()
	fecha := now
	if req.Fecha != nil {
		fecha = *req.Fecha
	}
	t := domain.Transaccion{
		TransaccionID: uuid.NewString(),
		ProjectID:     req.ProjectID,
		Tipo:          domain.TipoTransaccion(req.Tipo),
		Categoria:     req.Categoria,
		Descripcion:   req.Descripcion,
		Monto:         req.Monto,
		Fecha:         fecha,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.repo.SaveTransaccion(ctx, t); err != nil {
		s.LogError(ctx, err, "Failed to save transaccion", slog.String("project_id", req.ProjectID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaccion created",
		slog.String("transaccion_id", t.TransaccionID),
		slog.String("tipo", string(t.Tipo)),
		slog.String("monto", t.Monto.String()))
	s.RecordAudit(ctx, creatorUserID, "create", "transaccion", t.TransaccionID)
	return &t, nil
}

// ListTransacciones retrieves all movements of a project.
func (s *contabilidadService) ListTransacciones(ctx context.Context, projectID string) ([]domain.Transaccion, error) {
	return s.repo.FindTransaccionesByProject(ctx, projectID)
}

// DeleteTransaccion removes a movement.
func (s *contabilidadService) DeleteTransaccion(ctx context.Context, transaccionID string) error {
	if err := s.repo.DeleteTransaccion(ctx, transaccionID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaccion", slog.String("transaccion_id", transaccionID))
		return err
	}
	return nil
}

// Resumen totals ingresos/egresos/saldo for a project.
func (s *contabilidadService) Resumen(ctx context.Context, projectID string) (*domain.ResumenContable, error) {
	transacciones, err := s.repo.FindTransaccionesByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	ingresos := decimal.Zero
	egresos := decimal.Zero
	for _, t := range transacciones {
		switch t.Tipo {
		case domain.TransaccionIngreso:
			ingresos = ingresos.Add(t.Monto)
		case domain.TransaccionEgreso:
			egresos = egresos.Add(t.Monto)
		}
	}

	return &domain.ResumenContable{
		ProjectID:     projectID,
		TotalIngresos: ingresos,
		TotalEgresos:  egresos,
		Saldo:         ingresos.Sub(egresos),
	}, nil
}

// UploadDocumento stores a supporting accounting document.
func (s *contabilidadService) UploadDocumento(ctx context.Context, projectID string, file dto.FileUpload, uploaderUserID string) (*domain.Documento, error) {
	documentoID := uuid.NewString()
	key := path.Join("documentos", projectID, documentoID+path.Ext(file.Filename))

	url, err := s.files.Save(ctx, key, file.Content, file.Mime)
	if err != nil {
		s.LogError(ctx, err, "Failed to store documento file", slog.String("project_id", projectID))
		return nil, err
	}

	d := domain.Documento{
		DocumentoID: documentoID,
		ProjectID:   projectID,
		URL:         url,
		Mime:        file.Mime,
		Bytes:       file.Size,
		Filename:    file.Filename,
		UploadedAt:  time.Now(),
	}

	if err := s.repo.SaveDocumento(ctx, d); err != nil {
		s.LogError(ctx, err, "Failed to save documento", slog.String("project_id", projectID))
		_ = s.files.Delete(ctx, key)
		return nil, err
	}

	s.RecordAudit(ctx, uploaderUserID, "create", "documento", documentoID)
	return &d, nil
}

// ListDocumentos retrieves all documents of a project.
func (s *contabilidadService) ListDocumentos(ctx context.Context, projectID string) ([]domain.Documento, error) {
	return s.repo.FindDocumentosByProject(ctx, projectID)
}
