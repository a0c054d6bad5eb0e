package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fundacion-admin/backend/internal/apperrors"
	"github.com/fundacion-admin/backend/internal/core/domain"
	portsrepo "github.com/fundacion-admin/backend/internal/core/ports/repositories"
	portssvc "github.com/fundacion-admin/backend/internal/core/ports/services"
	"github.com/fundacion-admin/backend/internal/dto"
	"github.com/google/uuid"
)

type sancionService struct {
	BaseService
	repo portsrepo.SancionRepositoryFacade
	now  func() time.Time
}

// NewSancionService creates the sanctions service.
func NewSancionService(repo portsrepo.SancionRepositoryFacade, audit portsrepo.AuditRecorder) portssvc.SancionSvcFacade {
	return &sancionService{
		BaseService: BaseService{Audit: audit},
		repo:        repo,
		now:         time.Now,
	}
}

// Ensure implementation matches interface
var _ portssvc.SancionSvcFacade = (*sancionService)(nil)

// refreshExpired flips overdue ACTIVA sanctions to EXPIRADA before a read.
func (s *sancionService) refreshExpired(ctx context.Context) {
	flipped, err := s.repo.ExpireDueSanciones(ctx, s.now())
	if err != nil {
		s.LogError(ctx, err, "Failed to expire due sanciones")
		return
	}
	if flipped > 0 {
		s.LogInfo(ctx, "Sanciones expired", slog.Int64("count", flipped))
	}
}

// CreateSancion opens a disciplinary record against a volunteer.
func (s *sancionService) CreateSancion(ctx context.Context, req dto.CreateSancionRequest, creatorUserID string) (*domain.Sancion, error) {
	now := s.now()
	inicio := now
	if req.FechaInicio != nil {
		inicio = *req.FechaInicio
	}
	if req.FechaVencimiento != nil && req.FechaVencimiento.Before(inicio) {
		return nil, fmt.Errorf("%w: fechaVencimiento precedes fechaInicio", apperrors.ErrValidation)
	}

	sancion := domain.Sancion{
		SancionID:        uuid.NewString(),
		VoluntarioID:     req.VoluntarioID,
		Tipo:             domain.TipoSancion(req.Tipo),
		Motivo:           req.Motivo,
		FechaInicio:      inicio,
		FechaVencimiento: req.FechaVencimiento,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	sancion.Estado = sancion.ComputeEstado(now)

	if err := s.repo.SaveSancion(ctx, sancion); err != nil {
		s.LogError(ctx, err, "Failed to save sancion", slog.String("voluntario_id", req.VoluntarioID))
		return nil, err
	}

	s.LogInfo(ctx, "Sancion created",
		slog.String("sancion_id", sancion.SancionID),
		slog.String("tipo", string(sancion.Tipo)))
	s.RecordAudit(ctx, creatorUserID, "create", "sancion", sancion.SancionID)
	return &sancion, nil
}

// UpdateSancion changes the mutable fields of a sanction. Revoked sanctions
// are immutable.
func (s *sancionService) UpdateSancion(ctx context.Context, sancionID string, req dto.UpdateSancionRequest, updaterUserID string) (*domain.Sancion, error) {
	sancion, err := s.repo.FindSancionByID(ctx, sancionID)
	if err != nil {
		return nil, err
	}
	if sancion.FechaRevocacion != nil {
		return nil, fmt.Errorf("%w: sancion %s is revoked", apperrors.ErrValidation, sancionID)
	}

	if req.Tipo != nil {
		sancion.Tipo = domain.TipoSancion(*req.Tipo)
	}
	if req.Motivo != nil {
		sancion.Motivo = *req.Motivo
	}
	if req.FechaVencimiento != nil {
		if req.FechaVencimiento.Before(sancion.FechaInicio) {
			return nil, fmt.Errorf("%w: fechaVencimiento precedes fechaInicio", apperrors.ErrValidation)
		}
		sancion.FechaVencimiento = req.FechaVencimiento
	}

	now := s.now()
	sancion.Estado = sancion.ComputeEstado(now)
	sancion.LastUpdatedAt = now
	sancion.LastUpdatedBy = updaterUserID

	if err := s.repo.UpdateSancion(ctx, *sancion); err != nil {
		s.LogError(ctx, err, "Failed to update sancion", slog.String("sancion_id", sancionID))
		return nil, err
	}

	s.RecordAudit(ctx, updaterUserID, "update", "sancion", sancionID)
	return sancion, nil
}

// GetSancion retrieves a sanction with its derived state up to date.
func (s *sancionService) GetSancion(ctx context.Context, sancionID string) (*domain.Sancion, error) {
	s.refreshExpired(ctx)

	sancion, err := s.repo.FindSancionByID(ctx, sancionID)
	if err != nil {
		return nil, err
	}
	sancion.Estado = sancion.ComputeEstado(s.now())
	return sancion, nil
}

// ListSanciones retrieves sanctions with derived states up to date.
func (s *sancionService) ListSanciones(ctx context.Context, params dto.ListSancionesParams) ([]domain.Sancion, error) {
	s.refreshExpired(ctx)

	sanciones, err := s.repo.FindSanciones(ctx, params.VoluntarioID, domain.EstadoSancion(params.Estado))
	if err != nil {
		return nil, err
	}

	now := s.now()
	for i := range sanciones {
		sanciones[i].Estado = sanciones[i].ComputeEstado(now)
	}
	return sanciones, nil
}

// RevocarSancion permanently revokes a sanction. Revocation survives any
// later vencimiento date.
func (s *sancionService) RevocarSancion(ctx context.Context, sancionID string, revocadaPor string, actorUserID string) (*domain.Sancion, error) {
	sancion, err := s.repo.FindSancionByID(ctx, sancionID)
	if err != nil {
		return nil, err
	}
	if sancion.FechaRevocacion != nil {
		return nil, fmt.Errorf("%w: sancion %s is already revoked", apperrors.ErrDuplicate, sancionID)
	}

	now := s.now()
	if revocadaPor == "" {
		revocadaPor = actorUserID
	}
	sancion.RevocadaPor = revocadaPor
	sancion.FechaRevocacion = &now
	sancion.Estado = domain.SancionRevocada
	sancion.LastUpdatedAt = now
	sancion.LastUpdatedBy = actorUserID

	if err := s.repo.UpdateSancion(ctx, *sancion); err != nil {
		s.LogError(ctx, err, "Failed to revoke sancion", slog.String("sancion_id", sancionID))
		return nil, err
	}

	s.LogInfo(ctx, "Sancion revoked",
		slog.String("sancion_id", sancionID),
		slog.String("revocada_por", revocadaPor))
	s.RecordAudit(ctx, actorUserID, "revoke", "sancion", sancionID)
	return sancion, nil
}
