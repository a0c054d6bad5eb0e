package services

import (
	"context"

	"github.com/fundacion-admin/backend/internal/core/domain"
	"github.com/fundacion-admin/backend/internal/dto"
)

// SancionSvcFacade manages disciplinary sanctions. Read operations refresh
// derived states before returning, so estado is always correct relative to
// the wall clock at observation.
type SancionSvcFacade interface {
	CreateSancion(ctx context.Context, req dto.CreateSancionRequest, creatorUserID string) (*domain.Sancion, error)
	UpdateSancion(ctx context.Context, sancionID string, req dto.UpdateSancionRequest, updaterUserID string) (*domain.Sancion, error)
	GetSancion(ctx context.Context, sancionID string) (*domain.Sancion, error)
	ListSanciones(ctx context.Context, params dto.ListSancionesParams) ([]domain.Sancion, error)

	// RevocarSancion permanently revokes a sanction.
	RevocarSancion(ctx context.Context, sancionID string, revocadaPor string, actorUserID string) (*domain.Sancion, error)
}
