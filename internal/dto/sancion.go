package dto

import (
	"time"

	"github.com/fundacion-admin/backend/internal/core/domain"
)

// CreateSancionRequest opens a disciplinary record against a volunteer.
type CreateSancionRequest struct {
	VoluntarioID     string     `json:"voluntarioID" binding:"required"`
	Tipo             string     `json:"tipo" binding:"required,oneof=LEVE GRAVE MUY_GRAVE EXTREMADAMENTE_GRAVE"`
	Motivo           string     `json:"motivo" binding:"required"`
	FechaInicio      *time.Time `json:"fechaInicio"`
	FechaVencimiento *time.Time `json:"fechaVencimiento"`
}

// UpdateSancionRequest changes the mutable fields of a sanction.
type UpdateSancionRequest struct {
	Tipo             *string    `json:"tipo" binding:"omitempty,oneof=LEVE GRAVE MUY_GRAVE EXTREMADAMENTE_GRAVE"`
	Motivo           *string    `json:"motivo"`
	FechaVencimiento *time.Time `json:"fechaVencimiento"`
}

// RevocarSancionRequest revokes a sanction.
type RevocarSancionRequest struct {
	RevocadaPor string `json:"revocadaPor"`
}

// ListSancionesParams filters the sanction list.
type ListSancionesParams struct {
	VoluntarioID string `form:"voluntarioID"`
	Estado       string `form:"estado" binding:"omitempty,oneof=ACTIVA EXPIRADA REVOCADA"`
}

// SancionResponse is the API shape of a sanction.
type SancionResponse struct {
	SancionID        string               `json:"sancionID"`
	VoluntarioID     string               `json:"voluntarioID"`
	Tipo             domain.TipoSancion   `json:"tipo"`
	Motivo           string               `json:"motivo"`
	FechaInicio      time.Time            `json:"fechaInicio"`
	FechaVencimiento *time.Time           `json:"fechaVencimiento,omitempty"`
	Estado           domain.EstadoSancion `json:"estado"`
	RevocadaPor      string               `json:"revocadaPor,omitempty"`
	FechaRevocacion  *time.Time           `json:"fechaRevocacion,omitempty"`
}

func ToSancionResponse(s *domain.Sancion) SancionResponse {
	return SancionResponse{
		SancionID:        s.SancionID,
		VoluntarioID:     s.VoluntarioID,
		Tipo:             s.Tipo,
		Motivo:           s.Motivo,
		FechaInicio:      s.FechaInicio,
		FechaVencimiento: s.FechaVencimiento,
		Estado:           s.Estado,
		RevocadaPor:      s.RevocadaPor,
		FechaRevocacion:  s.FechaRevocacion,
	}
}

// ToSancionResponses converts a slice of sanctions.
func ToSancionResponses(in []domain.Sancion) []SancionResponse {
	out := make([]SancionResponse, len(in))
	for i := range in {
		out[i] = ToSancionResponse(&in[i])
	}
	return out
}
