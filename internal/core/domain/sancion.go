package domain

import "time"

// TipoSancion grades the severity of a disciplinary sanction.
type TipoSancion string

const (
	SancionLeve                TipoSancion = "LEVE"
	SancionGrave               TipoSancion = "GRAVE"
	SancionMuyGrave            TipoSancion = "MUY_GRAVE"
	SancionExtremadamenteGrave TipoSancion = "EXTREMADAMENTE_GRAVE"
)

// EstadoSancion is derived from the sanction's dates and revocation fields,
// never set directly by callers.
type EstadoSancion string

const (
	SancionActiva   EstadoSancion = "ACTIVA"
	SancionExpirada EstadoSancion = "EXPIRADA"
	SancionRevocada EstadoSancion = "REVOCADA"
)

// Sancion is a time-bounded disciplinary record against a volunteer.
type Sancion struct {
	SancionID        string        `json:"sancionID"`
	VoluntarioID     string        `json:"voluntarioID"`
	Tipo             TipoSancion   `json:"tipo"`
	Motivo           string        `json:"motivo"`
	FechaInicio      time.Time     `json:"fechaInicio"`
	FechaVencimiento *time.Time    `json:"fechaVencimiento,omitempty"`
	Estado           EstadoSancion `json:"estado"`
	RevocadaPor      string        `json:"revocadaPor,omitempty"`
	FechaRevocacion  *time.Time    `json:"fechaRevocacion,omitempty"`
	AuditFields
}

// ComputeEstado derives the sanction state at the given instant. Revocation
// is permanent and checked first.
func (s Sancion) ComputeEstado(now time.Time) EstadoSancion {
	if s.FechaRevocacion != nil {
		return SancionRevocada
	}
	if s.FechaVencimiento != nil && s.FechaVencimiento.Before(now) {
		return SancionExpirada
	}
	return SancionActiva
}
