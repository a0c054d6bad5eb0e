package mapping

import (
	"github.com/fundacion-admin/backend/internal/core/domain"
	"github.com/fundacion-admin/backend/internal/models"
)

// ToModelSancion converts a domain Sancion to a model Sancion
func ToModelSancion(d domain.Sancion) models.Sancion {
	return models.Sancion{
		SancionID:        d.SancionID,
		VoluntarioID:     d.VoluntarioID,
		Tipo:             string(d.Tipo),
		Motivo:           d.Motivo,
		FechaInicio:      d.FechaInicio,
		FechaVencimiento: toNullTime(d.FechaVencimiento),
		Estado:           string(d.Estado),
		RevocadaPor:      toNullString(d.RevocadaPor),
		FechaRevocacion:  toNullTime(d.FechaRevocacion),
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSancion converts a model Sancion to a domain Sancion
func ToDomainSancion(m models.Sancion) domain.Sancion {
	return domain.Sancion{
		SancionID:        m.SancionID,
		VoluntarioID:     m.VoluntarioID,
		Tipo:             domain.TipoSancion(m.Tipo),
		Motivo:           m.Motivo,
		FechaInicio:      m.FechaInicio,
		FechaVencimiento: fromNullTime(m.FechaVencimiento),
		Estado:           domain.EstadoSancion(m.Estado),
		RevocadaPor:      fromNullString(m.RevocadaPor),
		FechaRevocacion:  fromNullTime(m.FechaRevocacion),
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainSancionSlice converts a slice of model Sanciones to domain Sanciones
func ToDomainSancionSlice(ms []models.Sancion) []domain.Sancion {
	ds := make([]domain.Sancion, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSancion(m)
	}
	return ds
}
