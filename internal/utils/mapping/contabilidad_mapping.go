package mapping

import (
	"github.com/fundacion-admin/backend/internal/core/domain"
	"github.com/fundacion-admin/backend/internal/models"
)

// ToModelPresupuesto converts a domain Presupuesto to a model Presupuesto
func ToModelPresupuesto(d domain.Presupuesto) models.Presupuesto {
	return models.Presupuesto{
		PresupuestoID:  d.PresupuestoID,
		ProjectID:      d.ProjectID,
		Proyecto:       d.Proyecto,
		Mes:            d.Mes,
		Anio:           d.Anio,
		MontoAsignado:  d.MontoAsignado,
		MontoEjecutado: d.MontoEjecutado,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPresupuesto converts a model Presupuesto to a domain Presupuesto
func ToDomainPresupuesto(m models.Presupuesto) domain.Presupuesto {
	return domain.Presupuesto{
		PresupuestoID:  m.PresupuestoID,
		ProjectID:      m.ProjectID,
		Proyecto:       m.Proyecto,
		Mes:            m.Mes,
		Anio:           m.Anio,
		MontoAsignado:  m.MontoAsignado,
		MontoEjecutado: m.MontoEjecutado,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPresupuestoSlice converts a slice of model Presupuestos to domain Presupuestos
func ToDomainPresupuestoSlice(ms []models.Presupuesto) []domain.Presupuesto {
	ds := make([]domain.Presupuesto, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPresupuesto(m)
	}
	return ds
}

// ToModelTransaccion converts a domain Transaccion to a model Transaccion
func ToModelTransaccion(d domain.Transaccion) models.Transaccion {
	return models.Transaccion{
		TransaccionID: d.TransaccionID,
		ProjectID:     d.ProjectID,
		Tipo:          string(d.Tipo),
		Categoria:     d.Categoria,
		Descripcion:   d.Descripcion,
		Monto:         d.Monto,
		Fecha:         d.Fecha,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaccion converts a model Transaccion to a domain Transaccion
func ToDomainTransaccion(m models.Transaccion) domain.Transaccion {
	return domain.Transaccion{
		TransaccionID: m.TransaccionID,
		ProjectID:     m.ProjectID,
		Tipo:          domain.TipoTransaccion(m.Tipo),
		Categoria:     m.Categoria,
		Descripcion:   m.Descripcion,
		Monto:         m.Monto,
		Fecha:         m.Fecha,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransaccionSlice converts a slice of model Transacciones to domain Transacciones
func ToDomainTransaccionSlice(ms []models.Transaccion) []domain.Transaccion {
	ds := make([]domain.Transaccion, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaccion(m)
	}
	return ds
}

// ToModelDocumento converts a domain Documento to a model Documento
func ToModelDocumento(d domain.Documento) models.Documento {
	return models.Documento{
		DocumentoID: d.DocumentoID,
		ProjectID:   d.ProjectID,
		URL:         d.URL,
		Mime:        d.Mime,
		Bytes:       d.Bytes,
		Filename:    d.Filename,
		UploadedAt:  d.UploadedAt,
	}
}

// ToDomainDocumento converts a model Documento to a domain Documento
func ToDomainDocumento(m models.Documento) domain.Documento {
	return domain.Documento{
		DocumentoID: m.DocumentoID,
		ProjectID:   m.ProjectID,
		URL:         m.URL,
		Mime:        m.Mime,
		Bytes:       m.Bytes,
		Filename:    m.Filename,
		UploadedAt:  m.UploadedAt,
	}
}

// ToDomainDocumentoSlice converts a slice of model Documentos to domain Documentos
func ToDomainDocumentoSlice(ms []models.Documento) []domain.Documento {
	ds := make([]domain.Documento, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDocumento(m)
	}
	return ds
}
