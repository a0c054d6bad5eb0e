package dto

import (
	"time"

	"github.com/fundacion-admin/backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePresupuestoRequest registers a monthly budget for a project.
type CreatePresupuestoRequest struct {
	ProjectID      string          `json:"projectID" binding:"required"`
	Proyecto       string          `json:"proyecto" binding:"required"`
	Mes            int             `json:"mes" binding:"required,min=1,max=12"`
	Anio           int             `json:"anio" binding:"required,min=2000"`
	MontoAsignado  decimal.Decimal `json:"montoAsignado" binding:"required"`
	MontoEjecutado decimal.Decimal `json:"montoEjecutado"`
}

// UpdatePresupuestoRequest adjusts an existing budget's amounts.
type UpdatePresupuestoRequest struct {
	MontoAsignado  *decimal.Decimal `json:"montoAsignado"`
	MontoEjecutado *decimal.Decimal `json:"montoEjecutado"`
}

// PresupuestoResponse is the API shape of a budget row.
type PresupuestoResponse struct {
	PresupuestoID  string          `json:"presupuestoID"`
	ProjectID      string          `json:"projectID"`
	Proyecto       string          `json:"proyecto"`
	Mes            int             `json:"mes"`
	Anio           int             `json:"anio"`
	MontoAsignado  decimal.Decimal `json:"montoAsignado"`
	MontoEjecutado decimal.Decimal `json:"montoEjecutado"`
}

func ToPresupuestoResponse(p *domain.Presupuesto) PresupuestoResponse {
	return PresupuestoResponse{
		PresupuestoID:  p.PresupuestoID,
		ProjectID:      p.ProjectID,
		Proyecto:       p.Proyecto,
		Mes:            p.Mes,
		Anio:           p.Anio,
		MontoAsignado:  p.MontoAsignado,
		MontoEjecutado: p.MontoEjecutado,
	}
}

// CreateTransaccionRequest registers an accounting movement.
type CreateTransaccionRequest struct {
	ProjectID   string          `json:"projectID" binding:"required"`
	Tipo        string          `json:"tipo" binding:"required,oneof=ingreso egreso"`
	Categoria   string          `json:"categoria" binding:"required"`
	Descripcion string          `json:"descripcion"`
	Monto       decimal.Decimal `json:"monto" binding:"required"`
	Fecha       *time.Time      `json:"fecha"`
}

// TransaccionResponse is the API shape of a movement.
type TransaccionResponse struct {
	TransaccionID string                 `json:"transaccionID"`
	ProjectID     string                 `json:"projectID"`
	Tipo          domain.TipoTransaccion `json:"tipo"`
	Categoria     string                 `json:"categoria"`
	Descripcion   string                 `json:"descripcion,omitempty"`
	Monto         decimal.Decimal        `json:"monto"`
	Fecha         time.Time              `json:"fecha"`
}

func ToTransaccionResponse(t *domain.Transaccion) TransaccionResponse {
	return TransaccionResponse{
		TransaccionID: t.TransaccionID,
		ProjectID:     t.ProjectID,
		Tipo:          t.Tipo,
		Categoria:     t.Categoria,
		Descripcion:   t.Descripcion,
		Monto:         t.Monto,
		Fecha:         t.Fecha,
	}
}

// ResumenResponse totals a project's movements.
type ResumenResponse struct {
	ProjectID     string          `json:"projectID"`
	TotalIngresos decimal.Decimal `json:"totalIngresos"`
	TotalEgresos  decimal.Decimal `json:"totalEgresos"`
	Saldo         decimal.Decimal `json:"saldo"`
}

// DocumentoResponse is the API shape of an accounting document.
type DocumentoResponse struct {
	DocumentoID string    `json:"documentoID"`
	ProjectID   string    `json:"projectID"`
	URL         string    `json:"url"`
	Mime        string    `json:"mime"`
	Bytes       int64     `json:"bytes"`
	Filename    string    `json:"filename"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

func ToDocumentoResponse(d *domain.Documento) DocumentoResponse {
	return DocumentoResponse{
		DocumentoID: d.DocumentoID,
		ProjectID:   d.ProjectID,
		URL:         d.URL,
		Mime:        d.Mime,
		Bytes:       d.Bytes,
		Filename:    d.Filename,
		UploadedAt:  d.UploadedAt,
	}
}
