package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Presupuesto is the monthly budget assigned to a project.
type Presupuesto struct {
	PresupuestoID  string          `json:"presupuestoID"`
	ProjectID      string          `json:"projectID"`
	Proyecto       string          `json:"proyecto"`
	Mes            int             `json:"mes"`
	Anio           int             `json:"anio"`
	MontoAsignado  decimal.Decimal `json:"montoAsignado"`
	MontoEjecutado decimal.Decimal `json:"montoEjecutado"`
	AuditFields
}

// TipoTransaccion distinguishes money coming in from money going out.
type TipoTransaccion string

const (
	TransaccionIngreso TipoTransaccion = "ingreso"
	TransaccionEgreso  TipoTransaccion = "egreso"
)

// Transaccion is a single accounting movement against a project.
type Transaccion struct {
	TransaccionID string          `json:"transaccionID"`
	ProjectID     string          `json:"projectID"`
	Tipo          TipoTransaccion `json:"tipo"`
	Categoria     string          `json:"categoria"`
	Descripcion   string          `json:"descripcion"`
	Monto         decimal.Decimal `json:"monto"`
	Fecha         time.Time       `json:"fecha"`
	AuditFields
}

// Documento is a supporting file attached to a project's accounting.
type Documento struct {
	DocumentoID string    `json:"documentoID"`
	ProjectID   string    `json:"projectID"`
	URL         string    `json:"url"`
	Mime        string    `json:"mime"`
	Bytes       int64     `json:"bytes"`
	Filename    string    `json:"filename"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

// ResumenContable totals a project's movements.
type ResumenContable struct {
	ProjectID     string          `json:"projectID"`
	TotalIngresos decimal.Decimal `json:"totalIngresos"`
	TotalEgresos  decimal.Decimal `json:"totalEgresos"`
	Saldo         decimal.Decimal `json:"saldo"`
}
