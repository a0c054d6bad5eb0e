package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Presupuesto struct {
	PresupuestoID  string          `db:"presupuesto_id"`
	ProjectID      string          `db:"project_id"`
	Proyecto       string          `db:"proyecto"`
	Mes            int             `db:"mes"`
	Anio           int             `db:"anio"`
	MontoAsignado  decimal.Decimal `db:"monto_asignado"`
	MontoEjecutado decimal.Decimal `db:"monto_ejecutado"`
	AuditFields
}

type Transaccion struct {
	TransaccionID string          `db:"transaccion_id"`
	ProjectID     string          `db:"project_id"`
	Tipo          string          `db:"tipo"`
	Categoria     string          `db:"categoria"`
	Descripcion   string          `db:"descripcion"`
	Monto         decimal.Decimal `db:"monto"`
	Fecha         time.Time       `db:"fecha"`
	AuditFields
}

type Documento struct {
	DocumentoID string    `db:"documento_id"`
	ProjectID   string    `db:"project_id"`
	URL         string    `db:"url"`
	Mime        string    `db:"mime"`
	Bytes       int64     `db:"bytes"`
	Filename    string    `db:"filename"`
	UploadedAt  time.Time `db:"uploaded_at"`
}
