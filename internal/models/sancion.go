package models

import (
	"database/sql"
	"time"
)

type Sancion struct {
	SancionID        string         `db:"sancion_id"`
	VoluntarioID     string         `db:"voluntario_id"`
	Tipo             string         `db:"tipo"`
	Motivo           string         `db:"motivo"`
	FechaInicio      time.Time      `db:"fecha_inicio"`
	FechaVencimiento sql.NullTime   `db:"fecha_vencimiento"`
	Estado           string         `db:"estado"`
	RevocadaPor      sql.NullString `db:"revocada_por"`
	FechaRevocacion  sql.NullTime   `db:"fecha_revocacion"`
	AuditFields
}
