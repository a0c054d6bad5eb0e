package domain

import "time"

// Periodo selects how the report window is expressed.
type Periodo string

const (
	PeriodoAnio  Periodo = "ANIO"
	PeriodoRango Periodo = "RANGO"
)

// TipoReporte selects the bucketing granularity of the report.
type TipoReporte string

const (
	ReporteMensual      TipoReporte = "Mensual"
	ReporteTrimestral   TipoReporte = "Trimestral"
	ReporteCuatrimestre TipoReporte = "Cuatrimestral"
	ReporteSemestral    TipoReporte = "Semestral"
	ReporteAnual        TipoReporte = "Anual"
)

// ReportModule names a data source included in a consolidated report.
// The set is closed; unknown names are rejected.
type ReportModule string

const (
	ModuleProjects     ReportModule = "projects"
	ModuleBilling      ReportModule = "billing"
	ModuleContabilidad ReportModule = "contabilidad"
	ModuleCollaborator ReportModule = "collaborator"
	ModuleSolicitudes  ReportModule = "solicitudes"
	ModuleVolunteer    ReportModule = "volunteer"
)

// ReportFilters describes the window and modules of a consolidated report.
type ReportFilters struct {
	Periodo     Periodo
	Anio        int
	FechaInicio time.Time
	FechaFin    time.Time
	TipoReporte TipoReporte
	Modulos     []ReportModule
}

// ModuleSummary is the per-module slice of a report: total rows in the
// window plus counts per time bucket.
type ModuleSummary struct {
	Total  int            `json:"total"`
	Grupos map[string]int `json:"grupos"`
}

// Report is the consolidated cross-module activity summary.
type Report struct {
	TotalRegistros  int                            `json:"totalRegistros"`
	Detalles        map[ReportModule]ModuleSummary `json:"detalles"`
	FechaGeneracion time.Time                      `json:"fechaGeneracion"`
	Desde           time.Time                      `json:"desde"`
	Hasta           time.Time                      `json:"hasta"`
	TipoReporte     TipoReporte                    `json:"tipoReporte"`
}
