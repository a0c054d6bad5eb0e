package dto

import (
	"time"

	"github.com/fundacion-admin/backend/internal/core/domain"
)

// GenerateReportRequest describes the window and modules of a report.
type GenerateReportRequest struct {
	Periodo     string     `json:"periodo" binding:"required,oneof=ANIO RANGO"`
	Anio        int        `json:"anio"`
	FechaInicio *time.Time `json:"fechaInicio"`
	FechaFin    *time.Time `json:"fechaFin"`
	TipoReporte string     `json:"tipoReporte" binding:"required,oneof=Mensual Trimestral Cuatrimestral Semestral Anual"`
	Modulos     []string   `json:"modulos" binding:"required,min=1"`
}

// ReportResponse is the aggregated report returned to clients.
type ReportResponse struct {
	TotalRegistros  int                             `json:"totalRegistros"`
	Detalles        map[string]domain.ModuleSummary `json:"detalles"`
	FechaGeneracion time.Time                       `json:"fechaGeneracion"`
	Desde           time.Time                       `json:"desde"`
	Hasta           time.Time                       `json:"hasta"`
	TipoReporte     domain.TipoReporte              `json:"tipoReporte"`
}

func ToReportResponse(r *domain.Report) ReportResponse {
	detalles := make(map[string]domain.ModuleSummary, len(r.Detalles))
	for m, s := range r.Detalles {
		detalles[string(m)] = s
	}
	return ReportResponse{
		TotalRegistros:  r.TotalRegistros,
		Detalles:        detalles,
		FechaGeneracion: r.FechaGeneracion,
		Desde:           r.Desde,
		Hasta:           r.Hasta,
		TipoReporte:     r.TipoReporte,
	}
}
