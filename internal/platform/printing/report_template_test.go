package printing

import (
	"testing"
	"time"

	"github.com/fundacion-admin/backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReportHTML(t *testing.T) {
	report := &domain.Report{
		TotalRegistros: 5,
		Detalles: map[domain.ReportModule]domain.ModuleSummary{
			domain.ModuleProjects: {Total: 2, Grupos: map[string]int{"marzo": 2}},
			domain.ModuleBilling:  {Total: 3, Grupos: map[string]int{"enero": 1, "febrero": 2}},
		},
		FechaGeneracion: time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC),
		Desde:           time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Hasta:           time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC),
		TipoReporte:     domain.ReporteMensual,
	}

	html, err := BuildReportHTML(report)
	require.NoError(t, err)
	assert.Contains(t, html, "Informe consolidado")
	assert.Contains(t, html, "marzo")
	assert.Contains(t, html, "projects (2)")
	assert.Contains(t, html, "billing (3)")
	assert.Contains(t, html, "Total de registros: <strong>5</strong>")
}

func TestBuildReportHTMLNilReport(t *testing.T) {
	_, err := BuildReportHTML(nil)
	assert.Error(t, err)
}
