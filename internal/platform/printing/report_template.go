package printing

import (
	"fmt"
	"html/template"
	"sort"
	"strings"

	"github.com/fundacion-admin/backend/internal/core/domain"
)

const reportHTML = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<style>
  body { font-family: Helvetica, Arial, sans-serif; color: #222; margin: 24px; }
  h1 { font-size: 20px; border-bottom: 2px solid #444; padding-bottom: 6px; }
  h2 { font-size: 15px; margin-top: 18px; }
  table { border-collapse: collapse; width: 100%; margin-top: 6px; }
  th, td { border: 1px solid #bbb; padding: 4px 8px; font-size: 12px; text-align: left; }
  th { background: #f0f0f0; }
  .meta { font-size: 11px; color: #666; margin-top: 4px; }
</style>
</head>
<body>
<h1>Informe consolidado de actividad</h1>
<p class="meta">Tipo: {{.TipoReporte}} &mdash; Periodo: {{.Desde.Format "02/01/2006"}} a {{.Hasta.Format "02/01/2006"}}
&mdash; Generado: {{.FechaGeneracion.Format "02/01/2006 15:04"}}</p>
<p>Total de registros: <strong>{{.TotalRegistros}}</strong></p>
{{range .Modulos}}
<h2>{{.Nombre}} ({{.Total}})</h2>
<table>
  <tr><th>Grupo</th><th>Registros</th></tr>
  {{range .Grupos}}<tr><td>{{.Label}}</td><td>{{.Count}}</td></tr>
  {{end}}
</table>
{{end}}
</body>
</html>`

var reportTmpl = template.Must(template.New("report").Parse(reportHTML))

type reportGroupView struct {
	Label string
	Count int
}

type reportModuleView struct {
	Nombre string
	Total  int
	Grupos []reportGroupView
}

type reportView struct {
	TipoReporte     domain.TipoReporte
	Desde, Hasta    interface{ Format(string) string }
	FechaGeneracion interface{ Format(string) string }
	TotalRegistros  int
	Modulos         []reportModuleView
}

// BuildReportHTML renders the aggregated report into the printable HTML
// document consumed by the PDF renderer. Modules and groups are emitted in
// stable sorted order.
func BuildReportHTML(report *domain.Report) (string, error) {
	if report == nil {
		return "", fmt.Errorf("report is nil")
	}

	view := reportView{
		TipoReporte:     report.TipoReporte,
		Desde:           report.Desde,
		Hasta:           report.Hasta,
		FechaGeneracion: report.FechaGeneracion,
		TotalRegistros:  report.TotalRegistros,
	}

	moduleNames := make([]string, 0, len(report.Detalles))
	for m := range report.Detalles {
		moduleNames = append(moduleNames, string(m))
	}
	sort.Strings(moduleNames)

	for _, name := range moduleNames {
		summary := report.Detalles[domain.ReportModule(name)]
		mv := reportModuleView{Nombre: name, Total: summary.Total}
		labels := make([]string, 0, len(summary.Grupos))
		for l := range summary.Grupos {
			labels = append(labels, l)
		}
		sort.Strings(labels)
		for _, l := range labels {
			mv.Grupos = append(mv.Grupos, reportGroupView{Label: l, Count: summary.Grupos[l]})
		}
		view.Modulos = append(view.Modulos, mv)
	}

	var b strings.Builder
	if err := reportTmpl.Execute(&b, view); err != nil {
		return "", fmt.Errorf("failed to render report template: %w", err)
	}
	return b.String(), nil
}
