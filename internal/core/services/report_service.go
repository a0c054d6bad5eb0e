package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/fundacion-admin/backend/internal/apperrors"
	"github.com/fundacion-admin/backend/internal/core/domain"
	portsrepo "github.com/fundacion-admin/backend/internal/core/ports/repositories"
	portssvc "github.com/fundacion-admin/backend/internal/core/ports/services"
	"github.com/fundacion-admin/backend/internal/dto"
	"github.com/fundacion-admin/backend/internal/platform/printing"
	"github.com/fundacion-admin/backend/internal/utils/reporting"
	"github.com/xuri/excelize/v2"
)

type reportService struct {
	BaseService
	repo     portsrepo.ReportRepositoryFacade
	renderer printing.PDFRenderer
}

// NewReportService creates the consolidated report service.
func NewReportService(repo portsrepo.ReportRepositoryFacade, renderer printing.PDFRenderer) portssvc.ReportSvcFacade {
	return &reportService{
		repo:     repo,
		renderer: renderer,
	}
}

// Ensure implementation matches interface
var _ portssvc.ReportSvcFacade = (*reportService)(nil)

// moduleDates routes a module name to the repository query feeding it. The
// module set is closed; anything else is a validation error.
func (s *reportService) moduleDates(ctx context.Context, module domain.ReportModule, from, to time.Time) ([]time.Time, error) {
	switch module {
	case domain.ModuleProjects:
		return s.repo.ProjectDates(ctx, from, to)
	case domain.ModuleBilling:
		return s.repo.InvoiceDates(ctx, from, to)
	case domain.ModuleContabilidad:
		return s.repo.TransaccionDates(ctx, from, to)
	case domain.ModuleCollaborator:
		return s.repo.CollaboratorDates(ctx, from, to)
	case domain.ModuleSolicitudes:
		return s.repo.SolicitudDates(ctx, from, to)
	case domain.ModuleVolunteer:
		return s.repo.VolunteerDates(ctx, from, to)
	default:
		return nil, fmt.Errorf("%w: unknown report module %q", apperrors.ErrValidation, module)
	}
}

// GenerateReport aggregates all requested modules over the resolved window
// and buckets rows by the report granularity.
func (s *reportService) GenerateReport(ctx context.Context, req dto.GenerateReportRequest) (*domain.Report, error) {
	filters := domain.ReportFilters{
		Periodo:     domain.Periodo(req.Periodo),
		Anio:        req.Anio,
		TipoReporte: domain.TipoReporte(req.TipoReporte),
	}
	if req.FechaInicio != nil {
		filters.FechaInicio = *req.FechaInicio
	}
	if req.FechaFin != nil {
		filters.FechaFin = *req.FechaFin
	}

	from, to, err := reporting.ResolveWindow(filters)
	if err != nil {
		return nil, err
	}

	report := &domain.Report{
		Detalles:        make(map[domain.ReportModule]domain.ModuleSummary, len(req.Modulos)),
		FechaGeneracion: time.Now(),
		Desde:           from,
		Hasta:           to,
		TipoReporte:     filters.TipoReporte,
	}

	seen := make(map[domain.ReportModule]bool, len(req.Modulos))
	for _, name := range req.Modulos {
		module := domain.ReportModule(name)
		if seen[module] {
			continue
		}
		seen[module] = true

		dates, err := s.moduleDates(ctx, module, from, to)
		if err != nil {
			s.LogError(ctx, err, "Failed to aggregate report module", slog.String("module", name))
			return nil, err
		}

		summary := domain.ModuleSummary{
			Total:  len(dates),
			Grupos: make(map[string]int),
		}
		for _, d := range dates {
			label, err := reporting.GroupLabel(filters.TipoReporte, d)
			if err != nil {
				return nil, err
			}
			summary.Grupos[label]++
		}

		report.Detalles[module] = summary
		report.TotalRegistros += summary.Total
	}

	s.LogInfo(ctx, "Report generated",
		slog.Int("total_registros", report.TotalRegistros),
		slog.Int("modules", len(report.Detalles)))
	return report, nil
}

// ExportPDF renders a generated report as a PDF document.
func (s *reportService) ExportPDF(ctx context.Context, report *domain.Report) ([]byte, error) {
	html, err := printing.BuildReportHTML(report)
	if err != nil {
		return nil, err
	}
	pdf, err := s.renderer.RenderPDF(ctx, html)
	if err != nil {
		s.LogError(ctx, err, "Failed to render report PDF")
		return nil, err
	}
	return pdf, nil
}

// ExportExcel renders a generated report as an XLSX workbook, one sheet per
// module with a bucket/count table.
func (s *reportService) ExportExcel(ctx context.Context, report *domain.Report) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("%w: no report to export", apperrors.ErrValidation)
	}

	f := excelize.NewFile()
	defer f.Close()

	const summarySheet = "Resumen"
	f.SetSheetName(f.GetSheetName(0), summarySheet)
	f.SetCellValue(summarySheet, "A1", "Reporte consolidado")
	f.SetCellValue(summarySheet, "A2", "Tipo")
	f.SetCellValue(summarySheet, "B2", string(report.TipoReporte))
	f.SetCellValue(summarySheet, "A3", "Desde")
	f.SetCellValue(summarySheet, "B3", report.Desde.Format("2006-01-02"))
	f.SetCellValue(summarySheet, "A4", "Hasta")
	f.SetCellValue(summarySheet, "B4", report.Hasta.Format("2006-01-02"))
	f.SetCellValue(summarySheet, "A5", "Total de registros")
	f.SetCellValue(summarySheet, "B5", report.TotalRegistros)

	modules := make([]domain.ReportModule, 0, len(report.Detalles))
	for m := range report.Detalles {
		modules = append(modules, m)
	}
	sort.Slice(modules, func(i, j int) bool { return modules[i] < modules[j] })

	for _, module := range modules {
		summary := report.Detalles[module]
		sheet := string(module)
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("failed to add sheet %s: %w", sheet, err)
		}
		f.SetCellValue(sheet, "A1", "Grupo")
		f.SetCellValue(sheet, "B1", "Registros")

		labels := make([]string, 0, len(summary.Grupos))
		for label := range summary.Grupos {
			labels = append(labels, label)
		}
		sort.Strings(labels)

		row := 2
		for _, label := range labels {
			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), label)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", row), summary.Grupos[label])
			row++
		}
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Total")
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), summary.Total)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		s.LogError(ctx, err, "Failed to write report workbook")
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
