package services

import (
	"context"

	"github.com/fundacion-admin/backend/internal/core/domain"
	"github.com/fundacion-admin/backend/internal/dto"
)

// ReportSvcFacade builds and exports consolidated activity reports.
type ReportSvcFacade interface {
	// GenerateReport aggregates all requested modules over the resolved
	// window and buckets rows by the report granularity. Unknown module
	// names are rejected.
	GenerateReport(ctx context.Context, req dto.GenerateReportRequest) (*domain.Report, error)

	// ExportPDF renders a generated report as a PDF document.
	ExportPDF(ctx context.Context, report *domain.Report) ([]byte, error)

	// ExportExcel renders a generated report as an XLSX workbook.
	ExportExcel(ctx context.Context, report *domain.Report) ([]byte, error)
}
