package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/fundacion-admin/backend/internal/core/ports/services"
	"github.com/fundacion-admin/backend/internal/dto"
	"github.com/fundacion-admin/backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportHandler handles consolidated report generation and export.
type reportHandler struct {
	reportService portssvc.ReportSvcFacade
}

func newReportHandler(rs portssvc.ReportSvcFacade) *reportHandler {
	return &reportHandler{reportService: rs}
}

func registerReportRoutes(rg *gin.RouterGroup, reportService portssvc.ReportSvcFacade) {
	h := newReportHandler(reportService)

	reports := rg.Group("/reports")
	{
		reports.POST("", h.generateReport)
		reports.POST("/pdf", h.exportPDF)
		reports.POST("/excel", h.exportExcel)
	}
}

// generateReport godoc
// @Summary Generate a consolidated report
// @Description Aggregates the requested modules over the given window and buckets rows by granularity.
// @Tags reports
// @Accept json
// @Produce json
// @Param filters body dto.GenerateReportRequest true "Report filters"
// @Success 200 {object} dto.ReportResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports [post]
func (h *reportHandler) generateReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, newErrorResponse("Invalid request format: " + err.Error()))
		return
	}

	report, err := h.reportService.GenerateReport(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Failed to generate report", slog.String("error", err.Error()))
		respondError(c, err, "Failed to generate report")
		return
	}

	c.JSON(http.StatusOK, dto.ToReportResponse(report))
}

// exportPDF godoc
// @Summary Export a report as PDF
// @Tags reports
// @Accept json
// @Produce application/pdf
// @Param filters body dto.GenerateReportRequest true "Report filters"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/pdf [post]
func (h *reportHandler) exportPDF(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, newErrorResponse("Invalid request format: " + err.Error()))
		return
	}

	report, err := h.reportService.GenerateReport(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to generate report")
		return
	}

	pdf, err := h.reportService.ExportPDF(c.Request.Context(), report)
	if err != nil {
		logger.Error("Failed to render report PDF", slog.String("error", err.Error()))
		respondError(c, err, "Failed to render PDF")
		return
	}

	filename := fmt.Sprintf("reporte_%s.pdf", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// exportExcel godoc
// @Summary Export a report as XLSX
// @Tags reports
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param filters body dto.GenerateReportRequest true "Report filters"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/excel [post]
func (h *reportHandler) exportExcel(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, newErrorResponse("Invalid request format: " + err.Error()))
		return
	}

	report, err := h.reportService.GenerateReport(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to generate report")
		return
	}

	xlsx, err := h.reportService.ExportExcel(c.Request.Context(), report)
	if err != nil {
		logger.Error("Failed to render report XLSX", slog.String("error", err.Error()))
		respondError(c, err, "Failed to render Excel file")
		return
	}

	filename := fmt.Sprintf("reporte_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", xlsx)
}
