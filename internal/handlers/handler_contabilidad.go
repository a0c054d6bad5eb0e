package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fundacion-admin/backend/internal/core/ports/services"
	"github.com/fundacion-admin/backend/internal/dto"
	"github.com/fundacion-admin/backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// contabilidadHandler handles budget, movement and document requests.
type contabilidadHandler struct {
	contabilidadService portssvc.ContabilidadSvcFacade
}

func newContabilidadHandler(cs portssvc.ContabilidadSvcFacade) *contabilidadHandler {
	return &contabilidadHandler{contabilidadService: cs}
}

func registerContabilidadRoutes(rg *gin.RouterGroup, contabilidadService portssvc.ContabilidadSvcFacade) {
	h := newContabilidadHandler(contabilidadService)

	contabilidad := rg.Group("/contabilidad")
	{
		contabilidad.POST("/presupuestos", h.createPresupuesto)
		contabilidad.PUT("/presupuestos/:presupuestoID", h.updatePresupuesto)
		contabilidad.DELETE("/presupuestos/:presupuestoID", h.deletePresupuesto)

		contabilidad.POST("/transacciones", h.createTransaccion)
		contabilidad.DELETE("/transacciones/:transaccionID", h.deleteTransaccion)

		contabilidad.GET("/projects/:projectID/presupuestos", h.listPresupuestos)
		contabilidad.GET("/projects/:projectID/transacciones", h.listTransacciones)
		contabilidad.GET("/projects/:projectID/resumen", h.getResumen)
		contabilidad.POST("/projects/:projectID/documentos", h.uploadDocumento)
		contabilidad.GET("/projects/:projectID/documentos", h.listDocumentos)
	}
}

// createPresupuesto godoc
// @Summary Register a monthly budget
// @Tags contabilidad
// @Accept json
// @Produce json
// @Param presupuesto body dto.CreatePresupuestoRequest true "Budget details"
// @Success 201 {object} dto.PresupuestoResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /contabilidad/presupuestos [post]
func (h *contabilidadHandler) createPresupuesto(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePresupuestoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, newErrorResponse("Invalid request format: " + err.Error()))
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, newErrorResponse("Unauthorized"))
		return
	}

	p, err := h.contabilidadService.CreatePresupuesto(c.Request.Context(), req, creatorUserID)
	if err != nil {
		logger.Warn("Failed to create presupuesto",
			slog.String("project_id", req.ProjectID),
			slog.String("error", err.Error()))
		respondError(c, err, "Failed to create presupuesto")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPresupuestoResponse(p))
}

func (h *contabilidadHandler) updatePresupuesto(c *gin.Context) {
	var req dto.UpdatePresupuestoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, newErrorResponse("Invalid request format: " + err.Error()))
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, newErrorResponse("Unauthorized"))
		return
	}

	p, err := h.contabilidadService.UpdatePresupuesto(c.Request.Context(), c.Param("presupuestoID"), req, updaterUserID)
	if err != nil {
		respondError(c, err, "Failed to update presupuesto")
		return
	}

	c.JSON(http.StatusOK, dto.ToPresupuestoResponse(p))
}

func (h *contabilidadHandler) deletePresupuesto(c *gin.Context) {
	if err := h.contabilidadService.DeletePresupuesto(c.Request.Context(), c.Param("presupuestoID")); err != nil {
		respondError(c, err, "Failed to delete presupuesto")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *contabilidadHandler) listPresupuestos(c *gin.Context) {
	presupuestos, err := h.contabilidadService.ListPresupuestos(c.Request.Context(), c.Param("projectID"))
	if err != nil {
		respondError(c, err, "Failed to list presupuestos")
		return
	}

	out := make([]dto.PresupuestoResponse, len(presupuestos))
	for i := range presupuestos {
		out[i] = dto.ToPresupuestoResponse(&presupuestos[i])
	}
	c.JSON(http.StatusOK, out)
}

func (h *contabilidadHandler) createTransaccion(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransaccionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, newErrorResponse("Invalid request format: " + err.Error()))
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, newErrorResponse("Unauthorized"))
		return
	}

	t, err := h.contabilidadService.CreateTransaccion(c.Request.Context(), req, creatorUserID)
	if err != nil {
		logger.Warn("Failed to create transaccion",
			slog.String("project_id", req.ProjectID),
			slog.String("error", err.Error()))
		respondError(c, err, "Failed to create transaccion")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransaccionResponse(t))
}

func (h *contabilidadHandler) deleteTransaccion(c *gin.Context) {
	if err := h.contabilidadService.DeleteTransaccion(c.Request.Context(), c.Param("transaccionID")); err != nil {
		respondError(c, err, "Failed to delete transaccion")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *contabilidadHandler) listTransacciones(c *gin.Context) {
	transacciones, err := h.contabilidadService.ListTransacciones(c.Request.Context(), c.Param("projectID"))
	if err != nil {
		respondError(c, err, "Failed to list transacciones")
		return
	}

	out := make([]dto.TransaccionResponse, len(transacciones))
	for i := range transacciones {
		out[i] = dto.ToTransaccionResponse(&transacciones[i])
	}
	c.JSON(http.StatusOK, out)
}

// getResumen godoc
// @Summary Project accounting summary
// @Description Totals ingresos, egresos and saldo for a project.
// @Tags contabilidad
// @Produce json
// @Param projectID path string true "Project ID"
// @Success 200 {object} dto.ResumenResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /contabilidad/projects/{projectID}/resumen [get]
func (h *contabilidadHandler) getResumen(c *gin.Context) {
	resumen, err := h.contabilidadService.Resumen(c.Request.Context(), c.Param("projectID"))
	if err != nil {
		respondError(c, err, "Failed to build resumen")
		return
	}

	c.JSON(http.StatusOK, dto.ResumenResponse{
		ProjectID:     resumen.ProjectID,
		TotalIngresos: resumen.TotalIngresos,
		TotalEgresos:  resumen.TotalEgresos,
		Saldo:         resumen.Saldo,
	})
}

// uploadDocumento godoc
// @Summary Upload an accounting document
// @Tags contabilidad
// @Accept multipart/form-data
// @Produce json
// @Param projectID path string true "Project ID"
// @Param file formData file true "Document (pdf, jpeg or png, max 10MB)"
// @Success 201 {object} dto.DocumentoResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /contabilidad/projects/{projectID}/documentos [post]
func (h *contabilidadHandler) uploadDocumento(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	uploaderUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, newErrorResponse("Unauthorized"))
		return
	}

	upload, err := readUpload(c, "file")
	if err != nil {
		c.JSON(http.StatusBadRequest, newErrorResponse(err.Error()))
		return
	}

	d, err := h.contabilidadService.UploadDocumento(c.Request.Context(), c.Param("projectID"), *upload, uploaderUserID)
	if err != nil {
		logger.Error("Failed to store documento",
			slog.String("project_id", c.Param("projectID")),
			slog.String("error", err.Error()))
		respondError(c, err, "Failed to store documento")
		return
	}

	c.JSON(http.StatusCreated, dto.ToDocumentoResponse(d))
}

func (h *contabilidadHandler) listDocumentos(c *gin.Context) {
	documentos, err := h.contabilidadService.ListDocumentos(c.Request.Context(), c.Param("projectID"))
	if err != nil {
		respondError(c, err, "Failed to list documentos")
		return
	}

	out := make([]dto.DocumentoResponse, len(documentos))
	for i := range documentos {
		out[i] = dto.ToDocumentoResponse(&documentos[i])
	}
	c.JSON(http.StatusOK, out)
}
