package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fundacion-admin/backend/internal/core/ports/services"
	"github.com/fundacion-admin/backend/internal/dto"
	"github.com/fundacion-admin/backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// sancionHandler handles disciplinary sanction requests.
type sancionHandler struct {
	sancionService portssvc.SancionSvcFacade
}

func newSancionHandler(ss portssvc.SancionSvcFacade) *sancionHandler {
	return &sancionHandler{sancionService: ss}
}

func registerSancionRoutes(rg *gin.RouterGroup, sancionService portssvc.SancionSvcFacade) {
	h := newSancionHandler(sancionService)

	sanciones := rg.Group("/sanciones")
	{
		sanciones.POST("", h.createSancion)
		sanciones.GET("", h.listSanciones)
		sanciones.GET("/:sancionID", h.getSancion)
		sanciones.PUT("/:sancionID", h.updateSancion)
		sanciones.POST("/:sancionID/revocar", h.revocarSancion)
	}
}

// createSancion godoc
// @Summary Create a sanction
// @Description Opens a disciplinary record against a volunteer.
// @Tags sanciones
// @Accept json
// @Produce json
// @Param sancion body dto.CreateSancionRequest true "Sanction details"
// @Success 201 {object} dto.SancionResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /sanciones [post]
func (h *sancionHandler) createSancion(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSancionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, newErrorResponse("Invalid request format: " + err.Error()))
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, newErrorResponse("Unauthorized"))
		return
	}

	sancion, err := h.sancionService.CreateSancion(c.Request.Context(), req, creatorUserID)
	if err != nil {
		logger.Warn("Failed to create sancion",
			slog.String("voluntario_id", req.VoluntarioID),
			slog.String("error", err.Error()))
		respondError(c, err, "Failed to create sancion")
		return
	}

	c.JSON(http.StatusCreated, dto.ToSancionResponse(sancion))
}

func (h *sancionHandler) listSanciones(c *gin.Context) {
	var params dto.ListSancionesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, newErrorResponse("Invalid query parameters: " + err.Error()))
		return
	}

	sanciones, err := h.sancionService.ListSanciones(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list sanciones")
		return
	}

	c.JSON(http.StatusOK, dto.ToSancionResponses(sanciones))
}

func (h *sancionHandler) getSancion(c *gin.Context) {
	sancion, err := h.sancionService.GetSancion(c.Request.Context(), c.Param("sancionID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve sancion")
		return
	}
	c.JSON(http.StatusOK, dto.ToSancionResponse(sancion))
}

func (h *sancionHandler) updateSancion(c *gin.Context) {
	var req dto.UpdateSancionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, newErrorResponse("Invalid request format: " + err.Error()))
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, newErrorResponse("Unauthorized"))
		return
	}

	sancion, err := h.sancionService.UpdateSancion(c.Request.Context(), c.Param("sancionID"), req, updaterUserID)
	if err != nil {
		respondError(c, err, "Failed to update sancion")
		return
	}

	c.JSON(http.StatusOK, dto.ToSancionResponse(sancion))
}

// revocarSancion godoc
// @Summary Revoke a sanction
// @Description Permanently revokes a sanction; revoked sanctions never expire back to another state.
// @Tags sanciones
// @Accept json
// @Produce json
// @Param sancionID path string true "Sanction ID"
// @Param revocation body dto.RevocarSancionRequest false "Revocation details"
// @Success 200 {object} dto.SancionResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /sanciones/{sancionID}/revocar [post]
func (h *sancionHandler) revocarSancion(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RevocarSancionRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, newErrorResponse("Invalid request format: " + err.Error()))
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, newErrorResponse("Unauthorized"))
		return
	}

	sancion, err := h.sancionService.RevocarSancion(c.Request.Context(), c.Param("sancionID"), req.RevocadaPor, actorUserID)
	if err != nil {
		logger.Warn("Failed to revoke sancion",
			slog.String("sancion_id", c.Param("sancionID")),
			slog.String("error", err.Error()))
		respondError(c, err, "Failed to revoke sancion")
		return
	}

	c.JSON(http.StatusOK, dto.ToSancionResponse(sancion))
}
