package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fundacion-admin/backend/internal/core/ports/services"
	"github.com/fundacion-admin/backend/internal/dto"
	"github.com/fundacion-admin/backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// collaboratorHandler handles collaborator account requests.
type collaboratorHandler struct {
	collaboratorService portssvc.CollaboratorSvcFacade
}

func newCollaboratorHandler(cs portssvc.CollaboratorSvcFacade) *collaboratorHandler {
	return &collaboratorHandler{collaboratorService: cs}
}

func registerCollaboratorRoutes(rg *gin.RouterGroup, collaboratorService portssvc.CollaboratorSvcFacade) {
	h := newCollaboratorHandler(collaboratorService)

	collaborators := rg.Group("/collaborators")
	{
		collaborators.POST("", h.createCollaborator)
		collaborators.GET("", h.listCollaborators)
		collaborators.GET("/:collaboratorID", h.getCollaborator)
		collaborators.PUT("/:collaboratorID", h.updateCollaborator)
		collaborators.DELETE("/:collaboratorID", h.deleteCollaborator)
	}
}

// createCollaborator godoc
// @Summary Register a collaborator
// @Description Creates a staff account. The collaborator must be an adult; email and cedula must be unused.
// @Tags collaborators
// @Accept json
// @Produce json
// @Param collaborator body dto.CreateCollaboratorRequest true "Collaborator details"
// @Success 201 {object} dto.CollaboratorResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /collaborators [post]
func (h *collaboratorHandler) createCollaborator(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCollaboratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, newErrorResponse("Invalid request format: " + err.Error()))
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, newErrorResponse("Unauthorized"))
		return
	}

	collaborator, err := h.collaboratorService.CreateCollaborator(c.Request.Context(), req, creatorUserID)
	if err != nil {
		logger.Warn("Failed to create collaborator",
			slog.String("email", req.Email),
			slog.String("error", err.Error()))
		respondError(c, err, "Failed to create collaborator")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCollaboratorResponse(collaborator))
}

func (h *collaboratorHandler) listCollaborators(c *gin.Context) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, newErrorResponse("Invalid query parameters: " + err.Error()))
		return
	}

	collaborators, err := h.collaboratorService.ListCollaborators(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "Failed to list collaborators")
		return
	}

	out := make([]dto.CollaboratorResponse, len(collaborators))
	for i := range collaborators {
		out[i] = dto.ToCollaboratorResponse(&collaborators[i])
	}
	c.JSON(http.StatusOK, out)
}

func (h *collaboratorHandler) getCollaborator(c *gin.Context) {
	collaborator, err := h.collaboratorService.GetCollaborator(c.Request.Context(), c.Param("collaboratorID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve collaborator")
		return
	}
	c.JSON(http.StatusOK, dto.ToCollaboratorResponse(collaborator))
}

func (h *collaboratorHandler) updateCollaborator(c *gin.Context) {
	var req dto.UpdateCollaboratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, newErrorResponse("Invalid request format: " + err.Error()))
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, newErrorResponse("Unauthorized"))
		return
	}

	collaborator, err := h.collaboratorService.UpdateCollaborator(c.Request.Context(), c.Param("collaboratorID"), req, updaterUserID)
	if err != nil {
		respondError(c, err, "Failed to update collaborator")
		return
	}

	c.JSON(http.StatusOK, dto.ToCollaboratorResponse(collaborator))
}

func (h *collaboratorHandler) deleteCollaborator(c *gin.Context) {
	deleterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, newErrorResponse("Unauthorized"))
		return
	}

	if err := h.collaboratorService.DeleteCollaborator(c.Request.Context(), c.Param("collaboratorID"), deleterUserID); err != nil {
		respondError(c, err, "Failed to delete collaborator")
		return
	}
	c.Status(http.StatusNoContent)
}
