package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fundacion-admin/backend/internal/core/ports/services"
	"github.com/fundacion-admin/backend/internal/dto"
	"github.com/fundacion-admin/backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// volunteerHandler handles volunteer requests.
type volunteerHandler struct {
	volunteerService portssvc.VolunteerSvcFacade
}

func newVolunteerHandler(vs portssvc.VolunteerSvcFacade) *volunteerHandler {
	return &volunteerHandler{volunteerService: vs}
}

func registerVolunteerRoutes(rg *gin.RouterGroup, volunteerService portssvc.VolunteerSvcFacade) {
	h := newVolunteerHandler(volunteerService)

	volunteers := rg.Group("/volunteers")
	{
		volunteers.POST("", h.createVolunteer)
		volunteers.GET("", h.listVolunteers)
		volunteers.GET("/:volunteerID", h.getVolunteer)
		volunteers.PUT("/:volunteerID", h.updateVolunteer)
		volunteers.DELETE("/:volunteerID", h.deleteVolunteer)
	}
}

// createVolunteer godoc
// @Summary Register a volunteer
// @Description Creates a volunteer; email and cedula must be unused.
// @Tags volunteers
// @Accept json
// @Produce json
// @Param volunteer body dto.CreateVolunteerRequest true "Volunteer details"
// @Success 201 {object} dto.VolunteerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /volunteers [post]
func (h *volunteerHandler) createVolunteer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateVolunteerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, newErrorResponse("Invalid request format: " + err.Error()))
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, newErrorResponse("Unauthorized"))
		return
	}

	volunteer, err := h.volunteerService.CreateVolunteer(c.Request.Context(), req, creatorUserID)
	if err != nil {
		logger.Warn("Failed to create volunteer",
			slog.String("email", req.Email),
			slog.String("error", err.Error()))
		respondError(c, err, "Failed to create volunteer")
		return
	}

	c.JSON(http.StatusCreated, dto.ToVolunteerResponse(volunteer))
}

func (h *volunteerHandler) listVolunteers(c *gin.Context) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, newErrorResponse("Invalid query parameters: " + err.Error()))
		return
	}

	volunteers, err := h.volunteerService.ListVolunteers(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "Failed to list volunteers")
		return
	}

	out := make([]dto.VolunteerResponse, len(volunteers))
	for i := range volunteers {
		out[i] = dto.ToVolunteerResponse(&volunteers[i])
	}
	c.JSON(http.StatusOK, out)
}

func (h *volunteerHandler) getVolunteer(c *gin.Context) {
	volunteer, err := h.volunteerService.GetVolunteer(c.Request.Context(), c.Param("volunteerID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve volunteer")
		return
	}
	c.JSON(http.StatusOK, dto.ToVolunteerResponse(volunteer))
}

func (h *volunteerHandler) updateVolunteer(c *gin.Context) {
	var req dto.UpdateVolunteerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, newErrorResponse("Invalid request format: " + err.Error()))
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, newErrorResponse("Unauthorized"))
		return
	}

	volunteer, err := h.volunteerService.UpdateVolunteer(c.Request.Context(), c.Param("volunteerID"), req, updaterUserID)
	if err != nil {
		respondError(c, err, "Failed to update volunteer")
		return
	}

	c.JSON(http.StatusOK, dto.ToVolunteerResponse(volunteer))
}

func (h *volunteerHandler) deleteVolunteer(c *gin.Context) {
	deleterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, newErrorResponse("Unauthorized"))
		return
	}

	if err := h.volunteerService.DeleteVolunteer(c.Request.Context(), c.Param("volunteerID"), deleterUserID); err != nil {
		respondError(c, err, "Failed to delete volunteer")
		return
	}
	c.Status(http.StatusNoContent)
}
