package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fundacion-admin/backend/internal/core/ports/services"
	"github.com/fundacion-admin/backend/internal/dto"
	"github.com/fundacion-admin/backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// roleHandler handles role and permission requests.
type roleHandler struct {
	roleService portssvc.RoleSvcFacade
}

func newRoleHandler(rs portssvc.RoleSvcFacade) *roleHandler {
	return &roleHandler{roleService: rs}
}

func registerRoleRoutes(rg *gin.RouterGroup, roleService portssvc.RoleSvcFacade) {
	h := newRoleHandler(roleService)

	roles := rg.Group("/roles")
	{
		roles.POST("", h.createRole)
		roles.GET("", h.listRoles)
		roles.GET("/:roleID", h.getRole)
		roles.PUT("/:roleID", h.updateRole)
		roles.DELETE("/:roleID", h.deleteRole)
		roles.PUT("/:roleID/permissions", h.replacePermissions)
	}
}

// createRole godoc
// @Summary Create a role
// @Tags roles
// @Accept json
// @Produce json
// @Param role body dto.CreateRoleRequest true "Role details"
// @Success 201 {object} dto.RoleResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /roles [post]
func (h *roleHandler) createRole(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, newErrorResponse("Invalid request format: " + err.Error()))
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, newErrorResponse("Unauthorized"))
		return
	}

	role, err := h.roleService.CreateRole(c.Request.Context(), req, creatorUserID)
	if err != nil {
		logger.Warn("Failed to create role",
			slog.String("name", req.Name),
			slog.String("error", err.Error()))
		respondError(c, err, "Failed to create role")
		return
	}

	c.JSON(http.StatusCreated, dto.ToRoleResponse(role))
}

func (h *roleHandler) listRoles(c *gin.Context) {
	roles, err := h.roleService.ListRoles(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list roles")
		return
	}

	out := make([]dto.RoleResponse, len(roles))
	for i := range roles {
		out[i] = dto.ToRoleResponse(&roles[i])
	}
	c.JSON(http.StatusOK, out)
}

func (h *roleHandler) getRole(c *gin.Context) {
	role, err := h.roleService.GetRole(c.Request.Context(), c.Param("roleID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve role")
		return
	}
	c.JSON(http.StatusOK, dto.ToRoleResponse(role))
}

func (h *roleHandler) updateRole(c *gin.Context) {
	var req dto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, newErrorResponse("Invalid request format: " + err.Error()))
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, newErrorResponse("Unauthorized"))
		return
	}

	role, err := h.roleService.UpdateRole(c.Request.Context(), c.Param("roleID"), req, updaterUserID)
	if err != nil {
		respondError(c, err, "Failed to update role")
		return
	}

	c.JSON(http.StatusOK, dto.ToRoleResponse(role))
}

func (h *roleHandler) deleteRole(c *gin.Context) {
	if err := h.roleService.DeleteRole(c.Request.Context(), c.Param("roleID")); err != nil {
		respondError(c, err, "Failed to delete role")
		return
	}
	c.Status(http.StatusNoContent)
}

// replacePermissions godoc
// @Summary Replace a role's permissions
// @Description Swaps the role's permission set; only the computed additions and removals touch the database.
// @Tags roles
// @Accept json
// @Produce json
// @Param roleID path string true "Role ID"
// @Param permissions body dto.ReplacePermissionsRequest true "New permission set"
// @Success 200 {object} dto.RoleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /roles/{roleID}/permissions [put]
func (h *roleHandler) replacePermissions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ReplacePermissionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, newErrorResponse("Invalid request format: " + err.Error()))
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, newErrorResponse("Unauthorized"))
		return
	}

	role, err := h.roleService.ReplacePermissions(c.Request.Context(), c.Param("roleID"), req.Permissions, actorUserID)
	if err != nil {
		logger.Warn("Failed to replace role permissions",
			slog.String("role_id", c.Param("roleID")),
			slog.String("error", err.Error()))
		respondError(c, err, "Failed to replace permissions")
		return
	}

	c.JSON(http.StatusOK, dto.ToRoleResponse(role))
}
