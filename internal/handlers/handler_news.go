package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fundacion-admin/backend/internal/core/ports/services"
	"github.com/fundacion-admin/backend/internal/dto"
	"github.com/fundacion-admin/backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// newsHandler handles news article requests.
type newsHandler struct {
	newsService portssvc.NewsSvcFacade
}

func newNewsHandler(ns portssvc.NewsSvcFacade) *newsHandler {
	return &newsHandler{newsService: ns}
}

func registerNewsRoutes(rg *gin.RouterGroup, newsService portssvc.NewsSvcFacade) {
	h := newNewsHandler(newsService)

	news := rg.Group("/news")
	{
		news.POST("", h.createNews)
		news.GET("", h.listNews)
		news.GET("/:slug", h.getNewsBySlug)
		news.PUT("/:slug", h.updateNews)
		news.DELETE("/:slug", h.deleteNews)
	}
}

// createNews godoc
// @Summary Publish a news article
// @Description Creates an article; the slug must be unique and is immutable afterwards.
// @Tags news
// @Accept json
// @Produce json
// @Param article body dto.CreateNewsRequest true "Article details"
// @Success 201 {object} dto.NewsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /news [post]
func (h *newsHandler) createNews(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, newErrorResponse("Invalid request format: " + err.Error()))
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, newErrorResponse("Unauthorized"))
		return
	}

	article, err := h.newsService.CreateNews(c.Request.Context(), req, creatorUserID)
	if err != nil {
		logger.Warn("Failed to create news article",
			slog.String("slug", req.Slug),
			slog.String("error", err.Error()))
		respondError(c, err, "Failed to create news article")
		return
	}

	c.JSON(http.StatusCreated, dto.ToNewsResponse(article))
}

func (h *newsHandler) listNews(c *gin.Context) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, newErrorResponse("Invalid query parameters: " + err.Error()))
		return
	}

	articles, err := h.newsService.ListNews(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "Failed to list news")
		return
	}

	out := make([]dto.NewsResponse, len(articles))
	for i := range articles {
		out[i] = dto.ToNewsResponse(&articles[i])
	}
	c.JSON(http.StatusOK, out)
}

func (h *newsHandler) getNewsBySlug(c *gin.Context) {
	article, err := h.newsService.GetNewsBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err, "Failed to retrieve news article")
		return
	}
	c.JSON(http.StatusOK, dto.ToNewsResponse(article))
}

func (h *newsHandler) updateNews(c *gin.Context) {
	var req dto.UpdateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, newErrorResponse("Invalid request format: " + err.Error()))
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, newErrorResponse("Unauthorized"))
		return
	}

	article, err := h.newsService.GetNewsBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err, "Failed to retrieve news article")
		return
	}

	updated, err := h.newsService.UpdateNews(c.Request.Context(), article.NewsID, req, updaterUserID)
	if err != nil {
		respondError(c, err, "Failed to update news article")
		return
	}

	c.JSON(http.StatusOK, dto.ToNewsResponse(updated))
}

func (h *newsHandler) deleteNews(c *gin.Context) {
	article, err := h.newsService.GetNewsBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err, "Failed to retrieve news article")
		return
	}

	if err := h.newsService.DeleteNews(c.Request.Context(), article.NewsID); err != nil {
		respondError(c, err, "Failed to delete news article")
		return
	}
	c.Status(http.StatusNoContent)
}
