package handlers

import (
	"net/http"

	"lab-portal-backend/internal/auth"
	"lab-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// NewsHandler handles HTTP requests for news operations
type NewsHandler struct {
	newsService service.NewsServiceInterface
}

// NewNewsHandler creates a new news handler
func NewNewsHandler(newsService service.NewsServiceInterface) *NewsHandler {
	return &NewsHandler{
		newsService: newsService,
	}
}

// CreateNews handles POST /news
// @Summary Create a news post
// @Description Create a news post authored by the authenticated user
// @Tags news
// @Accept json
// @Produce json
// @Param news body service.CreateNewsRequest true "News data"
// @Success 201 {object} service.NewsResponse "Successfully created news post"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /news [post]
func (h *NewsHandler) CreateNews(c *gin.Context) {
	principal, ok := auth.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	news, err := h.newsService.Create(&req, principal)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, news)
}

// GetNews handles GET /news/:id
// @Summary Get news post by ID
// @Description Get a specific news post by its UUID
// @Tags news
// @Accept json
// @Produce json
// @Param id path string true "News ID (UUID)"
// @Success 200 {object} service.NewsResponse "Successfully retrieved news post"
// @Failure 400 {object} ErrorResponse "Invalid news ID"
// @Failure 404 {object} ErrorResponse "News post not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /news/{id} [get]
func (h *NewsHandler) GetNews(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid news ID"})
		return
	}

	news, err := h.newsService.GetByID(id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, news)
}

// ListNews handles GET /news
// @Summary List news posts
// @Description Get all news posts, newest first
// @Tags news
// @Accept json
// @Produce json
// @Success 200 {array} service.NewsResponse "Successfully retrieved news posts"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /news [get]
func (h *NewsHandler) ListNews(c *gin.Context) {
	news, err := h.newsService.List()
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, news)
}

// UpdateNews handles PUT /news/:id
// @Summary Update news post
// @Description Update a news post. Allowed for the author or the LabLeader.
// @Tags news
// @Accept json
// @Produce json
// @Param id path string true "News ID (UUID)"
// @Param news body service.UpdateNewsRequest true "Fields to update"
// @Success 200 {object} service.NewsResponse "Successfully updated news post"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 403 {object} ErrorResponse "Not allowed"
// @Failure 404 {object} ErrorResponse "News post not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /news/{id} [put]
func (h *NewsHandler) UpdateNews(c *gin.Context) {
	principal, ok := auth.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid news ID"})
		return
	}

	var req service.UpdateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	news, err := h.newsService.Update(id, &req, principal)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, news)
}

// DeleteNews handles DELETE /news/:id
// @Summary Delete news post
// @Description Delete a news post. Allowed for the author or the LabLeader.
// @Tags news
// @Accept json
// @Produce json
// @Param id path string true "News ID (UUID)"
// @Success 204 "Successfully deleted news post"
// @Failure 400 {object} ErrorResponse "Invalid news ID"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 403 {object} ErrorResponse "Not allowed"
// @Failure 404 {object} ErrorResponse "News post not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /news/{id} [delete]
func (h *NewsHandler) DeleteNews(c *gin.Context) {
	principal, ok := auth.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid news ID"})
		return
	}

	if err := h.newsService.Delete(id, principal); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadImage handles POST /news/upload
// @Summary Upload news image
// @Description Upload an image file and get back its public URL
// @Tags news
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file (png, jpg, jpeg, gif, webp)"
// @Success 201 {object} map[string]string "URL of the uploaded image"
// @Failure 400 {object} ErrorResponse "Invalid or missing file"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /news/upload [post]
func (h *NewsHandler) UploadImage(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	url, err := h.newsService.UploadImage(fh)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
