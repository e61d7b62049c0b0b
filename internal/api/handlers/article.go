package handlers

import (
	"net/http"

	"lab-portal-backend/internal/auth"
	"lab-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ArticleHandler handles HTTP requests for article operations
type ArticleHandler struct {
	articleService service.ArticleServiceInterface
}

// NewArticleHandler creates a new article handler
func NewArticleHandler(articleService service.ArticleServiceInterface) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
	}
}

// CreateArticle handles POST /articles
// @Summary Create an article
// @Description Create a published article authored by the authenticated user
// @Tags articles
// @Accept json
// @Produce json
// @Param article body service.CreateArticleRequest true "Article data"
// @Success 201 {object} service.ArticleResponse "Successfully created article"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /articles [post]
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	principal, ok := auth.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := h.articleService.Create(&req, principal)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, article)
}

// GetArticle handles GET /articles/:id
// @Summary Get article by ID
// @Description Get a specific article by its UUID
// @Tags articles
// @Accept json
// @Produce json
// @Param id path string true "Article ID (UUID)"
// @Success 200 {object} service.ArticleResponse "Successfully retrieved article"
// @Failure 400 {object} ErrorResponse "Invalid article ID"
// @Failure 404 {object} ErrorResponse "Article not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /articles/{id} [get]
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid article ID"})
		return
	}

	article, err := h.articleService.GetByID(id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

// ListArticles handles GET /articles
// @Summary List articles
// @Description Get all articles, newest first
// @Tags articles
// @Accept json
// @Produce json
// @Success 200 {array} service.ArticleResponse "Successfully retrieved articles"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /articles [get]
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	articles, err := h.articleService.List()
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, articles)
}

// UpdateArticle handles PUT /articles/:id
// @Summary Update article
// @Description Update an article. Allowed for the author or the LabLeader.
// @Tags articles
// @Accept json
// @Produce json
// @Param id path string true "Article ID (UUID)"
// @Param article body service.UpdateArticleRequest true "Fields to update"
// @Success 200 {object} service.ArticleResponse "Successfully updated article"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 403 {object} ErrorResponse "Not allowed"
// @Failure 404 {object} ErrorResponse "Article not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /articles/{id} [put]
func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	principal, ok := auth.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid article ID"})
		return
	}

	var req service.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := h.articleService.Update(id, &req, principal)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

// DeleteArticle handles DELETE /articles/:id
// @Summary Delete article
// @Description Delete an article. Allowed for the author or the LabLeader.
// @Tags articles
// @Accept json
// @Produce json
// @Param id path string true "Article ID (UUID)"
// @Success 204 "Successfully deleted article"
// @Failure 400 {object} ErrorResponse "Invalid article ID"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 403 {object} ErrorResponse "Not allowed"
// @Failure 404 {object} ErrorResponse "Article not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /articles/{id} [delete]
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	principal, ok := auth.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid article ID"})
		return
	}

	if err := h.articleService.Delete(id, principal); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
