package handlers

import (
	"net/http"

	"lab-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DirectoryHandler handles directory lookup HTTP requests
type DirectoryHandler struct {
	service service.DirectoryServiceInterface
}

// NewDirectoryHandler creates a new directory handler
func NewDirectoryHandler(s service.DirectoryServiceInterface) *DirectoryHandler {
	return &DirectoryHandler{service: s}
}

// Search searches directory entries by CN prefix
// @Summary Search the institute directory
// @Description Searches the LDAP directory for people whose cn starts with the given prefix
// @Tags directory
// @Produce json
// @Param cn query string true "Common name prefix"
// @Success 200 {object} map[string]interface{} "Search results"
// @Failure 400 {object} ErrorResponse "Missing or invalid query parameter"
// @Failure 502 {object} ErrorResponse "Directory connection or search failed"
// @Security BearerAuth
// @Router /directory/search [get]
func (h *DirectoryHandler) Search(c *gin.Context) {
	cn := c.Query("cn")
	if cn == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter: cn"})
		return
	}

	users, err := h.service.SearchByName(cn)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "directory search failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": users})
}
