package handlers

import (
	"net/http"

	"taskboard-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DirectoryHandler handles corporate directory lookups
type DirectoryHandler struct {
	service *service.DirectoryService
}

// NewDirectoryHandler creates a new directory handler
func NewDirectoryHandler(service *service.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{service: service}
}

// Search godoc
// @Summary Search the corporate directory
// @Description Searches directory users by name prefix for provisioning
// @Tags directory
// @Produce json
// @Security BearerAuth
// @Param q query string true "Name prefix"
// @Success 200 {array} service.DirectoryUser
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /directory/search [get]
func (h *DirectoryHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}

	users, err := h.service.SearchByName(query)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "directory lookup failed"})
		return
	}
	c.JSON(http.StatusOK, users)
}
