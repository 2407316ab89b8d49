package handlers

import (
	"net/http"

	"taskboard-backend/internal/auth"
	"taskboard-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TemplateHandler handles task template endpoints
type TemplateHandler struct {
	service *service.TemplateService
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(service *service.TemplateService) *TemplateHandler {
	return &TemplateHandler{service: service}
}

// Create godoc
// @Summary Create a task template
// @Description Creates a template targeting a workstation or one employee. One-shot templates materialize immediately.
// @Tags templates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.CreateTemplateRequest true "Template details"
// @Success 201 {object} service.TemplateResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /templates [post]
func (h *TemplateHandler) Create(c *gin.Context) {
	var req service.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.service.Create(auth.GetTeamID(c), auth.GetUserID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary List task templates
// @Description Returns all templates of the caller's team
// @Tags templates
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.TemplateResponse
// @Router /templates [get]
func (h *TemplateHandler) List(c *gin.Context) {
	resp, err := h.service.GetByTeam(auth.GetTeamID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary Get a task template
// @Tags templates
// @Produce json
// @Security BearerAuth
// @Param id path string true "Template ID"
// @Success 200 {object} service.TemplateResponse
// @Failure 404 {object} map[string]string
// @Router /templates/{id} [get]
func (h *TemplateHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.service.GetByID(auth.GetTeamID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary Update a task template
// @Description Updates template fields. Target changes apply from the next materialization pass.
// @Tags templates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Template ID"
// @Param request body service.UpdateTemplateRequest true "Fields to update"
// @Success 200 {object} service.TemplateResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /templates/{id} [put]
func (h *TemplateHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.service.Update(auth.GetTeamID(c), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary Delete a task template
// @Description Deletes a template and every daily task derived from it, all dates included
// @Tags templates
// @Security BearerAuth
// @Param id path string true "Template ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /templates/{id} [delete]
func (h *TemplateHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(auth.GetTeamID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
