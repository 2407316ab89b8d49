package handlers

import (
	"net/http"

	"taskboard-backend/internal/auth"
	"taskboard-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkstationHandler handles workstation endpoints
type WorkstationHandler struct {
	service *service.WorkstationService
}

// NewWorkstationHandler creates a new workstation handler
func NewWorkstationHandler(service *service.WorkstationService) *WorkstationHandler {
	return &WorkstationHandler{service: service}
}

// Create godoc
// @Summary Create a workstation
// @Tags workstations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.CreateWorkstationRequest true "Workstation details"
// @Success 201 {object} service.WorkstationResponse
// @Failure 400 {object} map[string]string
// @Router /workstations [post]
func (h *WorkstationHandler) Create(c *gin.Context) {
	var req service.CreateWorkstationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.service.Create(auth.GetTeamID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary List workstations
// @Tags workstations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.WorkstationResponse
// @Router /workstations [get]
func (h *WorkstationHandler) List(c *gin.Context) {
	resp, err := h.service.GetByTeam(auth.GetTeamID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary Get a workstation with its members
// @Tags workstations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Workstation ID"
// @Success 200 {object} service.WorkstationResponse
// @Failure 404 {object} map[string]string
// @Router /workstations/{id} [get]
func (h *WorkstationHandler) Get(c *gin.Context) {
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
// @Summary Rename a workstation
// @Tags workstations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Workstation ID"
// @Param request body service.UpdateWorkstationRequest true "New name"
// @Success 200 {object} service.WorkstationResponse
// @Failure 404 {object} map[string]string
// @Router /workstations/{id} [put]
func (h *WorkstationHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateWorkstationRequest
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
// @Summary Delete a workstation
// @Tags workstations
// @Security BearerAuth
// @Param id path string true "Workstation ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /workstations/{id} [delete]
func (h *WorkstationHandler) Delete(c *gin.Context) {
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

// GetMembers godoc
// @Summary List workstation members
// @Tags workstations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Workstation ID"
// @Success 200 {array} service.EmployeeResponse
// @Failure 404 {object} map[string]string
// @Router /workstations/{id}/members [get]
func (h *WorkstationHandler) GetMembers(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.service.GetMembers(auth.GetTeamID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ReplaceMembers godoc
// @Summary Replace workstation members
// @Description Replaces the membership list. Existing daily tasks keep their owners; future materialization follows the new roster.
// @Tags workstations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Workstation ID"
// @Param request body service.ReplaceMembersRequest true "Employee IDs"
// @Success 200 {object} service.WorkstationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /workstations/{id}/members [put]
func (h *WorkstationHandler) ReplaceMembers(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.ReplaceMembersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.service.ReplaceMembers(auth.GetTeamID(c), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
