package handlers

import (
	"net/http"

	"taskboard-backend/internal/auth"
	"taskboard-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// EmployeeHandler handles employee endpoints
type EmployeeHandler struct {
	service *service.EmployeeService
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(service *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// Create godoc
// @Summary Provision an employee
// @Description Creates an employee account on the caller's team
// @Tags employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.CreateEmployeeRequest true "Employee details"
// @Success 201 {object} service.EmployeeResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /employees [post]
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req service.CreateEmployeeRequest
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
// @Summary List active employees
// @Tags employees
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.EmployeeResponse
// @Router /employees [get]
func (h *EmployeeHandler) List(c *gin.Context) {
	resp, err := h.service.GetByTeam(auth.GetTeamID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary Get an employee
// @Tags employees
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employee ID"
// @Success 200 {object} service.EmployeeResponse
// @Failure 404 {object} map[string]string
// @Router /employees/{id} [get]
func (h *EmployeeHandler) Get(c *gin.Context) {
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
// @Summary Update an employee
// @Description Updates profile fields or deactivates the account
// @Tags employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employee ID"
// @Param request body service.UpdateEmployeeRequest true "Fields to update"
// @Success 200 {object} service.EmployeeResponse
// @Failure 404 {object} map[string]string
// @Router /employees/{id} [put]
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateEmployeeRequest
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
