package handlers

import (
	"net/http"
	"time"

	"taskboard-backend/internal/auth"
	"taskboard-backend/internal/database/models"
	apperrors "taskboard-backend/internal/errors"
	"taskboard-backend/internal/repository"
	"taskboard-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DailyTaskHandler handles daily task instance endpoints
type DailyTaskHandler struct {
	dailyService      *service.DailyTaskService
	assignmentService *service.AssignmentService
}

// NewDailyTaskHandler creates a new daily task handler
func NewDailyTaskHandler(dailyService *service.DailyTaskService, assignmentService *service.AssignmentService) *DailyTaskHandler {
	return &DailyTaskHandler{
		dailyService:      dailyService,
		assignmentService: assignmentService,
	}
}

// patchDailyTaskRequest carries either a desired completion state or a new
// owner, never both
type patchDailyTaskRequest struct {
	IsCompleted *bool      `json:"is_completed,omitempty"`
	EmployeeID  *uuid.UUID `json:"employee_id,omitempty"`
}

// List godoc
// @Summary List daily tasks for a day
// @Description Returns the team's daily tasks for one date, materializing the day first. Defaults to today.
// @Tags daily-tasks
// @Produce json
// @Security BearerAuth
// @Param date query string false "Business day (YYYY-MM-DD)"
// @Param employee_id query string false "Filter by owner"
// @Param workstation_id query string false "Filter by workstation"
// @Success 200 {array} service.DailyTaskResponse
// @Failure 400 {object} map[string]string
// @Router /daily-tasks [get]
func (h *DailyTaskHandler) List(c *gin.Context) {
	date, err := parseDateQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var filter repository.DailyTaskFilter
	if raw := c.Query("employee_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee_id"})
			return
		}
		filter.EmployeeID = &id
	}
	if raw := c.Query("workstation_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid workstation_id"})
			return
		}
		filter.WorkstationID = &id
	}

	resp, err := h.dailyService.ListForDay(auth.GetTeamID(c), date, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Prepare godoc
// @Summary Prepare a day
// @Description Runs an explicit materialization pass for one date and reports how many instances were created
// @Tags daily-tasks
// @Produce json
// @Security BearerAuth
// @Param date query string false "Business day (YYYY-MM-DD)"
// @Success 200 {object} service.PrepareDayResponse
// @Failure 400 {object} map[string]string
// @Router /daily-tasks/prepare [post]
func (h *DailyTaskHandler) Prepare(c *gin.Context) {
	date, err := parseDateQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}

	resp, err := h.dailyService.PrepareDay(auth.GetTeamID(c), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Patch godoc
// @Summary Update a daily task
// @Description Sets the completion state, or reassigns the task to another employee (managers only). Reassignment onto an employee who already holds the same task for the day returns 409.
// @Tags daily-tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Daily task ID"
// @Param request body patchDailyTaskRequest true "Desired state"
// @Success 200 {object} service.DailyTaskResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /daily-tasks/{id} [patch]
func (h *DailyTaskHandler) Patch(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req patchDailyTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	switch {
	case req.EmployeeID != nil && req.IsCompleted != nil:
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot combine reassignment with a completion change"})
	case req.EmployeeID != nil:
		if auth.GetRole(c) != models.UserRoleManager {
			c.JSON(http.StatusForbidden, gin.H{"error": "manager role required"})
			return
		}
		resp, err := h.assignmentService.Reassign(auth.GetTeamID(c), id, *req.EmployeeID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	case req.IsCompleted != nil:
		resp, err := h.dailyService.SetCompletion(auth.GetTeamID(c), id, *req.IsCompleted)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
	}
}

// parseDateQuery reads the optional date query parameter, defaulting to the
// current business day
func parseDateQuery(c *gin.Context) (time.Time, error) {
	raw := c.Query("date")
	if raw == "" {
		return models.DayKey(time.Now().UTC()), nil
	}
	date, err := models.ParseDayKey(raw)
	if err != nil {
		return time.Time{}, apperrors.ErrInvalidDateFormat
	}
	return date, nil
}
