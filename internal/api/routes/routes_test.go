package routes_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"taskboard-backend/internal/api/routes"
	"taskboard-backend/internal/config"
	"taskboard-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type APISuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine

	managerToken  string
	employeeToken string
	teamID        uuid.UUID
	aliceID       uuid.UUID
	bobID         uuid.UUID
	wsID          uuid.UUID
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APISuite))
}

func (s *APISuite) SetupSuite() {
	s.db = testutils.GetTestDB(s.T())
}

func (s *APISuite) SetupTest() {
	testutils.CleanTables(s.T(), s.db)
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Environment: "test",
		JWTSecret:   "test-secret",
		JWTTTLHours: 1,
	}
	s.router = routes.Setup(cfg, s.db)
	s.seed()
}

// seed registers a team, provisions two employees and a workstation holding
// both, and creates a recurring template targeting the workstation
func (s *APISuite) seed() {
	var reg struct {
		Token  string    `json:"token"`
		TeamID uuid.UUID `json:"team_id"`
	}
	s.do(http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"team_name":  "Ops",
		"email":      "morgan@example.com",
		"first_name": "Morgan",
		"last_name":  "Lee",
		"password":   "correct-horse",
	}, http.StatusCreated, &reg)
	s.managerToken = reg.Token
	s.teamID = reg.TeamID

	var alice, bob struct {
		ID    uuid.UUID `json:"id"`
		Email string    `json:"email"`
	}
	s.do(http.MethodPost, "/api/v1/employees", s.managerToken, map[string]interface{}{
		"email":      "alice@example.com",
		"first_name": "Alice",
		"last_name":  "Ray",
		"password":   "alice-password",
	}, http.StatusCreated, &alice)
	s.aliceID = alice.ID

	s.do(http.MethodPost, "/api/v1/employees", s.managerToken, map[string]interface{}{
		"email":      "bob@example.com",
		"first_name": "Bob",
		"last_name":  "Kim",
		"password":   "bob-password",
	}, http.StatusCreated, &bob)
	s.bobID = bob.ID

	var login struct {
		Token string `json:"token"`
	}
	s.do(http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "alice@example.com",
		"password": "alice-password",
	}, http.StatusOK, &login)
	s.employeeToken = login.Token

	var ws struct {
		ID uuid.UUID `json:"id"`
	}
	s.do(http.MethodPost, "/api/v1/workstations", s.managerToken, map[string]interface{}{
		"name": "Checkout",
	}, http.StatusCreated, &ws)
	s.wsID = ws.ID

	s.do(http.MethodPut, fmt.Sprintf("/api/v1/workstations/%s/members", s.wsID), s.managerToken, map[string]interface{}{
		"employee_ids": []uuid.UUID{s.aliceID, s.bobID},
	}, http.StatusOK, nil)

	s.do(http.MethodPost, "/api/v1/templates", s.managerToken, map[string]interface{}{
		"title":          "Open registers",
		"is_recurring":   true,
		"workstation_id": s.wsID,
	}, http.StatusCreated, nil)
}

func (s *APISuite) do(method, path, token string, body interface{}, wantStatus int, out interface{}) {
	s.T().Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	s.Require().Equal(wantStatus, rec.Code, "unexpected status for %s %s: %s", method, path, rec.Body.String())

	if out != nil {
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), out))
	}
}

type dailyTaskJSON struct {
	ID          uuid.UUID `json:"id"`
	EmployeeID  uuid.UUID `json:"employee_id"`
	Title       string    `json:"title"`
	Date        string    `json:"date"`
	IsCompleted bool      `json:"is_completed"`
}

func (s *APISuite) listTasks(date string) []dailyTaskJSON {
	s.T().Helper()
	path := "/api/v1/daily-tasks"
	if date != "" {
		path += "?date=" + date
	}
	var tasks []dailyTaskJSON
	s.do(http.MethodGet, path, s.managerToken, nil, http.StatusOK, &tasks)
	return tasks
}

func (s *APISuite) TestListMaterializesTheDay() {
	tasks := s.listTasks("2026-08-24")
	s.Require().Len(tasks, 2)

	owners := map[uuid.UUID]bool{}
	for _, task := range tasks {
		s.Equal("Open registers", task.Title)
		s.Equal("2026-08-24", task.Date)
		owners[task.EmployeeID] = true
	}
	s.True(owners[s.aliceID])
	s.True(owners[s.bobID])

	// A second read creates nothing new
	s.Len(s.listTasks("2026-08-24"), 2)
}

func (s *APISuite) TestPrepareDayReportsCreated() {
	var resp struct {
		Date    string `json:"date"`
		Created int    `json:"created"`
	}
	s.do(http.MethodPost, "/api/v1/daily-tasks/prepare?date=2026-08-24", s.managerToken, nil, http.StatusOK, &resp)
	s.Equal(2, resp.Created)

	s.do(http.MethodPost, "/api/v1/daily-tasks/prepare?date=2026-08-24", s.managerToken, nil, http.StatusOK, &resp)
	s.Equal(0, resp.Created)
}

func (s *APISuite) TestCompleteAndReopenTask() {
	tasks := s.listTasks("2026-08-24")
	s.Require().NotEmpty(tasks)

	var updated dailyTaskJSON
	path := "/api/v1/daily-tasks/" + tasks[0].ID.String()
	s.do(http.MethodPatch, path, s.employeeToken, map[string]interface{}{
		"is_completed": true,
	}, http.StatusOK, &updated)
	s.True(updated.IsCompleted)

	s.do(http.MethodPatch, path, s.employeeToken, map[string]interface{}{
		"is_completed": false,
	}, http.StatusOK, &updated)
	s.False(updated.IsCompleted)
}

func (s *APISuite) TestReassignConflictReturns409() {
	tasks := s.listTasks("2026-08-24")
	s.Require().Len(tasks, 2)

	var aliceTask dailyTaskJSON
	for _, task := range tasks {
		if task.EmployeeID == s.aliceID {
			aliceTask = task
		}
	}
	s.Require().NotEqual(uuid.Nil, aliceTask.ID)

	// Bob already holds the same template for the day
	s.do(http.MethodPatch, "/api/v1/daily-tasks/"+aliceTask.ID.String(), s.managerToken, map[string]interface{}{
		"employee_id": s.bobID,
	}, http.StatusConflict, nil)

	// Alice keeps the task
	after := s.listTasks("2026-08-24")
	owners := map[uuid.UUID]int{}
	for _, task := range after {
		owners[task.EmployeeID]++
	}
	s.Equal(1, owners[s.aliceID])
	s.Equal(1, owners[s.bobID])
}

func (s *APISuite) TestReassignToFreeEmployeeSucceeds() {
	var tmpl struct {
		ID uuid.UUID `json:"id"`
	}
	s.do(http.MethodPost, "/api/v1/templates", s.managerToken, map[string]interface{}{
		"title":                   "File report",
		"is_recurring":            true,
		"assigned_to_employee_id": s.aliceID,
	}, http.StatusCreated, &tmpl)

	tasks := s.listTasks("2026-08-24")
	var reportTask dailyTaskJSON
	for _, task := range tasks {
		if task.Title == "File report" {
			reportTask = task
		}
	}
	s.Require().NotEqual(uuid.Nil, reportTask.ID)

	var moved dailyTaskJSON
	s.do(http.MethodPatch, "/api/v1/daily-tasks/"+reportTask.ID.String(), s.managerToken, map[string]interface{}{
		"employee_id": s.bobID,
	}, http.StatusOK, &moved)
	s.Equal(s.bobID, moved.EmployeeID)
}

func (s *APISuite) TestEmployeeCannotReassign() {
	tasks := s.listTasks("2026-08-24")
	s.Require().NotEmpty(tasks)

	s.do(http.MethodPatch, "/api/v1/daily-tasks/"+tasks[0].ID.String(), s.employeeToken, map[string]interface{}{
		"employee_id": s.bobID,
	}, http.StatusForbidden, nil)
}

func (s *APISuite) TestEmployeeCannotManageTemplates() {
	s.do(http.MethodPost, "/api/v1/templates", s.employeeToken, map[string]interface{}{
		"title":          "Rogue template",
		"is_recurring":   true,
		"workstation_id": s.wsID,
	}, http.StatusForbidden, nil)
}

func (s *APISuite) TestDeleteTemplateRemovesInstances() {
	var templates []struct {
		ID    uuid.UUID `json:"id"`
		Title string    `json:"title"`
	}
	s.do(http.MethodGet, "/api/v1/templates", s.managerToken, nil, http.StatusOK, &templates)
	s.Require().Len(templates, 1)

	s.Require().Len(s.listTasks("2026-08-24"), 2)

	s.do(http.MethodDelete, "/api/v1/templates/"+templates[0].ID.String(), s.managerToken, nil, http.StatusNoContent, nil)

	s.Empty(s.listTasks("2026-08-24"))
}

func (s *APISuite) TestUnauthenticatedRequestsRejected() {
	s.do(http.MethodGet, "/api/v1/daily-tasks", "", nil, http.StatusUnauthorized, nil)
}

func (s *APISuite) TestBadDateRejected() {
	s.do(http.MethodGet, "/api/v1/daily-tasks?date=24-08-2026", s.managerToken, nil, http.StatusBadRequest, nil)
}

func (s *APISuite) TestHealthEndpoint() {
	s.do(http.MethodGet, "/health", "", nil, http.StatusOK, nil)
}
