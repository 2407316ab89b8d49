package service_test

import (
	"testing"
	"time"

	"taskboard-backend/internal/database/models"
	apperrors "taskboard-backend/internal/errors"
	"taskboard-backend/internal/events"
	"taskboard-backend/internal/repository"
	"taskboard-backend/internal/service"
	"taskboard-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type DailyTaskSuite struct {
	suite.Suite
	db        *gorm.DB
	svc       *service.DailyTaskService
	publisher *capturePublisher
	team      *models.Team
	manager   *models.User
	alice     *models.User
	bob       *models.User
	ws        *models.Workstation
	tmpl      *models.TaskTemplate
	day       time.Time
}

func TestDailyTaskSuite(t *testing.T) {
	suite.Run(t, new(DailyTaskSuite))
}

func (s *DailyTaskSuite) SetupSuite() {
	s.db = testutils.GetTestDB(s.T())
	s.day = time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
}

func (s *DailyTaskSuite) SetupTest() {
	testutils.CleanTables(s.T(), s.db)
	s.publisher = &capturePublisher{}
	s.svc = service.NewDailyTaskService(
		repository.NewDailyTaskRepository(s.db),
		service.NewMaterializerService(s.db),
		s.publisher,
	)
	s.team = testutils.CreateTeam(s.T(), s.db, "Ops")
	s.manager = testutils.CreateManager(s.T(), s.db, s.team, "Morgan")
	s.alice = testutils.CreateEmployee(s.T(), s.db, s.team, "Alice")
	s.bob = testutils.CreateEmployee(s.T(), s.db, s.team, "Bob")
	s.ws = testutils.CreateWorkstation(s.T(), s.db, s.team, "Checkout", s.alice, s.bob)
	s.tmpl = testutils.CreateTemplate(s.T(), s.db, s.team, s.manager, "Open registers", testutils.ForWorkstation(s.ws))
}

func (s *DailyTaskSuite) TestListForDayMaterializesLazily() {
	tasks, err := s.svc.ListForDay(s.team.ID, s.day, repository.DailyTaskFilter{})
	s.Require().NoError(err)
	s.Len(tasks, 2)
	for _, task := range tasks {
		s.Equal("Open registers", task.Title)
		s.Equal("2026-08-24", task.Date)
		s.NotEmpty(task.EmployeeName)
		s.False(task.IsCompleted)
	}
}

func (s *DailyTaskSuite) TestListForDayFiltersByEmployee() {
	filter := repository.DailyTaskFilter{EmployeeID: &s.alice.ID}
	tasks, err := s.svc.ListForDay(s.team.ID, s.day, filter)
	s.Require().NoError(err)
	s.Require().Len(tasks, 1)
	s.Equal(s.alice.ID, tasks[0].EmployeeID)
}

func (s *DailyTaskSuite) TestListForDayFiltersByWorkstation() {
	other := testutils.CreateWorkstation(s.T(), s.db, s.team, "Stockroom", s.alice)
	testutils.CreateTemplate(s.T(), s.db, s.team, s.manager, "Restock shelves", testutils.ForWorkstation(other))

	filter := repository.DailyTaskFilter{WorkstationID: &other.ID}
	tasks, err := s.svc.ListForDay(s.team.ID, s.day, filter)
	s.Require().NoError(err)
	s.Require().Len(tasks, 1)
	s.Equal("Restock shelves", tasks[0].Title)
}

func (s *DailyTaskSuite) TestPrepareDayReportsCreatedAndNotifiesOnce() {
	resp, err := s.svc.PrepareDay(s.team.ID, s.day)
	s.Require().NoError(err)
	s.Equal(2, resp.Created)
	s.Equal("2026-08-24", resp.Date)

	published := s.publisher.Events()
	s.Require().Len(published, 1)
	s.Equal(events.TypeTaskUpdated, published[0].Type)
	s.True(published[0].IsBatch())
}

func (s *DailyTaskSuite) TestPrepareDaySilentWhenNothingCreated() {
	_, err := s.svc.PrepareDay(s.team.ID, s.day)
	s.Require().NoError(err)
	s.publisher.events = nil

	resp, err := s.svc.PrepareDay(s.team.ID, s.day)
	s.Require().NoError(err)
	s.Equal(0, resp.Created)
	s.Empty(s.publisher.Events())
}

func (s *DailyTaskSuite) TestSetCompletionMarksDone() {
	task := testutils.CreateDailyTask(s.T(), s.db, s.tmpl, s.alice, s.day)

	resp, err := s.svc.SetCompletion(s.team.ID, task.ID, true)
	s.Require().NoError(err)
	s.True(resp.IsCompleted)
	s.NotNil(resp.CompletedAt)

	published := s.publisher.Events()
	s.Require().Len(published, 1)
	s.Equal(events.TypeTaskUpdated, published[0].Type)
	s.Require().NotNil(published[0].Updated)
	s.Equal(task.ID, published[0].Updated.TaskID)
	s.True(published[0].Updated.IsCompleted)
}

func (s *DailyTaskSuite) TestSetCompletionIsIdempotent() {
	task := testutils.CreateDailyTask(s.T(), s.db, s.tmpl, s.alice, s.day)

	_, err := s.svc.SetCompletion(s.team.ID, task.ID, true)
	s.Require().NoError(err)
	s.publisher.events = nil

	resp, err := s.svc.SetCompletion(s.team.ID, task.ID, true)
	s.Require().NoError(err)
	s.True(resp.IsCompleted)
	s.Empty(s.publisher.Events())
}

func (s *DailyTaskSuite) TestSetCompletionBackToPendingClearsTimestamp() {
	task := testutils.CreateDailyTask(s.T(), s.db, s.tmpl, s.alice, s.day)

	_, err := s.svc.SetCompletion(s.team.ID, task.ID, true)
	s.Require().NoError(err)

	resp, err := s.svc.SetCompletion(s.team.ID, task.ID, false)
	s.Require().NoError(err)
	s.False(resp.IsCompleted)
	s.Nil(resp.CompletedAt)

	var reloaded models.DailyTask
	s.Require().NoError(s.db.First(&reloaded, "id = ?", task.ID).Error)
	s.Nil(reloaded.CompletedAt)
}

func (s *DailyTaskSuite) TestSetCompletionScopedToTeam() {
	task := testutils.CreateDailyTask(s.T(), s.db, s.tmpl, s.alice, s.day)
	otherTeam := testutils.CreateTeam(s.T(), s.db, "Other")

	_, err := s.svc.SetCompletion(otherTeam.ID, task.ID, true)
	s.ErrorIs(err, apperrors.ErrDailyTaskNotFound)
}
