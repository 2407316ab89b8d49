package service_test

import (
	"sync"
	"testing"
	"time"

	"taskboard-backend/internal/database/models"
	apperrors "taskboard-backend/internal/errors"
	"taskboard-backend/internal/events"
	"taskboard-backend/internal/service"
	"taskboard-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// capturePublisher records published events for assertions
type capturePublisher struct {
	mu     sync.Mutex
	events []events.Envelope
}

func (p *capturePublisher) Publish(teamID uuid.UUID, event events.Envelope) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *capturePublisher) Events() []events.Envelope {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]events.Envelope, len(p.events))
	copy(out, p.events)
	return out
}

type MaterializerSuite struct {
	suite.Suite
	db      *gorm.DB
	svc     *service.MaterializerService
	team    *models.Team
	manager *models.User
	day     time.Time
}

func TestMaterializerSuite(t *testing.T) {
	suite.Run(t, new(MaterializerSuite))
}

func (s *MaterializerSuite) SetupSuite() {
	s.db = testutils.GetTestDB(s.T())
	s.day = time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
}

func (s *MaterializerSuite) SetupTest() {
	testutils.CleanTables(s.T(), s.db)
	s.svc = service.NewMaterializerService(s.db)
	s.team = testutils.CreateTeam(s.T(), s.db, "Ops")
	s.manager = testutils.CreateManager(s.T(), s.db, s.team, "Morgan")
}

func (s *MaterializerSuite) countTasks() int64 {
	var count int64
	s.Require().NoError(s.db.Model(&models.DailyTask{}).Count(&count).Error)
	return count
}

func (s *MaterializerSuite) TestCreatesOneInstancePerWorkstationMember() {
	alice := testutils.CreateEmployee(s.T(), s.db, s.team, "Alice")
	bob := testutils.CreateEmployee(s.T(), s.db, s.team, "Bob")
	ws := testutils.CreateWorkstation(s.T(), s.db, s.team, "Checkout", alice, bob)
	testutils.CreateTemplate(s.T(), s.db, s.team, s.manager, "Open registers", testutils.ForWorkstation(ws))

	created, err := s.svc.EnsureDay(s.team.ID, s.day)
	s.Require().NoError(err)
	s.Len(created, 2)

	owners := map[uuid.UUID]bool{}
	for _, task := range created {
		s.False(task.IsCompleted)
		s.True(task.Date.Equal(s.day))
		owners[task.EmployeeID] = true
	}
	s.True(owners[alice.ID])
	s.True(owners[bob.ID])
}

func (s *MaterializerSuite) TestRepeatedPassCreatesNothing() {
	alice := testutils.CreateEmployee(s.T(), s.db, s.team, "Alice")
	ws := testutils.CreateWorkstation(s.T(), s.db, s.team, "Checkout", alice)
	testutils.CreateTemplate(s.T(), s.db, s.team, s.manager, "Open registers", testutils.ForWorkstation(ws))

	first, err := s.svc.EnsureDay(s.team.ID, s.day)
	s.Require().NoError(err)
	s.Len(first, 1)

	second, err := s.svc.EnsureDay(s.team.ID, s.day)
	s.Require().NoError(err)
	s.Empty(second)
	s.EqualValues(1, s.countTasks())
}

func (s *MaterializerSuite) TestRepeatedPassPreservesCompletion() {
	alice := testutils.CreateEmployee(s.T(), s.db, s.team, "Alice")
	ws := testutils.CreateWorkstation(s.T(), s.db, s.team, "Checkout", alice)
	testutils.CreateTemplate(s.T(), s.db, s.team, s.manager, "Open registers", testutils.ForWorkstation(ws))

	created, err := s.svc.EnsureDay(s.team.ID, s.day)
	s.Require().NoError(err)
	s.Require().Len(created, 1)

	s.Require().NoError(s.db.Model(&models.DailyTask{}).
		Where("id = ?", created[0].ID).
		Update("is_completed", true).Error)

	_, err = s.svc.EnsureDay(s.team.ID, s.day)
	s.Require().NoError(err)

	var task models.DailyTask
	s.Require().NoError(s.db.First(&task, "id = ?", created[0].ID).Error)
	s.True(task.IsCompleted)
}

func (s *MaterializerSuite) TestRemovedMemberKeepsExistingInstance() {
	alice := testutils.CreateEmployee(s.T(), s.db, s.team, "Alice")
	ws := testutils.CreateWorkstation(s.T(), s.db, s.team, "Checkout", alice)
	testutils.CreateTemplate(s.T(), s.db, s.team, s.manager, "Open registers", testutils.ForWorkstation(ws))

	created, err := s.svc.EnsureDay(s.team.ID, s.day)
	s.Require().NoError(err)
	s.Require().Len(created, 1)

	s.Require().NoError(s.db.Model(ws).Association("Members").Clear())

	second, err := s.svc.EnsureDay(s.team.ID, s.day)
	s.Require().NoError(err)
	s.Empty(second)
	s.EqualValues(1, s.countTasks())
}

func (s *MaterializerSuite) TestAddedMemberGetsInstanceOnNextPass() {
	alice := testutils.CreateEmployee(s.T(), s.db, s.team, "Alice")
	ws := testutils.CreateWorkstation(s.T(), s.db, s.team, "Checkout", alice)
	testutils.CreateTemplate(s.T(), s.db, s.team, s.manager, "Open registers", testutils.ForWorkstation(ws))

	_, err := s.svc.EnsureDay(s.team.ID, s.day)
	s.Require().NoError(err)

	bob := testutils.CreateEmployee(s.T(), s.db, s.team, "Bob")
	s.Require().NoError(s.db.Model(ws).Association("Members").Append(bob))

	second, err := s.svc.EnsureDay(s.team.ID, s.day)
	s.Require().NoError(err)
	s.Require().Len(second, 1)
	s.Equal(bob.ID, second[0].EmployeeID)
	s.EqualValues(2, s.countTasks())
}

func (s *MaterializerSuite) TestDirectAssigneeGetsSingleInstance() {
	alice := testutils.CreateEmployee(s.T(), s.db, s.team, "Alice")
	testutils.CreateTemplate(s.T(), s.db, s.team, s.manager, "File report", testutils.ForEmployee(alice))

	created, err := s.svc.EnsureDay(s.team.ID, s.day)
	s.Require().NoError(err)
	s.Require().Len(created, 1)
	s.Equal(alice.ID, created[0].EmployeeID)
}

func (s *MaterializerSuite) TestInactiveEmployeesAreSkipped() {
	active := testutils.CreateEmployee(s.T(), s.db, s.team, "Alice")
	inactive := testutils.CreateInactiveEmployee(s.T(), s.db, s.team, "Bob")
	ws := testutils.CreateWorkstation(s.T(), s.db, s.team, "Checkout", active, inactive)
	testutils.CreateTemplate(s.T(), s.db, s.team, s.manager, "Open registers", testutils.ForWorkstation(ws))

	created, err := s.svc.EnsureDay(s.team.ID, s.day)
	s.Require().NoError(err)
	s.Require().Len(created, 1)
	s.Equal(active.ID, created[0].EmployeeID)
}

func (s *MaterializerSuite) TestOneShotTemplatesAreNotPickedUp() {
	alice := testutils.CreateEmployee(s.T(), s.db, s.team, "Alice")
	testutils.CreateTemplate(s.T(), s.db, s.team, s.manager, "Inventory count",
		testutils.ForEmployee(alice), testutils.OneShot())

	created, err := s.svc.EnsureDay(s.team.ID, s.day)
	s.Require().NoError(err)
	s.Empty(created)
}

func (s *MaterializerSuite) TestDifferentDaysGetSeparateInstances() {
	alice := testutils.CreateEmployee(s.T(), s.db, s.team, "Alice")
	testutils.CreateTemplate(s.T(), s.db, s.team, s.manager, "File report", testutils.ForEmployee(alice))

	_, err := s.svc.EnsureDay(s.team.ID, s.day)
	s.Require().NoError(err)
	nextDay, err := s.svc.EnsureDay(s.team.ID, s.day.AddDate(0, 0, 1))
	s.Require().NoError(err)
	s.Len(nextDay, 1)
	s.EqualValues(2, s.countTasks())
}

func (s *MaterializerSuite) TestUnknownTeamFails() {
	_, err := s.svc.EnsureDay(uuid.New(), s.day)
	s.ErrorIs(err, apperrors.ErrTeamNotFound)
}
