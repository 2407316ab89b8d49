package repository_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"taskboard-backend/internal/database/models"
	"taskboard-backend/internal/repository"
	"taskboard-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type DailyTaskRepoSuite struct {
	suite.Suite
	db      *gorm.DB
	repo    *repository.DailyTaskRepository
	team    *models.Team
	manager *models.User
	alice   *models.User
	bob     *models.User
	ws      *models.Workstation
	tmpl    *models.TaskTemplate
	day     time.Time
}

func TestDailyTaskRepoSuite(t *testing.T) {
	suite.Run(t, new(DailyTaskRepoSuite))
}

func (s *DailyTaskRepoSuite) SetupSuite() {
	s.db = testutils.GetTestDB(s.T())
	s.day = time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
}

func (s *DailyTaskRepoSuite) SetupTest() {
	testutils.CleanTables(s.T(), s.db)
	s.repo = repository.NewDailyTaskRepository(s.db)
	s.team = testutils.CreateTeam(s.T(), s.db, "Ops")
	s.manager = testutils.CreateManager(s.T(), s.db, s.team, "Morgan")
	s.alice = testutils.CreateEmployee(s.T(), s.db, s.team, "Alice")
	s.bob = testutils.CreateEmployee(s.T(), s.db, s.team, "Bob")
	s.ws = testutils.CreateWorkstation(s.T(), s.db, s.team, "Checkout", s.alice, s.bob)
	s.tmpl = testutils.CreateTemplate(s.T(), s.db, s.team, s.manager, "Open registers", testutils.ForWorkstation(s.ws))
}

func (s *DailyTaskRepoSuite) TestDuplicateInsertHitsUniqueIndex() {
	first := &models.DailyTask{
		TaskTemplateID: s.tmpl.ID,
		EmployeeID:     s.alice.ID,
		Date:           s.day,
	}
	s.Require().NoError(s.repo.Create(first))

	dup := &models.DailyTask{
		TaskTemplateID: s.tmpl.ID,
		EmployeeID:     s.alice.ID,
		Date:           s.day,
	}
	err := s.repo.Create(dup)
	s.True(errors.Is(err, gorm.ErrDuplicatedKey))
}

func (s *DailyTaskRepoSuite) TestSameEmployeeDifferentDayAllowed() {
	s.Require().NoError(s.repo.Create(&models.DailyTask{
		TaskTemplateID: s.tmpl.ID,
		EmployeeID:     s.alice.ID,
		Date:           s.day,
	}))
	s.Require().NoError(s.repo.Create(&models.DailyTask{
		TaskTemplateID: s.tmpl.ID,
		EmployeeID:     s.alice.ID,
		Date:           s.day.AddDate(0, 0, 1),
	}))
}

func (s *DailyTaskRepoSuite) TestUpdateEmployeeOntoHolderHitsUniqueIndex() {
	aliceTask := testutils.CreateDailyTask(s.T(), s.db, s.tmpl, s.alice, s.day)
	testutils.CreateDailyTask(s.T(), s.db, s.tmpl, s.bob, s.day)

	err := s.repo.UpdateEmployee(aliceTask.ID, s.bob.ID)
	s.True(errors.Is(err, gorm.ErrDuplicatedKey))
}

func (s *DailyTaskRepoSuite) TestConcurrentMovesOntoSameOwnerHaveOneWinner() {
	carol := testutils.CreateEmployee(s.T(), s.db, s.team, "Carol")

	contenders := make([]*models.DailyTask, 0, 8)
	for i := 0; i < 8; i++ {
		emp := testutils.CreateEmployee(s.T(), s.db, s.team, fmt.Sprintf("Emp%d", i))
		contenders = append(contenders, testutils.CreateDailyTask(s.T(), s.db, s.tmpl, emp, s.day))
	}

	errs := make([]error, len(contenders))
	var wg sync.WaitGroup
	for i := range contenders {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = s.repo.UpdateEmployee(contenders[i].ID, carol.ID)
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			s.True(errors.Is(err, gorm.ErrDuplicatedKey))
		}
	}
	s.Equal(1, winners)

	var count int64
	s.Require().NoError(s.db.Model(&models.DailyTask{}).
		Where("task_template_id = ? AND employee_id = ? AND date = ?",
			s.tmpl.ID, carol.ID, s.day).
		Count(&count).Error)
	s.EqualValues(1, count)
}

func (s *DailyTaskRepoSuite) TestExists() {
	testutils.CreateDailyTask(s.T(), s.db, s.tmpl, s.alice, s.day)

	exists, err := s.repo.Exists(s.tmpl.ID, s.alice.ID, s.day)
	s.Require().NoError(err)
	s.True(exists)

	exists, err = s.repo.Exists(s.tmpl.ID, s.bob.ID, s.day)
	s.Require().NoError(err)
	s.False(exists)
}

func (s *DailyTaskRepoSuite) TestGetByTeamAndDateScopesTeamAndDay() {
	testutils.CreateDailyTask(s.T(), s.db, s.tmpl, s.alice, s.day)
	testutils.CreateDailyTask(s.T(), s.db, s.tmpl, s.bob, s.day.AddDate(0, 0, 1))

	otherTeam := testutils.CreateTeam(s.T(), s.db, "Other")
	otherManager := testutils.CreateManager(s.T(), s.db, otherTeam, "Oscar")
	otherEmp := testutils.CreateEmployee(s.T(), s.db, otherTeam, "Eve")
	otherTmpl := testutils.CreateTemplate(s.T(), s.db, otherTeam, otherManager, "Other task", testutils.ForEmployee(otherEmp))
	testutils.CreateDailyTask(s.T(), s.db, otherTmpl, otherEmp, s.day)

	tasks, err := s.repo.GetByTeamAndDate(s.team.ID, s.day, repository.DailyTaskFilter{})
	s.Require().NoError(err)
	s.Require().Len(tasks, 1)
	s.Equal(s.alice.ID, tasks[0].EmployeeID)
	s.Require().NotNil(tasks[0].TaskTemplate)
	s.Equal("Open registers", tasks[0].TaskTemplate.Title)
	s.Require().NotNil(tasks[0].Employee)
}

func (s *DailyTaskRepoSuite) TestGetByTeamAndDateFilters() {
	testutils.CreateDailyTask(s.T(), s.db, s.tmpl, s.alice, s.day)
	testutils.CreateDailyTask(s.T(), s.db, s.tmpl, s.bob, s.day)

	byEmployee, err := s.repo.GetByTeamAndDate(s.team.ID, s.day, repository.DailyTaskFilter{EmployeeID: &s.bob.ID})
	s.Require().NoError(err)
	s.Require().Len(byEmployee, 1)
	s.Equal(s.bob.ID, byEmployee[0].EmployeeID)

	byWorkstation, err := s.repo.GetByTeamAndDate(s.team.ID, s.day, repository.DailyTaskFilter{WorkstationID: &s.ws.ID})
	s.Require().NoError(err)
	s.Len(byWorkstation, 2)
}

func (s *DailyTaskRepoSuite) TestDeleteByTemplateIDRemovesAllDates() {
	testutils.CreateDailyTask(s.T(), s.db, s.tmpl, s.alice, s.day)
	testutils.CreateDailyTask(s.T(), s.db, s.tmpl, s.alice, s.day.AddDate(0, 0, 1))

	s.Require().NoError(s.repo.DeleteByTemplateID(s.tmpl.ID))

	var count int64
	s.Require().NoError(s.db.Model(&models.DailyTask{}).Count(&count).Error)
	s.EqualValues(0, count)
}
