package service

import (
	"errors"
	"fmt"
	"time"

	"taskboard-backend/internal/database/models"
	apperrors "taskboard-backend/internal/errors"
	"taskboard-backend/internal/events"
	"taskboard-backend/internal/logger"
	"taskboard-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TemplateService handles business logic for task templates: manager CRUD,
// the one-shot materialization at creation time, and the delete cascade.
type TemplateService struct {
	db           *gorm.DB
	templateRepo repository.TaskTemplateRepositoryInterface
	materializer *MaterializerService
	publisher    events.Publisher
	validator    *validator.Validate
	log          *logger.Logger
}

// NewTemplateService creates a new template service
func NewTemplateService(db *gorm.DB, templateRepo repository.TaskTemplateRepositoryInterface, materializer *MaterializerService, publisher events.Publisher, validator *validator.Validate) *TemplateService {
	return &TemplateService{
		db:           db,
		templateRepo: templateRepo,
		materializer: materializer,
		publisher:    publisher,
		validator:    validator,
		log:          logger.ForComponent("template"),
	}
}

// CreateTemplateRequest represents the request to create a task template
type CreateTemplateRequest struct {
	Title                string     `json:"title" validate:"required,min=1,max=200"`
	Description          string     `json:"description" validate:"max=1000"`
	IsRecurring          bool       `json:"is_recurring"`
	NotifyEmployee       bool       `json:"notify_employee"`
	WorkstationID        *uuid.UUID `json:"workstation_id,omitempty"`
	AssignedToEmployeeID *uuid.UUID `json:"assigned_to_employee_id,omitempty"`
}

// UpdateTemplateRequest represents the request to update a task template
type UpdateTemplateRequest struct {
	Title                *string    `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description          *string    `json:"description,omitempty" validate:"omitempty,max=1000"`
	IsRecurring          *bool      `json:"is_recurring,omitempty"`
	NotifyEmployee       *bool      `json:"notify_employee,omitempty"`
	WorkstationID        *uuid.UUID `json:"workstation_id,omitempty"`
	AssignedToEmployeeID *uuid.UUID `json:"assigned_to_employee_id,omitempty"`
}

// TemplateResponse represents the response for template operations
type TemplateResponse struct {
	ID                   uuid.UUID  `json:"id"`
	TeamID               uuid.UUID  `json:"team_id"`
	Title                string     `json:"title"`
	Description          string     `json:"description,omitempty"`
	IsRecurring          bool       `json:"is_recurring"`
	NotifyEmployee       bool       `json:"notify_employee"`
	WorkstationID        *uuid.UUID `json:"workstation_id,omitempty"`
	AssignedToEmployeeID *uuid.UUID `json:"assigned_to_employee_id,omitempty"`
	CreatedAt            string     `json:"created_at"`
	UpdatedAt            string     `json:"updated_at"`
}

// Create creates a template. One-shot templates materialize their instances
// for the creation business day inside the same transaction; they are never
// re-materialized on later reads.
func (s *TemplateService) Create(teamID, managerID uuid.UUID, req *CreateTemplateRequest) (*TemplateResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateAssignmentTarget(req.WorkstationID, req.AssignedToEmployeeID); err != nil {
		return nil, err
	}

	template := &models.TaskTemplate{
		TeamID:               teamID,
		CreatedByID:          managerID,
		Title:                req.Title,
		Description:          req.Description,
		IsRecurring:          req.IsRecurring,
		NotifyEmployee:       req.NotifyEmployee,
		WorkstationID:        req.WorkstationID,
		AssignedToEmployeeID: req.AssignedToEmployeeID,
	}

	var created []models.DailyTask
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.verifyTargetTx(tx, teamID, req.WorkstationID, req.AssignedToEmployeeID); err != nil {
			return err
		}

		templateRepo := repository.NewTaskTemplateRepository(tx)
		if err := templateRepo.Create(template); err != nil {
			return fmt.Errorf("failed to create template: %w", err)
		}

		if !template.IsRecurring {
			tasks, err := s.materializer.MaterializeTemplateTx(tx, template, time.Now().UTC())
			if err != nil {
				return err
			}
			created = tasks
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if template.NotifyEmployee {
		for i := range created {
			task := created[i]
			name := ""
			if task.Employee != nil {
				name = task.Employee.FullName()
			}
			s.publisher.Publish(teamID, events.NewAssigned(events.AssignedPayload{
				TaskID:          task.ID,
				EmployeeID:      task.EmployeeID,
				EmployeeName:    name,
				TaskTitle:       template.Title,
				TaskDescription: template.Description,
				TaskDate:        models.DayKeyString(task.Date),
			}))
		}
	}

	s.log.WithFields(map[string]interface{}{
		"template_id": template.ID,
		"recurring":   template.IsRecurring,
		"instances":   len(created),
	}).Info("template created")

	return toTemplateResponse(template), nil
}

// GetByID retrieves a template scoped to the caller's team
func (s *TemplateService) GetByID(teamID, id uuid.UUID) (*TemplateResponse, error) {
	template, err := s.getScoped(teamID, id)
	if err != nil {
		return nil, err
	}
	return toTemplateResponse(template), nil
}

// GetByTeam retrieves all templates of a team
func (s *TemplateService) GetByTeam(teamID uuid.UUID) ([]TemplateResponse, error) {
	templates, err := s.templateRepo.GetByTeamID(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	responses := make([]TemplateResponse, len(templates))
	for i := range templates {
		responses[i] = *toTemplateResponse(&templates[i])
	}
	return responses, nil
}

// Update updates a template. Changing the assignment target does not touch
// already-materialized instances; the next day's pass reflects it.
func (s *TemplateService) Update(teamID, id uuid.UUID, req *UpdateTemplateRequest) (*TemplateResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	template, err := s.getScoped(teamID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		template.Title = *req.Title
	}
	if req.Description != nil {
		template.Description = *req.Description
	}
	if req.IsRecurring != nil {
		template.IsRecurring = *req.IsRecurring
	}
	if req.NotifyEmployee != nil {
		template.NotifyEmployee = *req.NotifyEmployee
	}
	if req.WorkstationID != nil || req.AssignedToEmployeeID != nil {
		template.WorkstationID = req.WorkstationID
		template.AssignedToEmployeeID = req.AssignedToEmployeeID
		if err := validateAssignmentTarget(template.WorkstationID, template.AssignedToEmployeeID); err != nil {
			return nil, err
		}
		if err := s.verifyTargetTx(s.db, teamID, template.WorkstationID, template.AssignedToEmployeeID); err != nil {
			return nil, err
		}
	}

	if err := s.templateRepo.Update(template); err != nil {
		return nil, fmt.Errorf("failed to update template: %w", err)
	}
	return toTemplateResponse(template), nil
}

// Delete hard-deletes a template and cascades to every derived instance, all
// dates included, in one transaction. A single batch notification tells
// connected dashboards to refetch.
func (s *TemplateService) Delete(teamID, id uuid.UUID) error {
	template, err := s.getScoped(teamID, id)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		dailyRepo := repository.NewDailyTaskRepository(tx)
		if err := dailyRepo.DeleteByTemplateID(template.ID); err != nil {
			return fmt.Errorf("failed to delete instances: %w", err)
		}
		templateRepo := repository.NewTaskTemplateRepository(tx)
		if err := templateRepo.Delete(template.ID); err != nil {
			return fmt.Errorf("failed to delete template: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.publisher.Publish(teamID, events.NewUpdated(events.UpdatedPayload{}))
	s.log.WithField("template_id", template.ID).Info("template deleted with cascade")
	return nil
}

func (s *TemplateService) getScoped(teamID, id uuid.UUID) (*models.TaskTemplate, error) {
	template, err := s.templateRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to get template: %w", err)
	}
	if template.TeamID != teamID {
		return nil, apperrors.ErrTemplateNotFound
	}
	return template, nil
}

// verifyTargetTx checks that the assignment target exists and belongs to the
// caller's team
func (s *TemplateService) verifyTargetTx(tx *gorm.DB, teamID uuid.UUID, workstationID, employeeID *uuid.UUID) error {
	if workstationID != nil {
		workstationRepo := repository.NewWorkstationRepository(tx)
		workstation, err := workstationRepo.GetByID(*workstationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrWorkstationNotFound
			}
			return fmt.Errorf("failed to verify workstation: %w", err)
		}
		if workstation.TeamID != teamID {
			return apperrors.ErrWorkstationOutsideTeam
		}
	}
	if employeeID != nil {
		userRepo := repository.NewUserRepository(tx)
		employee, err := userRepo.GetByID(*employeeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrEmployeeNotFound
			}
			return fmt.Errorf("failed to verify employee: %w", err)
		}
		if employee.TeamID != teamID {
			return apperrors.ErrEmployeeOutsideTeam
		}
		if employee.Role != models.UserRoleEmployee {
			return apperrors.ErrManagerNotAssignable
		}
	}
	return nil
}

// validateAssignmentTarget enforces the XOR: exactly one of workstation or
// direct assignee
func validateAssignmentTarget(workstationID, employeeID *uuid.UUID) error {
	if (workstationID == nil) == (employeeID == nil) {
		return apperrors.ErrAmbiguousAssignment
	}
	return nil
}

// toTemplateResponse converts a template model to its response form
func toTemplateResponse(template *models.TaskTemplate) *TemplateResponse {
	return &TemplateResponse{
		ID:                   template.ID,
		TeamID:               template.TeamID,
		Title:                template.Title,
		Description:          template.Description,
		IsRecurring:          template.IsRecurring,
		NotifyEmployee:       template.NotifyEmployee,
		WorkstationID:        template.WorkstationID,
		AssignedToEmployeeID: template.AssignedToEmployeeID,
		CreatedAt:            template.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            template.UpdatedAt.Format(time.RFC3339),
	}
}
