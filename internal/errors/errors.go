package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ConflictError represents a rejected write that would violate a uniqueness
// invariant. It is user-facing and recoverable: the caller can retry with a
// different target.
type ConflictError struct {
	Entity  string
	Context string
}

func (e *ConflictError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrTeamNotFound        = &NotFoundError{Entity: "team"}
	ErrUserNotFound        = &NotFoundError{Entity: "user"}
	ErrEmployeeNotFound    = &NotFoundError{Entity: "employee"}
	ErrWorkstationNotFound = &NotFoundError{Entity: "workstation"}
	ErrTemplateNotFound    = &NotFoundError{Entity: "task template"}
	ErrDailyTaskNotFound   = &NotFoundError{Entity: "daily task"}
)

// Conflict Errors
var (
	ErrUserExists = &ConflictError{Entity: "user", Context: "with this email"}

	// ErrDailyTaskConflict is the uniqueness-invariant rejection: the
	// destination employee already holds an instance of the same template
	// for the same day.
	ErrDailyTaskConflict = &ConflictError{Entity: "daily task", Context: "for this employee, template and date"}
)

// Business Logic Errors
var (
	ErrAmbiguousAssignment     = errors.New("template must target exactly one of workstation or employee")
	ErrEmployeeOutsideTeam     = errors.New("employee does not belong to this team")
	ErrWorkstationOutsideTeam  = errors.New("workstation does not belong to this team")
	ErrManagerNotAssignable    = errors.New("daily tasks can only be assigned to employees")
	ErrInvalidDateFormat       = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrInactiveUser       = &AuthenticationError{Message: "user account is deactivated"}
	ErrManagerOnly        = &AuthorizationError{Message: "operation requires the manager role"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewConflictError creates a new ConflictError for a custom entity
func NewConflictError(entity, context string) error {
	return &ConflictError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}
