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

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in organization"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
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

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrChurchNotFound          = &NotFoundError{Entity: "church"}
	ErrMinistryNotFound        = &NotFoundError{Entity: "ministry"}
	ErrDepartmentNotFound      = &NotFoundError{Entity: "department"}
	ErrMemberNotFound          = &NotFoundError{Entity: "member"}
	ErrUserNotFound            = &NotFoundError{Entity: "user"}
	ErrRoleNotFound            = &NotFoundError{Entity: "role assignment"}
	ErrEventNotFound           = &NotFoundError{Entity: "event"}
	ErrEventDepartmentNotFound = &NotFoundError{Entity: "event-department link"}
)

// Already Exists Errors
var (
	ErrChurchExists          = &AlreadyExistsError{Entity: "church", Context: "with this slug"}
	ErrUserExists            = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrRoleExists            = &AlreadyExistsError{Entity: "role assignment", Context: "for this user and church"}
	ErrEventDepartmentExists = &AlreadyExistsError{Entity: "event-department link", Context: ""}
)

// Planning Errors
var (
	ErrMultipleDebrief = &ValidationError{
		Field:   "plannings",
		Message: "only one member can have EN_SERVICE_DEBRIEF status per department per event",
	}
	ErrInvalidPlanningStatus = &ValidationError{Field: "status", Message: "invalid planning status"}
	ErrDuplicateMember       = &ValidationError{Field: "plannings", Message: "a member appears more than once in the batch"}
	ErrMemberNotInDepartment = &ValidationError{Field: "member_id", Message: "member does not belong to this department"}
	ErrChurchMismatch        = &ValidationError{Field: "department_id", Message: "department does not belong to the event's church"}
	ErrInvalidMonthFormat    = &ValidationError{Field: "month", Message: "expected format YYYY-MM"}
)

// Authentication Errors
var (
	ErrUnauthenticated     = &AuthenticationError{Message: "not authenticated"}
	ErrForbidden           = &AuthorizationError{Message: "insufficient permissions"}
	ErrOutOfScope          = &AuthorizationError{Message: "department is outside of your scope"}
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token has expired")
)

// Configuration Errors
var (
	ErrProviderNotConfigured = &ConfigurationError{Message: "oauth provider is not configured"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.Is(err, &NotFoundError{}) || errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.Is(err, &AlreadyExistsError{}) || errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.Is(err, &ValidationError{}) || errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.Is(err, &AuthenticationError{}) || errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.Is(err, &AuthorizationError{}) || errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.Is(err, &ConfigurationError{}) || errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
