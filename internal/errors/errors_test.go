package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "department"}
		assert.Equal(t, "department not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "department"}
		err2 := &NotFoundError{Entity: "department"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "department"}
		err2 := &NotFoundError{Entity: "member"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrDepartmentNotFound, ErrDepartmentNotFound))
		assert.False(t, errors.Is(ErrDepartmentNotFound, ErrMemberNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrDepartmentNotFound))
		assert.False(t, IsNotFound(ErrMultipleDebrief))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "church", Context: "with this slug"}
		assert.Equal(t, "church already exists with this slug", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "church"}
		assert.Equal(t, "church already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "church", Context: "with this slug"}
		err2 := &AlreadyExistsError{Entity: "church", Context: "with this slug"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrRoleExists))
		assert.False(t, IsAlreadyExists(ErrDepartmentNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "invalid format"}
		assert.Equal(t, "validation error: email - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("email", "invalid")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrDepartmentNotFound))
	})
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("custom entity")
		assert.Equal(t, "custom entity not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("custom", "in scope")
		assert.Equal(t, "custom already exists in scope", err.Error())
		assert.True(t, IsAlreadyExists(err))
	})

	t.Run("NewValidationError", func(t *testing.T) {
		err := NewValidationError("field", "message")
		assert.Equal(t, "validation error: field - message", err.Error())
		assert.True(t, IsValidation(err))
	})
}

func TestPlanningErrors(t *testing.T) {
	t.Run("Debrief error is a validation error", func(t *testing.T) {
		assert.True(t, IsValidation(ErrMultipleDebrief))
		assert.Contains(t, ErrMultipleDebrief.Error(), "EN_SERVICE_DEBRIEF")
	})

	t.Run("Wrapped validation errors are detected", func(t *testing.T) {
		wrapped := fmt.Errorf("set planning: %w", ErrMemberNotInDepartment)
		assert.True(t, IsValidation(wrapped))
		assert.False(t, IsNotFound(wrapped))
	})

	t.Run("Event department not found", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrEventDepartmentNotFound))
		assert.Equal(t, "event-department link not found", ErrEventDepartmentNotFound.Error())
	})
}

func TestAccessErrors(t *testing.T) {
	t.Run("Unauthenticated", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrUnauthenticated))
		assert.False(t, IsAuthorization(ErrUnauthenticated))
	})

	t.Run("Forbidden and out of scope", func(t *testing.T) {
		assert.True(t, IsAuthorization(ErrForbidden))
		assert.True(t, IsAuthorization(fmt.Errorf("planning: %w", ErrOutOfScope)))
		assert.False(t, IsAuthentication(ErrForbidden))
	})
}
