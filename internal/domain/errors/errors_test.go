package errors

import (
	"net/http"
	"testing"

	"ucsbapi/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestEntityNotFoundError(t *testing.T) {
	err := NewEntityNotFoundError("Student", int64(999))

	assert.Equal(t, http.StatusNotFound, err.HTTPCode())
	assert.Equal(t, TypeEntityNotFound, err.ErrorCode())
	assert.Equal(t, "Student with id 999 not found", err.Message())
	assert.Equal(t, "Student with id 999 not found", err.Error())
}

func TestEntityNotFoundError_StringKey(t *testing.T) {
	err := NewEntityNotFoundError("UCSBDiningCommons", "ortega")

	assert.Equal(t, "UCSBDiningCommons with id ortega not found", err.Message())
}

func TestBaseError_IsMatchesDerivedCopies(t *testing.T) {
	derived := ErrValidationFailed.WithMessage("name: required")
	wrapped := errors.Wrap(derived, "create animal")

	assert.True(t, errors.Is(wrapped, ErrValidationFailed))
	assert.False(t, errors.Is(wrapped, ErrConflict))

	var appErr AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "name: required", appErr.Message())
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewDatabaseExecuteError(cause, "find animals")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, TypeDatabaseExecute, err.ErrorCode())
	assert.Equal(t, "find animals", err.Details())
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestNewErrorResponse(t *testing.T) {
	resp := NewErrorResponse(ErrForbidden)

	assert.Equal(t, &ErrorResponse{Type: TypeAccessDenied, Message: "Access Denied"}, resp)
}
