package errorutil

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainError_Nil(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))
}

func TestToDomainError_PassesDomainErrorsThrough(t *testing.T) {
	err := NewConflict("email already exists", map[string]any{"field": "email"})

	domainErr := ToDomainError(err)
	require.NotNil(t, domainErr)
	assert.Equal(t, "CONFLICT", domainErr.Code)
	assert.Equal(t, http.StatusConflict, domainErr.HTTPStatus)
	assert.Equal(t, "email", domainErr.Details["field"])
}

func TestToDomainError_WrappedDomainError(t *testing.T) {
	inner := NewNotFound("user", nil)
	wrapped := errors.Join(errors.New("outer"), inner)

	domainErr := ToDomainError(wrapped)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestToDomainError_NoRowsBecomesNotFound(t *testing.T) {
	domainErr := ToDomainError(pgx.ErrNoRows)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
	assert.Equal(t, http.StatusNotFound, domainErr.HTTPStatus)
}

func TestToDomainError_UnknownBecomesInternal(t *testing.T) {
	domainErr := ToDomainError(errors.New("boom"))
	assert.Equal(t, "INTERNAL_ERROR", domainErr.Code)
	assert.Equal(t, http.StatusInternalServerError, domainErr.HTTPStatus)
	// generic message only; the cause stays in the wrapped error
	assert.Equal(t, "internal server error", domainErr.Message)
	assert.EqualError(t, domainErr.Unwrap(), "boom")
}

func TestNewUnavailable(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	domainErr := ToDomainError(NewUnavailable(cause))

	assert.Equal(t, "STORE_UNAVAILABLE", domainErr.Code)
	assert.Equal(t, http.StatusInternalServerError, domainErr.HTTPStatus)
	assert.Equal(t, "internal server error", domainErr.Message)
	assert.ErrorIs(t, domainErr, cause)
}
