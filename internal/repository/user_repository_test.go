package repository

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/user-service/pkg/errorutil"
)

func TestMapStoreError_UniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}

	err := mapStoreError(pgErr)
	domainErr := errorutil.ToDomainError(err)
	require.NotNil(t, domainErr)
	assert.Equal(t, "CONFLICT", domainErr.Code)
	assert.Equal(t, http.StatusConflict, domainErr.HTTPStatus)
	assert.Equal(t, "email", domainErr.Details["field"])
}

func TestMapStoreError_WrappedUniqueViolation(t *testing.T) {
	wrapped := errors.Join(errors.New("exec"), &pgconn.PgError{Code: "23505"})

	domainErr := errorutil.ToDomainError(mapStoreError(wrapped))
	assert.Equal(t, "CONFLICT", domainErr.Code)
}

func TestMapStoreError_NoRows(t *testing.T) {
	domainErr := errorutil.ToDomainError(mapStoreError(pgx.ErrNoRows))
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
	assert.Equal(t, http.StatusNotFound, domainErr.HTTPStatus)
}

func TestMapStoreError_OtherPgError(t *testing.T) {
	// any non-unique SQLSTATE is infrastructure, not a domain outcome
	pgErr := &pgconn.PgError{Code: "42P01"}

	domainErr := errorutil.ToDomainError(mapStoreError(pgErr))
	assert.Equal(t, "STORE_UNAVAILABLE", domainErr.Code)
	assert.Equal(t, http.StatusInternalServerError, domainErr.HTTPStatus)
}

func TestMapStoreError_GenericError(t *testing.T) {
	cause := errors.New("conn closed")

	domainErr := errorutil.ToDomainError(mapStoreError(cause))
	assert.Equal(t, "STORE_UNAVAILABLE", domainErr.Code)
	assert.ErrorIs(t, domainErr, cause)
}

func TestMapStoreError_Nil(t *testing.T) {
	assert.NoError(t, mapStoreError(nil))
}
