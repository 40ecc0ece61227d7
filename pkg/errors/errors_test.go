package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypedConstructors(t *testing.T) {
	err := NewTreeUnavailableError(fmt.Errorf("connection refused"))
	assert.True(t, IsTreeUnavailable(err))
	assert.Equal(t, http.StatusServiceUnavailable, err.HTTPStatus)
	assert.ErrorContains(t, err, "connection refused")

	err = NewPathRequestFailedError("E", "2", fmt.Errorf("status 500"))
	assert.True(t, IsPathRequestFailed(err))
	assert.Equal(t, http.StatusBadGateway, err.HTTPStatus)

	err = NewMalformedGraphError("duplicate node id \"1\"")
	assert.True(t, IsMalformedGraph(err))

	assert.True(t, IsNotFound(NewNotFoundError("node")))
	assert.True(t, IsValidation(NewValidationError("bad input")))
	assert.True(t, IsConflict(NewConflictError("superseded")))
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := NewExternalError("graph-service", cause)

	require.ErrorIs(t, err, cause)
	assert.Equal(t, cause, err.Unwrap())
}

func TestWrapPreservesType(t *testing.T) {
	inner := NewPathRequestFailedError("E", "2", fmt.Errorf("timeout"))

	wrapped := Wrap(inner, "orchestration")
	assert.True(t, IsPathRequestFailed(wrapped))
	assert.ErrorContains(t, wrapped, "orchestration")

	plain := Wrap(fmt.Errorf("plain"), "context")
	assert.True(t, IsType(plain, ErrorTypeInternal))

	assert.NoError(t, Wrap(nil, "ignored"))
}

func TestGetAppError(t *testing.T) {
	appErr := NewValidationError("nope")
	wrapped := fmt.Errorf("outer: %w", appErr)

	got := GetAppError(wrapped)
	require.NotNil(t, got)
	assert.Equal(t, ErrorTypeValidation, got.Type)

	assert.Nil(t, GetAppError(fmt.Errorf("not typed")))
	assert.False(t, IsAppError(nil))
}
