package platformerrors

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewError_CapturesRequestID(t *testing.T) {
	ctx := context.WithValue(context.Background(), RequestIDKey{}, "req-42")

	err := NewError(ctx, LayerDomain, ErrorTypeValidation, "bad input", nil, CodeInvalidParameter)

	assert.Equal(t, "req-42", err.RequestID)
	assert.Equal(t, CodeInvalidParameter, err.UUID)
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus())
	assert.Equal(t, CodeInvalidParameter, err.PublicCode())
	assert.Equal(t, "[domain][VALIDATION][invalid_parameter] bad input", err.Error())
}

func TestNewError_DefaultUUID(t *testing.T) {
	err := NewError(context.Background(), LayerRoute, ErrorTypeInternal, "boom", nil, "")
	assert.Equal(t, "auto-generated-uuid", err.UUID)
}

func TestAsError(t *testing.T) {
	ctx := context.Background()

	assert.Nil(t, AsError(ctx, LayerHandler, nil, "ignored"))

	plain := errors.New("socket closed")
	wrapped := AsError(ctx, LayerHandler, plain, "call provider")
	require.NotNil(t, wrapped)
	assert.Equal(t, ErrorTypeInternal, wrapped.Type)
	assert.ErrorIs(t, wrapped, plain)

	inner := NewError(ctx, LayerDomain, ErrorTypeValidation, "bad style", nil, CodeInvalidParameter)
	rewrapped := AsError(ctx, LayerHandler, inner, "generate")
	assert.Equal(t, ErrorTypeValidation, rewrapped.Type)
	assert.Equal(t, CodeInvalidParameter, rewrapped.UUID)
	assert.Equal(t, "generate: bad style", rewrapped.Message)
}

func TestErrorTypeToHTTPStatus(t *testing.T) {
	tests := []struct {
		errType ErrorType
		status  int
	}{
		{ErrorTypeValidation, http.StatusBadRequest},
		{ErrorTypeNotFound, http.StatusNotFound},
		{ErrorTypeUnauthorized, http.StatusUnauthorized},
		{ErrorTypeForbidden, http.StatusForbidden},
		{ErrorTypeNotImplemented, http.StatusNotImplemented},
		{ErrorTypeExternal, http.StatusInternalServerError},
		{ErrorTypeInternal, http.StatusInternalServerError},
		{ErrorType("SOMETHING_ELSE"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.errType), func(t *testing.T) {
			assert.Equal(t, tt.status, ErrorTypeToHTTPStatus(tt.errType))
		})
	}
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, CodeInvalidParameter, ErrorCode(ErrorTypeValidation))
	assert.Equal(t, CodeServerError, ErrorCode(ErrorTypeExternal))
	assert.Equal(t, CodeServerError, ErrorCode(ErrorTypeInternal))
	assert.Equal(t, CodeUnauthorized, ErrorCode(ErrorTypeUnauthorized))
	assert.Equal(t, CodeForbidden, ErrorCode(ErrorTypeForbidden))
}

func TestIsValidationError(t *testing.T) {
	ctx := context.Background()
	validation := NewError(ctx, LayerDomain, ErrorTypeValidation, "nope", nil, "")
	external := NewError(ctx, LayerInfrastructure, ErrorTypeExternal, "down", nil, "")

	assert.True(t, IsValidationError(validation))
	assert.False(t, IsValidationError(external))
	assert.False(t, IsValidationError(errors.New("plain")))
	assert.False(t, IsValidationError(nil))
	assert.Same(t, external, GetPlatformError(external))
	assert.Nil(t, GetPlatformError(errors.New("plain")))
}

func TestLogError(t *testing.T) {
	var buf bytes.Buffer
	ctx := context.WithValue(context.Background(), RequestIDKey{}, "req-7")
	err := NewErrorWithContext(ctx, LayerInfrastructure, ErrorTypeExternal, "provider failed",
		errors.New("timeout"), "openai-provider-error", map[string]any{"provider": "openai"})

	LogError(zerolog.New(&buf), err)

	out := buf.String()
	assert.Contains(t, out, `"level":"error"`)
	assert.Contains(t, out, `"provider":"openai"`)
	assert.Contains(t, out, `"request_id":"req-7"`)
	assert.Contains(t, out, `"error":"timeout"`)
	assert.Contains(t, out, `"message":"provider failed"`)

	buf.Reset()
	LogError(zerolog.New(&buf), nil)
	assert.Empty(t, buf.String())
}
