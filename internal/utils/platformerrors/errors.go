package platformerrors

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// RequestIDKey is the context key under which the HTTP layer stores the request ID.
type RequestIDKey struct{}

// ErrorType classifies a failure and decides its HTTP status.
type ErrorType string

const (
	ErrorTypeNotFound       ErrorType = "NOT_FOUND"
	ErrorTypeValidation     ErrorType = "VALIDATION"
	ErrorTypeUnauthorized   ErrorType = "UNAUTHORIZED"
	ErrorTypeForbidden      ErrorType = "FORBIDDEN"
	ErrorTypeInternal       ErrorType = "INTERNAL"
	ErrorTypeExternal       ErrorType = "EXTERNAL"
	ErrorTypeNotImplemented ErrorType = "NOT_IMPLEMENTED"
)

// Public error codes returned in HTTP error bodies.
const (
	CodeInvalidParameter = "invalid_parameter"
	CodeServerError      = "server_error"
	CodeUnauthorized     = "unauthorized"
	CodeForbidden        = "forbidden"
)

// Layer names the part of the service that raised the error.
type Layer string

const (
	LayerDomain         Layer = "domain"
	LayerHandler        Layer = "handler"
	LayerRoute          Layer = "route"
	LayerInfrastructure Layer = "infrastructure"
)

// PlatformError is a typed error carrying the request it belongs to.
// UUID is a stable identifier for the failure site, not a random value.
type PlatformError struct {
	UUID      string
	Type      ErrorType
	Message   string
	Err       error
	Context   map[string]any
	RequestID string
	Layer     Layer
	Timestamp time.Time
}

func (e *PlatformError) Error() string {
	prefix := fmt.Sprintf("[%s][%s][%s] %s", e.Layer, e.Type, e.UUID, e.Message)
	if e.Err == nil {
		return prefix
	}
	return prefix + ": " + e.Err.Error()
}

func (e *PlatformError) Unwrap() error {
	return e.Err
}

// HTTPStatus is the status code the error maps to.
func (e *PlatformError) HTTPStatus() int {
	return ErrorTypeToHTTPStatus(e.Type)
}

// PublicCode is the code reported to clients.
func (e *PlatformError) PublicCode() string {
	return ErrorCode(e.Type)
}

// NewError creates a PlatformError stamped with the request ID found in ctx.
// An empty uuid is replaced by "auto-generated-uuid".
func NewError(ctx context.Context, layer Layer, errorType ErrorType, message string, err error, uuid string) *PlatformError {
	return NewErrorWithContext(ctx, layer, errorType, message, err, uuid, nil)
}

// NewErrorWithContext is NewError with extra fields for structured logging.
func NewErrorWithContext(ctx context.Context, layer Layer, errorType ErrorType, message string, err error, uuid string, fields map[string]any) *PlatformError {
	if uuid == "" {
		uuid = "auto-generated-uuid"
	}

	errorContext := make(map[string]any, len(fields))
	maps.Copy(errorContext, fields)

	return &PlatformError{
		UUID:      uuid,
		Type:      errorType,
		Message:   message,
		Err:       err,
		Context:   errorContext,
		RequestID: requestIDFrom(ctx),
		Layer:     layer,
		Timestamp: time.Now().UTC(),
	}
}

func requestIDFrom(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(RequestIDKey{}).(string)
	return id
}

// AsError re-raises err at layer. A wrapped PlatformError keeps its type and
// UUID and gets message prepended; anything else becomes INTERNAL.
func AsError(ctx context.Context, layer Layer, err error, message string) *PlatformError {
	if err == nil {
		return nil
	}
	if inner := GetPlatformError(err); inner != nil {
		return NewError(ctx, layer, inner.Type, message+": "+inner.Message, inner, inner.UUID)
	}
	return NewError(ctx, layer, ErrorTypeInternal, message, err, "")
}

// GetPlatformError extracts the outermost PlatformError from an error chain.
func GetPlatformError(err error) *PlatformError {
	var platformErr *PlatformError
	if errors.As(err, &platformErr) {
		return platformErr
	}
	return nil
}

// ErrorTypeToHTTPStatus maps error types to HTTP status codes.
// Provider failures are reported as server errors, not gateway errors.
func ErrorTypeToHTTPStatus(errorType ErrorType) int {
	switch errorType {
	case ErrorTypeNotFound:
		return http.StatusNotFound
	case ErrorTypeValidation:
		return http.StatusBadRequest
	case ErrorTypeUnauthorized:
		return http.StatusUnauthorized
	case ErrorTypeForbidden:
		return http.StatusForbidden
	case ErrorTypeNotImplemented:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

// ErrorCode maps error types to the public code carried in error bodies.
func ErrorCode(errorType ErrorType) string {
	switch errorType {
	case ErrorTypeValidation:
		return CodeInvalidParameter
	case ErrorTypeUnauthorized:
		return CodeUnauthorized
	case ErrorTypeForbidden:
		return CodeForbidden
	default:
		return CodeServerError
	}
}

// IsErrorType reports whether err carries a PlatformError of errorType.
func IsErrorType(err error, errorType ErrorType) bool {
	platformErr := GetPlatformError(err)
	return platformErr != nil && platformErr.Type == errorType
}

// IsValidationError reports whether err carries a validation PlatformError.
func IsValidationError(err error) bool {
	return IsErrorType(err, ErrorTypeValidation)
}

// LogError writes err as one structured event. Validation failures are
// client mistakes and log at warn; everything else logs at error.
func LogError(logger zerolog.Logger, err *PlatformError) {
	if err == nil {
		return
	}

	event := logger.Error()
	if err.Type == ErrorTypeValidation {
		event = logger.Warn()
	}

	event = event.
		Str("error_uuid", err.UUID).
		Str("error_type", string(err.Type)).
		Str("layer", string(err.Layer)).
		Time("timestamp_utc", err.Timestamp).
		Fields(err.Context)
	if err.RequestID != "" {
		event = event.Str("request_id", err.RequestID)
	}
	if err.Err != nil {
		event = event.Err(err.Err)
	}
	event.Msg(err.Message)
}
