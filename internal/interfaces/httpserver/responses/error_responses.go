package responses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jan-server/services/image-api/internal/utils/platformerrors"
)

// ErrorResponse is the body returned for every failed request.
type ErrorResponse struct {
	Code      string            `json:"code" example:"invalid_parameter"`
	Message   string            `json:"message" example:"Invalid style. Must be 'natural' or 'vivid'"`
	Fields    map[string]string `json:"fields,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// HandleError maps err to a status code and error body. Platform errors keep
// their message; anything else is reported with the fallback message.
func HandleError(reqCtx *gin.Context, err error, message string) {
	var domainErr *platformerrors.PlatformError
	if errors.As(err, &domainErr) {
		errorMessage := domainErr.Message
		if errorMessage == "" {
			errorMessage = message
		}

		reqCtx.AbortWithStatusJSON(domainErr.HTTPStatus(), ErrorResponse{
			Code:      domainErr.PublicCode(),
			Message:   errorMessage,
			RequestID: requestID(reqCtx, domainErr.RequestID),
		})
		return
	}

	reqCtx.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
		Code:      platformerrors.CodeServerError,
		Message:   message,
		RequestID: requestID(reqCtx, ""),
	})
}

// HandleNewError creates a new typed error at the route layer and handles it
func HandleNewError(reqCtx *gin.Context, errorType platformerrors.ErrorType, message string, uuid string) {
	err := platformerrors.NewError(reqCtx.Request.Context(), platformerrors.LayerRoute, errorType, message, nil, uuid)
	HandleError(reqCtx, err, message)
}

// HandleFieldErrors reports request binding failures. The first field message
// becomes the top-level message.
func HandleFieldErrors(reqCtx *gin.Context, fields map[string]string, first string) {
	reqCtx.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
		Code:      platformerrors.CodeInvalidParameter,
		Message:   first,
		Fields:    fields,
		RequestID: requestID(reqCtx, ""),
	})
}

func requestID(reqCtx *gin.Context, fromErr string) string {
	if fromErr != "" {
		return fromErr
	}
	if id, ok := reqCtx.Request.Context().Value(platformerrors.RequestIDKey{}).(string); ok {
		return id
	}
	return ""
}
