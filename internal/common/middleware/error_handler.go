package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	apperrors "airdrop-tool-backend/internal/common/errors"
	"airdrop-tool-backend/internal/common/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the JSON error envelope of the API.
type ErrorResponse struct {
	Success   bool                `json:"success"`
	Error     *apperrors.AppError `json:"error"`
	Timestamp time.Time           `json:"timestamp"`
	Path      string              `json:"path,omitempty"`
	Method    string              `json:"method,omitempty"`
}

// ErrorHandler recovers handler panics into a 500 error envelope.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Interface("panic", recovered).
			Str("stack", string(debug.Stack())).
			Msg("Panic recovered")

		appErr := apperrors.New(apperrors.ErrCodeInternal, "Internal server error").
			WithDetail("panic", fmt.Sprintf("%v", recovered))

		RespondError(c, appErr)
	})
}

// RespondError writes err as the JSON error envelope with the HTTP status
// matching its code. Non-AppError values become internal errors.
func RespondError(c *gin.Context, err error) {
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		appErr = apperrors.Wrap(err, apperrors.ErrCodeInternal, "Internal server error")
	}

	logError(c, appErr)

	c.AbortWithStatusJSON(httpStatus(appErr), ErrorResponse{
		Success:   false,
		Error:     appErr,
		Timestamp: time.Now(),
		Path:      c.Request.URL.Path,
		Method:    c.Request.Method,
	})
}

func httpStatus(appErr *apperrors.AppError) int {
	switch {
	case appErr.IsValidation():
		return http.StatusBadRequest
	case appErr.IsNotFound():
		return http.StatusNotFound
	case appErr.IsConflict():
		return http.StatusConflict
	case appErr.Code == apperrors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case appErr.Code == apperrors.ErrCodeForbidden:
		return http.StatusForbidden
	case appErr.Code == apperrors.ErrCodeTelegramAPI:
		return http.StatusBadGateway
	case appErr.Code == apperrors.ErrCodeCacheError:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func logError(c *gin.Context, appErr *apperrors.AppError) {
	event := logger.Error()
	switch {
	case appErr.IsValidation(), appErr.IsNotFound(), appErr.IsConflict():
		event = logger.Info()
	case appErr.IsUnauthorized():
		event = logger.Warn()
	}

	event.
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Str("error_code", string(appErr.Code)).
		Str("error_message", appErr.Message).
		Err(appErr.Cause).
		Msg("Request failed")
}
