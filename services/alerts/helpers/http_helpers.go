package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"freight-auction/internal/auctionerrors"
	"freight-auction/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrTriggerNotFound):
		return http.StatusNotFound, "trigger not found"
	case errors.Is(err, auctionerrors.ErrNotificationNotFound):
		return http.StatusNotFound, "notification not found"
	case errors.Is(err, auctionerrors.ErrInvalidTriggerKind):
		return http.StatusBadRequest, "unrecognized trigger kind"
	case errors.Is(err, auctionerrors.ErrInvalidTriggerConfig):
		return http.StatusBadRequest, "invalid trigger configuration"
	case errors.Is(err, auctionerrors.ErrDuplicateTrigger):
		return http.StatusConflict, "duplicate trigger configuration"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
