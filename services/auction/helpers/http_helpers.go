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
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, auctionerrors.ErrFavoriteNotFound):
		return http.StatusNotFound, "favorite not found"
	case errors.Is(err, auctionerrors.ErrInvalidAuction):
		return http.StatusBadRequest, "invalid auction details"
	case errors.Is(err, auctionerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, auctionerrors.ErrInvalidAmount):
		return http.StatusBadRequest, "bid amount must be a positive number of cents"
	case errors.Is(err, auctionerrors.ErrInvalidAward):
		return http.StatusBadRequest, "invalid award details"
	case errors.Is(err, auctionerrors.ErrAuctionArchived):
		return http.StatusConflict, "auction is archived"
	case errors.Is(err, auctionerrors.ErrAlreadyAwarded):
		return http.StatusConflict, "auction already awarded"
	case errors.Is(err, auctionerrors.ErrNoSuchBid):
		return http.StatusConflict, "winner has no bid on this auction"
	case errors.Is(err, auctionerrors.ErrDuplicateAuction):
		return http.StatusConflict, "auction already exists"
	case errors.Is(err, auctionerrors.ErrNoBids):
		return http.StatusNotFound, "no bids found for auction"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
