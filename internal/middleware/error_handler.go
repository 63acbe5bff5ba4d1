package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pranavks/user_account_app/internal/apperrors"
	"github.com/pranavks/user_account_app/internal/core/domain"
)

// ErrorHandler converts errors attached to the Gin error channel into HTTP
// responses. It is the single downstream collaborator for every handler that
// reports failure through the error channel; handlers themselves never write
// error responses.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		logger := GetLoggerFromCtx(c.Request.Context())

		status, body := mapError(err)
		if status >= http.StatusInternalServerError {
			logger.Error("Request failed", slog.String("error", err.Error()))
		} else {
			logger.Warn("Request rejected", slog.String("error", err.Error()))
		}
		c.JSON(status, body)
	}
}

func mapError(err error) (int, gin.H) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest, gin.H{
			"error":      "validation failed",
			"violations": verr.Violations,
		}
	}

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, gin.H{"error": "resource not found"}
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest, gin.H{"error": err.Error()}
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict, gin.H{"error": "resource already exists"}
	case errors.Is(err, apperrors.ErrRefreshTokenExpired),
		errors.Is(err, apperrors.ErrResetTokenExpired):
		return http.StatusUnauthorized, gin.H{"error": err.Error()}
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized, gin.H{"error": "unauthorized"}
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden, gin.H{"error": "forbidden"}
	case errors.Is(err, apperrors.ErrHashingFailed):
		return http.StatusInternalServerError, gin.H{"error": "internal error"}
	default:
		return http.StatusInternalServerError, gin.H{"error": "internal error"}
	}
}
