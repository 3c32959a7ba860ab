package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Odongfelix/jweb/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondWithError maps service errors to status codes. Sentinel errors win over
// an AppError's own code. failMsg is shown for errors that are not the caller's fault.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, failMsg string) {
	var (
		fields apperrors.ValidationErrors
		appErr *apperrors.AppError
	)
	switch {
	case errors.As(err, &fields):
		logger.Warn("Validation failed", slog.Any("fields", map[string]string(fields)))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": fields})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNoDataToExport):
		logger.Info("Nothing to export")
		c.JSON(http.StatusNotFound, gin.H{"error": "No data to export"})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Request conflicts with current state", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrRateUnavailable):
		logger.Warn("No conversion rate available", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "No exchange rate is configured. Save today's rate before submitting USD entries."})
	case errors.Is(err, apperrors.ErrUpstream):
		logger.Error("Upstream service failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": failMsg})
	case errors.As(err, &appErr) && appErr.Code >= http.StatusBadRequest:
		if appErr.Code >= http.StatusInternalServerError {
			logger.Error(failMsg, slog.Int("status", appErr.Code), slog.String("error", err.Error()))
			c.JSON(appErr.Code, gin.H{"error": failMsg})
			return
		}
		logger.Warn(appErr.Message, slog.Int("status", appErr.Code), slog.String("error", err.Error()))
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
	default:
		logger.Error(failMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": failMsg})
	}
}
