package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shirasagi-dev/shukatsu-tracker/internal/services"
)

// writeError maps the service error taxonomy onto HTTP statuses. Anything
// outside the taxonomy is an unexpected datastore failure: logged, opaque
// 500, never retried.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": services.ErrInvalidCredentials.Error()})
	case errors.Is(err, services.ErrNotFoundOrForbidden):
		c.JSON(http.StatusNotFound, gin.H{"error": services.ErrNotFoundOrForbidden.Error()})
	case errors.Is(err, services.ErrDuplicateUsername):
		c.JSON(http.StatusConflict, gin.H{"error": services.ErrDuplicateUsername.Error()})
	default:
		slog.Error("request failed", "path", c.FullPath(), "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// pathID parses the :id segment. Garbage ids get the same answer as ids
// that don't exist.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": services.ErrNotFoundOrForbidden.Error()})
		return 0, false
	}
	return uint(id), true
}

// HealthCheck is the unauthenticated liveness probe.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
