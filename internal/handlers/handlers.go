// Package handlers contains the gin HTTP handlers. Each handler binds the
// request, resolves the caller where required, delegates to its service and
// translates errors onto the wire.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jobportal/api/internal/apperr"
)

var startTime = time.Now()

// base carries the pieces every handler needs to report errors.
type base struct {
	Log        *zap.Logger
	Production bool
}

// fail writes the error response for err. Internal error details are
// suppressed in production and echoed in development.
func (b base) fail(c *gin.Context, err error) {
	ae := apperr.As(err)
	msg := ae.Message
	if ae.Code == apperr.CodeInternal {
		b.Log.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err))
		if b.Production {
			msg = "Internal server error"
		} else if ae.Cause != nil {
			msg = ae.Cause.Error()
		}
	}
	c.JSON(ae.HTTPStatus(), gin.H{"error": msg})
}

// badRequest reports a binding/validation failure.
func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed: " + err.Error()})
}

// HealthCheck reports service liveness.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(startTime).Seconds(),
	})
}
