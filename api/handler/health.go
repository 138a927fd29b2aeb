// Package handler holds the API endpoint handlers.
package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var startTime = time.Now()

// Health reports service liveness.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": Version,
		"uptime":  time.Since(startTime).Round(time.Second).String(),
	})
}
