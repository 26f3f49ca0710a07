package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health handles GET /health. Liveness only; it deliberately does not touch
// the database so a store outage never flaps the liveness probe.
func Health(c *gin.Context) {
	c.String(http.StatusOK, "Service is healthy")
}
