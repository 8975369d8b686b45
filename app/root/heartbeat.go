// Package root holds the handlers that don't belong to any resource
package root

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Heartbeat lets load balancers and the frontend check that the server is up
func Heartbeat(c *gin.Context) {
	c.Status(http.StatusOK)
}
