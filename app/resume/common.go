// Package resume contains the handlers for /api/resumes. Every query goes
// through store.Resumes with the principal's id as the owner
package resume

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const notFoundMsg = "Resume not found. It either doesn't exist or you don't own it"

// parseID reads the :id param. Ids that can't exist are reported the same
// way as missing resumes
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil || id == 0 {
		return 0, false
	}

	return uint(id), true
}

func notFound(c *gin.Context, requestID string) {
	c.JSON(http.StatusNotFound, gin.H{
		"error":     notFoundMsg,
		"requestID": requestID,
	})
}

func internalError(c *gin.Context, requestID string) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":     "Internal server error",
		"requestID": requestID,
	})
}
