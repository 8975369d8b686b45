package root

import (
	"bitwise74/resume-api/pkg/middleware"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Validate answers with the account the credential belongs to
func Validate(c *gin.Context) {
	p := middleware.Principal(c)

	c.JSON(http.StatusOK, gin.H{
		"userId": p.ID,
		"email":  p.Email,
		"role":   p.Role,
	})
}
