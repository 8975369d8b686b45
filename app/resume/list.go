package resume

import (
	"bitwise74/resume-api/internal"
	"bitwise74/resume-api/internal/store"
	"bitwise74/resume-api/pkg/middleware"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func ResumeList(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	principal := middleware.Principal(c)

	items, err := d.Resumes.List(c.Request.Context(), principal.ID, store.ParseSortOrder(c.Query("sort")))
	if err != nil {
		internalError(c, requestID)

		zap.L().Error("Failed to list resumes", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, items)
}
