package resume

import (
	"bitwise74/resume-api/internal"
	"bitwise74/resume-api/internal/store"
	"bitwise74/resume-api/pkg/middleware"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func ResumeDelete(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	principal := middleware.Principal(c)

	id, ok := parseID(c)
	if !ok {
		notFound(c, requestID)
		return
	}

	if err := d.Resumes.DeleteOwned(c.Request.Context(), id, principal.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			notFound(c, requestID)
			return
		}

		internalError(c, requestID)

		zap.L().Error("Failed to delete resume", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	zap.L().Debug("Resume deleted", zap.Uint("id", id), zap.String("requestID", requestID))

	c.JSON(http.StatusOK, gin.H{"id": id})
}
