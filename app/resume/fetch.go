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

func ResumeFetch(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	principal := middleware.Principal(c)

	id, ok := parseID(c)
	if !ok {
		notFound(c, requestID)
		return
	}

	resume, err := d.Resumes.FindOwned(c.Request.Context(), id, principal.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			notFound(c, requestID)
			return
		}

		internalError(c, requestID)

		zap.L().Error("Failed to fetch resume", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, resume)
}
