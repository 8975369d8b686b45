package resume

import (
	"bitwise74/resume-api/internal"
	"bitwise74/resume-api/internal/store"
	"bitwise74/resume-api/pkg/middleware"
	"bitwise74/resume-api/pkg/util"
	"bitwise74/resume-api/pkg/validators"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type updateBody struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func ResumeUpdate(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	principal := middleware.Principal(c)

	id, ok := parseID(c)
	if !ok {
		notFound(c, requestID)
		return
	}

	var data updateBody
	if err := c.ShouldBindJSON(&data); err != nil {
		code, msg := util.BindErrorStatus(err)
		c.JSON(code, gin.H{
			"error":     msg,
			"requestID": requestID,
		})
		return
	}

	if err := validators.ResumeUpdateValidator(data.Title, data.Content); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	resume, err := d.Resumes.UpdateOwned(c.Request.Context(), id, principal.ID, store.ResumeUpdate{
		Title:   data.Title,
		Content: data.Content,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			notFound(c, requestID)
			return
		}

		internalError(c, requestID)

		zap.L().Error("Failed to update resume", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, resume)
}
