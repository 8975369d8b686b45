package resume

import (
	"bitwise74/resume-api/internal"
	"bitwise74/resume-api/internal/model"
	"bitwise74/resume-api/pkg/middleware"
	"bitwise74/resume-api/pkg/util"
	"bitwise74/resume-api/pkg/validators"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Only title and content are read, any owner or status in the body is ignored
type createBody struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func ResumeCreate(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	principal := middleware.Principal(c)

	var data createBody
	if err := c.ShouldBindJSON(&data); err != nil {
		code, msg := util.BindErrorStatus(err)
		c.JSON(code, gin.H{
			"error":     msg,
			"requestID": requestID,
		})
		return
	}

	if err := validators.ResumeCreateValidator(data.Title, data.Content); err != nil {
		zap.L().Debug("Invalid resume", zap.Error(err), zap.String("requestID", requestID))

		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	resume := model.Resume{
		UserID:  principal.ID,
		Title:   data.Title,
		Content: data.Content,
		Status:  model.StatusApply,
	}

	if err := d.Resumes.Create(c.Request.Context(), &resume); err != nil {
		internalError(c, requestID)

		zap.L().Error("Failed to create resume", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, resume)
}
