package user

import (
	"bitwise74/resume-api/internal"
	"bitwise74/resume-api/internal/model"
	"bitwise74/resume-api/internal/store"
	"bitwise74/resume-api/pkg/util"
	"bitwise74/resume-api/pkg/validators"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type registerBody struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"passwordConfirm"`
	Name            string `json:"name"`
}

func UserRegister(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data registerBody
	if err := c.ShouldBindJSON(&data); err != nil {
		code, msg := util.BindErrorStatus(err)
		c.JSON(code, gin.H{
			"error":     msg,
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	// Presence of every field is checked before any of them is validated
	checks := []func() error{
		func() error { return validators.EmailPresent(data.Email) },
		func() error { return validators.PasswordPresent(data.Password) },
		func() error {
			if data.PasswordConfirm == "" {
				return validators.ErrPasswordConfirmEmpty
			}
			return nil
		},
		func() error { return validators.NameValidator(data.Name) },
		func() error { return validators.EmailValidator(data.Email) },
	}

	for _, check := range checks {
		if err := check(); err != nil {
			zap.L().Debug("Invalid sign-up request", zap.Error(err), zap.String("requestID", requestID))

			c.JSON(http.StatusBadRequest, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})
			return
		}
	}

	taken, err := d.Accounts.EmailTaken(c.Request.Context(), data.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to check if user is registered", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if taken {
		c.JSON(http.StatusConflict, gin.H{
			"error":     "This email is already registered. Please login or use a different email",
			"requestID": requestID,
		})
		return
	}

	if err := validators.PasswordValidator(data.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	if err := validators.PasswordConfirmValidator(data.Password, data.PasswordConfirm); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	hash, err := d.Argon.GenerateFromPassword(data.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to hash password", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	user := model.User{
		Email:        data.Email,
		PasswordHash: hash,
		Role:         model.RoleApplicant,
	}

	if err := d.Accounts.Create(c.Request.Context(), &user, data.Name); err != nil {
		// Lost a race with another sign-up for the same email
		if errors.Is(err, store.ErrDuplicateEmail) {
			c.JSON(http.StatusConflict, gin.H{
				"error":     "This email is already registered. Please login or use a different email",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	zap.L().Info("New account registered", zap.Uint("userID", user.ID), zap.String("requestID", requestID))

	c.JSON(http.StatusCreated, gin.H{
		"userId":    user.ID,
		"email":     user.Email,
		"name":      user.Profile.Name,
		"role":      user.Role,
		"createdAt": user.CreatedAt,
		"updatedAt": user.UpdatedAt,
	})
}
