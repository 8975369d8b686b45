package middleware

import (
	"bitwise74/resume-api/config"
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type turnstileResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

var turnstileClient = &http.Client{Timeout: 10 * time.Second}

// NewTurnstileMiddleware checks the TurnstileToken header against Cloudflare
// before letting the request through. It does nothing when turnstile is disabled
func NewTurnstileMiddleware(cfg config.TurnstileConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cfg.Enabled {
			c.Next()
			return
		}

		requestID := c.GetString("requestID")

		token := c.Request.Header.Get("TurnstileToken")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error":     "Missing or invalid turnstile token",
				"requestID": requestID,
			})
			return
		}

		payload, _ := json.Marshal(gin.H{
			"secret":   cfg.SecretToken,
			"response": token,
			"remoteip": c.ClientIP(),
		})

		req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodPost, cfg.VerifyURL, bytes.NewReader(payload))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to build turnstile request", zap.Error(err), zap.String("requestID", requestID))
			return
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := turnstileClient.Do(req)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":     "Bot verification failed",
				"requestID": requestID,
			})

			zap.L().Error("Failed to reach turnstile", zap.Error(err), zap.String("requestID", requestID))
			return
		}
		defer resp.Body.Close()

		var res turnstileResponse
		if err := json.NewDecoder(resp.Body).Decode(&res); err != nil || !res.Success {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":     "Bot verification failed",
				"requestID": requestID,
			})

			zap.L().Debug("Turnstile rejected request",
				zap.Strings("errorCodes", res.ErrorCodes),
				zap.String("requestID", requestID),
			)
			return
		}

		c.Next()
	}
}
