package middleware

import (
	"bitwise74/resume-api/config"
	"bitwise74/resume-api/pkg/util"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	r := gin.New()
	r.Use(NewRequestIDMiddleware())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.MustGet("requestID").(string))
	})

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		id := w.Body.String()
		assert.Len(t, id, 12)
		assert.Equal(t, id, w.Header().Get("X-Request-ID"))
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestRateLimiter(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(RateLimiterConfig{RequestsPerSecond: 1, Burst: 2})
	t.Cleanup(rl.Stop)

	r := gin.New()
	r.Use(rl.Middleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// Other clients have their own bucket
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiter_Disabled(t *testing.T) {
	t.Parallel()

	r := gin.New()
	r.Use(NewRateLimiter(RateLimiterConfig{}).Middleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 50; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
}

func TestBodySizeLimiter(t *testing.T) {
	t.Parallel()

	r := gin.New()
	r.Use(BodySizeLimiter(16))
	r.POST("/", func(c *gin.Context) {
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			code, msg := util.BindErrorStatus(err)
			c.JSON(code, gin.H{"error": msg})
			return
		}

		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"a":"b"}`)))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"a":"`+strings.Repeat("b", 64)+`"}`)))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	// Unknown length is cut off while reading
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"a":"`+strings.Repeat("b", 64)+`"}`))
	req.ContentLength = -1
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func newTurnstileRouter(cfg config.TurnstileConfig) *gin.Engine {
	r := gin.New()
	r.Use(NewRequestIDMiddleware())
	r.POST("/", NewTurnstileMiddleware(cfg), func(c *gin.Context) { c.Status(http.StatusCreated) })

	return r
}

func TestTurnstile(t *testing.T) {
	t.Parallel()

	verifier := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)

		ok := body["secret"] == "s3cret" && body["response"] == "good"
		_ = json.NewEncoder(w).Encode(map[string]any{"success": ok})
	}))
	t.Cleanup(verifier.Close)

	cfg := config.TurnstileConfig{Enabled: true, SecretToken: "s3cret", VerifyURL: verifier.URL}

	tests := []struct {
		name  string
		cfg   config.TurnstileConfig
		token string
		want  int
	}{
		{"disabled", config.TurnstileConfig{}, "", http.StatusCreated},
		{"missing token", cfg, "", http.StatusBadRequest},
		{"rejected token", cfg, "bad", http.StatusForbidden},
		{"accepted token", cfg, "good", http.StatusCreated},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			if tc.token != "" {
				req.Header.Set("TurnstileToken", tc.token)
			}

			w := httptest.NewRecorder()
			newTurnstileRouter(tc.cfg).ServeHTTP(w, req)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}
