// Package app wires the handlers, middleware and dependencies into a gin router
package app

import (
	"bitwise74/resume-api/app/resume"
	"bitwise74/resume-api/app/root"
	"bitwise74/resume-api/app/user"
	"bitwise74/resume-api/config"
	"bitwise74/resume-api/db"
	"bitwise74/resume-api/internal"
	"bitwise74/resume-api/internal/store"
	"bitwise74/resume-api/pkg/middleware"
	"bitwise74/resume-api/pkg/security"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type App struct {
	Router  *gin.Engine
	Deps    *internal.Deps
	limiter *middleware.RateLimiter
}

// NewRouter sets up logging, opens the database and builds the router
func NewRouter(cfg *config.Config) (*App, error) {
	if err := makeLogger(cfg.App.LogLevel, cfg.App.Env); err != nil {
		return nil, fmt.Errorf("failed to create logger, %w", err)
	}

	conn, err := db.New(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}

	tokens, err := security.NewTokenService([]byte(cfg.JWT.Secret), cfg.JWT.TTL)
	if err != nil {
		return nil, err
	}

	d := &internal.Deps{
		DB:       conn,
		Argon:    security.New(cfg.Security.Argon.Memory, cfg.Security.Argon.Iterations, cfg.Security.Argon.Parallelism),
		Tokens:   tokens,
		Accounts: store.NewAccounts(conn),
		Resumes:  store.NewResumes(conn),
		Config:   cfg,
	}

	return NewWithDeps(d), nil
}

// NewWithDeps builds the router around already created dependencies
func NewWithDeps(d *internal.Deps) *App {
	cfg := d.Config

	router := gin.New()
	a := &App{Router: router, Deps: d}

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     cfg.Host.CORS,
			AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "HEAD", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "TurnstileToken"},
			ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		middleware.NewRequestIDMiddleware(),
		ginzap.CustomRecoveryWithZap(zap.L(), true, func(c *gin.Context, err any) {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": c.GetString("requestID"),
			})
		}),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == http.MethodHead
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v := c.GetString("userID"); v != "" {
					fields = append(fields, zap.String("userID", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true

	a.limiter = middleware.NewRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: cfg.Security.RateLimit,
		Burst:             cfg.Security.RateLimit * 2,
	})

	auth := middleware.NewAuthMiddleware(d.Tokens, d.Accounts, cfg.Host.SSL.Enabled)
	turnstile := middleware.NewTurnstileMiddleware(cfg.Cloudflare.Turnstile)

	main := router.Group("/api", a.limiter.Middleware(), middleware.BodySizeLimiter(cfg.Upload.MaxBody))
	{
		// HEAD /api/heartbeat 		-> Used to check if the server is alive
		main.HEAD("/heartbeat", root.Heartbeat)

		// GET /api/validate		-> Returns the account behind the credential
		main.GET("/validate", auth, root.Validate)

		// POST /api/sign-up		-> Registers a new account
		main.POST("/sign-up", turnstile, func(c *gin.Context) { user.UserRegister(c, d) })

		// POST /api/log-in		-> Logs in and sets the authorization cookie
		main.POST("/log-in", func(c *gin.Context) { user.UserLogin(c, d) })
	}

	resumes := main.Group("/resumes", auth)
	{
		// POST /api/resumes		-> Creates a resume owned by the caller
		resumes.POST("", func(c *gin.Context) { resume.ResumeCreate(c, d) })

		// GET /api/resumes?sort=	-> Lists the caller's resumes
		resumes.GET("", func(c *gin.Context) { resume.ResumeList(c, d) })

		// GET /api/resumes/:id		-> Returns a single resume if the caller owns it
		resumes.GET("/:id", func(c *gin.Context) { resume.ResumeFetch(c, d) })

		// PATCH /api/resumes/:id	-> Updates the title and/or content
		resumes.PATCH("/:id", func(c *gin.Context) { resume.ResumeUpdate(c, d) })

		// DELETE /api/resumes/:id	-> Deletes a resume owned by the caller
		resumes.DELETE("/:id", func(c *gin.Context) { resume.ResumeDelete(c, d) })
	}

	return a
}

// Close stops background work and closes the database
func (a *App) Close() error {
	a.limiter.Stop()

	sqlDB, err := a.Deps.DB.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
