package middleware

import (
	"bitwise74/resume-api/internal/model"
	"bitwise74/resume-api/internal/store"
	"bitwise74/resume-api/pkg/security"
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthCookie is the cookie holding the "Bearer <token>" credential
const AuthCookie = "authorization"

// AccountFinder resolves the user a token was issued for
type AccountFinder interface {
	FindByID(ctx context.Context, id uint) (*model.User, error)
}

// TokenVerifier checks a raw token and returns its subject
type TokenVerifier interface {
	Verify(token string) (uint, security.Failure)
}

// NewAuthMiddleware returns a middleware that only lets requests with a valid
// credential through. The resolved user is stored as principal
func NewAuthMiddleware(tokens TokenVerifier, accounts AccountFinder, secureCookie bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.MustGet("requestID").(string)

		abort := func(code int, msg string, clear bool) {
			if clear {
				ClearAuthCookie(c, secureCookie)
			}

			c.AbortWithStatusJSON(code, gin.H{
				"error":     msg,
				"requestID": requestID,
			})
		}

		// A missing cookie and an empty one are the same thing
		raw, _ := c.Cookie(AuthCookie)

		token, failure := security.ParseBearer(raw)
		switch failure {
		case security.FailureMissing:
			abort(http.StatusUnauthorized, "No authorization credential provided", false)
			return
		case security.FailureUnsupportedScheme:
			abort(http.StatusUnauthorized, "Unsupported authorization scheme", false)
			return
		}

		userID, failure := tokens.Verify(token)
		switch failure {
		case security.FailureNone:
		case security.FailureExpired:
			abort(http.StatusUnauthorized, "Authorization credential expired", true)
			return
		case security.FailureMalformed:
			// Signature failures share the scheme message
			abort(http.StatusUnauthorized, "Unsupported authorization scheme", true)
			return
		default:
			abort(http.StatusUnauthorized, "Invalid authentication request", true)
			return
		}

		user, err := accounts.FindByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				abort(http.StatusNotFound, "No account matches the authorization credential", true)
				return
			}

			abort(http.StatusUnauthorized, "Invalid authentication request", true)

			zap.L().Error("Failed to resolve token subject", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		c.Set("principal", user)
		c.Set("userID", strconv.FormatUint(uint64(user.ID), 10))
		c.Next()
	}
}

// SetAuthCookie stores the credential for maxAge seconds
func SetAuthCookie(c *gin.Context, token string, maxAge int, secure bool) {
	c.SetCookie(AuthCookie, "Bearer "+token, maxAge, "/", "", secure, true)
}

// ClearAuthCookie expires the credential cookie with the same path and flags
// it was set with
func ClearAuthCookie(c *gin.Context, secure bool) {
	c.SetCookie(AuthCookie, "", -1, "/", "", secure, true)
}

// Principal returns the user set by the auth middleware
func Principal(c *gin.Context) *model.User {
	return c.MustGet("principal").(*model.User)
}
