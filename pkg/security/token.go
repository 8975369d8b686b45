package security

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is how long an access token stays valid after login
const DefaultTokenTTL = 12 * time.Hour

// Failure is the result of checking a presented credential. Each value maps
// to its own client facing message so they must never be merged
type Failure int

const (
	FailureNone Failure = iota
	// No credential supplied at all
	FailureMissing
	// Credential isn't in the "Bearer <token>" format
	FailureUnsupportedScheme
	// Signature is valid but the token is past its expiry
	FailureExpired
	// Bad signature, unexpected algorithm or a token that can't be decoded
	FailureMalformed
)

func (f Failure) String() string {
	switch f {
	case FailureNone:
		return "none"
	case FailureMissing:
		return "missing"
	case FailureUnsupportedScheme:
		return "unsupported_scheme"
	case FailureExpired:
		return "expired"
	case FailureMalformed:
		return "malformed"
	}

	return "unknown"
}

type TokenOption func(*TokenService)

// WithClock replaces the time source used to issue and verify tokens
func WithClock(now func() time.Time) TokenOption {
	return func(s *TokenService) {
		s.now = now
	}
}

// TokenService issues and verifies HS256 signed access tokens. It holds no
// state besides the secret so it's safe to share between requests
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret []byte, ttl time.Duration, opts ...TokenOption) (*TokenService, error) {
	if len(secret) == 0 {
		return nil, errors.New("no token secret provided")
	}

	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	s := &TokenService{
		secret: secret,
		ttl:    ttl,
		now:    time.Now,
	}

	for _, o := range opts {
		o(s)
	}

	return s, nil
}

func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue returns a signed token with the user ID as its subject
func (s *TokenService) Issue(userID uint) (string, error) {
	now := s.now()

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(userID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	})

	return t.SignedString(s.secret)
}

// Verify checks the signature and expiry of a token and returns the user ID
// it was issued for
func (s *TokenService) Verify(token string) (uint, Failure) {
	var claims jwt.RegisteredClaims

	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		// The signature is checked before the claims so an expired
		// error means the token itself is genuine
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, FailureExpired
		}

		return 0, FailureMalformed
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 0)
	if err != nil || userID == 0 {
		return 0, FailureMalformed
	}

	return uint(userID), FailureNone
}

// ParseBearer extracts the token from a "Bearer <token>" credential. The
// value must split on single spaces into exactly the scheme and the token
func ParseBearer(value string) (string, Failure) {
	if value == "" {
		return "", FailureMissing
	}

	parts := strings.Split(value, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", FailureUnsupportedScheme
	}

	return parts[1], FailureNone
}
