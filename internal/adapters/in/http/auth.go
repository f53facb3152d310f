package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const identityKey = "identity"

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid bearer token")
)

// Identity is the caller as asserted by the bearer token.
type Identity struct {
	CustomerID string
	Staff      bool
}

// Claims carries the customer id in sub and the staff flag.
type Claims struct {
	Staff bool `json:"staff,omitempty"`
	jwt.RegisteredClaims
}

// Authenticator verifies and issues HS256 bearer tokens.
type Authenticator struct {
	secret []byte
	now    func() time.Time
}

func NewAuthenticator(secret string) *Authenticator {
	return &Authenticator{secret: []byte(secret), now: time.Now}
}

// IssueToken signs a token for local development and tests. ttl of zero
// produces a token without expiry.
func (a *Authenticator) IssueToken(customerID string, staff bool, ttl time.Duration) (string, error) {
	if customerID == "" {
		return "", errors.New("customer id is required")
	}

	now := a.now()
	claims := Claims{
		Staff: staff,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  customerID,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// Parse validates a raw token and returns the identity it asserts.
func (a *Authenticator) Parse(raw string) (Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid || claims.Subject == "" {
		return Identity{}, ErrInvalidToken
	}

	return Identity{CustomerID: claims.Subject, Staff: claims.Staff}, nil
}

// Middleware rejects requests without a valid bearer token and stores the
// identity on the echo context.
func (a *Authenticator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || raw == "" {
				return errorResponse(c, http.StatusUnauthorized, ErrMissingToken.Error())
			}

			identity, err := a.Parse(raw)
			if err != nil {
				return errorResponse(c, http.StatusUnauthorized, err.Error())
			}

			c.Set(identityKey, identity)
			return next(c)
		}
	}
}

// RequireStaff must run after Middleware.
func RequireStaff(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !identityFrom(c).Staff {
			return errorResponse(c, http.StatusForbidden, "staff only")
		}
		return next(c)
	}
}

func identityFrom(c echo.Context) Identity {
	identity, _ := c.Get(identityKey).(Identity)
	return identity
}
