package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const principalKey = "principal"

// Claims is the bearer token payload. Subject carries the user id.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Authenticator verifies HS256 bearer tokens. Tokens are issued elsewhere.
type Authenticator struct {
	secret []byte
}

func NewAuthenticator(secret string) (*Authenticator, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("jwt secret is required")
	}
	return &Authenticator{secret: []byte(secret)}, nil
}

// Middleware rejects requests without a valid token and stores the caller's
// principal on the context.
func (a *Authenticator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(raw) == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "No token, authorization denied")
			}

			p, err := a.Parse(strings.TrimSpace(raw))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Token is not valid").SetInternal(err)
			}

			c.Set(principalKey, p)
			return next(c)
		}
	}
}

// Parse verifies the signature and expiry and maps sub and role to a principal.
func (a *Authenticator) Parse(raw string) (user.Principal, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return user.Principal{}, err
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return user.Principal{}, fmt.Errorf("subject: %w", err)
	}
	role, err := user.ParseRole(claims.Role)
	if err != nil {
		return user.Principal{}, err
	}
	return user.NewPrincipal(id, role)
}

func principalFrom(c echo.Context) (user.Principal, error) {
	p, ok := c.Get(principalKey).(user.Principal)
	if !ok {
		return user.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "No token, authorization denied")
	}
	return p, nil
}
