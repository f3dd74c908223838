package middleware

import (
	"errors"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"kunstbeheer/internal/auth"
	"kunstbeheer/internal/model"
)

// Authenticate returns the bearer-token middleware. It extracts the token
// from the Authorization header, verifies signature and expiry, and attaches
// the decoded auth.Claims to the request context. Missing and invalid tokens
// are both rejected with 401, with distinct messages.
func Authenticate(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(secret),
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			var extractionErr *echojwt.TokenExtractionError
			if errors.As(err, &extractionErr) {
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing")
			}
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		},
	})
}

// ClaimsFrom returns the claims attached by Authenticate.
func ClaimsFrom(c echo.Context) (*auth.Claims, bool) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, false
	}
	claims, ok := token.Claims.(*auth.Claims)
	return claims, ok
}

// RequireRole rejects the request with 403 unless the authenticated user has
// one of the given roles. Must be nested inside Authenticate. The role comes
// from the token claims only: a demoted user keeps their old role until the
// token expires.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			for _, role := range roles {
				if claims.Role == role {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "geen toegang")
		}
	}
}

// IsSelfOrAdmin reports whether claims may act on the user record targetID:
// admins may act on anyone, other users only on themselves.
func IsSelfOrAdmin(claims *auth.Claims, targetID uint) bool {
	return claims.Role == model.RoleAdmin || claims.UserID == targetID
}
