package http

import (
	"errors"
	"net/http"
	"strings"

	"fooddelivery/internal/adapters/out/authclient"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// claimsContextKey is where BearerAuth stores verified claims in the echo
// context.
const claimsContextKey = "authClaims"

// BearerAuth resolves the Authorization header to claims via the auth
// collaborator. Missing or rejected tokens answer 401; a transport failure
// talking to the auth service answers 500, not 401, so outages do not look
// like revocations.
func BearerAuth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return writeError(c, http.StatusUnauthorized, "missing bearer token")
			}

			claims, err := verifier.Verify(c.Request().Context(), token)
			if err != nil {
				if errors.Is(err, authclient.ErrTokenRejected) {
					return writeError(c, http.StatusUnauthorized, "invalid or expired token")
				}
				return writeError(c, http.StatusInternalServerError, "token verification unavailable")
			}

			c.Set(claimsContextKey, claims)
			return next(c)
		}
	}
}

// RequireRole answers 403 unless the verified claims carry one of the given
// roles.
func RequireRole(roles ...order.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := claimsFrom(c)
			if !ok {
				return writeError(c, http.StatusUnauthorized, "missing bearer token")
			}
			for _, role := range roles {
				if claims.Role == role {
					return next(c)
				}
			}
			return writeError(c, http.StatusForbidden, "role not allowed for this operation")
		}
	}
}

func claimsFrom(c echo.Context) (ports.AuthClaims, bool) {
	claims, ok := c.Get(claimsContextKey).(ports.AuthClaims)
	return claims, ok
}
