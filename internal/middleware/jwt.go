package middleware // package middleware contains reusable HTTP middleware functions

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-management/internal/utils"
)

// Context keys under which JWTAuth stores the verified identity.
const (
	CtxUserID   = "user_id"
	CtxUsername = "username"
	CtxRole     = "role"
)

// JWTAuth returns a middleware that validates a Bearer access token and
// injects the verified identity into the request context. A missing token
// is rejected with 401; a token that fails verification (bad signature or
// expired) with 403. The two cases deliberately carry different status
// codes so clients can tell "log in" apart from "re-authenticate". The
// check is stateless and never touches the database.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "authentication required"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")
			if strings.TrimSpace(raw) == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "authentication required"})
			}

			ident, err := utils.ParseAccessToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusForbidden, echo.Map{"message": "invalid token"})
			}

			c.Set(CtxUserID, ident.UserID)
			c.Set(CtxUsername, ident.Username)
			c.Set(CtxRole, ident.Role)
			return next(c)
		}
	}
}
