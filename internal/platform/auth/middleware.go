package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type contextKey string

const (
	UserIDKey    contextKey = "usuario_id"
	UserEmailKey contextKey = "usuario_email"
	UserRoleKey  contextKey = "usuario_rol"
)

// JWTMiddleware authenticates requests with a bearer session token. Recovery
// tokens are rejected here: their sentinel role makes them single-purpose and
// they must never act as a session credential.
func JWTMiddleware(ts *TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization format")
			}

			claims, err := ts.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			if claims.Rol == RecoveryRole {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			ctx := c.Request().Context()
			ctx = context.WithValue(ctx, UserIDKey, claims.UsuarioID)
			ctx = context.WithValue(ctx, UserEmailKey, claims.Subject)
			ctx = context.WithValue(ctx, UserRoleKey, claims.Rol)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// DevAuthMiddleware is a permissive middleware for development that allows
// unauthenticated requests with default values.
func DevAuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			ctx = context.WithValue(ctx, UserIDKey, 0)
			ctx = context.WithValue(ctx, UserEmailKey, "dev@cliniclab.local")
			ctx = context.WithValue(ctx, UserRoleKey, "administrador")
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

func UserIDFromContext(ctx context.Context) int {
	uid, _ := ctx.Value(UserIDKey).(int)
	return uid
}

func UserEmailFromContext(ctx context.Context) string {
	email, _ := ctx.Value(UserEmailKey).(string)
	return email
}

func UserRoleFromContext(ctx context.Context) string {
	rol, _ := ctx.Value(UserRoleKey).(string)
	return rol
}
