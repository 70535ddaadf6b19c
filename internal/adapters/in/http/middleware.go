package http

import (
	"net/http"
	"strings"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// actorContextKey is where the auth middleware stores the verified actor in
// the echo context.
const actorContextKey = "actor"

// TokenParser verifies a bearer token and reconstructs the actor it was
// issued for.
type TokenParser interface {
	Parse(tokenString string) (kernel.Actor, error)
}

// AuthMiddleware verifies the Authorization header and stores the resulting
// actor in the request context. Requests without a valid bearer token are
// rejected with 401.
func AuthMiddleware(parser TokenParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "missing bearer token",
				})
			}

			actor, err := parser.Parse(token)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "invalid token",
				})
			}

			ctx.Set(actorContextKey, actor)
			return next(ctx)
		}
	}
}

// RequireRole rejects authenticated requests whose actor carries the wrong
// role, e.g. a courier calling a shop-only endpoint.
func RequireRole(role kernel.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			actor, ok := actorFromContext(ctx)
			if !ok {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "missing bearer token",
				})
			}

			if actor.Role() != role {
				return ctx.JSON(http.StatusForbidden, ErrorResponse{
					Code:    http.StatusForbidden,
					Message: "insufficient role",
				})
			}

			return next(ctx)
		}
	}
}

// actorFromContext retrieves the actor stored by AuthMiddleware.
func actorFromContext(ctx echo.Context) (kernel.Actor, bool) {
	actor, ok := ctx.Get(actorContextKey).(kernel.Actor)
	return actor, ok
}
