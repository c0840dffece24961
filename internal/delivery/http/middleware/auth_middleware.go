// Package middleware contains the HTTP middlewares of the delivery layer.
package middleware

import (
	"net/http"
	"strings"

	"marketplace/config"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const actorContextKey = "actor"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, cfg: cfg}
}

// Authenticate validates the JWT access token and rejects the request when
// it is missing or invalid. Use for endpoints where an anonymous caller has
// nothing to see.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, err := m.resolveActor(c)
		if err != nil {
			return err
		}

		c.Set(actorContextKey, actor)

		return next(c)
	}
}

// ResolveActor populates the actor when a valid token is present and lets
// the request through either way. Submission actions run behind this: their
// precondition chain turns the anonymous actor into a 401 result envelope
// instead of a transport-level reject.
func (m *AuthMiddleware) ResolveActor(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if actor, err := m.resolveActor(c); err == nil {
			c.Set(actorContextKey, actor)
		}

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the actor has a
// specific role. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor := ActorFromContext(c)
			if !actor.HasRole(requiredRole) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Unauthorized"})
			}

			return next(c)
		}
	}
}

// ActorFromContext returns the actor resolved by the auth middleware, or
// the zero (anonymous) actor when none was set.
func ActorFromContext(c echo.Context) usecase.Actor {
	if actor, ok := c.Get(actorContextKey).(usecase.Actor); ok {
		return actor
	}

	return usecase.Actor{}
}

func (m *AuthMiddleware) resolveActor(c echo.Context) (usecase.Actor, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return usecase.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is missing")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return usecase.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token format, must be Bearer token")
	}

	token, err := m.tokenSvc.ValidateToken(tokenString, m.cfg.SecretKey.Access)
	if err != nil || !token.Valid {
		return usecase.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return usecase.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "Failed to parse token claims")
	}

	userIDStr, ok := claims["sub"].(string)
	if !ok {
		return usecase.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "User ID missing from token")
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return usecase.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "Invalid user ID format in token")
	}

	rolesClaim, _ := claims["roles"].([]any)
	roles := make([]string, 0, len(rolesClaim))
	for _, r := range rolesClaim {
		if roleStr, ok := r.(string); ok {
			roles = append(roles, roleStr)
		}
	}

	return usecase.Actor{
		ID:    userID,
		Roles: entity.RolesFromStrings(roles),
	}, nil
}
