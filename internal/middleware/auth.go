package middleware

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"titlehub/internal/auth"
	"titlehub/internal/model"
	"titlehub/internal/repository"
	"titlehub/internal/response"
)

const userContextKey = "current_user"

// AuthUser is the resolved identity attached to the request context after the
// gate has verified the token and confirmed the subject still exists.
type AuthUser struct {
	ID    uint       `json:"id"`
	Name  string     `json:"name"`
	Email string     `json:"email"`
	Role  model.Role `json:"role"`
}

// JWT verifies the Authorization bearer token on a route group. Parsing is
// delegated to the token service so the claims arriving in the context are
// already our typed Claims.
func JWT(jwtService *auth.JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			return jwtService.ValidateToken(tokenString)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return response.Fail(c, http.StatusUnauthorized, "invalid or missing token")
		},
	})
}

// ResolveUser runs after JWT. It rejects tokens issued before the subject's
// revocation cutoff, confirms the subject still exists in the store, and
// attaches the resolved identity for downstream handlers. Any failure is a
// hard 401; the downstream handler never runs on a partial success.
func ResolveUser(userRepo repository.UserRepository, revocation auth.RevocationStoreInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get("user").(*auth.Claims)
			if !ok {
				return response.Fail(c, http.StatusUnauthorized, "authentication required")
			}

			if claims.IssuedAt != nil {
				revoked, err := revocation.IsRevoked(c.Request().Context(), claims.UserID, claims.IssuedAt.Time)
				if err == nil && revoked {
					return response.Fail(c, http.StatusUnauthorized, "token has been revoked")
				}
			}

			user, err := userRepo.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				return response.Fail(c, http.StatusUnauthorized, "user no longer exists")
			}

			c.Set(userContextKey, &AuthUser{
				ID:    user.ID,
				Name:  user.Name,
				Email: user.Email,
				Role:  user.Role,
			})
			return next(c)
		}
	}
}

// RequireRoles permits continuation only when the resolved user's role is in
// the allow-list. Running it without a resolved user is a wiring mistake and
// fails closed with 401 rather than letting the request through.
func RequireRoles(roles ...model.Role) echo.MiddlewareFunc {
	allowed := make(map[model.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := CurrentUser(c)
			if !ok {
				return response.Fail(c, http.StatusUnauthorized, "authentication required")
			}
			if _, permitted := allowed[user.Role]; !permitted {
				return response.Fail(c, http.StatusForbidden, "access denied for role: "+string(user.Role))
			}
			return next(c)
		}
	}
}

// CurrentUser returns the identity attached by ResolveUser.
func CurrentUser(c echo.Context) (*AuthUser, bool) {
	user, ok := c.Get(userContextKey).(*AuthUser)
	return user, ok
}
