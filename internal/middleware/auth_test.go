package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"titlehub/internal/auth"
	"titlehub/internal/model"
)

// stubUserRepo serves a fixed set of users.
type stubUserRepo struct {
	users map[uint]*model.User
}

func (s *stubUserRepo) Create(ctx context.Context, user *model.User) error { return nil }

func (s *stubUserRepo) FindByID(ctx context.Context, id uint) (*model.User, error) {
	if user, ok := s.users[id]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) FindByEmailOrPhone(ctx context.Context, emailOrPhone string) (*model.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	return nil
}

// stubRevocation answers every check with a fixed verdict.
type stubRevocation struct {
	revoked bool
}

func (s *stubRevocation) RevokeBefore(ctx context.Context, userID uint, cutoff time.Time) error {
	return nil
}

func (s *stubRevocation) IsRevoked(ctx context.Context, userID uint, issuedAt time.Time) (bool, error) {
	return s.revoked, nil
}

func newGatedEcho(jwtService *auth.JWTService, repo *stubUserRepo, revocation *stubRevocation) *echo.Echo {
	e := echo.New()
	gate := []echo.MiddlewareFunc{JWT(jwtService), ResolveUser(repo, revocation)}

	e.GET("/me", func(c echo.Context) error {
		user, ok := CurrentUser(c)
		if !ok {
			return c.NoContent(http.StatusInternalServerError)
		}
		return c.JSON(http.StatusOK, user)
	}, gate...)

	e.GET("/admin", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, append(gate, RequireRoles(model.RoleAdmin))...)

	return e
}

func TestAuthenticationGate(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	repo := &stubUserRepo{users: map[uint]*model.User{
		7: {ID: 7, Name: "Alice", Email: "a@x.com", Role: model.RoleUser},
	}}

	validToken, err := jwtService.GenerateToken(7, model.RoleUser)
	assert.NoError(t, err)

	unknownUserToken, err := jwtService.GenerateToken(404, model.RoleUser)
	assert.NoError(t, err)

	tests := []struct {
		name           string
		authorization  string
		expectedStatus int
	}{
		{name: "missing header", authorization: "", expectedStatus: http.StatusUnauthorized},
		{name: "malformed token", authorization: "Bearer not.a.jwt", expectedStatus: http.StatusUnauthorized},
		{name: "token for unknown user", authorization: "Bearer " + unknownUserToken, expectedStatus: http.StatusUnauthorized},
		{name: "valid token", authorization: "Bearer " + validToken, expectedStatus: http.StatusOK},
	}

	e := newGatedEcho(jwtService, repo, &stubRevocation{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.authorization != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.authorization)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestAuthenticationGate_RevokedToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	repo := &stubUserRepo{users: map[uint]*model.User{
		7: {ID: 7, Name: "Alice", Email: "a@x.com", Role: model.RoleUser},
	}}

	token, err := jwtService.GenerateToken(7, model.RoleUser)
	assert.NoError(t, err)

	e := newGatedEcho(jwtService, repo, &stubRevocation{revoked: true})
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRoles(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	repo := &stubUserRepo{users: map[uint]*model.User{
		1: {ID: 1, Name: "Root", Email: "root@x.com", Role: model.RoleAdmin},
		7: {ID: 7, Name: "Alice", Email: "a@x.com", Role: model.RoleUser},
	}}

	adminToken, err := jwtService.GenerateToken(1, model.RoleAdmin)
	assert.NoError(t, err)
	userToken, err := jwtService.GenerateToken(7, model.RoleUser)
	assert.NoError(t, err)

	e := newGatedEcho(jwtService, repo, &stubRevocation{})

	tests := []struct {
		name           string
		token          string
		expectedStatus int
	}{
		{name: "admin is permitted", token: adminToken, expectedStatus: http.StatusOK},
		{name: "user is denied", token: userToken, expectedStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			req.Header.Set(echo.HeaderAuthorization, "Bearer "+tt.token)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestRequireRoles_FailsClosedWithoutGate(t *testing.T) {
	// Wiring the role guard without the authentication gate is a programming
	// error; the request must be denied, never let through.
	e := echo.New()
	e.GET("/broken", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, RequireRoles(model.RoleAdmin))

	req := httptest.NewRequest(http.MethodGet, "/broken", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
