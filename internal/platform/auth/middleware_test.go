package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, roles []string, secret []byte) string {
	t.Helper()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Roles: roles,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func runRequest(mw echo.MiddlewareFunc, authHeader string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestJWTMiddlewareValidToken(t *testing.T) {
	token := signToken(t, []string{"physician"}, testSecret)
	rec := runRequest(JWTMiddleware(testSecret), "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestJWTMiddlewareMissingHeader(t *testing.T) {
	rec := runRequest(JWTMiddleware(testSecret), "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestJWTMiddlewareWrongSecret(t *testing.T) {
	token := signToken(t, []string{"physician"}, []byte("other-secret"))
	rec := runRequest(JWTMiddleware(testSecret), "Bearer "+token)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestJWTMiddlewareExpiredToken(t *testing.T) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
		Roles: []string{"physician"},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(testSecret)
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	rec := runRequest(JWTMiddleware(testSecret), "Bearer "+signed)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name     string
		roles    []string
		required []string
		want     int
	}{
		{"matching role", []string{"physician"}, []string{"physician"}, http.StatusOK},
		{"admin always passes", []string{"admin"}, []string{"physician"}, http.StatusOK},
		{"missing role", []string{"technician"}, []string{"physician"}, http.StatusForbidden},
		{"no roles", nil, []string{"physician"}, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := signToken(t, tt.roles, testSecret)
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := JWTMiddleware(testSecret)(RequireRole(tt.required...)(func(c echo.Context) error {
				return c.String(http.StatusOK, "ok")
			}))
			if err := handler(c); err != nil {
				e.HTTPErrorHandler(err, c)
			}
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestDevAuthMiddlewareSetsDefaults(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotID string
	var gotRoles []string
	handler := DevAuthMiddleware()(func(c echo.Context) error {
		gotID = UserIDFromContext(c.Request().Context())
		gotRoles = RolesFromContext(c.Request().Context())
		return c.String(http.StatusOK, "ok")
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if gotID != "dev-user" {
		t.Errorf("user id = %q, want dev-user", gotID)
	}
	if len(gotRoles) == 0 || gotRoles[0] != "admin" {
		t.Errorf("roles = %v, want admin first", gotRoles)
	}
}
