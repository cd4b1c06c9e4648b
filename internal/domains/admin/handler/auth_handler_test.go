package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gallery-backend/internal/domains/admin/model"
)

type stubAuthService struct {
	result *model.LoginResult
	err    error
}

func (s *stubAuthService) Login(_ context.Context, _ *model.LoginRequest) (*model.LoginResult, error) {
	return s.result, s.err
}

func setupRouter(svc *stubAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(svc, 86400, false)

	r := gin.New()
	r.POST("/v1/auth/login", h.Login)
	r.POST("/v1/auth/logout", h.Logout)
	return r
}

func TestLoginSetsSessionCookie(t *testing.T) {
	svc := &stubAuthService{
		result: &model.LoginResult{
			Token: "signed.jwt.token",
			Admin: &model.AdminInfo{Email: "admin@gallery.test", Name: "Gallery Admin"},
		},
	}
	router := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login",
		strings.NewReader(`{"email":"admin@gallery.test","password":"pw"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	var session *http.Cookie
	for _, c := range cookies {
		if c.Name == "auth_token" {
			session = c
		}
	}
	require.NotNil(t, session, "auth_token cookie must be set")
	assert.Equal(t, "signed.jwt.token", session.Value)
	assert.True(t, session.HttpOnly)
	assert.Equal(t, 86400, session.MaxAge)

	assert.NotContains(t, w.Body.String(), "signed.jwt.token", "token travels in the cookie only")
}

func TestLoginWrongPasswordReturns401(t *testing.T) {
	router := setupRouter(&stubAuthService{err: model.ErrInvalidPassword})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login",
		strings.NewReader(`{"email":"admin@gallery.test","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"UNAUTHORIZED"`)
	assert.Empty(t, w.Result().Cookies())
}

func TestLoginUnknownEmailReturns404(t *testing.T) {
	router := setupRouter(&stubAuthService{err: model.ErrAdminNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login",
		strings.NewReader(`{"email":"nobody@gallery.test","password":"pw"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestLogoutClearsAllSessionCookieVariants(t *testing.T) {
	router := setupRouter(&stubAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	cleared := map[string]bool{}
	for _, c := range w.Result().Cookies() {
		if c.MaxAge < 0 {
			cleared[c.Name] = true
		}
	}
	for _, name := range []string{"auth_token", "auth_session", "admin_session", "admin_token", "jwt"} {
		assert.True(t, cleared[name], "cookie %s must be cleared", name)
	}
}
