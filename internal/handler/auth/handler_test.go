package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saludbot/admin-api/internal/middleware"
	"github.com/saludbot/admin-api/internal/model"
	"github.com/saludbot/admin-api/internal/repository"
	authservice "github.com/saludbot/admin-api/internal/service/auth"
	"github.com/saludbot/admin-api/pkg/auth"
	apperrors "github.com/saludbot/admin-api/pkg/errors"
	"github.com/saludbot/admin-api/pkg/httputil"
	"github.com/saludbot/admin-api/pkg/security"
)

type fakeStaffRepo struct {
	users map[string]*model.StaffUser
}

func (f *fakeStaffRepo) GetByEmployeeCode(_ context.Context, employeeCode string) (*model.StaffUser, error) {
	if u, ok := f.users[employeeCode]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hasher := security.NewBcryptHasher(4)
	hash, err := hasher.Hash("s3cret-pw")
	require.NoError(t, err)

	repo := &fakeStaffRepo{users: map[string]*model.StaffUser{
		"1001": {EmployeeCode: "1001", DisplayName: "Laura Gómez", PasswordHash: hash},
	}}
	tokens := auth.NewTokenService("test-secret", 8*time.Hour)
	svc := authservice.NewService(repo, tokens, hasher)

	h := NewHandler(svc, false)
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		httputil.RespondWithError(c, apperrors.MethodNotAllowed(nil))
	})
	h.RegisterRoutes(r.Group("/api/v1"))
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestLoginSuccessSetsCookie(t *testing.T) {
	r := setupRouter(t)

	w := postJSON(r, "/api/v1/auth/login", `{"employee_code":"1001","password":"s3cret-pw"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, middleware.SessionCookieName, cookie.Name)
	assert.NotEmpty(t, cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, 28800, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
}

func TestLoginMissingFields(t *testing.T) {
	r := setupRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: `{}`},
		{name: "no password", body: `{"employee_code":"1001"}`},
		{name: "no employee code", body: `{"password":"pw"}`},
		{name: "not json", body: `employee_code=1001`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(r, "/api/v1/auth/login", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestLoginInvalidCredentialsUniformBody(t *testing.T) {
	r := setupRouter(t)

	wrongPw := postJSON(r, "/api/v1/auth/login", `{"employee_code":"1001","password":"wrong"}`)
	unknown := postJSON(r, "/api/v1/auth/login", `{"employee_code":"9999","password":"s3cret-pw"}`)

	assert.Equal(t, http.StatusUnauthorized, wrongPw.Code)
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, wrongPw.Body.String(), unknown.Body.String(), "no user-enumeration signal")
}

func TestLoginWrongMethod(t *testing.T) {
	r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/login", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Contains(t, w.Body.String(), "method not allowed")
}

func TestLogoutClearsCookie(t *testing.T) {
	r := setupRouter(t)

	w := postJSON(r, "/api/v1/auth/logout", "")
	assert.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.SessionCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
