package physician

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
	authservice "github.com/saludbot/admin-api/internal/service/auth"
	physicianservice "github.com/saludbot/admin-api/internal/service/physician"
	"github.com/saludbot/admin-api/pkg/auth"
	"github.com/saludbot/admin-api/pkg/security"
)

func strPtr(s string) *string { return &s }

type fakeAssignmentRepo struct {
	rows        []model.SpecialtyAssignment
	updateCalls int
}

func (f *fakeAssignmentRepo) List(_ context.Context, filter *model.RosterFilter) ([]model.SpecialtyAssignment, error) {
	var out []model.SpecialtyAssignment
	for _, r := range f.rows {
		if filter != nil && filter.VisibleOnly && !model.VisibilityIsActive(r.BotVisible) {
			continue
		}
		if filter != nil && len(filter.SpecialtyCodes) > 0 {
			match := false
			for _, code := range filter.SpecialtyCodes {
				if r.SpecialtyCode == code {
					match = true
					break
				}
			}
			if !match {
				continue
			}
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeAssignmentRepo) ListByEmployee(_ context.Context, employeeCode string) ([]model.SpecialtyAssignment, error) {
	var out []model.SpecialtyAssignment
	for _, r := range f.rows {
		if r.EmployeeCode == employeeCode {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAssignmentRepo) UpdateVisibility(_ context.Context, employeeCode, visibility string) (int64, error) {
	f.updateCalls++
	var n int64
	for i := range f.rows {
		if f.rows[i].EmployeeCode == employeeCode {
			f.rows[i].BotVisible = visibility
			n++
		}
	}
	return n, nil
}

func (f *fakeAssignmentRepo) UpdateSpecialty(_ context.Context, employeeCode, specialtyCode, billingCode string) (int64, error) {
	f.updateCalls++
	var n int64
	for i := range f.rows {
		if f.rows[i].EmployeeCode == employeeCode {
			f.rows[i].SpecialtyCode = specialtyCode
			f.rows[i].BillingCode = billingCode
			n++
		}
	}
	return n, nil
}

func (f *fakeAssignmentRepo) UpdateContract(_ context.Context, employeeCode string, contractCode *string) (int64, error) {
	f.updateCalls++
	var n int64
	for i := range f.rows {
		if f.rows[i].EmployeeCode == employeeCode {
			f.rows[i].ContractCode = contractCode
			n++
		}
	}
	return n, nil
}

func setupRouter(t *testing.T, repo *fakeAssignmentRepo) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := auth.NewTokenService("test-secret", time.Hour)
	authSvc := authservice.NewService(nil, tokens, security.NewBcryptHasher(4))
	mw := middleware.NewAuthMiddleware(authSvc)

	h := NewHandler(physicianservice.NewService(repo))
	r := gin.New()
	protected := r.Group("/api/v1")
	protected.Use(mw.Authenticate())
	h.RegisterRoutes(protected)

	token, err := tokens.Issue("1001", "Laura Gómez")
	require.NoError(t, err)
	return r, token
}

func doRequest(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: token})
	}
	r.ServeHTTP(w, req)
	return w
}

func seededRepo() *fakeAssignmentRepo {
	return &fakeAssignmentRepo{rows: []model.SpecialtyAssignment{
		{EmployeeCode: "1001", SpecialtyCode: "016", BotVisible: "SI", DisplayName: strPtr("Laura Gómez")},
		{EmployeeCode: "1001", SpecialtyCode: "022", BotVisible: "NO", DisplayName: strPtr("Laura Gómez")},
		{EmployeeCode: "2002", SpecialtyCode: "036", BotVisible: "NO", DisplayName: strPtr("Andrés Ruiz")},
	}}
}

func TestListRoster(t *testing.T) {
	r, token := setupRouter(t, seededRepo())

	w := doRequest(r, http.MethodGet, "/api/v1/physicians", "", token)
	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"employee_code":"1001"`)
	assert.Contains(t, body, `"bot_visible":true`)
	assert.Contains(t, body, `"employee_code":"2002"`)
}

func TestListRosterVisibleFilter(t *testing.T) {
	r, token := setupRouter(t, seededRepo())

	w := doRequest(r, http.MethodGet, "/api/v1/physicians?visible=true", "", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"employee_code":"1001"`)
	assert.NotContains(t, w.Body.String(), `"employee_code":"2002"`)
}

func TestUnauthorizedRequestsPerformNoMutation(t *testing.T) {
	repo := seededRepo()
	r, _ := setupRouter(t, repo)

	foreign := auth.NewTokenService("other-secret", time.Hour)
	foreignToken, err := foreign.Issue("1001", "Laura Gómez")
	require.NoError(t, err)

	requests := []struct {
		method, path, body string
	}{
		{http.MethodGet, "/api/v1/physicians", ""},
		{http.MethodPost, "/api/v1/physicians/visibility", `{"employee_code":"1001"}`},
		{http.MethodPost, "/api/v1/physicians/specialty", `{"employee_code":"1001","new_specialty_code":"016"}`},
		{http.MethodPost, "/api/v1/physicians/contract", `{"employee_code":"1001","new_contract_code":"EPS008"}`},
	}

	for _, tokenValue := range []string{"", foreignToken} {
		for _, req := range requests {
			w := doRequest(r, req.method, req.path, req.body, tokenValue)
			assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", req.method, req.path)
		}
	}
	assert.Zero(t, repo.updateCalls, "rejected requests must not touch storage")
}

func TestToggleVisibility(t *testing.T) {
	repo := seededRepo()
	r, token := setupRouter(t, repo)

	w := doRequest(r, http.MethodPost, "/api/v1/physicians/visibility", `{"employee_code":"1001"}`, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"visible":false`)

	w = doRequest(r, http.MethodPost, "/api/v1/physicians/visibility", `{"employee_code":"1001"}`, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"visible":true`)
}

func TestToggleVisibilityValidation(t *testing.T) {
	r, token := setupRouter(t, seededRepo())

	w := doRequest(r, http.MethodPost, "/api/v1/physicians/visibility", `{}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, http.MethodPost, "/api/v1/physicians/visibility", `{"employee_code":"9999"}`, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestChangeSpecialty(t *testing.T) {
	repo := seededRepo()
	r, token := setupRouter(t, repo)

	w := doRequest(r, http.MethodPost, "/api/v1/physicians/specialty", `{"employee_code":"2002","new_specialty_code":"016"}`, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "890201", repo.rows[2].BillingCode)

	w = doRequest(r, http.MethodPost, "/api/v1/physicians/specialty", `{"employee_code":"2002","new_specialty_code":"999"}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChangeContract(t *testing.T) {
	repo := seededRepo()
	r, token := setupRouter(t, repo)

	w := doRequest(r, http.MethodPost, "/api/v1/physicians/contract", `{"employee_code":"1001","new_contract_code":"  eps008 "}`, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"contract":"EPS008"`)

	w = doRequest(r, http.MethodPost, "/api/v1/physicians/contract", `{"employee_code":"1001","new_contract_code":"x"}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
