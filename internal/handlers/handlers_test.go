package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jobportal/api/internal/auth"
	"github.com/jobportal/api/internal/models"
	"github.com/jobportal/api/internal/notify"
	"github.com/jobportal/api/internal/services"
	"github.com/jobportal/api/internal/store"
)

// apiFixture wires a router the same way main does, minus uploads and CORS.
type apiFixture struct {
	router   *gin.Engine
	store    *store.Store
	tokens   *auth.Manager
	notifier *notify.Dispatcher
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := zap.NewNop()
	st := store.New(log)
	tokens := auth.NewManager("test-secret", time.Hour)
	notifier := notify.NewDispatcher(&notify.LogSender{Log: log}, log, 16)
	t.Cleanup(notifier.Close)

	jobs := NewJobHandler(services.NewJobService(st, log), log, false)
	contact := NewContactHandler(services.NewContactService(st, notifier, log), log, false)

	authenticated := auth.Authenticate(tokens, st)
	staffOnly := auth.RequireRole(models.RoleAdmin, models.RoleEmployer)
	adminOnly := auth.RequireRole(models.RoleAdmin)

	r := gin.New()
	api := r.Group("/api")

	jobRoutes := api.Group("/jobs")
	jobRoutes.GET("", jobs.List)
	jobRoutes.GET("/:id", jobs.Get)
	jobRoutes.POST("", authenticated, staffOnly, jobs.Create)
	jobRoutes.PUT("/:id", authenticated, staffOnly, jobs.Update)
	jobRoutes.DELETE("/:id", authenticated, staffOnly, jobs.Delete)
	jobRoutes.GET("/my/jobs", authenticated, staffOnly, jobs.Mine)

	contactRoutes := api.Group("/contact")
	contactRoutes.POST("", contact.Submit)
	contactRoutes.GET("", authenticated, adminOnly, contact.List)
	contactRoutes.GET("/:id", authenticated, adminOnly, contact.Get)

	r.GET("/health", HealthCheck)

	return &apiFixture{router: r, store: st, tokens: tokens, notifier: notifier}
}

func (f *apiFixture) do(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *apiFixture) tokenFor(t *testing.T, user models.User) string {
	t.Helper()
	stored := f.store.AddUser(user)
	token, err := f.tokens.Issue(stored)
	require.NoError(t, err)
	return token
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestContactSubmitValidation(t *testing.T) {
	f := newAPIFixture(t)

	// A nine character message is one short of the minimum.
	w := f.do(t, http.MethodPost, "/api/contact",
		`{"name":"Jane","email":"jane@example.com","subject":"Hi","message":"123456789"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w)["error"], "Validation failed")

	w = f.do(t, http.MethodPost, "/api/contact",
		`{"name":"Jane","email":"jane@example.com","subject":"Hi","message":"1234567890"}`, "")
	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.NotEmpty(t, body["id"])

	msg, ok := f.store.ContactMessage(body["id"].(string))
	require.True(t, ok)
	assert.Equal(t, models.ContactStatusNew, msg.Status)
}

func TestJobListPagination(t *testing.T) {
	f := newAPIFixture(t)

	f.store.AddJob(models.Job{Title: "First Role", Status: models.JobStatusActive})
	f.store.AddJob(models.Job{Title: "Second Role", Status: models.JobStatusActive})

	w := f.do(t, http.MethodGet, "/api/jobs?page=2&limit=1", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	jobs := body["jobs"].([]any)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Second Role", jobs[0].(map[string]any)["title"])

	pagination := body["pagination"].(map[string]any)
	assert.Equal(t, float64(2), pagination["currentPage"])
	assert.Equal(t, float64(2), pagination["totalPages"])
	assert.Equal(t, float64(2), pagination["totalJobs"])
	assert.Equal(t, false, pagination["hasNext"])
	assert.Equal(t, true, pagination["hasPrev"])
}

func TestJobMutationRequiresOwnership(t *testing.T) {
	f := newAPIFixture(t)

	ownerToken := f.tokenFor(t, models.User{Email: "owner@example.com", Role: models.RoleEmployer})
	strangerToken := f.tokenFor(t, models.User{Email: "other@example.com", Role: models.RoleEmployer})

	w := f.do(t, http.MethodPost, "/api/jobs",
		`{"title":"Backend Engineer","company":"Acme","location":"Remote","type":"Full-time","salary":"$100k","description":"Write servers all day.","requirements":["Go"]}`,
		ownerToken)
	require.Equal(t, http.StatusCreated, w.Code)
	jobID := decode(t, w)["job"].(map[string]any)["id"].(string)

	w = f.do(t, http.MethodPut, "/api/jobs/"+jobID, `{"title":"Hijacked"}`, strangerToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = f.do(t, http.MethodDelete, "/api/jobs/"+jobID, "", strangerToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Unauthenticated writes are rejected outright.
	w = f.do(t, http.MethodDelete, "/api/jobs/"+jobID, "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = f.do(t, http.MethodDelete, "/api/jobs/"+jobID, "", ownerToken)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestJobseekerCannotPostJobs(t *testing.T) {
	f := newAPIFixture(t)

	token := f.tokenFor(t, models.User{Email: "seeker@example.com", Role: models.RoleJobseeker})
	w := f.do(t, http.MethodPost, "/api/jobs", `{"title":"Nope"}`, token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestContactRoutesAdminOnly(t *testing.T) {
	f := newAPIFixture(t)

	employerToken := f.tokenFor(t, models.User{Email: "emp@example.com", Role: models.RoleEmployer})
	adminToken := f.tokenFor(t, models.User{Email: "boss@example.com", Role: models.RoleAdmin})

	w := f.do(t, http.MethodGet, "/api/contact", "", employerToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = f.do(t, http.MethodGet, "/api/contact", "", adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetJobNotFound(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(t, http.MethodGet, "/api/jobs/missing", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Job not found", decode(t, w)["error"])
}

func TestHealthCheck(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(t, http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", decode(t, w)["status"])
}
