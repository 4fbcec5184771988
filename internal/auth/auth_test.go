package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jobportal/api/internal/models"
	"github.com/jobportal/api/internal/store"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewManager("secret", time.Hour)

	token, err := m.Issue(models.User{ID: "u1", Role: models.RoleEmployer})
	require.NoError(t, err)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, models.RoleEmployer, claims.Role)
}

func TestParseRejectsBadTokens(t *testing.T) {
	m := NewManager("secret", time.Hour)

	_, err := m.Parse("not-a-token")
	assert.Error(t, err)

	// Token signed with a different secret.
	other := NewManager("other-secret", time.Hour)
	token, err := other.Issue(models.User{ID: "u1", Role: models.RoleAdmin})
	require.NoError(t, err)
	_, err = m.Parse(token)
	assert.Error(t, err)

	// Expired token.
	expired := NewManager("secret", -time.Hour)
	token, err = expired.Issue(models.User{ID: "u1"})
	require.NoError(t, err)
	_, err = m.Parse(token)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)

	assert.True(t, CheckPassword(hash, "hunter22"))
	assert.False(t, CheckPassword(hash, "wrong"))
}

func middlewareFixture(t *testing.T) (*gin.Engine, *Manager, models.User) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.New(zap.NewNop())
	user := st.AddUser(models.User{Email: "emp@example.com", Role: models.RoleEmployer})
	m := NewManager("secret", time.Hour)

	r := gin.New()
	r.GET("/staff", Authenticate(m, st), RequireRole(models.RoleAdmin, models.RoleEmployer), func(c *gin.Context) {
		caller, _ := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"id": caller.ID})
	})
	r.GET("/admin", Authenticate(m, st), RequireRole(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r, m, user
}

func TestAuthenticateMiddleware(t *testing.T) {
	r, m, user := middlewareFixture(t)

	// No token.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/staff", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Garbage token.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/staff", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Valid token.
	token, err := m.Issue(user)
	require.NoError(t, err)
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/staff", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), user.ID)
}

func TestRequireRoleDeniesInsufficientRole(t *testing.T) {
	r, m, user := middlewareFixture(t)

	token, err := m.Issue(user)
	require.NoError(t, err)

	// Employer hitting an admin-only route.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthenticateRejectsDeletedUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	st := store.New(zap.NewNop())
	m := NewManager("secret", time.Hour)

	// Token for a user that never existed in this store.
	token, err := m.Issue(models.User{ID: "ghost", Role: models.RoleAdmin})
	require.NoError(t, err)

	r := gin.New()
	r.GET("/x", Authenticate(m, st), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
