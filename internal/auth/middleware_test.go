package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lab-portal-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserStore struct {
	exists bool
	err    error
}

func (s *stubUserStore) Exists(id uuid.UUID) (bool, error) {
	return s.exists, s.err
}

func setupAuthRouter(service *Service, users UserStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	middleware := NewMiddleware(service, users)
	router.GET("/protected", middleware.RequireAuth(), func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": principal.ID, "role": principal.Role})
	})
	return router
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

// TestRequireAuthValidToken tests that a valid token passes through and the
// principal is available to the handler
func TestRequireAuthValidToken(t *testing.T) {
	service := NewService("test-secret", time.Hour)
	router := setupAuthRouter(service, &stubUserStore{exists: true})

	user := newTestUser()
	token, err := service.GenerateToken(user)
	require.NoError(t, err)

	recorder := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

// TestRequireAuthMissingHeader tests the missing Authorization header case
func TestRequireAuthMissingHeader(t *testing.T) {
	service := NewService("test-secret", time.Hour)
	router := setupAuthRouter(service, &stubUserStore{exists: true})

	recorder := doRequest(router, "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Authorization header is required")
}

// TestRequireAuthBadFormat tests a header without the Bearer prefix
func TestRequireAuthBadFormat(t *testing.T) {
	service := NewService("test-secret", time.Hour)
	router := setupAuthRouter(service, &stubUserStore{exists: true})

	recorder := doRequest(router, "Basic abc123")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Invalid authorization header format")
}

// TestRequireAuthInvalidToken tests a forged token
func TestRequireAuthInvalidToken(t *testing.T) {
	service := NewService("test-secret", time.Hour)
	router := setupAuthRouter(service, &stubUserStore{exists: true})

	recorder := doRequest(router, "Bearer not.a.token")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Invalid token")
}

// TestRequireAuthDeletedUser tests that a valid token for a deleted user is
// rejected with the same message as a forged token
func TestRequireAuthDeletedUser(t *testing.T) {
	service := NewService("test-secret", time.Hour)
	router := setupAuthRouter(service, &stubUserStore{exists: false})

	token, err := service.GenerateToken(newTestUser())
	require.NoError(t, err)

	recorder := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Invalid token")
}

// TestOptionalAuthAnonymous tests that OptionalAuth lets anonymous requests
// through without a principal
func TestOptionalAuthAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := NewService("test-secret", time.Hour)
	middleware := NewMiddleware(service, &stubUserStore{exists: true})

	router := gin.New()
	router.GET("/open", middleware.OptionalAuth(), func(c *gin.Context) {
		_, ok := GetPrincipal(c)
		c.JSON(http.StatusOK, gin.H{"authenticated": ok})
	})

	req, _ := http.NewRequest("GET", "/open", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"authenticated":false`)
}

// TestGetPrincipalRole tests that the role survives the claims round trip
func TestGetPrincipalRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	claims := &Claims{UserID: uuid.New(), Email: "ada@lab.test", Role: models.RoleLabLeader}
	setPrincipalContext(c, claims)

	principal, ok := GetPrincipal(c)
	require.True(t, ok)
	assert.Equal(t, models.RoleLabLeader, principal.Role)
	assert.Equal(t, claims.UserID, principal.ID)
}
