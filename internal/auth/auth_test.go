package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"realty-crm-backend/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndValidateToken(t *testing.T) {
	service := auth.NewService("test-secret", time.Hour)

	token, err := service.IssueToken("ops@realty.test", "Ops User", auth.RoleOperations)
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ops@realty.test", claims.Email)
	assert.Equal(t, auth.RoleOperations, claims.Role)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	issuer := auth.NewService("secret-a", time.Hour)
	verifier := auth.NewService("secret-b", time.Hour)

	token, err := issuer.IssueToken("ops@realty.test", "Ops User", auth.RoleOperations)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_UnknownRoleDegradesToViewer(t *testing.T) {
	service := auth.NewService("test-secret", time.Hour)

	token, err := service.IssueToken("x@realty.test", "X", auth.Role("superuser"))
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, auth.RoleViewer, claims.Role)
}

func TestRoleCapabilities(t *testing.T) {
	assert.True(t, auth.RoleAdmin.CanManageRegistrations())
	assert.True(t, auth.RoleOperations.CanManageRegistrations())
	assert.False(t, auth.RoleSales.CanManageRegistrations())
	assert.False(t, auth.RoleViewer.CanManageRegistrations())

	assert.True(t, auth.RoleSales.CanManageLeads())
	assert.False(t, auth.RoleOperations.CanManageLeads())

	assert.True(t, auth.RoleOperations.CanManageFinancials())
	assert.False(t, auth.RoleViewer.CanManageFinancials())
}

func TestRequireAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := auth.NewService("test-secret", time.Hour)
	middleware := auth.NewMiddleware(service)

	router := gin.New()
	router.GET("/protected", middleware.RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"actor": auth.ActorFromContext(c),
			"role":  auth.RoleFromContext(c),
		})
	})

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Token abc")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		token, err := service.IssueToken("ops@realty.test", "Ops User", auth.RoleOperations)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "ops@realty.test")
	})
}

func TestRequireRoleMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := auth.NewService("test-secret", time.Hour)
	middleware := auth.NewMiddleware(service)

	router := gin.New()
	router.POST("/registrations",
		middleware.RequireAuth(),
		middleware.RequireRole(auth.Role.CanManageRegistrations),
		func(c *gin.Context) { c.Status(http.StatusNoContent) },
	)

	viewerToken, err := service.IssueToken("viewer@realty.test", "Viewer", auth.RoleViewer)
	require.NoError(t, err)
	opsToken, err := service.IssueToken("ops@realty.test", "Ops", auth.RoleOperations)
	require.NoError(t, err)

	t.Run("viewer forbidden", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/registrations", nil)
		req.Header.Set("Authorization", "Bearer "+viewerToken)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("operations allowed", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/registrations", nil)
		req.Header.Set("Authorization", "Bearer "+opsToken)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
