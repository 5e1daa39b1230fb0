package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Chekwachibuike/ecommerce/middleware"
	"github.com/Chekwachibuike/ecommerce/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRouter(tokens *services.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", middleware.RequireAuth(tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId": c.GetString(middleware.ContextUserID),
			"role":   c.GetString(middleware.ContextUserRole),
		})
	})
	r.GET("/admin", middleware.RequireAuth(tokens), middleware.RequireRole("admin"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRequireAuthRejectsMissingToken(t *testing.T) {
	tokens := services.NewTokenService("secret", time.Hour)
	r := newRouter(tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthAcceptsBearerToken(t *testing.T) {
	tokens := services.NewTokenService("secret", time.Hour)
	r := newRouter(tokens)

	token, err := tokens.IssueAccessToken("user-1", "user")
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}

func TestRequireAuthAcceptsCookie(t *testing.T) {
	tokens := services.NewTokenService("secret", time.Hour)
	r := newRouter(tokens)

	token, err := tokens.IssueAccessToken("user-1", "user")
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoleForbidsOtherRoles(t *testing.T) {
	tokens := services.NewTokenService("secret", time.Hour)
	r := newRouter(tokens)

	token, err := tokens.IssueAccessToken("user-1", "user")
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRoleAllowsMatchingRole(t *testing.T) {
	tokens := services.NewTokenService("secret", time.Hour)
	r := newRouter(tokens)

	token, err := tokens.IssueAccessToken("admin-1", "admin")
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
