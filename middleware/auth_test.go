package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ainfakroun/models"
	"ainfakroun/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedRouter(t *testing.T, minRole string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/protected")
	group.Use(JWTAuth())
	if minRole != "" {
		group.Use(RequireRole(minRole))
	}
	group.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID": c.GetString(CtxUserID),
			"email":  c.GetString(CtxUserEmail),
			"role":   c.GetString(CtxUserRole),
		})
	})
	return r
}

func TestJWTAuth_MissingToken(t *testing.T) {
	r := protectedRouter(t, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestJWTAuth_MalformedToken(t *testing.T) {
	r := protectedRouter(t, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer nonsense")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_BearerToken(t *testing.T) {
	token, err := utils.GenerateToken("64f1a2b3c4d5e6f708192a3b", "editor@example.com", models.RoleEditor)
	require.NoError(t, err)

	r := protectedRouter(t, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "64f1a2b3c4d5e6f708192a3b")
	assert.Contains(t, w.Body.String(), "editor@example.com")
}

func TestJWTAuth_SessionCookie(t *testing.T) {
	token, err := utils.GenerateToken("64f1a2b3c4d5e6f708192a3b", "viewer@example.com", models.RoleViewer)
	require.NoError(t, err)

	r := protectedRouter(t, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole_ViewerCannotWrite(t *testing.T) {
	token, err := utils.GenerateToken("64f1a2b3c4d5e6f708192a3b", "viewer@example.com", models.RoleViewer)
	require.NoError(t, err)

	r := protectedRouter(t, models.RoleEditor)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRole_AdminOutranksEditor(t *testing.T) {
	token, err := utils.GenerateToken("64f1a2b3c4d5e6f708192a3b", "admin@example.com", models.RoleAdmin)
	require.NoError(t, err)

	r := protectedRouter(t, models.RoleEditor)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole_EditorCannotAdminister(t *testing.T) {
	token, err := utils.GenerateToken("64f1a2b3c4d5e6f708192a3b", "editor@example.com", models.RoleEditor)
	require.NoError(t, err)

	r := protectedRouter(t, models.RoleAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRole_LocalizedForbiddenMessage(t *testing.T) {
	token, err := utils.GenerateToken("64f1a2b3c4d5e6f708192a3b", "viewer@example.com", models.RoleViewer)
	require.NoError(t, err)

	r := protectedRouter(t, models.RoleAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept-Language", "fr")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "droits")
}
