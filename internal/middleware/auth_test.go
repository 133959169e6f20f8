package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"opsboard/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newAuthTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(sessions.Sessions("test_session", cookie.NewStore([]byte("test-secret"))))

	r.POST("/session/:role", func(c *gin.Context) {
		sess := sessions.Default(c)
		sess.Set("user_id", uint(1))
		sess.Set("role", c.Param("role"))
		_ = sess.Save()
		c.Status(http.StatusOK)
	})

	r.GET("/private", RequireAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/admin-only", RequireAuth(), RequireRole(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func loginAs(t *testing.T, r *gin.Engine, role string) string {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/session/"+role, nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	c := w.Header().Get("Set-Cookie")
	require.NotEmpty(t, c)
	return c
}

func TestRequireAuth(t *testing.T) {
	r := newAuthTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private", nil))
	require.Equal(t, http.StatusUnauthorized, w.Code)

	sessCookie := loginAs(t, r, string(models.RoleMember))
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Cookie", sessCookie)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole(t *testing.T) {
	r := newAuthTestRouter()

	// 세션 없이 접근
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin-only", nil))
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// 역할이 다른 사용자
	memberCookie := loginAs(t, r, string(models.RoleMember))
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Cookie", memberCookie)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusForbidden, w.Code)

	// 관리자
	adminCookie := loginAs(t, r, string(models.RoleAdmin))
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Cookie", adminCookie)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}
