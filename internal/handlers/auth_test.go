// internal/handlers/auth_test.go
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globalkerja/agency-backend/internal/models"
)

func TestLogin_SetsSessionCookie(t *testing.T) {
	env := newTestEnv(t)
	env.createAdmin(t, "admin@example.com", models.AdminRoleAdmin)

	w := env.request(t, http.MethodPost, "/v1/admin/auth/login", gin.H{
		"email":    "admin@example.com",
		"password": "Sup3r-secret!",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	var session *http.Cookie
	for _, c := range cookies {
		if c.Name == env.cfg.JWT.CookieName {
			session = c
		}
	}
	require.NotNil(t, session, "session cookie should be set")
	assert.NotEmpty(t, session.Value)
	assert.True(t, session.HttpOnly)
}

func TestLogin_WrongPassword(t *testing.T) {
	env := newTestEnv(t)
	env.createAdmin(t, "admin@example.com", models.AdminRoleAdmin)

	w := env.request(t, http.MethodPost, "/v1/admin/auth/login", gin.H{
		"email":    "admin@example.com",
		"password": "wrong",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_InactiveAccount(t *testing.T) {
	env := newTestEnv(t)
	admin := env.createAdmin(t, "admin@example.com", models.AdminRoleAdmin)
	require.NoError(t, env.db.Model(admin).Update("is_active", false).Error)

	w := env.request(t, http.MethodPost, "/v1/admin/auth/login", gin.H{
		"email":    "admin@example.com",
		"password": "Sup3r-secret!",
	}, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestMe_WithSessionCookie(t *testing.T) {
	env := newTestEnv(t)
	admin := env.createAdmin(t, "admin@example.com", models.AdminRoleAdmin)
	token := env.loginToken(t, "admin@example.com")

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/auth/me", strings.NewReader(""))
	req.AddCookie(&http.Cookie{Name: env.cfg.JWT.CookieName, Value: token})
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			Admin struct {
				ID    string `json:"id"`
				Email string `json:"email"`
			} `json:"admin"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, admin.ID.String(), body.Data.Admin.ID)
	assert.Equal(t, "admin@example.com", body.Data.Admin.Email)
}

func TestAdminUsers_RequiresSuperAdmin(t *testing.T) {
	env := newTestEnv(t)
	env.createAdmin(t, "admin@example.com", models.AdminRoleAdmin)
	token := env.loginToken(t, "admin@example.com")

	w := env.request(t, http.MethodGet, "/v1/admin/admin-users", nil, token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminUsers_SuperAdminCanCreate(t *testing.T) {
	env := newTestEnv(t)
	env.createAdmin(t, "root@example.com", models.AdminRoleSuperAdmin)
	token := env.loginToken(t, "root@example.com")

	w := env.request(t, http.MethodPost, "/v1/admin/admin-users", gin.H{
		"name":     "Second Admin",
		"email":    "second@example.com",
		"password": "S3cond-secret!",
		"role":     "ADMIN",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var count int64
	require.NoError(t, env.db.Model(&models.AdminUser{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}
