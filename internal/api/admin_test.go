package api

import (
	"encoding/json"
	"net/http"
	"shop_admin/internal/domain"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterMissingFields(t *testing.T) {
	_, r := setupRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/v1/admin/register", gin.H{"username": "admin"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	gdb, r := setupRouter(t)
	body := gin.H{"username": "admin", "password": "secretpw", "email": "admin@example.com"}
	w := doJSON(t, r, http.MethodPost, "/api/v1/admin/register", body, "")
	require.Equal(t, http.StatusCreated, w.Code)

	// Same username again, different email
	body["email"] = "other@example.com"
	w = doJSON(t, r, http.MethodPost, "/api/v1/admin/register", body, "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Username already exists")

	// Only one row made it into the store
	var count int64
	require.NoError(t, gdb.Model(&domain.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	_, r := setupRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/v1/admin/register", gin.H{
		"username": "admin", "password": "secretpw", "email": "admin@example.com",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, r, http.MethodPost, "/api/v1/admin/register", gin.H{
		"username": "other", "password": "secretpw", "email": "admin@example.com",
	}, "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Email already exists")
}

func TestLoginUniformFailureMessage(t *testing.T) {
	_, r := setupRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/v1/admin/register", gin.H{
		"username": "admin", "password": "secretpw", "email": "admin@example.com",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	// Unknown user and wrong password report the same message
	w = doJSON(t, r, http.MethodPost, "/api/v1/admin/login", gin.H{"username": "nobody", "password": "secretpw"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid username or password")
	w = doJSON(t, r, http.MethodPost, "/api/v1/admin/login", gin.H{"username": "admin", "password": "wrongpw"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid username or password")
}

func TestLoginUpdatesLastLogin(t *testing.T) {
	gdb, r := setupRouter(t)
	registerAndLogin(t, r)
	var user domain.User
	require.NoError(t, gdb.First(&user, "username = ?", "admin").Error)
	require.NotNil(t, user.LastLogin)
	assert.False(t, user.LastLogin.IsZero())
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	_, r := setupRouter(t)
	// No token at all
	w := doJSON(t, r, http.MethodGet, "/api/v1/admin/users", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	// Tampered token
	token := registerAndLogin(t, r)
	w = doJSON(t, r, http.MethodGet, "/api/v1/admin/users", nil, token+"x")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterLoginListUsersFlow(t *testing.T) {
	_, r := setupRouter(t)
	token := registerAndLogin(t, r)

	w := doJSON(t, r, http.MethodGet, "/api/v1/admin/users", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var users []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	require.Len(t, users, 1)
	assert.EqualValues(t, "admin", users[0]["username"])
	assert.EqualValues(t, "admin@example.com", users[0]["email"])
	// The password hash must never appear in any shape
	for key := range users[0] {
		assert.NotContains(t, key, "password")
		assert.NotContains(t, key, "Password")
	}
}

func TestGetUser(t *testing.T) {
	_, r := setupRouter(t)
	token := registerAndLogin(t, r)

	w := doJSON(t, r, http.MethodGet, "/api/v1/admin/users/1", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	var user map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.EqualValues(t, "admin", user["username"])

	w = doJSON(t, r, http.MethodGet, "/api/v1/admin/users/999", nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
