package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// Registration input checks fire before any storage access, so these can run
// without a database behind the handler.
func registerRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(nil)
	r := gin.New()
	r.POST("/api/auth/register", h.Register)
	return r
}

func postRegister(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterRejectsInvalidEmail(t *testing.T) {
	r := registerRouter()
	tests := []struct {
		name  string
		email string
	}{
		{"no at sign", "not-an-email"},
		{"no domain", "user@"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postRegister(r, `{"email": "`+tt.email+`", "password": "password1", "first_name": "Ada", "last_name": "Lovelace"}`)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	r := registerRouter()
	tests := []struct {
		name     string
		password string
	}{
		{"too short", "ab1"},
		{"letters only", "passwordonly"},
		{"digits only", "1234567890"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postRegister(r, `{"email": "ada@example.com", "password": "`+tt.password+`", "first_name": "Ada", "last_name": "Lovelace"}`)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "Password must be")
		})
	}
}

func TestPasswordStrength(t *testing.T) {
	assert.True(t, isPasswordStrong("password1"))
	assert.True(t, isPasswordStrong("1Aabcdef"))
	assert.False(t, isPasswordStrong("short1"))
	assert.False(t, isPasswordStrong("nodigitshere"))
	assert.False(t, isPasswordStrong("12345678"))
}
