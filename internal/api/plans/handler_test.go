package plans

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// The interval filter is validated before the catalog query runs, so a bad
// value is rejected without touching storage.
func TestListRejectsUnknownInterval(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHandler(nil)
	r := gin.New()
	r.GET("/api/plans", h.List)

	for _, bad := range []string{"weekly", "month", "0"} {
		req := httptest.NewRequest(http.MethodGet, "/api/plans?interval="+bad, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, bad)
		assert.Contains(t, w.Body.String(), "Unknown billing interval")
	}
}
