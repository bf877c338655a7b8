package admin

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// Input validation runs before any storage access, so these routes can be
// exercised without a database behind the handler.
func productsRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(nil)
	r := gin.New()
	r.POST("/api/admin/products", h.CreateProduct)
	r.PUT("/api/admin/products/:id", h.UpdateProduct)
	return r
}

func TestCreateProductRequiresNameAndPrice(t *testing.T) {
	r := productsRouter()
	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"price": "9.99"}`},
		{"missing price", `{"name": "Sticker Pack"}`},
		{"empty body", `{}`},
		{"malformed json", `{"name": `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/admin/products", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "error")
		})
	}
}

func TestUpdateProductRejectsMalformedBody(t *testing.T) {
	r := productsRouter()
	req := httptest.NewRequest(http.MethodPut, "/api/admin/products/1", strings.NewReader(`{"stock_quantity": "ten"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
