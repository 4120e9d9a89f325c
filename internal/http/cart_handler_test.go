package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/cart-service/internal/cart"
	"github.com/guttosm/cart-service/internal/domain/dto"
	"github.com/guttosm/cart-service/internal/service"
	"github.com/guttosm/cart-service/internal/storage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter builds a full router backed by in-memory storage.
func newTestRouter(t *testing.T) (*gin.Engine, service.CartService) {
	t.Helper()

	carts := service.NewCartService(storage.NewMemoryStorage())
	t.Cleanup(carts.Shutdown)

	cfg := DefaultRouterConfig()
	cfg.RateLimit = 0
	cfg.JWTSecret = "test-secret"
	cfg.CartService = carts

	return NewRouter(NewHealthHandler(), cfg), carts
}

func doJSON(t *testing.T, router *gin.Engine, method, path, sessionID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set("X-Session-ID", sessionID)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeState unwraps the success envelope into a cart state.
func decodeState(t *testing.T, w *httptest.ResponseRecorder) cart.State {
	t.Helper()

	var envelope struct {
		Data cart.State `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.Data
}

func TestCartHandler_AddAndGet(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/cart/items", "shopper-1", dto.AddItemRequest{
		ProductID: 42,
		Title:     "Trail Jacket",
		UnitPrice: 89.9,
		Size:      "M",
		Quantity:  2,
	})
	require.Equal(t, http.StatusOK, w.Code)

	state := decodeState(t, w)
	require.Len(t, state.Items, 1)
	assert.Equal(t, 2, state.Items[0].Quantity)
	assert.Equal(t, 2, state.Totals.TotalItems)
	assert.InDelta(t, 179.8, state.Totals.Total, 1e-9)

	w = doJSON(t, router, http.MethodGet, "/api/cart", "shopper-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	state = decodeState(t, w)
	require.Len(t, state.Items, 1)
	assert.Equal(t, int64(42), state.Items[0].ProductID)
}

func TestCartHandler_AddMergesSameVariant(t *testing.T) {
	router, _ := newTestRouter(t)

	add := dto.AddItemRequest{ProductID: 42, Title: "Trail Jacket", UnitPrice: 89.9, Size: "M"}
	w := doJSON(t, router, http.MethodPost, "/api/cart/items", "shopper-1", add)
	require.Equal(t, http.StatusOK, w.Code)

	// Repeating the same product and variant merges into the existing line.
	add.Quantity = 2
	w = doJSON(t, router, http.MethodPost, "/api/cart/items", "shopper-1", add)
	require.Equal(t, http.StatusOK, w.Code)

	state := decodeState(t, w)
	require.Len(t, state.Items, 1)
	assert.Equal(t, 3, state.Items[0].Quantity)
}

func TestCartHandler_Validation(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		name string
		body interface{}
	}{
		{
			name: "missing product id",
			body: dto.AddItemRequest{Title: "Trail Jacket", UnitPrice: 89.9},
		},
		{
			name: "negative unit price",
			body: dto.AddItemRequest{ProductID: 42, Title: "Trail Jacket", UnitPrice: -1},
		},
		{
			name: "negative quantity",
			body: dto.AddItemRequest{ProductID: 42, Title: "Trail Jacket", UnitPrice: 89.9, Quantity: -2},
		},
		{
			name: "discount above 100",
			body: dto.AddItemRequest{ProductID: 42, Title: "Trail Jacket", UnitPrice: 89.9, DiscountPercent: 150},
		},
		{
			name: "malformed JSON",
			body: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var w *httptest.ResponseRecorder
			if tt.body == nil {
				req := httptest.NewRequest(http.MethodPost, "/api/cart/items", bytes.NewBufferString(`{"product_id": broken`))
				req.Header.Set("Content-Type", "application/json")
				req.Header.Set("X-Session-ID", "shopper-1")
				w = httptest.NewRecorder()
				router.ServeHTTP(w, req)
			} else {
				w = doJSON(t, router, http.MethodPost, "/api/cart/items", "shopper-1", tt.body)
			}

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var errResp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
			assert.Equal(t, dto.ErrCodeInvalidRequest, errResp.Error)
		})
	}
}

func TestCartHandler_UpdateQuantity(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/cart/items", "shopper-1", dto.AddItemRequest{
		ProductID: 42, Title: "Trail Jacket", UnitPrice: 10, Quantity: 2,
	})
	require.Equal(t, http.StatusOK, w.Code)

	five := 5
	w = doJSON(t, router, http.MethodPut, "/api/cart/items/quantity", "shopper-1", dto.UpdateQuantityRequest{
		ProductID: 42, Quantity: &five,
	})
	require.Equal(t, http.StatusOK, w.Code)
	state := decodeState(t, w)
	require.Len(t, state.Items, 1)
	assert.Equal(t, 5, state.Items[0].Quantity)

	// Zero removes the line.
	zero := 0
	w = doJSON(t, router, http.MethodPut, "/api/cart/items/quantity", "shopper-1", dto.UpdateQuantityRequest{
		ProductID: 42, Quantity: &zero,
	})
	require.Equal(t, http.StatusOK, w.Code)
	state = decodeState(t, w)
	assert.Empty(t, state.Items)
	assert.Zero(t, state.Totals.Total)
}

func TestCartHandler_UpdateQuantityValidation(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "missing quantity", body: `{"product_id": 42}`},
		{name: "missing product id", body: `{"quantity": 3}`},
		{name: "zero product id", body: `{"product_id": 0, "quantity": 3}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, "/api/cart/items/quantity", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("X-Session-ID", "shopper-1")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var errResp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
			assert.Equal(t, dto.ErrCodeInvalidRequest, errResp.Error)
		})
	}
}

func TestCartHandler_RemoveItem(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, size := range []string{"S", "M"} {
		w := doJSON(t, router, http.MethodPost, "/api/cart/items", "shopper-1", dto.AddItemRequest{
			ProductID: 42, Title: "Trail Jacket", UnitPrice: 10, Size: size, Quantity: 2,
		})
		require.Equal(t, http.StatusOK, w.Code)
	}

	// Removing one variant leaves the other untouched.
	w := doJSON(t, router, http.MethodDelete, "/api/cart/items?product_id=42&size=S", "shopper-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	state := decodeState(t, w)
	require.Len(t, state.Items, 1)
	assert.Equal(t, "M", state.Items[0].Variant.Size)

	// Removing an absent line is a no-op.
	w = doJSON(t, router, http.MethodDelete, "/api/cart/items?product_id=99", "shopper-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	state = decodeState(t, w)
	assert.Len(t, state.Items, 1)
}

func TestCartHandler_ClearCart(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/cart/items", "shopper-1", dto.AddItemRequest{
		ProductID: 42, Title: "Trail Jacket", UnitPrice: 10, Quantity: 3,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/api/cart", "shopper-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	state := decodeState(t, w)
	assert.Empty(t, state.Items)
	assert.Zero(t, state.Totals.TotalItems)

	w = doJSON(t, router, http.MethodGet, "/api/cart", "shopper-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeState(t, w).Items)
}

func TestCartHandler_QuantityModes(t *testing.T) {
	router, _ := newTestRouter(t)

	for size, qty := range map[string]int{"S": 1, "M": 2} {
		w := doJSON(t, router, http.MethodPost, "/api/cart/items", "shopper-1", dto.AddItemRequest{
			ProductID: 42, Title: "Trail Jacket", UnitPrice: 10, Size: size, Quantity: qty,
		})
		require.Equal(t, http.StatusOK, w.Code)
	}

	tests := []struct {
		name         string
		path         string
		wantQuantity int
	}{
		{
			name:         "aggregate across variants",
			path:         "/api/cart/items/quantity?product_id=42",
			wantQuantity: 3,
		},
		{
			name:         "exact variant",
			path:         "/api/cart/items/quantity?product_id=42&size=M",
			wantQuantity: 2,
		},
		{
			name:         "absent variant",
			path:         "/api/cart/items/quantity?product_id=42&size=XL",
			wantQuantity: 0,
		},
		{
			name:         "unknown product",
			path:         "/api/cart/items/quantity?product_id=99",
			wantQuantity: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodGet, tt.path, "shopper-1", nil)
			require.Equal(t, http.StatusOK, w.Code)

			var envelope struct {
				Data dto.QuantityResponse `json:"data"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
			assert.Equal(t, tt.wantQuantity, envelope.Data.Quantity)
		})
	}
}

func TestCartHandler_Contains(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/cart/items", "shopper-1", dto.AddItemRequest{
		ProductID: 42, Title: "Trail Jacket", UnitPrice: 10, Size: "M",
	})
	require.Equal(t, http.StatusOK, w.Code)

	tests := []struct {
		name         string
		path         string
		wantContains bool
	}{
		{name: "any variant", path: "/api/cart/items/contains?product_id=42", wantContains: true},
		{name: "exact variant", path: "/api/cart/items/contains?product_id=42&size=M", wantContains: true},
		{name: "other variant", path: "/api/cart/items/contains?product_id=42&size=S", wantContains: false},
		{name: "unknown product", path: "/api/cart/items/contains?product_id=99", wantContains: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodGet, tt.path, "shopper-1", nil)
			require.Equal(t, http.StatusOK, w.Code)

			var envelope struct {
				Data dto.ContainsResponse `json:"data"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
			assert.Equal(t, tt.wantContains, envelope.Data.Contains)
		})
	}
}

func TestCartHandler_OwnerIsolation(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/cart/items", "shopper-1", dto.AddItemRequest{
		ProductID: 42, Title: "Trail Jacket", UnitPrice: 10,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/cart", "shopper-2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeState(t, w).Items)
}

func TestCartHandler_SessionIssuedWhenMissing(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/cart", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	issued := w.Header().Get("X-Session-ID")
	require.NotEmpty(t, issued)

	// The issued session addresses a working cart.
	w = doJSON(t, router, http.MethodPost, "/api/cart/items", issued, dto.AddItemRequest{
		ProductID: 42, Title: "Trail Jacket", UnitPrice: 10,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/cart", issued, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeState(t, w).Items, 1)
}

func TestCartHandler_PersistsAcrossRegistryRestart(t *testing.T) {
	backing := storage.NewMemoryStorage()

	carts := service.NewCartService(backing)
	cfg := DefaultRouterConfig()
	cfg.RateLimit = 0
	cfg.CartService = carts
	router := NewRouter(NewHealthHandler(), cfg)

	w := doJSON(t, router, http.MethodPost, "/api/cart/items", "shopper-1", dto.AddItemRequest{
		ProductID: 42, Title: "Trail Jacket", UnitPrice: 10, Quantity: 2,
	})
	require.Equal(t, http.StatusOK, w.Code)
	carts.Shutdown()

	// A fresh registry over the same backing storage rehydrates the cart.
	carts2 := service.NewCartService(backing)
	t.Cleanup(carts2.Shutdown)
	cfg.CartService = carts2
	router2 := NewRouter(NewHealthHandler(), cfg)

	w = doJSON(t, router2, http.MethodGet, "/api/cart", "shopper-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	state := decodeState(t, w)
	require.Len(t, state.Items, 1)
	assert.Equal(t, 2, state.Items[0].Quantity)
	assert.Equal(t, 2, state.Totals.TotalItems)
}

func TestRouter_InfrastructureRoutes(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, path := range []string{"/healthz", "/readyz", "/metrics"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestRouter_RateLimit(t *testing.T) {
	carts := service.NewCartService(storage.NewMemoryStorage())
	t.Cleanup(carts.Shutdown)

	cfg := DefaultRouterConfig()
	cfg.RateLimit = 2
	cfg.RateWindow = time.Minute
	cfg.CartService = carts
	router := NewRouter(NewHealthHandler(), cfg)

	var last int
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
		req.Header.Set("X-Session-ID", "shopper-1")
		req.RemoteAddr = "192.168.1.1:12345"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		last = w.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, last)
}
