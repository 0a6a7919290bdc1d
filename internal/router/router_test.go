package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"tavolo/internal/basket"
	"tavolo/internal/item"
)

func testDeps() Deps {
	store := item.NewStore()
	return Deps{
		Items:     item.NewHandler(store),
		AdminMenu: item.NewAdminHandler(store),
		Basket:    basket.NewHandler(basket.NewService(store)),
	}
}

func TestHealthEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := New(testDeps())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp["status"] != "ok" {
		t.Errorf("expected status ok, got %q", resp["status"])
	}
}

func TestItemsRouteMounted(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := New(testDeps())

	req := httptest.NewRequest(http.MethodGet, "/api/items?type=menu", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestBasketReviewRouteMounted(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := New(testDeps())

	payload := `{
		"name": "Pasta", "category": "Dinner", "price": 12.5, "quantity": 1,
		"ingredients": ["a", "b"], "image": "img.jpg", "rating": 4, "reviews": 10
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/items", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("failed to seed basket: %d %s", w.Code, w.Body.String())
	}

	var resp struct {
		Items []item.Item `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || len(resp.Items) == 0 {
		t.Fatalf("invalid items response: %v", err)
	}

	url := fmt.Sprintf("/api/basket/%d/review", resp.Items[0].ID)
	req = httptest.NewRequest(http.MethodPost, url, strings.NewReader(`{"rating":5}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 from review route, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")
	r := New(testDeps())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/menu", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
}

func TestOptionalRoutesSkippedWhenNil(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := New(testDeps())

	req := httptest.NewRequest(http.MethodPost, "/api/orders/checkout", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unmounted route, got %d", w.Code)
	}
}
