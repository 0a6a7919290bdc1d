package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func testRouter() (*gin.Engine, *Service) {
	gin.SetMode(gin.TestMode)
	service := NewService(NewInMemoryUserRepository())
	handler := NewHandler(service)

	r := gin.New()
	r.POST("/auth/register", handler.Register)
	r.POST("/auth/login", handler.Login)
	return r, service
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterEndpoint(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r, _ := testRouter()

	w := postJSON(t, r, "/auth/register", map[string]string{
		"name":     "Test User",
		"email":    "test@example.com",
		"password": "Password@123",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp["token"] == "" || resp["token"] == nil {
		t.Error("expected a token in the response")
	}
	if resp["role"] != RoleUser {
		t.Errorf("expected role %q, got %v", RoleUser, resp["role"])
	}
}

func TestRegisterEndpoint_MissingFields(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r, _ := testRouter()

	w := postJSON(t, r, "/auth/register", map[string]string{"email": "test@example.com"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestRegisterEndpoint_DuplicateEmail(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r, _ := testRouter()

	body := map[string]string{
		"name":     "Test User",
		"email":    "dup@example.com",
		"password": "Password@123",
	}
	if w := postJSON(t, r, "/auth/register", body); w.Code != http.StatusCreated {
		t.Fatalf("expected 201 on first register, got %d", w.Code)
	}
	if w := postJSON(t, r, "/auth/register", body); w.Code != http.StatusConflict {
		t.Fatalf("expected 409 on duplicate register, got %d", w.Code)
	}
}

func TestLoginEndpoint(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r, service := testRouter()
	if _, err := service.Register("Test User", "test@example.com", "Password@123"); err != nil {
		t.Fatalf("failed to register: %v", err)
	}

	w := postJSON(t, r, "/auth/login", map[string]string{
		"email":    "test@example.com",
		"password": "Password@123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp["token"] == "" {
		t.Error("expected a token in the response")
	}

	w = postJSON(t, r, "/auth/login", map[string]string{
		"email":    "test@example.com",
		"password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
