package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"tavolo/internal/auth"
)

func protectedRouter(role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/", AuthMiddleware())
	if role != "" {
		group.Use(RequireRole(role))
	}
	group.GET("/secret", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": c.GetString("userID")})
	})
	return r
}

func getWithToken(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := protectedRouter("")

	if w := getWithToken(r, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := protectedRouter("")

	if w := getWithToken(r, "garbage"); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := protectedRouter("")

	token, err := auth.GenerateToken("user-1", "test@example.com", auth.RoleUser)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	w := getWithToken(r, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRequireRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := protectedRouter(auth.RoleAdmin)

	userToken, err := auth.GenerateToken("user-1", "user@example.com", auth.RoleUser)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	if w := getWithToken(r, userToken); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d", w.Code)
	}

	adminToken, err := auth.GenerateToken("admin-1", "admin@example.com", auth.RoleAdmin)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	if w := getWithToken(r, adminToken); w.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", w.Code)
	}
}
