package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/hcanning/uni-eats-filter/internal/auth"
)

func protectedRouter(store auth.RoleLookup) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	admin := r.Group("/admin")
	admin.Use(AuthMiddleware())
	admin.Use(RequireRole(store, auth.RoleAdmin))
	admin.GET("/meals", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func request(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin/meals", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registeredUser(t *testing.T, repo *auth.InMemoryUserRepository, role string) string {
	t.Helper()
	service := auth.NewService(repo)
	ctx := context.Background()

	var id string
	if role == auth.RoleAdmin {
		if err := service.EnsureAdmin(ctx, "Staff", "staff@campus.edu", "supersecret"); err != nil {
			t.Fatalf("EnsureAdmin failed: %v", err)
		}
		user, err := repo.FindByEmail(ctx, "staff@campus.edu")
		if err != nil {
			t.Fatalf("admin not saved: %v", err)
		}
		id = user.ID
	} else {
		user, err := service.Register(ctx, "Harry", "hcanning@campus.edu", "supersecret")
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		id = user.ID
	}

	token, err := auth.GenerateToken(id, "someone@campus.edu", role)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	return token
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key")
	r := protectedRouter(auth.NewInMemoryUserRepository())

	if w := request(r, ""); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without header, got %d", w.Code)
	}
}

func TestAuthMiddlewareRejectsBadFormat(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key")
	r := protectedRouter(auth.NewInMemoryUserRepository())

	if w := request(r, "Basic abc123"); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for non-bearer scheme, got %d", w.Code)
	}
	if w := request(r, "Bearer"); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for missing token, got %d", w.Code)
	}
}

func TestAuthMiddlewareRejectsInvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key")
	r := protectedRouter(auth.NewInMemoryUserRepository())

	if w := request(r, "Bearer not-a-real-token"); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for invalid token, got %d", w.Code)
	}
}

func TestRequireRoleAllowsAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key")
	repo := auth.NewInMemoryUserRepository()
	r := protectedRouter(repo)
	token := registeredUser(t, repo, auth.RoleAdmin)

	w := request(r, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 for admin, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRequireRoleDeniesDinerWithExplanation(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key")
	repo := auth.NewInMemoryUserRepository()
	r := protectedRouter(repo)
	token := registeredUser(t, repo, auth.RoleDiner)

	w := request(r, "Bearer "+token)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for diner, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	if body["title"] != "Access denied" {
		t.Errorf("expected title 'Access denied', got %q", body["title"])
	}
	if body["description"] == "" {
		t.Error("expected a human-readable description")
	}
	if body["severity"] != "destructive" {
		t.Errorf("expected severity 'destructive', got %q", body["severity"])
	}
}

// failingRoleLookup simulates the profile store being unreachable.
type failingRoleLookup struct{}

func (failingRoleLookup) RoleByID(ctx context.Context, id string) (string, error) {
	return "", errors.New("store unreachable")
}

func TestRequireRoleFailsClosedOnLookupError(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key")
	r := protectedRouter(failingRoleLookup{})

	token, err := auth.GenerateToken("user-123", "someone@campus.edu", auth.RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	w := request(r, "Bearer "+token)
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403 when the role lookup fails, got %d", w.Code)
	}
}

func TestRequireRoleUsesStoredRoleNotTokenClaim(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key")
	repo := auth.NewInMemoryUserRepository()
	r := protectedRouter(repo)

	// token claims admin, but the stored profile says diner
	service := auth.NewService(repo)
	user, err := service.Register(context.Background(), "Harry", "hcanning@campus.edu", "supersecret")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	token, err := auth.GenerateToken(user.ID, user.Email, auth.RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if w := request(r, "Bearer "+token); w.Code != http.StatusForbidden {
		t.Errorf("expected 403 when stored role is diner, got %d", w.Code)
	}
}
