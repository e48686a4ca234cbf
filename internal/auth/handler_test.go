package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func authRouter() (*gin.Engine, *Service) {
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
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterEndpoint(t *testing.T) {
	r, _ := authRouter()

	w := postJSON(t, r, "/auth/register", map[string]string{
		"name":     "Harry Canning",
		"email":    "hcanning@campus.edu",
		"password": "supersecret",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["id"] == "" {
		t.Error("expected a generated id in the response")
	}
	if _, leaked := body["password"]; leaked {
		t.Error("response must not echo the password")
	}

	// same email again conflicts
	w = postJSON(t, r, "/auth/register", map[string]string{
		"name":     "Harriet",
		"email":    "hcanning@campus.edu",
		"password": "othersecret",
	})
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 for duplicate email, got %d", w.Code)
	}
}

func TestRegisterEndpointRejectsMissingFields(t *testing.T) {
	r, _ := authRouter()

	w := postJSON(t, r, "/auth/register", map[string]string{"email": "hcanning@campus.edu"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing fields, got %d", w.Code)
	}
}

func TestLoginEndpointIssuesToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key")
	r, _ := authRouter()

	w := postJSON(t, r, "/auth/register", map[string]string{
		"name":     "Harry Canning",
		"email":    "hcanning@campus.edu",
		"password": "supersecret",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register failed: %d", w.Code)
	}

	w = postJSON(t, r, "/auth/login", map[string]string{
		"email":    "hcanning@campus.edu",
		"password": "supersecret",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Token string `json:"token"`
		User  struct {
			ID   string `json:"id"`
			Role string `json:"role"`
		} `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Token == "" {
		t.Fatal("expected a session token")
	}
	if body.User.Role != RoleDiner {
		t.Errorf("expected role %q, got %q", RoleDiner, body.User.Role)
	}

	userID, _, role, err := ValidateToken(body.Token)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if userID != body.User.ID || role != RoleDiner {
		t.Errorf("token claims do not match the user: %s %s", userID, role)
	}
}

func TestLoginEndpointRejectsBadCredentials(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key")
	r, _ := authRouter()

	postJSON(t, r, "/auth/register", map[string]string{
		"name":     "Harry Canning",
		"email":    "hcanning@campus.edu",
		"password": "supersecret",
	})

	w := postJSON(t, r, "/auth/login", map[string]string{
		"email":    "hcanning@campus.edu",
		"password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for wrong password, got %d", w.Code)
	}

	w = postJSON(t, r, "/auth/login", map[string]string{
		"email":    "nobody@campus.edu",
		"password": "supersecret",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for unknown email, got %d", w.Code)
	}
}
