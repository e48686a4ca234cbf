package auth

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestRegisterHashesPassword(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)
	ctx := context.Background()

	user, err := service.Register(ctx, "Harry Canning", "hcanning@campus.edu", "supersecret")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if user.ID == "" {
		t.Error("expected a generated user ID")
	}
	if user.Role != RoleDiner {
		t.Errorf("expected role %q, got %q", RoleDiner, user.Role)
	}
	if user.Password == "supersecret" {
		t.Error("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("supersecret")); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)
	ctx := context.Background()

	if _, err := service.Register(ctx, "Harry", "hcanning@campus.edu", "supersecret"); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	if _, err := service.Register(ctx, "Harriet", "hcanning@campus.edu", "othersecret"); err == nil {
		t.Error("expected duplicate email to be rejected")
	}
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	service := NewService(NewInMemoryUserRepository())

	if _, err := service.Register(context.Background(), "", "a@b.edu", "pw"); err == nil {
		t.Error("expected missing name to be rejected")
	}
	if _, err := service.Register(context.Background(), "A", "", "pw"); err == nil {
		t.Error("expected missing email to be rejected")
	}
	if _, err := service.Register(context.Background(), "A", "a@b.edu", ""); err == nil {
		t.Error("expected missing password to be rejected")
	}
}

func TestLoginVerifiesStoredHash(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)
	ctx := context.Background()

	registered, err := service.Register(ctx, "Harry", "hcanning@campus.edu", "supersecret")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	user, err := service.Login(ctx, "hcanning@campus.edu", "supersecret")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if user.ID != registered.ID {
		t.Errorf("expected user %s, got %s", registered.ID, user.ID)
	}

	if _, err := service.Login(ctx, "hcanning@campus.edu", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := service.Login(ctx, "nobody@campus.edu", "supersecret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestEnsureAdminCreatesOnce(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)
	ctx := context.Background()

	if err := service.EnsureAdmin(ctx, "Cafeteria Staff", "staff@campus.edu", "supersecret"); err != nil {
		t.Fatalf("EnsureAdmin failed: %v", err)
	}

	admin, err := repo.FindByEmail(ctx, "staff@campus.edu")
	if err != nil {
		t.Fatalf("admin not saved: %v", err)
	}
	if admin.Role != RoleAdmin {
		t.Errorf("expected role %q, got %q", RoleAdmin, admin.Role)
	}

	// a second run with a different password leaves the account alone
	if err := service.EnsureAdmin(ctx, "Cafeteria Staff", "staff@campus.edu", "changed"); err != nil {
		t.Fatalf("second EnsureAdmin failed: %v", err)
	}
	again, _ := repo.FindByEmail(ctx, "staff@campus.edu")
	if again.Password != admin.Password {
		t.Error("EnsureAdmin overwrote an existing account")
	}
}

func TestEnsureAdminRequiresCredentials(t *testing.T) {
	service := NewService(NewInMemoryUserRepository())

	if err := service.EnsureAdmin(context.Background(), "Staff", "", "pw"); err == nil {
		t.Error("expected missing email to be rejected")
	}
	if err := service.EnsureAdmin(context.Background(), "Staff", "staff@campus.edu", ""); err == nil {
		t.Error("expected missing password to be rejected")
	}
}

func TestRoleByID(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)
	ctx := context.Background()

	user, err := service.Register(ctx, "Harry", "hcanning@campus.edu", "supersecret")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	role, err := repo.RoleByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("RoleByID failed: %v", err)
	}
	if role != RoleDiner {
		t.Errorf("expected role %q, got %q", RoleDiner, role)
	}

	if _, err := repo.RoleByID(ctx, "missing"); err == nil {
		t.Error("expected unknown ID to fail")
	}
}
