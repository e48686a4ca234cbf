package auth

// User is the domain entity.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
}

// Roles. Staff accounts carry RoleAdmin; self-registered accounts are
// diners and cannot reach the management surface.
const (
	RoleAdmin = "admin"
	RoleDiner = "diner"
)
