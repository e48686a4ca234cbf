package auth

import "context"

// UserRepository defines the data-access contract.
// Service depends ONLY on this interface.
type UserRepository interface {
	Save(ctx context.Context, user *User) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	RoleByID(ctx context.Context, id string) (string, error)
}

// RoleLookup is the profile-store query the access guard re-checks on
// every admin request, so a revoked role takes effect without re-login.
type RoleLookup interface {
	RoleByID(ctx context.Context, id string) (string, error)
}
