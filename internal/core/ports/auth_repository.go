package ports

import (
	"context"

	"github.com/swdsms/incident-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// FindByUsernameAndRole expects exactly one matching row; zero matches
	// surface as domain.ErrAccountNotFound.
	FindByUsernameAndRole(ctx context.Context, username, role string) (*domain.User, error)
	// ExistsByUsernameOrEmail reports whether any account already uses the
	// given username or the given email.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// List returns account projections (no password) ordered ascending by id.
	List(ctx context.Context) ([]domain.User, error)
}
