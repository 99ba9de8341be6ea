package ports

import (
	"context"

	"github.com/swdsms/incident-api/internal/core/domain"
)

// LoginInput carries raw login credentials from the transport layer.
type LoginInput struct {
	Username string
	Password string
	Role     string
}

// AuthResult is returned on successful login. Password and profile fields
// are never echoed back.
type AuthResult struct {
	ID       int64
	Username string
	Role     domain.Role
}

// SignupInput carries the normalized signup payload.
type SignupInput struct {
	Role      string
	Firstname string
	Lastname  string
	Username  string
	Email     string
	Password  string
}

// SignupResult is returned after a successful account creation.
type SignupResult struct {
	ID       int64
	Username string
	Role     domain.Role
	Status   string
}

// AuthService defines login and self-registration use cases.
type AuthService interface {
	Login(ctx context.Context, input LoginInput) (*AuthResult, error)
	Signup(ctx context.Context, input SignupInput) (*SignupResult, error)
}
