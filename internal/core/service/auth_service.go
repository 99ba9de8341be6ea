package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/swdsms/incident-api/internal/core/domain"
	"github.com/swdsms/incident-api/internal/core/ports"
)

// AuthService implements login and signup.
type AuthService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, logger: logger}
}

// Login validates credentials against the store. The lookup matches the raw
// role string exactly as supplied, and any lookup failure (zero rows or a
// gateway error) is collapsed into ErrAccountNotFound. A found account is
// compared by plain string equality, and its status field is ignored:
// every account is usable immediately after signup.
func (s *AuthService) Login(ctx context.Context, input ports.LoginInput) (*ports.AuthResult, error) {
	if input.Username == "" || input.Password == "" || input.Role == "" {
		return nil, domain.ErrMissingCredentials
	}

	user, err := s.repo.FindByUsernameAndRole(ctx, input.Username, input.Role)
	if err != nil {
		s.logger.Debug().Err(err).Str("username", input.Username).Msg("login lookup failed")
		return nil, domain.ErrAccountNotFound
	}

	if user.Password != input.Password {
		return nil, domain.ErrIncorrectPassword
	}

	return &ports.AuthResult{ID: user.ID, Username: user.Username, Role: user.Role}, nil
}

// Signup creates a new account. The username OR email uniqueness check runs
// before the insert; the two round trips are not transactional, so a pair of
// concurrent signups can both pass the check. The unique constraints on the
// users table backstop that race and the repository reports the violation as
// ErrDuplicateAccount.
func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (*ports.SignupResult, error) {
	if input.Role == "" || input.Firstname == "" || input.Lastname == "" ||
		input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrMissingFields
	}

	exists, err := s.repo.ExistsByUsernameOrEmail(ctx, input.Username, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateAccount
	}

	user := &domain.User{
		Username:  input.Username,
		Password:  input.Password,
		Role:      domain.NormalizeRole(input.Role),
		Status:    domain.UserStatusApproved,
		Email:     input.Email,
		Firstname: input.Firstname,
		Lastname:  input.Lastname,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		s.logger.Error().Err(err).Str("username", input.Username).Msg("failed to create account")
		return nil, err
	}

	s.logger.Info().Int64("id", created.ID).Str("username", created.Username).Msg("account created")

	return &ports.SignupResult{
		ID:       created.ID,
		Username: created.Username,
		Role:     created.Role,
		Status:   created.Status,
	}, nil
}
