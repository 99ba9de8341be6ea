package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/swdsms/incident-api/internal/core/domain"
)

func TestUserService_ListUsers(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(repo, "alice", "pw1", domain.RoleStudent)
	seedUser(repo, "bob", "pw2", domain.RoleTeacher)
	svc := NewUserService(repo, zerolog.Nop())

	users, err := svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers returned error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].ID >= users[1].ID {
		t.Fatalf("expected ascending ids, got %d then %d", users[0].ID, users[1].ID)
	}
}

func TestUserService_ListUsers_EmptyStore(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	users, err := svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers returned error: %v", err)
	}
	if users == nil {
		t.Fatalf("expected empty slice, got nil")
	}
}

func TestUserService_ListUsers_PropagatesError(t *testing.T) {
	repo := newStubUserRepo()
	cause := errors.New("list users: timeout")
	repo.findErr = cause
	svc := NewUserService(repo, zerolog.Nop())

	if _, err := svc.ListUsers(context.Background()); !errors.Is(err, cause) {
		t.Fatalf("expected repo error to propagate, got %v", err)
	}
}
