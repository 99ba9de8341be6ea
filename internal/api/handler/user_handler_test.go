package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/swdsms/incident-api/internal/core/domain"
)

type stubUserService struct {
	listFn func(ctx context.Context) ([]domain.User, error)
}

func (s *stubUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.listFn(ctx)
}

func TestUserHandler_List(t *testing.T) {
	stub := &stubUserService{
		listFn: func(context.Context) ([]domain.User, error) {
			return []domain.User{
				{
					ID: 1, Username: "alice", Password: "should-not-leak",
					Role: domain.RoleStudent, Status: domain.UserStatusApproved,
					Email: "a@example.com", Firstname: "Alice", Lastname: "A",
					CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				},
				{ID: 2, Username: "bob", Role: domain.RoleTeacher},
			}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/users", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "password") ||
		strings.Contains(rec.Body.String(), "should-not-leak") {
		t.Fatalf("password leaked into listing: %s", rec.Body.String())
	}

	var users []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &users); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0]["username"] != "alice" || users[0]["role"] != "student" {
		t.Fatalf("unexpected projection: %v", users[0])
	}
	for _, key := range []string{"id", "username", "role", "status", "email", "firstname", "lastname", "created_at"} {
		if _, ok := users[0][key]; !ok {
			t.Errorf("projection missing %q", key)
		}
	}
}

func TestUserHandler_List_EmptyIsArray(t *testing.T) {
	stub := &stubUserService{
		listFn: func(context.Context) ([]domain.User, error) {
			return []domain.User{}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/users", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Fatalf("expected [], got %q", body)
	}
}

func TestUserHandler_List_Failure(t *testing.T) {
	stub := &stubUserService{
		listFn: func(context.Context) ([]domain.User, error) {
			return nil, errors.New("list users: timeout")
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/users", "")
	_ = h.List(c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if resp := decodeBody(t, rec); resp["error"] != "Failed to load users" {
		t.Fatalf("unexpected error: %v", resp["error"])
	}
}
