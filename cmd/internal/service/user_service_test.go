package service

import (
	"net/http"
	"strings"
	"testing"

	"doctorsportal/cmd/internal/domain/entity"
	"doctorsportal/cmd/internal/utils"
)

func newUserService(repo *mockUserRepo) *DefaultUserService {
	return NewUserService(repo, newTestValidator(), &fakeTokenIssuer{})
}

func seedUser(repo *mockUserRepo, email, role string) {
	repo.users[email] = &entity.User{
		Email:     email,
		Name:      "Seeded User",
		Role:      role,
		CreatedAt: utils.NowUTC(),
		UpdatedAt: utils.NowUTC(),
	}
}

func TestCreateUserIsIdempotent(t *testing.T) {
	repo := newMockUserRepo()
	svc := newUserService(repo)

	first, apierr := svc.CreateUser(&CreateUserRequest{Email: "alice@x.com", Name: "Alice"})
	if apierr != nil {
		t.Fatalf("signup failed: %v", apierr)
	}
	if first.Email != "alice@x.com" {
		t.Errorf("unexpected user: %+v", first)
	}

	// Grant a role, then sign up again: the role must survive.
	if _, err := repo.SetRole("alice@x.com", entity.RoleAdmin); err != nil {
		t.Fatal(err)
	}
	again, apierr := svc.CreateUser(&CreateUserRequest{Email: "alice@x.com", Name: "Alice B."})
	if apierr != nil {
		t.Fatalf("repeat signup failed: %v", apierr)
	}
	if again.Role != entity.RoleAdmin {
		t.Errorf("repeat signup cleared the role: %+v", again)
	}
	if len(repo.users) != 1 {
		t.Errorf("expected one user record, got %d", len(repo.users))
	}
}

func TestCreateUserValidation(t *testing.T) {
	svc := newUserService(newMockUserRepo())

	_, apierr := svc.CreateUser(&CreateUserRequest{Email: "nope", Name: "Alice"})
	if apierr == nil || apierr.Code() != http.StatusBadRequest {
		t.Errorf("expected 400 for a bad email, got %v", apierr)
	}
}

func TestIsAdmin(t *testing.T) {
	repo := newMockUserRepo()
	seedUser(repo, "admin@x.com", entity.RoleAdmin)
	seedUser(repo, "patient@x.com", "patient")
	seedUser(repo, "plain@x.com", "")
	svc := newUserService(repo)

	tests := []struct {
		email string
		want  bool
	}{
		{"admin@x.com", true},
		{"patient@x.com", false},
		{"plain@x.com", false},
		{"ghost@x.com", false},
	}
	for _, tt := range tests {
		got, apierr := svc.IsAdmin(tt.email)
		if apierr != nil {
			t.Fatalf("IsAdmin(%s) failed: %v", tt.email, apierr)
		}
		if got != tt.want {
			t.Errorf("IsAdmin(%s) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestGrantAdmin(t *testing.T) {
	repo := newMockUserRepo()
	seedUser(repo, "alice@x.com", "")
	svc := newUserService(repo)

	if apierr := svc.GrantAdmin("alice@x.com"); apierr != nil {
		t.Fatalf("grant failed: %v", apierr)
	}
	if repo.users["alice@x.com"].Role != entity.RoleAdmin {
		t.Error("role was not updated")
	}

	// Unknown users are a 404, never an implicit insert.
	apierr := svc.GrantAdmin("ghost@x.com")
	if apierr == nil || apierr.Code() != http.StatusNotFound {
		t.Errorf("expected 404 for unknown user, got %v", apierr)
	}
	if len(repo.users) != 1 {
		t.Errorf("grant must not create records, got %d", len(repo.users))
	}
}

func TestIssueTokenUnknownUser(t *testing.T) {
	svc := newUserService(newMockUserRepo())

	_, apierr := svc.IssueToken("ghost@x.com")
	if apierr == nil || apierr.Code() != http.StatusForbidden {
		t.Errorf("expected 403 for unknown email, got %v", apierr)
	}
}

func TestIssueTokenKnownUser(t *testing.T) {
	repo := newMockUserRepo()
	seedUser(repo, "alice@x.com", "")
	svc := newUserService(repo)

	token, apierr := svc.IssueToken("alice@x.com")
	if apierr != nil {
		t.Fatalf("issue failed: %v", apierr)
	}
	if !strings.Contains(token.AccessToken, "alice@x.com") {
		t.Errorf("issuer was not called with the user's email: %q", token.AccessToken)
	}
}
