package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueAndVerify(t *testing.T) {
	tokens := NewTokenManager("test-secret")

	raw, err := tokens.Issue("alice@x.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	ident, err := tokens.Verify(raw)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if ident.Email != "alice@x.com" {
		t.Errorf("expected alice@x.com, got %q", ident.Email)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	raw, err := NewTokenManager("secret-a").Issue("alice@x.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := NewTokenManager("secret-b").Verify(raw); err == nil {
		t.Error("expected a signature mismatch to fail verification")
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	tokens := NewTokenManager("test-secret")

	past := time.Now().UTC().Add(-2 * time.Hour)
	claims := &Claims{
		Email: "alice@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(past),
			ExpiresAt: jwt.NewNumericDate(past.Add(TokenTTL)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}

	if _, err := tokens.Verify(raw); err == nil {
		t.Error("expected an expired token to fail verification")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	tokens := NewTokenManager("test-secret")

	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := tokens.Verify(raw); err == nil {
			t.Errorf("expected %q to fail verification", raw)
		}
	}
}

func TestVerifyRejectsMissingEmailClaim(t *testing.T) {
	tokens := NewTokenManager("test-secret")

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}

	if _, err := tokens.Verify(raw); err == nil {
		t.Error("expected a token without an email claim to fail")
	}
}
