package auth_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"employee-task-service/pkg/auth"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	m := auth.NewTokenManager("test-secret", time.Minute)

	token, err := m.Issue("tester")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	subject, err := m.Parse(token)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if subject != "tester" {
		t.Fatalf("expected subject tester, got %q", subject)
	}
}

func TestTokenTamperedSignature(t *testing.T) {
	t.Parallel()

	m := auth.NewTokenManager("test-secret", time.Minute)

	token, err := m.Issue("tester")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", token)
	}
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))

	if _, err := m.Parse(tampered); !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	t.Parallel()

	issuer := auth.NewTokenManager("secret-one", time.Minute)
	verifier := auth.NewTokenManager("secret-two", time.Minute)

	token, err := issuer.Issue("tester")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, err := verifier.Parse(token); !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenExpired(t *testing.T) {
	t.Parallel()

	m := auth.NewTokenManager("test-secret", -time.Minute)

	token, err := m.Issue("tester")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, err := m.Parse(token); !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestTokenMalformed(t *testing.T) {
	t.Parallel()

	m := auth.NewTokenManager("test-secret", time.Minute)

	if _, err := m.Parse("not-a-token"); !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
