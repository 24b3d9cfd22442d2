package auth

import (
	"testing"
	"time"
)

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	s := NewSessions([]byte("a-long-enough-test-secret"), time.Hour, nil)

	tok, err := s.Issue()
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if err := s.Verify(tok); err != nil {
		t.Fatalf("Verify error: %v", err)
	}
}

func TestVerifyExpired(t *testing.T) {
	t.Parallel()

	clock := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	issuer := NewSessions([]byte("secret-secret-secret"), time.Hour, func() time.Time { return clock })

	tok, err := issuer.Issue()
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	later := NewSessions([]byte("secret-secret-secret"), time.Hour, func() time.Time {
		return clock.Add(2 * time.Hour)
	})
	if err := later.Verify(tok); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewSessions([]byte("right-secret-right"), time.Hour, nil)
	tok, err := issuer.Issue()
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	other := NewSessions([]byte("wrong-secret-wrong"), time.Hour, nil)
	if err := other.Verify(tok); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestVerifyMalformed(t *testing.T) {
	t.Parallel()

	s := NewSessions([]byte("secret-secret-secret"), time.Hour, nil)
	if err := s.Verify("not.a.jwt"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for malformed token, got %v", err)
	}
}
