package token

import (
	"errors"
	"strings"
	"testing"
	"time"
)

const testSecret = "secretshouldbeatleast32charslong"

// Requirement: a token issued by Issue verifies before expiry and its claims
// decode to the username it was issued for.
func TestServiceIssueVerifyRoundTrip(t *testing.T) {
	svc := NewService([]byte(testSecret), time.Hour)

	raw, err := svc.Issue("alice")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	claims, err := svc.Verify(raw)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}

	if claims.Username != "alice" {
		t.Errorf("claims.Username = %q, want %q", claims.Username, "alice")
	}
	if claims.Subject != "alice" {
		t.Errorf("claims.Subject = %q, want %q", claims.Subject, "alice")
	}
	if claims.ID == "" {
		t.Error("token should carry a unique ID")
	}
}

// Requirement: expired tokens fail verification with a typed outcome.
func TestServiceVerifyExpired(t *testing.T) {
	svc := NewService([]byte(testSecret), -time.Minute)

	raw, err := svc.Issue("alice")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	_, err = svc.Verify(raw)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("Verify() error = %v, want ErrTokenExpired", err)
	}
}

func TestServiceVerifyRejectsBadInput(t *testing.T) {
	svc := NewService([]byte(testSecret), time.Hour)

	good, err := svc.Issue("alice")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	other := NewService([]byte("a-completely-different-signing-key!!"), time.Hour)
	foreign, err := other.Issue("alice")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty string", raw: ""},
		{name: "garbage", raw: "not.a.token"},
		{name: "wrong signing key", raw: foreign},
		{name: "tampered payload", raw: tamper(good)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := svc.Verify(test.raw); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("Verify() error = %v, want ErrInvalidToken", err)
			}
		})
	}
}

// Requirement: with a revocation list configured, Revoke blacklists the token
// until expiry and Verify reports it as revoked.
func TestServiceRevocation(t *testing.T) {
	svc := NewService([]byte(testSecret), time.Hour).
		WithRevocationList(NewMemoryRevocationList(100))

	raw, err := svc.Issue("alice")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := svc.Verify(raw); err != nil {
		t.Fatalf("Verify before revoke failed: %v", err)
	}

	if err := svc.Revoke(raw); err != nil {
		t.Fatalf("Revoke failed: %v", err)
	}

	if _, err := svc.Verify(raw); !errors.Is(err, ErrTokenRevoked) {
		t.Errorf("Verify() error = %v, want ErrTokenRevoked", err)
	}

	// A fresh token for the same user is unaffected.
	fresh, err := svc.Issue("alice")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if _, err := svc.Verify(fresh); err != nil {
		t.Errorf("fresh token should verify, got %v", err)
	}
}

// Requirement: without a revocation list, Revoke of a valid token is a
// successful no-op.
func TestServiceRevokeWithoutListIsNoop(t *testing.T) {
	svc := NewService([]byte(testSecret), time.Hour)

	raw, err := svc.Issue("alice")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if err := svc.Revoke(raw); err != nil {
		t.Errorf("Revoke() error = %v, want nil", err)
	}
	if _, err := svc.Verify(raw); err != nil {
		t.Errorf("token should still verify, got %v", err)
	}
}

// tamper flips the payload segment while keeping the signature intact.
func tamper(raw string) string {
	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		return raw + "x"
	}
	parts[1] = "eyJ1c2VybmFtZSI6Im1hbGxvcnkifQ"
	return strings.Join(parts, ".")
}
