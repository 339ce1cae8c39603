package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func newTestTokenService(t *testing.T) *TokenService {
	t.Helper()
	svc, err := NewTokenService([]byte("test-secret"), time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService error: %v", err)
	}
	return svc
}

func TestNewTokenServiceRequiresSecret(t *testing.T) {
	if _, err := NewTokenService(nil, time.Hour); !errors.Is(err, ErrMisconfigured) {
		t.Fatalf("expected ErrMisconfigured for empty secret, got %v", err)
	}
	if _, err := NewTokenService([]byte("s"), 0); !errors.Is(err, ErrMisconfigured) {
		t.Fatalf("expected ErrMisconfigured for zero TTL, got %v", err)
	}
}

func TestIssueAndValidateRoundtrip(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.Issue("admin")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	subject, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if subject != "admin" {
		t.Fatalf("subject mismatch: got %q want %q", subject, "admin")
	}
}

func TestValidateExpiredToken(t *testing.T) {
	svc := newTestTokenService(t)

	// Signed with the right secret but already past expiry.
	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	if _, err := svc.Validate(expired); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for expired token, got %v", err)
	}
}

func TestValidateWrongSecret(t *testing.T) {
	svc := newTestTokenService(t)

	other, err := NewTokenService([]byte("other-secret"), time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService error: %v", err)
	}
	token, err := other.Issue("admin")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := svc.Validate(token); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for wrong secret, got %v", err)
	}
}

func TestValidateTamperedToken(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.Issue("admin")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if tampered == token {
		tampered = token[:len(token)-2] + "yy"
	}
	if _, err := svc.Validate(tampered); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for tampered token, got %v", err)
	}
}

func TestValidateMalformedToken(t *testing.T) {
	svc := newTestTokenService(t)

	for _, input := range []string{"", "not-a-jwt", "a.b", "a.b.c"} {
		if _, err := svc.Validate(input); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized for %q, got %v", input, err)
		}
	}
}

func TestValidateRejectsUnsignedToken(t *testing.T) {
	svc := newTestTokenService(t)

	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	if _, err := svc.Validate(unsigned); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for alg=none token, got %v", err)
	}
}

func TestIssuedTokensCarryUniqueIDs(t *testing.T) {
	svc := newTestTokenService(t)

	first, err := svc.Issue("admin")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	second, err := svc.Issue("admin")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if strings.Split(first, ".")[1] == strings.Split(second, ".")[1] {
		t.Fatalf("expected distinct payloads for two tokens issued to one user")
	}
}
