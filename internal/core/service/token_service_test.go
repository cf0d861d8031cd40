package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cse-motors/dealership/internal/core/domain"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue(42, domain.RoleEmployee)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.AccountID != 42 {
		t.Fatalf("expected account id 42, got %d", claims.AccountID)
	}
	if claims.Role != domain.RoleEmployee {
		t.Fatalf("expected role %s, got %s", domain.RoleEmployee, claims.Role)
	}
}

func TestTokenService_Verify_Expired(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	claims := tokenClaims{
		Role: domain.RoleClient,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "7",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Verify(expired); err != domain.ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	other := NewTokenService("other-secret", time.Hour)
	token, err := other.Issue(1, domain.RoleClient)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := svc.Verify(token); err != domain.ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenService_Verify_Garbage(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	if _, err := svc.Verify("not-a-token"); err != domain.ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenService_Verify_WrongAlgorithm(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	claims := tokenClaims{
		Role: domain.RoleClient,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "7",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Verify(token); err != domain.ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenService_Verify_BadSubject(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	claims := tokenClaims{
		Role: domain.RoleClient,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "not-a-number",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Verify(token); err != domain.ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenService_TTL(t *testing.T) {
	svc := NewTokenService("secret", 90*time.Minute)
	if got := svc.TTL(); got != 5400 {
		t.Fatalf("expected 5400 seconds, got %d", got)
	}

	// A non-positive TTL falls back to one hour.
	svc = NewTokenService("secret", 0)
	if got := svc.TTL(); got != 3600 {
		t.Fatalf("expected 3600 seconds, got %d", got)
	}
}
