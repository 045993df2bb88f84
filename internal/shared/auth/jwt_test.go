package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestSignAndVerifyRoundTrip(t *testing.T) {
	token, err := SignJWT(Claims{Sub: "google:123", Email: "jane@example.com", Name: "Jane"})
	if err != nil {
		t.Fatalf("SignJWT: %v", err)
	}

	claims, err := VerifyJWT(token)
	if err != nil {
		t.Fatalf("VerifyJWT: %v", err)
	}
	if claims.Sub != "google:123" {
		t.Fatalf("expected sub google:123, got %q", claims.Sub)
	}
	if claims.Email != "jane@example.com" {
		t.Fatalf("expected email, got %q", claims.Email)
	}
	if claims.Exp == 0 || claims.Iat == 0 {
		t.Fatalf("expected timestamps to be set: %+v", claims)
	}
}

func TestSignRequiresSub(t *testing.T) {
	if _, err := SignJWT(Claims{}); err == nil {
		t.Fatalf("expected error for empty sub")
	}
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	token, err := SignJWT(Claims{Sub: "google:123"})
	if err != nil {
		t.Fatalf("SignJWT: %v", err)
	}

	parts := strings.Split(token, ".")
	parts[1] = parts[1][:len(parts[1])-2] + "xx"
	tampered := strings.Join(parts, ".")

	if _, err := VerifyJWT(tampered); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyRejectsMalformedToken(t *testing.T) {
	if _, err := VerifyJWT("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	token, err := SignJWT(Claims{
		Sub: "google:123",
		Exp: time.Now().UTC().Add(-time.Hour).Unix(),
	})
	if err != nil {
		t.Fatalf("SignJWT: %v", err)
	}

	if _, err := VerifyJWT(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
