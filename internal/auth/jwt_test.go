package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

const testSecret = "test-secret-key-at-least-32-chars-long"

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager(testSecret, "communova", 15*time.Minute)
	userID := uuid.New()

	token, err := m.GenerateAccessToken(userID, "ADMIN")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	gotID, role, err := m.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if gotID != userID {
		t.Errorf("user id: got %v, want %v", gotID, userID)
	}
	if role != "ADMIN" {
		t.Errorf("role: got %q, want ADMIN", role)
	}
}

func TestValidateAccessToken_Expired(t *testing.T) {
	m := NewJWTManager(testSecret, "communova", -time.Minute)

	token, err := m.GenerateAccessToken(uuid.New(), "USER")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, _, err := m.ValidateAccessToken(token); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestValidateAccessToken_WrongIssuer(t *testing.T) {
	issued := NewJWTManager(testSecret, "other-service", 15*time.Minute)
	validator := NewJWTManager(testSecret, "communova", 15*time.Minute)

	token, err := issued.GenerateAccessToken(uuid.New(), "USER")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, _, err := validator.ValidateAccessToken(token); err == nil {
		t.Error("expected error for wrong issuer")
	}
}

func TestValidateAccessToken_Tampered(t *testing.T) {
	m := NewJWTManager(testSecret, "communova", 15*time.Minute)

	token, err := m.GenerateAccessToken(uuid.New(), "USER")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, _, err := m.ValidateAccessToken(tampered); err == nil {
		t.Error("expected error for tampered token")
	}
}

func TestGenerateSessionToken(t *testing.T) {
	raw1, hash1, err := GenerateSessionToken()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	raw2, hash2, err := GenerateSessionToken()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if raw1 == raw2 {
		t.Error("tokens must be unique")
	}
	if hash1 != HashToken(raw1) || hash2 != HashToken(raw2) {
		t.Error("hash must match HashToken of the raw value")
	}
	if strings.Contains(raw1, "=") {
		t.Error("token must be raw-url-encoded without padding")
	}
	if len(hash1) != 64 {
		t.Errorf("hash length: got %d, want 64 hex chars", len(hash1))
	}
}
