package auth

import (
	"errors"
	"testing"
	"time"

	"assignhub/internal/config"
)

func testService(expiration time.Duration) *Service {
	cfg := &config.JWTConfig{
		Secret:     "test-secret",
		Expiration: expiration,
	}
	return NewService(cfg)
}

func TestHashPassword(t *testing.T) {
	svc := testService(24 * time.Hour)

	password := "testpassword123"
	hash, err := svc.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	if hash == "" {
		t.Error("Hash should not be empty")
	}

	if hash == password {
		t.Error("Hash should not equal the original password")
	}
}

func TestVerifyPassword(t *testing.T) {
	svc := testService(24 * time.Hour)

	password := "testpassword123"
	hash, err := svc.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	// Test correct password
	err = svc.VerifyPassword(hash, password)
	if err != nil {
		t.Errorf("Should verify correct password, got error: %v", err)
	}

	// Test incorrect password
	err = svc.VerifyPassword(hash, "wrongpassword")
	if err == nil {
		t.Error("Should not verify incorrect password")
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testService(24 * time.Hour)

	token, err := svc.GenerateToken(1, "alice")
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}
	if token == "" {
		t.Fatal("Token should not be empty")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("Failed to validate token: %v", err)
	}

	if claims.UserID != 1 {
		t.Errorf("Expected user id 1, got %d", claims.UserID)
	}
	if claims.Username != "alice" {
		t.Errorf("Expected username alice, got %s", claims.Username)
	}
}

func TestValidateTokenInvalid(t *testing.T) {
	svc := testService(24 * time.Hour)

	_, err := svc.ValidateToken("not-a-token")
	if err == nil {
		t.Error("Should reject a malformed token")
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc := testService(24 * time.Hour)

	token, err := svc.GenerateToken(1, "alice")
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	other := NewService(&config.JWTConfig{
		Secret:     "different-secret",
		Expiration: 24 * time.Hour,
	})
	if _, err := other.ValidateToken(token); err == nil {
		t.Error("Should reject a token signed with a different secret")
	}
}

func TestValidateTokenExpired(t *testing.T) {
	svc := testService(-time.Hour)

	token, err := svc.GenerateToken(1, "alice")
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	_, err = svc.ValidateToken(token)
	if !errors.Is(err, ErrExpiredToken) {
		t.Errorf("Expected ErrExpiredToken, got %v", err)
	}
}
