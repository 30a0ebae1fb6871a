package auth

import (
	"testing"
	"time"

	"starmap-server/internal/shared/config"
)

func setTestConfig(t *testing.T) {
	t.Helper()
	prev := config.GlobalConfig
	config.GlobalConfig = &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:       "test-secret-test-secret-test-secret!",
			TokenExpiration: time.Hour,
		},
	}
	t.Cleanup(func() { config.GlobalConfig = prev })
}

func TestGenerateAndValidateJWT(t *testing.T) {
	setTestConfig(t)

	token, err := GenerateJWT("nova")
	if err != nil {
		t.Fatalf("GenerateJWT returned error: %v", err)
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("ValidateJWT returned error: %v", err)
	}
	if claims.Commander != "nova" {
		t.Errorf("commander = %q, want %q", claims.Commander, "nova")
	}
	if claims.Subject != "nova" {
		t.Errorf("subject = %q, want %q", claims.Subject, "nova")
	}
}

func TestValidateJWTRejectsTampering(t *testing.T) {
	setTestConfig(t)

	token, err := GenerateJWT("nova")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ValidateJWT(token + "x"); err == nil {
		t.Fatal("expected error for tampered token")
	}
	if _, err := ValidateJWT("not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	setTestConfig(t)

	token, err := GenerateJWT("nova")
	if err != nil {
		t.Fatal(err)
	}

	config.GlobalConfig.Auth.JWTSecret = "another-secret-another-secret-another!"
	if _, err := ValidateJWT(token); err == nil {
		t.Fatal("expected error for token signed with a different secret")
	}
}
