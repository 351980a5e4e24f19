package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	username := "admin"
	duration := time.Hour
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, username, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}

	// Verify claims
	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		t.Fatal("could not cast claims to RegisteredClaims")
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if len(claims.Audience) != 1 || claims.Audience[0] != issuer {
		t.Errorf("expected audience [%s], got %v", issuer, claims.Audience)
	}
	if claims.Subject != username {
		t.Errorf("expected subject %q, got %q", username, claims.Subject)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		username string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "admin", time.Hour, "key"},
		{"empty username", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "admin", 0, "key"},
		{"empty key", "iss", "admin", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.username, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	issuer := "user-management"
	key := "secret-key"

	generated, err := GenerateJWTToken(issuer, "admin", time.Hour, key)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(generated.SignedString, key, issuer)
	if err != nil {
		t.Fatalf("expected valid token, got: %v", err)
	}
	if parsed.Username != "admin" {
		t.Errorf("expected username 'admin', got %q", parsed.Username)
	}
}

func TestValidateAndParseJWTToken_Failures(t *testing.T) {
	issuer := "user-management"
	key := "secret-key"

	valid, err := GenerateJWTToken(issuer, "admin", time.Hour, key)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	expired, err := GenerateJWTToken(issuer, "admin", -time.Minute, key)
	if err != nil {
		t.Fatalf("generate expired: %v", err)
	}

	otherIssuer, err := GenerateJWTToken("someone-else", "admin", time.Hour, key)
	if err != nil {
		t.Fatalf("generate other issuer: %v", err)
	}

	tests := []struct {
		name        string
		tokenString string
		key         string
	}{
		{"garbage token", "not.a.jwt", key},
		{"wrong sign key", valid.SignedString, "different-key"},
		{"expired token", expired.SignedString, key},
		{"wrong issuer and audience", otherIssuer.SignedString, key},
		{"empty token", "", key},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateAndParseJWTToken(tt.tokenString, tt.key, issuer); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid bearer", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"missing token part", "Bearer", "", true},
		{"empty header", "", "", true},
		{"empty token", "Bearer ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
