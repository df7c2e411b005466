package auth

import (
	"testing"
	"time"
)

func TestDecodeClaims_ValidToken(t *testing.T) {
	expiresIn := 45 * time.Minute
	claims := DecodeClaims(signedToken(t, expiresIn))

	if claims.ExpiresAt.IsZero() {
		t.Fatal("Expected expiry claim to be decoded")
	}
	until := time.Until(claims.ExpiresAt)
	if until < expiresIn-time.Minute || until > expiresIn+time.Minute {
		t.Errorf("Expected expiry ~%v away, got %v", expiresIn, until)
	}
}

func TestDecodeClaims_NeverFails(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty string", ""},
		{"not a JWT", "hello-world"},
		{"wrong segment count", "a.b"},
		{"garbage segments", "!!!.???.###"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := DecodeClaims(tt.token)
			if !claims.ExpiresAt.IsZero() {
				t.Errorf("Expected zero claims for %q, got %+v", tt.token, claims)
			}
		})
	}
}

func TestDecodeClaims_MissingExpiry(t *testing.T) {
	claims := DecodeClaims(tokenWithoutExpiry(t))
	if !claims.ExpiresAt.IsZero() {
		t.Errorf("Expected zero expiry for token without exp claim, got %v", claims.ExpiresAt)
	}
}
