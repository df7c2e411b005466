package auth

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestTokenSource_RequiresSession(t *testing.T) {
	m := NewManager(&fakeTransport{}, "https://api.strata.dev")

	_, err := m.TokenSource().Token()
	if !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("Expected ErrNotAuthenticated, got %v", err)
	}
}

func TestTokenSource_ReflectsLiveSession(t *testing.T) {
	jwtToken := ""
	transport := &fakeTransport{
		respond: func(Request) (*Response, error) {
			return tokenResponse(jwtToken), nil
		},
	}
	m := NewManager(transport, "https://api.strata.dev")

	jwtToken = signedToken(t, time.Hour)
	if _, err := m.Login(context.Background(), &Credentials{Email: "a@b.c", Password: "p"}); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	token, err := m.TokenSource().Token()
	if err != nil {
		t.Fatalf("Token failed: %v", err)
	}
	if token.AccessToken != jwtToken {
		t.Errorf("Expected access token to match session token")
	}
	if token.Expiry.IsZero() {
		t.Error("Expected expiry derived from the token's exp claim")
	}
	if token.TokenType != "Bearer" {
		t.Errorf("Expected token type 'Bearer', got %q", token.TokenType)
	}
}
