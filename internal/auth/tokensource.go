package auth

import (
	"golang.org/x/oauth2"
)

// TokenSource exposes the managed session as an oauth2.TokenSource so
// the token can feed oauth2-aware HTTP stacks. The returned source
// reflects the live session: tokens replaced by the background refresh
// show up on the next Token call.
func (m *Manager) TokenSource() oauth2.TokenSource {
	return &sessionTokenSource{m: m}
}

type sessionTokenSource struct {
	m *Manager
}

func (ts *sessionTokenSource) Token() (*oauth2.Token, error) {
	session := ts.m.Session()
	if session.Token == "" {
		return nil, ErrNotAuthenticated
	}
	token := &oauth2.Token{AccessToken: session.Token, TokenType: "Bearer"}
	if claims := DecodeClaims(session.Token); !claims.ExpiresAt.IsZero() {
		token.Expiry = claims.ExpiresAt
	}
	return token, nil
}
