package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the decoded payload of a bearer token, reduced to its expiry
// instant. A zero ExpiresAt means the token carried no usable exp claim.
type Claims struct {
	ExpiresAt time.Time
}

// DecodeClaims extracts the expiry claim from a token without verifying
// its signature. The token is self-issued by the server and only
// inspected so the client can avoid presenting a token it can locally
// prove is stale. Malformed or unparseable tokens yield zero Claims
// rather than an error, so the background timer consulting this can
// never crash on a bad token.
func DecodeClaims(token string) Claims {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return Claims{}
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return Claims{}
	}
	return Claims{ExpiresAt: exp.Time}
}
