// Package auth verifies the bearer tokens required by the API and can mint
// them for development and tests; in production issuance belongs to the
// authorization server, this service only validates.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Tokens struct {
	secret []byte
}

func New(secret string) *Tokens {
	return &Tokens{secret: []byte(secret)}
}

// IssueToken signs an HS256 access token for the given subject.
func (t *Tokens) IssueToken(subject string, ttl time.Duration) (string, error) {
	if subject == "" {
		return "", errors.New("subject required")
	}
	claims := jwt.MapClaims{
		"sub": subject,
		"exp": time.Now().Add(ttl).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(t.secret)
}

// ParseToken validates signature and expiry and returns the token subject.
func (t *Tokens) ParseToken(token string) (string, error) {
	parsed, err := jwt.Parse(token, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return t.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", errors.New("invalid token")
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", errors.New("invalid token subject")
	}
	return sub, nil
}
