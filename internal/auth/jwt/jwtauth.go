package jwt

import (
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
)

// VerifyToken validates signature and expiry and returns the subject claim.
func VerifyToken(jwtAuth *jwtauth.JWTAuth, token string) (string, error) {
	if token == "" {
		return "", fmt.Errorf("empty token")
	}
	t, err := jwtauth.VerifyToken(jwtAuth, token)
	if err != nil {
		return "", err
	}
	return t.Subject(), nil
}

// NewToken creates a JWT for the admin username, used as subject for audit logs.
func NewToken(jwtAuth *jwtauth.JWTAuth, ttl time.Duration, subject string) (string, error) {
	claims := map[string]interface{}{
		"exp": time.Now().Add(ttl).Unix(),
		"iat": time.Now().Unix(),
	}
	if subject != "" {
		claims["sub"] = subject
	}
	_, ts, err := jwtAuth.Encode(claims)
	if err != nil {
		return "", err
	}
	return ts, nil
}
