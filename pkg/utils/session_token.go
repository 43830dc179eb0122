package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionTTL bounds both the signed cookie and the server-side session row.
const SessionTTL = 24 * time.Hour

// CreateSessionToken signs a session id into the cookie value. The token
// proves nothing by itself; the middleware still resolves the session id
// against the server-side store.
func CreateSessionToken(sessionID string, secret []byte) (string, error) {
	claims := &jwt.RegisteredClaims{
		Subject:   sessionID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(SessionTTL)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateSessionToken returns the session id carried by tokenString,
// or an error if the signature or expiry check fails.
func ValidateSessionToken(tokenString string, secret []byte) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", jwt.ErrTokenInvalidClaims
	}

	return claims.Subject, nil
}
