package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const sessionTokenPurpose = "session"

const (
	// CredentialSessionTTL applies to tokens issued by verifyOtp and login.
	CredentialSessionTTL = 240 * time.Hour
	// FederatedSessionTTL is intentionally shorter for federated sign-in.
	FederatedSessionTTL = 24 * time.Hour
)

var (
	ErrSessionTokenMissing        = errors.New("missing session token")
	ErrSessionTokenInvalid        = errors.New("invalid session token")
	ErrSessionTokenInvalidPurpose = errors.New("invalid session token purpose")
	ErrSessionTokenExpired        = errors.New("expired session token")
	ErrSessionTokenInvalidSubject = errors.New("invalid session token subject")
)

// SessionClaims binds a session token to an account's public ID.
type SessionClaims struct {
	Email   string `json:"email"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

func BuildSessionToken(secretKey []byte, publicID string, email string, ttl time.Duration, now time.Time) (string, error) {
	if ttl <= 0 {
		ttl = CredentialSessionTTL
	}
	if now.IsZero() {
		now = time.Now()
	}

	claims := SessionClaims{
		Email:   email,
		Purpose: sessionTokenPurpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   publicID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

func ParseSessionToken(secretKey []byte, rawToken string, now time.Time) (*SessionClaims, error) {
	if strings.TrimSpace(rawToken) == "" {
		return nil, ErrSessionTokenMissing
	}
	if now.IsZero() {
		now = time.Now()
	}

	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrSessionTokenInvalid
	}
	if claims.Purpose != sessionTokenPurpose {
		return nil, ErrSessionTokenInvalidPurpose
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(now) {
		return nil, ErrSessionTokenExpired
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return nil, ErrSessionTokenInvalidSubject
	}
	return claims, nil
}
