package services

import (
	"crypto/subtle"
	"time"

	"github.com/veilcraft/gatewarden/internal/security"
)

const (
	otpLength = 6
	otpTTL    = 10 * time.Minute
)

// GenerateOTP draws a fresh 6-digit code, uniform over 000000-999999, valid
// for ten minutes from now.
func GenerateOTP(now time.Time) (string, time.Time, error) {
	code, err := security.RandomDigits(otpLength)
	if err != nil {
		return "", time.Time{}, err
	}
	return code, now.Add(otpTTL), nil
}

// MatchOTP reports whether the supplied code matches a live pending pair.
// A missing pair, an expired pair, and a wrong code all look the same to
// the caller.
func MatchOTP(stored *string, expiresAt *time.Time, supplied string, now time.Time) bool {
	if stored == nil || expiresAt == nil {
		return false
	}
	if now.After(*expiresAt) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(*stored), []byte(supplied)) == 1
}
