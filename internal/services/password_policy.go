package services

import (
	"errors"
	"strings"
	"unicode"
)

const passwordSymbols = `!@#$%^&*()-_=+[]{};:'",.<>/?`

// ErrWeakPassword carries the full rule set in one message; callers present
// it as-is instead of itemizing which class was missing.
var ErrWeakPassword = errors.New("password must be at least 6 characters long and contain at least one lowercase letter, one uppercase letter, one digit, and one special character")

func ValidatePasswordStrength(password string) error {
	if len([]rune(password)) < 6 {
		return ErrWeakPassword
	}

	hasLower := false
	hasUpper := false
	hasDigit := false
	hasSymbol := false
	for _, char := range password {
		switch {
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsDigit(char):
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, char):
			hasSymbol = true
		}
	}

	if hasLower && hasUpper && hasDigit && hasSymbol {
		return nil
	}
	return ErrWeakPassword
}
