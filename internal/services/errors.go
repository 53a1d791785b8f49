package services

import (
	"errors"

	"github.com/veilcraft/gatewarden/internal/models"
)

var (
	// ErrAccountNotFound aliases the storage sentinel so callers only ever
	// depend on this package's taxonomy.
	ErrAccountNotFound = models.ErrAccountNotFound

	ErrEmailTaken = errors.New("an account with this email already exists")

	// ErrInvalidOTP covers both a wrong code and an expired one; the two
	// cases are deliberately indistinguishable.
	ErrInvalidOTP = errors.New("invalid or expired verification code")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnverified         = errors.New("account is not verified")
	ErrInvalidAssertion   = errors.New("invalid federated sign-in assertion")
	ErrTokenRequired      = errors.New("token is required")

	// ErrDelivery marks notifier failures; wrap it so the cause survives.
	ErrDelivery = errors.New("notification delivery failed")
)
