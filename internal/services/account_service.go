package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/veilcraft/gatewarden/internal/federation"
	"github.com/veilcraft/gatewarden/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// passwordHashCost is fixed rather than configurable so no deployment can
// weaken it below offline-brute-force resistance.
const passwordHashCost = 12

type AccountRepository interface {
	FindByEmail(email string) (models.Account, error)
	FindByPublicID(publicID string) (models.Account, error)
	ExistsByEmail(email string) (bool, error)
	Create(account *models.Account) error
	UpdateByEmail(email string, updates map[string]any) error
	DeleteAccountCascade(email string) error
}

// Notifier delivers a short text message to an address; failures surface to
// the caller.
type Notifier interface {
	Send(to string, subject string, body string) error
}

// AccountService owns the credential and verification lifecycle: how an
// account moves between unverified, verified, and credential-reset states,
// and how one-time codes and session tokens gate those moves.
type AccountService struct {
	accounts  AccountRepository
	notifier  Notifier
	verifier  federation.Verifier
	secretKey []byte
	clock     func() time.Time
}

func NewAccountService(accounts AccountRepository, notifier Notifier, verifier federation.Verifier, secretKey []byte) *AccountService {
	return &AccountService{
		accounts:  accounts,
		notifier:  notifier,
		verifier:  verifier,
		secretKey: secretKey,
		clock:     time.Now,
	}
}

// Signup creates an unverified account and dispatches its verification code.
// A failed dispatch leaves the account in place; forgot-password regenerates
// the code later.
func (service *AccountService) Signup(firstName, lastName, email, password string) error {
	if err := ValidatePasswordStrength(password); err != nil {
		return err
	}

	taken, err := service.accounts.ExistsByEmail(email)
	if err != nil {
		return err
	}
	if taken {
		return ErrEmailTaken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return err
	}

	now := service.clock()
	code, expiresAt, err := GenerateOTP(now)
	if err != nil {
		return err
	}

	account := models.Account{
		PublicID:     uuid.NewString(),
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: string(passwordHash),
		IsVerified:   false,
		OTPCode:      &code,
		OTPExpiresAt: &expiresAt,
		CreatedAt:    now,
	}
	if err := service.accounts.Create(&account); err != nil {
		return err
	}

	return service.dispatchCode(email, code)
}

// VerifyOTP consumes a pending code, marks the account verified, and issues
// a session token.
func (service *AccountService) VerifyOTP(email, code string) (string, error) {
	account, err := service.accounts.FindByEmail(email)
	if err != nil {
		return "", err
	}

	now := service.clock()
	if !MatchOTP(account.OTPCode, account.OTPExpiresAt, code, now) {
		return "", ErrInvalidOTP
	}

	err = service.accounts.UpdateByEmail(email, map[string]any{
		"is_verified":    true,
		"otp_code":       nil,
		"otp_expires_at": nil,
	})
	if err != nil {
		return "", err
	}

	return BuildSessionToken(service.secretKey, account.PublicID, account.Email, CredentialSessionTTL, now)
}

// Login authenticates a verified account by password.
func (service *AccountService) Login(email, password string) (string, error) {
	account, err := service.accounts.FindByEmail(email)
	if err != nil {
		return "", err
	}
	if !account.IsVerified {
		return "", ErrUnverified
	}
	if !account.HasCredential() {
		return "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	return BuildSessionToken(service.secretKey, account.PublicID, account.Email, CredentialSessionTTL, service.clock())
}

// ForgotPassword issues a fresh code, overwriting any pending one. The
// account need not be verified.
func (service *AccountService) ForgotPassword(email string) error {
	if _, err := service.accounts.FindByEmail(email); err != nil {
		return err
	}

	code, expiresAt, err := GenerateOTP(service.clock())
	if err != nil {
		return err
	}

	err = service.accounts.UpdateByEmail(email, map[string]any{
		"otp_code":       code,
		"otp_expires_at": expiresAt,
	})
	if err != nil {
		return err
	}

	return service.dispatchCode(email, code)
}

// ResetPassword replaces the credential after the pending code checks out.
func (service *AccountService) ResetPassword(email, code, newPassword string) error {
	if err := ValidatePasswordStrength(newPassword); err != nil {
		return err
	}

	account, err := service.accounts.FindByEmail(email)
	if err != nil {
		return err
	}
	if !MatchOTP(account.OTPCode, account.OTPExpiresAt, code, service.clock()) {
		return ErrInvalidOTP
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), passwordHashCost)
	if err != nil {
		return err
	}

	return service.accounts.UpdateByEmail(email, map[string]any{
		"password_hash":  string(passwordHash),
		"otp_code":       nil,
		"otp_expires_at": nil,
	})
}

// DeleteAccount removes the account and everything it owns after the
// password checks out. The cascade is all-or-nothing at the store.
func (service *AccountService) DeleteAccount(email, password string) error {
	account, err := service.accounts.FindByEmail(email)
	if err != nil {
		return err
	}
	if !account.HasCredential() {
		return ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return ErrInvalidCredentials
	}

	return service.accounts.DeleteAccountCascade(email)
}

// Logout is advisory: the token stays valid until it expires, nothing is
// revoked server-side.
func (service *AccountService) Logout(token string) error {
	if strings.TrimSpace(token) == "" {
		return ErrTokenRequired
	}
	return nil
}

// FederatedSignIn exchanges a provider assertion for a session, creating a
// pre-verified credential-less account on first contact.
func (service *AccountService) FederatedSignIn(ctx context.Context, assertion string) (string, models.Account, error) {
	identity, err := service.verifier.Verify(ctx, assertion)
	if err != nil || identity.Email == "" {
		return "", models.Account{}, ErrInvalidAssertion
	}

	now := service.clock()
	account, err := service.accounts.FindByEmail(identity.Email)
	if err == nil {
		token, err := BuildSessionToken(service.secretKey, account.PublicID, account.Email, FederatedSessionTTL, now)
		return token, account, err
	}
	if !errors.Is(err, models.ErrAccountNotFound) {
		return "", models.Account{}, err
	}

	firstName, lastName := deriveNames(identity)
	account = models.Account{
		PublicID:   uuid.NewString(),
		Email:      identity.Email,
		FirstName:  firstName,
		LastName:   lastName,
		IsVerified: true,
		CreatedAt:  now,
	}
	if err := service.accounts.Create(&account); err != nil {
		return "", models.Account{}, err
	}

	token, err := BuildSessionToken(service.secretKey, account.PublicID, account.Email, FederatedSessionTTL, now)
	return token, account, err
}

// AccountByPublicID resolves the subject of a session token.
func (service *AccountService) AccountByPublicID(publicID string) (models.Account, error) {
	return service.accounts.FindByPublicID(publicID)
}

// ParseSession validates a session token against this service's key.
func (service *AccountService) ParseSession(rawToken string) (*SessionClaims, error) {
	return ParseSessionToken(service.secretKey, rawToken, service.clock())
}

func (service *AccountService) dispatchCode(email, code string) error {
	body := fmt.Sprintf("Your verification code is %s. It expires in %d minutes.", code, int(otpTTL.Minutes()))
	if err := service.notifier.Send(email, "Your verification code", body); err != nil {
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}
	return nil
}

// deriveNames prefers explicit given/family names, then splits a display
// name on whitespace, then falls back to the email local part.
func deriveNames(identity federation.Identity) (string, string) {
	if identity.GivenName != "" {
		return identity.GivenName, identity.FamilyName
	}

	if fields := strings.Fields(identity.FullName); len(fields) > 0 {
		return fields[0], strings.Join(fields[1:], " ")
	}

	localPart, _, _ := strings.Cut(identity.Email, "@")
	return localPart, ""
}
