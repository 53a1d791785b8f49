package db

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/veilcraft/gatewarden/internal/models"
	"gorm.io/gorm"
)

func openTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := OpenSQLite(filepath.Join(t.TempDir(), "accounts.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	return database
}

func seedAccount(t *testing.T, database *gorm.DB, email string) models.Account {
	t.Helper()

	account := models.Account{
		PublicID:  "public-" + email,
		Email:     email,
		FirstName: "Test",
		CreatedAt: time.Now().UTC(),
	}
	if err := database.Create(&account).Error; err != nil {
		t.Fatalf("seed account %s: %v", email, err)
	}
	return account
}

func TestFindByEmailIsCaseSensitive(t *testing.T) {
	t.Parallel()

	database := openTestDatabase(t)
	repo := NewAccountRepository(database)
	seedAccount(t, database, "a@x.com")

	if _, err := repo.FindByEmail("a@x.com"); err != nil {
		t.Fatalf("expected exact match to succeed, got %v", err)
	}
	if _, err := repo.FindByEmail("A@x.com"); !errors.Is(err, models.ErrAccountNotFound) {
		t.Fatalf("expected case-mismatched lookup to miss, got %v", err)
	}
}

func TestUpdateByEmailReportsMissingAccount(t *testing.T) {
	t.Parallel()

	database := openTestDatabase(t)
	repo := NewAccountRepository(database)

	err := repo.UpdateByEmail("missing@x.com", map[string]any{"is_verified": true})
	if !errors.Is(err, models.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestUpdateByEmailSetsAndClearsPendingPair(t *testing.T) {
	t.Parallel()

	database := openTestDatabase(t)
	repo := NewAccountRepository(database)
	seedAccount(t, database, "a@x.com")

	expiresAt := time.Now().UTC().Add(10 * time.Minute)
	err := repo.UpdateByEmail("a@x.com", map[string]any{
		"otp_code":       "123456",
		"otp_expires_at": expiresAt,
	})
	if err != nil {
		t.Fatalf("set pending pair: %v", err)
	}

	account, err := repo.FindByEmail("a@x.com")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if account.OTPCode == nil || *account.OTPCode != "123456" || account.OTPExpiresAt == nil {
		t.Fatal("expected pending code and expiry to be stored together")
	}

	err = repo.UpdateByEmail("a@x.com", map[string]any{
		"otp_code":       nil,
		"otp_expires_at": nil,
	})
	if err != nil {
		t.Fatalf("clear pending pair: %v", err)
	}

	account, err = repo.FindByEmail("a@x.com")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if account.OTPCode != nil || account.OTPExpiresAt != nil {
		t.Fatal("expected pending code and expiry to be cleared together")
	}
}

func TestDeleteAccountCascadeRemovesAllDependents(t *testing.T) {
	t.Parallel()

	database := openTestDatabase(t)
	repo := NewAccountRepository(database)
	account := seedAccount(t, database, "a@x.com")
	bystander := seedAccount(t, database, "b@x.com")

	profile := models.Profile{AccountID: account.ID, Headline: "hello", CreatedAt: time.Now().UTC()}
	if err := database.Create(&profile).Error; err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	bystanderProfile := models.Profile{AccountID: bystander.ID, CreatedAt: time.Now().UTC()}
	if err := database.Create(&bystanderProfile).Error; err != nil {
		t.Fatalf("seed bystander profile: %v", err)
	}

	for _, name := range []string{"one", "two"} {
		project := models.Project{AccountID: account.ID, Name: name, CreatedAt: time.Now().UTC()}
		if err := database.Create(&project).Error; err != nil {
			t.Fatalf("seed project: %v", err)
		}
	}
	average := models.ProjectAverage{ProfileID: profile.ID, Metric: "velocity", Value: 3.5, UpdatedAt: time.Now().UTC()}
	if err := database.Create(&average).Error; err != nil {
		t.Fatalf("seed average: %v", err)
	}
	bystanderAverage := models.ProjectAverage{ProfileID: bystanderProfile.ID, Metric: "velocity", UpdatedAt: time.Now().UTC()}
	if err := database.Create(&bystanderAverage).Error; err != nil {
		t.Fatalf("seed bystander average: %v", err)
	}

	if err := repo.DeleteAccountCascade("a@x.com"); err != nil {
		t.Fatalf("cascade delete: %v", err)
	}

	if _, err := repo.FindByEmail("a@x.com"); !errors.Is(err, models.ErrAccountNotFound) {
		t.Fatalf("expected account gone, got %v", err)
	}
	assertCount(t, database, &models.Profile{}, "account_id = ?", account.ID, 0)
	assertCount(t, database, &models.Project{}, "account_id = ?", account.ID, 0)
	assertCount(t, database, &models.ProjectAverage{}, "profile_id = ?", profile.ID, 0)

	// The other account's rows stay put.
	if _, err := repo.FindByEmail("b@x.com"); err != nil {
		t.Fatalf("bystander account missing: %v", err)
	}
	assertCount(t, database, &models.Profile{}, "account_id = ?", bystander.ID, 1)
	assertCount(t, database, &models.ProjectAverage{}, "profile_id = ?", bystanderProfile.ID, 1)
}

func TestDeleteAccountCascadeWithoutProfile(t *testing.T) {
	t.Parallel()

	database := openTestDatabase(t)
	repo := NewAccountRepository(database)
	account := seedAccount(t, database, "a@x.com")

	project := models.Project{AccountID: account.ID, Name: "solo", CreatedAt: time.Now().UTC()}
	if err := database.Create(&project).Error; err != nil {
		t.Fatalf("seed project: %v", err)
	}

	if err := repo.DeleteAccountCascade("a@x.com"); err != nil {
		t.Fatalf("cascade delete: %v", err)
	}
	assertCount(t, database, &models.Project{}, "account_id = ?", account.ID, 0)
}

func TestDeleteAccountCascadeMissingAccountLeavesRows(t *testing.T) {
	t.Parallel()

	database := openTestDatabase(t)
	repo := NewAccountRepository(database)
	account := seedAccount(t, database, "a@x.com")

	project := models.Project{AccountID: account.ID, Name: "keep", CreatedAt: time.Now().UTC()}
	if err := database.Create(&project).Error; err != nil {
		t.Fatalf("seed project: %v", err)
	}

	err := repo.DeleteAccountCascade("missing@x.com")
	if !errors.Is(err, models.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
	assertCount(t, database, &models.Project{}, "account_id = ?", account.ID, 1)
}

func assertCount(t *testing.T, database *gorm.DB, model any, query string, arg any, want int64) {
	t.Helper()

	var count int64
	if err := database.Model(model).Where(query, arg).Count(&count).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if count != want {
		t.Fatalf("row count = %d, want %d", count, want)
	}
}
