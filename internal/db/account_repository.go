package db

import (
	"errors"

	"github.com/veilcraft/gatewarden/internal/models"
	"gorm.io/gorm"
)

type AccountRepository struct {
	database *gorm.DB
}

func NewAccountRepository(database *gorm.DB) *AccountRepository {
	return &AccountRepository{database: database}
}

// FindByEmail matches the stored email exactly; addresses are case-sensitive
// identifiers here.
func (repo *AccountRepository) FindByEmail(email string) (models.Account, error) {
	var account models.Account
	if err := repo.database.Where("email = ?", email).First(&account).Error; err != nil {
		return models.Account{}, translateNotFound(err)
	}
	return account, nil
}

func (repo *AccountRepository) FindByPublicID(publicID string) (models.Account, error) {
	var account models.Account
	if err := repo.database.Where("public_id = ?", publicID).First(&account).Error; err != nil {
		return models.Account{}, translateNotFound(err)
	}
	return account, nil
}

func (repo *AccountRepository) ExistsByEmail(email string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.Account{}).
		Where("email = ?", email).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *AccountRepository) Create(account *models.Account) error {
	return repo.database.Create(account).Error
}

func (repo *AccountRepository) UpdateByEmail(email string, updates map[string]any) error {
	result := repo.database.Model(&models.Account{}).Where("email = ?", email).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrAccountNotFound
	}
	return nil
}

// DeleteAccountCascade removes the account and everything it owns in one
// transaction: project averages first (they hang off the profile), then
// projects, then the profile, then the account row. Any failure rolls the
// whole thing back.
func (repo *AccountRepository) DeleteAccountCascade(email string) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		var account models.Account
		if err := tx.Where("email = ?", email).First(&account).Error; err != nil {
			return translateNotFound(err)
		}

		var profile models.Profile
		err := tx.Where("account_id = ?", account.ID).First(&profile).Error
		hasProfile := err == nil
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if hasProfile {
			if err := tx.Where("profile_id = ?", profile.ID).Delete(&models.ProjectAverage{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("account_id = ?", account.ID).Delete(&models.Project{}).Error; err != nil {
			return err
		}
		if hasProfile {
			if err := tx.Delete(&models.Profile{}, profile.ID).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Account{}, account.ID).Error
	})
}

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrAccountNotFound
	}
	return err
}
