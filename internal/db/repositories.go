package db

import "gorm.io/gorm"

type Repositories struct {
	Accounts *AccountRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Accounts: NewAccountRepository(database),
	}
}
