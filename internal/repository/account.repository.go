package repository

import (
	"time"

	"gorm.io/gorm"

	"clinicare/internal/models"
)

type AccountRepository interface {
	Create(account *models.Account) error
	FindByEmail(email string) (*models.Account, error)
	FindByID(id uint) (*models.Account, error)
	EmailExists(email string) (bool, error)
	UsernameExists(username string) (bool, error)
	UpdateLastLogin(id uint, lastLogin time.Time) error
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (ar *accountRepository) Create(account *models.Account) error {
	return ar.db.Create(account).Error
}

func (ar *accountRepository) FindByEmail(email string) (*models.Account, error) {
	var account models.Account
	err := ar.db.Where("email = ?", email).First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (ar *accountRepository) FindByID(id uint) (*models.Account, error) {
	var account models.Account
	err := ar.db.First(&account, id).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (ar *accountRepository) EmailExists(email string) (bool, error) {
	var count int64
	err := ar.db.Model(&models.Account{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (ar *accountRepository) UsernameExists(username string) (bool, error) {
	var count int64
	err := ar.db.Model(&models.Account{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (ar *accountRepository) UpdateLastLogin(id uint, lastLogin time.Time) error {
	return ar.db.Model(&models.Account{}).Where("id = ?", id).Update("last_login", lastLogin).Error
}
