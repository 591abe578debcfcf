package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"clinicare/internal/models"
)

type SpecialistRepository interface {
	CreateWithAccount(account *models.Account, specialist *models.Specialist) error
	PhoneExists(phone string) (bool, error)
}

type specialistRepository struct {
	db *gorm.DB
}

func NewSpecialistRepository(db *gorm.DB) SpecialistRepository {
	return &specialistRepository{db: db}
}

func (sr *specialistRepository) CreateWithAccount(account *models.Account, specialist *models.Specialist) error {
	err := sr.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(account).Error; err != nil {
			return err
		}

		code, err := nextCode(tx, models.SpecialistCodeSequence, models.SpecialistCodePrefix)
		if err != nil {
			return err
		}

		specialist.AccountID = account.ID
		specialist.Code = code
		return tx.Omit(clause.Associations).Create(specialist).Error
	})
	if err != nil {
		return err
	}

	specialist.Account = *account
	return nil
}

func (sr *specialistRepository) PhoneExists(phone string) (bool, error) {
	var count int64
	err := sr.db.Model(&models.Specialist{}).Where("phone = ?", phone).Count(&count).Error
	return count > 0, err
}
