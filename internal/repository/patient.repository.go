package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"clinicare/internal/models"
)

type PatientRepository interface {
	CreateWithAccount(account *models.Account, patient *models.Patient) error
	PhoneExists(phone string) (bool, error)
	CodeExists(code string) (bool, error)
}

type patientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) PatientRepository {
	return &patientRepository{db: db}
}

// CreateWithAccount persists the account, bumps the patient code sequence
// and persists the profile in one transaction, so a failure at any step
// leaves no orphaned account and no burned code.
func (pr *patientRepository) CreateWithAccount(account *models.Account, patient *models.Patient) error {
	err := pr.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(account).Error; err != nil {
			return err
		}

		code, err := nextCode(tx, models.PatientCodeSequence, models.PatientCodePrefix)
		if err != nil {
			return err
		}

		patient.AccountID = account.ID
		patient.Code = code
		return tx.Omit(clause.Associations).Create(patient).Error
	})
	if err != nil {
		return err
	}

	patient.Account = *account
	return nil
}

func (pr *patientRepository) PhoneExists(phone string) (bool, error) {
	var count int64
	err := pr.db.Model(&models.Patient{}).Where("phone = ?", phone).Count(&count).Error
	return count > 0, err
}

func (pr *patientRepository) CodeExists(code string) (bool, error) {
	var count int64
	err := pr.db.Model(&models.Patient{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}
