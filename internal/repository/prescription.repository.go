package repository

import (
	"gorm.io/gorm"

	"clinicare/internal/models"
)

type PrescriptionRepository interface {
	Create(prescription *models.Prescription) error
}

type prescriptionRepository struct {
	db *gorm.DB
}

func NewPrescriptionRepository(db *gorm.DB) PrescriptionRepository {
	return &prescriptionRepository{db: db}
}

func (pr *prescriptionRepository) Create(prescription *models.Prescription) error {
	return pr.db.Create(prescription).Error
}
