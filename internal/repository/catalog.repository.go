package repository

import (
	"gorm.io/gorm"

	"clinicare/internal/models"
)

type CatalogRepository interface {
	CreateSpecialization(specialization *models.Specialization) error
	SpecializationExists(name string) (bool, error)
	CreateAilment(ailment *models.Ailment) error
	AilmentExists(name string) (bool, error)
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (cr *catalogRepository) CreateSpecialization(specialization *models.Specialization) error {
	return cr.db.Create(specialization).Error
}

func (cr *catalogRepository) SpecializationExists(name string) (bool, error) {
	var count int64
	err := cr.db.Model(&models.Specialization{}).Where("LOWER(name) = LOWER(?)", name).Count(&count).Error
	return count > 0, err
}

func (cr *catalogRepository) CreateAilment(ailment *models.Ailment) error {
	return cr.db.Create(ailment).Error
}

func (cr *catalogRepository) AilmentExists(name string) (bool, error) {
	var count int64
	err := cr.db.Model(&models.Ailment{}).Where("LOWER(name) = LOWER(?)", name).Count(&count).Error
	return count > 0, err
}
