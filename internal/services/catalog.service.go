package services

import (
	"strings"

	"clinicare/internal/models"
	"clinicare/internal/repository"
	"clinicare/internal/utils"
	"clinicare/internal/validation"
)

type CatalogInput struct {
	Name string `json:"name"`
}

// CatalogService manages the admin-gated specialization and ailment
// vocabularies. Names are restricted to the fixed sets and stored
// titlecased.
type CatalogService struct {
	catalog repository.CatalogRepository
}

func NewCatalogService(catalog repository.CatalogRepository) *CatalogService {
	return &CatalogService{catalog: catalog}
}

func (s *CatalogService) CreateSpecialization(input CatalogInput) (*models.Specialization, error) {
	if !models.IsValidSpecialization(input.Name) {
		return nil, validation.Single("name",
			"Name not expected. Please use one of: "+strings.Join(models.SpecializationNames, ", "))
	}

	exists, err := s.catalog.SpecializationExists(input.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, validation.Single("name", "Specialization already exists!")
	}

	specialization := &models.Specialization{Name: utils.Title(input.Name)}
	if err := s.catalog.CreateSpecialization(specialization); err != nil {
		return nil, err
	}
	return specialization, nil
}

func (s *CatalogService) CreateAilment(input CatalogInput) (*models.Ailment, error) {
	if !models.IsValidAilment(input.Name) {
		return nil, validation.Single("name",
			"Invalid Disease! Please select from either of: "+strings.Join(models.AilmentNames, ", "))
	}

	exists, err := s.catalog.AilmentExists(input.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, validation.Single("name", "Ailment already exists!")
	}

	ailment := &models.Ailment{Name: utils.Title(input.Name)}
	if err := s.catalog.CreateAilment(ailment); err != nil {
		return nil, err
	}
	return ailment, nil
}
