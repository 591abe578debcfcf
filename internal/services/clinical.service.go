package services

import (
	"regexp"
	"strings"

	"clinicare/internal/models"
	"clinicare/internal/repository"
	"clinicare/internal/utils"
	"clinicare/internal/validation"
)

type ReportInput struct {
	Name        string `json:"name"`
	Patient     string `json:"patient"`
	Ailment     string `json:"ailment"`
	Description string `json:"description"`
}

type PrescriptionInput struct {
	Patient       string `json:"patient"`
	Feelings      string `json:"feelings"`
	Ailments      string `json:"ailments"`
	Prescriptions string `json:"prescriptions"`
}

var patientCodePattern = regexp.MustCompile(`^PAT-\d+$`)

// ClinicalService validates and creates reports and prescriptions. The
// author is always the authenticated specialist; client-supplied author
// fields are ignored.
type ClinicalService struct {
	patients      repository.PatientRepository
	catalog       repository.CatalogRepository
	reports       repository.ReportRepository
	prescriptions repository.PrescriptionRepository
}

func NewClinicalService(
	patients repository.PatientRepository,
	catalog repository.CatalogRepository,
	reports repository.ReportRepository,
	prescriptions repository.PrescriptionRepository,
) *ClinicalService {
	return &ClinicalService{
		patients:      patients,
		catalog:       catalog,
		reports:       reports,
		prescriptions: prescriptions,
	}
}

func (s *ClinicalService) CreateReport(input ReportInput, authorID uint) (*models.Report, error) {
	if err := s.validateReferences("ailment", input.Patient, input.Ailment); err != nil {
		return nil, err
	}

	report := &models.Report{
		Name:        input.Name,
		AuthorID:    authorID,
		Patient:     input.Patient,
		Ailment:     utils.Title(input.Ailment),
		Description: input.Description,
	}
	if err := s.reports.Create(report); err != nil {
		return nil, err
	}
	return report, nil
}

func (s *ClinicalService) CreatePrescription(input PrescriptionInput, authorID uint) (*models.Prescription, error) {
	if err := s.validateReferences("ailments", input.Patient, input.Ailments); err != nil {
		return nil, err
	}

	prescription := &models.Prescription{
		AuthorID:      authorID,
		Patient:       input.Patient,
		Feelings:      input.Feelings,
		Ailments:      utils.Title(input.Ailments),
		Prescriptions: input.Prescriptions,
	}
	if err := s.prescriptions.Create(prescription); err != nil {
		return nil, err
	}
	return prescription, nil
}

// validateReferences checks vocabulary membership, patient code format,
// then cross-entity existence of patient and ailment, in that order.
func (s *ClinicalService) validateReferences(ailmentField, patientCode, ailment string) error {
	if !models.IsValidAilment(ailment) {
		return validation.Single(ailmentField,
			"Invalid Ailment! Please use either of: "+strings.Join(models.AilmentNames, ", "))
	}
	if !patientCodePattern.MatchString(patientCode) {
		return validation.Single("patient", "Invalid Patient Code! Expected format: PAT-<number>")
	}

	exists, err := s.patients.CodeExists(patientCode)
	if err != nil {
		return err
	}
	if !exists {
		return validation.Single("patient", "Patient does not exist!")
	}

	exists, err = s.catalog.AilmentExists(ailment)
	if err != nil {
		return err
	}
	if !exists {
		return validation.Single(ailmentField, "Ailment does not exist!")
	}
	return nil
}
