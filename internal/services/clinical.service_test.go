package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"clinicare/internal/mocks"
	"clinicare/internal/models"
	"clinicare/internal/validation"
)

func setupClinicalService() (*ClinicalService, *mocks.MockPatientRepository, *mocks.MockCatalogRepository, *mocks.MockReportRepository, *mocks.MockPrescriptionRepository) {
	patientRepo := new(mocks.MockPatientRepository)
	catalogRepo := new(mocks.MockCatalogRepository)
	reportRepo := new(mocks.MockReportRepository)
	prescriptionRepo := new(mocks.MockPrescriptionRepository)
	service := NewClinicalService(patientRepo, catalogRepo, reportRepo, prescriptionRepo)
	return service, patientRepo, catalogRepo, reportRepo, prescriptionRepo
}

func validReportInput() ReportInput {
	return ReportInput{
		Name:        "Follow-up assessment",
		Patient:     "PAT-003",
		Ailment:     "cardiovascular",
		Description: "Patient shows steady improvement.",
	}
}

func TestCreateReportValidation(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*ReportInput)
		setupMocks    func(*mocks.MockPatientRepository, *mocks.MockCatalogRepository)
		expectedField string
	}{
		{
			name: "ailment outside vocabulary",
			mutate: func(in *ReportInput) {
				in.Ailment = "flu"
			},
			expectedField: "ailment",
		},
		{
			name: "bad patient code format",
			mutate: func(in *ReportInput) {
				in.Patient = "PT-003"
			},
			expectedField: "patient",
		},
		{
			name:   "patient does not exist",
			mutate: func(in *ReportInput) {},
			setupMocks: func(patients *mocks.MockPatientRepository, catalog *mocks.MockCatalogRepository) {
				patients.On("CodeExists", "PAT-003").Return(false, nil)
			},
			expectedField: "patient",
		},
		{
			name:   "ailment not in catalog",
			mutate: func(in *ReportInput) {},
			setupMocks: func(patients *mocks.MockPatientRepository, catalog *mocks.MockCatalogRepository) {
				patients.On("CodeExists", "PAT-003").Return(true, nil)
				catalog.On("AilmentExists", "cardiovascular").Return(false, nil)
			},
			expectedField: "ailment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, patientRepo, catalogRepo, reportRepo, _ := setupClinicalService()
			if tt.setupMocks != nil {
				tt.setupMocks(patientRepo, catalogRepo)
			}

			input := validReportInput()
			tt.mutate(&input)

			_, err := service.CreateReport(input, 7)
			require.Error(t, err)

			var fields validation.FieldErrors
			require.ErrorAs(t, err, &fields)
			assert.Contains(t, fields, tt.expectedField)
			reportRepo.AssertNotCalled(t, "Create", mock.Anything)
		})
	}
}

func TestCreateReportUnknownPatientFailsRegardlessOfOtherFields(t *testing.T) {
	service, patientRepo, _, reportRepo, _ := setupClinicalService()
	patientRepo.On("CodeExists", "PAT-999").Return(false, nil)

	input := validReportInput()
	input.Patient = "PAT-999"

	_, err := service.CreateReport(input, 7)
	var fields validation.FieldErrors
	require.ErrorAs(t, err, &fields)
	assert.Equal(t, "Patient does not exist!", fields["patient"])
	reportRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateReportStampsAuthorAndTitlecasesAilment(t *testing.T) {
	tests := []struct {
		name    string
		ailment string
	}{
		{name: "lowercase", ailment: "cardiovascular"},
		{name: "titlecase", ailment: "Cardiovascular"},
		{name: "uppercase", ailment: "CARDIOVASCULAR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, patientRepo, catalogRepo, reportRepo, _ := setupClinicalService()
			patientRepo.On("CodeExists", "PAT-003").Return(true, nil)
			catalogRepo.On("AilmentExists", tt.ailment).Return(true, nil)
			reportRepo.On("Create", mock.Anything).Return(nil)

			input := validReportInput()
			input.Ailment = tt.ailment

			report, err := service.CreateReport(input, 7)
			require.NoError(t, err)

			assert.Equal(t, uint(7), report.AuthorID)
			assert.Equal(t, "Cardiovascular", report.Ailment)
			assert.Equal(t, "PAT-003", report.Patient)
			reportRepo.AssertExpectations(t)
		})
	}
}

func TestCreatePrescription(t *testing.T) {
	service, patientRepo, catalogRepo, _, prescriptionRepo := setupClinicalService()
	patientRepo.On("CodeExists", "PAT-010").Return(true, nil)
	catalogRepo.On("AilmentExists", "mental").Return(true, nil)
	prescriptionRepo.On("Create", mock.Anything).Return(nil)

	input := PrescriptionInput{
		Patient:       "PAT-010",
		Feelings:      "Anxious, trouble sleeping",
		Ailments:      "mental",
		Prescriptions: "Sertraline 50mg daily",
	}

	prescription, err := service.CreatePrescription(input, 9)
	require.NoError(t, err)

	assert.Equal(t, uint(9), prescription.AuthorID)
	assert.Equal(t, "Mental", prescription.Ailments)
	prescriptionRepo.AssertExpectations(t)
}

func TestCreatePrescriptionFieldErrorsUseAilmentsKey(t *testing.T) {
	service, _, _, _, prescriptionRepo := setupClinicalService()

	input := PrescriptionInput{
		Patient:       "PAT-010",
		Ailments:      "unknown",
		Prescriptions: "rest",
	}

	_, err := service.CreatePrescription(input, 9)
	var fields validation.FieldErrors
	require.ErrorAs(t, err, &fields)
	assert.Contains(t, fields, "ailments")
	prescriptionRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestVocabularyIsSharedBetweenPaths(t *testing.T) {
	// The report and prescription validators consult the same list; the
	// "orthopaedic" variant the original split on is not part of it.
	assert.True(t, models.IsValidAilment("orthopedic"))
	assert.False(t, models.IsValidAilment("orthopaedic"))
}
