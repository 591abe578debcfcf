package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"clinicare/internal/models"
)

// Shared MockAccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(account *models.Account) error {
	args := m.Called(account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindByEmail(email string) (*models.Account, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByID(id uint) (*models.Account, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockAccountRepository) EmailExists(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) UsernameExists(username string) (bool, error) {
	args := m.Called(username)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) UpdateLastLogin(id uint, lastLogin time.Time) error {
	args := m.Called(id, lastLogin)
	return args.Error(0)
}

// Shared MockPatientRepository
type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) CreateWithAccount(account *models.Account, patient *models.Patient) error {
	args := m.Called(account, patient)
	return args.Error(0)
}

func (m *MockPatientRepository) PhoneExists(phone string) (bool, error) {
	args := m.Called(phone)
	return args.Bool(0), args.Error(1)
}

func (m *MockPatientRepository) CodeExists(code string) (bool, error) {
	args := m.Called(code)
	return args.Bool(0), args.Error(1)
}

// Shared MockSpecialistRepository
type MockSpecialistRepository struct {
	mock.Mock
}

func (m *MockSpecialistRepository) CreateWithAccount(account *models.Account, specialist *models.Specialist) error {
	args := m.Called(account, specialist)
	return args.Error(0)
}

func (m *MockSpecialistRepository) PhoneExists(phone string) (bool, error) {
	args := m.Called(phone)
	return args.Bool(0), args.Error(1)
}

// Shared MockCatalogRepository
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) CreateSpecialization(specialization *models.Specialization) error {
	args := m.Called(specialization)
	return args.Error(0)
}

func (m *MockCatalogRepository) SpecializationExists(name string) (bool, error) {
	args := m.Called(name)
	return args.Bool(0), args.Error(1)
}

func (m *MockCatalogRepository) CreateAilment(ailment *models.Ailment) error {
	args := m.Called(ailment)
	return args.Error(0)
}

func (m *MockCatalogRepository) AilmentExists(name string) (bool, error) {
	args := m.Called(name)
	return args.Bool(0), args.Error(1)
}

// Shared MockReportRepository
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) Create(report *models.Report) error {
	args := m.Called(report)
	return args.Error(0)
}

// Shared MockPrescriptionRepository
type MockPrescriptionRepository struct {
	mock.Mock
}

func (m *MockPrescriptionRepository) Create(prescription *models.Prescription) error {
	args := m.Called(prescription)
	return args.Error(0)
}

// Shared MockTokenBlacklist
type MockTokenBlacklist struct {
	mock.Mock
}

func (m *MockTokenBlacklist) BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error {
	args := m.Called(ctx, jti, ttl)
	return args.Error(0)
}

func (m *MockTokenBlacklist) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	args := m.Called(ctx, jti)
	return args.Bool(0), args.Error(1)
}
