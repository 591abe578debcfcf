package services

import (
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"clinicare/internal/models"
	"clinicare/internal/repository"
	"clinicare/internal/utils"
	"clinicare/internal/validation"
)

// AccountInput carries the nested account fields of every registration
// payload.
type AccountInput struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type PatientInput struct {
	User        AccountInput `json:"user"`
	Phone       string       `json:"phone"`
	Photo       string       `json:"patient_photo"`
	Address     string       `json:"address"`
	DateOfBirth string       `json:"date_of_birth"`
}

type SpecialistInput struct {
	User        AccountInput `json:"user"`
	Phone       string       `json:"phone"`
	Photo       string       `json:"specialist_photo"`
	Address     string       `json:"address"`
	DateOfBirth string       `json:"date_of_birth"`
}

var (
	letterPattern = regexp.MustCompile(`[A-Za-z]`)
	digitPattern  = regexp.MustCompile(`\d`)
	phonePattern  = regexp.MustCompile(`^(01|07)\d{8}$`)
)

const dateOfBirthLayout = "2006-01-02"

// ProvisionService creates accounts and the patient/specialist profiles
// that own them. Profile creation is a single transaction covering the
// account row, the code sequence bump and the profile row.
type ProvisionService struct {
	accounts    repository.AccountRepository
	patients    repository.PatientRepository
	specialists repository.SpecialistRepository
}

func NewProvisionService(
	accounts repository.AccountRepository,
	patients repository.PatientRepository,
	specialists repository.SpecialistRepository,
) *ProvisionService {
	return &ProvisionService{
		accounts:    accounts,
		patients:    patients,
		specialists: specialists,
	}
}

// CreateAccount registers a plain account with no clinic role.
func (s *ProvisionService) CreateAccount(input AccountInput) (*models.Account, error) {
	if err := validatePassword(input); err != nil {
		return nil, err
	}
	if err := s.validateIdentity(input); err != nil {
		return nil, err
	}

	account, err := s.buildAccount(input)
	if err != nil {
		return nil, err
	}
	if err := s.accounts.Create(account); err != nil {
		return nil, err
	}
	return account, nil
}

// CreateAdminAccount registers an account carrying the full admin flag
// set: is_admin, is_staff, is_superuser.
func (s *ProvisionService) CreateAdminAccount(input AccountInput) (*models.Account, error) {
	if err := validatePassword(input); err != nil {
		return nil, err
	}
	if err := s.validateIdentity(input); err != nil {
		return nil, err
	}

	account, err := s.buildAccount(input)
	if err != nil {
		return nil, err
	}
	account.Username = utils.Title(account.Username)
	account.IsAdmin = true
	account.IsStaff = true
	account.IsSuperuser = true

	if err := s.accounts.Create(account); err != nil {
		return nil, err
	}
	return account, nil
}

// ProvisionPatient validates the onboarding payload, creates the backing
// account with is_patient set, and persists the profile with its
// generated PAT code and derived age.
func (s *ProvisionService) ProvisionPatient(input PatientInput) (*models.Patient, error) {
	dateOfBirth, err := s.validateProfile(input.User, input.Phone, input.DateOfBirth, s.patients.PhoneExists)
	if err != nil {
		return nil, err
	}

	account, err := s.buildAccount(input.User)
	if err != nil {
		return nil, err
	}
	account.IsPatient = true

	patient := &models.Patient{
		Phone:       input.Phone,
		Photo:       input.Photo,
		Address:     input.Address,
		DateOfBirth: dateOfBirth,
		Age:         utils.Age(dateOfBirth),
	}
	if err := s.patients.CreateWithAccount(account, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

// ProvisionSpecialist is ProvisionPatient for the SPEC code sequence and
// the is_specialist flag.
func (s *ProvisionService) ProvisionSpecialist(input SpecialistInput) (*models.Specialist, error) {
	dateOfBirth, err := s.validateProfile(input.User, input.Phone, input.DateOfBirth, s.specialists.PhoneExists)
	if err != nil {
		return nil, err
	}

	account, err := s.buildAccount(input.User)
	if err != nil {
		return nil, err
	}
	account.IsSpecialist = true

	specialist := &models.Specialist{
		Phone:       input.Phone,
		Photo:       input.Photo,
		Address:     input.Address,
		DateOfBirth: dateOfBirth,
		Age:         utils.Age(dateOfBirth),
	}
	if err := s.specialists.CreateWithAccount(account, specialist); err != nil {
		return nil, err
	}
	return specialist, nil
}

// validateProfile runs the onboarding checks in their fixed order:
// password confirmation, password strength, phone format, date of birth,
// phone uniqueness, then account identity.
func (s *ProvisionService) validateProfile(
	user AccountInput,
	phone, dateOfBirth string,
	phoneExists func(string) (bool, error),
) (time.Time, error) {
	if err := validatePassword(user); err != nil {
		return time.Time{}, err
	}
	if !phonePattern.MatchString(phone) {
		return time.Time{}, validation.Single("phone", "Invalid Phone Number!")
	}

	parsed, err := time.Parse(dateOfBirthLayout, dateOfBirth)
	if err != nil {
		return time.Time{}, validation.Single("date_of_birth", "Invalid Date Of Birth!")
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !parsed.Before(today) {
		return time.Time{}, validation.Single("date_of_birth", "Invalid Date Of Birth!")
	}

	exists, err := phoneExists(phone)
	if err != nil {
		return time.Time{}, err
	}
	if exists {
		return time.Time{}, validation.Single("phone", "Phone already exists!")
	}

	if err := s.validateIdentity(user); err != nil {
		return time.Time{}, err
	}
	return parsed, nil
}

func validatePassword(input AccountInput) error {
	if input.Password != input.ConfirmPassword {
		return validation.Single("confirm_password", "Password Mismatch!")
	}
	if len(input.Password) < 8 {
		return validation.Single("password", "Password should have at least 8 characters!")
	}
	if !digitPattern.MatchString(input.Password) || !letterPattern.MatchString(input.Password) {
		return validation.Single("password", "Password should have both letters and digits!")
	}
	return nil
}

func (s *ProvisionService) validateIdentity(input AccountInput) error {
	if input.Email == "" || !strings.Contains(input.Email, "@") {
		return validation.Single("email", "Enter a valid Email!")
	}
	if input.Username == "" {
		return validation.Single("username", "Username is required!")
	}
	if input.FirstName == "" || input.LastName == "" {
		return validation.Single("first_name", "Both first and last names are required!")
	}

	exists, err := s.accounts.EmailExists(input.Email)
	if err != nil {
		return err
	}
	if exists {
		return validation.Single("email", "Email already exists!")
	}

	exists, err = s.accounts.UsernameExists(input.Username)
	if err != nil {
		return err
	}
	if exists {
		return validation.Single("username", "Username already exists!")
	}
	return nil
}

func (s *ProvisionService) buildAccount(input AccountInput) (*models.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &models.Account{
		Email:     input.Email,
		Username:  input.Username,
		FirstName: utils.Title(input.FirstName),
		LastName:  utils.Title(input.LastName),
		Password:  string(hash),
		IsActive:  true,
	}, nil
}
