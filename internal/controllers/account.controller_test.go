package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"clinicare/internal/auth"
	"clinicare/internal/mocks"
	"clinicare/internal/models"
	"clinicare/internal/services"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func testTokenManager() *auth.TokenManager {
	return auth.NewTokenManager([]byte("test-secret-key"), 15*time.Minute, 24*time.Hour)
}

func setupAccountController(accountRepo *mocks.MockAccountRepository) *AccountController {
	provision := services.NewProvisionService(
		accountRepo,
		new(mocks.MockPatientRepository),
		new(mocks.MockSpecialistRepository),
	)
	authService := services.NewAuthService(accountRepo, testTokenManager(), nil)
	return NewAccountController(provision, authService)
}

func performJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLoginUser(t *testing.T) {
	testPassword := "password123"
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(*mocks.MockAccountRepository)
		expectedStatus int
		checkToken     bool
	}{
		{
			name: "successful login",
			requestBody: map[string]interface{}{
				"email":    "spec@example.com",
				"password": testPassword,
			},
			setupMocks: func(accountRepo *mocks.MockAccountRepository) {
				account := &models.Account{
					ID:           1,
					Email:        "spec@example.com",
					Password:     string(hash),
					IsSpecialist: true,
				}
				accountRepo.On("FindByEmail", "spec@example.com").Return(account, nil)
				accountRepo.On("UpdateLastLogin", uint(1), mock.Anything).Return(nil)
			},
			expectedStatus: http.StatusOK,
			checkToken:     true,
		},
		{
			name: "unknown email",
			requestBody: map[string]interface{}{
				"email":    "nobody@example.com",
				"password": testPassword,
			},
			setupMocks: func(accountRepo *mocks.MockAccountRepository) {
				accountRepo.On("FindByEmail", "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "incorrect password",
			requestBody: map[string]interface{}{
				"email":    "spec@example.com",
				"password": "wrongpassword",
			},
			setupMocks: func(accountRepo *mocks.MockAccountRepository) {
				account := &models.Account{
					ID:       1,
					Email:    "spec@example.com",
					Password: string(hash),
				}
				accountRepo.On("FindByEmail", "spec@example.com").Return(account, nil)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "missing password",
			requestBody: map[string]interface{}{
				"email": "spec@example.com",
			},
			setupMocks:     func(accountRepo *mocks.MockAccountRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accountRepo := new(mocks.MockAccountRepository)
			tt.setupMocks(accountRepo)
			controller := setupAccountController(accountRepo)

			router := setupTestRouter()
			router.POST("/user_login/", controller.LoginUser)

			w := performJSON(router, http.MethodPost, "/user_login/", tt.requestBody)
			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.checkToken {
				var response map[string]interface{}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				data := response["data"].(map[string]interface{})
				assert.NotEmpty(t, data["access"])
				assert.NotEmpty(t, data["refresh"])
				assert.Equal(t, true, data["is_specialist"])
				assert.Equal(t, false, data["is_admin"])
			}
		})
	}
}

func TestCreateCustomUser(t *testing.T) {
	accountRepo := new(mocks.MockAccountRepository)
	accountRepo.On("EmailExists", "john@example.com").Return(false, nil)
	accountRepo.On("UsernameExists", "johndoe").Return(false, nil)
	accountRepo.On("Create", mock.Anything).Return(nil)
	controller := setupAccountController(accountRepo)

	router := setupTestRouter()
	router.POST("/create_custom_user/", controller.CreateCustomUser)

	w := performJSON(router, http.MethodPost, "/create_custom_user/", map[string]interface{}{
		"first_name":       "john",
		"last_name":        "doe",
		"username":         "johndoe",
		"email":            "john@example.com",
		"password":         "password123",
		"confirm_password": "password123",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	accountRepo.AssertExpectations(t)
}

func TestCreateCustomUserValidationErrorShape(t *testing.T) {
	controller := setupAccountController(new(mocks.MockAccountRepository))

	router := setupTestRouter()
	router.POST("/create_custom_user/", controller.CreateCustomUser)

	w := performJSON(router, http.MethodPost, "/create_custom_user/", map[string]interface{}{
		"first_name":       "john",
		"last_name":        "doe",
		"username":         "johndoe",
		"email":            "john@example.com",
		"password":         "password123",
		"confirm_password": "mismatch123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	fields := response["errors"].(map[string]interface{})
	assert.Equal(t, "Password Mismatch!", fields["confirm_password"])
}
