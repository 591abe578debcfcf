package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clinicare/internal/services"
)

type AccountController struct {
	provision *services.ProvisionService
	auth      *services.AuthService
}

func NewAccountController(provision *services.ProvisionService, auth *services.AuthService) *AccountController {
	return &AccountController{provision: provision, auth: auth}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

func (ac *AccountController) CreateCustomUser(c *gin.Context) {
	var input services.AccountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	account, err := ac.provision.CreateAccount(input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Custom user created successfully!",
		"data":    account,
	})
}

func (ac *AccountController) CreateAdminUser(c *gin.Context) {
	var input services.AccountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	account, err := ac.provision.CreateAdminAccount(input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Admin user created successfully!",
		"data":    account,
	})
}

// LoginUser godoc
// @Summary Log in with email and password
// @Description Verify credentials and issue an access/refresh token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{} "Tokens and role flags"
// @Failure 401 {object} map[string]interface{} "Incorrect password"
// @Failure 404 {object} map[string]interface{} "Unknown email"
// @Router /user_login/ [post]
func (ac *AccountController) LoginUser(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	result, err := ac.auth.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	account := result.Account
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Login Successful!",
		"data": gin.H{
			"access":        result.AccessToken,
			"refresh":       result.RefreshToken,
			"user_id":       account.ID,
			"user_email":    account.Email,
			"is_admin":      account.IsAdmin,
			"is_specialist": account.IsSpecialist,
			"is_patient":    account.IsPatient,
			"is_superuser":  account.IsSuperuser,
		},
	})
}

func (ac *AccountController) RefreshToken(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	result, err := ac.auth.Refresh(c.Request.Context(), req.Refresh)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Token refreshed successfully",
		"data": gin.H{
			"access":  result.AccessToken,
			"refresh": result.RefreshToken,
		},
	})
}

func (ac *AccountController) LogoutUser(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if err := ac.auth.Logout(c.Request.Context(), req.Refresh); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Logged out successfully",
		"data":    nil,
	})
}
