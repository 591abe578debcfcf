package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clinicare/internal/services"
)

type ProfileController struct {
	provision *services.ProvisionService
}

func NewProfileController(provision *services.ProvisionService) *ProfileController {
	return &ProfileController{provision: provision}
}

// CreatePatient godoc
// @Summary Register a patient
// @Description Create the patient account and profile with a generated PAT code and derived age
// @Tags profiles
// @Accept json
// @Produce json
// @Param patient body services.PatientInput true "Patient onboarding data"
// @Success 201 {object} map[string]interface{} "Patient created"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Router /create_patient/ [post]
func (pc *ProfileController) CreatePatient(c *gin.Context) {
	var input services.PatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	patient, err := pc.provision.ProvisionPatient(input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Patient Created Successfully!",
		"data":    patient,
	})
}

// CreateSpecialist godoc
// @Summary Register a specialist
// @Description Create the specialist account and profile with a generated SPEC code and derived age
// @Tags profiles
// @Accept json
// @Produce json
// @Param specialist body services.SpecialistInput true "Specialist onboarding data"
// @Success 201 {object} map[string]interface{} "Specialist created"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Router /create_specialist/ [post]
func (pc *ProfileController) CreateSpecialist(c *gin.Context) {
	var input services.SpecialistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	specialist, err := pc.provision.ProvisionSpecialist(input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Specialist Created!",
		"data":    specialist,
	})
}
