package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clinicare/internal/services"
)

type ClinicalController struct {
	clinical *services.ClinicalService
}

func NewClinicalController(clinical *services.ClinicalService) *ClinicalController {
	return &ClinicalController{clinical: clinical}
}

// CreateReport godoc
// @Summary Create a clinical report
// @Description Create a report authored by the authenticated specialist for a patient code
// @Tags clinical
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param report body services.ReportInput true "Report data"
// @Success 201 {object} map[string]interface{} "Report created"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 403 {object} map[string]interface{} "Not a specialist"
// @Router /create_report/ [post]
func (cc *ClinicalController) CreateReport(c *gin.Context) {
	// Author comes from the token, never from the payload
	accountID, exists := c.Get("account_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "Account ID not found in token",
		})
		return
	}

	var input services.ReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	report, err := cc.clinical.CreateReport(input, accountID.(uint))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Report Created Successfully!",
		"data":    report,
	})
}

// CreatePrescription godoc
// @Summary Create a prescription
// @Description Create a prescription authored by the authenticated specialist for a patient code
// @Tags clinical
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param prescription body services.PrescriptionInput true "Prescription data"
// @Success 201 {object} map[string]interface{} "Prescription created"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 403 {object} map[string]interface{} "Not a specialist"
// @Router /create_prescription/ [post]
func (cc *ClinicalController) CreatePrescription(c *gin.Context) {
	accountID, exists := c.Get("account_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "Account ID not found in token",
		})
		return
	}

	var input services.PrescriptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	prescription, err := cc.clinical.CreatePrescription(input, accountID.(uint))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Prescription created!",
		"data":    prescription,
	})
}
