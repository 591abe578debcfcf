package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"clinicare/internal/services"
)

type CatalogController struct {
	catalog *services.CatalogService
}

func NewCatalogController(catalog *services.CatalogService) *CatalogController {
	return &CatalogController{catalog: catalog}
}

func (cc *CatalogController) CreateSpecialization(c *gin.Context) {
	var input services.CatalogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	specialization, err := cc.catalog.CreateSpecialization(input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": fmt.Sprintf("Specialization %q created!", specialization.Name),
		"data":    specialization,
	})
}

func (cc *CatalogController) CreateAilment(c *gin.Context) {
	var input services.CatalogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	ailment, err := cc.catalog.CreateAilment(input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Ailment Created!",
		"data":    ailment,
	})
}
