package routes

import (
	"github.com/gin-gonic/gin"

	"clinicare/internal/auth"
	"clinicare/internal/controllers"
	"clinicare/internal/middleware"
)

func RegisterClinicalRoutes(router *gin.Engine, tokens *auth.TokenManager, clinicalController *controllers.ClinicalController) {
	specialistRoutes := router.Group("/")
	specialistRoutes.Use(middleware.AuthMiddleware(tokens), middleware.RequireSpecialist())
	{
		specialistRoutes.POST("/create_report/", clinicalController.CreateReport)
		specialistRoutes.POST("/create_prescription/", clinicalController.CreatePrescription)
	}
}
