package routes

import (
	"github.com/gin-gonic/gin"

	"clinicare/internal/controllers"
)

func RegisterProfileRoutes(router *gin.Engine, profileController *controllers.ProfileController) {
	router.POST("/create_patient/", profileController.CreatePatient)
	router.POST("/create_specialist/", profileController.CreateSpecialist)
}
