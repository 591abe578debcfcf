package routes

import (
	"github.com/gin-gonic/gin"

	"clinicare/internal/auth"
	"clinicare/internal/controllers"
	"clinicare/internal/middleware"
)

func RegisterCatalogRoutes(router *gin.Engine, tokens *auth.TokenManager, catalogController *controllers.CatalogController) {
	adminRoutes := router.Group("/")
	adminRoutes.Use(middleware.AuthMiddleware(tokens), middleware.RequireAdmin())
	{
		adminRoutes.POST("/create_specialization/", catalogController.CreateSpecialization)
		adminRoutes.POST("/create_ailment/", catalogController.CreateAilment)
	}
}
