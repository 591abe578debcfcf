package routes

import (
	"github.com/gin-gonic/gin"

	"clinicare/internal/controllers"
)

func RegisterAccountRoutes(router *gin.Engine, accountController *controllers.AccountController) {
	router.POST("/create_custom_user/", accountController.CreateCustomUser)
	router.POST("/create_admin_user/", accountController.CreateAdminUser)
	router.POST("/user_login/", accountController.LoginUser)
	router.POST("/token_refresh/", accountController.RefreshToken)
	router.POST("/user_logout/", accountController.LogoutUser)
}
