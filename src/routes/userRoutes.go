package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/hotelops/backoffice/src/controllers"
	"github.com/hotelops/backoffice/src/middleware"
	"github.com/hotelops/backoffice/src/services"
)

func SetupUserRoutes(router *gin.Engine, service *services.UserService) {
	userController := controllers.NewUserController(service)

	// Public routes
	router.POST("/users/login", userController.AuthenticateUser)

	// Protected routes
	user := router.Group("/users")
	user.Use(middleware.AuthMiddleware())
	{
		user.GET("", userController.GetAllUsers)
		user.POST("/register", userController.CreateUser)
	}
}

func SetupHealthRoutes(router *gin.Engine, service *services.HealthService) {
	healthController := controllers.NewHealthController(service)

	router.GET("/health", healthController.GetHealth)
}
