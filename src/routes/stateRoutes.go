package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/hotelops/backoffice/src/controllers"
	"github.com/hotelops/backoffice/src/middleware"
	"github.com/hotelops/backoffice/src/services"
)

func SetupStatesRoutes(router *gin.Engine, service *services.StateService) {
	stateController := controllers.NewStateController(service)

	// Protected routes
	state := router.Group("/states")
	state.Use(middleware.AuthMiddleware())
	{
		state.GET("", stateController.GetStates)
		state.GET("/:id", stateController.GetStateByID)
		state.POST("", stateController.CreateState)
		state.PUT("/:id", stateController.UpdateState)
		state.DELETE("/:id", stateController.DeleteState)
	}
}
