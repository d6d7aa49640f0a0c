package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/hotelops/backoffice/src/controllers"
	"github.com/hotelops/backoffice/src/middleware"
	"github.com/hotelops/backoffice/src/services"
)

func SetupAgentsRoutes(router *gin.Engine, service *services.AgentService) {
	agentController := controllers.NewAgentController(service)

	// Protected routes
	agent := router.Group("/agents")
	agent.Use(middleware.AuthMiddleware())
	{
		agent.GET("", agentController.GetAllAgents)
		agent.GET("/:id", agentController.GetAgentByID)
		agent.POST("", agentController.CreateAgent)
		agent.PUT("/:id", agentController.UpdateAgent)
		agent.DELETE("/:id", agentController.DeleteAgent)
	}
}

func SetupSelectionRoutes(router *gin.Engine, service *services.SelectionService) {
	selectionController := controllers.NewSelectionController(service)

	geo := router.Group("/geo")
	geo.Use(middleware.AuthMiddleware())
	{
		geo.POST("/selection/resolve", selectionController.ResolveSelection)
	}
}
