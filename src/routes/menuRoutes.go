package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/hotelops/backoffice/src/controllers"
	"github.com/hotelops/backoffice/src/middleware"
	"github.com/hotelops/backoffice/src/services"
)

func SetupMenuRoutes(router *gin.Engine, reader *services.MenuService, writer *services.MenuAggregateWriter) {
	menuController := controllers.NewMenuController(reader, writer)

	// Protected routes
	menu := router.Group("/menumaster")
	menu.Use(middleware.AuthMiddleware())
	{
		menu.GET("", menuController.GetMenuItems)
		menu.GET("/summaries", menuController.GetMenuSummaries)
		menu.GET("/export", menuController.ExportMenu)
		menu.GET("/:id", menuController.GetMenuItemByID)
		menu.POST("", menuController.CreateMenuItem)
		menu.PUT("/:id", menuController.UpdateMenuItem)
		menu.DELETE("/:id", menuController.DeleteMenuItem)
	}
}
