package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/hotelops/backoffice/src/controllers"
	"github.com/hotelops/backoffice/src/middleware"
	"github.com/hotelops/backoffice/src/services"
)

func SetupZonesRoutes(router *gin.Engine, service *services.ZoneService) {
	zoneController := controllers.NewZoneController(service)

	// Protected routes
	zone := router.Group("/zones")
	zone.Use(middleware.AuthMiddleware())
	{
		zone.GET("", zoneController.GetZones)
		zone.GET("/:id", zoneController.GetZoneByID)
		zone.POST("", zoneController.CreateZone)
		zone.PUT("/:id", zoneController.UpdateZone)
		zone.DELETE("/:id", zoneController.DeleteZone)
	}
}
