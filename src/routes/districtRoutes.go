package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/hotelops/backoffice/src/controllers"
	"github.com/hotelops/backoffice/src/middleware"
	"github.com/hotelops/backoffice/src/services"
)

func SetupDistrictsRoutes(router *gin.Engine, service *services.DistrictService) {
	districtController := controllers.NewDistrictController(service)

	// Protected routes
	district := router.Group("/districts")
	district.Use(middleware.AuthMiddleware())
	{
		district.GET("", districtController.GetDistricts)
		district.GET("/:id", districtController.GetDistrictByID)
		district.POST("", districtController.CreateDistrict)
		district.PUT("/:id", districtController.UpdateDistrict)
		district.DELETE("/:id", districtController.DeleteDistrict)
	}
}
