package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/hotelops/backoffice/src/controllers"
	"github.com/hotelops/backoffice/src/middleware"
	"github.com/hotelops/backoffice/src/services"
)

func SetupCountriesRoutes(router *gin.Engine, service *services.CountryService) {
	countryController := controllers.NewCountryController(service)

	// Protected routes
	country := router.Group("/countries")
	country.Use(middleware.AuthMiddleware())
	{
		country.GET("", countryController.GetAllCountries)
		country.GET("/:id", countryController.GetCountryByID)
		country.POST("", countryController.CreateCountry)
		country.PUT("/:id", countryController.UpdateCountry)
		country.DELETE("/:id", countryController.DeleteCountry)
	}
}
