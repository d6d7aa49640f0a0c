package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/hotelops/backoffice/src/controllers"
	"github.com/hotelops/backoffice/src/middleware"
	"github.com/hotelops/backoffice/src/services"
)

func SetupCategoriesRoutes(router *gin.Engine, service *services.CategoryService) {
	categoryController := controllers.NewCategoryController(service)

	// Protected routes
	category := router.Group("/categories")
	category.Use(middleware.AuthMiddleware())
	{
		category.GET("", categoryController.GetAllCategories)
		category.GET("/:id", categoryController.GetCategoryByID)
		category.POST("", categoryController.CreateCategory)
		category.PUT("/:id", categoryController.UpdateCategory)
		category.DELETE("/:id", categoryController.DeleteCategory)
	}
}

func SetupUnitsRoutes(router *gin.Engine, service *services.UnitService) {
	unitController := controllers.NewUnitController(service)

	// Protected routes
	unit := router.Group("/units")
	unit.Use(middleware.AuthMiddleware())
	{
		unit.GET("", unitController.GetAllUnits)
		unit.GET("/:id", unitController.GetUnitByID)
		unit.POST("", unitController.CreateUnit)
		unit.PUT("/:id", unitController.UpdateUnit)
		unit.DELETE("/:id", unitController.DeleteUnit)
	}
}

func SetupAddonsRoutes(router *gin.Engine, service *services.AddonService) {
	addonController := controllers.NewAddonController(service)

	// Protected routes
	addon := router.Group("/addons")
	addon.Use(middleware.AuthMiddleware())
	{
		addon.GET("", addonController.GetAllAddons)
		addon.GET("/:id", addonController.GetAddonByID)
		addon.POST("", addonController.CreateAddon)
		addon.PUT("/:id", addonController.UpdateAddon)
		addon.DELETE("/:id", addonController.DeleteAddon)
	}
}
