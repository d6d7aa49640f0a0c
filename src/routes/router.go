package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/hotelops/backoffice/src/config"
	"github.com/hotelops/backoffice/src/logger"
	"github.com/hotelops/backoffice/src/middleware"
	"github.com/hotelops/backoffice/src/services"
	"gorm.io/gorm"
)

// NewRouter builds the engine with every service and route group wired.
func NewRouter(db *gorm.DB, cfg *config.Config, logg *logger.Logger) *gin.Engine {
	middleware.SetSecretKey(cfg.Auth.Secret)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(logg),
		middleware.SetupCORS(cfg.Server.CORSOrigins),
		middleware.QueryTimeout(cfg.DB.QueryTimeout),
	)

	// Services setup
	countryService := services.NewCountryService(db, logg)
	stateService := services.NewStateService(db, logg)
	districtService := services.NewDistrictService(db, logg)
	zoneService := services.NewZoneService(db, logg)
	categoryService := services.NewCategoryService(db)
	unitService := services.NewUnitService(db)
	addonService := services.NewAddonService(db, logg)
	menuService := services.NewMenuService(db)
	menuWriter := services.NewMenuAggregateWriter(db, logg)
	agentService := services.NewAgentService(db)
	selectionService := services.NewSelectionService(db)
	userService := services.NewUserService(db, cfg.Auth.TokenTTL)
	healthService := services.NewHealthService(db)

	// Routes setup
	SetupHealthRoutes(router, healthService)
	SetupUserRoutes(router, userService)
	SetupCountriesRoutes(router, countryService)
	SetupStatesRoutes(router, stateService)
	SetupDistrictsRoutes(router, districtService)
	SetupZonesRoutes(router, zoneService)
	SetupSelectionRoutes(router, selectionService)
	SetupCategoriesRoutes(router, categoryService)
	SetupUnitsRoutes(router, unitService)
	SetupAddonsRoutes(router, addonService)
	SetupMenuRoutes(router, menuService, menuWriter)
	SetupAgentsRoutes(router, agentService)

	return router
}
