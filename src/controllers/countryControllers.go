package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hotelops/backoffice/src/dtos"
	"github.com/hotelops/backoffice/src/services"
)

type CountryController struct {
	service *services.CountryService
}

func NewCountryController(service *services.CountryService) *CountryController {
	return &CountryController{service: service}
}

// GetAllCountries handles GET requests to retrieve all country records
func (c *CountryController) GetAllCountries(ctx *gin.Context) {
	status, err := queryInt(ctx, "status")
	if err != nil {
		respondError(ctx, err)
		return
	}
	countries, err := c.service.GetAllCountries(ctx.Request.Context(), status)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, countries)
}

// GetCountryByID handles GET requests to retrieve a country record by ID
func (c *CountryController) GetCountryByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	country, err := c.service.GetCountryByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, country)
}

// CreateCountry handles POST requests to create a new country record
func (c *CountryController) CreateCountry(ctx *gin.Context) {
	var req dtos.CountryRequest
	if !bindJSON(ctx, &req) {
		return
	}
	fillAudit(ctx, &req.AuditInput, true)
	country, err := c.service.CreateCountry(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, country)
}

// UpdateCountry handles PUT requests to update a country record by ID
func (c *CountryController) UpdateCountry(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	var req dtos.CountryRequest
	if !bindJSON(ctx, &req) {
		return
	}
	fillAudit(ctx, &req.AuditInput, false)
	country, err := c.service.UpdateCountry(ctx.Request.Context(), id, &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Country updated successfully", "data": country})
}

// DeleteCountry handles DELETE requests to delete a country record by ID
func (c *CountryController) DeleteCountry(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	if err := c.service.DeleteCountry(ctx.Request.Context(), id, cascadeFlag(ctx)); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dtos.MessageResponse{Message: "Country deleted successfully"})
}
