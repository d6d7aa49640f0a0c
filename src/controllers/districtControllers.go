package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hotelops/backoffice/src/dtos"
	"github.com/hotelops/backoffice/src/services"
)

type DistrictController struct {
	service *services.DistrictService
}

func NewDistrictController(service *services.DistrictService) *DistrictController {
	return &DistrictController{service: service}
}

// GetDistricts handles GET requests; ?state_id= narrows the list to one state
func (c *DistrictController) GetDistricts(ctx *gin.Context) {
	q, err := queryInts(ctx, "state_id", "status")
	if err != nil {
		respondError(ctx, err)
		return
	}
	districts, err := c.service.ListDistricts(ctx.Request.Context(), dtos.GeoFilter{ParentID: q["state_id"], Status: q["status"]})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, districts)
}

// GetDistrictByID handles GET requests to retrieve a district record by ID
func (c *DistrictController) GetDistrictByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	district, err := c.service.GetDistrictByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, district)
}

// CreateDistrict handles POST requests to create a new district record
func (c *DistrictController) CreateDistrict(ctx *gin.Context) {
	var req dtos.DistrictRequest
	if !bindJSON(ctx, &req) {
		return
	}
	fillAudit(ctx, &req.AuditInput, true)
	district, err := c.service.CreateDistrict(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, district)
}

// UpdateDistrict handles PUT requests to update a district record by ID
func (c *DistrictController) UpdateDistrict(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	var req dtos.DistrictRequest
	if !bindJSON(ctx, &req) {
		return
	}
	fillAudit(ctx, &req.AuditInput, false)
	district, err := c.service.UpdateDistrict(ctx.Request.Context(), id, &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "District updated successfully", "data": district})
}

// DeleteDistrict handles DELETE requests to delete a district record by ID
func (c *DistrictController) DeleteDistrict(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	if err := c.service.DeleteDistrict(ctx.Request.Context(), id, cascadeFlag(ctx)); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dtos.MessageResponse{Message: "District deleted successfully"})
}
