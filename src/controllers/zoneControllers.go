package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hotelops/backoffice/src/dtos"
	"github.com/hotelops/backoffice/src/services"
)

type ZoneController struct {
	service *services.ZoneService
}

func NewZoneController(service *services.ZoneService) *ZoneController {
	return &ZoneController{service: service}
}

// GetZones handles GET requests; ?district_id= narrows the list to one district
func (c *ZoneController) GetZones(ctx *gin.Context) {
	q, err := queryInts(ctx, "district_id", "status")
	if err != nil {
		respondError(ctx, err)
		return
	}
	zones, err := c.service.ListZones(ctx.Request.Context(), dtos.GeoFilter{ParentID: q["district_id"], Status: q["status"]})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, zones)
}

// GetZoneByID handles GET requests to retrieve a zone record by ID
func (c *ZoneController) GetZoneByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	zone, err := c.service.GetZoneByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, zone)
}

// CreateZone handles POST requests to create a new zone record
func (c *ZoneController) CreateZone(ctx *gin.Context) {
	var req dtos.ZoneRequest
	if !bindJSON(ctx, &req) {
		return
	}
	fillAudit(ctx, &req.AuditInput, true)
	zone, err := c.service.CreateZone(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, zone)
}

// UpdateZone handles PUT requests to update a zone record by ID
func (c *ZoneController) UpdateZone(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	var req dtos.ZoneRequest
	if !bindJSON(ctx, &req) {
		return
	}
	fillAudit(ctx, &req.AuditInput, false)
	zone, err := c.service.UpdateZone(ctx.Request.Context(), id, &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Zone updated successfully", "data": zone})
}

// DeleteZone handles DELETE requests to delete a zone record by ID
func (c *ZoneController) DeleteZone(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	if err := c.service.DeleteZone(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dtos.MessageResponse{Message: "Zone deleted successfully"})
}
