package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hotelops/backoffice/src/dtos"
	"github.com/hotelops/backoffice/src/services"
)

type UnitController struct {
	service *services.UnitService
}

func NewUnitController(service *services.UnitService) *UnitController {
	return &UnitController{service: service}
}

// GetAllUnits handles GET requests to retrieve all unit records
func (c *UnitController) GetAllUnits(ctx *gin.Context) {
	status, err := queryInt(ctx, "status")
	if err != nil {
		respondError(ctx, err)
		return
	}
	units, err := c.service.GetAllUnits(ctx.Request.Context(), status)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, units)
}

// GetUnitByID handles GET requests to retrieve a unit record by ID
func (c *UnitController) GetUnitByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	unit, err := c.service.GetUnitByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, unit)
}

// CreateUnit handles POST requests to create a new unit record
func (c *UnitController) CreateUnit(ctx *gin.Context) {
	var req dtos.UnitRequest
	if !bindJSON(ctx, &req) {
		return
	}
	fillAudit(ctx, &req.AuditInput, true)
	unit, err := c.service.CreateUnit(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, unit)
}

// UpdateUnit handles PUT requests to update a unit record by ID
func (c *UnitController) UpdateUnit(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	var req dtos.UnitRequest
	if !bindJSON(ctx, &req) {
		return
	}
	fillAudit(ctx, &req.AuditInput, false)
	unit, err := c.service.UpdateUnit(ctx.Request.Context(), id, &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Unit updated successfully", "data": unit})
}

// DeleteUnit handles DELETE requests to delete a unit record by ID
func (c *UnitController) DeleteUnit(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	if err := c.service.DeleteUnit(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dtos.MessageResponse{Message: "Unit deleted successfully"})
}
