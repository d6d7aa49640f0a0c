package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hotelops/backoffice/src/dtos"
	"github.com/hotelops/backoffice/src/services"
)

type AddonController struct {
	service *services.AddonService
}

func NewAddonController(service *services.AddonService) *AddonController {
	return &AddonController{service: service}
}

// GetAllAddons handles GET requests to retrieve all addon records
func (c *AddonController) GetAllAddons(ctx *gin.Context) {
	status, err := queryInt(ctx, "status")
	if err != nil {
		respondError(ctx, err)
		return
	}
	addons, err := c.service.GetAllAddons(ctx.Request.Context(), status)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, addons)
}

// GetAddonByID handles GET requests to retrieve an addon record by ID
func (c *AddonController) GetAddonByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	addon, err := c.service.GetAddonByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, addon)
}

// CreateAddon handles POST requests to create a new addon record
func (c *AddonController) CreateAddon(ctx *gin.Context) {
	var req dtos.AddonRequest
	if !bindJSON(ctx, &req) {
		return
	}
	fillAudit(ctx, &req.AuditInput, true)
	addon, err := c.service.CreateAddon(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, addon)
}

// UpdateAddon handles PUT requests to update an addon record by ID
func (c *AddonController) UpdateAddon(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	var req dtos.AddonRequest
	if !bindJSON(ctx, &req) {
		return
	}
	fillAudit(ctx, &req.AuditInput, false)
	addon, err := c.service.UpdateAddon(ctx.Request.Context(), id, &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Addon updated successfully", "data": addon})
}

// DeleteAddon handles DELETE requests. Menu links block the delete unless ?cascade=true.
func (c *AddonController) DeleteAddon(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	if err := c.service.DeleteAddon(ctx.Request.Context(), id, cascadeFlag(ctx)); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dtos.MessageResponse{Message: "Addon deleted successfully"})
}
