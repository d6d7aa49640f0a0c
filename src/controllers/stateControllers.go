package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hotelops/backoffice/src/dtos"
	"github.com/hotelops/backoffice/src/services"
)

type StateController struct {
	service *services.StateService
}

func NewStateController(service *services.StateService) *StateController {
	return &StateController{service: service}
}

// GetStates handles GET requests; ?country_id= narrows the list to one country
func (c *StateController) GetStates(ctx *gin.Context) {
	q, err := queryInts(ctx, "country_id", "status")
	if err != nil {
		respondError(ctx, err)
		return
	}
	states, err := c.service.ListStates(ctx.Request.Context(), dtos.GeoFilter{ParentID: q["country_id"], Status: q["status"]})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, states)
}

// GetStateByID handles GET requests to retrieve a state record by ID
func (c *StateController) GetStateByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	state, err := c.service.GetStateByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// CreateState handles POST requests to create a new state record
func (c *StateController) CreateState(ctx *gin.Context) {
	var req dtos.StateRequest
	if !bindJSON(ctx, &req) {
		return
	}
	fillAudit(ctx, &req.AuditInput, true)
	state, err := c.service.CreateState(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, state)
}

// UpdateState handles PUT requests to update a state record by ID
func (c *StateController) UpdateState(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	var req dtos.StateRequest
	if !bindJSON(ctx, &req) {
		return
	}
	fillAudit(ctx, &req.AuditInput, false)
	state, err := c.service.UpdateState(ctx.Request.Context(), id, &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "State updated successfully", "data": state})
}

// DeleteState handles DELETE requests to delete a state record by ID
func (c *StateController) DeleteState(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	if err := c.service.DeleteState(ctx.Request.Context(), id, cascadeFlag(ctx)); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dtos.MessageResponse{Message: "State deleted successfully"})
}
