package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hotelops/backoffice/src/dtos"
	"github.com/hotelops/backoffice/src/services"
)

type AgentController struct {
	service *services.AgentService
}

func NewAgentController(service *services.AgentService) *AgentController {
	return &AgentController{service: service}
}

// GetAllAgents handles GET requests filtered by any geo level and status
func (c *AgentController) GetAllAgents(ctx *gin.Context) {
	q, err := queryInts(ctx, "country_id", "state_id", "district_id", "zone_id", "status")
	if err != nil {
		respondError(ctx, err)
		return
	}
	agents, err := c.service.GetAllAgents(ctx.Request.Context(), dtos.AgentFilter{
		CountryID:  q["country_id"],
		StateID:    q["state_id"],
		DistrictID: q["district_id"],
		ZoneID:     q["zone_id"],
		Status:     q["status"],
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, agents)
}

// GetAgentByID handles GET requests to retrieve an agent record by ID
func (c *AgentController) GetAgentByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	agent, err := c.service.GetAgentByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, agent)
}

// CreateAgent handles POST requests to create a new agent record
func (c *AgentController) CreateAgent(ctx *gin.Context) {
	var req dtos.AgentRequest
	if !bindJSON(ctx, &req) {
		return
	}
	fillAudit(ctx, &req.AuditInput, true)
	agent, err := c.service.CreateAgent(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, agent)
}

// UpdateAgent handles PUT requests to update an agent record by ID
func (c *AgentController) UpdateAgent(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	var req dtos.AgentRequest
	if !bindJSON(ctx, &req) {
		return
	}
	fillAudit(ctx, &req.AuditInput, false)
	agent, err := c.service.UpdateAgent(ctx.Request.Context(), id, &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Agent updated successfully", "data": agent})
}

// DeleteAgent handles DELETE requests to delete an agent record by ID
func (c *AgentController) DeleteAgent(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	if err := c.service.DeleteAgent(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dtos.MessageResponse{Message: "Agent deleted successfully"})
}
