package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hotelops/backoffice/src/dtos"
	"github.com/hotelops/backoffice/src/services"
)

type SelectionController struct {
	service *services.SelectionService
}

func NewSelectionController(service *services.SelectionService) *SelectionController {
	return &SelectionController{service: service}
}

// ResolveSelection handles POST requests describing one change to a geo selection
func (c *SelectionController) ResolveSelection(ctx *gin.Context) {
	var req dtos.ResolveSelectionRequest
	if !bindJSON(ctx, &req) {
		return
	}
	resp, err := c.service.ResolveSelection(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
