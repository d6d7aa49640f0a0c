package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hotelops/backoffice/src/dtos"
	"github.com/hotelops/backoffice/src/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type MenuController struct {
	reader *services.MenuService
	writer *services.MenuAggregateWriter
}

func NewMenuController(reader *services.MenuService, writer *services.MenuAggregateWriter) *MenuController {
	return &MenuController{reader: reader, writer: writer}
}

func menuFilter(ctx *gin.Context) (dtos.MenuFilter, error) {
	q, err := queryInts(ctx, "category_id", "status")
	if err != nil {
		return dtos.MenuFilter{}, err
	}
	return dtos.MenuFilter{
		CategoryID: q["category_id"],
		Status:     q["status"],
		FoodType:   strings.TrimSpace(ctx.Query("food_type")),
		Search:     strings.TrimSpace(ctx.Query("search")),
	}, nil
}

// GetMenuItems handles GET requests and returns full aggregates
func (c *MenuController) GetMenuItems(ctx *gin.Context) {
	filter, err := menuFilter(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}
	items, err := c.reader.ListMenuItems(ctx.Request.Context(), filter)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// GetMenuSummaries handles GET requests for flat display rows
func (c *MenuController) GetMenuSummaries(ctx *gin.Context) {
	filter, err := menuFilter(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}
	rows, err := c.reader.ListMenuSummaries(ctx.Request.Context(), filter)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, rows)
}

// ExportMenu streams the filtered menu as an xlsx workbook
func (c *MenuController) ExportMenu(ctx *gin.Context) {
	filter, err := menuFilter(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}
	buf, err := c.reader.ExportMenu(ctx.Request.Context(), filter)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Header("Content-Disposition", `attachment; filename="menu.xlsx"`)
	ctx.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// GetMenuItemByID handles GET requests to retrieve one aggregate by ID
func (c *MenuController) GetMenuItemByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	item, err := c.reader.GetMenuItem(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, item)
}

// CreateMenuItem handles POST requests with the item, its variants and addon ids
func (c *MenuController) CreateMenuItem(ctx *gin.Context) {
	var req dtos.MenuItemRequest
	if !bindJSON(ctx, &req) {
		return
	}
	fillAudit(ctx, &req.AuditInput, true)
	item, err := c.writer.CreateMenuItem(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, item)
}

// UpdateMenuItem handles PUT requests carrying the full desired aggregate
func (c *MenuController) UpdateMenuItem(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	var req dtos.MenuItemRequest
	if !bindJSON(ctx, &req) {
		return
	}
	fillAudit(ctx, &req.AuditInput, false)
	item, err := c.writer.UpdateMenuItem(ctx.Request.Context(), id, &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Menu item updated successfully", "data": item})
}

// DeleteMenuItem handles DELETE requests to remove an aggregate by ID
func (c *MenuController) DeleteMenuItem(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	if err := c.writer.DeleteMenuItem(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dtos.MessageResponse{Message: "Menu item deleted successfully"})
}
