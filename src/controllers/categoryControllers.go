package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hotelops/backoffice/src/dtos"
	"github.com/hotelops/backoffice/src/services"
)

type CategoryController struct {
	service *services.CategoryService
}

func NewCategoryController(service *services.CategoryService) *CategoryController {
	return &CategoryController{service: service}
}

// GetAllCategories handles GET requests to retrieve all category records
func (c *CategoryController) GetAllCategories(ctx *gin.Context) {
	status, err := queryInt(ctx, "status")
	if err != nil {
		respondError(ctx, err)
		return
	}
	categories, err := c.service.GetAllCategories(ctx.Request.Context(), status)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, categories)
}

// GetCategoryByID handles GET requests to retrieve a category record by ID
func (c *CategoryController) GetCategoryByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	category, err := c.service.GetCategoryByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, category)
}

// CreateCategory handles POST requests to create a new category record
func (c *CategoryController) CreateCategory(ctx *gin.Context) {
	var req dtos.CategoryRequest
	if !bindJSON(ctx, &req) {
		return
	}
	fillAudit(ctx, &req.AuditInput, true)
	category, err := c.service.CreateCategory(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, category)
}

// UpdateCategory handles PUT requests to update a category record by ID
func (c *CategoryController) UpdateCategory(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	var req dtos.CategoryRequest
	if !bindJSON(ctx, &req) {
		return
	}
	fillAudit(ctx, &req.AuditInput, false)
	category, err := c.service.UpdateCategory(ctx.Request.Context(), id, &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Category updated successfully", "data": category})
}

// DeleteCategory handles DELETE requests to delete a category record by ID
func (c *CategoryController) DeleteCategory(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	if err := c.service.DeleteCategory(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dtos.MessageResponse{Message: "Category deleted successfully"})
}
