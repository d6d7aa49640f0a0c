package services

import (
	"context"
	"strings"

	"github.com/hotelops/backoffice/src/apperrors"
	"github.com/hotelops/backoffice/src/dtos"
	"github.com/hotelops/backoffice/src/models"
	"gorm.io/gorm"
)

type CategoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new instance of CategoryService
func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// GetAllCategories retrieves every category, optionally restricted to one status
func (s *CategoryService) GetAllCategories(ctx context.Context, status *int) ([]models.CategoryModel, error) {
	categories := []models.CategoryModel{}
	q := applyStatusFilter(s.db.WithContext(ctx), "status", status)
	if err := q.Order("name, id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GetCategoryByID retrieves a Category record by ID
func (s *CategoryService) GetCategoryByID(ctx context.Context, id int) (*models.CategoryModel, error) {
	return firstByID[models.CategoryModel](s.db.WithContext(ctx), id, "category")
}

// CreateCategory creates a new Category record in the database
func (s *CategoryService) CreateCategory(ctx context.Context, req *dtos.CategoryRequest) (*models.CategoryModel, error) {
	normalizeCategoryRequest(req)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	category := models.CategoryModel{
		Name:        req.Name,
		Description: req.Description,
		Status:      statusOrDefault(req.Status),
		Audit:       models.Audit{CreatedByID: req.CreatedByID, UpdatedByID: req.CreatedByID},
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureUnique(tx, &models.CategoryModel{}, "name", req.Name, 0, nil); err != nil {
			return err
		}
		return tx.Create(&category).Error
	})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return &category, nil
}

// UpdateCategory updates an existing Category record
func (s *CategoryService) UpdateCategory(ctx context.Context, id int, req *dtos.CategoryRequest) (*models.CategoryModel, error) {
	normalizeCategoryRequest(req)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	var category *models.CategoryModel
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if category, err = firstByID[models.CategoryModel](tx, id, "category"); err != nil {
			return err
		}
		if err := ensureUnique(tx, &models.CategoryModel{}, "name", req.Name, id, nil); err != nil {
			return err
		}
		category.Name = req.Name
		category.Description = req.Description
		if req.Status != nil {
			category.Status = *req.Status
		}
		category.UpdatedByID = req.UpdatedByID
		return tx.Save(category).Error
	})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return category, nil
}

// DeleteCategory deletes a Category that no menu item uses
func (s *CategoryService) DeleteCategory(ctx context.Context, id int) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := firstByID[models.CategoryModel](tx, id, "category"); err != nil {
			return err
		}
		var n int64
		if err := tx.Model(&models.MenuItemModel{}).Where("categories_id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return apperrors.Conflict("category %d is used by %d menu item(s)", id, n)
		}
		return tx.Delete(&models.CategoryModel{}, id).Error
	})
	return apperrors.MapError(err)
}

func normalizeCategoryRequest(req *dtos.CategoryRequest) {
	req.Name = strings.TrimSpace(req.Name)
	req.Description = strings.TrimSpace(req.Description)
}
