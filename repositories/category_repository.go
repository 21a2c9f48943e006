package repositories

import (
	"context"
	"errors"
	"fmt"
	"gin-tasktracker/apperrors"
	"gin-tasktracker/models"

	"gorm.io/gorm"
)

type ICategoryRepository interface {
	FindAll(ctx context.Context) ([]models.Category, error)
	FindByID(ctx context.Context, categoryID uint) (*models.Category, error)
	FindByName(ctx context.Context, name string) (*models.Category, error)
	Create(ctx context.Context, newCategory models.Category) (*models.Category, error)
}

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) ICategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	result := r.db.WithContext(ctx).Order("name").Find(&categories)
	if result.Error != nil {
		return nil, result.Error
	}
	return categories, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, categoryID uint) (*models.Category, error) {
	var category models.Category
	result := r.db.WithContext(ctx).First(&category, categoryID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category %d: %w", categoryID, apperrors.ErrNotFound)
		}
		return nil, result.Error
	}
	return &category, nil
}

func (r *CategoryRepository) FindByName(ctx context.Context, name string) (*models.Category, error) {
	var category models.Category
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&category)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category %q: %w", name, apperrors.ErrNotFound)
		}
		return nil, result.Error
	}
	return &category, nil
}

func (r *CategoryRepository) Create(ctx context.Context, newCategory models.Category) (*models.Category, error) {
	result := r.db.WithContext(ctx).Create(&newCategory)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("category %q: %w", newCategory.Name, apperrors.ErrConflict)
		}
		return nil, result.Error
	}
	return &newCategory, nil
}
