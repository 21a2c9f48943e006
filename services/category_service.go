package services

import (
	"context"
	"errors"
	"fmt"
	"gin-tasktracker/apperrors"
	"gin-tasktracker/models"
	"gin-tasktracker/repositories"
)

type ICategoryService interface {
	FindAll(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, name string) (*models.Category, error)
}

type CategoryService struct {
	repository repositories.ICategoryRepository
}

func NewCategoryService(repository repositories.ICategoryRepository) ICategoryService {
	return &CategoryService{repository: repository}
}

func (s *CategoryService) FindAll(ctx context.Context) ([]models.Category, error) {
	return s.repository.FindAll(ctx)
}

func (s *CategoryService) Create(ctx context.Context, name string) (*models.Category, error) {
	_, err := s.repository.FindByName(ctx, name)
	if err == nil {
		return nil, fmt.Errorf("category %q: %w", name, apperrors.ErrConflict)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	return s.repository.Create(ctx, models.Category{Name: name})
}
