package services

import (
	"context"
	"errors"
	"gin-tasktracker/apperrors"
	"gin-tasktracker/dto"
	"gin-tasktracker/models"
	"gin-tasktracker/repositories"
	"time"
)

type IExpenseService interface {
	FindAll(ctx context.Context, userID uint) ([]models.Expense, error)
	Create(ctx context.Context, createExpenseInput dto.CreateExpenseInput, userID uint) (*models.Expense, error)
	Update(ctx context.Context, expenseID uint, userID uint, updateExpenseInput dto.UpdateExpenseInput) (*models.Expense, error)
	Delete(ctx context.Context, expenseID uint, userID uint) error
}

type ExpenseService struct {
	repository         repositories.IExpenseRepository
	categoryRepository repositories.ICategoryRepository
	now                func() time.Time
}

func NewExpenseService(repository repositories.IExpenseRepository, categoryRepository repositories.ICategoryRepository) IExpenseService {
	return &ExpenseService{
		repository:         repository,
		categoryRepository: categoryRepository,
		now:                time.Now,
	}
}

func (s *ExpenseService) FindAll(ctx context.Context, userID uint) ([]models.Expense, error) {
	return s.repository.FindAll(ctx, userID)
}

func (s *ExpenseService) Create(ctx context.Context, createExpenseInput dto.CreateExpenseInput, userID uint) (*models.Expense, error) {
	if err := s.checkCategory(ctx, createExpenseInput.CategoryID); err != nil {
		return nil, err
	}

	newExpense := models.Expense{
		Amount:      createExpenseInput.Amount,
		Description: createExpenseInput.Description,
		Date:        s.now().UTC(),
		CategoryID:  createExpenseInput.CategoryID,
		UserID:      userID,
	}
	return s.repository.Create(ctx, newExpense)
}

func (s *ExpenseService) Update(ctx context.Context, expenseID uint, userID uint, updateExpenseInput dto.UpdateExpenseInput) (*models.Expense, error) {
	targetExpense, err := s.repository.FindByID(ctx, expenseID, userID)
	if err != nil {
		return nil, err
	}

	if updateExpenseInput.CategoryID != nil {
		if err := s.checkCategory(ctx, *updateExpenseInput.CategoryID); err != nil {
			return nil, err
		}
		targetExpense.CategoryID = *updateExpenseInput.CategoryID
	}
	if updateExpenseInput.Amount != nil {
		targetExpense.Amount = *updateExpenseInput.Amount
	}
	if updateExpenseInput.Description != nil {
		targetExpense.Description = updateExpenseInput.Description
	}
	return s.repository.Update(ctx, *targetExpense)
}

func (s *ExpenseService) Delete(ctx context.Context, expenseID uint, userID uint) error {
	return s.repository.Delete(ctx, expenseID, userID)
}

// An unknown category is a problem with the request body, not a missing
// resource.
func (s *ExpenseService) checkCategory(ctx context.Context, categoryID uint) error {
	_, err := s.categoryRepository.FindByID(ctx, categoryID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.NewValidationError("category_id", "unknown category")
	}
	return err
}
