package repositories

import (
	"context"
	"errors"
	"fmt"
	"gin-tasktracker/apperrors"
	"gin-tasktracker/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IExpenseRepository interface {
	FindAll(ctx context.Context, userID uint) ([]models.Expense, error)
	FindByID(ctx context.Context, expenseID uint, userID uint) (*models.Expense, error)
	Create(ctx context.Context, newExpense models.Expense) (*models.Expense, error)
	Update(ctx context.Context, updateExpense models.Expense) (*models.Expense, error)
	Delete(ctx context.Context, expenseID uint, userID uint) error
}

type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) IExpenseRepository {
	return &ExpenseRepository{db: db}
}

func expenseNotFound(expenseID uint) error {
	return fmt.Errorf("expense %d: %w", expenseID, apperrors.ErrNotFound)
}

// FindAll returns the user's expenses, newest first.
func (r *ExpenseRepository) FindAll(ctx context.Context, userID uint) ([]models.Expense, error) {
	var expenses []models.Expense
	result := r.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ?", userID).
		Order("date DESC").Order("id DESC").
		Find(&expenses)
	if result.Error != nil {
		return nil, result.Error
	}
	return expenses, nil
}

func (r *ExpenseRepository) FindByID(ctx context.Context, expenseID uint, userID uint) (*models.Expense, error) {
	var expense models.Expense
	result := r.db.WithContext(ctx).Preload("Category").First(&expense, "id = ? AND user_id = ?", expenseID, userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, expenseNotFound(expenseID)
		}
		return nil, result.Error
	}
	return &expense, nil
}

// Associations are omitted on write so CategoryID alone decides the
// category; the preloaded Category is never upserted.
func (r *ExpenseRepository) Create(ctx context.Context, newExpense models.Expense) (*models.Expense, error) {
	result := r.db.WithContext(ctx).Omit(clause.Associations).Create(&newExpense)
	if result.Error != nil {
		return nil, result.Error
	}
	return r.FindByID(ctx, newExpense.ID, newExpense.UserID)
}

func (r *ExpenseRepository) Update(ctx context.Context, updateExpense models.Expense) (*models.Expense, error) {
	result := r.db.WithContext(ctx).Omit(clause.Associations).Save(&updateExpense)
	if result.Error != nil {
		return nil, result.Error
	}
	return r.FindByID(ctx, updateExpense.ID, updateExpense.UserID)
}

func (r *ExpenseRepository) Delete(ctx context.Context, expenseID uint, userID uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Expense{}, "id = ? AND user_id = ?", expenseID, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return expenseNotFound(expenseID)
	}
	return nil
}
