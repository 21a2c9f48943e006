package repositories

import (
	"context"
	"errors"
	"gin-tasktracker/apperrors"
	"gin-tasktracker/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRepository_UniqueNames(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository(newTestDB(t))

	food, err := repo.Create(ctx, models.Category{Name: "Food"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, models.Category{Name: "Bills"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, models.Category{Name: "Food"})
	assert.True(t, errors.Is(err, apperrors.ErrConflict))

	found, err := repo.FindByName(ctx, "Food")
	require.NoError(t, err)
	assert.Equal(t, food.ID, found.ID)

	_, err = repo.FindByID(ctx, 999)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Bills", all[0].Name)
}

func TestExpenseRepository_NewestFirstWithCategory(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	categories := NewCategoryRepository(db)
	repo := NewExpenseRepository(db)

	food, err := categories.Create(ctx, models.Category{Name: "Food"})
	require.NoError(t, err)

	now := time.Now().UTC()
	older, err := repo.Create(ctx, models.Expense{UserID: 1, CategoryID: food.ID, Amount: 5, Date: now.Add(-time.Hour)})
	require.NoError(t, err)
	newer, err := repo.Create(ctx, models.Expense{UserID: 1, CategoryID: food.ID, Amount: 7, Date: now})
	require.NoError(t, err)
	assert.Equal(t, "Food", newer.Category.Name)

	_, err = repo.Create(ctx, models.Expense{UserID: 2, CategoryID: food.ID, Amount: 1, Date: now})
	require.NoError(t, err)

	expenses, err := repo.FindAll(ctx, 1)
	require.NoError(t, err)
	require.Len(t, expenses, 2)
	assert.Equal(t, newer.ID, expenses[0].ID)
	assert.Equal(t, older.ID, expenses[1].ID)
	assert.Equal(t, "Food", expenses[1].Category.Name)
}

func TestExpenseRepository_UpdateChangesCategory(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	categories := NewCategoryRepository(db)
	repo := NewExpenseRepository(db)

	food, err := categories.Create(ctx, models.Category{Name: "Food"})
	require.NoError(t, err)
	bills, err := categories.Create(ctx, models.Category{Name: "Bills"})
	require.NoError(t, err)

	expense, err := repo.Create(ctx, models.Expense{UserID: 1, CategoryID: food.ID, Amount: 5, Date: time.Now()})
	require.NoError(t, err)

	expense.CategoryID = bills.ID
	updated, err := repo.Update(ctx, *expense)
	require.NoError(t, err)
	assert.Equal(t, bills.ID, updated.CategoryID)
	assert.Equal(t, "Bills", updated.Category.Name)

	require.NoError(t, repo.Delete(ctx, expense.ID, 1))
	err = repo.Delete(ctx, expense.ID, 1)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}
