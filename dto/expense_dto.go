package dto

import (
	"gin-tasktracker/models"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateCategoryInput struct {
	Name string `json:"name"`
}

func (i CreateCategoryInput) Validate() error {
	return asValidationError(validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Required, validation.Length(1, 100)),
	))
}

type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func NewCategoryResponse(category models.Category) CategoryResponse {
	return CategoryResponse{ID: category.ID, Name: category.Name}
}

func NewCategoryResponses(categories []models.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		out = append(out, NewCategoryResponse(category))
	}
	return out
}

type CreateExpenseInput struct {
	CategoryID  uint    `json:"category_id"`
	Amount      float64 `json:"amount"`
	Description *string `json:"description"`
}

func (i CreateExpenseInput) Validate() error {
	return asValidationError(validation.ValidateStruct(&i,
		validation.Field(&i.CategoryID, validation.Required),
		validation.Field(&i.Amount, validation.Required, validation.By(positive)),
		validation.Field(&i.Description, validation.Length(0, 2000)),
	))
}

// UpdateExpenseInput is a patch: a nil field leaves the stored value unchanged.
type UpdateExpenseInput struct {
	CategoryID  *uint    `json:"category_id"`
	Amount      *float64 `json:"amount"`
	Description *string  `json:"description"`
}

func (i UpdateExpenseInput) Validate() error {
	return asValidationError(validation.ValidateStruct(&i,
		validation.Field(&i.CategoryID, validation.NilOrNotEmpty),
		validation.Field(&i.Amount, validation.By(positive)),
		validation.Field(&i.Description, validation.Length(0, 2000)),
	))
}

type ExpenseResponse struct {
	ID          uint             `json:"id"`
	Category    CategoryResponse `json:"category"`
	Amount      float64          `json:"amount"`
	Description *string          `json:"description"`
	Date        time.Time        `json:"date"`
}

func NewExpenseResponse(expense models.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          expense.ID,
		Category:    NewCategoryResponse(expense.Category),
		Amount:      expense.Amount,
		Description: expense.Description,
		Date:        expense.Date,
	}
}

func NewExpenseResponses(expenses []models.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(expenses))
	for _, expense := range expenses {
		out = append(out, NewExpenseResponse(expense))
	}
	return out
}
