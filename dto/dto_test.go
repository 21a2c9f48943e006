package dto

import (
	"errors"
	"gin-tasktracker/apperrors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *apperrors.ValidationError
	require.True(t, errors.As(err, &verr), "expected validation error, got %v", err)
	return verr.Fields
}

func ptr[T any](v T) *T { return &v }

func TestRegisterInput_Validate(t *testing.T) {
	assert.NoError(t, RegisterInput{Email: "a@x.com", Password: "pw123"}.Validate())

	fields := fieldsOf(t, RegisterInput{Email: "not-an-email", Password: ""}.Validate())
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")

	fields = fieldsOf(t, RegisterInput{Email: "a@x.com", Password: strings.Repeat("a", 73)}.Validate())
	assert.Equal(t, "must be at most 72 bytes", fields["password"])
}

func TestLoginInput_Validate(t *testing.T) {
	assert.NoError(t, LoginInput{Email: "a@x.com", Password: "x"}.Validate())

	fields := fieldsOf(t, LoginInput{}.Validate())
	assert.Len(t, fields, 2)
}

func TestSetAdminInput_Validate(t *testing.T) {
	assert.NoError(t, SetAdminInput{IsAdmin: ptr(false)}.Validate())
	assert.Contains(t, fieldsOf(t, SetAdminInput{}.Validate()), "is_admin")
}

func TestUpdateTaskInput_Validate(t *testing.T) {
	assert.NoError(t, UpdateTaskInput{}.Validate())
	assert.NoError(t, UpdateTaskInput{IsDone: ptr(true)}.Validate())
	assert.Contains(t, fieldsOf(t, UpdateTaskInput{Title: ptr("")}.Validate()), "title")
}

func TestCreateExpenseInput_Validate(t *testing.T) {
	assert.NoError(t, CreateExpenseInput{CategoryID: 1, Amount: 12.5}.Validate())

	fields := fieldsOf(t, CreateExpenseInput{Amount: -3}.Validate())
	assert.Contains(t, fields, "category_id")
	assert.Equal(t, "must be greater than zero", fields["amount"])
}

func TestUpdateExpenseInput_Validate(t *testing.T) {
	assert.NoError(t, UpdateExpenseInput{}.Validate())
	assert.NoError(t, UpdateExpenseInput{Amount: ptr(1.0)}.Validate())

	fields := fieldsOf(t, UpdateExpenseInput{Amount: ptr(0.0), CategoryID: ptr(uint(0))}.Validate())
	assert.Contains(t, fields, "amount")
	assert.Contains(t, fields, "category_id")
}
