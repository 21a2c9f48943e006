package dto

import (
	"errors"
	"fmt"
	"gin-tasktracker/apperrors"

	validation "github.com/go-ozzo/ozzo-validation"
)

// asValidationError converts ozzo field errors into the API's
// field-level validation error.
func asValidationError(err error) error {
	if err == nil {
		return nil
	}

	var errs validation.Errors
	if errors.As(err, &errs) {
		fields := make(map[string]string, len(errs))
		for field, fieldErr := range errs {
			fields[field] = fieldErr.Error()
		}
		return &apperrors.ValidationError{Fields: fields}
	}
	return err
}

func maxBytes(limit int) validation.RuleFunc {
	return func(value interface{}) error {
		value, isNil := validation.Indirect(value)
		if isNil {
			return nil
		}
		s, ok := value.(string)
		if !ok {
			return errors.New("must be a string")
		}
		if len(s) > limit {
			return fmt.Errorf("must be at most %d bytes", limit)
		}
		return nil
	}
}

func positive(value interface{}) error {
	value, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}
	f, ok := value.(float64)
	if !ok {
		return errors.New("must be a number")
	}
	if f <= 0 {
		return errors.New("must be greater than zero")
	}
	return nil
}
