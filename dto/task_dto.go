package dto

import (
	"gin-tasktracker/models"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateTaskInput struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

func (i CreateTaskInput) Validate() error {
	return asValidationError(validation.ValidateStruct(&i,
		validation.Field(&i.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&i.Description, validation.Length(0, 2000)),
	))
}

// UpdateTaskInput is a patch: a nil field leaves the stored value unchanged.
type UpdateTaskInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	IsDone      *bool   `json:"is_done"`
}

func (i UpdateTaskInput) Validate() error {
	return asValidationError(validation.ValidateStruct(&i,
		validation.Field(&i.Title, validation.NilOrNotEmpty, validation.Length(1, 255)),
		validation.Field(&i.Description, validation.Length(0, 2000)),
	))
}

type TaskResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	IsDone      bool      `json:"is_done"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewTaskResponse(task models.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		IsDone:      task.IsDone,
		CreatedAt:   task.CreatedAt,
	}
}

func NewTaskResponses(tasks []models.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, NewTaskResponse(task))
	}
	return out
}
