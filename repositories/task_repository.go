package repositories

import (
	"context"
	"errors"
	"fmt"
	"gin-tasktracker/apperrors"
	"gin-tasktracker/models"

	"gorm.io/gorm"
)

type ITaskRepository interface {
	FindAll(ctx context.Context, userID uint, isDone *bool) ([]models.Task, error)
	FindByID(ctx context.Context, taskID uint, userID uint) (*models.Task, error)
	Create(ctx context.Context, newTask models.Task) (*models.Task, error)
	Update(ctx context.Context, updateTask models.Task) (*models.Task, error)
	Delete(ctx context.Context, taskID uint, userID uint) error
}

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) ITaskRepository {
	return &TaskRepository{db: db}
}

func taskNotFound(taskID uint) error {
	return fmt.Errorf("task %d: %w", taskID, apperrors.ErrNotFound)
}

func (r *TaskRepository) FindAll(ctx context.Context, userID uint, isDone *bool) ([]models.Task, error) {
	var tasks []models.Task
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if isDone != nil {
		query = query.Where("is_done = ?", *isDone)
	}
	result := query.Order("id").Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, taskID uint, userID uint) (*models.Task, error) {
	var task models.Task
	result := r.db.WithContext(ctx).First(&task, "id = ? AND user_id = ?", taskID, userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, taskNotFound(taskID)
		}
		return nil, result.Error
	}
	return &task, nil
}

func (r *TaskRepository) Create(ctx context.Context, newTask models.Task) (*models.Task, error) {
	result := r.db.WithContext(ctx).Create(&newTask)
	if result.Error != nil {
		return nil, result.Error
	}
	return &newTask, nil
}

func (r *TaskRepository) Update(ctx context.Context, updateTask models.Task) (*models.Task, error) {
	result := r.db.WithContext(ctx).Save(&updateTask)
	if result.Error != nil {
		return nil, result.Error
	}
	return &updateTask, nil
}

func (r *TaskRepository) Delete(ctx context.Context, taskID uint, userID uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Task{}, "id = ? AND user_id = ?", taskID, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return taskNotFound(taskID)
	}
	return nil
}
