package services

import (
	"context"
	"gin-tasktracker/dto"
	"gin-tasktracker/models"
	"gin-tasktracker/repositories"
)

type ITaskService interface {
	FindAll(ctx context.Context, userID uint, isDone *bool) ([]models.Task, error)
	FindByID(ctx context.Context, taskID uint, userID uint) (*models.Task, error)
	Create(ctx context.Context, createTaskInput dto.CreateTaskInput, userID uint) (*models.Task, error)
	Update(ctx context.Context, taskID uint, userID uint, updateTaskInput dto.UpdateTaskInput) (*models.Task, error)
	Delete(ctx context.Context, taskID uint, userID uint) error
}

type TaskService struct {
	repository repositories.ITaskRepository
}

func NewTaskService(repository repositories.ITaskRepository) ITaskService {
	return &TaskService{repository: repository}
}

func (s *TaskService) FindAll(ctx context.Context, userID uint, isDone *bool) ([]models.Task, error) {
	return s.repository.FindAll(ctx, userID, isDone)
}

func (s *TaskService) FindByID(ctx context.Context, taskID uint, userID uint) (*models.Task, error) {
	return s.repository.FindByID(ctx, taskID, userID)
}

func (s *TaskService) Create(ctx context.Context, createTaskInput dto.CreateTaskInput, userID uint) (*models.Task, error) {
	newTask := models.Task{
		Title:       createTaskInput.Title,
		Description: createTaskInput.Description,
		IsDone:      false,
		UserID:      userID,
	}
	return s.repository.Create(ctx, newTask)
}

func (s *TaskService) Update(ctx context.Context, taskID uint, userID uint, updateTaskInput dto.UpdateTaskInput) (*models.Task, error) {
	targetTask, err := s.FindByID(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}

	if updateTaskInput.Title != nil {
		targetTask.Title = *updateTaskInput.Title
	}
	if updateTaskInput.Description != nil {
		targetTask.Description = updateTaskInput.Description
	}
	if updateTaskInput.IsDone != nil {
		targetTask.IsDone = *updateTaskInput.IsDone
	}
	return s.repository.Update(ctx, *targetTask)
}

func (s *TaskService) Delete(ctx context.Context, taskID uint, userID uint) error {
	return s.repository.Delete(ctx, taskID, userID)
}
