package controllers

import (
	"gin-tasktracker/constants"
	"gin-tasktracker/dto"
	"gin-tasktracker/services"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ITaskController interface {
	FindAll(ctx *gin.Context)
	FindByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type TaskController struct {
	service services.ITaskService
	log     logrus.FieldLogger
}

func NewTaskController(service services.ITaskService, log logrus.FieldLogger) ITaskController {
	return &TaskController{service: service, log: log}
}

func (c *TaskController) FindAll(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	var isDone *bool
	if raw, present := ctx.GetQuery("is_done"); present {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"detail": constants.ErrInvalidInput})
			return
		}
		isDone = &parsed
	}

	tasks, err := c.service.FindAll(ctx.Request.Context(), user.ID, isDone)
	if err != nil {
		respondError(ctx, c.log, err, "")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewTaskResponses(tasks))
}

func (c *TaskController) FindByID(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	taskID, ok := parseID(ctx)
	if !ok {
		return
	}

	task, err := c.service.FindByID(ctx.Request.Context(), taskID, user.ID)
	if err != nil {
		respondError(ctx, c.log, err, constants.ErrTaskNotFound)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewTaskResponse(*task))
}

func (c *TaskController) Create(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	var input dto.CreateTaskInput
	if !bindJSON(ctx, &input) {
		return
	}

	newTask, err := c.service.Create(ctx.Request.Context(), input, user.ID)
	if err != nil {
		respondError(ctx, c.log, err, "")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewTaskResponse(*newTask))
}

func (c *TaskController) Update(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	taskID, ok := parseID(ctx)
	if !ok {
		return
	}

	var input dto.UpdateTaskInput
	if !bindJSON(ctx, &input) {
		return
	}

	updatedTask, err := c.service.Update(ctx.Request.Context(), taskID, user.ID, input)
	if err != nil {
		respondError(ctx, c.log, err, constants.ErrTaskNotFound)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewTaskResponse(*updatedTask))
}

func (c *TaskController) Delete(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	taskID, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), taskID, user.ID); err != nil {
		respondError(ctx, c.log, err, constants.ErrTaskNotFound)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": constants.MsgTaskDeleted})
}
