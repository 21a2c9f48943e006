package controllers

import (
	"gin-tasktracker/constants"
	"gin-tasktracker/dto"
	"gin-tasktracker/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type IExpenseController interface {
	FindAll(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type ExpenseController struct {
	service services.IExpenseService
	log     logrus.FieldLogger
}

func NewExpenseController(service services.IExpenseService, log logrus.FieldLogger) IExpenseController {
	return &ExpenseController{service: service, log: log}
}

func (c *ExpenseController) FindAll(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	expenses, err := c.service.FindAll(ctx.Request.Context(), user.ID)
	if err != nil {
		respondError(ctx, c.log, err, "")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewExpenseResponses(expenses))
}

func (c *ExpenseController) Create(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	var input dto.CreateExpenseInput
	if !bindJSON(ctx, &input) {
		return
	}

	newExpense, err := c.service.Create(ctx.Request.Context(), input, user.ID)
	if err != nil {
		respondError(ctx, c.log, err, "")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewExpenseResponse(*newExpense))
}

func (c *ExpenseController) Update(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	expenseID, ok := parseID(ctx)
	if !ok {
		return
	}

	var input dto.UpdateExpenseInput
	if !bindJSON(ctx, &input) {
		return
	}

	updatedExpense, err := c.service.Update(ctx.Request.Context(), expenseID, user.ID, input)
	if err != nil {
		respondError(ctx, c.log, err, constants.ErrExpenseNotFound)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewExpenseResponse(*updatedExpense))
}

func (c *ExpenseController) Delete(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	expenseID, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), expenseID, user.ID); err != nil {
		respondError(ctx, c.log, err, constants.ErrExpenseNotFound)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": constants.MsgExpenseDeleted})
}
