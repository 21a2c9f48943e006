package controllers

import (
	"errors"
	"gin-tasktracker/apperrors"
	"gin-tasktracker/constants"
	"gin-tasktracker/dto"
	"gin-tasktracker/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ICategoryController interface {
	FindAll(ctx *gin.Context)
	Create(ctx *gin.Context)
}

type CategoryController struct {
	service services.ICategoryService
	log     logrus.FieldLogger
}

func NewCategoryController(service services.ICategoryService, log logrus.FieldLogger) ICategoryController {
	return &CategoryController{service: service, log: log}
}

func (c *CategoryController) FindAll(ctx *gin.Context) {
	categories, err := c.service.FindAll(ctx.Request.Context())
	if err != nil {
		respondError(ctx, c.log, err, "")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewCategoryResponses(categories))
}

func (c *CategoryController) Create(ctx *gin.Context) {
	var input dto.CreateCategoryInput
	if !bindJSON(ctx, &input) {
		return
	}

	category, err := c.service.Create(ctx.Request.Context(), input.Name)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			ctx.JSON(http.StatusBadRequest, gin.H{"detail": constants.ErrCategoryExists})
			return
		}
		respondError(ctx, c.log, err, "")
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewCategoryResponse(*category))
}
