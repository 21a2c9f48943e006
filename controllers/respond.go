package controllers

import (
	"errors"
	"gin-tasktracker/apperrors"
	"gin-tasktracker/constants"
	"gin-tasktracker/models"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type validatable interface {
	Validate() error
}

// bindJSON decodes the body into input and runs its validation rules.
// It writes the 400 response itself and reports whether the handler
// should continue.
func bindJSON(ctx *gin.Context, input validatable) bool {
	if err := ctx.ShouldBindJSON(input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"detail": constants.ErrInvalidInput})
		return false
	}
	if err := input.Validate(); err != nil {
		respondValidation(ctx, err)
		return false
	}
	return true
}

func respondValidation(ctx *gin.Context, err error) {
	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		ctx.JSON(http.StatusBadRequest, gin.H{"detail": constants.ErrInvalidInput, "fields": verr.Fields})
		return
	}
	ctx.JSON(http.StatusBadRequest, gin.H{"detail": constants.ErrInvalidInput})
}

func currentUser(ctx *gin.Context) (*models.User, bool) {
	user, exists := ctx.Get(constants.ContextUserKey)
	if !exists {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": constants.ErrNotAuthenticated})
		return nil, false
	}
	userModel, ok := user.(*models.User)
	if !ok {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": constants.ErrNotAuthenticated})
		return nil, false
	}
	return userModel, true
}

func parseID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"detail": constants.ErrInvalidID})
		return 0, false
	}
	return uint(id), true
}

// respondError maps a service error onto a status code. notFound is the
// body used for ErrNotFound on the resource the handler serves.
func respondError(ctx *gin.Context, log logrus.FieldLogger, err error, notFound string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		respondValidation(ctx, err)
	case errors.Is(err, apperrors.ErrNotFound) && notFound != "":
		ctx.JSON(http.StatusNotFound, gin.H{"detail": notFound})
	case errors.Is(err, apperrors.ErrUnauthorized):
		ctx.JSON(http.StatusUnauthorized, gin.H{"detail": constants.ErrNotAuthenticated})
	case errors.Is(err, apperrors.ErrForbidden):
		ctx.JSON(http.StatusForbidden, gin.H{"detail": constants.ErrNotEnoughPermissions})
	default:
		log.WithError(err).WithFields(logrus.Fields{
			constants.ContextRequestIDKey: ctx.GetString(constants.ContextRequestIDKey),
			"path":                        ctx.FullPath(),
		}).Error("Unexpected error")
		ctx.JSON(http.StatusInternalServerError, gin.H{"detail": constants.ErrUnexpected})
	}
}
