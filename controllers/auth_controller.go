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

type IAuthController interface {
	Register(ctx *gin.Context)
	Login(ctx *gin.Context)
	Profile(ctx *gin.Context)
	Logout(ctx *gin.Context)
	ListUsers(ctx *gin.Context)
	SetAdmin(ctx *gin.Context)
}

type AuthController struct {
	service services.IAuthService
	log     logrus.FieldLogger
}

func NewAuthController(service services.IAuthService, log logrus.FieldLogger) IAuthController {
	return &AuthController{service: service, log: log}
}

func (c *AuthController) Register(ctx *gin.Context) {
	var input dto.RegisterInput
	if !bindJSON(ctx, &input) {
		return
	}

	user, err := c.service.Register(ctx.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			ctx.JSON(http.StatusBadRequest, gin.H{"detail": constants.ErrEmailRegistered})
			return
		}
		respondError(ctx, c.log, err, "")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUserResponse(*user))
}

func (c *AuthController) Login(ctx *gin.Context) {
	var input dto.LoginInput
	if !bindJSON(ctx, &input) {
		return
	}

	token, err := c.service.Login(ctx.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			ctx.JSON(http.StatusBadRequest, gin.H{"detail": constants.ErrInvalidCredentials})
			return
		}
		respondError(ctx, c.log, err, "")
		return
	}

	ctx.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken: token,
		TokenType:   constants.TokenTypeBearer,
	})
}

func (c *AuthController) Profile(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, dto.ProfileResponse{Email: user.Email, IsAdmin: user.IsAdmin})
}

func (c *AuthController) Logout(ctx *gin.Context) {
	tokenString := ctx.GetString(constants.ContextTokenKey)
	if tokenString == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"detail": constants.ErrNotAuthenticated})
		return
	}

	if err := c.service.Logout(ctx.Request.Context(), tokenString); err != nil {
		respondError(ctx, c.log, err, "")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": constants.MsgLoggedOut})
}

func (c *AuthController) ListUsers(ctx *gin.Context) {
	users, err := c.service.ListUsers(ctx.Request.Context())
	if err != nil {
		respondError(ctx, c.log, err, "")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUserResponses(users))
}

func (c *AuthController) SetAdmin(ctx *gin.Context) {
	userID, ok := parseID(ctx)
	if !ok {
		return
	}
	var input dto.SetAdminInput
	if !bindJSON(ctx, &input) {
		return
	}

	user, err := c.service.SetAdmin(ctx.Request.Context(), userID, *input.IsAdmin)
	if err != nil {
		respondError(ctx, c.log, err, constants.ErrUserNotFound)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUserResponse(*user))
}
