package dto

import (
	"gin-tasktracker/models"
	"gin-tasktracker/security"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (i RegisterInput) Validate() error {
	return asValidationError(validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, validation.Length(3, 255), is.Email),
		validation.Field(&i.Password, validation.Required, validation.By(maxBytes(security.MaxPasswordBytes))),
	))
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (i LoginInput) Validate() error {
	return asValidationError(validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required),
		validation.Field(&i.Password, validation.Required),
	))
}

type SetAdminInput struct {
	IsAdmin *bool `json:"is_admin"`
}

func (i SetAdminInput) Validate() error {
	return asValidationError(validation.ValidateStruct(&i,
		validation.Field(&i.IsAdmin, validation.NotNil),
	))
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type UserResponse struct {
	ID      uint   `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

type ProfileResponse struct {
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

func NewUserResponse(user models.User) UserResponse {
	return UserResponse{ID: user.ID, Email: user.Email, IsAdmin: user.IsAdmin}
}

func NewUserResponses(users []models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, NewUserResponse(user))
	}
	return out
}
