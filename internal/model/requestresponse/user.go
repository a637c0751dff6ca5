package requestresponse

import (
	"time"

	"github.com/google/uuid"
)

// SignUpRequest : тело запроса регистрации
type SignUpRequest struct {
	Username        string   `json:"username" example:"alice"`
	Email           string   `json:"email" example:"alice@example.com"`
	Password        string   `json:"password" example:"Secret1"`
	ConfirmPassword string   `json:"confirm_password" example:"Secret1"`
	Scopes          []string `json:"scopes" example:"user"`
}

// SignUpResponse : успешный ответ
type SignUpResponse struct {
	UserID   uuid.UUID `json:"user_id" example:"123e4567-e89b-12d3-a456-426614174000"`
	Username string    `json:"username" example:"alice"`
	Email    string    `json:"email" example:"alice@example.com"`
}

// ErrorDetail : детальная информация об ошибке
type ErrorDetail struct {
	Code int    `json:"code" example:"400"`
	Text string `json:"text" example:"username or email already exists"`
}

// ErrorResponse : стандартная структура ошибки
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type UpdateNameRequest struct {
	Username string `json:"username" example:"alice_travels"`
}

type UpdatePasswordRequest struct {
	Password        string `json:"password" example:"NewSecret2"`
	ConfirmPassword string `json:"confirm_password" example:"NewSecret2"`
}

type UpdateEmailRequest struct {
	Email string `json:"email" example:"alice@travel.example"`
}

type UpdatePhoneNumberRequest struct {
	PhoneNumber string `json:"phone_number" example:"+4915112345678"`
}

type UpdateDateOfBirthRequest struct {
	DateOfBirth string `json:"date_of_birth" example:"1990-10-01"`
}

// ProfileResponse : профиль текущего пользователя
type ProfileResponse struct {
	UserID            uuid.UUID  `json:"user_id"`
	Username          string     `json:"username"`
	Email             string     `json:"email"`
	IsActive          bool       `json:"is_active"`
	PhoneNumber       *string    `json:"phone_number"`
	DateOfBirth       *time.Time `json:"date_of_birth"`
	ProfilePictureURL string     `json:"profile_picture_url,omitempty"`
	Scopes            []string   `json:"scopes"`
}

type ProfilePictureResponse struct {
	ProfilePicture string `json:"profile_picture" example:"https://travel-images.s3.eu-central-1.amazonaws.com/123e4567-e89b-12d3-a456-426614174000"`
}
