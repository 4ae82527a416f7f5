package dto

import "ajussi_backend/internal/models"

type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	DisplayName string `json:"display_name" validate:"required,notblank"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	AccessToken string          `json:"access_token"`
	UserID      string          `json:"user_id"`
	Role        models.UserRole `json:"role"`
	DisplayName string          `json:"display_name"`
}
