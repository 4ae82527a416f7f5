package dto

import (
	"time"

	"ajussi_backend/internal/models"
)

type CreateApplicationRequest struct {
	Title      string   `json:"title" validate:"required,notblank"`
	Intro      string   `json:"intro"`
	City       string   `json:"city" validate:"required,notblank"`
	Categories []string `json:"categories" validate:"required,min=1"`
	HourlyRate int      `json:"hourly_rate" validate:"gt=0"`
	ChatLink   string   `json:"chat_link"`
}

type DecideApplicationRequest struct {
	Status string `json:"status" validate:"required"`
}

type ApplicationResponse struct {
	ID         string                   `json:"id"`
	UserID     string                   `json:"user_id"`
	Title      string                   `json:"title"`
	Intro      string                   `json:"intro,omitempty"`
	City       string                   `json:"city"`
	Categories []string                 `json:"categories"`
	HourlyRate int                      `json:"hourly_rate"`
	ChatLink   string                   `json:"chat_link,omitempty"`
	Status     models.ApplicationStatus `json:"status"`
	DecidedBy  *string                  `json:"decided_by,omitempty"`
	DecidedAt  *time.Time               `json:"decided_at,omitempty"`
	CreatedAt  time.Time                `json:"created_at"`
}

type ApplicationListResponse struct {
	Applications []*ApplicationResponse `json:"applications"`
	Total        int64                  `json:"total"`
	Page         int                    `json:"page"`
	PageSize     int                    `json:"page_size"`
	TotalPages   int                    `json:"total_pages"`
}
