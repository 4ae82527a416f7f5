package dto

import (
	"time"

	"ajussi_backend/internal/models"
)

type CreateRequestRequest struct {
	AjussiProfileID string    `json:"ajussi_profile_id" validate:"required"`
	ScheduledStart  time.Time `json:"scheduled_start" validate:"required"`
	DurationMinutes int       `json:"duration_minutes" validate:"required,gt=0"`
	Location        string    `json:"location" validate:"required,notblank"`
	Description     string    `json:"description"`
}

type ChangeRequestStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ParticipantInfo is the read-only display join attached to request and
// review responses.
type ParticipantInfo struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url,omitempty"`
}

type RequestResponse struct {
	ID              string               `json:"id"`
	ClientID        string               `json:"client_id"`
	ProviderID      string               `json:"provider_id"`
	AjussiProfileID string               `json:"ajussi_profile_id"`
	ScheduledStart  time.Time            `json:"scheduled_start"`
	DurationMinutes int                  `json:"duration_minutes"`
	Location        string               `json:"location"`
	Description     string               `json:"description,omitempty"`
	Status          models.RequestStatus `json:"status"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
	Client          *ParticipantInfo     `json:"client,omitempty"`
	Provider        *ParticipantInfo     `json:"provider,omitempty"`
}

type RequestListResponse struct {
	Requests   []*RequestResponse `json:"requests"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalPages int                `json:"total_pages"`
}
