package dto

import "time"

type CreateReviewRequest struct {
	RequestID string `json:"request_id" validate:"required"`
	// Rating bounds are checked in the service so violations surface as
	// INVALID_RATING rather than a generic validation failure.
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type ReviewResponse struct {
	ID              string           `json:"id"`
	RequestID       string           `json:"request_id"`
	AjussiProfileID string           `json:"ajussi_profile_id"`
	Rating          int              `json:"rating"`
	Comment         string           `json:"comment,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	Reviewer        *ParticipantInfo `json:"reviewer,omitempty"`
}

type ReviewListResponse struct {
	Reviews    []*ReviewResponse `json:"reviews"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}
