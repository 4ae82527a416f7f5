package dto

import "time"

type UpdateAjussiProfileRequest struct {
	Title      *string  `json:"title,omitempty"`
	Bio        *string  `json:"bio,omitempty"`
	City       *string  `json:"city,omitempty"`
	Categories []string `json:"categories,omitempty"`
	HourlyRate *int     `json:"hourly_rate,omitempty"`
	ChatLink   *string  `json:"chat_link,omitempty"`
	IsActive   *bool    `json:"is_active,omitempty"`
}

type AjussiProfileResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Bio         string    `json:"bio,omitempty"`
	City        string    `json:"city,omitempty"`
	Categories  []string  `json:"categories"`
	HourlyRate  int       `json:"hourly_rate"`
	ChatLink    string    `json:"chat_link,omitempty"`
	IsActive    bool      `json:"is_active"`
	RatingAvg   float64   `json:"rating_avg"`
	RatingCount int64     `json:"rating_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type AjussiProfileListResponse struct {
	Profiles   []*AjussiProfileResponse `json:"profiles"`
	Total      int64                    `json:"total"`
	Page       int                      `json:"page"`
	PageSize   int                      `json:"page_size"`
	TotalPages int                      `json:"total_pages"`
}

type BrowseAjussiQuery struct {
	City     string `form:"city"`
	Category string `form:"category"`
	Keyword  string `form:"q"`
}
