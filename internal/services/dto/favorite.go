package dto

import "time"

type ToggleFavoriteResponse struct {
	AjussiProfileID string `json:"ajussi_profile_id"`
	Favorited       bool   `json:"favorited"`
}

type FavoriteResponse struct {
	ID        string                 `json:"id"`
	Profile   *AjussiProfileResponse `json:"profile"`
	CreatedAt time.Time              `json:"created_at"`
}

type FavoriteListResponse struct {
	Favorites  []*FavoriteResponse `json:"favorites"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
	TotalPages int                 `json:"total_pages"`
}
