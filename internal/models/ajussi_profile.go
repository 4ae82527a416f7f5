package models

import "gorm.io/datatypes"

// AjussiProfile is the public, bookable provider listing. IsActive gates both
// visibility in browse results and bookability; it starts false and is flipped
// when the admin approves the provider's application.
type AjussiProfile struct {
	BaseModel
	UserID       string         `gorm:"uniqueIndex;not null" json:"user_id"`
	Slug         string         `gorm:"uniqueIndex;not null" json:"slug"`
	Title        string         `gorm:"not null" json:"title"`
	Bio          string         `json:"bio"`
	City         string         `gorm:"index" json:"city"`
	Categories   datatypes.JSON `gorm:"type:jsonb" json:"categories"`
	ServiceAreas datatypes.JSON `gorm:"type:jsonb" json:"service_areas"`
	HourlyRate   int            `json:"hourly_rate"`
	ChatLink     string         `json:"chat_link"` // off-platform negotiation channel
	IsActive     bool           `gorm:"not null;default:false;index" json:"is_active"`

	// Denormalized review aggregates, refreshed by the rating worker.
	RatingAvg   float64 `gorm:"not null;default:0" json:"rating_avg"`
	RatingCount int64   `gorm:"not null;default:0" json:"rating_count"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
