package models

// Profile holds per-user display data. Request and review responses are
// enriched with it so the UI never has to join users itself.
type Profile struct {
	BaseModel
	UserID      string `gorm:"uniqueIndex;not null" json:"user_id"`
	DisplayName string `gorm:"not null" json:"display_name"`
	AvatarURL   string `json:"avatar_url"`
	Phone       string `json:"phone"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
