package models

type Favorite struct {
	BaseModel
	UserID          string `gorm:"not null;index;uniqueIndex:idx_favorites_user_profile" json:"user_id"`
	AjussiProfileID string `gorm:"not null;index;uniqueIndex:idx_favorites_user_profile" json:"ajussi_profile_id"`

	AjussiProfile AjussiProfile `gorm:"foreignKey:AjussiProfileID" json:"-"`
}
