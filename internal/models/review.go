package models

// Review is left by the booking client after a request completes. The unique
// index on RequestID enforces one review per request at the data layer, so a
// lost duplicate race surfaces as a constraint violation instead of a second
// insert.
type Review struct {
	BaseModel
	RequestID       string `gorm:"uniqueIndex;not null" json:"request_id"`
	ReviewerID      string `gorm:"not null;index" json:"reviewer_id"`
	AjussiProfileID string `gorm:"not null;index" json:"ajussi_profile_id"`
	Rating          int    `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment         string `json:"comment"`

	Request       ServiceRequest `gorm:"foreignKey:RequestID" json:"-"`
	AjussiProfile AjussiProfile  `gorm:"foreignKey:AjussiProfileID" json:"-"`
}
