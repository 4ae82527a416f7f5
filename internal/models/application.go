package models

import (
	"time"

	"gorm.io/datatypes"
)

// AjussiApplication is a user's request to become a provider. It carries its
// own, smaller status taxonomy: pending -> approved | rejected, decided by an
// admin only. Both decisions are terminal.
type AjussiApplication struct {
	BaseModel
	UserID     string            `gorm:"not null;index" json:"user_id"`
	Title      string            `gorm:"not null" json:"title"`
	Intro      string            `json:"intro"`
	City       string            `json:"city"`
	Categories datatypes.JSON    `gorm:"type:jsonb" json:"categories"`
	HourlyRate int               `json:"hourly_rate"`
	ChatLink   string            `json:"chat_link"`
	Status     ApplicationStatus `gorm:"not null;default:'pending';index" json:"status"`
	DecidedBy  *string           `json:"decided_by,omitempty"`
	DecidedAt  *time.Time        `json:"decided_at,omitempty"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
