package models

type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"not null;default:'client'" json:"role"`
	IsActive     bool     `gorm:"not null;default:true" json:"is_active"`
}
