package models

import "time"

// ServiceRequest is a single booking between a client and an ajussi for a
// scheduled time window. Participants, schedule, location and description are
// immutable after creation; only Status (and UpdatedAt) change afterwards,
// and only through the lifecycle rules in the request service.
type ServiceRequest struct {
	BaseModel
	ClientID        string        `gorm:"not null;index" json:"client_id"`
	ProviderID      string        `gorm:"not null;index" json:"provider_id"`
	AjussiProfileID string        `gorm:"not null;index" json:"ajussi_profile_id"`
	ScheduledStart  time.Time     `gorm:"not null" json:"scheduled_start"`
	DurationMinutes int           `gorm:"not null" json:"duration_minutes"`
	Location        string        `gorm:"not null" json:"location"`
	Description     string        `json:"description"`
	Status          RequestStatus `gorm:"not null;default:'pending';index" json:"status"`

	AjussiProfile AjussiProfile `gorm:"foreignKey:AjussiProfileID" json:"-"`
}

// ServiceWindowEnd is the instant the booked window elapses. Completion is
// rejected before this instant.
func (r *ServiceRequest) ServiceWindowEnd() time.Time {
	return r.ScheduledStart.Add(time.Duration(r.DurationMinutes) * time.Minute)
}

// IsParticipant reports whether the given user is one of the two parties.
func (r *ServiceRequest) IsParticipant(userID string) bool {
	return userID == r.ClientID || userID == r.ProviderID
}
