package models

type UserRole string
type RequestStatus string
type ApplicationStatus string

const (
	UserRoleClient UserRole = "client"
	UserRoleAjussi UserRole = "ajussi"
	UserRoleAdmin  UserRole = "admin"

	RequestStatusPending   RequestStatus = "pending"
	RequestStatusConfirmed RequestStatus = "confirmed"
	RequestStatusRejected  RequestStatus = "rejected"
	RequestStatusCompleted RequestStatus = "completed"
	RequestStatusCancelled RequestStatus = "cancelled"
	// RequestStatusExpired is reserved in the schema. No code path produces it:
	// automatic expiry of stale pending requests is not implemented.
	RequestStatusExpired RequestStatus = "expired"

	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)
