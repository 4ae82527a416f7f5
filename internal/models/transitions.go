package models

import "fmt"

// AllowedRequestTransitions defines the valid request status transitions.
// The key is the current status, the value is the set of valid target statuses.
// Rejected, completed and cancelled are terminal.
var AllowedRequestTransitions = map[RequestStatus][]RequestStatus{
	RequestStatusPending:   {RequestStatusConfirmed, RequestStatusRejected, RequestStatusCancelled},
	RequestStatusConfirmed: {RequestStatusCompleted, RequestStatusCancelled},
	RequestStatusRejected:  {},
	RequestStatusCompleted: {},
	RequestStatusCancelled: {},
}

// ParseRequestStatus validates a raw status string coming from a client.
// Only the five assignable statuses are accepted; "expired" is reserved and
// never assignable through the API.
func ParseRequestStatus(raw string) (RequestStatus, error) {
	switch s := RequestStatus(raw); s {
	case RequestStatusPending, RequestStatusConfirmed, RequestStatusRejected,
		RequestStatusCompleted, RequestStatusCancelled:
		return s, nil
	default:
		return "", fmt.Errorf("unknown request status %q", raw)
	}
}

// CanTransitionRequest reports whether a transition between two statuses is allowed.
func CanTransitionRequest(from, to RequestStatus) bool {
	for _, s := range AllowedRequestTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminalRequestStatus reports whether no further transitions are allowed.
func IsTerminalRequestStatus(s RequestStatus) bool {
	return len(AllowedRequestTransitions[s]) == 0
}

// IsTerminalApplicationStatus reports whether an application has been decided.
func IsTerminalApplicationStatus(s ApplicationStatus) bool {
	return s == ApplicationStatusApproved || s == ApplicationStatusRejected
}
