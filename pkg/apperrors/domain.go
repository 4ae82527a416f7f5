package apperrors

import (
	"fmt"
	"net/http"
)

// Factories for the marketplace's domain errors. Services use these so every
// rejected operation surfaces a distinguishable, stable code; handlers never
// invent their own.

// --- Generic resource errors ---

func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrDependencyUnavailable marks a collaborator (database, auth store) call
// that failed or timed out. Internal detail stays in Err; the client sees
// only the generic message.
func ErrDependencyUnavailable(err error, domain string) *AppError {
	return Wrap(err, CodeExternalServiceError, domain, "A dependency is temporarily unavailable", http.StatusServiceUnavailable)
}

// --- Request lifecycle ---

func ErrRequestNotFound(requestID string) *AppError {
	return New(CodeNotFound, "request", "Service request not found", http.StatusNotFound).
		WithDetails(map[string]string{"request_id": requestID})
}

// ErrInvalidTransition identifies the rejected from/to pair so a client can
// distinguish "already handled by the other party" from a plain bad input.
func ErrInvalidTransition(from, to string) *AppError {
	return New(CodeInvalidTransition, "request",
		fmt.Sprintf("Status transition from %q to %q is not allowed", from, to),
		http.StatusBadRequest).
		WithDetails(map[string]string{"from": from, "to": to})
}

func ErrInvalidRequestStatus(raw string) *AppError {
	return New(CodeInvalidStatus, "request",
		fmt.Sprintf("Unknown request status %q", raw), http.StatusBadRequest)
}

func ErrTooEarly(message string) *AppError {
	return New(CodeTooEarly, "request", message, http.StatusBadRequest)
}

func ErrForbiddenTransition(message string) *AppError {
	return New(CodeForbidden, "request", message, http.StatusForbidden)
}

func ErrInvalidSchedule(message string) *AppError {
	return New(CodeInvalidSchedule, "request", message, http.StatusBadRequest)
}

var ErrSelfRequest = New(
	CodeSelfRequest,
	"request",
	"A provider may not book themselves",
	http.StatusBadRequest,
)

var ErrProviderUnavailable = New(
	CodeProviderInactive,
	"request",
	"The provider is not currently accepting requests",
	http.StatusConflict,
)

// --- Reviews ---

var ErrRequestNotCompleted = New(
	CodeRequestNotCompleted,
	"review",
	"Reviews can only be left for completed requests",
	http.StatusBadRequest,
)

var ErrInvalidRating = New(
	CodeInvalidRating,
	"review",
	"Rating must be an integer between 1 and 5",
	http.StatusBadRequest,
)

var ErrDuplicateReview = New(
	CodeDuplicateReview,
	"review",
	"A review already exists for this request",
	http.StatusBadRequest,
)

var ErrNotBookingClient = New(
	CodeForbidden,
	"review",
	"Only the client who booked the request may review it",
	http.StatusForbidden,
)

// --- Applications ---

var ErrApplicationAlreadyDecided = New(
	CodeInvalidTransition,
	"application",
	"Application has already been decided",
	http.StatusBadRequest,
)

var ErrOpenApplicationExists = New(
	CodeConflict,
	"application",
	"An open application already exists for this user",
	http.StatusConflict,
)
