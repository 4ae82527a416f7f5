package apperrors

// ErrorCode is a stable, machine-readable error identifier exposed at the
// HTTP boundary.
type ErrorCode string

const (
	// System and unknown failures
	CodeInternalError        ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError        ErrorCode = "DATABASE_ERROR"
	CodeExternalServiceError ErrorCode = "EXTERNAL_SERVICE_ERROR"

	// Generic business-logic codes
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeAlreadyExists    ErrorCode = "ALREADY_EXISTS"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeConflict         ErrorCode = "CONFLICT"
	CodeInvalidStatus    ErrorCode = "INVALID_STATUS"

	// Request lifecycle
	CodeInvalidTransition ErrorCode = "INVALID_TRANSITION"
	CodeTooEarly          ErrorCode = "TOO_EARLY"
	CodeInvalidSchedule   ErrorCode = "INVALID_SCHEDULE"
	CodeSelfRequest       ErrorCode = "SELF_REQUEST"
	CodeProviderInactive  ErrorCode = "PROVIDER_UNAVAILABLE"

	// Reviews
	CodeInvalidRating       ErrorCode = "INVALID_RATING"
	CodeRequestNotCompleted ErrorCode = "REQUEST_NOT_COMPLETED"
	CodeDuplicateReview     ErrorCode = "DUPLICATE_REVIEW"

	// Authentication and authorization
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	CodeTokenExpired       ErrorCode = "TOKEN_EXPIRED"
)
