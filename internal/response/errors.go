package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Session ───────────────────────────────────────────────────────
	ErrNoRoleSelected ErrCode = "NO_ROLE_SELECTED"
	ErrInvalidRole    ErrCode = "INVALID_ROLE"
	ErrTokenRequired  ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid   ErrCode = "TOKEN_INVALID"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound ErrCode = "NOT_FOUND"

	// ─── Grade entry ───────────────────────────────────────────────────
	ErrInvalidScore          ErrCode = "INVALID_SCORE"
	ErrMissingAssignmentName ErrCode = "MISSING_ASSIGNMENT_NAME"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrNoRoleSelected:
		return "Please select a role."
	case ErrInvalidRole:
		return "The selected role is not recognized."
	case ErrTokenRequired:
		return "A session token is required."
	case ErrTokenInvalid:
		return "The session token is invalid or expired."
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidID:
		return "Invalid id format."
	case ErrInvalidPayload:
		return "Invalid request payload."
	case ErrNotFound:
		return "The requested record was not found."
	case ErrInvalidScore:
		return "Score must be a number between 0 and 100."
	case ErrMissingAssignmentName:
		return "Please enter an assignment name."
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
