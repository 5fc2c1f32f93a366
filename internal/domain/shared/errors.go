package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound     = NewDomainError("NOT_FOUND", "Resource not found")
	ErrInvalidInput = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrInvalidState = NewDomainError("INVALID_STATE", "Operation not allowed in current state")

	// ErrRunAborted is returned when the user declines to continue a tagging
	// run at a confirmation prompt. It unwinds the active transaction so
	// nothing created earlier in the run persists, and is swallowed at the
	// top level: a deliberate abort is not a failure.
	ErrRunAborted = NewDomainError("RUN_ABORTED", "Tagging run aborted by user")
)
