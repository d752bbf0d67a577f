package domain

// ErrorKind tags a validation failure so callers can style or branch on it
type ErrorKind string

const (
	ErrMissingDate   ErrorKind = "missing_date"
	ErrInvalidAmount ErrorKind = "invalid_amount"
	ErrInvalidRate   ErrorKind = "invalid_rate"
	ErrFutureDate    ErrorKind = "future_date"
)

// Message returns the user-facing text for the kind
func (k ErrorKind) Message() string {
	switch k {
	case ErrMissingDate:
		return MsgMissingDate
	case ErrInvalidAmount:
		return MsgInvalidAmount
	case ErrInvalidRate:
		return MsgInvalidRate
	case ErrFutureDate:
		return MsgFutureDate
	default:
		return string(k)
	}
}

// ValidationError is a recoverable input error surfaced to the user as text
type ValidationError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// NewValidationError builds the error for kind with its standard message
func NewValidationError(kind ErrorKind) *ValidationError {
	return &ValidationError{Kind: kind, Message: kind.Message()}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is matches any *ValidationError of the same kind, so errors.Is works
// against values built with NewValidationError.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}
