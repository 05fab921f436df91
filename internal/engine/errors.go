package engine

// constError is an immutable error type for sentinel errors.
// It implements the error interface and provides compile-time safety.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors for input validation. Wrapped errors carry the offending
// field path and can be compared with errors.Is().
var (
	// ErrMissingField indicates a required input field is absent.
	ErrMissingField = constError("missing required field")

	// ErrInvalidField indicates an input field holds an unusable value.
	ErrInvalidField = constError("invalid field value")
)
