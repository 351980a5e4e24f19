package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// ValidationError is a client-correctable rule violation. Reason is part of
// the wire contract: it is returned verbatim in the "error" field of 400
// responses, so changing its text changes observable API behaviour.
//
// Callers match a specific rule with [errors.Is] against the sentinels below,
// or detect the category with [errors.As].
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Rule violations, ordered the way [UserValidator] evaluates them.
var (
	ErrInvalidUsername = &ValidationError{Reason: "Username is required, should be between 3 and 30 characters and only contain letters and numbers."}
	ErrInvalidEmail    = &ValidationError{Reason: "Email is required and should be less than 254 characters."}
	ErrInvalidEmailFmt = &ValidationError{Reason: "Invalid email format."}
	ErrUsernameTaken   = &ValidationError{Reason: "Username is already in use by another user."}
	ErrEmailTaken      = &ValidationError{Reason: "Email is already in use by another user."}
)
