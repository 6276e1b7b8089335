package sequel

import "fmt"

// AuthError reports a failed credential exchange: bad credentials, a
// transport failure, or a token response without an access token.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("credential exchange failed: %v", e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// ResponseShapeError reports a 2xx response whose body is missing required
// fields. Callers treat it like any other transport error.
type ResponseShapeError struct {
	Operation string
	Reason    string
}

func (e *ResponseShapeError) Error() string {
	return fmt.Sprintf("%s: unexpected response shape: %s", e.Operation, e.Reason)
}

func shapeError(operation, reason string) error {
	return &ResponseShapeError{Operation: operation, Reason: reason}
}
