package errors

import "fmt"

type MissingCredentialsError struct {
	Field string
}

func (e MissingCredentialsError) Error() string {
	return fmt.Sprintf("missing workspace credentials: %s is required", e.Field)
}

func MissingCredentialsErr(field string) MissingCredentialsError {
	return MissingCredentialsError{
		Field: field,
	}
}

// UpstreamError wraps any failure coming out of the workspace API client.
// The cause's message is passed through verbatim.
type UpstreamError struct {
	Op    string
	Cause error
}

func (e UpstreamError) Error() string {
	return e.Cause.Error()
}

func (e UpstreamError) Unwrap() error {
	return e.Cause
}

func UpstreamErr(op string, cause error) UpstreamError {
	return UpstreamError{
		Op:    op,
		Cause: cause,
	}
}
