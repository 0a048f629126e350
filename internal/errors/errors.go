package errors

import "errors"

// This package defines the sentinel errors shared by the inference client, the
// services and the API layer. Callers wrap them with fmt.Errorf("%w: ...") and
// check them with errors.Is.

var (
	// ErrTransport signifies that the inference server could not be reached or
	// the connection failed while the response was being read.
	ErrTransport = errors.New("transport failure")

	// ErrStatus signifies that the inference server answered with a non-2xx
	// status code. The wrapped message carries the code and the response body.
	ErrStatus = errors.New("unexpected status")

	// ErrDecode signifies that a response body was not the JSON we expected.
	ErrDecode = errors.New("malformed response body")

	// ErrMissingField signifies that a well-formed response lacked the field
	// holding the model output.
	ErrMissingField = errors.New("missing response field")

	// ErrValidation signifies that input from the browser failed validation.
	// This is mapped to a 400 Bad Request HTTP status.
	ErrValidation = errors.New("validation failed")

	// ErrInternal is mapped to a 500 Internal Server Error HTTP status.
	ErrInternal = errors.New("internal server error")
)
