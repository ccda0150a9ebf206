package errs

import "fmt"

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

// InvalidNumberError: a user-supplied numeric token failed to parse or failed
// a positivity constraint. Always maps to a corrective chat reply, never to a
// persisted row.
type InvalidNumberError struct {
	ErrorMessage
	Token string
}

// UnrecognizedError: no grammar pattern matched the inbound text.
type UnrecognizedError struct {
	ErrorMessage
}

// NotFoundError: a lookup matched no rows (e.g. completing a reminder that has
// no active instance). Reported to the user, not treated as a failure.
type NotFoundError struct {
	ErrorMessage
}

// StoreUnavailableError: a row-store call failed at the transport, auth or
// remote layer. The current command is aborted.
type StoreUnavailableError struct {
	ErrorMessage
	Operation string
	Err       error
}

func (e *StoreUnavailableError) Unwrap() error { return e.Err }

// UnauthenticatedError: bearer credential verification failed on a query
// endpoint, before any store access.
type UnauthenticatedError struct {
	ErrorMessage
}

// TranscriptionError: the voice-note collaborator failed outright. An empty
// transcript is not an error.
type TranscriptionError struct {
	ErrorMessage
	Err error
}

func (e *TranscriptionError) Unwrap() error { return e.Err }

func NewInvalidNumberError(token string) *InvalidNumberError {
	return &InvalidNumberError{
		ErrorMessage: ErrorMessage{Message: fmt.Sprintf("invalid numeric token %q", token)},
		Token:        token,
	}
}

func NewUnrecognizedError() *UnrecognizedError {
	return &UnrecognizedError{
		ErrorMessage: ErrorMessage{Message: "unrecognized command"},
	}
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewStoreUnavailableError(operation, message string, err error) *StoreUnavailableError {
	return &StoreUnavailableError{
		ErrorMessage: ErrorMessage{Message: message},
		Operation:    operation,
		Err:          err,
	}
}

func NewUnauthenticatedError(message string) *UnauthenticatedError {
	return &UnauthenticatedError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewTranscriptionError(message string, err error) *TranscriptionError {
	return &TranscriptionError{
		ErrorMessage: ErrorMessage{Message: message},
		Err:          err,
	}
}
