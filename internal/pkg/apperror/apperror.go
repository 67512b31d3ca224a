package apperror

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// AppError carries an HTTP status and a client-safe message.
// Anything that is not an AppError is translated to a generic 500
// at the handler boundary so driver errors never leak to clients.
type AppError struct {
	Status  int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func Validation(msg string) *AppError {
	return &AppError{Status: fiber.StatusBadRequest, Message: msg}
}

func Conflict(msg string) *AppError {
	return &AppError{Status: fiber.StatusBadRequest, Message: msg}
}

func Unauthenticated(msg string) *AppError {
	return &AppError{Status: fiber.StatusUnauthorized, Message: msg}
}

// NotFound is returned both for true absence and for ownership failures.
// The two cases are deliberately indistinguishable so other users cannot
// probe which entry ids exist.
func NotFound(msg string) *AppError {
	return &AppError{Status: fiber.StatusNotFound, Message: msg}
}

// External marks a failed call to a collaborator service (LLM, object store).
func External(msg string, err error) *AppError {
	return &AppError{Status: fiber.StatusBadGateway, Message: msg, Err: err}
}

func Internal(err error) *AppError {
	return &AppError{Status: fiber.StatusInternalServerError, Message: "Something went wrong.", Err: err}
}

// As unwraps err into an *AppError if possible.
func As(err error) (*AppError, bool) {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}
