package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrTaskNotFound   = errors.New("todo not found")
	ErrInvalidTaskID  = errors.New("invalid todo id")
	ErrInvalidFilter  = errors.New("invalid filter")
	ErrConfigExists   = errors.New("config file already exists")
	ErrUnknownCommand = errors.New("unknown command")
)

// NotFoundError is returned when an operation references an id that is not in the registry.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("todo with id %d not found", e.ID)
}

// Is makes errors.Is(err, ErrTaskNotFound) hold for every NotFoundError.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrTaskNotFound
}

// NewNotFoundError returns a NotFoundError for id.
func NewNotFoundError(id int) error {
	return &NotFoundError{ID: id}
}
