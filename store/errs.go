package store

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrKeyAlreadyExists   = errors.New("key already exists")
	ErrNotFound           = errors.New("entity not found")
	ErrInvariantViolation = errors.New("invariant violation")
	ErrInvalidDescription = errors.New("invalid column description")
	ErrPersistence        = errors.New("persistence failed")
	ErrParse              = errors.New("parse failed")
	ErrDecode             = errors.New("decode failed")
)

// EntityNotFoundError is returned when no row matched the given id.
type EntityNotFoundError struct {
	Table string
	ID    uuid.UUID
}

func (e *EntityNotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.Table, e.ID)
}

func (e *EntityNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// PersistenceError wraps an error reported by the database.
type PersistenceError struct {
	Op    string
	Table string
	Err   error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Table, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

// ParseError is returned when external text cannot become a Value.
type ParseError struct {
	Kind  Kind
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("cannot parse %q as %s", e.Input, e.Kind)
	}
	return fmt.Sprintf("cannot parse %q as %s: %v", e.Input, e.Kind, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// DecodeError is returned when a stored column cannot become a Value.
// Unlike ParseError it points at the store, not at the caller's input.
type DecodeError struct {
	Kind Kind
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s column: %v", e.Kind, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}
