// Copyright 2020 Aleksandr Demakin. All rights reserved.

package floatx

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a value has the wrong shape,
	// like a fractional number where an integer is required.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOutOfRange is returned when a value does not fit its fixed bit width.
	ErrOutOfRange = errors.New("value out of range")
	// ErrInvalidFormat is returned when a string cannot be parsed.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrDomain is returned when an operation is given a NaN where a number is required, or vice versa.
	ErrDomain = errors.New("domain error")
)

type posError struct {
	pos int
	err string
}

func newPosError(err string, pos int) *posError {
	return &posError{err: err, pos: pos}
}

func (pe posError) Error() string {
	return pe.err + fmt.Sprintf(" at pos %d", pe.pos)
}

func (pe posError) Unwrap() error {
	return ErrInvalidFormat
}

func rangeError(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrOutOfRange)
}

func argError(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidArgument)
}

func domainError(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrDomain)
}
