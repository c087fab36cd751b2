package params

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSize          = errors.New("invalid size")
	ErrInvalidTime          = errors.New("invalid time")
	ErrInvalidInt           = errors.New("invalid integer")
	ErrInvalidChoice        = errors.New("invalid choice")
	ErrPathNotReadable      = errors.New("path not readable")
	ErrPathNotWritable      = errors.New("path not writable")
	ErrInvalidTrimRange     = errors.New("invalid trim range")
	ErrConflictingSubtitles = errors.New("conflicting subtitle sources")
)

// InputError describes a rejected user value.
type InputError struct {
	Kind     error
	Input    string
	Expected string
	Err      error
}

func (e *InputError) Error() string {
	msg := fmt.Sprintf("%v %q", e.Kind, e.Input)
	if e.Expected != "" {
		msg += ": expected " + e.Expected
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *InputError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func inputError(kind error, input, expected string) *InputError {
	return &InputError{Kind: kind, Input: input, Expected: expected}
}
