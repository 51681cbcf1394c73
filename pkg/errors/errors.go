package errors

import (
	stderrors "errors"
	"fmt"
)

// ParseError represents a store document that could not be decoded.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError reports a setting whose stored value was rejected.
// Setting names the setting, Rule the validator rule it failed.
type ValidationError struct {
	Setting string
	Rule    string
	Value   any
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(setting, rule string, value any, err error) error {
	return &ValidationError{Setting: setting, Rule: rule, Value: value, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Rule != "" {
		return fmt.Sprintf("validation error: %s: value %v fails %q", e.Setting, e.Value, e.Rule)
	}
	if e.Err != nil {
		return fmt.Sprintf("validation error: %s: %v", e.Setting, e.Err)
	}
	return fmt.Sprintf("validation error: %s: invalid value %v", e.Setting, e.Value)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// StoreError wraps a failed read or write against the configuration store.
type StoreError struct {
	Op     string // "read" or "write"
	Target string
	Key    string
	Err    error
}

// NewStoreError constructs a StoreError. An err that already carries a
// StoreError is returned unchanged.
func NewStoreError(op, target, key string, err error) error {
	var existing *StoreError
	if stderrors.As(err, &existing) {
		return err
	}
	return &StoreError{Op: op, Target: target, Key: key, Err: err}
}

func (e *StoreError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("store %s %s [%s]: %v", e.Op, e.Key, e.Target, e.Err)
}

// Unwrap exposes the root error.
func (e *StoreError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
