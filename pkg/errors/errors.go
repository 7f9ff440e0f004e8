package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
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

// AddressingError reports an addressing mode that cannot be resolved to
// concrete lines: an unrecognized mode tag, a mode the scenario does not
// support, or missing pin offsets.
type AddressingError struct {
	Mode    string
	Message string
}

// NewAddressingError constructs an AddressingError.
func NewAddressingError(mode, message string) error {
	return &AddressingError{Mode: mode, Message: message}
}

func (e *AddressingError) Error() string {
	if e == nil {
		return ""
	}
	if e.Mode != "" {
		return fmt.Sprintf("invalid addressing [%s]: %s", e.Mode, e.Message)
	}
	return fmt.Sprintf("invalid addressing: %s", e.Message)
}

// UnknownCaseError reports a case identifier with no registered scenario.
type UnknownCaseError struct {
	CaseID int
}

// NewUnknownCaseError constructs an UnknownCaseError.
func NewUnknownCaseError(caseID int) error {
	return &UnknownCaseError{CaseID: caseID}
}

func (e *UnknownCaseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("unknown case: %d", e.CaseID)
}

// CapabilityError represents a failed call into the line capability layer.
type CapabilityError struct {
	Op   string
	Line int
	Err  error
}

// NewCapabilityError constructs a CapabilityError for the given operation.
func NewCapabilityError(op string, line int, err error) error {
	return &CapabilityError{Op: op, Line: line, Err: err}
}

func (e *CapabilityError) Error() string {
	if e == nil {
		return ""
	}
	if e.Line >= 0 {
		return fmt.Sprintf("capability error: %s line %d: %v", e.Op, e.Line, e.Err)
	}
	return fmt.Sprintf("capability error: %s: %v", e.Op, e.Err)
}

// Unwrap exposes the root error.
func (e *CapabilityError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// VerificationError records an attribute reading that did not match the
// expected literal.
type VerificationError struct {
	Attribute string
	Line      int
	Actual    string
	Expected  string
}

// NewVerificationError constructs a VerificationError.
func NewVerificationError(attribute string, line int, actual, expected string) error {
	return &VerificationError{Attribute: attribute, Line: line, Actual: actual, Expected: expected}
}

func (e *VerificationError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("verification mismatch: %s on line %d: got %q, want %q",
		e.Attribute, e.Line, e.Actual, e.Expected)
}
