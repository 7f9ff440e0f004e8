package model

import (
	"errors"
	"time"

	gpioerrors "github.com/gbfwtest/gpiocert/pkg/errors"
)

const (
	// StatusSuccess marks a step or case that completed without error.
	StatusSuccess = "success"
	// StatusFailed marks a capability failure or verification mismatch.
	StatusFailed = "failed"
)

// StepResult captures the outcome of executing a single step.
type StepResult struct {
	Name     string
	Status   string
	Message  string
	Error    error
	Duration time.Duration
}

// Failed reports whether the step produced a failure outcome.
func (r StepResult) Failed() bool {
	return r.Status == StatusFailed
}

// CaseResult aggregates the step outcomes of one scenario run. Status follows
// the last executed main-phase step; recovery outcomes are reported
// separately and never override it.
type CaseResult struct {
	CaseID   int
	Name     string
	Status   string
	Error    error
	Steps    []StepResult
	Recovery []StepResult
	Duration time.Duration
}

// Passed reports whether the case ended in a passing state.
func (r *CaseResult) Passed() bool {
	return r != nil && r.Status == StatusSuccess
}

// Exit codes mapped from the error taxonomy.
const (
	ExitPass         = 0
	ExitMismatch     = 1
	ExitInvalidInput = 2
	ExitUnknownCase  = 3
	ExitCapability   = 4
	ExitConfig       = 5
)

// ExitCode maps the case outcome onto the process exit status.
func (r *CaseResult) ExitCode() int {
	if r == nil {
		return ExitCapability
	}
	if r.Passed() {
		return ExitPass
	}
	return ExitCodeFor(r.Error)
}

// ExitCodeFor maps an error from the taxonomy onto an exit status.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitPass
	}

	var verificationErr *gpioerrors.VerificationError
	if errors.As(err, &verificationErr) {
		return ExitMismatch
	}

	var addressingErr *gpioerrors.AddressingError
	if errors.As(err, &addressingErr) {
		return ExitInvalidInput
	}

	var unknownCaseErr *gpioerrors.UnknownCaseError
	if errors.As(err, &unknownCaseErr) {
		return ExitUnknownCase
	}

	var parseErr *gpioerrors.ParseError
	if errors.As(err, &parseErr) {
		return ExitConfig
	}

	return ExitCapability
}
