package model

import (
	"fmt"
	"strings"
)

// Mode selects how many lines a run targets.
type Mode int

const (
	// ModeUnknown is the zero value for an unrecognized mode tag.
	ModeUnknown Mode = iota
	// ModeSingle targets one line, addressed by the first pin offset.
	ModeSingle
	// ModeMultiple targets three lines, addressed by all three pin offsets.
	ModeMultiple
	// ModeAll targets every line the controller reports.
	ModeAll
)

// ParseMode converts a user-supplied mode tag into a Mode. Tags are
// case-insensitive single characters: s, m or a.
func ParseMode(tag string) (Mode, error) {
	switch strings.ToLower(tag) {
	case "s":
		return ModeSingle, nil
	case "m":
		return ModeMultiple, nil
	case "a":
		return ModeAll, nil
	default:
		return ModeUnknown, fmt.Errorf("unrecognized mode tag %q", tag)
	}
}

func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return "single"
	case ModeMultiple:
		return "multiple"
	case ModeAll:
		return "all"
	default:
		return "unknown"
	}
}

// ExecutionContext identifies one test run. It is populated once from the
// parsed arguments and controller discovery and never mutated afterwards.
type ExecutionContext struct {
	CaseID     int
	Mode       Mode
	BasePin    int
	LineCount  int
	PinOffsets [3]int
}

// ResolvedLines is the ordered, non-empty sequence of absolute line
// identifiers a scenario operates on, derived once per run.
type ResolvedLines []int
