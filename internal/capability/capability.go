// Package capability defines the line-control transport the driver consumes
// and provides the sysfs-backed implementation that talks to a Greybus GPIO
// controller. The driver core never touches the wire itself; every device
// interaction goes through the Capability interface so tests can substitute
// an in-memory fake.
package capability

import (
	"context"
)

// Line attribute literals as the sysfs GPIO ABI reports them.
const (
	DirectionIn  = "in"
	DirectionOut = "out"

	ValueLow  = "0"
	ValueHigh = "1"

	EdgeNone    = "none"
	EdgeRising  = "rising"
	EdgeFalling = "falling"
	EdgeBoth    = "both"
)

// Capability is the narrow line-control transport a scenario drives. Lines
// are absolute identifiers (base pin already applied). Every call may fail;
// retries, if any, belong to the implementation.
type Capability interface {
	// LineCount returns the number of lines the controller manages.
	LineCount(ctx context.Context) (int, error)

	// Activate reserves a single line for test use.
	Activate(ctx context.Context, line int) error
	// ActivateGroup reserves several lines in one logical operation.
	ActivateGroup(ctx context.Context, lines []int) error
	// Deactivate releases a single line.
	Deactivate(ctx context.Context, line int) error
	// DeactivateGroup releases several lines in one logical operation.
	DeactivateGroup(ctx context.Context, lines []int) error

	// Direction reads the line's input/output configuration.
	Direction(ctx context.Context, line int) (string, error)
	// SetDirection writes the line's input/output configuration.
	SetDirection(ctx context.Context, line int, direction string) error

	// Value reads the line level.
	Value(ctx context.Context, line int) (string, error)
	// SetValue writes the line level.
	SetValue(ctx context.Context, line int, value string) error

	// Edge reads the line's interrupt trigger type.
	Edge(ctx context.Context, line int) (string, error)
	// SetEdge writes the line's interrupt trigger type.
	SetEdge(ctx context.Context, line int, edge string) error
}

// Controller describes a discovered GPIO controller: the absolute index of
// its first line and how many lines it manages.
type Controller struct {
	Label   string
	BasePin int
	Count   int
}
