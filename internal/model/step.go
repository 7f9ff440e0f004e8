package model

// Op is the kind of capability invocation a step performs.
type Op int

const (
	// OpActivate reserves the resolved lines for test use.
	OpActivate Op = iota
	// OpDeactivate releases the resolved lines.
	OpDeactivate
	// OpSet writes an attribute value to each resolved line.
	OpSet
	// OpGet reads an attribute from each resolved line, optionally
	// verifying it against an expected literal.
	OpGet
	// OpCount queries the controller's reported line count.
	OpCount
)

func (o Op) String() string {
	switch o {
	case OpActivate:
		return "activate"
	case OpDeactivate:
		return "deactivate"
	case OpSet:
		return "set"
	case OpGet:
		return "get"
	case OpCount:
		return "count"
	default:
		return "unknown"
	}
}

// Attr names a line attribute a step reads or writes.
type Attr int

const (
	// AttrNone marks steps that carry no attribute (activate/deactivate/count).
	AttrNone Attr = iota
	// AttrDirection is the line input/output configuration.
	AttrDirection
	// AttrValue is the line level, "0" or "1".
	AttrValue
	// AttrEdge is the interrupt trigger type.
	AttrEdge
)

func (a Attr) String() string {
	switch a {
	case AttrDirection:
		return "direction"
	case AttrValue:
		return "value"
	case AttrEdge:
		return "edge"
	default:
		return "none"
	}
}

// Step is one capability invocation within a scenario. Steps are immutable
// data; scenarios are tables of them interpreted by the engine.
type Step struct {
	Op     Op
	Attr   Attr
	Value  string // literal written by OpSet
	Expect string // expected literal verified after OpGet; empty skips verification
	Times  int    // repetition count; 0 and 1 both mean once
}

// Repetitions returns the effective repeat count for the step.
func (s Step) Repetitions() int {
	if s.Times < 1 {
		return 1
	}
	return s.Times
}

// Scenario is one certified test case: a named, ordered list of steps plus
// the addressing modes it supports. Recovery (deactivation of every line the
// run activated) is implicit and unconditional; it is performed by the engine
// after the last step regardless of step outcomes.
type Scenario struct {
	CaseID int
	Name   string
	Modes  []Mode
	Steps  []Step
}

// SupportsMode reports whether the scenario accepts the given addressing mode.
func (s Scenario) SupportsMode(mode Mode) bool {
	for _, m := range s.Modes {
		if m == mode {
			return true
		}
	}
	return false
}
