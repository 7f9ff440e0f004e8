package scenario

import (
	"github.com/gbfwtest/gpiocert/internal/capability"
	"github.com/gbfwtest/gpiocert/internal/model"
)

// repeatedTimes is the fixed repetition count used by the repeated-operation
// cases (271, 274, 277).
const repeatedTimes = 10

var (
	singleOnly     = []model.Mode{model.ModeSingle}
	singleMultiple = []model.Mode{model.ModeSingle, model.ModeMultiple}
	anyMode        = []model.Mode{model.ModeSingle, model.ModeMultiple, model.ModeAll}
)

func activate() model.Step {
	return model.Step{Op: model.OpActivate}
}

func deactivate() model.Step {
	return model.Step{Op: model.OpDeactivate}
}

func set(attr model.Attr, value string) model.Step {
	return model.Step{Op: model.OpSet, Attr: attr, Value: value}
}

func setTimes(attr model.Attr, value string, times int) model.Step {
	return model.Step{Op: model.OpSet, Attr: attr, Value: value, Times: times}
}

func get(attr model.Attr) model.Step {
	return model.Step{Op: model.OpGet, Attr: attr}
}

func getTimes(attr model.Attr, times int) model.Step {
	return model.Step{Op: model.OpGet, Attr: attr, Times: times}
}

func getExpect(attr model.Attr, expect string) model.Step {
	return model.Step{Op: model.OpGet, Attr: attr, Expect: expect}
}

// edgeTransition is the shared shape of the edge-type transition cases: an
// output line driven high, the first edge type set and verified, then the
// second set and verified.
func edgeTransition(caseID int, name, from, to string) model.Scenario {
	return model.Scenario{
		CaseID: caseID,
		Name:   name,
		Modes:  singleOnly,
		Steps: []model.Step{
			activate(),
			set(model.AttrDirection, capability.DirectionOut),
			set(model.AttrValue, capability.ValueHigh),
			set(model.AttrEdge, from),
			getExpect(model.AttrEdge, from),
			set(model.AttrEdge, to),
			getExpect(model.AttrEdge, to),
		},
	}
}

// cases maps a case identifier to its scenario definition. The mapping is
// static; it is defined once and never mutated at runtime.
var cases = map[int]model.Scenario{
	263: {
		CaseID: 263,
		Name:   "line count query",
		Modes:  anyMode,
		Steps:  []model.Step{{Op: model.OpCount}},
	},

	264: {
		CaseID: 264,
		Name:   "activate lines",
		Modes:  singleMultiple,
		Steps:  []model.Step{activate()},
	},

	267: {
		CaseID: 267,
		Name:   "deactivate lines",
		Modes:  singleMultiple,
		Steps:  []model.Step{activate(), deactivate()},
	},

	270: {
		CaseID: 270,
		Name:   "direction read",
		Modes:  singleMultiple,
		Steps:  []model.Step{activate(), get(model.AttrDirection)},
	},

	271: {
		CaseID: 271,
		Name:   "direction read repeated",
		Modes:  singleOnly,
		Steps:  []model.Step{activate(), getTimes(model.AttrDirection, repeatedTimes)},
	},

	272: {
		CaseID: 272,
		Name:   "direction read all lines",
		Modes:  anyMode,
		Steps:  []model.Step{activate(), get(model.AttrDirection)},
	},

	273: {
		CaseID: 273,
		Name:   "direction input round-trip",
		Modes:  singleMultiple,
		Steps: []model.Step{
			activate(),
			set(model.AttrDirection, capability.DirectionIn),
			getExpect(model.AttrDirection, capability.DirectionIn),
		},
	},

	274: {
		CaseID: 274,
		Name:   "direction input repeated",
		Modes:  singleOnly,
		Steps: []model.Step{
			activate(),
			setTimes(model.AttrDirection, capability.DirectionIn, repeatedTimes),
			getExpect(model.AttrDirection, capability.DirectionIn),
		},
	},

	276: {
		CaseID: 276,
		Name:   "direction output round-trip",
		Modes:  singleMultiple,
		Steps: []model.Step{
			activate(),
			set(model.AttrDirection, capability.DirectionOut),
			getExpect(model.AttrDirection, capability.DirectionOut),
		},
	},

	277: {
		CaseID: 277,
		Name:   "direction output repeated",
		Modes:  singleOnly,
		Steps: []model.Step{
			activate(),
			setTimes(model.AttrDirection, capability.DirectionOut, repeatedTimes),
			getExpect(model.AttrDirection, capability.DirectionOut),
		},
	},

	279: {
		CaseID: 279,
		Name:   "value read",
		Modes:  singleMultiple,
		Steps: []model.Step{
			activate(),
			set(model.AttrDirection, capability.DirectionIn),
			get(model.AttrValue),
		},
	},

	281: {
		CaseID: 281,
		Name:   "set value high",
		Modes:  singleOnly,
		Steps: []model.Step{
			activate(),
			set(model.AttrDirection, capability.DirectionOut),
			set(model.AttrValue, capability.ValueHigh),
			getExpect(model.AttrDirection, capability.DirectionOut),
			getExpect(model.AttrValue, capability.ValueHigh),
		},
	},

	282: {
		CaseID: 282,
		Name:   "set value low",
		Modes:  singleOnly,
		Steps: []model.Step{
			activate(),
			set(model.AttrDirection, capability.DirectionOut),
			set(model.AttrValue, capability.ValueLow),
			getExpect(model.AttrDirection, capability.DirectionOut),
			getExpect(model.AttrValue, capability.ValueLow),
		},
	},

	286: {
		CaseID: 286,
		Name:   "set edge rising",
		Modes:  singleOnly,
		Steps: []model.Step{
			activate(),
			set(model.AttrDirection, capability.DirectionOut),
			set(model.AttrValue, capability.ValueHigh),
			set(model.AttrEdge, capability.EdgeRising),
			getExpect(model.AttrEdge, capability.EdgeRising),
		},
	},

	287: {
		CaseID: 287,
		Name:   "set edge falling",
		Modes:  singleOnly,
		Steps: []model.Step{
			activate(),
			set(model.AttrDirection, capability.DirectionOut),
			set(model.AttrValue, capability.ValueHigh),
			set(model.AttrEdge, capability.EdgeFalling),
			getExpect(model.AttrEdge, capability.EdgeFalling),
		},
	},

	288: {
		CaseID: 288,
		Name:   "set edge both",
		Modes:  singleOnly,
		Steps: []model.Step{
			activate(),
			set(model.AttrDirection, capability.DirectionOut),
			set(model.AttrValue, capability.ValueHigh),
			set(model.AttrEdge, capability.EdgeBoth),
			getExpect(model.AttrEdge, capability.EdgeBoth),
		},
	},

	// Direction transitions release and re-reserve the line between states,
	// so the second round-trip starts from a fresh activation.
	409: {
		CaseID: 409,
		Name:   "input to output",
		Modes:  singleOnly,
		Steps: []model.Step{
			activate(),
			set(model.AttrDirection, capability.DirectionIn),
			get(model.AttrValue),
			deactivate(),
			activate(),
			set(model.AttrDirection, capability.DirectionOut),
			set(model.AttrValue, capability.ValueHigh),
			getExpect(model.AttrValue, capability.ValueHigh),
		},
	},

	410: {
		CaseID: 410,
		Name:   "output to input",
		Modes:  singleOnly,
		Steps: []model.Step{
			activate(),
			set(model.AttrDirection, capability.DirectionOut),
			set(model.AttrValue, capability.ValueHigh),
			deactivate(),
			activate(),
			set(model.AttrDirection, capability.DirectionIn),
			get(model.AttrValue),
		},
	},

	411: edgeTransition(411, "edge falling to rising", capability.EdgeFalling, capability.EdgeRising),
	412: edgeTransition(412, "edge rising to falling", capability.EdgeRising, capability.EdgeFalling),
	413: edgeTransition(413, "edge rising to both", capability.EdgeRising, capability.EdgeBoth),
	416: edgeTransition(416, "edge none to both", capability.EdgeNone, capability.EdgeBoth),
	417: edgeTransition(417, "edge both to none", capability.EdgeBoth, capability.EdgeNone),
}
