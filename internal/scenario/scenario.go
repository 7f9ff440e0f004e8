// Package scenario holds the certified test case definitions and the
// dispatcher that selects one by numeric identifier. Each case is a data
// table of steps interpreted by the engine.
package scenario

import (
	"sort"

	"github.com/gbfwtest/gpiocert/internal/model"
	gpioerrors "github.com/gbfwtest/gpiocert/pkg/errors"
)

// Lookup returns the scenario registered for the case identifier. Unknown
// identifiers fail with an UnknownCaseError before any capability call.
func Lookup(caseID int) (model.Scenario, error) {
	sc, ok := cases[caseID]
	if !ok {
		return model.Scenario{}, gpioerrors.NewUnknownCaseError(caseID)
	}
	return sc, nil
}

// Cases returns every registered case identifier in ascending order.
func Cases() []int {
	ids := make([]int, 0, len(cases))
	for id := range cases {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// All returns every registered scenario in case order.
func All() []model.Scenario {
	ids := Cases()
	out := make([]model.Scenario, 0, len(ids))
	for _, id := range ids {
		out = append(out, cases[id])
	}
	return out
}
