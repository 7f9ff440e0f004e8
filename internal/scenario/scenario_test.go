package scenario

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gbfwtest/gpiocert/internal/model"
	gpioerrors "github.com/gbfwtest/gpiocert/pkg/errors"
)

// supportedCases is the full certified case set; the registry must cover
// exactly these identifiers.
var supportedCases = []int{
	263, 264, 267, 270, 271, 272, 273, 274, 276, 277,
	279, 281, 282, 286, 287, 288,
	409, 410, 411, 412, 413, 416, 417,
}

func TestRegistryCompleteness(t *testing.T) {
	t.Parallel()

	assert.Equal(t, supportedCases, Cases())

	for _, id := range supportedCases {
		sc, err := Lookup(id)
		require.NoError(t, err, "case %d", id)
		assert.Equal(t, id, sc.CaseID, "case %d", id)
		assert.NotEmpty(t, sc.Name, "case %d", id)
		assert.NotEmpty(t, sc.Modes, "case %d", id)
		assert.NotEmpty(t, sc.Steps, "case %d", id)
	}
}

func TestLookupUnknownCase(t *testing.T) {
	t.Parallel()

	for _, id := range []int{0, -1, 1, 262, 999} {
		_, err := Lookup(id)
		require.Error(t, err, "case %d", id)

		var unknown *gpioerrors.UnknownCaseError
		require.True(t, errors.As(err, &unknown), "case %d", id)
		assert.Equal(t, id, unknown.CaseID)
	}
}

func TestEveryActivatingScenarioStartsWithActivate(t *testing.T) {
	t.Parallel()

	for _, sc := range All() {
		if sc.CaseID == 263 {
			continue // count query touches no lines
		}
		require.NotEmpty(t, sc.Steps, "case %d", sc.CaseID)
		assert.Equal(t, model.OpActivate, sc.Steps[0].Op, "case %d", sc.CaseID)
	}
}

func TestVerifyingStepsCarryLiteralExpectations(t *testing.T) {
	t.Parallel()

	valid := map[model.Attr]map[string]bool{
		model.AttrDirection: {"in": true, "out": true},
		model.AttrValue:     {"0": true, "1": true},
		model.AttrEdge:      {"none": true, "rising": true, "falling": true, "both": true},
	}

	for _, sc := range All() {
		for _, step := range sc.Steps {
			if step.Op == model.OpSet {
				assert.True(t, valid[step.Attr][step.Value],
					"case %d writes invalid %s literal %q", sc.CaseID, step.Attr, step.Value)
			}
			if step.Op == model.OpGet && step.Expect != "" {
				assert.True(t, valid[step.Attr][step.Expect],
					"case %d expects invalid %s literal %q", sc.CaseID, step.Attr, step.Expect)
			}
		}
	}
}

func TestRepeatedCasesUseTenRepetitions(t *testing.T) {
	t.Parallel()

	expect := map[int]struct {
		op   model.Op
		attr model.Attr
	}{
		271: {model.OpGet, model.AttrDirection},
		274: {model.OpSet, model.AttrDirection},
		277: {model.OpSet, model.AttrDirection},
	}

	for id, want := range expect {
		sc, err := Lookup(id)
		require.NoError(t, err)

		var found bool
		for _, step := range sc.Steps {
			if step.Times == repeatedTimes {
				found = true
				assert.Equal(t, want.op, step.Op, "case %d", id)
				assert.Equal(t, want.attr, step.Attr, "case %d", id)
			}
		}
		assert.True(t, found, "case %d must repeat ten times", id)
	}
}

func TestTransitionCasesReactivateBetweenRoundTrips(t *testing.T) {
	t.Parallel()

	for _, id := range []int{409, 410} {
		sc, err := Lookup(id)
		require.NoError(t, err)

		var activations, releases int
		for _, step := range sc.Steps {
			switch step.Op {
			case model.OpActivate:
				activations++
			case model.OpDeactivate:
				releases++
			}
		}
		assert.Equal(t, 2, activations, "case %d", id)
		assert.Equal(t, 1, releases, "case %d", id)
	}
}

func TestModeSupportMatchesCertifiedFixture(t *testing.T) {
	t.Parallel()

	singleOnlyCases := []int{271, 274, 277, 281, 282, 286, 287, 288, 409, 410, 411, 412, 413, 416, 417}
	for _, id := range singleOnlyCases {
		sc, err := Lookup(id)
		require.NoError(t, err)
		assert.Equal(t, []model.Mode{model.ModeSingle}, sc.Modes, "case %d", id)
	}

	for _, id := range []int{264, 267, 270, 273, 276, 279} {
		sc, err := Lookup(id)
		require.NoError(t, err)
		assert.True(t, sc.SupportsMode(model.ModeSingle), "case %d", id)
		assert.True(t, sc.SupportsMode(model.ModeMultiple), "case %d", id)
		assert.False(t, sc.SupportsMode(model.ModeAll), "case %d", id)
	}

	for _, id := range []int{263, 272} {
		sc, err := Lookup(id)
		require.NoError(t, err)
		assert.True(t, sc.SupportsMode(model.ModeAll), "case %d", id)
	}
}
