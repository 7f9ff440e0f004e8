package model

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gpioerrors "github.com/gbfwtest/gpiocert/pkg/errors"
)

func TestParseMode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		tag  string
		want Mode
	}{
		{"s", ModeSingle},
		{"S", ModeSingle},
		{"m", ModeMultiple},
		{"M", ModeMultiple},
		{"a", ModeAll},
		{"A", ModeAll},
	}

	for _, tc := range cases {
		mode, err := ParseMode(tc.tag)
		require.NoError(t, err, "tag %q", tc.tag)
		assert.Equal(t, tc.want, mode, "tag %q", tc.tag)
	}
}

func TestParseModeRejectsUnknownTags(t *testing.T) {
	t.Parallel()

	for _, tag := range []string{"", "x", "sm", "all", "1"} {
		_, err := ParseMode(tag)
		assert.Error(t, err, "tag %q", tag)
	}
}

func TestScenarioSupportsMode(t *testing.T) {
	t.Parallel()

	sc := Scenario{Modes: []Mode{ModeSingle, ModeMultiple}}
	assert.True(t, sc.SupportsMode(ModeSingle))
	assert.True(t, sc.SupportsMode(ModeMultiple))
	assert.False(t, sc.SupportsMode(ModeAll))
	assert.False(t, sc.SupportsMode(ModeUnknown))
}

func TestStepRepetitions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, Step{}.Repetitions())
	assert.Equal(t, 1, Step{Times: 1}.Repetitions())
	assert.Equal(t, 10, Step{Times: 10}.Repetitions())
}

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		want int
	}{
		{nil, ExitPass},
		{gpioerrors.NewVerificationError("edge", 5, "rising", "both"), ExitMismatch},
		{gpioerrors.NewAddressingError("x", "bad mode"), ExitInvalidInput},
		{gpioerrors.NewUnknownCaseError(999), ExitUnknownCase},
		{gpioerrors.NewParseError("gpiocert.yaml", 3, fmt.Errorf("bad yaml")), ExitConfig},
		{gpioerrors.NewCapabilityError("export", 470, fmt.Errorf("EBUSY")), ExitCapability},
		{fmt.Errorf("anything else"), ExitCapability},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ExitCodeFor(tc.err))
	}
}

func TestCaseResultExitCode(t *testing.T) {
	t.Parallel()

	pass := &CaseResult{Status: StatusSuccess}
	assert.Equal(t, ExitPass, pass.ExitCode())
	assert.True(t, pass.Passed())

	fail := &CaseResult{
		Status: StatusFailed,
		Error:  gpioerrors.NewVerificationError("value", 470, "0", "1"),
	}
	assert.Equal(t, ExitMismatch, fail.ExitCode())
	assert.False(t, fail.Passed())
}
