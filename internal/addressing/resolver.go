// Package addressing converts a run's addressing mode, discovered base pin
// and user-supplied pin offsets into the concrete absolute line identifiers a
// scenario operates on.
package addressing

import (
	"github.com/gbfwtest/gpiocert/internal/model"
	gpioerrors "github.com/gbfwtest/gpiocert/pkg/errors"
)

// Resolve derives the ordered set of absolute lines for the run. Offsets are
// relative to the controller's base pin. Multiple mode preserves offset order
// and performs no de-duplication; callers may legitimately target the same
// line twice.
func Resolve(run *model.ExecutionContext) (model.ResolvedLines, error) {
	if run == nil {
		return nil, gpioerrors.NewAddressingError("", "execution context is nil")
	}

	switch run.Mode {
	case model.ModeSingle:
		return model.ResolvedLines{run.BasePin + run.PinOffsets[0]}, nil

	case model.ModeMultiple:
		return model.ResolvedLines{
			run.BasePin + run.PinOffsets[0],
			run.BasePin + run.PinOffsets[1],
			run.BasePin + run.PinOffsets[2],
		}, nil

	case model.ModeAll:
		if run.LineCount == 0 {
			return nil, gpioerrors.NewAddressingError(run.Mode.String(), "controller reports zero lines")
		}
		lines := make(model.ResolvedLines, run.LineCount)
		for i := range lines {
			lines[i] = run.BasePin + i
		}
		return lines, nil

	default:
		return nil, gpioerrors.NewAddressingError(run.Mode.String(), "mode does not resolve to any line")
	}
}
