// Package engine interprets scenario step tables against the line
// capability. One generic sequencer replaces the per-case procedures of the
// original fixture: steps run strictly in order, each blocking until its
// capability call returns, and the case verdict follows the outcome of the
// last executed main-phase step.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/gbfwtest/gpiocert/internal/capability"
	"github.com/gbfwtest/gpiocert/internal/logger"
	"github.com/gbfwtest/gpiocert/internal/model"
	"github.com/gbfwtest/gpiocert/internal/verify"
	gpioerrors "github.com/gbfwtest/gpiocert/pkg/errors"
)

// Executor runs one scenario per invocation against a line capability.
type Executor struct {
	cap capability.Capability
	log *logger.Logger
}

// NewExecutor creates an Executor bound to the given capability.
func NewExecutor(lc capability.Capability, log *logger.Logger) *Executor {
	return &Executor{cap: lc, log: log}
}

// Run executes the scenario's steps in order and returns the aggregated case
// result.
//
// Result aggregation is last-write-wins at every level: the case verdict is
// the outcome of the last executed main-phase step, and within a step each
// capability invocation supersedes the previous one, so a transient failure
// followed by a success leaves the step passing. Intermediate failures are
// logged and retained in Steps but are superseded by later outcomes.
//
// Recovery is unconditional: every line the run activated and did not already
// release is deactivated before returning, even when steps failed. Recovery
// outcomes never override the main verdict.
func (e *Executor) Run(ctx context.Context, sc model.Scenario, run *model.ExecutionContext, lines model.ResolvedLines) *model.CaseResult {
	start := time.Now()

	result := &model.CaseResult{
		CaseID: sc.CaseID,
		Name:   sc.Name,
	}

	if !sc.SupportsMode(run.Mode) {
		err := gpioerrors.NewAddressingError(run.Mode.String(),
			fmt.Sprintf("case %d does not support this addressing mode", sc.CaseID))
		result.Status = model.StatusFailed
		result.Error = err
		result.Duration = time.Since(start)
		return result
	}

	if len(lines) == 0 && needsLines(sc) {
		err := gpioerrors.NewAddressingError(run.Mode.String(), "no lines resolved for run")
		result.Status = model.StatusFailed
		result.Error = err
		result.Duration = time.Since(start)
		return result
	}

	active := newLineSet()
	caseLog := e.log.WithCase(sc.CaseID)

	var last model.StepResult
	for _, step := range sc.Steps {
		res := e.executeStep(ctx, step, run.Mode, lines, active)
		result.Steps = append(result.Steps, res)
		last = res

		stepLog := caseLog.WithFields(map[string]any{
			"step":   res.Name,
			"status": res.Status,
		})
		if res.Failed() {
			stepLog.Error(res.Error, "step failed; continuing to recovery")
		} else {
			stepLog.Debug(res.Message)
		}
	}

	result.Recovery = e.recover(ctx, run.Mode, active)

	result.Status = last.Status
	result.Error = last.Error
	if len(sc.Steps) == 0 {
		result.Status = model.StatusFailed
		result.Error = fmt.Errorf("scenario %d defines no steps", sc.CaseID)
	}
	result.Duration = time.Since(start)
	return result
}

func (e *Executor) executeStep(ctx context.Context, step model.Step, mode model.Mode, lines model.ResolvedLines, active *lineSet) model.StepResult {
	start := time.Now()

	res := model.StepResult{
		Name:   stepName(step),
		Status: model.StatusSuccess,
	}

	var lastErr error
	var observed string

	switch step.Op {
	case model.OpActivate:
		lastErr = e.activate(ctx, mode, lines, active)

	case model.OpDeactivate:
		lastErr = e.deactivate(ctx, mode, lines, active)

	case model.OpSet:
		for i := 0; i < step.Repetitions(); i++ {
			for _, line := range lines {
				lastErr = e.setAttr(ctx, line, step.Attr, step.Value)
			}
		}

	case model.OpGet:
		for i := 0; i < step.Repetitions(); i++ {
			for _, line := range lines {
				value, err := e.getAttr(ctx, line, step.Attr)
				lastErr = err
				if err != nil {
					continue
				}
				observed = value
				if step.Expect != "" {
					lastErr = verify.Compare(step.Attr.String(), line, value, step.Expect)
				}
			}
		}

	case model.OpCount:
		count, err := e.cap.LineCount(ctx)
		if err != nil {
			lastErr = err
		} else {
			observed = fmt.Sprintf("%d", count)
		}

	default:
		lastErr = fmt.Errorf("unsupported step op %v", step.Op)
	}

	if lastErr != nil {
		res.Status = model.StatusFailed
		res.Error = lastErr
		res.Message = lastErr.Error()
	} else if observed != "" {
		res.Message = fmt.Sprintf("observed %q", observed)
	}
	res.Duration = time.Since(start)
	return res
}

// activate reserves the resolved lines. Multiple mode uses the group
// variant; Single and All reserve one line at a time.
func (e *Executor) activate(ctx context.Context, mode model.Mode, lines model.ResolvedLines, active *lineSet) error {
	if mode == model.ModeMultiple {
		if err := e.cap.ActivateGroup(ctx, lines); err != nil {
			return err
		}
		active.add(lines...)
		return nil
	}

	var lastErr error
	for _, line := range lines {
		lastErr = e.cap.Activate(ctx, line)
		if lastErr != nil {
			continue
		}
		active.add(line)
	}
	return lastErr
}

func (e *Executor) deactivate(ctx context.Context, mode model.Mode, lines model.ResolvedLines, active *lineSet) error {
	if mode == model.ModeMultiple {
		if err := e.cap.DeactivateGroup(ctx, lines); err != nil {
			return err
		}
		active.remove(lines...)
		return nil
	}

	var lastErr error
	for _, line := range lines {
		lastErr = e.cap.Deactivate(ctx, line)
		if lastErr != nil {
			continue
		}
		active.remove(line)
	}
	return lastErr
}

// recover releases every line still activated when the main phase ended.
// Failures are logged and reported in the recovery results but never affect
// the case verdict.
func (e *Executor) recover(ctx context.Context, mode model.Mode, active *lineSet) []model.StepResult {
	remaining := active.snapshot()
	if len(remaining) == 0 {
		return nil
	}

	start := time.Now()
	res := model.StepResult{
		Name:   "recovery deactivate",
		Status: model.StatusSuccess,
	}

	var err error
	if mode == model.ModeMultiple {
		err = e.cap.DeactivateGroup(ctx, remaining)
	} else {
		for _, line := range remaining {
			if derr := e.cap.Deactivate(ctx, line); derr != nil {
				err = derr
			}
		}
	}

	if err != nil {
		res.Status = model.StatusFailed
		res.Error = err
		res.Message = err.Error()
		e.log.WithFields(map[string]any{"lines": remaining}).Error(err, "recovery deactivation failed")
	} else {
		res.Message = fmt.Sprintf("released %d line(s)", len(remaining))
	}
	res.Duration = time.Since(start)
	return []model.StepResult{res}
}

func (e *Executor) setAttr(ctx context.Context, line int, attr model.Attr, value string) error {
	switch attr {
	case model.AttrDirection:
		return e.cap.SetDirection(ctx, line, value)
	case model.AttrValue:
		return e.cap.SetValue(ctx, line, value)
	case model.AttrEdge:
		return e.cap.SetEdge(ctx, line, value)
	default:
		return fmt.Errorf("attribute %v is not writable", attr)
	}
}

func (e *Executor) getAttr(ctx context.Context, line int, attr model.Attr) (string, error) {
	switch attr {
	case model.AttrDirection:
		return e.cap.Direction(ctx, line)
	case model.AttrValue:
		return e.cap.Value(ctx, line)
	case model.AttrEdge:
		return e.cap.Edge(ctx, line)
	default:
		return "", fmt.Errorf("attribute %v is not readable", attr)
	}
}

func needsLines(sc model.Scenario) bool {
	for _, step := range sc.Steps {
		if step.Op != model.OpCount {
			return true
		}
	}
	return false
}

func stepName(step model.Step) string {
	switch step.Op {
	case model.OpSet:
		name := fmt.Sprintf("set %s=%s", step.Attr, step.Value)
		if step.Times > 1 {
			name = fmt.Sprintf("%s x%d", name, step.Times)
		}
		return name
	case model.OpGet:
		name := fmt.Sprintf("get %s", step.Attr)
		if step.Expect != "" {
			name = fmt.Sprintf("%s expect %s", name, step.Expect)
		}
		if step.Times > 1 {
			name = fmt.Sprintf("%s x%d", name, step.Times)
		}
		return name
	default:
		return step.Op.String()
	}
}
