package pipeline

// #region imports
import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/satyasetu/go-engine/internal/state"
	"github.com/satyasetu/go-engine/internal/telemetry"
)

// #endregion

// #region constants

// SystemErrorText is the fixed terminal response for unexpected faults.
const SystemErrorText = "I'm experiencing technical difficulties. Please try again."

// RiskFlagSystemError marks runs terminated by the executor.
const RiskFlagSystemError = "system_error"

// #endregion constants

// #region config

// Config bounds a single run.
type Config struct {
	RunTimeout   time.Duration // overall per-run deadline
	StageTimeout time.Duration // per-stage timeout, 0 disables
	MaxSteps     int           // routing-loop guard
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		RunTimeout:   30 * time.Second,
		StageTimeout: 10 * time.Second,
		MaxSteps:     16,
	}
}

// #endregion config

// #region result

// RunResult is what a completed (or terminated) run hands back.
type RunResult struct {
	Record      *state.Record
	Transitions []Transition
	Outcome     Outcome // OutcomeOK, OutcomeCancelled, or OutcomeError
}

// #endregion result

// #region executor

// Executor drives one run over a compiled graph: execute stage, route,
// repeat until Terminal. Unexpected stage faults never reach the caller;
// they are converted into the fixed system-error terminal state.
type Executor struct {
	graph  *Graph
	sink   *telemetry.Sink
	config Config
}

// NewExecutor wires an executor. The sink is injected, never global.
func NewExecutor(graph *Graph, sink *telemetry.Sink, config Config) *Executor {
	if config.MaxSteps <= 0 {
		config.MaxSteps = DefaultConfig().MaxSteps
	}
	return &Executor{graph: graph, sink: sink, config: config}
}

// #endregion executor

// #region run

// Run executes the pipeline for rec. Observers receive each transition as
// it completes, in order; they are called on the run's goroutine.
func (e *Executor) Run(ctx context.Context, rec *state.Record, observers ...func(Transition)) RunResult {
	runCtx := ctx
	var cancel context.CancelFunc
	if e.config.RunTimeout > 0 {
		runCtx, cancel = context.WithTimeout(ctx, e.config.RunTimeout)
		defer cancel()
	}

	result := RunResult{Record: rec, Outcome: OutcomeOK}
	current := e.graph.Entry()

	for steps := 0; current != Terminal; steps++ {
		if steps >= e.config.MaxSteps {
			log.Printf("[EXEC] run %s exceeded %d steps at stage %q", rec.RunID, e.config.MaxSteps, current)
			e.applySystemError(rec)
			result.Outcome = OutcomeError
			break
		}

		stage, ok := e.graph.StageByName(current)
		if !ok {
			log.Printf("[EXEC] run %s routed to unknown stage %q", rec.RunID, current)
			e.applySystemError(rec)
			result.Outcome = OutcomeError
			break
		}

		tr := e.runStage(runCtx, stage, rec)
		result.Transitions = append(result.Transitions, tr)
		for _, obs := range observers {
			obs(tr)
		}

		if tr.Outcome == OutcomeCancelled {
			// Consumer cancellation is a normal early termination; an
			// expired run deadline is converted to the system-error state.
			if ctx.Err() != nil {
				result.Outcome = OutcomeCancelled
			} else {
				e.applySystemError(rec)
				result.Outcome = OutcomeError
			}
			break
		}
		if tr.Outcome == OutcomeError {
			e.applySystemError(rec)
			result.Outcome = OutcomeError
			break
		}

		next, err := e.graph.Next(current, rec)
		if err != nil {
			log.Printf("[EXEC] run %s: %v", rec.RunID, err)
			e.applySystemError(rec)
			result.Outcome = OutcomeError
			break
		}
		current = next
	}

	// Cancelled runs keep completed_at unset; everything else finalizes.
	if result.Outcome != OutcomeCancelled {
		rec.Finalize()
	}
	return result
}

// #endregion run

// #region run-stage

// runStage executes one stage under the per-stage timeout, recovering
// panics into OutcomeError.
func (e *Executor) runStage(ctx context.Context, stage Stage, rec *state.Record) (tr Transition) {
	stageCtx := ctx
	var cancel context.CancelFunc
	if e.config.StageTimeout > 0 {
		stageCtx, cancel = context.WithTimeout(ctx, e.config.StageTimeout)
		defer cancel()
	}

	tr = Transition{Stage: stage.Name(), Start: time.Now().UTC()}
	e.sink.Emit(telemetry.EventStageStart, rec.RunID, map[string]any{
		"stage": stage.Name(),
	})

	defer func() {
		if r := recover(); r != nil {
			log.Printf("[EXEC] run %s: panic in stage %q: %v", rec.RunID, stage.Name(), r)
			tr.Outcome = OutcomeError
		}
		tr.End = time.Now().UTC()
		e.sink.Emit(telemetry.EventStageEnd, rec.RunID, map[string]any{
			"stage":       stage.Name(),
			"outcome":     string(tr.Outcome),
			"duration_ms": tr.End.Sub(tr.Start).Milliseconds(),
		})
	}()

	outcome, err := stage.Run(stageCtx, rec)
	switch {
	case err != nil && errors.Is(err, context.Canceled):
		tr.Outcome = OutcomeCancelled
	case err != nil && errors.Is(err, context.DeadlineExceeded) && ctx.Err() != nil:
		// The whole run deadline fired, not just this stage's budget.
		tr.Outcome = OutcomeCancelled
	case err != nil:
		log.Printf("[EXEC] run %s: stage %q failed: %v", rec.RunID, stage.Name(), err)
		tr.Outcome = OutcomeError
	case stageCtx.Err() != nil && ctx.Err() != nil:
		tr.Outcome = OutcomeCancelled
	default:
		tr.Outcome = outcome
	}
	return tr
}

// #endregion run-stage

// #region system-error

// applySystemError rewrites the record into the fixed system-error
// terminal state.
func (e *Executor) applySystemError(rec *state.Record) {
	rec.ResponseText = SystemErrorText
	rec.SetConfidence(0)
	rec.AddRiskFlags(RiskFlagSystemError)
	if rec.Intent == state.IntentUnset {
		rec.Intent = state.IntentError
	}
}

// #endregion system-error

// #region describe

// Describe summarizes a transition list for logs.
func Describe(transitions []Transition) string {
	s := ""
	for i, tr := range transitions {
		if i > 0 {
			s += " -> "
		}
		s += fmt.Sprintf("%s(%s)", tr.Stage, tr.Outcome)
	}
	return s
}

// #endregion describe
