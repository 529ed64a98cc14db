package stream

// #region imports
import (
	"context"

	"github.com/satyasetu/go-engine/internal/pipeline"
	"github.com/satyasetu/go-engine/internal/state"
)

// #endregion

// #region events

// EventType discriminates adapter events.
type EventType string

const (
	// EventStage is emitted once per executed stage, in execution order.
	EventStage EventType = "stage"
	// EventComplete terminates a run that reached the terminal marker.
	EventComplete EventType = "complete"
	// EventCancelled terminates a run cut short by the consumer.
	EventCancelled EventType = "cancelled"
	// EventError terminates a run converted to the system-error state.
	EventError EventType = "error"
)

// Event is one ordered item on a run's stream. Stage events carry the
// transition; the single terminal event carries the finished record.
type Event struct {
	Type       EventType           `json:"type"`
	RunID      string              `json:"run_id"`
	Stage      string              `json:"stage,omitempty"`
	Outcome    pipeline.Outcome    `json:"outcome,omitempty"`
	DurationMS int64               `json:"duration_ms,omitempty"`
	Record     *state.Record       `json:"record,omitempty"`
	Result     *pipeline.RunResult `json:"-"`
}

// #endregion events

// #region adapter

// Adapter exposes a pipeline run as an ordered event stream: one event per
// stage transition followed by exactly one terminal event, then the channel
// closes. Events for a run never reorder. A consumer that cancels ctx stops
// receiving stage events; the terminal cancelled event is still attempted
// on a best-effort basis.
type Adapter struct {
	exec *pipeline.Executor
}

// NewAdapter wraps an executor.
func NewAdapter(exec *pipeline.Executor) *Adapter {
	return &Adapter{exec: exec}
}

// Run starts the pipeline for rec and returns the event channel. The
// channel is unbuffered for stage events so backpressure reaches the run;
// sends abandon silently once ctx is done.
func (a *Adapter) Run(ctx context.Context, rec *state.Record) <-chan Event {
	return a.RunObserved(ctx, rec, nil)
}

// RunObserved is Run with a completion hook: onDone fires with the run
// result after the pipeline finishes, even when the consumer cancelled and
// the terminal event could not be delivered.
func (a *Adapter) RunObserved(ctx context.Context, rec *state.Record, onDone func(pipeline.RunResult)) <-chan Event {
	out := make(chan Event)

	go func() {
		defer close(out)

		result := a.exec.Run(ctx, rec, func(tr pipeline.Transition) {
			a.deliver(ctx, out, Event{
				Type:       EventStage,
				RunID:      rec.RunID,
				Stage:      tr.Stage,
				Outcome:    tr.Outcome,
				DurationMS: tr.End.Sub(tr.Start).Milliseconds(),
			})
		})

		if onDone != nil {
			onDone(result)
		}

		final := Event{
			RunID:  rec.RunID,
			Record: result.Record,
			Result: &result,
		}
		switch result.Outcome {
		case pipeline.OutcomeCancelled:
			final.Type = EventCancelled
		case pipeline.OutcomeError:
			final.Type = EventError
		default:
			final.Type = EventComplete
		}
		final.Outcome = result.Outcome
		a.deliver(ctx, out, final)
	}()

	return out
}

// deliver sends unless the consumer is gone.
func (a *Adapter) deliver(ctx context.Context, out chan<- Event, ev Event) {
	select {
	case out <- ev:
	case <-ctx.Done():
	}
}

// #endregion adapter
