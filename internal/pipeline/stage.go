package pipeline

// #region imports
import (
	"context"
	"time"

	"github.com/satyasetu/go-engine/internal/state"
)

// #endregion

// #region outcome

// Outcome tags how a stage (or a whole run) finished.
type Outcome string

const (
	OutcomeOK        Outcome = "ok"
	OutcomeDegraded  Outcome = "degraded"  // collaborator fault absorbed locally
	OutcomeError     Outcome = "error"     // unexpected fault, converted by the executor
	OutcomeCancelled Outcome = "cancelled" // run-scoped cancellation observed
)

// #endregion outcome

// #region stage

// Stage is one unit of pipeline work. Run mutates the record in place and
// must respect ctx: when the run-scoped signal fires, abort at the next
// suspension point leaving only fields the stage owns partially written.
// A returned error is an unexpected fault; declared fallbacks are reported
// as OutcomeDegraded with a nil error.
type Stage interface {
	Name() string
	Run(ctx context.Context, rec *state.Record) (Outcome, error)
}

// #endregion stage

// #region router

// Router is a pure function choosing the next stage name from the current
// state. It runs immediately after its source stage completes.
type Router func(rec *state.Record) string

// Terminal is the closed set's single terminal marker.
const Terminal = "__terminal__"

// #endregion router

// #region transition

// Transition records one executed stage for the run's ordered trace.
type Transition struct {
	Stage   string
	Start   time.Time
	End     time.Time
	Outcome Outcome
}

// #endregion transition
