package stages

// #region imports
import (
	"context"
	"fmt"
	"strings"

	"github.com/satyasetu/go-engine/internal/pipeline"
	"github.com/satyasetu/go-engine/internal/state"
	"github.com/satyasetu/go-engine/internal/telemetry"
)

// #endregion

// #region safety-stage

// Safety scans the query against the denylist. Unsafe queries get the
// fixed refusal text and zero confidence; the router then terminates the
// run without touching retrieval or generation.
type Safety struct {
	denylist []string
	sink     *telemetry.Sink
}

// NewSafety creates the safety stage with an ordered pattern denylist.
func NewSafety(denylist []string, sink *telemetry.Sink) *Safety {
	return &Safety{denylist: denylist, sink: sink}
}

// Name implements pipeline.Stage.
func (s *Safety) Name() string { return StageSafetyCheck }

// Run implements pipeline.Stage.
func (s *Safety) Run(_ context.Context, rec *state.Record) (pipeline.Outcome, error) {
	s.sink.Emit(telemetry.EventSafetyCheckStart, rec.RunID, map[string]any{
		"user_id":       rec.UserID,
		"query_preview": rec.QueryPreview(100),
	})

	lower := strings.ToLower(rec.QueryText)
	var matched []string
	for _, pattern := range s.denylist {
		if strings.Contains(lower, pattern) {
			matched = append(matched, fmt.Sprintf("unsafe_pattern:%s", pattern))
		}
	}

	rec.IsSafe = len(matched) == 0
	if !rec.IsSafe {
		rec.AddRiskFlags(matched...)
		rec.ResponseText = RefusalText
		rec.SetConfidence(0)
		s.sink.Emit(telemetry.EventSafetyBlock, rec.RunID, map[string]any{
			"user_id": rec.UserID,
			"reason":  matched,
		})
	}
	return pipeline.OutcomeOK, nil
}

// #endregion safety-stage

// #region safety-router

// RouteAfterSafety terminates unsafe runs before any further stage.
func RouteAfterSafety(rec *state.Record) string {
	if rec.IsSafe {
		return StageIntentRouter
	}
	return pipeline.Terminal
}

// #endregion safety-router
