package stages

// #region imports
import (
	"context"
	"strings"

	"github.com/satyasetu/go-engine/internal/pipeline"
	"github.com/satyasetu/go-engine/internal/state"
	"github.com/satyasetu/go-engine/internal/telemetry"
)

// #endregion

// #region classify

// ClassifyIntent classifies a query via ordered keyword-set membership.
// First matching rule wins; no model call.
func ClassifyIntent(queryText string, offlineMode bool) state.Intent {
	lower := strings.ToLower(queryText)

	for _, kw := range scamVerifyKeywords {
		if strings.Contains(lower, kw) {
			return state.IntentScamVerify
		}
	}
	for _, kw := range schemeLookupKeywords {
		if strings.Contains(lower, kw) {
			return state.IntentSchemeLookup
		}
	}
	if offlineMode || strings.Contains(lower, offlineKeyword) {
		return state.IntentOfflineFallback
	}
	return state.IntentGeneralQuestion
}

// #endregion classify

// #region intent-stage

// IntentRouter sets the record's intent exactly once per run.
type IntentRouter struct {
	sink *telemetry.Sink
}

// NewIntentRouter creates the intent classification stage.
func NewIntentRouter(sink *telemetry.Sink) *IntentRouter {
	return &IntentRouter{sink: sink}
}

// Name implements pipeline.Stage.
func (i *IntentRouter) Name() string { return StageIntentRouter }

// Run implements pipeline.Stage.
func (i *IntentRouter) Run(_ context.Context, rec *state.Record) (pipeline.Outcome, error) {
	rec.Intent = ClassifyIntent(rec.QueryText, rec.OfflineMode)

	i.sink.Emit(telemetry.EventIntentClassified, rec.RunID, map[string]any{
		"user_id": rec.UserID,
		"intent":  string(rec.Intent),
	})
	return pipeline.OutcomeOK, nil
}

// #endregion intent-stage

// #region intent-router-fn

// RouteAfterIntent skips retrieval for offline runs.
func RouteAfterIntent(rec *state.Record) string {
	if rec.Intent == state.IntentOfflineFallback {
		return StageGenerateResponse
	}
	return StageRetrieveContext
}

// #endregion intent-router-fn
