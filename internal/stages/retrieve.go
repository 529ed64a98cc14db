package stages

// #region imports
import (
	"context"
	"errors"
	"log"

	"github.com/satyasetu/go-engine/internal/pipeline"
	"github.com/satyasetu/go-engine/internal/state"
	"github.com/satyasetu/go-engine/internal/telemetry"
)

// #endregion

// #region retrieve-stage

// RetrieveContext calls the context-retrieval collaborator. Collaborator
// failure is non-fatal: the stage degrades to empty context and the run
// continues.
type RetrieveContext struct {
	retriever ContextRetriever
	sink      *telemetry.Sink
}

// NewRetrieveContext creates the retrieval stage.
func NewRetrieveContext(retriever ContextRetriever, sink *telemetry.Sink) *RetrieveContext {
	return &RetrieveContext{retriever: retriever, sink: sink}
}

// Name implements pipeline.Stage.
func (r *RetrieveContext) Name() string { return StageRetrieveContext }

// Run implements pipeline.Stage.
func (r *RetrieveContext) Run(ctx context.Context, rec *state.Record) (pipeline.Outcome, error) {
	r.sink.Emit(telemetry.EventRetrievalStart, rec.RunID, map[string]any{
		"intent":        string(rec.Intent),
		"query_preview": rec.QueryPreview(100),
	})

	docs, err := r.retriever.Retrieve(ctx, rec.Intent, rec.QueryText)
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return pipeline.OutcomeCancelled, ctx.Err()
		}
		// Collaborator fault or timeout: degrade to empty context. A fired
		// run deadline is sorted out by the executor after we return.
		log.Printf("[RETRIEVE] run %s: collaborator failed, degrading to empty context: %v", rec.RunID, err)
		rec.SetRetrieved(nil)
		r.sink.Emit(telemetry.EventRetrievalDegraded, rec.RunID, map[string]any{
			"error": err.Error(),
		})
		return pipeline.OutcomeDegraded, nil
	}

	rec.SetRetrieved(docs)
	return pipeline.OutcomeOK, nil
}

// #endregion retrieve-stage
