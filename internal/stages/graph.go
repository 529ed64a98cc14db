package stages

// #region imports
import (
	"github.com/satyasetu/go-engine/internal/pipeline"
	"github.com/satyasetu/go-engine/internal/telemetry"
)

// #endregion

// #region build-graph

// BuildGraph compiles the assistant pipeline topology:
//
//	safety_check ─┬→ intent_router ─┬→ retrieve_context → generate_response → post_process → terminal
//	              └→ terminal       └→ generate_response (offline: retrieval skipped)
func BuildGraph(retriever ContextRetriever, generator ResponseGenerator, sink *telemetry.Sink, config Config) (*pipeline.Graph, error) {
	return pipeline.NewBuilder().
		AddStage(NewSafety(config.Denylist, sink)).
		AddStage(NewIntentRouter(sink)).
		AddStage(NewRetrieveContext(retriever, sink)).
		AddStage(NewGenerateResponse(generator, sink, config.TopK)).
		AddStage(NewPostProcess(sink, config.HallucinationCap)).
		SetEntry(StageSafetyCheck).
		AddConditionalEdge(StageSafetyCheck, RouteAfterSafety, StageIntentRouter, pipeline.Terminal).
		AddConditionalEdge(StageIntentRouter, RouteAfterIntent, StageRetrieveContext, StageGenerateResponse).
		AddEdge(StageRetrieveContext, StageGenerateResponse).
		AddEdge(StageGenerateResponse, StagePostProcess).
		AddEdge(StagePostProcess, pipeline.Terminal).
		Compile()
}

// #endregion build-graph
