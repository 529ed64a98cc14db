package engine

// #region imports
import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/satyasetu/go-engine/internal/pipeline"
	"github.com/satyasetu/go-engine/internal/provenance"
	"github.com/satyasetu/go-engine/internal/stages"
	"github.com/satyasetu/go-engine/internal/state"
	"github.com/satyasetu/go-engine/internal/stream"
	"github.com/satyasetu/go-engine/internal/telemetry"
)

// #endregion

// #region request-answer

// Request is one user turn.
type Request struct {
	UserID      string
	QueryText   string
	Language    state.Language
	OfflineMode bool
}

// Answer is the engine's reply for a finished run. CompletedAt is zero for
// cancelled runs.
type Answer struct {
	RunID        string    `json:"run_id"`
	ResponseText string    `json:"response_text"`
	Intent       string    `json:"intent"`
	Confidence   float32   `json:"confidence"`
	IsSafe       bool      `json:"is_safe"`
	RiskLevel    string    `json:"risk_level"`
	RiskFlags    []string  `json:"risk_flags,omitempty"`
	Sources      []string  `json:"sources,omitempty"`
	Outcome      string    `json:"outcome"`
	CompletedAt  time.Time `json:"completed_at,omitzero"`
}

// #endregion request-answer

// #region deps

// Deps are the engine's injected collaborators. Provenance may be nil;
// runs are then not persisted.
type Deps struct {
	Retriever  stages.ContextRetriever
	Generator  stages.ResponseGenerator
	Sink       *telemetry.Sink
	Provenance *provenance.Store
}

// Config tunes the pipeline and stages.
type Config struct {
	Pipeline pipeline.Config
	Stages   stages.Config
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		Pipeline: pipeline.DefaultConfig(),
		Stages:   stages.DefaultConfig(),
	}
}

// #endregion deps

// #region engine

// Engine compiles the pipeline once and serves concurrent runs over it.
type Engine struct {
	exec    *pipeline.Executor
	adapter *stream.Adapter
	deps    Deps
}

// New wires and compiles the engine. The graph is validated here; a wiring
// mistake fails startup, never a run.
func New(deps Deps, config Config) (*Engine, error) {
	graph, err := stages.BuildGraph(deps.Retriever, deps.Generator, deps.Sink, config.Stages)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}
	exec := pipeline.NewExecutor(graph, deps.Sink, config.Pipeline)
	return &Engine{
		exec:    exec,
		adapter: stream.NewAdapter(exec),
		deps:    deps,
	}, nil
}

// #endregion engine

// #region process

// Process runs one request to completion. Validation faults are the only
// error path; pipeline faults come back as a system-error answer.
func (e *Engine) Process(ctx context.Context, req Request) (Answer, error) {
	rec, err := state.NewRecord(req.UserID, req.QueryText, req.Language, req.OfflineMode)
	if err != nil {
		return Answer{}, err
	}

	log.Printf("[ENGINE] run %s start: user=%s lang=%s offline=%v query=%q",
		rec.RunID, rec.UserID, rec.Language, rec.OfflineMode, rec.QueryPreview(60))

	result := e.exec.Run(ctx, rec)
	e.logProvenance(rec, result)

	log.Printf("[ENGINE] run %s done: outcome=%s intent=%s confidence=%.2f path=%s",
		rec.RunID, result.Outcome, rec.Intent, rec.Confidence, pipeline.Describe(result.Transitions))

	return answerFrom(rec, result.Outcome), nil
}

// ProcessStream runs one request and returns its ordered event stream. The
// final event carries the answer-bearing record; the channel then closes.
func (e *Engine) ProcessStream(ctx context.Context, req Request) (<-chan stream.Event, error) {
	rec, err := state.NewRecord(req.UserID, req.QueryText, req.Language, req.OfflineMode)
	if err != nil {
		return nil, err
	}

	log.Printf("[ENGINE] run %s start (stream): user=%s query=%q",
		rec.RunID, rec.UserID, rec.QueryPreview(60))

	events := e.adapter.RunObserved(ctx, rec, func(result pipeline.RunResult) {
		e.logProvenance(rec, result)
		log.Printf("[ENGINE] run %s done (stream): outcome=%s intent=%s",
			rec.RunID, result.Outcome, rec.Intent)
	})
	return events, nil
}

// #endregion process

// #region answer

// AnswerFromEvent converts a terminal stream event into an Answer.
func AnswerFromEvent(ev stream.Event) (Answer, bool) {
	if ev.Record == nil || ev.Result == nil {
		return Answer{}, false
	}
	return answerFrom(ev.Record, ev.Result.Outcome), true
}

func answerFrom(rec *state.Record, outcome pipeline.Outcome) Answer {
	return Answer{
		RunID:        rec.RunID,
		ResponseText: rec.ResponseText,
		Intent:       string(rec.Intent),
		Confidence:   rec.Confidence,
		IsSafe:       rec.IsSafe,
		RiskLevel:    rec.RiskLevel(),
		RiskFlags:    rec.RiskFlags,
		Sources:      rec.Sources,
		Outcome:      string(outcome),
		CompletedAt:  rec.CompletedAt,
	}
}

// #endregion answer

// #region provenance

// logProvenance persists the run off the critical path. Failures are logged
// and swallowed; audit storage never affects the answer.
func (e *Engine) logProvenance(rec *state.Record, result pipeline.RunResult) {
	if e.deps.Provenance == nil {
		return
	}
	if err := e.deps.Provenance.LogRun(rec, result.Transitions, result.Outcome); err != nil {
		log.Printf("[ENGINE] run %s: provenance write failed: %v", rec.RunID, err)
	}
}

// #endregion provenance
