package replay

import (
	"context"
	"fmt"
	"strings"

	"github.com/satyasetu/go-engine/internal/codec"
	"github.com/satyasetu/go-engine/internal/engine"
	"github.com/satyasetu/go-engine/internal/telemetry"
)

// #region types
// Result captures the outcome of replaying one recorded turn.
type Result struct {
	TurnID   string
	Answer   engine.Answer
	Err      error
	Passed   bool
	Failures []string
}

// Summary provides aggregate stats from a replay run.
type Summary struct {
	TotalTurns int
	Passed     int
	Failed     int
}

// #endregion types

// #region offline-engine
// NewOfflineEngine builds an engine on the static collaborators, suitable
// for replaying fixtures without a model service. The returned sink is
// owned by the caller.
func NewOfflineEngine() (*engine.Engine, *telemetry.Sink, error) {
	sink := telemetry.NewSink(telemetry.DefaultSinkConfig())
	eng, err := engine.New(engine.Deps{
		Retriever: codec.NewStaticRetriever(),
		Generator: codec.NewStaticGenerator(),
		Sink:      sink,
	}, engine.DefaultConfig())
	if err != nil {
		sink.Close()
		return nil, nil, fmt.Errorf("build offline engine: %w", err)
	}
	return eng, sink, nil
}

// #endregion offline-engine

// #region replay
// Replay runs every fixture query through the engine in order and checks
// each turn's expectations.
func Replay(ctx context.Context, eng *engine.Engine, fixture *Fixture) []Result {
	results := make([]Result, 0, len(fixture.Queries))

	for _, q := range fixture.Queries {
		answer, err := eng.Process(ctx, q.ToRequest())
		if err != nil {
			results = append(results, Result{
				TurnID:   q.TurnID,
				Err:      err,
				Failures: []string{fmt.Sprintf("process: %v", err)},
			})
			continue
		}

		failures := check(q.Expect, answer)
		results = append(results, Result{
			TurnID:   q.TurnID,
			Answer:   answer,
			Passed:   len(failures) == 0,
			Failures: failures,
		})
	}

	return results
}

// check compares one answer against the turn's expectations.
func check(expect FixtureExpectation, answer engine.Answer) []string {
	var failures []string

	if expect.Intent != "" && answer.Intent != expect.Intent {
		failures = append(failures, fmt.Sprintf("intent: got %q, want %q", answer.Intent, expect.Intent))
	}
	if expect.IsSafe != nil && answer.IsSafe != *expect.IsSafe {
		failures = append(failures, fmt.Sprintf("is_safe: got %v, want %v", answer.IsSafe, *expect.IsSafe))
	}
	if expect.RiskLevel != "" && answer.RiskLevel != expect.RiskLevel {
		failures = append(failures, fmt.Sprintf("risk_level: got %q, want %q", answer.RiskLevel, expect.RiskLevel))
	}
	if expect.ResponseContains != "" && !strings.Contains(answer.ResponseText, expect.ResponseContains) {
		failures = append(failures, fmt.Sprintf("response %q missing %q", answer.ResponseText, expect.ResponseContains))
	}
	if expect.MaxConfidence != nil && answer.Confidence > *expect.MaxConfidence {
		failures = append(failures, fmt.Sprintf("confidence: got %.2f, want <= %.2f", answer.Confidence, *expect.MaxConfidence))
	}
	for _, flag := range expect.RiskFlags {
		if !containsFlag(answer.RiskFlags, flag) {
			failures = append(failures, fmt.Sprintf("risk flag %q missing from %v", flag, answer.RiskFlags))
		}
	}

	return failures
}

func containsFlag(flags []string, want string) bool {
	for _, f := range flags {
		if f == want {
			return true
		}
	}
	return false
}

// Summarize computes aggregate stats from replay results.
func Summarize(results []Result) Summary {
	s := Summary{TotalTurns: len(results)}
	for _, r := range results {
		if r.Passed {
			s.Passed++
		} else {
			s.Failed++
		}
	}
	return s
}

// #endregion replay
