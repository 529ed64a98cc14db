package replay

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/satyasetu/go-engine/internal/engine"
)

// #region smoke-session

// TestSmokeSession loads the recorded session fixture, replays it through
// the offline engine, and requires every turn's expectations to hold. This
// is the primary regression test: if denylist, routing keywords, or
// guardrail parameters change, this catches drift.
func TestSmokeSession(t *testing.T) {
	fixture, err := LoadFixture(filepath.Join("testdata", "smoke_session.json"))
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}

	eng, sink, err := NewOfflineEngine()
	if err != nil {
		t.Fatalf("offline engine: %v", err)
	}
	defer sink.Close()

	results := Replay(context.Background(), eng, fixture)
	if len(results) != len(fixture.Queries) {
		t.Fatalf("results: got %d, want %d", len(results), len(fixture.Queries))
	}

	for _, r := range results {
		if !r.Passed {
			t.Errorf("turn %s failed: %v", r.TurnID, r.Failures)
		}
	}

	sum := Summarize(results)
	if sum.TotalTurns != len(fixture.Queries) || sum.Failed != 0 {
		t.Errorf("summary: %+v", sum)
	}
}

// #endregion smoke-session

// #region expectation-checks

func TestReplayReportsExpectationFailures(t *testing.T) {
	eng, sink, err := NewOfflineEngine()
	if err != nil {
		t.Fatalf("offline engine: %v", err)
	}
	defer sink.Close()

	fixture := &Fixture{
		Queries: []FixtureQuery{
			{
				TurnID:    "wrong-intent",
				UserID:    "u1",
				QueryText: "is this message a scam",
				Expect:    FixtureExpectation{Intent: "scheme_lookup"},
			},
		},
	}

	results := Replay(context.Background(), eng, fixture)
	if len(results) != 1 {
		t.Fatalf("results: got %d, want 1", len(results))
	}
	if results[0].Passed {
		t.Fatal("mismatched expectation must fail the turn")
	}
	if len(results[0].Failures) == 0 {
		t.Fatal("failure detail missing")
	}

	sum := Summarize(results)
	if sum.Failed != 1 || sum.Passed != 0 {
		t.Errorf("summary: %+v", sum)
	}
}

func TestReplayRecordsProcessErrors(t *testing.T) {
	eng, sink, err := NewOfflineEngine()
	if err != nil {
		t.Fatalf("offline engine: %v", err)
	}
	defer sink.Close()

	fixture := &Fixture{
		Queries: []FixtureQuery{
			{TurnID: "bad-turn", UserID: "u1", QueryText: "   "},
		},
	}

	results := Replay(context.Background(), eng, fixture)
	if results[0].Err == nil {
		t.Fatal("validation error must surface on the result")
	}
	if results[0].Passed {
		t.Fatal("errored turn must not pass")
	}
}

// #endregion expectation-checks

// #region check-unit

func TestCheck(t *testing.T) {
	safe := true
	maxConf := float32(0.5)

	answer := engine.Answer{
		Intent:       "scheme_lookup",
		IsSafe:       true,
		RiskLevel:    "low",
		ResponseText: "PM-KISAN pays farmers.",
		Confidence:   0.85,
		RiskFlags:    nil,
	}

	if failures := check(FixtureExpectation{Intent: "scheme_lookup", IsSafe: &safe, RiskLevel: "low"}, answer); len(failures) != 0 {
		t.Errorf("matching expectation failed: %v", failures)
	}
	if failures := check(FixtureExpectation{MaxConfidence: &maxConf}, answer); len(failures) != 1 {
		t.Errorf("confidence cap should fail once, got %v", failures)
	}
	if failures := check(FixtureExpectation{RiskFlags: []string{"attempted_advice"}}, answer); len(failures) != 1 {
		t.Errorf("missing flag should fail once, got %v", failures)
	}
}

// #endregion check-unit
