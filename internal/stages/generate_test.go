package stages

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/satyasetu/go-engine/internal/pipeline"
	"github.com/satyasetu/go-engine/internal/state"
	"github.com/satyasetu/go-engine/internal/telemetry"
)

type fakeGenerator struct {
	lastReq GenerateRequest
	result  GenerateResult
	err     error
}

func (f *fakeGenerator) Generate(_ context.Context, req GenerateRequest) (GenerateResult, error) {
	f.lastReq = req
	if f.err != nil {
		return GenerateResult{}, f.err
	}
	return f.result, nil
}

type fakeRetriever struct {
	docs []state.ContextDoc
	err  error
}

func (f *fakeRetriever) Retrieve(context.Context, state.Intent, string) ([]state.ContextDoc, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.docs, nil
}

func TestGenerateSuccess(t *testing.T) {
	sink := telemetry.NewSink(telemetry.DefaultSinkConfig())
	defer sink.Close()

	gen := &fakeGenerator{result: GenerateResult{Text: "PM-KISAN pays eligible farmers.", Confidence: 0.85}}
	stage := NewGenerateResponse(gen, sink, 3)

	rec := newRecord(t, "is pm kisan real")
	rec.Intent = state.IntentSchemeLookup
	rec.SetRetrieved([]state.ContextDoc{
		{Content: "low", Source: "a", Confidence: 0.2},
		{Content: "high", Source: "b", Confidence: 0.9},
		{Content: "mid", Source: "c", Confidence: 0.5},
		{Content: "tiny", Source: "d", Confidence: 0.1},
	})

	outcome, err := stage.Run(context.Background(), rec)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if outcome != pipeline.OutcomeOK {
		t.Fatalf("outcome: got %s, want ok", outcome)
	}
	if rec.ResponseText != "PM-KISAN pays eligible farmers." {
		t.Errorf("response: got %q", rec.ResponseText)
	}
	if rec.Confidence != 0.85 {
		t.Errorf("confidence: got %.2f, want 0.85", rec.Confidence)
	}

	// Top-K by confidence, highest first, bounded at 3.
	want := []string{"high", "mid", "low"}
	if len(gen.lastReq.Evidence) != len(want) {
		t.Fatalf("evidence: got %v, want %v", gen.lastReq.Evidence, want)
	}
	for i, w := range want {
		if gen.lastReq.Evidence[i] != w {
			t.Errorf("evidence %d: got %q, want %q", i, gen.lastReq.Evidence[i], w)
		}
	}
	if !strings.Contains(gen.lastReq.Prompt, "- high") {
		t.Error("prompt missing evidence lines")
	}
	if !strings.Contains(gen.lastReq.Prompt, "Intent: scheme_lookup") {
		t.Error("prompt missing intent")
	}
}

func TestGenerateDegradesOnCollaboratorFault(t *testing.T) {
	sink := telemetry.NewSink(telemetry.DefaultSinkConfig())
	defer sink.Close()

	gen := &fakeGenerator{err: errors.New("model service unavailable")}
	stage := NewGenerateResponse(gen, sink, 3)

	rec := newRecord(t, "hello")
	rec.Intent = state.IntentGeneralQuestion

	outcome, err := stage.Run(context.Background(), rec)
	if err != nil {
		t.Fatalf("degraded outcome must not surface an error, got %v", err)
	}
	if outcome != pipeline.OutcomeDegraded {
		t.Fatalf("outcome: got %s, want degraded", outcome)
	}
	if rec.ResponseText != DegradedText {
		t.Errorf("response: got %q, want degraded text", rec.ResponseText)
	}
	if rec.Confidence != 0 {
		t.Errorf("confidence: got %.2f, want 0", rec.Confidence)
	}
}

func TestGenerateCancelled(t *testing.T) {
	sink := telemetry.NewSink(telemetry.DefaultSinkConfig())
	defer sink.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gen := &fakeGenerator{err: context.Canceled}
	stage := NewGenerateResponse(gen, sink, 3)

	rec := newRecord(t, "hello")
	outcome, err := stage.Run(ctx, rec)
	if outcome != pipeline.OutcomeCancelled {
		t.Fatalf("outcome: got %s, want cancelled", outcome)
	}
	if err == nil {
		t.Fatal("cancelled outcome should carry the context error")
	}
}

func TestRetrieveDegradesOnCollaboratorFault(t *testing.T) {
	sink := telemetry.NewSink(telemetry.DefaultSinkConfig())
	defer sink.Close()

	stage := NewRetrieveContext(&fakeRetriever{err: errors.New("vector store down")}, sink)

	rec := newRecord(t, "pm kisan details")
	rec.Intent = state.IntentSchemeLookup

	outcome, err := stage.Run(context.Background(), rec)
	if err != nil {
		t.Fatalf("degraded outcome must not surface an error, got %v", err)
	}
	if outcome != pipeline.OutcomeDegraded {
		t.Fatalf("outcome: got %s, want degraded", outcome)
	}
	if len(rec.Retrieved) != 0 || len(rec.Sources) != 0 {
		t.Errorf("degraded retrieval must leave empty context, got %v / %v", rec.Retrieved, rec.Sources)
	}
}

func TestRetrievePopulatesSources(t *testing.T) {
	sink := telemetry.NewSink(telemetry.DefaultSinkConfig())
	defer sink.Close()

	stage := NewRetrieveContext(&fakeRetriever{docs: []state.ContextDoc{
		{Content: "PM-KISAN provides income support.", Source: "doc1", Confidence: 0.92},
	}}, sink)

	rec := newRecord(t, "is this pm kisan scheme real")
	rec.Intent = state.IntentSchemeLookup

	outcome, err := stage.Run(context.Background(), rec)
	if err != nil || outcome != pipeline.OutcomeOK {
		t.Fatalf("got (%s, %v), want (ok, nil)", outcome, err)
	}
	if len(rec.Sources) != 1 || rec.Sources[0] != "doc1" {
		t.Errorf("sources: got %v, want [doc1]", rec.Sources)
	}
}
