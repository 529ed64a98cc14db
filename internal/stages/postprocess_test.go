package stages

import (
	"context"
	"testing"

	"github.com/satyasetu/go-engine/internal/pipeline"
	"github.com/satyasetu/go-engine/internal/telemetry"
)

func TestPostProcess(t *testing.T) {
	tests := []struct {
		name           string
		response       string
		confidence     float32
		wantResponse   string
		wantConfidence float32
		wantFlags      []string
	}{
		{
			"plain",
			"PM-KISAN provides income support to farmers.",
			0.85,
			"PM-KISAN provides income support to farmers.",
			0.85,
			nil,
		},
		{
			"hallucination-marker-clamps",
			"I don't know the exact amount for this scheme.",
			0.9,
			"I don't know the exact amount for this scheme.",
			0.5,
			nil,
		},
		{
			"hallucination-marker-no-raise",
			"I'm not sure about that.",
			0.3,
			"I'm not sure about that.",
			0.3,
			nil,
		},
		{
			"advice-marker",
			"You should invest your savings in this fund.",
			0.8,
			AdviceDisclaimerText,
			0.8,
			[]string{RiskFlagAttemptedAdvice},
		},
		{
			"advice-marker-case-insensitive",
			"File a LAWSUIT against them immediately.",
			0.8,
			AdviceDisclaimerText,
			0.8,
			[]string{RiskFlagAttemptedAdvice},
		},
	}

	sink := telemetry.NewSink(telemetry.DefaultSinkConfig())
	defer sink.Close()
	stage := NewPostProcess(sink, 0.5)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := newRecord(t, "some query")
			rec.ResponseText = tt.response
			rec.SetConfidence(tt.confidence)

			outcome, err := stage.Run(context.Background(), rec)
			if err != nil {
				t.Fatalf("run: %v", err)
			}
			if outcome != pipeline.OutcomeOK {
				t.Fatalf("outcome: got %s, want ok", outcome)
			}
			if rec.ResponseText != tt.wantResponse {
				t.Errorf("response: got %q, want %q", rec.ResponseText, tt.wantResponse)
			}
			if rec.Confidence != tt.wantConfidence {
				t.Errorf("confidence: got %.2f, want %.2f", rec.Confidence, tt.wantConfidence)
			}
			if len(rec.RiskFlags) != len(tt.wantFlags) {
				t.Fatalf("flags: got %v, want %v", rec.RiskFlags, tt.wantFlags)
			}
			for i, f := range tt.wantFlags {
				if rec.RiskFlags[i] != f {
					t.Errorf("flag %d: got %q, want %q", i, rec.RiskFlags[i], f)
				}
			}
			if rec.CompletedAt.IsZero() {
				t.Error("completion timestamp not stamped")
			}
		})
	}
}
