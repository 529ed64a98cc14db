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

// #region postprocess-stage

// PostProcess applies output guardrails: hallucination markers clamp
// confidence, advice markers replace the response with the fixed
// disclaimer. It also stamps completion.
type PostProcess struct {
	sink             *telemetry.Sink
	hallucinationCap float32
}

// NewPostProcess creates the post-processing stage.
func NewPostProcess(sink *telemetry.Sink, hallucinationCap float32) *PostProcess {
	if hallucinationCap <= 0 {
		hallucinationCap = DefaultConfig().HallucinationCap
	}
	return &PostProcess{sink: sink, hallucinationCap: hallucinationCap}
}

// Name implements pipeline.Stage.
func (p *PostProcess) Name() string { return StagePostProcess }

// Run implements pipeline.Stage.
func (p *PostProcess) Run(_ context.Context, rec *state.Record) (pipeline.Outcome, error) {
	for _, marker := range hallucinationMarkers {
		if strings.Contains(rec.ResponseText, marker) {
			rec.ClampConfidence(p.hallucinationCap)
			break
		}
	}

	lower := strings.ToLower(rec.ResponseText)
	for _, marker := range adviceMarkers {
		if strings.Contains(lower, marker) {
			rec.ResponseText = AdviceDisclaimerText
			rec.AddRiskFlags(RiskFlagAttemptedAdvice)
			break
		}
	}

	rec.Finalize()

	p.sink.Emit(telemetry.EventResponseComplete, rec.RunID, map[string]any{
		"user_id":         rec.UserID,
		"confidence":      rec.Confidence,
		"response_length": len(rec.ResponseText),
		"sources":         rec.Sources,
	})
	return pipeline.OutcomeOK, nil
}

// #endregion postprocess-stage
