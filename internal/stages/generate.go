package stages

// #region imports
import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/satyasetu/go-engine/internal/pipeline"
	"github.com/satyasetu/go-engine/internal/state"
	"github.com/satyasetu/go-engine/internal/telemetry"
)

// #endregion

// #region generate-stage

// GenerateResponse builds a bounded prompt payload from the retrieved
// context and calls the generation collaborator. On collaborator failure
// the fixed degraded message is substituted and the run still proceeds to
// post-processing.
type GenerateResponse struct {
	generator ResponseGenerator
	sink      *telemetry.Sink
	topK      int
}

// NewGenerateResponse creates the generation stage. topK bounds how many
// context snippets reach the prompt.
func NewGenerateResponse(generator ResponseGenerator, sink *telemetry.Sink, topK int) *GenerateResponse {
	if topK <= 0 {
		topK = DefaultConfig().TopK
	}
	return &GenerateResponse{generator: generator, sink: sink, topK: topK}
}

// Name implements pipeline.Stage.
func (g *GenerateResponse) Name() string { return StageGenerateResponse }

// Run implements pipeline.Stage.
func (g *GenerateResponse) Run(ctx context.Context, rec *state.Record) (pipeline.Outcome, error) {
	g.sink.Emit(telemetry.EventGenerationStart, rec.RunID, map[string]any{
		"intent":     string(rec.Intent),
		"docs_count": len(rec.Retrieved),
	})

	evidence := topEvidence(rec.Retrieved, g.topK)
	req := GenerateRequest{
		Prompt:    buildPrompt(rec, evidence),
		QueryText: rec.QueryText,
		Intent:    rec.Intent,
		Language:  rec.Language,
		Evidence:  evidence,
	}

	result, err := g.generator.Generate(ctx, req)
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return pipeline.OutcomeCancelled, ctx.Err()
		}
		log.Printf("[GENERATE] run %s: collaborator failed, substituting degraded message: %v", rec.RunID, err)
		rec.ResponseText = DegradedText
		rec.SetConfidence(0)
		g.sink.Emit(telemetry.EventGenerationDegraded, rec.RunID, map[string]any{
			"error": err.Error(),
		})
		return pipeline.OutcomeDegraded, nil
	}

	rec.ResponseText = result.Text
	rec.SetConfidence(result.Confidence)
	return pipeline.OutcomeOK, nil
}

// #endregion generate-stage

// #region prompt

// topEvidence selects the top-K snippets by confidence, highest first.
func topEvidence(docs []state.ContextDoc, k int) []string {
	sorted := make([]state.ContextDoc, len(docs))
	copy(sorted, docs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Confidence > sorted[j].Confidence
	})
	if len(sorted) > k {
		sorted = sorted[:k]
	}
	evidence := make([]string, len(sorted))
	for i, d := range sorted {
		evidence[i] = d.Content
	}
	return evidence
}

// buildPrompt renders the voice-optimized system prompt.
func buildPrompt(rec *state.Record, evidence []string) string {
	var b strings.Builder
	b.WriteString("You are SatyaSetu, a helpful AI assistant for rural India.\n")
	fmt.Fprintf(&b, "Language: %s\n", rec.Language)
	fmt.Fprintf(&b, "Intent: %s\n\n", rec.Intent)
	b.WriteString("CRITICAL RULES:\n")
	b.WriteString("1. Keep answers SHORT (2-3 sentences max) - this is for VOICE output\n")
	b.WriteString("2. Use simple language (8th grade level)\n")
	b.WriteString("3. Be warm and trustworthy\n")
	b.WriteString("4. If verifying scams, be clear and direct\n")
	b.WriteString("5. Always cite sources when available\n\n")
	b.WriteString("Context:\n")
	for _, ev := range evidence {
		fmt.Fprintf(&b, "- %s\n", ev)
	}
	return b.String()
}

// #endregion prompt
