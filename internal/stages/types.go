package stages

// #region imports
import (
	"context"

	"github.com/satyasetu/go-engine/internal/state"
)

// #endregion

// #region collaborator-interfaces

// ContextRetriever abstracts the vector-store/cache collaborator so stages
// can be tested without the model-serving process.
type ContextRetriever interface {
	Retrieve(ctx context.Context, intent state.Intent, queryText string) ([]state.ContextDoc, error)
}

// ResponseGenerator abstracts the LLM collaborator.
type ResponseGenerator interface {
	Generate(ctx context.Context, req GenerateRequest) (GenerateResult, error)
}

// #endregion collaborator-interfaces

// #region generate-types

// GenerateRequest is the bounded prompt payload sent to the generator.
type GenerateRequest struct {
	Prompt    string
	QueryText string
	Intent    state.Intent
	Language  state.Language
	Evidence  []string // top-K context snippets by confidence
}

// GenerateResult is the generator's answer.
type GenerateResult struct {
	Text       string
	Confidence float32
}

// #endregion generate-types

// #region fixed-texts

// Fixed user-facing texts. These are terminal outputs, not templates.
const (
	RefusalText = "I cannot process this request. Please ask about government schemes or scam verification."

	DegradedText = "I'm having trouble right now. Please try again in a moment."

	AdviceDisclaimerText = "I cannot provide financial or legal advice. Please consult a professional."
)

// #endregion fixed-texts

// #region stage-names

// Stage names, stable across telemetry and routing.
const (
	StageSafetyCheck      = "safety_check"
	StageIntentRouter     = "intent_router"
	StageRetrieveContext  = "retrieve_context"
	StageGenerateResponse = "generate_response"
	StagePostProcess      = "post_process"
)

// #endregion stage-names

// #region config

// Config holds tuning knobs shared by the five stages.
type Config struct {
	Denylist          []string // ordered unsafe-intent patterns
	TopK              int      // evidence snippets passed to generation
	HallucinationCap  float32  // confidence ceiling when markers appear
	DefaultConfidence float32  // fallback when the generator omits one
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Denylist:          defaultDenylist(),
		TopK:              3,
		HallucinationCap:  0.5,
		DefaultConfidence: 0.85,
	}
}

// #endregion config
