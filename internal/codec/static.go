package codec

import (
	"context"

	"github.com/satyasetu/go-engine/internal/stages"
	"github.com/satyasetu/go-engine/internal/state"
)

// #region static-retriever
// StaticRetriever serves a small built-in corpus. It backs offline
// deployments and the replay harness, where no model service runs.
type StaticRetriever struct{}

// NewStaticRetriever creates the built-in retriever.
func NewStaticRetriever() *StaticRetriever { return &StaticRetriever{} }

// Retrieve returns canned scheme documents for scheme lookups and nothing
// for other intents.
func (r *StaticRetriever) Retrieve(ctx context.Context, intent state.Intent, _ string) ([]state.ContextDoc, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if intent != state.IntentSchemeLookup {
		return nil, nil
	}
	return []state.ContextDoc{
		{
			Content:    "PM-KISAN is a Central Sector scheme providing income support to farmer families.",
			Source:     "PM_Kisan_Guidelines.pdf",
			Confidence: 0.92,
		},
		{
			Content:    "Eligible farmers receive ₹6000 per year in three installments.",
			Source:     "PM_Kisan_FAQ.pdf",
			Confidence: 0.88,
		},
	}, nil
}

// #endregion static-retriever

// #region static-generator
// StaticGenerator answers from fixed per-intent responses.
type StaticGenerator struct{}

// NewStaticGenerator creates the built-in generator.
func NewStaticGenerator() *StaticGenerator { return &StaticGenerator{} }

// Generate returns the canned response for the request's intent.
func (g *StaticGenerator) Generate(ctx context.Context, req stages.GenerateRequest) (stages.GenerateResult, error) {
	if err := ctx.Err(); err != nil {
		return stages.GenerateResult{}, err
	}

	var text string
	switch req.Intent {
	case state.IntentSchemeLookup:
		text = "PM-KISAN provides ₹6000 per year to eligible farmers in three installments. You can check your status on the official PM-KISAN portal."
	case state.IntentScamVerify:
		text = "This appears to be a scam. Government schemes never ask for money upfront. Please report this to cybercrime.gov.in."
	default:
		text = "I can help you verify messages or learn about government schemes. What would you like to know?"
	}

	return stages.GenerateResult{Text: text, Confidence: 0.85}, nil
}

// #endregion static-generator

var (
	_ stages.ContextRetriever  = (*StaticRetriever)(nil)
	_ stages.ResponseGenerator = (*StaticGenerator)(nil)
)
