package telemetry

import "time"

// #region event

// Event is one observability record emitted by a stage or the executor.
type Event struct {
	Seq     uint64         `json:"seq"`
	Name    string         `json:"name"`
	RunID   string         `json:"run_id,omitempty"`
	Payload map[string]any `json:"payload,omitempty"`
	At      time.Time      `json:"at"`
}

// #endregion event

// #region event-names

// Event names shared between stages, executor, and dashboard consumers.
const (
	EventSafetyCheckStart   = "safety_check_start"
	EventSafetyBlock        = "safety_block"
	EventIntentClassified   = "intent_classified"
	EventRetrievalStart     = "retrieval_start"
	EventRetrievalDegraded  = "retrieval_degraded"
	EventGenerationStart    = "generation_start"
	EventGenerationDegraded = "generation_degraded"
	EventResponseComplete   = "response_complete"
	EventStageStart         = "stage_start"
	EventStageEnd           = "stage_end"
)

// #endregion event-names

// #region config

// SinkConfig sizes the sink's buffers.
type SinkConfig struct {
	RingSize         int // recent events kept for late-joining subscribers
	SubscriberBuffer int // per-subscriber channel capacity
}

// DefaultSinkConfig returns sensible defaults.
func DefaultSinkConfig() SinkConfig {
	return SinkConfig{
		RingSize:         64,
		SubscriberBuffer: 256,
	}
}

// #endregion config
