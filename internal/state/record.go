package state

// #region imports
import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// #endregion

// #region errors

// Validation errors reported before a run is created.
var (
	ErrEmptyQuery          = errors.New("query text is empty")
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrEmptyUserID         = errors.New("user id is empty")
)

// #endregion errors

// #region record

// Record is the single mutable value threaded through a pipeline run.
// Each run owns an exclusive instance; stages mutate it in place through
// the setters below, which enforce the field invariants (risk flags only
// grow, confidence never increases once set, sources derive from the
// retrieved documents).
type Record struct {
	RunID     string
	UserID    string
	Language  Language
	QueryText string

	// OfflineMode is the request-level flag forcing the offline intent.
	OfflineMode bool

	Intent       Intent
	IsSafe       bool
	RiskFlags    []string
	Retrieved    []ContextDoc
	Sources      []string
	ResponseText string
	Confidence   float32

	CreatedAt   time.Time
	CompletedAt time.Time // zero until finalization

	confidenceSet bool
}

// #endregion record

// #region constructor

// NewRecord validates the raw request fields and builds the initial record.
// A validation error here means no run is started and no record exists.
func NewRecord(userID, queryText string, lang Language, offlineMode bool) (*Record, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrEmptyUserID
	}
	if strings.TrimSpace(queryText) == "" {
		return nil, ErrEmptyQuery
	}
	if !supported(lang) {
		return nil, ErrUnsupportedLanguage
	}

	return &Record{
		RunID:       uuid.New().String(),
		UserID:      userID,
		Language:    lang,
		QueryText:   queryText,
		OfflineMode: offlineMode,
		IsSafe:      true,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

func supported(lang Language) bool {
	for _, l := range SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}

// #endregion constructor

// #region mutators

// AddRiskFlags appends flags. Flags are never removed from a record.
func (r *Record) AddRiskFlags(flags ...string) {
	r.RiskFlags = append(r.RiskFlags, flags...)
}

// SetRetrieved stores the retrieved documents and derives the source set,
// deduplicated in first-seen order.
func (r *Record) SetRetrieved(docs []ContextDoc) {
	r.Retrieved = docs
	r.Sources = nil
	seen := make(map[string]bool, len(docs))
	for _, d := range docs {
		if d.Source == "" || seen[d.Source] {
			continue
		}
		seen[d.Source] = true
		r.Sources = append(r.Sources, d.Source)
	}
}

// SetConfidence sets the initial confidence. Once set, later calls may
// only lower it.
func (r *Record) SetConfidence(c float32) {
	if c < 0 {
		c = 0
	}
	if c > 1 {
		c = 1
	}
	if r.confidenceSet && c > r.Confidence {
		return
	}
	r.Confidence = c
	r.confidenceSet = true
}

// ClampConfidence lowers confidence to at most max. It never raises it.
func (r *Record) ClampConfidence(max float32) {
	if r.Confidence > max {
		r.Confidence = max
	}
	r.confidenceSet = true
}

// Finalize stamps the completion time. Only the first call takes effect.
func (r *Record) Finalize() {
	if r.CompletedAt.IsZero() {
		r.CompletedAt = time.Now().UTC()
	}
}

// #endregion mutators

// #region accessors

// RiskLevel is "high" when any risk flag accumulated, else "low".
func (r *Record) RiskLevel() string {
	if len(r.RiskFlags) > 0 {
		return RiskLevelHigh
	}
	return RiskLevelLow
}

// QueryPreview returns the first n runes of the query for telemetry payloads.
func (r *Record) QueryPreview(n int) string {
	runes := []rune(r.QueryText)
	if len(runes) <= n {
		return r.QueryText
	}
	return string(runes[:n])
}

// #endregion accessors
