package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/satyasetu/go-engine/internal/engine"
	"github.com/satyasetu/go-engine/internal/state"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture: a set of
// recorded queries with per-turn expectations.
type Fixture struct {
	Description string         `json:"description"`
	Queries     []FixtureQuery `json:"queries"`
}

// FixtureQuery is one recorded turn.
type FixtureQuery struct {
	TurnID      string             `json:"turn_id"`
	UserID      string             `json:"user_id"`
	QueryText   string             `json:"query_text"`
	Language    string             `json:"language"`
	OfflineMode bool               `json:"offline_mode"`
	Expect      FixtureExpectation `json:"expect"`
}

// FixtureExpectation captures what the pipeline must produce for a turn.
// Empty fields are not checked.
type FixtureExpectation struct {
	Intent           string   `json:"intent,omitempty"`
	IsSafe           *bool    `json:"is_safe,omitempty"`
	RiskLevel        string   `json:"risk_level,omitempty"`
	ResponseContains string   `json:"response_contains,omitempty"`
	MaxConfidence    *float32 `json:"max_confidence,omitempty"`
	RiskFlags        []string `json:"risk_flags,omitempty"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	if len(f.Queries) == 0 {
		return nil, fmt.Errorf("fixture %s: no queries", path)
	}
	for i, q := range f.Queries {
		if q.TurnID == "" {
			return nil, fmt.Errorf("fixture %s: query %d missing turn_id", path, i)
		}
	}
	return &f, nil
}

// ToRequest converts a fixture query into an engine request. An empty
// language defaults to English.
func (q *FixtureQuery) ToRequest() engine.Request {
	lang := state.Language(q.Language)
	if q.Language == "" {
		lang = state.LangEnglish
	}
	userID := q.UserID
	if userID == "" {
		userID = "replay"
	}
	return engine.Request{
		UserID:      userID,
		QueryText:   q.QueryText,
		Language:    lang,
		OfflineMode: q.OfflineMode,
	}
}

// #endregion fixture-loader
