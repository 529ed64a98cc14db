package state

import (
	"errors"
	"testing"
)

func TestNewRecordValidation(t *testing.T) {
	tests := []struct {
		name    string
		userID  string
		query   string
		lang    Language
		wantErr error
	}{
		{"valid-en", "u1", "is this scheme real", LangEnglish, nil},
		{"valid-hi", "u1", "yojana kya hai", LangHindi, nil},
		{"empty-query", "u1", "", LangEnglish, ErrEmptyQuery},
		{"whitespace-query", "u1", "   \t", LangEnglish, ErrEmptyQuery},
		{"empty-user", "", "hello", LangEnglish, ErrEmptyUserID},
		{"bad-language", "u1", "hello", Language("fr"), ErrUnsupportedLanguage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := NewRecord(tt.userID, tt.query, tt.lang, false)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err: got %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				if rec != nil {
					t.Fatal("record should be nil on validation error")
				}
				return
			}
			if rec.RunID == "" {
				t.Error("run id not assigned")
			}
			if !rec.IsSafe {
				t.Error("new record should start safe")
			}
			if rec.CreatedAt.IsZero() {
				t.Error("created_at not stamped")
			}
		})
	}
}

func TestRiskFlagsOnlyGrow(t *testing.T) {
	rec, err := NewRecord("u1", "hello", LangEnglish, false)
	if err != nil {
		t.Fatalf("new record: %v", err)
	}

	rec.AddRiskFlags("a")
	rec.AddRiskFlags("b", "c")
	if len(rec.RiskFlags) != 3 {
		t.Fatalf("got %d flags, want 3", len(rec.RiskFlags))
	}
	if rec.RiskFlags[0] != "a" || rec.RiskFlags[2] != "c" {
		t.Errorf("flag order not preserved: %v", rec.RiskFlags)
	}
}

func TestConfidenceNeverIncreases(t *testing.T) {
	rec, _ := NewRecord("u1", "hello", LangEnglish, false)

	rec.SetConfidence(0.85)
	if rec.Confidence != 0.85 {
		t.Fatalf("initial confidence: got %.2f, want 0.85", rec.Confidence)
	}

	rec.SetConfidence(0.95) // ignored: may not increase
	if rec.Confidence != 0.85 {
		t.Errorf("confidence increased: got %.2f", rec.Confidence)
	}

	rec.ClampConfidence(0.5)
	if rec.Confidence != 0.5 {
		t.Errorf("clamp down: got %.2f, want 0.5", rec.Confidence)
	}

	rec.ClampConfidence(0.9) // no-op: clamp never raises
	if rec.Confidence != 0.5 {
		t.Errorf("clamp raised confidence: got %.2f", rec.Confidence)
	}
}

func TestSetConfidenceClampsRange(t *testing.T) {
	rec, _ := NewRecord("u1", "hello", LangEnglish, false)
	rec.SetConfidence(1.5)
	if rec.Confidence != 1.0 {
		t.Errorf("got %.2f, want 1.0", rec.Confidence)
	}
	rec2, _ := NewRecord("u1", "hello", LangEnglish, false)
	rec2.SetConfidence(-0.3)
	if rec2.Confidence != 0 {
		t.Errorf("got %.2f, want 0", rec2.Confidence)
	}
}

func TestSetRetrievedDerivesSources(t *testing.T) {
	rec, _ := NewRecord("u1", "hello", LangEnglish, false)
	rec.SetRetrieved([]ContextDoc{
		{Content: "a", Source: "doc1", Confidence: 0.9},
		{Content: "b", Source: "doc2", Confidence: 0.8},
		{Content: "c", Source: "doc1", Confidence: 0.7},
		{Content: "d", Source: "", Confidence: 0.6},
	})

	if len(rec.Sources) != 2 {
		t.Fatalf("got %d sources, want 2: %v", len(rec.Sources), rec.Sources)
	}
	if rec.Sources[0] != "doc1" || rec.Sources[1] != "doc2" {
		t.Errorf("source order: got %v", rec.Sources)
	}
}

func TestRiskLevel(t *testing.T) {
	rec, _ := NewRecord("u1", "hello", LangEnglish, false)
	if got := rec.RiskLevel(); got != RiskLevelLow {
		t.Errorf("got %q, want %q", got, RiskLevelLow)
	}
	rec.AddRiskFlags("unsafe_pattern:jailbreak")
	if got := rec.RiskLevel(); got != RiskLevelHigh {
		t.Errorf("got %q, want %q", got, RiskLevelHigh)
	}
}

func TestFinalizeSetOnce(t *testing.T) {
	rec, _ := NewRecord("u1", "hello", LangEnglish, false)
	rec.Finalize()
	first := rec.CompletedAt
	if first.IsZero() {
		t.Fatal("completed_at not set")
	}
	rec.Finalize()
	if !rec.CompletedAt.Equal(first) {
		t.Error("completed_at changed on second finalize")
	}
}

func TestQueryPreview(t *testing.T) {
	rec, _ := NewRecord("u1", "abcdefgh", LangEnglish, false)
	if got := rec.QueryPreview(4); got != "abcd" {
		t.Errorf("got %q, want %q", got, "abcd")
	}
	if got := rec.QueryPreview(100); got != "abcdefgh" {
		t.Errorf("got %q, want full query", got)
	}
}
