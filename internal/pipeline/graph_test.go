package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/satyasetu/go-engine/internal/state"
)

// testStage is a minimal stage for topology tests.
type testStage struct {
	name string
	run  func(context.Context, *state.Record) (Outcome, error)
}

func (s *testStage) Name() string { return s.name }

func (s *testStage) Run(ctx context.Context, rec *state.Record) (Outcome, error) {
	if s.run == nil {
		return OutcomeOK, nil
	}
	return s.run(ctx, rec)
}

func stage(name string) *testStage { return &testStage{name: name} }

func testRecord(t *testing.T) *state.Record {
	t.Helper()
	rec, err := state.NewRecord("u1", "hello", state.LangEnglish, false)
	if err != nil {
		t.Fatalf("new record: %v", err)
	}
	return rec
}

func TestCompileValidation(t *testing.T) {
	tests := []struct {
		name    string
		build   func() *Builder
		wantErr string
	}{
		{
			"valid-linear",
			func() *Builder {
				return NewBuilder().
					AddStage(stage("a")).AddStage(stage("b")).
					SetEntry("a").
					AddEdge("a", "b").AddEdge("b", Terminal)
			},
			"",
		},
		{
			"no-entry",
			func() *Builder {
				return NewBuilder().AddStage(stage("a")).AddEdge("a", Terminal)
			},
			"no entry stage",
		},
		{
			"entry-not-registered",
			func() *Builder {
				return NewBuilder().AddStage(stage("a")).SetEntry("x").AddEdge("a", Terminal)
			},
			"not registered",
		},
		{
			"duplicate-stage",
			func() *Builder {
				return NewBuilder().
					AddStage(stage("a")).AddStage(stage("a")).
					SetEntry("a").AddEdge("a", Terminal)
			},
			"duplicate stage",
		},
		{
			"edge-target-missing",
			func() *Builder {
				return NewBuilder().AddStage(stage("a")).SetEntry("a").AddEdge("a", "ghost")
			},
			"target not registered",
		},
		{
			"stage-without-successor",
			func() *Builder {
				return NewBuilder().
					AddStage(stage("a")).AddStage(stage("b")).
					SetEntry("a").AddEdge("a", "b")
			},
			"no successor",
		},
		{
			"unreachable-stage",
			func() *Builder {
				return NewBuilder().
					AddStage(stage("a")).AddStage(stage("island")).
					SetEntry("a").
					AddEdge("a", Terminal).AddEdge("island", Terminal)
			},
			"unreachable",
		},
		{
			"conditional-without-targets",
			func() *Builder {
				return NewBuilder().
					AddStage(stage("a")).
					SetEntry("a").
					AddConditionalEdge("a", func(*state.Record) string { return Terminal })
			},
			"declares no targets",
		},
		{
			"static-and-conditional",
			func() *Builder {
				return NewBuilder().
					AddStage(stage("a")).AddStage(stage("b")).
					SetEntry("a").
					AddEdge("a", "b").
					AddConditionalEdge("a", func(*state.Record) string { return "b" }, "b").
					AddEdge("b", Terminal)
			},
			"both static and conditional",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build().Compile()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("compile: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected compile error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error: got %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestNextEnforcesDeclaredTargets(t *testing.T) {
	g, err := NewBuilder().
		AddStage(stage("a")).AddStage(stage("b")).
		SetEntry("a").
		AddConditionalEdge("a", func(rec *state.Record) string {
			if rec.OfflineMode {
				return "ghost" // not in the declared target set
			}
			return "b"
		}, "b").
		AddEdge("b", Terminal).
		Compile()
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	rec := testRecord(t)
	next, err := g.Next("a", rec)
	if err != nil || next != "b" {
		t.Fatalf("declared route: got (%q, %v), want (b, nil)", next, err)
	}

	rec.OfflineMode = true
	if _, err := g.Next("a", rec); err == nil {
		t.Fatal("undeclared router target must be rejected")
	}
}
