package pipeline

// #region imports
import (
	"fmt"

	"github.com/satyasetu/go-engine/internal/state"
)

// #endregion

// #region graph

// Graph is the immutable, precompiled pipeline topology: stages, their
// static or conditional successors, and one entry point. A compiled graph
// is read-only and shared across concurrent runs.
type Graph struct {
	stages      map[string]Stage
	static      map[string]string
	conditional map[string]conditionalEdge
	entry       string
}

type conditionalEdge struct {
	router  Router
	targets map[string]bool // closed set of names the router may return
}

// #endregion graph

// #region builder

// Builder accumulates stages and edges for compilation.
type Builder struct {
	stages      map[string]Stage
	static      map[string]string
	conditional map[string]conditionalEdge
	entry       string
	errs        []error
}

// NewBuilder creates an empty graph builder.
func NewBuilder() *Builder {
	return &Builder{
		stages:      make(map[string]Stage),
		static:      make(map[string]string),
		conditional: make(map[string]conditionalEdge),
	}
}

// AddStage registers a stage under its own name.
func (b *Builder) AddStage(s Stage) *Builder {
	name := s.Name()
	if name == "" || name == Terminal {
		b.errs = append(b.errs, fmt.Errorf("invalid stage name %q", name))
		return b
	}
	if _, dup := b.stages[name]; dup {
		b.errs = append(b.errs, fmt.Errorf("duplicate stage %q", name))
		return b
	}
	b.stages[name] = s
	return b
}

// AddEdge declares an unconditional successor. to may be Terminal.
func (b *Builder) AddEdge(from, to string) *Builder {
	b.static[from] = to
	return b
}

// AddConditionalEdge declares a router for from together with the closed
// set of stage names (or Terminal) the router may return.
func (b *Builder) AddConditionalEdge(from string, router Router, targets ...string) *Builder {
	set := make(map[string]bool, len(targets))
	for _, t := range targets {
		set[t] = true
	}
	b.conditional[from] = conditionalEdge{router: router, targets: set}
	return b
}

// SetEntry designates the entry stage.
func (b *Builder) SetEntry(name string) *Builder {
	b.entry = name
	return b
}

// #endregion builder

// #region compile

// Compile validates the topology once: every edge source and target must
// exist, every stage needs a successor, and every stage must be reachable
// from the entry. Runs never re-validate.
func (b *Builder) Compile() (*Graph, error) {
	if len(b.errs) > 0 {
		return nil, b.errs[0]
	}
	if b.entry == "" {
		return nil, fmt.Errorf("no entry stage set")
	}
	if _, ok := b.stages[b.entry]; !ok {
		return nil, fmt.Errorf("entry stage %q not registered", b.entry)
	}

	for from, to := range b.static {
		if _, ok := b.stages[from]; !ok {
			return nil, fmt.Errorf("edge source %q not registered", from)
		}
		if to != Terminal {
			if _, ok := b.stages[to]; !ok {
				return nil, fmt.Errorf("edge %q -> %q: target not registered", from, to)
			}
		}
	}
	for from, edge := range b.conditional {
		if _, ok := b.stages[from]; !ok {
			return nil, fmt.Errorf("conditional edge source %q not registered", from)
		}
		if _, dup := b.static[from]; dup {
			return nil, fmt.Errorf("stage %q has both static and conditional successors", from)
		}
		if len(edge.targets) == 0 {
			return nil, fmt.Errorf("conditional edge from %q declares no targets", from)
		}
		for t := range edge.targets {
			if t != Terminal {
				if _, ok := b.stages[t]; !ok {
					return nil, fmt.Errorf("conditional edge %q -> %q: target not registered", from, t)
				}
			}
		}
	}

	for name := range b.stages {
		_, hasStatic := b.static[name]
		_, hasCond := b.conditional[name]
		if !hasStatic && !hasCond {
			return nil, fmt.Errorf("stage %q has no successor", name)
		}
	}

	if unreachable := b.unreachableFrom(b.entry); len(unreachable) > 0 {
		return nil, fmt.Errorf("stage %q unreachable from entry %q", unreachable[0], b.entry)
	}

	return &Graph{
		stages:      b.stages,
		static:      b.static,
		conditional: b.conditional,
		entry:       b.entry,
	}, nil
}

// unreachableFrom walks static edges and declared conditional targets.
func (b *Builder) unreachableFrom(entry string) []string {
	visited := map[string]bool{entry: true}
	queue := []string{entry}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		var nexts []string
		if to, ok := b.static[cur]; ok {
			nexts = append(nexts, to)
		}
		if edge, ok := b.conditional[cur]; ok {
			for t := range edge.targets {
				nexts = append(nexts, t)
			}
		}
		for _, n := range nexts {
			if n == Terminal || visited[n] {
				continue
			}
			visited[n] = true
			queue = append(queue, n)
		}
	}

	var unreachable []string
	for name := range b.stages {
		if !visited[name] {
			unreachable = append(unreachable, name)
		}
	}
	return unreachable
}

// #endregion compile

// #region lookup

// Entry returns the entry stage name.
func (g *Graph) Entry() string {
	return g.entry
}

// StageByName returns the registered stage implementation.
func (g *Graph) StageByName(name string) (Stage, bool) {
	s, ok := g.stages[name]
	return s, ok
}

// Next resolves the successor of from for the given state. A router
// returning a name outside its declared target set is a wiring fault.
func (g *Graph) Next(from string, rec *state.Record) (string, error) {
	if edge, ok := g.conditional[from]; ok {
		next := edge.router(rec)
		if !edge.targets[next] {
			return "", fmt.Errorf("router for %q returned undeclared target %q", from, next)
		}
		return next, nil
	}
	if to, ok := g.static[from]; ok {
		return to, nil
	}
	return "", fmt.Errorf("stage %q has no successor", from)
}

// #endregion lookup
