package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/satyasetu/go-engine/internal/replay"
)

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to fixture JSON")
	jsonOut := flag.Bool("json", false, "output results as JSON")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json [--json]")
		os.Exit(2)
	}

	os.Exit(run(*fixturePath, *jsonOut))
}

// #endregion main

// #region run

func run(fixturePath string, jsonOut bool) int {
	fixture, err := replay.LoadFixture(fixturePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		return 2
	}

	eng, sink, err := replay.NewOfflineEngine()
	if err != nil {
		fmt.Fprintf(os.Stderr, "build engine: %v\n", err)
		return 2
	}
	defer sink.Close()

	results := replay.Replay(context.Background(), eng, fixture)
	summary := replay.Summarize(results)

	if jsonOut {
		out := struct {
			Description string          `json:"description"`
			Results     []resultJSON    `json:"results"`
			Summary     replay.Summary  `json:"summary"`
		}{Description: fixture.Description, Summary: summary}
		for _, r := range results {
			rj := resultJSON{TurnID: r.TurnID, Passed: r.Passed, Failures: r.Failures}
			if r.Err == nil {
				rj.Intent = r.Answer.Intent
				rj.Response = r.Answer.ResponseText
			} else {
				rj.Error = r.Err.Error()
			}
			out.Results = append(out.Results, rj)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(out)
	} else {
		printTable(fixture.Description, results, summary)
	}

	if summary.Failed > 0 {
		return 1
	}
	return 0
}

type resultJSON struct {
	TurnID   string   `json:"turn_id"`
	Passed   bool     `json:"passed"`
	Intent   string   `json:"intent,omitempty"`
	Response string   `json:"response,omitempty"`
	Error    string   `json:"error,omitempty"`
	Failures []string `json:"failures,omitempty"`
}

// #endregion run

// #region table

func printTable(description string, results []replay.Result, summary replay.Summary) {
	if description != "" {
		fmt.Println(description)
		fmt.Println()
	}
	for _, r := range results {
		status := "PASS"
		if !r.Passed {
			status = "FAIL"
		}
		fmt.Printf("%-4s %-20s intent=%-18s %s\n", status, r.TurnID, r.Answer.Intent, r.Answer.ResponseText)
		for _, f := range r.Failures {
			fmt.Printf("     - %s\n", f)
		}
	}
	fmt.Printf("\n%d turns: %d passed, %d failed\n", summary.TotalTurns, summary.Passed, summary.Failed)
}

// #endregion table
