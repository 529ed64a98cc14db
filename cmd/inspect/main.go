package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/satyasetu/go-engine/internal/provenance"
	_ "modernc.org/sqlite"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to runs.db")
	last := flag.Int("last", 20, "show N most recent runs")
	runID := flag.String("run", "", "show single run detail with stage trace")
	summary := flag.Bool("summary", false, "show aggregate counts")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/runs.db [--last N] [--run id] [--summary] [--json]")
		os.Exit(2)
	}

	store, err := provenance.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case *runID != "":
		err = runDetailMode(store, *runID, *jsonOut)
	case *summary:
		err = runSummaryMode(store, *jsonOut)
	default:
		err = runListMode(store, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

func runListMode(store *provenance.Store, last int, jsonOut bool) error {
	entries, err := store.ListRuns(last)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(os.Stderr, "no runs found")
		return nil
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	fmt.Printf("%-36s %-10s %-16s %-8s %-5s %s\n", "RUN", "OUTCOME", "INTENT", "CONF", "SAFE", "CREATED")
	for _, e := range entries {
		fmt.Printf("%-36s %-10s %-16s %-8.2f %-5v %s\n",
			e.RunID, e.Outcome, e.Intent, e.Confidence, e.IsSafe,
			e.CreatedAt.Format(time.RFC3339))
	}
	return nil
}

// #endregion list-mode

// #region detail-mode

func runDetailMode(store *provenance.Store, runID string, jsonOut bool) error {
	entry, err := store.GetRun(runID)
	if err != nil {
		return err
	}
	stages, err := store.StagesForRun(runID)
	if err != nil {
		return err
	}

	if jsonOut {
		out := struct {
			Run    provenance.RunEntry    `json:"run"`
			Stages []provenance.StageEntry `json:"stages"`
		}{entry, stages}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Printf("run:        %s\n", entry.RunID)
	fmt.Printf("user:       %s (%s)\n", entry.UserID, entry.Language)
	fmt.Printf("query:      %s\n", entry.QueryText)
	fmt.Printf("intent:     %s\n", entry.Intent)
	fmt.Printf("safe:       %v\n", entry.IsSafe)
	if len(entry.RiskFlags) > 0 {
		fmt.Printf("risk flags: %s\n", strings.Join(entry.RiskFlags, ", "))
	}
	if len(entry.Sources) > 0 {
		fmt.Printf("sources:    %s\n", strings.Join(entry.Sources, ", "))
	}
	fmt.Printf("response:   %s\n", entry.ResponseText)
	fmt.Printf("confidence: %.2f\n", entry.Confidence)
	fmt.Printf("outcome:    %s\n", entry.Outcome)
	if !entry.CompletedAt.IsZero() {
		fmt.Printf("duration:   %s\n", entry.CompletedAt.Sub(entry.CreatedAt))
	}

	fmt.Println("\nstages:")
	for _, s := range stages {
		fmt.Printf("  %-20s %-10s %s\n", s.Stage, s.Outcome, s.EndedAt.Sub(s.StartedAt))
	}
	return nil
}

// #endregion detail-mode

// #region summary-mode

func runSummaryMode(store *provenance.Store, jsonOut bool) error {
	sum, err := store.Summarize()
	if err != nil {
		return err
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(sum)
	}

	fmt.Printf("total runs:  %d\n", sum.Total)
	fmt.Printf("unsafe runs: %d\n", sum.UnsafeRuns)
	fmt.Println("by outcome:")
	for outcome, n := range sum.ByOutcome {
		fmt.Printf("  %-12s %d\n", outcome, n)
	}
	fmt.Println("by intent:")
	for intent, n := range sum.ByIntent {
		fmt.Printf("  %-18s %d\n", intent, n)
	}
	return nil
}

// #endregion summary-mode
