package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/satyasetu/go-engine/internal/codec"
	"github.com/satyasetu/go-engine/internal/config"
	"github.com/satyasetu/go-engine/internal/engine"
	"github.com/satyasetu/go-engine/internal/provenance"
	"github.com/satyasetu/go-engine/internal/stages"
	"github.com/satyasetu/go-engine/internal/state"
	"github.com/satyasetu/go-engine/internal/telemetry"
)

// #region main
func main() {
	cfgPath := envOr("ENGINE_CONFIG", "engine.yaml")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if v := os.Getenv("MODEL_ADDR"); v != "" {
		cfg.ModelServiceAddr = v
	}
	if os.Getenv("OFFLINE_MODE") == "true" {
		cfg.OfflineMode = true
	}

	sink := telemetry.NewSink(cfg.SinkConfig())
	defer sink.Close()

	store, err := provenance.NewStore(cfg.ProvenanceDB)
	if err != nil {
		log.Fatalf("open provenance store: %v", err)
	}
	defer store.Close()

	var retriever stages.ContextRetriever
	var generator stages.ResponseGenerator
	if cfg.OfflineMode {
		retriever = codec.NewStaticRetriever()
		generator = codec.NewStaticGenerator()
	} else {
		client, err := codec.NewModelClient(cfg.ModelServiceAddr, cfg.Stages.TopK)
		if err != nil {
			log.Fatalf("connect model service at %s: %v", cfg.ModelServiceAddr, err)
		}
		defer client.Close()
		retriever = client
		generator = client
	}

	eng, err := engine.New(engine.Deps{
		Retriever:  retriever,
		Generator:  generator,
		Sink:       sink,
		Provenance: store,
	}, engine.Config{
		Pipeline: cfg.PipelineConfig(),
		Stages:   cfg.StagesConfig(),
	})
	if err != nil {
		log.Fatalf("build engine: %v", err)
	}

	if cfg.ListenAddr != "" {
		go serveTelemetry(cfg.ListenAddr, sink)
	}

	fmt.Println("Assistant engine ready.")
	fmt.Printf("  DB: %s | Model: %s | Offline: %v\n", cfg.ProvenanceDB, cfg.ModelServiceAddr, cfg.OfflineMode)
	fmt.Println("Type a question (or 'quit' to exit):")

	runREPL(eng, cfg.OfflineMode, time.Duration(cfg.Pipeline.RunTimeout))
}

// #endregion main

// #region repl
func runREPL(eng *engine.Engine, offline bool, runTimeout time.Duration) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			continue
		}
		if query == "quit" || query == "exit" {
			break
		}

		ctx, cancel := context.WithTimeout(context.Background(), runTimeout+time.Second)
		answer, err := eng.Process(ctx, engine.Request{
			UserID:      "repl",
			QueryText:   query,
			Language:    state.LangEnglish,
			OfflineMode: offline,
		})
		cancel()
		if err != nil {
			log.Printf("process error: %v", err)
			continue
		}

		fmt.Printf("\n%s\n\n", answer.ResponseText)
		fmt.Printf("[%s] intent=%s confidence=%.2f risk=%s", answer.RunID[:8], answer.Intent, answer.Confidence, answer.RiskLevel)
		if len(answer.Sources) > 0 {
			fmt.Printf(" sources=%s", strings.Join(answer.Sources, ","))
		}
		fmt.Println()
	}
}

// #endregion repl

// #region telemetry-server
func serveTelemetry(addr string, sink *telemetry.Sink) {
	mux := http.NewServeMux()
	mux.Handle("/ws/telemetry", telemetry.NewFeed(sink))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		stats := sink.Stats()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"status":      "ok",
			"subscribers": stats.Subscribers,
			"emitted":     stats.Emitted,
			"dropped":     stats.Dropped,
		})
	})

	log.Printf("[ENGINE] telemetry listening on %s", addr)
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		log.Printf("[ENGINE] telemetry server stopped: %v", err)
	}
}

// #endregion telemetry-server

// #region env
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion env
