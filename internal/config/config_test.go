package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "engine.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	d := DefaultConfig()
	if c.ModelServiceAddr != d.ModelServiceAddr {
		t.Errorf("model_service_addr: got %q, want default %q", c.ModelServiceAddr, d.ModelServiceAddr)
	}
	if c.Pipeline.RunTimeout != d.Pipeline.RunTimeout {
		t.Errorf("run_timeout: got %v, want default %v", c.Pipeline.RunTimeout, d.Pipeline.RunTimeout)
	}
	if len(c.Stages.Denylist) == 0 {
		t.Error("default denylist must not be empty")
	}
}

func TestLoadOverlay(t *testing.T) {
	path := writeConfig(t, `
model_service_addr: "model:6000"
offline_mode: true
pipeline:
  run_timeout: 12s
  max_steps: 8
stages:
  top_k: 5
telemetry:
  ring_size: 128
`)
	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.ModelServiceAddr != "model:6000" {
		t.Errorf("model_service_addr: got %q", c.ModelServiceAddr)
	}
	if !c.OfflineMode {
		t.Error("offline_mode not applied")
	}
	if time.Duration(c.Pipeline.RunTimeout) != 12*time.Second {
		t.Errorf("run_timeout: got %v", time.Duration(c.Pipeline.RunTimeout))
	}
	if c.Pipeline.MaxSteps != 8 {
		t.Errorf("max_steps: got %d", c.Pipeline.MaxSteps)
	}
	if c.Stages.TopK != 5 {
		t.Errorf("top_k: got %d", c.Stages.TopK)
	}
	if c.Telemetry.RingSize != 128 {
		t.Errorf("ring_size: got %d", c.Telemetry.RingSize)
	}

	// Untouched fields keep defaults.
	d := DefaultConfig()
	if c.Pipeline.StageTimeout != d.Pipeline.StageTimeout {
		t.Errorf("stage_timeout: got %v, want default", c.Pipeline.StageTimeout)
	}
	if c.Stages.HallucinationCap != d.Stages.HallucinationCap {
		t.Errorf("hallucination_cap: got %f, want default", c.Stages.HallucinationCap)
	}
}

func TestLoadRejectsInvalidTimeouts(t *testing.T) {
	path := writeConfig(t, `
pipeline:
  run_timeout: 1s
  stage_timeout: 5s
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error for stage_timeout > run_timeout")
	}
}

func TestLoadRejectsBadDuration(t *testing.T) {
	path := writeConfig(t, `
pipeline:
  run_timeout: soon
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error for bad duration")
	}
}

func TestConverters(t *testing.T) {
	c := DefaultConfig()
	pc := c.PipelineConfig()
	if pc.RunTimeout != 30*time.Second || pc.StageTimeout != 10*time.Second {
		t.Errorf("pipeline config: %+v", pc)
	}
	sc := c.StagesConfig()
	if sc.TopK != 3 || len(sc.Denylist) == 0 {
		t.Errorf("stages config: %+v", sc)
	}
	tc := c.SinkConfig()
	if tc.RingSize != 64 {
		t.Errorf("sink config: %+v", tc)
	}
}
