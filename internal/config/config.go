package config

// #region imports
import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/satyasetu/go-engine/internal/pipeline"
	"github.com/satyasetu/go-engine/internal/stages"
	"github.com/satyasetu/go-engine/internal/telemetry"
)

// #endregion

// #region duration
// Duration decodes "30s"-style YAML strings.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("duration must be a string: %w", err)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// #endregion duration

// #region config
// Config is the full engine configuration as loaded from YAML. Zero values
// mean "use the default"; Load overlays the file onto DefaultConfig.
type Config struct {
	ModelServiceAddr string `yaml:"model_service_addr"`
	OfflineMode      bool   `yaml:"offline_mode"`
	ProvenanceDB     string `yaml:"provenance_db"`
	ListenAddr       string `yaml:"listen_addr"`

	Pipeline struct {
		RunTimeout   Duration `yaml:"run_timeout"`
		StageTimeout Duration `yaml:"stage_timeout"`
		MaxSteps     int      `yaml:"max_steps"`
	} `yaml:"pipeline"`

	Stages struct {
		Denylist         []string `yaml:"denylist"`
		TopK             int      `yaml:"top_k"`
		HallucinationCap float32  `yaml:"hallucination_cap"`
	} `yaml:"stages"`

	Telemetry struct {
		RingSize         int `yaml:"ring_size"`
		SubscriberBuffer int `yaml:"subscriber_buffer"`
	} `yaml:"telemetry"`
}

// #endregion config

// #region defaults
// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	var c Config
	c.ModelServiceAddr = "localhost:50051"
	c.ProvenanceDB = "runs.db"
	c.ListenAddr = ""

	pd := pipeline.DefaultConfig()
	c.Pipeline.RunTimeout = Duration(pd.RunTimeout)
	c.Pipeline.StageTimeout = Duration(pd.StageTimeout)
	c.Pipeline.MaxSteps = pd.MaxSteps

	sd := stages.DefaultConfig()
	c.Stages.Denylist = sd.Denylist
	c.Stages.TopK = sd.TopK
	c.Stages.HallucinationCap = sd.HallucinationCap

	td := telemetry.DefaultSinkConfig()
	c.Telemetry.RingSize = td.RingSize
	c.Telemetry.SubscriberBuffer = td.SubscriberBuffer

	return c
}

// #endregion defaults

// #region load
// Load reads a YAML config file and overlays it onto the defaults. An empty
// path or a missing file yields the defaults unchanged.
func Load(path string) (Config, error) {
	c := DefaultConfig()
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var overlay Config
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	c.apply(overlay)

	if err := c.validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// apply copies non-zero overlay fields onto c.
func (c *Config) apply(o Config) {
	if o.ModelServiceAddr != "" {
		c.ModelServiceAddr = o.ModelServiceAddr
	}
	if o.OfflineMode {
		c.OfflineMode = true
	}
	if o.ProvenanceDB != "" {
		c.ProvenanceDB = o.ProvenanceDB
	}
	if o.ListenAddr != "" {
		c.ListenAddr = o.ListenAddr
	}
	if o.Pipeline.RunTimeout > 0 {
		c.Pipeline.RunTimeout = o.Pipeline.RunTimeout
	}
	if o.Pipeline.StageTimeout > 0 {
		c.Pipeline.StageTimeout = o.Pipeline.StageTimeout
	}
	if o.Pipeline.MaxSteps > 0 {
		c.Pipeline.MaxSteps = o.Pipeline.MaxSteps
	}
	if len(o.Stages.Denylist) > 0 {
		c.Stages.Denylist = o.Stages.Denylist
	}
	if o.Stages.TopK > 0 {
		c.Stages.TopK = o.Stages.TopK
	}
	if o.Stages.HallucinationCap > 0 {
		c.Stages.HallucinationCap = o.Stages.HallucinationCap
	}
	if o.Telemetry.RingSize > 0 {
		c.Telemetry.RingSize = o.Telemetry.RingSize
	}
	if o.Telemetry.SubscriberBuffer > 0 {
		c.Telemetry.SubscriberBuffer = o.Telemetry.SubscriberBuffer
	}
}

func (c *Config) validate() error {
	if c.Pipeline.StageTimeout > c.Pipeline.RunTimeout {
		return fmt.Errorf("stage_timeout %s exceeds run_timeout %s",
			time.Duration(c.Pipeline.StageTimeout), time.Duration(c.Pipeline.RunTimeout))
	}
	if c.Stages.HallucinationCap > 1 {
		return fmt.Errorf("hallucination_cap %f out of range", c.Stages.HallucinationCap)
	}
	return nil
}

// #endregion load

// #region converters
// PipelineConfig converts to the executor's config type.
func (c *Config) PipelineConfig() pipeline.Config {
	return pipeline.Config{
		RunTimeout:   time.Duration(c.Pipeline.RunTimeout),
		StageTimeout: time.Duration(c.Pipeline.StageTimeout),
		MaxSteps:     c.Pipeline.MaxSteps,
	}
}

// StagesConfig converts to the stage config type.
func (c *Config) StagesConfig() stages.Config {
	sc := stages.DefaultConfig()
	sc.Denylist = c.Stages.Denylist
	sc.TopK = c.Stages.TopK
	sc.HallucinationCap = c.Stages.HallucinationCap
	return sc
}

// SinkConfig converts to the telemetry sink config type.
func (c *Config) SinkConfig() telemetry.SinkConfig {
	return telemetry.SinkConfig{
		RingSize:         c.Telemetry.RingSize,
		SubscriberBuffer: c.Telemetry.SubscriberBuffer,
	}
}

// #endregion converters
