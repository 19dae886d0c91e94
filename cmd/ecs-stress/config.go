package main

import (
	"flag"
	"os"
	"time"

	jlconfig "github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config controls one stress run. Values are layered: defaults, then the YAML
// file named by -config, then STRESS_* environment variables, then flags.
type Config struct {
	Duration       time.Duration `yaml:"duration" config:"STRESS_DURATION"`
	Entities       int           `yaml:"entities" config:"STRESS_ENTITIES"`
	TrailCapacity  int           `yaml:"trail_capacity" config:"STRESS_TRAIL_CAPACITY"`
	Seed           uint64        `yaml:"seed" config:"STRESS_SEED"`
	GCPauseMetrics bool          `yaml:"gc_pause_metrics" config:"STRESS_GC_PAUSE_METRICS"`
	StatsdAddress  string        `yaml:"statsd_address" config:"STRESS_STATSD_ADDRESS"`
	StatsdEvery    int           `yaml:"statsd_every" config:"STRESS_STATSD_EVERY"`
	Profile        string        `yaml:"profile" config:"STRESS_PROFILE"`
	LogLevel       string        `yaml:"log_level" config:"STRESS_LOG_LEVEL"`
}

func defaultConfig() Config {
	return Config{
		Duration:      10 * time.Second,
		Entities:      10000,
		TrailCapacity: 1024,
		Seed:          1,
		StatsdEvery:   60,
		LogLevel:      "info",
	}
}

func loadConfig(args []string) (Config, error) {
	defaults := defaultConfig()

	fs := flag.NewFlagSet("ecs-stress", flag.ContinueOnError)
	configPath := fs.String("config", "", "Optional YAML file with run settings.")
	duration := fs.Duration("duration", defaults.Duration, "The total duration the test should run for.")
	entities := fs.Int("entities", defaults.Entities, "The initial number of entities to create.")
	trailCapacity := fs.Int("trail-capacity", defaults.TrailCapacity, "Capacity of the LRU-bounded Trail store.")
	seed := fs.Uint64("seed", defaults.Seed, "Seed for the random entity generator.")
	gcPauseMetrics := fs.Bool("gc-pause-metrics", defaults.GCPauseMetrics, "Enable detailed GC pause metrics in the report.")
	statsdAddress := fs.String("statsd", defaults.StatsdAddress, "host:port of a statsd agent. Empty disables metrics.")
	profileMode := fs.String("profile", defaults.Profile, "Write a pprof profile: cpu or mem.")
	logLevel := fs.String("log-level", defaults.LogLevel, "zerolog level name.")
	if err := fs.Parse(args); err != nil {
		return Config{}, eris.Wrap(err, "parsing flags")
	}

	cfg := defaults
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			return Config{}, eris.Wrapf(err, "reading config %s", *configPath)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, eris.Wrapf(err, "decoding config %s", *configPath)
		}
	}

	if err := jlconfig.FromEnv().To(&cfg); err != nil {
		return Config{}, eris.Wrap(err, "loading environment")
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "duration":
			cfg.Duration = *duration
		case "entities":
			cfg.Entities = *entities
		case "trail-capacity":
			cfg.TrailCapacity = *trailCapacity
		case "seed":
			cfg.Seed = *seed
		case "gc-pause-metrics":
			cfg.GCPauseMetrics = *gcPauseMetrics
		case "statsd":
			cfg.StatsdAddress = *statsdAddress
		case "profile":
			cfg.Profile = *profileMode
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.Duration <= 0 {
		return eris.Errorf("duration must be positive, got %s", c.Duration)
	}
	if c.Entities < 0 {
		return eris.Errorf("entities must not be negative, got %d", c.Entities)
	}
	if c.TrailCapacity <= 0 {
		return eris.Errorf("trail capacity must be positive, got %d", c.TrailCapacity)
	}
	if c.StatsdEvery <= 0 {
		return eris.Errorf("statsd interval must be positive, got %d", c.StatsdEvery)
	}
	switch c.Profile {
	case "", "cpu", "mem":
	default:
		return eris.Errorf("unknown profile mode %q", c.Profile)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return eris.Wrapf(err, "log level %q", c.LogLevel)
	}
	return nil
}
