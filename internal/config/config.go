// Package config loads runtime settings from the environment.
package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"

	"github.com/Mig-uel/event-emitter-demo/internal/app/components/child"
)

// Config controls how the demo starts.
type Config struct {
	InitialCount  int           `env:"EMITTER_INITIAL_COUNT"  envDefault:"9"`
	Title         string        `env:"EMITTER_TITLE"          envDefault:"event-emitter-demo"`
	ChildVariant  child.Variant `env:"EMITTER_CHILD_VARIANT"  envDefault:"emitter"`
	LogLevel      string        `env:"EMITTER_LOG_LEVEL"      envDefault:"info"`
	LogFormat     string        `env:"EMITTER_LOG_FORMAT"     envDefault:"console"`
	MountSelector string        `env:"EMITTER_MOUNT_SELECTOR" envDefault:"#app"`
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse env")
	}
	return cfg, nil
}
