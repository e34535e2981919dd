package main

import (
	"fmt"

	"github.com/creasty/defaults"
	"github.com/davejbax/alignoff/internal/sweep"
	"github.com/spf13/viper"
)

type config struct {
	Sweep sweep.Config

	// Decoded individually by decodeProbe, so that bad entries can be
	// reported by index
	Probes []map[string]interface{}
}

func loadConfig(path string) (*config, error) {
	config := &config{}

	if err := defaults.Set(config); err != nil {
		return nil, fmt.Errorf("failed to set config defaults: %w", err)
	}

	if path == "" {
		return config, nil
	}

	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config from '%s': %w", path, err)
	}

	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return config, nil
}
