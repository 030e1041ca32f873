package config

import (
	"fmt"
	"os"

	"github.com/MixinNetwork/fraction/logger"
	"github.com/pelletier/go-toml"
)

const (
	BuildVersion = "v0.1.0"

	OutputMixed   = "mixed"
	OutputFloat   = "float"
	OutputDecimal = "decimal"

	DefaultDecimalPlaces = 8
)

type Custom struct {
	Log struct {
		Level   int    `toml:"level"`
		Filter  string `toml:"filter"`
		Limiter int    `toml:"limiter"`
	} `toml:"log"`
	Output struct {
		Format string `toml:"format"`
		Places int32  `toml:"places"`
	} `toml:"output"`
}

func Default() *Custom {
	var config Custom
	config.applyDefaults()
	return &config
}

func Initialize(file string) (*Custom, error) {
	f, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	var config Custom
	err = toml.Unmarshal(f, &config)
	if err != nil {
		return nil, err
	}
	config.applyDefaults()
	switch config.Output.Format {
	case OutputMixed, OutputFloat, OutputDecimal:
	default:
		return nil, fmt.Errorf("invalid output format %s", config.Output.Format)
	}
	if config.Output.Places < 0 {
		return nil, fmt.Errorf("invalid output places %d", config.Output.Places)
	}
	return &config, nil
}

func (c *Custom) applyDefaults() {
	if c.Log.Level == 0 {
		c.Log.Level = logger.INFO
	}
	if c.Output.Format == "" {
		c.Output.Format = OutputMixed
	}
	if c.Output.Places == 0 {
		c.Output.Places = DefaultDecimalPlaces
	}
}
