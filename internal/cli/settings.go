package cli

import (
	"github.com/kleinwareio/liketype"
	"github.com/kleinwareio/liketype/config"
	"github.com/kleinwareio/liketype/logging"
	"github.com/spf13/pflag"
)

// EnvPrefix is the prefix of environment overrides, e.g. LIKETYPE_RENDER_STRATEGY.
const EnvPrefix = "LIKETYPE"

const (
	keyRenderType     = "render.type"
	keyRenderStrategy = "render.strategy"
	keyInputFormat    = "input.format"
	keyLogLevel       = "log.level"
)

var defaults = map[string]any{
	keyRenderType:     "Values",
	keyRenderStrategy: liketype.CountOnly.String(),
	keyInputFormat:    "",
	keyLogLevel:       "warn",
}

// flagKeys maps command line flags onto config keys.
var flagKeys = map[string]string{
	"type":      keyRenderType,
	"strategy":  keyRenderStrategy,
	"format":    keyInputFormat,
	"log-level": keyLogLevel,
}

// Settings is the resolved configuration of one command run.
type Settings struct {
	TypeName string
	Strategy liketype.RenderStrategy
	Format   string
	LogLevel logging.Level

	// Sources records which config layer supplied each key.
	Sources map[string]config.Source
}

// loadSettings resolves defaults, the optional config file, the environment
// and explicitly set flags, later sources winning.
func loadSettings(configFile string, flags *pflag.FlagSet) (Settings, error) {
	cfg := config.New().WithDefaults(defaults)
	if configFile != "" {
		if err := cfg.LoadFile(configFile); err != nil {
			return Settings{}, err
		}
	}
	cfg.LoadEnv(EnvPrefix)

	flags.Visit(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			cfg.Set(key, f.Value.String())
		}
	})

	if err := cfg.Validate(keyRenderType, keyRenderStrategy); err != nil {
		return Settings{}, err
	}

	strategy, err := liketype.ParseRenderStrategy(cfg.GetString(keyRenderStrategy))
	if err != nil {
		return Settings{}, err
	}
	level, err := logging.ParseLevel(cfg.GetString(keyLogLevel))
	if err != nil {
		return Settings{}, err
	}

	sources := make(map[string]config.Source, len(defaults))
	for key := range defaults {
		if _, source, ok := cfg.Lookup(key); ok {
			sources[key] = source
		}
	}

	return Settings{
		TypeName: cfg.GetString(keyRenderType),
		Strategy: strategy,
		Format:   cfg.GetString(keyInputFormat),
		LogLevel: level,
		Sources:  sources,
	}, nil
}
