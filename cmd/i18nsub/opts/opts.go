package opts

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/i18nsub/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	ConfigFile string
	Target     string
	Debug      bool
	DryRun     bool
	Backup     bool
	Atomic     bool
	Strict     bool
	Verbose    bool
}

// LoadConfig returns the config file's settings, or the built-in defaults when no file
// was given, with command-line flags applied on top
func (o *RootOpts) LoadConfig(ctx context.Context) (*config.Config, error) {
	cfg := config.Default()
	if o.ConfigFile != "" {
		loaded, err := config.Load(ctx, o.ConfigFile)
		if err != nil {
			return nil, errors.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	if o.Target != "" {
		cfg.Target = o.Target
	}
	cfg.Backup = cfg.Backup || o.Backup
	cfg.Atomic = cfg.Atomic || o.Atomic
	cfg.Strict = cfg.Strict || o.Strict

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("file", o.ConfigFile).Str("config", cfg.String()).Msg("config loaded")
	return cfg, nil
}
