package commands

import (
	"context"

	"github.com/walteh/i18nsub/cmd/i18nsub/opts"
	"github.com/walteh/i18nsub/pkg/log"
	"github.com/walteh/i18nsub/pkg/operation"
	"github.com/walteh/i18nsub/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// RunApply rewrites the target with the effective rules. It backs the root command.
// The console logger must already be in ctx.
func RunApply(ctx context.Context, o *opts.RootOpts) error {
	console := log.FromContext(ctx)

	cfg, err := o.LoadConfig(ctx)
	if err != nil {
		return err
	}

	runner, err := operation.New(operation.Options{
		Target:  cfg.Target,
		Rules:   cfg.EffectiveRules(),
		Files:   status.New("."),
		Console: console,
		DryRun:  o.DryRun,
		Backup:  cfg.Backup,
		Atomic:  cfg.Atomic,
		Strict:  cfg.Strict,
		Verbose: o.Verbose,
	})
	if err != nil {
		return errors.Errorf("creating runner: %w", err)
	}

	if _, err := runner.Run(ctx); err != nil {
		var unmatched *operation.UnmatchedError
		if errors.As(err, &unmatched) {
			for _, rule := range unmatched.Rules {
				console.Warningf("no match for %q", rule.DisplayPattern())
			}
		}
		return errors.Errorf("applying translations: %w", err)
	}

	return nil
}
