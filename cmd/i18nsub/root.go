// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/i18nsub/cmd/i18nsub/commands"
	"github.com/walteh/i18nsub/cmd/i18nsub/opts"
	"github.com/walteh/i18nsub/pkg/log"
)

// newRootCmd creates the root command; running it with no arguments rewrites the target
func newRootCmd() *cobra.Command {
	o := &opts.RootOpts{}

	cmd := &cobra.Command{
		Use:   "i18nsub",
		Short: "Rewrite hard-coded UI strings into translation lookups",
		Long: `i18nsub rewrites English UI strings in a page component into references
to the translation table, e.g. "Find Your Dream Home" becomes {t.pages.home.hero.title}.

With no flags it applies the built-in Home page rules to src/pages/Home.tsx,
in order, writes the file back and prints one confirmation line.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(setupLogging(cmd.Context(), o, cmd.OutOrStdout(), cmd.ErrOrStderr()))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := commands.RunApply(cmd.Context(), o)
			if err != nil {
				zerolog.Ctx(cmd.Context()).Debug().Msg(fmt.Sprintf("%+v", err))
			}
			return err
		},
	}

	addRootFlags(cmd, o)

	cmd.AddCommand(
		commands.NewRulesCmd(o),
		newVersionCmd(),
	)

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&o.ConfigFile, "config", "c", "", "config file path (.yaml, .yml, .hcl or .json)")
	cmd.PersistentFlags().StringVarP(&o.Target, "file", "f", "", "file to rewrite (default src/pages/Home.tsx)")
	cmd.PersistentFlags().BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")

	cmd.Flags().BoolVar(&o.DryRun, "dry-run", false, "print a diff instead of writing")
	cmd.Flags().BoolVar(&o.Backup, "backup", false, "keep a .bak copy of the file")
	cmd.Flags().BoolVar(&o.Atomic, "atomic", false, "write through a temp file and rename")
	cmd.Flags().BoolVar(&o.Strict, "strict", false, "fail without writing if any rule matches nothing")
	cmd.Flags().BoolVarP(&o.Verbose, "verbose", "v", false, "print per-rule match counts")
}

// setupLogging configures zerolog based on flags and stores both loggers in the context
func setupLogging(ctx context.Context, o *opts.RootOpts, stdout, stderr io.Writer) context.Context {
	level := zerolog.WarnLevel
	if o.Debug {
		level = zerolog.DebugLevel
	}

	zlog := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: color.NoColor}).
		Level(level).
		With().Timestamp().Logger()

	ctx = zlog.WithContext(ctx)
	return log.NewContext(ctx, log.New(stdout, zlog))
}
