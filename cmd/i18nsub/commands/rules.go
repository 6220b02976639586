package commands

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/walteh/i18nsub/cmd/i18nsub/opts"
	"gitlab.com/tozd/go/errors"
)

// NewRulesCmd creates the command that lists the effective rules
func NewRulesCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the replacement rules in the order they are applied",
		Long: `Rules prints every replacement rule that a run would apply, in order.
Built-in rules come first, followed by any rules from the config file.
Newlines and tabs in patterns are shown escaped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.LoadConfig(cmd.Context())
			if err != nil {
				return err
			}

			data := pterm.TableData{{"#", "section", "pattern", "replacement", "files"}}
			for i, r := range cfg.EffectiveRules() {
				files := r.FileFilterGlob
				if files == "" {
					files = "*"
				}
				data = append(data, []string{strconv.Itoa(i + 1), r.Section, r.DisplayPattern(), r.DisplayReplacement(), files})
			}

			table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return errors.Errorf("rendering rules table: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "target: %s\n\n%s\n", cfg.Target, table)
			return nil
		},
	}

	return cmd
}
