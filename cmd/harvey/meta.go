// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/kinnison/harvey/internal/deck"
)

var metaCmd = &cobra.Command{
	Use:   "meta <deckfile>",
	Short: "Extract every slide's fully resolved metadata",
	Long: `Meta runs the resolution pipeline without rendering anything and
emits each slide's fully resolved metadata mapping, keyed by source
file and slide number, for external linting.

By default the first broken slide aborts the run, matching build
behavior. With --keep-going every slide is attempted and all
diagnostics are reported at the end.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reports, errs := deck.Lint(args[0])

		keepGoing, _ := cmd.Flags().GetBool("keep-going")
		if len(errs) > 0 && !keepGoing {
			return errs[0]
		}

		out, err := yaml.Marshal(reports)
		if err != nil {
			return fmt.Errorf("marshaling metadata reports: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))

		if len(errs) > 0 {
			for _, e := range errs {
				fmt.Fprintln(os.Stderr, e)
			}
			return fmt.Errorf("%d slide(s) failed to resolve", len(errs))
		}
		return nil
	},
}

func init() {
	metaCmd.Flags().Bool("keep-going", false, "collect all diagnostics instead of stopping at the first")

	rootCmd.AddCommand(metaCmd)
}
