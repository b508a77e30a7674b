// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/kinnison/harvey/internal/deck"
	"github.com/kinnison/harvey/internal/resources"
	"github.com/kinnison/harvey/pkg/types"
)

// renderPlan is the compiled deck as handed to the template-expansion
// stage: the deck-wide configuration plus one entry per slide with its
// flat render context and the template to expand.
type renderPlan struct {
	Ratio         string         `json:"ratio" yaml:"ratio"`
	Styles        []string       `json:"styles" yaml:"styles"`
	Scripts       []string       `json:"scripts" yaml:"scripts"`
	TemplatePath  []string       `json:"template_path" yaml:"template-path"`
	GlobalContext map[string]any `json:"global_context" yaml:"global-context"`
	Slides        []renderSlide  `json:"slides" yaml:"slides"`
}

type renderSlide struct {
	Index    int            `json:"index" yaml:"index"`
	File     string         `json:"file" yaml:"file"`
	Template string         `json:"template" yaml:"template"`
	Context  map[string]any `json:"context" yaml:"context"`
}

var buildCmd = &cobra.Command{
	Use:   "build <deckfile>",
	Short: "Compile a deck into fully-resolved slide records",
	Long: `Build loads the deck file, splits every listed slide file into
slides, resolves slide metadata in document order, and emits the
resolved deck. The first error aborts the build; no partial deck is
ever written.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := deck.Build(args[0])
		if err != nil {
			return err
		}

		warnMissingAssets(d)

		plan := renderPlan{
			Ratio:         d.BaseMeta.Ratio.String(),
			Styles:        d.Styles,
			Scripts:       d.Scripts,
			TemplatePath:  d.TemplatePaths,
			GlobalContext: d.GlobalContext,
			Slides:        make([]renderSlide, len(d.Slides)),
		}
		for i, s := range d.Slides {
			plan.Slides[i] = renderSlide{
				Index:    s.Index,
				File:     s.File,
				Template: s.Template,
				Context:  s.RenderContext(d.GlobalContext),
			}
		}

		format, _ := cmd.Flags().GetString("format")
		if format == "" {
			format = viper.GetString("format")
		}
		out, err := encodePlan(plan, format)
		if err != nil {
			return err
		}

		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		}
		if err := os.WriteFile(output, out, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", output, err)
		}
		fmt.Fprintf(os.Stderr, "Compiled %d slides to %s\n", len(d.Slides), output)
		return nil
	},
}

// encodePlan marshals the plan in the requested format.
func encodePlan(plan renderPlan, format string) ([]byte, error) {
	switch format {
	case "", "yaml":
		return yaml.Marshal(plan)
	case "json":
		return json.MarshalIndent(plan, "", "  ")
	default:
		return nil, fmt.Errorf("unknown output format %q (want yaml or json)", format)
	}
}

// warnMissingAssets reports styles and scripts that resolve neither on
// the template paths nor in the built-in bundle. The build still
// succeeds; the asset stage may source them elsewhere.
func warnMissingAssets(d *types.Deck) {
	for _, name := range append(append([]string{}, d.Styles...), d.Scripts...) {
		if !resources.Exists(d.TemplatePaths, name) {
			fmt.Fprintf(os.Stderr, "warning: asset %s not found on template paths\n", name)
		}
	}
}

func init() {
	buildCmd.Flags().StringP("output", "o", "", "write the compiled deck to a file instead of stdout")
	buildCmd.Flags().String("format", "", "output format: yaml or json (default yaml)")

	rootCmd.AddCommand(buildCmd)
}
