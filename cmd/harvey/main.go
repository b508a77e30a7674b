// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the harvey CLI.
// See docs/ARCHITECTURE § CLI Surface.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the harvey CLI.
var rootCmd = &cobra.Command{
	Use:   "harvey",
	Short: "Compile Markdown slide decks into resolved slide records",
	Long: `harvey compiles presentation decks written in a Markdown-based slide
format. A deck file lists the slide files to load; harvey splits each
file into slides, resolves slide metadata with cross-slide
inheritance, and emits fully-resolved slide records ready for
template expansion.

Each operation is a subcommand: build compiles a whole deck, and meta
extracts the resolved metadata of every slide for linting.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./harvey.yaml or ~/.config/harvey/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("harvey")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "harvey"))
		}
	}

	viper.SetEnvPrefix("HARVEY")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
