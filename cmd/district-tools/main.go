// Copyright Civic Data Works, 2026. All rights reserved.

// Package main is the entry point for the district-tools CLI, a small
// toolkit for civic and political geodata: shapefile-to-GeoJSON
// conversion, a catalog of past conversion runs, and a launcher for the
// voter-list crawl.
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

// rootCmd is the base command for the district-tools CLI.
var rootCmd = &cobra.Command{
	Use:   "district-tools",
	Short: "Utilities for civic and political geodata",
	Long: `district-tools bundles the small utilities used for civic data work:
converting Esri Shapefile district boundaries to GeoJSON, keeping a catalog
of past conversions, and launching the voter-list crawl.

Each utility is a subcommand: convert, catalog, and scrape.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.Help()
		return fmt.Errorf("a subcommand is required")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./district-tools.yaml or ~/.config/district-tools/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("district-tools")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "district-tools"))
		}
	}

	viper.SetEnvPrefix("DISTRICT_TOOLS")
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
