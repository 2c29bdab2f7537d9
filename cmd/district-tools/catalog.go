// Copyright Civic Data Works, 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/civicdata/district-tools/internal/catalog"
	"github.com/civicdata/district-tools/pkg/types"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the conversion run catalog",
	Long: `Catalog manages the local SQLite record of conversion runs. Every
successful convert appends a row; use the list subcommand to review them.`,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded conversion runs, newest first",
	RunE:  runCatalogList,
}

func init() {
	catalogListCmd.Flags().Int("limit", 0, "maximum runs to show (default from config, else 20)")
	catalogListCmd.Flags().Bool("json", false, "emit runs as JSON")

	catalogCmd.AddCommand(catalogListCmd)
	rootCmd.AddCommand(catalogCmd)
}

// catalogConfig resolves catalog settings from config with defaults.
func catalogConfig() types.CatalogConfig {
	path := viper.GetString("catalog.path")
	if path == "" {
		path = catalog.DefaultPath
	}
	return types.CatalogConfig{
		Path:       path,
		MaxResults: viper.GetInt("catalog.max_results"),
	}
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	store, err := catalog.NewStore(catalogConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := store.List(context.Background(), limit)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	if len(runs) == 0 {
		fmt.Println("No conversions recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-30s  %-30s  %-20s  %8s  %s\n",
		"ID", "Source", "Dest", "Description", "Features", "When")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 110))
	for _, r := range runs {
		fmt.Fprintf(os.Stdout, "%-4d  %-30s  %-30s  %-20s  %8d  %s\n",
			r.ID, truncate(r.Source, 30), truncate(r.Dest, 30),
			truncate(r.Description, 20), r.Features,
			r.CreatedAt.Format(time.RFC3339))
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
