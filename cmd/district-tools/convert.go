package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/civicdata/district-tools/internal/catalog"
	"github.com/civicdata/district-tools/internal/convert"
	"github.com/civicdata/district-tools/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [source]",
	Short: "Convert an Esri Shapefile to GeoJSON",
	Long: `Convert reads a shapefile dataset from a zip archive or a directory,
cleans and normalizes its attribute table, and writes a GeoJSON
FeatureCollection with a CRS84 declaration. Each feature carries an id
promoted from the attributes, a derived display name, and fixed
simple-style colors.

The source may be given positionally or with --source-file, not both.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("source-file", "", "zip archive or directory containing the shapefile members")
	convertCmd.Flags().String("description", "", `dataset label (default "Districts")`)
	convertCmd.Flags().String("dest-file", "", "output GeoJSON path (default: derived from the description or source name)")
	convertCmd.Flags().Bool("no-catalog", false, "do not record the run in the conversion catalog")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	flagSource, _ := cmd.Flags().GetString("source-file")
	source := flagSource
	if len(args) == 1 {
		if flagSource != "" {
			return fmt.Errorf("source given both positionally and with --source-file")
		}
		source = args[0]
	}
	if source == "" {
		cmd.Usage()
		return fmt.Errorf("a source zip archive or directory is required")
	}

	label, _ := cmd.Flags().GetString("description")
	if label == "" {
		label = viper.GetString("convert.description")
	}
	if label == "" {
		label = types.DefaultDescription
	}

	style := types.DefaultStyle()
	if s := viper.GetString("convert.stroke"); s != "" {
		style.Stroke = s
	}
	if s := viper.GetString("convert.fill"); s != "" {
		style.Fill = s
	}

	dest, _ := cmd.Flags().GetString("dest-file")

	cfg := types.ConvertConfig{
		SourcePath:  source,
		DestPath:    dest,
		Description: types.DeriveDescription(label),
		Style:       style,
	}

	result, err := convert.Run(cfg, os.Stdout)
	if err != nil {
		return err
	}

	if noCatalog, _ := cmd.Flags().GetBool("no-catalog"); !noCatalog {
		recordRun(cfg, result)
	}
	return nil
}

// recordRun appends the conversion to the catalog. Catalog problems are
// warnings only; they never fail a conversion whose output is already on
// disk.
func recordRun(cfg types.ConvertConfig, result *convert.Result) {
	store, err := catalog.NewStore(catalogConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: catalog unavailable: %v\n", err)
		return
	}
	defer store.Close()

	run := catalog.Run{
		Source:      cfg.SourcePath,
		Dest:        result.DestPath,
		Description: cfg.Description.Default,
		Features:    result.Features,
	}
	if err := store.Record(context.Background(), run); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not record run: %v\n", err)
	}
}
