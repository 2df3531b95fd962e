package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/de-tools/insight-atlas/pkg/services/insight"
	"github.com/de-tools/insight-atlas/pkg/store/sqlite"
)

var dbPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "insight-atlas",
		Short: "Run the insight engine against a local metrics database",
		RunE:  runReport,
	}

	rootCmd.Flags().StringVarP(&dbPath, "db", "d", "insight-atlas.db",
		"Path to the SQLite metrics database")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runReport(cmd *cobra.Command, _ []string) error {
	db, err := sqlite.NewDB(sqlite.Settings{DbPath: dbPath})
	if err != nil {
		return fmt.Errorf("failed to open metrics database: %w", err)
	}
	defer func() { _ = db.Close() }()

	provider, err := sqlite.NewProvider(db)
	if err != nil {
		return err
	}

	snapshot, err := provider.GetSnapshot(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to read metrics: %w", err)
	}

	results := insight.NewEngine().Run(snapshot)
	if len(results) == 0 {
		fmt.Println("no insights available")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PRIORITY\tSEVERITY\tCATEGORY\tTIMEFRAME\tTITLE")
	for _, in := range results {
		fmt.Fprintf(w, "%.1f\t%s\t%s\t%s\t%s\n",
			in.Priority, in.Severity, in.Category, in.Timeframe, in.Title)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if featured := insight.Featured(results); featured != nil {
		fmt.Printf("\nFeatured: %s\n%s\n", featured.Title, featured.Description)
		for _, action := range featured.Actions {
			fmt.Printf("  - %s\n", action)
		}
		if len(featured.Metrics) > 0 {
			keys := make([]string, 0, len(featured.Metrics))
			for k := range featured.Metrics {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Printf("  %s: %s\n", k, featured.Metrics[k])
			}
		}
	}
	return nil
}
