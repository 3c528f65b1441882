package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/pattrix/cmd/pattrix/commands"
	"github.com/teranos/pattrix/config"
	"github.com/teranos/pattrix/logger"
)

var rootCmd = &cobra.Command{
	Use:   "pattrix",
	Short: "pattrix - temporal attribute pattern detection",
	Long: `pattrix - Detect recurring multi-attribute patterns across time periods.

pattrix builds per-period similarity graphs from a standardized dynamic
table, finds geometrically close subject clusters using externally supplied
layouts, and ranks over-represented attribute conjunctions by statistical
significance.

Available commands:
  detect  - Run pattern detection over a dynamic table
  series  - Emit the per-period time series of a pattern
  counts  - Emit attribute counts for a pattern within a period
  import  - Import a dynamic-table CSV into the SQLite record store
  config  - Show or persist configuration
  version - Show version information

Examples:
  pattrix detect --input records.csv --positions layout.yaml
  pattrix detect --from-db --positions layout.yaml --top 10
  pattrix series "sector==tech & region==north" --input records.csv
  pattrix counts "sector==tech" 2023-H1 --input records.csv`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		jsonOut := cfg.Logging.JSON
		if flag, _ := cmd.Flags().GetBool("json"); flag {
			jsonOut = true
		}
		if err := logger.Initialize(jsonOut); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("json", false, "Machine-readable JSON output")

	rootCmd.AddCommand(commands.DetectCmd)
	rootCmd.AddCommand(commands.SeriesCmd)
	rootCmd.AddCommand(commands.CountsCmd)
	rootCmd.AddCommand(commands.ImportCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
