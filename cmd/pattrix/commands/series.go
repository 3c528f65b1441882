package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/pattrix/config"
	"github.com/teranos/pattrix/counter"
	"github.com/teranos/pattrix/score"
)

var (
	seriesInput  string
	seriesFromDB bool
)

// SeriesCmd emits the charting-ready time series of one pattern.
var SeriesCmd = &cobra.Command{
	Use:   "series PATTERN",
	Short: "Emit the per-period time series of a pattern",
	Long: `Emit one (period, pattern, count) row per period for the given
pattern, including zero-count periods, as delimited text suitable for
charting or report-prompt variables.

Example:
  pattrix series "sector==tech & region==north" --input records.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runSeriesCommand,
}

func init() {
	SeriesCmd.Flags().StringVarP(&seriesInput, "input", "i", "", "Dynamic-table CSV path")
	SeriesCmd.Flags().BoolVar(&seriesFromDB, "from-db", false, "Read the dynamic table from the SQLite record store")
}

func runSeriesCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	tbl, err := loadTable(cfg, seriesInput, seriesFromDB)
	if err != nil {
		return err
	}

	rc := counter.New(tbl)
	rows := score.BuildTimeSeries(rc, []string{args[0]})
	fmt.Print(score.SeriesCSV(rows))
	return nil
}
