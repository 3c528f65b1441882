package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/pattrix/config"
	"github.com/teranos/pattrix/errors"
	"github.com/teranos/pattrix/score"
)

var (
	countsInput  string
	countsFromDB bool
)

// CountsCmd emits the attribute-count table for a pattern within a period.
var CountsCmd = &cobra.Command{
	Use:   "counts PATTERN PERIOD",
	Short: "Emit attribute counts for a pattern within a period",
	Long: `Among the subjects matching every conjunct of PATTERN within
PERIOD, count how many distinct subjects carry each full attribute, sorted by
count descending. Output follows the same delimited-text contract as series.

Example:
  pattrix counts "sector==tech" 2023-H1 --input records.csv`,
	Args: cobra.ExactArgs(2),
	RunE: runCountsCommand,
}

func init() {
	CountsCmd.Flags().StringVarP(&countsInput, "input", "i", "", "Dynamic-table CSV path")
	CountsCmd.Flags().BoolVar(&countsFromDB, "from-db", false, "Read the dynamic table from the SQLite record store")
}

func runCountsCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	tbl, err := loadTable(cfg, countsInput, countsFromDB)
	if err != nil {
		return err
	}

	period := args[1]
	known := false
	for _, p := range tbl.Periods() {
		if p == period {
			known = true
			break
		}
	}
	if !known {
		return errors.Wrapf(errors.ErrNotFound, "period %s not present in the dynamic table", period)
	}

	rows := tbl.AttributeCounts(args[0], period)
	fmt.Print(score.AttributeCountsCSV(rows))
	return nil
}
