package commands

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/pattrix/config"
	"github.com/teranos/pattrix/db"
	"github.com/teranos/pattrix/errors"
	"github.com/teranos/pattrix/logger"
	"github.com/teranos/pattrix/table"
)

var importInput string

// ImportCmd loads a dynamic-table CSV into the SQLite record store.
var ImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a dynamic-table CSV into the SQLite record store",
	Long: `Validate a standardized dynamic-table CSV and write its rows into
the configured SQLite database, replacing rows with the same
(subject, period, attribute) key.

Example:
  pattrix import --input records.csv`,
	RunE: runImportCommand,
}

func init() {
	ImportCmd.Flags().StringVarP(&importInput, "input", "i", "", "Dynamic-table CSV path (required)")
	ImportCmd.MarkFlagRequired("input")
}

func runImportCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	f, err := os.Open(importInput)
	if err != nil {
		return errors.Wrapf(err, "failed to open input file %s", importInput)
	}
	defer f.Close()

	tbl, err := table.LoadCSV(f, cfg.Detection.Separator)
	if err != nil {
		return err
	}

	database, err := db.Open(cfg.Database.Path, logger.Logger.Named("db"))
	if err != nil {
		return err
	}
	defer database.Close()

	if err := db.Migrate(database, logger.Logger.Named("db")); err != nil {
		return err
	}
	store := db.NewRecordStore(database, logger.Logger.Named("db"))
	if err := store.InsertRecords(tbl); err != nil {
		return err
	}

	pterm.Success.Printf("Imported %d records into %s\n", tbl.Len(), cfg.Database.Path)
	return nil
}
