// Package commands implements the pattrix CLI subcommands.
package commands

import (
	"os"

	"github.com/teranos/pattrix/config"
	"github.com/teranos/pattrix/db"
	"github.com/teranos/pattrix/errors"
	"github.com/teranos/pattrix/logger"
	"github.com/teranos/pattrix/table"
)

// loadTable reads the dynamic table from CSV or, when fromDB is set, from the
// configured SQLite record store.
func loadTable(cfg *config.Config, inputPath string, fromDB bool) (*table.Table, error) {
	if fromDB {
		database, err := db.Open(cfg.Database.Path, logger.Logger.Named("db"))
		if err != nil {
			return nil, err
		}
		defer database.Close()
		if err := db.Migrate(database, logger.Logger.Named("db")); err != nil {
			return nil, err
		}
		store := db.NewRecordStore(database, logger.Logger.Named("db"))
		return store.LoadRecords(cfg.Detection.Separator)
	}

	if inputPath == "" {
		return nil, errors.NewConfigurationError("either --input or --from-db is required")
	}
	f, err := os.Open(inputPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open input file %s", inputPath)
	}
	defer f.Close()
	return table.LoadCSV(f, cfg.Detection.Separator)
}
