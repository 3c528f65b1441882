package db

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/teranos/pattrix/errors"
	"github.com/teranos/pattrix/table"
)

// Query constants
const (
	recordInsertQuery = `
		INSERT OR REPLACE INTO dynamic_records
			(subject_id, period, attribute_type, attribute_value, full_attribute)
		VALUES (?, ?, ?, ?, ?)`

	recordSelectQuery = `
		SELECT subject_id, period, attribute_type, attribute_value, full_attribute
		FROM dynamic_records
		ORDER BY subject_id, period, full_attribute`
)

// RecordStore persists and loads the standardized dynamic table.
type RecordStore struct {
	db     *sql.DB
	logger *zap.SugaredLogger
}

// NewRecordStore creates a SQLite-backed record store.
func NewRecordStore(db *sql.DB, logger *zap.SugaredLogger) *RecordStore {
	return &RecordStore{db: db, logger: logger}
}

// InsertRecords writes the table's rows in one transaction. Existing rows
// with the same (subject, period, full attribute) key are replaced.
func (s *RecordStore) InsertRecords(t *table.Table) error {
	tx, err := s.db.Begin()
	if err != nil {
		return errors.Wrap(err, "begin insert transaction")
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(recordInsertQuery)
	if err != nil {
		return errors.Wrap(err, "prepare record insert")
	}
	defer stmt.Close()

	for _, r := range t.Records() {
		if _, err := stmt.Exec(r.SubjectID, r.Period, r.AttributeType, r.AttributeValue, r.FullAttribute); err != nil {
			return errors.Wrapf(err, "insert record for subject %s", r.SubjectID)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "commit record insert")
	}
	if s.logger != nil {
		s.logger.Infow("Inserted dynamic records", "count", t.Len())
	}
	return nil
}

// LoadRecords reads the full dynamic table back in deterministic order.
func (s *RecordStore) LoadRecords(typeValSep string) (*table.Table, error) {
	rows, err := s.db.Query(recordSelectQuery)
	if err != nil {
		return nil, errors.Wrap(err, "query dynamic records")
	}
	defer rows.Close()

	var records []table.Record
	for rows.Next() {
		var r table.Record
		if err := rows.Scan(&r.SubjectID, &r.Period, &r.AttributeType, &r.AttributeValue, &r.FullAttribute); err != nil {
			return nil, errors.Wrap(err, "scan dynamic record")
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate dynamic records")
	}

	return table.New(records, typeValSep)
}
