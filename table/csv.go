package table

import (
	"encoding/csv"
	"io"

	"github.com/teranos/pattrix/errors"
)

// Column headers of the standardized long-format input.
const (
	ColSubjectID      = "Subject ID"
	ColPeriod         = "Period"
	ColAttributeType  = "Attribute Type"
	ColAttributeValue = "Attribute Value"
	ColFullAttribute  = "Full Attribute"
)

// LoadCSV reads the standardized dynamic table from CSV. The header must
// carry Subject ID, Period, Attribute Type, and Attribute Value; Full
// Attribute is derived from the separator when absent.
func LoadCSV(r io.Reader, typeValSep string) (*Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return New(nil, typeValSep)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read CSV header")
	}

	idx := make(map[string]int, len(header))
	for i, col := range header {
		idx[col] = i
	}
	for _, required := range []string{ColSubjectID, ColPeriod, ColAttributeType, ColAttributeValue} {
		if _, ok := idx[required]; !ok {
			return nil, errors.NewDataShapeError("missing required column %q", required)
		}
	}
	fullIdx, hasFull := idx[ColFullAttribute]

	var records []Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to read CSV row")
		}
		rec := Record{
			SubjectID:      row[idx[ColSubjectID]],
			Period:         row[idx[ColPeriod]],
			AttributeType:  row[idx[ColAttributeType]],
			AttributeValue: row[idx[ColAttributeValue]],
		}
		if hasFull && fullIdx < len(row) {
			rec.FullAttribute = row[fullIdx]
		}
		records = append(records, rec)
	}

	return New(records, typeValSep)
}
