package score

import (
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/teranos/pattrix/counter"
	"github.com/teranos/pattrix/table"
)

// SeriesCSV serializes a time-series table as delimited text, the contract
// for report-prompt variables.
func SeriesCSV(rows []counter.SeriesRow) string {
	var b strings.Builder
	w := csv.NewWriter(&b)
	w.Write([]string{"period", "pattern", "count"})
	for _, row := range rows {
		w.Write([]string{row.Period, row.Pattern, strconv.Itoa(row.Count)})
	}
	w.Flush()
	return b.String()
}

// AttributeCountsCSV serializes an attribute-count table as delimited text,
// same serialization contract as SeriesCSV.
func AttributeCountsCSV(rows []table.AttributeCount) string {
	var b strings.Builder
	w := csv.NewWriter(&b)
	w.Write([]string{"AttributeValue", "Count"})
	for _, row := range rows {
		w.Write([]string{row.Attribute, strconv.Itoa(row.Count)})
	}
	w.Flush()
	return b.String()
}
