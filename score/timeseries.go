package score

import (
	"github.com/teranos/pattrix/counter"
	"github.com/teranos/pattrix/table"
)

// BuildTimeSeries concatenates the record counter's per-period series for the
// selected patterns into one (period, pattern, count) table, one row per
// period per pattern including zero counts, ready for charting or report
// serialization.
func BuildTimeSeries(rc *counter.RecordCounter, patterns []string) []counter.SeriesRow {
	var rows []counter.SeriesRow
	for _, pattern := range patterns {
		for row := range rc.TimeSeries(table.SplitPattern(pattern)) {
			rows = append(rows, row)
		}
	}
	return rows
}
