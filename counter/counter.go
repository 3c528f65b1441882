// Package counter provides the indexed query layer over the full dynamic
// table. A RecordCounter is built once per run and answers population counts,
// null-baseline estimates, and per-period time series for any attribute
// conjunction.
package counter

import (
	"iter"
	"math"
	"sort"

	"github.com/teranos/pattrix/table"
)

// RecordCounter indexes the dynamic table across all periods.
type RecordCounter struct {
	periods []string

	// period -> full attribute -> distinct subject set
	index map[string]map[string]map[string]struct{}

	// period -> subject -> sorted full-attribute list
	subjectAtts map[string]map[string][]string

	// period -> distinct subject count
	population map[string]int
}

// SeriesRow is one charting-ready time-series observation.
type SeriesRow struct {
	Period  string
	Pattern string
	Count   int
}

// New builds a RecordCounter from the full dynamic table.
func New(t *table.Table) *RecordCounter {
	rc := &RecordCounter{
		periods:     t.Periods(),
		index:       make(map[string]map[string]map[string]struct{}),
		subjectAtts: make(map[string]map[string][]string),
		population:  make(map[string]int),
	}

	perSubject := make(map[string]map[string]map[string]struct{})
	for _, r := range t.Records() {
		byAtt, ok := rc.index[r.Period]
		if !ok {
			byAtt = make(map[string]map[string]struct{})
			rc.index[r.Period] = byAtt
		}
		subjects, ok := byAtt[r.FullAttribute]
		if !ok {
			subjects = make(map[string]struct{})
			byAtt[r.FullAttribute] = subjects
		}
		subjects[r.SubjectID] = struct{}{}

		bySubject, ok := perSubject[r.Period]
		if !ok {
			bySubject = make(map[string]map[string]struct{})
			perSubject[r.Period] = bySubject
		}
		atts, ok := bySubject[r.SubjectID]
		if !ok {
			atts = make(map[string]struct{})
			bySubject[r.SubjectID] = atts
		}
		atts[r.FullAttribute] = struct{}{}
	}

	for period, bySubject := range perSubject {
		rc.population[period] = len(bySubject)
		sorted := make(map[string][]string, len(bySubject))
		for subject, atts := range bySubject {
			list := make([]string, 0, len(atts))
			for att := range atts {
				list = append(list, att)
			}
			sort.Strings(list)
			sorted[subject] = list
		}
		rc.subjectAtts[period] = sorted
	}

	return rc
}

// Periods returns the sorted periods the counter was built over.
func (rc *RecordCounter) Periods() []string { return rc.periods }

// Population returns the distinct subject count of one period.
func (rc *RecordCounter) Population(period string) int {
	return rc.population[period]
}

// Attributes returns the sorted full-attribute set of one subject within one
// period. Missing subjects yield nil.
func (rc *RecordCounter) Attributes(period, subjectID string) []string {
	return rc.subjectAtts[period][subjectID]
}

// Count returns the distinct subjects satisfying every conjunct in the
// period. An empty conjunction counts nothing.
func (rc *RecordCounter) Count(period string, conjunction []string) int {
	if len(conjunction) == 0 {
		return 0
	}
	byAtt := rc.index[period]
	if byAtt == nil {
		return 0
	}

	// Intersect starting from the rarest conjunct.
	smallest := -1
	for i, att := range conjunction {
		set, ok := byAtt[att]
		if !ok {
			return 0
		}
		if smallest < 0 || len(set) < len(byAtt[conjunction[smallest]]) {
			smallest = i
		}
	}

	count := 0
	for subject := range byAtt[conjunction[smallest]] {
		all := true
		for i, att := range conjunction {
			if i == smallest {
				continue
			}
			if _, ok := byAtt[att][subject]; !ok {
				all = false
				break
			}
		}
		if all {
			count++
		}
	}
	return count
}

// Baseline returns the expected count and its standard deviation for the
// conjunction under an independence model: each conjunct's marginal frequency
// contributes a factor to the joint probability, scaled by the period
// population (binomial mean and spread).
func (rc *RecordCounter) Baseline(period string, conjunction []string) (mean, std float64) {
	n := float64(rc.population[period])
	if n == 0 || len(conjunction) == 0 {
		return 0, 0
	}

	p := 1.0
	byAtt := rc.index[period]
	for _, att := range conjunction {
		p *= float64(len(byAtt[att])) / n
	}
	mean = n * p
	std = math.Sqrt(n * p * (1 - p))
	return mean, std
}

// TimeSeries yields one (period, pattern, count) row per period, including
// periods where the conjunction counts zero, so charts stay continuous.
// The sequence is finite and restartable.
func (rc *RecordCounter) TimeSeries(conjunction []string) iter.Seq[SeriesRow] {
	pattern := table.JoinPattern(conjunction)
	return func(yield func(SeriesRow) bool) {
		for _, period := range rc.periods {
			row := SeriesRow{
				Period:  period,
				Pattern: pattern,
				Count:   rc.Count(period, conjunction),
			}
			if !yield(row) {
				return
			}
		}
	}
}

// TimeSeriesRows collects TimeSeries into a slice.
func (rc *RecordCounter) TimeSeriesRows(conjunction []string) []SeriesRow {
	rows := make([]SeriesRow, 0, len(rc.periods))
	for row := range rc.TimeSeries(conjunction) {
		rows = append(rows, row)
	}
	return rows
}
