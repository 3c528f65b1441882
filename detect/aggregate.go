package detect

import (
	"sort"

	"github.com/teranos/pattrix/counter"
	"github.com/teranos/pattrix/table"
)

// Detection is one pattern clearing the minimum-count threshold in one
// period, with its population count and deviation from the null baseline.
type Detection struct {
	Period  string
	Pattern string
	Length  int
	Count   int
	Mean    float64
	ZScore  float64
}

// AggregatePatterns expands per-period candidates into bounded-length
// conjunctions. Conjunctions are truncated at maxPatternLength: longer ones
// are statistically unlikely to clear the count threshold, so the truncation
// trades the long tail for bounded combinatorics. Each surviving conjunction
// gets its true count plus a null-baseline mean and z-score from the record
// counter; candidates below minPatternCount are discarded. Detections within
// a period are ordered by pattern string so output is deterministic.
func AggregatePatterns(
	periods []string,
	candidates []Candidate,
	maxPatternLength, minPatternCount int,
	rc *counter.RecordCounter,
) map[string][]Detection {
	byPeriod := make(map[string][]Candidate)
	for _, c := range candidates {
		byPeriod[c.Period] = append(byPeriod[c.Period], c)
	}

	periodToPatterns := make(map[string][]Detection, len(periods))
	for _, period := range periods {
		seen := make(map[string]struct{})
		var detections []Detection
		for _, c := range byPeriod[period] {
			conjunction := c.Conjunction
			if len(conjunction) > maxPatternLength {
				conjunction = conjunction[:maxPatternLength]
			}
			pattern := table.JoinPattern(conjunction)
			if _, dup := seen[pattern]; dup {
				continue
			}
			seen[pattern] = struct{}{}

			count := rc.Count(period, conjunction)
			if count < minPatternCount {
				continue
			}
			mean, std := rc.Baseline(period, conjunction)
			z := 0.0
			if std > 0 {
				z = (float64(count) - mean) / std
			}
			detections = append(detections, Detection{
				Period:  period,
				Pattern: pattern,
				Length:  len(conjunction),
				Count:   count,
				Mean:    mean,
				ZScore:  z,
			})
		}
		sort.Slice(detections, func(i, j int) bool {
			return detections[i].Pattern < detections[j].Pattern
		})
		periodToPatterns[period] = detections
	}
	return periodToPatterns
}

// Flatten orders per-period detections into a single row list, periods in
// sorted order.
func Flatten(periods []string, periodToPatterns map[string][]Detection) []Detection {
	var rows []Detection
	for _, period := range periods {
		rows = append(rows, periodToPatterns[period]...)
	}
	return rows
}
