// Package detect finds raw pattern candidates from geometrically close
// subjects and expands them into statistically scored per-period detections.
package detect

import (
	"math"
	"sort"

	"github.com/teranos/pattrix/counter"
	"github.com/teranos/pattrix/layout"
	"github.com/teranos/pattrix/table"
)

// CloseFunc decides whether two externally laid-out nodes are close enough
// to suggest attribute overlap. The distance policy is caller-supplied; the
// detector never hard-codes one.
type CloseFunc func(a, b layout.Position) bool

// WithinRadius returns a CloseFunc accepting pairs within Euclidean distance
// radius of each other.
func WithinRadius(radius float64) CloseFunc {
	return func(a, b layout.Position) bool {
		dx, dy := a.X-b.X, a.Y-b.Y
		return math.Hypot(dx, dy) <= radius
	}
}

// Candidate is one raw attribute-conjunction candidate observed in a period.
type Candidate struct {
	Period      string
	Conjunction []string
}

// CloseNodes examines every unordered subject pair with positions in each
// period. Close pairs contribute the sorted union of their full-attribute
// sets as a raw candidate; a candidate is retained only when at least
// minPatternCount distinct subjects in the period satisfy the whole
// conjunction. Returns deduplicated candidate rows plus the pairs-examined
// and pairs-close tallies, threaded explicitly for coverage reporting.
func CloseNodes(
	periods []string,
	positions map[string]map[string]layout.Position,
	sortedSubjects []string,
	minPatternCount int,
	rc *counter.RecordCounter,
	isClose CloseFunc,
) (rows []Candidate, allPairs, closePairs int) {
	for _, period := range periods {
		periodPos := positions[period]
		if len(periodPos) == 0 {
			continue
		}

		present := make([]string, 0, len(periodPos))
		for _, subject := range sortedSubjects {
			if _, ok := periodPos[subject]; ok {
				present = append(present, subject)
			}
		}

		seen := make(map[string]struct{})
		for i := 0; i < len(present); i++ {
			for j := i + 1; j < len(present); j++ {
				allPairs++
				if !isClose(periodPos[present[i]], periodPos[present[j]]) {
					continue
				}
				closePairs++

				conjunction := unionAttributes(
					rc.Attributes(period, present[i]),
					rc.Attributes(period, present[j]),
				)
				if len(conjunction) == 0 {
					continue
				}
				key := table.JoinPattern(conjunction)
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}

				if rc.Count(period, conjunction) < minPatternCount {
					continue
				}
				rows = append(rows, Candidate{Period: period, Conjunction: conjunction})
			}
		}
	}
	return rows, allPairs, closePairs
}

func unionAttributes(a, b []string) []string {
	set := make(map[string]struct{}, len(a)+len(b))
	for _, att := range a {
		set[att] = struct{}{}
	}
	for _, att := range b {
		set[att] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for att := range set {
		out = append(out, att)
	}
	sort.Strings(out)
	return out
}
