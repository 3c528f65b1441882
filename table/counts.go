package table

import (
	"sort"
	"strings"
)

// AttributeCount pairs one full attribute with its distinct-subject count.
type AttributeCount struct {
	Attribute string
	Count     int
}

// AttributeCounts returns, for the subjects matching every conjunct of
// pattern within one period, how many distinct subjects carry each full
// attribute. Rows are sorted by count descending, attribute ascending on
// ties. Conjuncts without the type/value separator are ignored, matching the
// tolerant behavior of the standardized input contract.
func (t *Table) AttributeCounts(pattern, period string) []AttributeCount {
	conjuncts := make([]string, 0)
	for _, att := range SplitPattern(pattern) {
		if strings.Contains(att, t.sep) {
			conjuncts = append(conjuncts, att)
		}
	}

	// Subjects in the period that satisfy the whole conjunction.
	subjectAtts := make(map[string]map[string]struct{})
	for _, r := range t.records {
		if r.Period != period {
			continue
		}
		atts, ok := subjectAtts[r.SubjectID]
		if !ok {
			atts = make(map[string]struct{})
			subjectAtts[r.SubjectID] = atts
		}
		atts[r.FullAttribute] = struct{}{}
	}

	counts := make(map[string]int)
	for _, atts := range subjectAtts {
		if !containsAll(atts, conjuncts) {
			continue
		}
		for att := range atts {
			counts[att]++
		}
	}

	out := make([]AttributeCount, 0, len(counts))
	for att, n := range counts {
		out = append(out, AttributeCount{Attribute: att, Count: n})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Attribute < out[j].Attribute
	})
	return out
}

func containsAll(set map[string]struct{}, atts []string) bool {
	for _, att := range atts {
		if _, ok := set[att]; !ok {
			return false
		}
	}
	return true
}
