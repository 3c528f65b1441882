// Package table models the standardized dynamic table: one row per
// (subject, period, attribute) observation. The table is the single input to
// a pattern-detection run; every other component derives its view from it.
package table

import (
	"sort"
	"strings"

	"github.com/teranos/pattrix/errors"
)

// ConjunctionSep joins full attributes into a pattern string.
const ConjunctionSep = " & "

// GroupingKeySep joins a subject id and a period into a grouping key.
const GroupingKeySep = "@"

// Record is one dynamic-table row: a single attribute observed on a subject
// within a period. FullAttribute is the canonical type+value form and is
// unique within (subject, period).
type Record struct {
	SubjectID      string
	Period         string
	AttributeType  string
	AttributeValue string
	FullAttribute  string
}

// Table is a validated, ordered collection of dynamic records.
type Table struct {
	sep     string
	records []Record
}

// New builds a Table from raw records. Rows with an empty attribute value are
// dropped (the standardized input pre-filters them, but defense here keeps
// downstream counts honest). Rows missing subject, period, or attribute type
// fail with a data-shape error. Duplicate (subject, period, full attribute)
// rows collapse to one.
func New(records []Record, typeValSep string) (*Table, error) {
	if typeValSep == "" {
		return nil, errors.NewConfigurationError("type/value separator cannot be empty")
	}

	seen := make(map[string]struct{}, len(records))
	kept := make([]Record, 0, len(records))
	for i, r := range records {
		if r.AttributeValue == "" {
			continue
		}
		if r.SubjectID == "" || r.Period == "" || r.AttributeType == "" {
			return nil, errors.NewDataShapeError(
				"row %d missing required column (subject=%q period=%q type=%q)",
				i, r.SubjectID, r.Period, r.AttributeType)
		}
		if r.FullAttribute == "" {
			r.FullAttribute = r.AttributeType + typeValSep + r.AttributeValue
		}
		key := r.SubjectID + GroupingKeySep + r.Period + "\x00" + r.FullAttribute
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, r)
	}

	return &Table{sep: typeValSep, records: kept}, nil
}

// Records returns the underlying rows.
func (t *Table) Records() []Record { return t.records }

// Separator returns the type/value separator the table was built with.
func (t *Table) Separator() string { return t.sep }

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.records) }

// IsEmpty reports whether the table has no rows.
func (t *Table) IsEmpty() bool { return len(t.records) == 0 }

// Periods returns the sorted distinct periods.
func (t *Table) Periods() []string {
	set := make(map[string]struct{})
	for _, r := range t.records {
		set[r.Period] = struct{}{}
	}
	return sortedKeys(set)
}

// FullAttributes returns the sorted distinct full attributes across all periods.
func (t *Table) FullAttributes() []string {
	set := make(map[string]struct{})
	for _, r := range t.records {
		set[r.FullAttribute] = struct{}{}
	}
	return sortedKeys(set)
}

// Subjects returns the sorted distinct subject ids across all periods.
func (t *Table) Subjects() []string {
	set := make(map[string]struct{})
	for _, r := range t.records {
		set[r.SubjectID] = struct{}{}
	}
	return sortedKeys(set)
}

// GroupingKeys returns, for one period, the grouping key ("subject@period")
// of every subject present mapped to its sorted full-attribute list.
func (t *Table) GroupingKeys(period string) map[string][]string {
	groups := make(map[string][]string)
	for _, r := range t.records {
		if r.Period != period {
			continue
		}
		key := GroupingKey(r.SubjectID, r.Period)
		groups[key] = append(groups[key], r.FullAttribute)
	}
	for _, atts := range groups {
		sort.Strings(atts)
	}
	return groups
}

// GroupingKey builds the composite identifier for one subject's records
// within one period.
func GroupingKey(subjectID, period string) string {
	return subjectID + GroupingKeySep + period
}

// JoinPattern joins conjuncts into the canonical pattern string.
func JoinPattern(conjunction []string) string {
	return strings.Join(conjunction, ConjunctionSep)
}

// SplitPattern splits a pattern string back into its conjuncts.
func SplitPattern(pattern string) []string {
	if pattern == "" {
		return nil
	}
	return strings.Split(pattern, ConjunctionSep)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
