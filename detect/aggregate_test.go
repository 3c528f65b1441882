package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/pattrix/counter"
	"github.com/teranos/pattrix/layout"
	"github.com/teranos/pattrix/table"
)

func aggregateFixture(t *testing.T) *counter.RecordCounter {
	t.Helper()
	var records []table.Record
	// Four subjects with the correlated red+square pair, six with other colors
	for _, s := range []string{"s1", "s2", "s3", "s4"} {
		records = append(records,
			table.Record{SubjectID: s, Period: "2023", AttributeType: "color", AttributeValue: "red"},
			table.Record{SubjectID: s, Period: "2023", AttributeType: "shape", AttributeValue: "square"},
		)
	}
	for _, s := range []string{"s5", "s6", "s7", "s8", "s9", "s10"} {
		records = append(records,
			table.Record{SubjectID: s, Period: "2023", AttributeType: "color", AttributeValue: "blue"},
		)
	}
	tbl, err := table.New(records, "==")
	require.NoError(t, err)
	return counter.New(tbl)
}

func TestAggregatePatterns(t *testing.T) {
	rc := aggregateFixture(t)
	candidates := []Candidate{
		{Period: "2023", Conjunction: []string{"color==red", "shape==square"}},
		{Period: "2023", Conjunction: []string{"color==blue"}},
	}

	byPeriod := AggregatePatterns([]string{"2023"}, candidates, 100, 3, rc)
	detections := byPeriod["2023"]
	require.Len(t, detections, 2)

	// Ordered by pattern string
	blue := detections[0]
	assert.Equal(t, "color==blue", blue.Pattern)
	assert.Equal(t, 1, blue.Length)
	assert.Equal(t, 6, blue.Count)
	// Marginal == joint for a singleton: observed equals expected
	assert.InDelta(t, 6.0, blue.Mean, 1e-12)
	assert.InDelta(t, 0.0, blue.ZScore, 1e-12)

	red := detections[1]
	assert.Equal(t, "color==red & shape==square", red.Pattern)
	assert.Equal(t, 2, red.Length)
	assert.Equal(t, 4, red.Count)
	// p = 0.4*0.4 = 0.16, mean = 1.6: strongly over-represented
	assert.InDelta(t, 1.6, red.Mean, 1e-12)
	assert.Greater(t, red.ZScore, 1.0)
}

func TestAggregatePatternsMinCount(t *testing.T) {
	rc := aggregateFixture(t)
	candidates := []Candidate{
		{Period: "2023", Conjunction: []string{"color==red", "shape==square"}},
	}

	byPeriod := AggregatePatterns([]string{"2023"}, candidates, 100, 5, rc)
	assert.Empty(t, byPeriod["2023"], "count 4 pattern must not survive min count 5")
}

func TestAggregatePatternsTruncation(t *testing.T) {
	rc := aggregateFixture(t)
	candidates := []Candidate{
		{Period: "2023", Conjunction: []string{"color==red", "shape==square"}},
	}

	byPeriod := AggregatePatterns([]string{"2023"}, candidates, 1, 3, rc)
	detections := byPeriod["2023"]
	require.Len(t, detections, 1)
	assert.Equal(t, "color==red", detections[0].Pattern)
	assert.Equal(t, 1, detections[0].Length)
	assert.Equal(t, 4, detections[0].Count)
}

func TestAggregatePatternsDedupesAfterTruncation(t *testing.T) {
	rc := aggregateFixture(t)
	candidates := []Candidate{
		{Period: "2023", Conjunction: []string{"color==red", "shape==square"}},
		{Period: "2023", Conjunction: []string{"color==red"}},
	}

	byPeriod := AggregatePatterns([]string{"2023"}, candidates, 1, 3, rc)
	require.Len(t, byPeriod["2023"], 1)
}

// Every subject carries the same attribute pair: the only candidate is the
// maximal conjunction, its count is the whole population, and the saturated
// baseline (p = 1, std = 0) pins the z-score at zero.
func TestAggregatePatternsUniformPopulation(t *testing.T) {
	subjects := []string{"s1", "s2", "s3", "s4", "s5"}
	var records []table.Record
	for _, s := range subjects {
		records = append(records,
			table.Record{SubjectID: s, Period: "2023", AttributeType: "color", AttributeValue: "red"},
			table.Record{SubjectID: s, Period: "2023", AttributeType: "shape", AttributeValue: "square"},
		)
	}
	tbl, err := table.New(records, "==")
	require.NoError(t, err)
	rc := counter.New(tbl)

	positions := map[string]map[string]layout.Position{"2023": {}}
	for i, s := range subjects {
		positions["2023"][s] = layout.Position{X: float64(i) * 0.01, Y: 0}
	}

	candidates, allPairs, closePairs := CloseNodes(
		[]string{"2023"}, positions, subjects, 2, rc, WithinRadius(1))
	assert.Equal(t, 10, allPairs)
	assert.Equal(t, 10, closePairs)
	require.Len(t, candidates, 1, "identical subjects must collapse to one candidate")

	byPeriod := AggregatePatterns([]string{"2023"}, candidates, 100, 2, rc)
	detections := byPeriod["2023"]
	require.Len(t, detections, 1)

	d := detections[0]
	assert.Equal(t, "color==red & shape==square", d.Pattern)
	assert.Equal(t, 2, d.Length)
	assert.Equal(t, 5, d.Count)
	assert.InDelta(t, 5.0, d.Mean, 1e-12)
	assert.InDelta(t, 0.0, d.ZScore, 1e-12)
}

func TestFlattenOrdersPeriods(t *testing.T) {
	byPeriod := map[string][]Detection{
		"2024": {{Period: "2024", Pattern: "b"}},
		"2023": {{Period: "2023", Pattern: "a"}},
	}

	rows := Flatten([]string{"2023", "2024"}, byPeriod)
	require.Len(t, rows, 2)
	assert.Equal(t, "2023", rows[0].Period)
	assert.Equal(t, "2024", rows[1].Period)
}
