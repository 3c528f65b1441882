package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/pattrix/detect"
)

func rankFixture() []detect.Detection {
	return []detect.Detection{
		{Period: "2023", Pattern: "color==red & shape==square", Length: 2, Count: 4, Mean: 1.6, ZScore: 2.0},
		{Period: "2023", Pattern: "color==blue", Length: 1, Count: 6, Mean: 6.0, ZScore: 0.0},
		{Period: "2024", Pattern: "color==red & shape==square", Length: 2, Count: 5, Mean: 1.5, ZScore: 2.5},
	}
}

func TestRankEmpty(t *testing.T) {
	result := Rank(nil, 0, 0)

	assert.Empty(t, result.Patterns)
	assert.Zero(t, result.ClosePairs)
	assert.Zero(t, result.AllPairs)
}

func TestRankCarriesTallies(t *testing.T) {
	result := Rank(rankFixture(), 7, 42)
	assert.Equal(t, 7, result.ClosePairs)
	assert.Equal(t, 42, result.AllPairs)
}

func TestRankDetectionsAndNormalization(t *testing.T) {
	result := Rank(rankFixture(), 0, 0)
	require.Len(t, result.Patterns, 3)

	// Every row of a pattern carries its cross-period detection count
	for _, row := range result.Patterns {
		periods := 0
		for _, other := range result.Patterns {
			if other.Pattern == row.Pattern {
				periods++
			}
		}
		assert.Equal(t, periods, row.Detections, "pattern %s", row.Pattern)
	}

	// Descending scores, maximum exactly 1.00, all within [0, 1]
	top := result.Patterns[0]
	assert.Equal(t, 1.00, top.OverallScore)
	assert.Equal(t, "2024", top.Period)
	for i, row := range result.Patterns {
		assert.GreaterOrEqual(t, row.OverallScore, 0.0)
		assert.LessOrEqual(t, row.OverallScore, 1.0)
		if i > 0 {
			assert.LessOrEqual(t, row.OverallScore, result.Patterns[i-1].OverallScore)
		}
	}

	// The zero-z singleton ranks last with score 0
	assert.Equal(t, "color==blue", result.Patterns[2].Pattern)
	assert.Equal(t, 0.00, result.Patterns[2].OverallScore)
}

func TestRankDegenerateMaximum(t *testing.T) {
	rows := []detect.Detection{
		{Period: "2023", Pattern: "color==blue", Length: 1, Count: 6, Mean: 6.0, ZScore: 0.0},
	}

	result := Rank(rows, 1, 2)
	assert.Empty(t, result.Patterns, "all-zero scores must resolve to an empty table")
	assert.Equal(t, 1, result.ClosePairs)
	assert.Equal(t, 2, result.AllPairs)
}

// A conjunction counting below its null-baseline mean carries a negative z;
// its score must clamp to zero instead of leaking a negative into the table.
func TestRankClampsBelowBaselinePatterns(t *testing.T) {
	rows := []detect.Detection{
		{Period: "2023", Pattern: "a==1 & b==1", Length: 2, Count: 8, Mean: 8.1, ZScore: -0.081},
		{Period: "2023", Pattern: "c==1 & d==1", Length: 2, Count: 4, Mean: 1.6, ZScore: 2.0},
	}

	result := Rank(rows, 0, 0)
	require.Len(t, result.Patterns, 2)
	for _, row := range result.Patterns {
		assert.GreaterOrEqual(t, row.OverallScore, 0.0, "pattern %s", row.Pattern)
		assert.LessOrEqual(t, row.OverallScore, 1.0, "pattern %s", row.Pattern)
	}
	assert.Equal(t, "c==1 & d==1", result.Patterns[0].Pattern)
	assert.Equal(t, 1.00, result.Patterns[0].OverallScore)
	assert.Equal(t, "a==1 & b==1", result.Patterns[1].Pattern)
	assert.Equal(t, 0.00, result.Patterns[1].OverallScore)
	assert.Equal(t, -0.081, result.Patterns[1].ZScore)
}

func TestRankStableOnTies(t *testing.T) {
	rows := []detect.Detection{
		{Period: "2023", Pattern: "a==1", Length: 1, Count: 3, Mean: 1, ZScore: 1.0},
		{Period: "2023", Pattern: "b==1", Length: 1, Count: 3, Mean: 1, ZScore: 1.0},
	}

	result := Rank(rows, 0, 0)
	require.Len(t, result.Patterns, 2)
	assert.Equal(t, "a==1", result.Patterns[0].Pattern)
	assert.Equal(t, "b==1", result.Patterns[1].Pattern)
}

func TestTopPatterns(t *testing.T) {
	result := Rank(rankFixture(), 0, 0)

	top := result.TopPatterns(1)
	assert.Equal(t, []string{"color==red & shape==square"}, top)

	all := result.TopPatterns(10)
	assert.Equal(t, []string{"color==red & shape==square", "color==blue"}, all)
}
