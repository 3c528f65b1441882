package counter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/pattrix/table"
)

func buildCounter(t *testing.T) *RecordCounter {
	t.Helper()
	tbl, err := table.New([]table.Record{
		{SubjectID: "s1", Period: "2023", AttributeType: "color", AttributeValue: "red"},
		{SubjectID: "s1", Period: "2023", AttributeType: "shape", AttributeValue: "round"},
		{SubjectID: "s2", Period: "2023", AttributeType: "color", AttributeValue: "red"},
		{SubjectID: "s2", Period: "2023", AttributeType: "shape", AttributeValue: "round"},
		{SubjectID: "s3", Period: "2023", AttributeType: "color", AttributeValue: "blue"},
		{SubjectID: "s4", Period: "2023", AttributeType: "color", AttributeValue: "red"},
		{SubjectID: "s1", Period: "2024", AttributeType: "color", AttributeValue: "red"},
	}, "==")
	require.NoError(t, err)
	return New(tbl)
}

func TestCount(t *testing.T) {
	rc := buildCounter(t)

	tests := []struct {
		name        string
		period      string
		conjunction []string
		want        int
	}{
		{"single attribute", "2023", []string{"color==red"}, 3},
		{"conjunction", "2023", []string{"color==red", "shape==round"}, 2},
		{"absent attribute", "2023", []string{"color==green"}, 0},
		{"other period", "2024", []string{"color==red"}, 1},
		{"absent period", "2025", []string{"color==red"}, 0},
		{"empty conjunction", "2023", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rc.Count(tt.period, tt.conjunction))
		})
	}
}

func TestPopulation(t *testing.T) {
	rc := buildCounter(t)
	assert.Equal(t, 4, rc.Population("2023"))
	assert.Equal(t, 1, rc.Population("2024"))
	assert.Equal(t, 0, rc.Population("2025"))
}

func TestAttributes(t *testing.T) {
	rc := buildCounter(t)
	assert.Equal(t, []string{"color==red", "shape==round"}, rc.Attributes("2023", "s1"))
	assert.Nil(t, rc.Attributes("2023", "missing"))
}

func TestBaseline(t *testing.T) {
	rc := buildCounter(t)

	// N=4, red marginal 3/4, round marginal 2/4 -> p = 0.375
	mean, std := rc.Baseline("2023", []string{"color==red", "shape==round"})
	assert.InDelta(t, 1.5, mean, 1e-12)
	assert.InDelta(t, math.Sqrt(4*0.375*0.625), std, 1e-12)

	// Saturated marginal degenerates to zero spread
	mean, std = rc.Baseline("2024", []string{"color==red"})
	assert.InDelta(t, 1.0, mean, 1e-12)
	assert.Equal(t, 0.0, std)

	mean, std = rc.Baseline("2025", []string{"color==red"})
	assert.Zero(t, mean)
	assert.Zero(t, std)
}

func TestTimeSeriesIncludesZeroPeriods(t *testing.T) {
	rc := buildCounter(t)

	rows := rc.TimeSeriesRows([]string{"shape==round"})
	require.Equal(t, []SeriesRow{
		{Period: "2023", Pattern: "shape==round", Count: 2},
		{Period: "2024", Pattern: "shape==round", Count: 0},
	}, rows)
}

func TestTimeSeriesRestartable(t *testing.T) {
	rc := buildCounter(t)
	seq := rc.TimeSeries([]string{"color==red"})

	first := 0
	for range seq {
		first++
	}
	second := 0
	for range seq {
		second++
	}
	assert.Equal(t, first, second)
	assert.Equal(t, 2, first)
}
