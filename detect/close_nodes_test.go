package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/pattrix/counter"
	"github.com/teranos/pattrix/layout"
	"github.com/teranos/pattrix/table"
)

func TestWithinRadius(t *testing.T) {
	isClose := WithinRadius(1.0)

	tests := []struct {
		name string
		a, b layout.Position
		want bool
	}{
		{"identical", layout.Position{X: 0, Y: 0}, layout.Position{X: 0, Y: 0}, true},
		{"at radius", layout.Position{X: 0, Y: 0}, layout.Position{X: 1, Y: 0}, true},
		{"beyond radius", layout.Position{X: 0, Y: 0}, layout.Position{X: 1.01, Y: 0}, false},
		{"diagonal inside", layout.Position{X: 0, Y: 0}, layout.Position{X: 0.7, Y: 0.7}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isClose(tt.a, tt.b))
		})
	}
}

func closeNodesFixture(t *testing.T) (*counter.RecordCounter, map[string]map[string]layout.Position, []string) {
	t.Helper()
	var records []table.Record
	// s1..s3 share color==red, s4 is off on its own
	for _, s := range []string{"s1", "s2", "s3"} {
		records = append(records, table.Record{
			SubjectID: s, Period: "2023", AttributeType: "color", AttributeValue: "red",
		})
	}
	records = append(records, table.Record{
		SubjectID: "s4", Period: "2023", AttributeType: "color", AttributeValue: "blue",
	})
	tbl, err := table.New(records, "==")
	require.NoError(t, err)

	positions := map[string]map[string]layout.Position{
		"2023": {
			"s1": {X: 0, Y: 0},
			"s2": {X: 0.01, Y: 0},
			"s3": {X: 0.02, Y: 0},
			"s4": {X: 5, Y: 5},
		},
	}
	return counter.New(tbl), positions, []string{"s1", "s2", "s3", "s4"}
}

func TestCloseNodesTallies(t *testing.T) {
	rc, positions, subjects := closeNodesFixture(t)

	rows, allPairs, closePairs := CloseNodes(
		[]string{"2023"}, positions, subjects, 3, rc, WithinRadius(0.1))

	// C(4,2) pairs examined, only the three red pairs close
	assert.Equal(t, 6, allPairs)
	assert.Equal(t, 3, closePairs)

	// All three close pairs union to the same single-attribute candidate
	require.Len(t, rows, 1)
	assert.Equal(t, "2023", rows[0].Period)
	assert.Equal(t, []string{"color==red"}, rows[0].Conjunction)
}

func TestCloseNodesMinCountFilter(t *testing.T) {
	rc, positions, subjects := closeNodesFixture(t)

	rows, _, closePairs := CloseNodes(
		[]string{"2023"}, positions, subjects, 4, rc, WithinRadius(0.1))

	assert.Equal(t, 3, closePairs)
	assert.Empty(t, rows, "count 3 candidate must not survive min count 4")
}

func TestCloseNodesEmptyPositions(t *testing.T) {
	rc, _, subjects := closeNodesFixture(t)

	rows, allPairs, closePairs := CloseNodes(
		[]string{"2023"}, nil, subjects, 3, rc, WithinRadius(0.1))

	assert.Empty(t, rows)
	assert.Zero(t, allPairs)
	assert.Zero(t, closePairs)
}
