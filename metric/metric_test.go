package metric

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	m := NewMetrics()
	reg := prometheus.NewRegistry()
	require.NoError(t, m.Register(reg))

	// Registering the same collectors twice must fail
	assert.Error(t, m.Register(reg))
}

func TestCounters(t *testing.T) {
	m := NewMetrics()
	reg := prometheus.NewRegistry()
	require.NoError(t, m.Register(reg))

	m.PairsExamined.Add(45)
	m.ClosePairs.Add(21)
	m.PatternsDetected.WithLabelValues("2023").Add(2)
	m.RecordsIndexed.Set(14)

	assert.Equal(t, 45.0, testutil.ToFloat64(m.PairsExamined))
	assert.Equal(t, 21.0, testutil.ToFloat64(m.ClosePairs))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.PatternsDetected.WithLabelValues("2023")))
	assert.Equal(t, 14.0, testutil.ToFloat64(m.RecordsIndexed))
}
