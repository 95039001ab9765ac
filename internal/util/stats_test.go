package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeFloatStats(t *testing.T) {
	stats := ComputeFloatStats([]float64{80, 100, 60})

	assert.Equal(t, 3, stats.Count)
	assert.Equal(t, 80.0, stats.Mean)
	assert.Equal(t, 60.0, stats.Min)
	assert.Equal(t, 100.0, stats.Max)
}

func TestComputeFloatStats_Empty(t *testing.T) {
	stats := ComputeFloatStats(nil)
	assert.Equal(t, 0, stats.Count)
}

func TestComputeFloatStats_SingleValue(t *testing.T) {
	stats := ComputeFloatStats([]float64{42})

	assert.Equal(t, 1, stats.Count)
	assert.Equal(t, 42.0, stats.Mean)
	assert.Equal(t, 42.0, stats.Min)
	assert.Equal(t, 42.0, stats.Max)
}
