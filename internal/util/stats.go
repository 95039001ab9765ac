package util

// FloatStats is a reduction over a slice of float64 values.
type FloatStats struct {
	Count int
	Mean  float64
	Min   float64
	Max   float64
}

// ComputeFloatStats returns count, mean, min and max of values. For an empty
// slice only Count is meaningful; callers must gate on Count before reading
// the statistic fields.
func ComputeFloatStats(values []float64) FloatStats {
	stats := FloatStats{Count: len(values)}
	if len(values) == 0 {
		return stats
	}

	stats.Min = values[0]
	stats.Max = values[0]
	var sum float64
	for _, v := range values {
		sum += v
		if v < stats.Min {
			stats.Min = v
		}
		if v > stats.Max {
			stats.Max = v
		}
	}
	stats.Mean = sum / float64(len(values))
	return stats
}
