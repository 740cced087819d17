package gochart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	data := Values(100, 150, 120, 180)
	tests := []struct {
		name     string
		hover    *int
		pct      float64
		increase bool
		index    int
		base     int
	}{
		{"last vs previous", nil, 50, true, 3, 2},
		{"hover final compares with previous", intp(3), 50, true, 3, 2},
		{"hover compares with final", intp(0), (100.0 - 180.0) / 180.0 * 100, false, 0, 3},
		{"hover second", intp(1), (150.0 - 180.0) / 180.0 * 100, false, 1, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := Compare(data, tt.hover)
			require.True(t, ok)
			assert.InDelta(t, tt.pct, c.Percentage, 1e-9)
			assert.Equal(t, tt.increase, c.IsIncrease)
			assert.Equal(t, tt.index, c.Index)
			assert.Equal(t, tt.base, c.BaseIndex)
		})
	}
}

func TestCompareDegenerate(t *testing.T) {
	tests := []struct {
		name  string
		data  []Value
		hover *int
	}{
		{"zero base", Values(0, 10), nil},
		{"null base", []Value{Null(), V(10)}, nil},
		{"null current", []Value{V(10), Null()}, nil},
		{"single point", Values(10), nil},
		{"empty", nil, nil},
		{"hover out of range", Values(1, 2), intp(5)},
		{"negative hover", Values(1, 2), intp(-1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Compare(tt.data, tt.hover)
			assert.False(t, ok)
		})
	}
}

func TestCompareNoChangeIsNotIncrease(t *testing.T) {
	c, ok := Compare(Values(5, 5), nil)
	require.True(t, ok)
	assert.False(t, c.IsIncrease)
	assert.Zero(t, c.Percentage)
}

func TestWaterfallLadder(t *testing.T) {
	data := []Value{V(100), V(-30), Null(), V(50), V(-20)}
	steps := Waterfall(data)
	require.Len(t, steps, len(data))

	sum := 0.0
	for i, st := range steps {
		assert.Equal(t, sum, st.Base, "base of step %d is the sum of prior steps", i)
		sum += data[i].Or(0)
		assert.Equal(t, sum, st.Cumulative)
	}
	assert.Equal(t, 100.0, steps[len(steps)-1].Cumulative)
	assert.True(t, steps[0].Increase)
	assert.False(t, steps[1].Increase)
}

func TestFunnelWidths(t *testing.T) {
	widths := FunnelWidths([]Value{V(50), V(200), V(100), Null(), V(-5)})
	assert.Equal(t, []float64{25, 100, 50, 0, 0}, widths)

	assert.Equal(t, []float64{0, 0}, FunnelWidths(Values(0, -1)))
}

func TestHeatIntensity(t *testing.T) {
	tests := []struct {
		value, peak float64
		want        Intensity
	}{
		{10, 10, Intensity{Normalized: 1, Opacity: 1, LightLabel: true}},
		{5, 10, Intensity{Normalized: 0.5, Opacity: 0.5, LightLabel: false}},
		{6, 10, Intensity{Normalized: 0.6, Opacity: 0.6, LightLabel: true}},
		{0, 10, Intensity{Normalized: 0, Opacity: 0.1}},
		{3, 0, Intensity{Normalized: 0, Opacity: 0.1}},
	}
	for _, tt := range tests {
		got := HeatIntensity(tt.value, tt.peak)
		assert.InDelta(t, tt.want.Normalized, got.Normalized, 1e-9)
		assert.InDelta(t, tt.want.Opacity, got.Opacity, 1e-9)
		assert.Equal(t, tt.want.LightLabel, got.LightLabel, "value %v", tt.value)
	}
}

func TestTrendPerformance(t *testing.T) {
	pct, ok := TrendPerformance([]Value{Null(), V(100), V(90), V(150), Null()})
	require.True(t, ok)
	assert.InDelta(t, 50, pct, 1e-9)

	_, ok = TrendPerformance([]Value{V(0), V(10)})
	assert.False(t, ok)
	_, ok = TrendPerformance([]Value{V(10), Null()})
	assert.False(t, ok)
}

func TestTargetPerformance(t *testing.T) {
	pct, ok := TargetPerformance(Values(60, 60), Values(50, 50))
	require.True(t, ok)
	assert.InDelta(t, 20, pct, 1e-9)

	_, ok = TargetPerformance(Values(1), []Value{Null()})
	assert.False(t, ok)
}
