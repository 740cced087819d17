package gochart

import "math"

// Comparison is the growth of one point relative to a base point, in percent.
type Comparison struct {
	IsIncrease bool    `json:"isIncrease"`
	Percentage float64 `json:"percentage"`
	// Index and BaseIndex locate the compared points in the series.
	Index     int `json:"index"`
	BaseIndex int `json:"baseIndex"`
}

// DerivedMetrics are recomputed on every render and never stored.
type DerivedMetrics struct {
	Comparison         *Comparison `json:"comparison,omitempty"`
	ComparisonText     string      `json:"comparisonText,omitempty"`
	OverallPerformance string      `json:"overallPerformance,omitempty"`
}

// Compare computes the comparison metric for a series.
//
// Without hover it compares the last point against the previous one. With a
// hovered index it compares the hovered point against the previous point when
// the final point is hovered, and against the final point otherwise. A zero or
// null base, a null current value, fewer than two points or an out-of-range
// hover yield no comparison.
func Compare(data []Value, hover *int) (Comparison, bool) {
	n := len(data)
	if n < 2 {
		return Comparison{}, false
	}
	cur, base := n-1, n-2
	if hover != nil {
		h := *hover
		if h < 0 || h >= n {
			return Comparison{}, false
		}
		cur = h
		if h != n-1 {
			base = n - 1
		}
	}
	pct, ok := percentChange(data[base], data[cur])
	if !ok {
		return Comparison{}, false
	}
	return Comparison{IsIncrease: pct > 0, Percentage: pct, Index: cur, BaseIndex: base}, true
}

// percentChange returns (to - from) / from * 100.
func percentChange(from, to Value) (float64, bool) {
	if !from.Valid || !to.Valid || from.Float == 0 {
		return 0, false
	}
	pct := (to.Float - from.Float) / from.Float * 100
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		return 0, false
	}
	return pct, true
}

// WaterfallStep is one bar of a waterfall ladder.
type WaterfallStep struct {
	// Base is the cumulative sum of all prior steps.
	Base  float64 `json:"base"`
	Value float64 `json:"value"`
	// Cumulative is Base + Value.
	Cumulative float64 `json:"cumulative"`
	Increase   bool    `json:"increase"`
}

// Waterfall builds the running-sum ladder. Null steps contribute zero.
func Waterfall(data []Value) []WaterfallStep {
	steps := make([]WaterfallStep, len(data))
	sum := 0.0
	for i, v := range data {
		x := v.Or(0)
		steps[i] = WaterfallStep{Base: sum, Value: x, Cumulative: sum + x, Increase: x >= 0}
		sum += x
	}
	return steps
}

// FunnelWidths returns each stage width as a percentage of the largest stage.
// Order is kept as given. A non-positive maximum yields all zeros.
func FunnelWidths(data []Value) []float64 {
	widths := make([]float64, len(data))
	peak := 0.0
	for _, v := range data {
		if v.Valid && v.Float > peak {
			peak = v.Float
		}
	}
	if peak <= 0 {
		return widths
	}
	for i, v := range data {
		w := v.Or(0) / peak * 100
		if w < 0 {
			w = 0
		}
		widths[i] = w
	}
	return widths
}

// Intensity is the normalized strength of one heat-grid cell.
type Intensity struct {
	Normalized float64 `json:"normalized"`
	Opacity    float64 `json:"opacity"`
	// LightLabel is set when the cell is dark enough to need a light label.
	LightLabel bool `json:"lightLabel"`
}

const (
	minHeatOpacity     = 0.1
	heatLabelThreshold = 0.5
)

// HeatIntensity normalizes value against the grid maximum.
func HeatIntensity(value, peak float64) Intensity {
	n := 0.0
	if peak > 0 {
		n = value / peak
	}
	return Intensity{
		Normalized: n,
		Opacity:    math.Min(1, math.Max(minHeatOpacity, n)),
		LightLabel: n > heatLabelThreshold,
	}
}

// TrendPerformance is ((last - first) / first) * 100 over the non-null ends.
func TrendPerformance(data []Value) (float64, bool) {
	first, last := -1, -1
	for i, v := range data {
		if !v.Valid {
			continue
		}
		if first < 0 {
			first = i
		}
		last = i
	}
	if first < 0 || first == last {
		return 0, false
	}
	return percentChange(data[first], data[last])
}

// TargetPerformance is ((actualTotal - targetTotal) / targetTotal) * 100.
func TargetPerformance(actual, target []Value) (float64, bool) {
	return percentChange(V(sumValues(target)), V(sumValues(actual)))
}

func sumValues(data []Value) float64 {
	sum := 0.0
	for _, v := range data {
		sum += v.Or(0)
	}
	return sum
}
