package gochart

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Kind identifies one of the supported chart encodings.
type Kind string

// Chart kind constants.
const (
	KindLine       Kind = "line"
	KindBar        Kind = "bar"
	KindStackedBar Kind = "stacked-bar"
	KindArea       Kind = "area"
	KindPie        Kind = "pie"
	KindScatter    Kind = "scatter"
	KindCombo      Kind = "combo"
	KindTable      Kind = "table"
	KindHeatmap    Kind = "heatmap"
	KindWaterfall  Kind = "waterfall"
	KindFunnel     Kind = "funnel"
)

// Kinds lists every built-in kind in declaration order.
var Kinds = []Kind{
	KindLine, KindBar, KindStackedBar, KindArea, KindPie, KindScatter,
	KindCombo, KindTable, KindHeatmap, KindWaterfall, KindFunnel,
}

// IsCartesian reports whether the kind plots series against category labels.
func (k Kind) IsCartesian() bool {
	switch k {
	case KindLine, KindBar, KindStackedBar, KindArea, KindCombo, KindWaterfall, KindFunnel:
		return true
	}
	return false
}

// Value is a nullable number. A null value renders as a gap, never as zero.
type Value struct {
	Float float64
	Valid bool
}

// V returns a valid Value.
func V(f float64) Value { return Value{Float: f, Valid: true} }

// Null returns an invalid (null) Value.
func Null() Value { return Value{} }

// Values converts plain numbers into valid Values.
func Values(fs ...float64) []Value {
	out := make([]Value, len(fs))
	for i, f := range fs {
		out[i] = V(f)
	}
	return out
}

// Or returns the number, or def when the value is null.
func (v Value) Or(def float64) float64 {
	if !v.Valid {
		return def
	}
	return v.Float
}

func (v Value) String() string {
	if !v.Valid {
		return "null"
	}
	return strconv.FormatFloat(v.Float, 'g', -1, 64)
}

// MarshalJSON encodes null values as JSON null.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Valid || math.IsNaN(v.Float) || math.IsInf(v.Float, 0) {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(v.Float, 'g', -1, 64)), nil
}

// UnmarshalJSON decodes a JSON number or null.
func (v *Value) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*v = Value{}
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("value: %w", err)
	}
	*v = V(f)
	return nil
}

// ScatterPoint is one point of a scatter series. Z optionally sizes the marker.
type ScatterPoint struct {
	X float64  `json:"x"`
	Y float64  `json:"y"`
	Z *float64 `json:"z,omitempty"`
}

// ChartSeries is one named sequence of values plotted under a single legend entry.
// Scalar kinds use Data; scatter uses Points.
type ChartSeries struct {
	ID     string         `json:"id"`
	Data   []Value        `json:"-"`
	Points []ScatterPoint `json:"-"`
	Color  string         `json:"color,omitempty"`
}

// NewSeries creates a series from plain numbers.
func NewSeries(id string, data ...float64) ChartSeries {
	return ChartSeries{ID: id, Data: Values(data...)}
}

// SetColor sets the explicit series color.
func (s ChartSeries) SetColor(c string) ChartSeries {
	s.Color = c
	return s
}

type seriesJSON struct {
	ID    string            `json:"id"`
	Data  []json.RawMessage `json:"data"`
	Color string            `json:"color,omitempty"`
}

// MarshalJSON writes Data or Points under the single "data" key.
func (s ChartSeries) MarshalJSON() ([]byte, error) {
	out := struct {
		ID    string `json:"id"`
		Data  any    `json:"data"`
		Color string `json:"color,omitempty"`
	}{ID: s.ID, Color: s.Color}
	if len(s.Points) > 0 {
		out.Data = s.Points
	} else {
		data := s.Data
		if data == nil {
			data = []Value{}
		}
		out.Data = data
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts data as numbers/nulls or as {x,y,z} objects.
func (s *ChartSeries) UnmarshalJSON(data []byte) error {
	var raw seriesJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.ID = raw.ID
	s.Color = raw.Color
	s.Data = nil
	s.Points = nil
	for i, elem := range raw.Data {
		elem = bytes.TrimSpace(elem)
		if len(elem) > 0 && elem[0] == '{' {
			var p ScatterPoint
			if err := json.Unmarshal(elem, &p); err != nil {
				return fmt.Errorf("series %q point %d: %w", raw.ID, i, err)
			}
			s.Points = append(s.Points, p)
			continue
		}
		var v Value
		if err := v.UnmarshalJSON(elem); err != nil {
			return fmt.Errorf("series %q value %d: %w", raw.ID, i, err)
		}
		s.Data = append(s.Data, v)
	}
	if len(s.Points) > 0 && len(s.Data) > 0 {
		return fmt.Errorf("series %q mixes points and scalar values", raw.ID)
	}
	return nil
}

// TableData is the header/row payload of a table chart.
type TableData struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// HeatCell is one x/y/value triple of a heat grid.
type HeatCell struct {
	X     string  `json:"x"`
	Y     string  `json:"y"`
	Value float64 `json:"value"`
}

// HeatmapData is the cell payload of a heatmap chart.
type HeatmapData struct {
	Cells []HeatCell `json:"cells"`
}

// UnmarshalJSON accepts either {"cells": [...]} or a bare cell array.
func (h *HeatmapData) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		return json.Unmarshal(data, &h.Cells)
	}
	type plain HeatmapData
	return json.Unmarshal(data, (*plain)(h))
}

// LegendPosition represents the legend position.
type LegendPosition string

const (
	LegendBottom LegendPosition = "bottom"
	LegendTop    LegendPosition = "top"
	LegendLeft   LegendPosition = "left"
	LegendRight  LegendPosition = "right"
)

// LegendSize selects one of the legend size presets.
type LegendSize string

const (
	LegendSmall  LegendSize = "small"
	LegendMedium LegendSize = "medium"
	LegendLarge  LegendSize = "large"
)

// Options holds the presentation flags of a chart.
type Options struct {
	ShowLegend     bool           `json:"showLegend"`
	LegendPosition LegendPosition `json:"legendPosition"`
	LegendSize     LegendSize     `json:"legendSize"`
	ShowGrid       bool           `json:"showGrid"`
	Curved         bool           `json:"curved"`
	Stacked        bool           `json:"stacked"`
	Animate        bool           `json:"animate"`
	ShowDots       bool           `json:"showDots"`
	ShowComparison bool           `json:"showComparison"`
	ComparisonText string         `json:"comparisonText,omitempty"`
}

// DefaultOptions returns the options applied when a spec leaves them out.
func DefaultOptions() Options {
	return Options{
		ShowLegend:     true,
		LegendPosition: LegendBottom,
		LegendSize:     LegendMedium,
		ShowGrid:       true,
		Animate:        true,
	}
}

// ChartSpec is the declarative input of the engine.
type ChartSpec struct {
	Kind    Kind          `json:"kind"`
	Title   string        `json:"title,omitempty"`
	Labels  []string      `json:"labels,omitempty"`
	Series  []ChartSeries `json:"series"`
	Table   *TableData    `json:"table,omitempty"`
	Heatmap *HeatmapData  `json:"heatmap,omitempty"`
	Options Options       `json:"options"`
}

// NewChartSpec creates a spec with default options.
func NewChartSpec(kind Kind, labels []string, series ...ChartSeries) *ChartSpec {
	return &ChartSpec{
		Kind:    kind,
		Labels:  labels,
		Series:  series,
		Options: DefaultOptions(),
	}
}

// UnmarshalJSON fills options missing from the document with DefaultOptions.
func (s *ChartSpec) UnmarshalJSON(data []byte) error {
	type plain ChartSpec
	p := plain{Options: DefaultOptions()}
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*s = ChartSpec(p)
	return nil
}

// ParseSpec decodes a JSON chart spec.
func ParseSpec(data []byte) (*ChartSpec, error) {
	var spec ChartSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse chart spec: %w", err)
	}
	return &spec, nil
}

// FirstSeries returns the first series, or nil when there is none.
func (s *ChartSpec) FirstSeries() *ChartSeries {
	if len(s.Series) == 0 {
		return nil
	}
	return &s.Series[0]
}

// SeriesByID returns the series with the given id, or nil.
func (s *ChartSpec) SeriesByID(id string) *ChartSeries {
	for i := range s.Series {
		if s.Series[i].ID == id {
			return &s.Series[i]
		}
	}
	return nil
}
