package gochart

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAcceptsEveryKind(t *testing.T) {
	z := 3.0
	specs := []*ChartSpec{
		NewChartSpec(KindLine, []string{"a", "b"}, NewSeries("A", 1, 2)),
		NewChartSpec(KindStackedBar, []string{"a"}, NewSeries("A", 1), NewSeries("B", 2)),
		NewChartSpec(KindPie, nil, NewSeries("A", 1), NewSeries("B", 2)),
		NewChartSpec(KindScatter, nil, ChartSeries{ID: "S", Points: []ScatterPoint{{X: 1, Y: 2, Z: &z}}}),
		{Kind: KindTable, Table: &TableData{Headers: []string{"h"}}},
		{Kind: KindHeatmap, Heatmap: &HeatmapData{Cells: []HeatCell{{X: "a", Y: "b", Value: 1}}}},
	}
	for _, spec := range specs {
		assert.NoError(t, Validate(spec), spec.Kind)
	}
}

func TestValidateCollectsAllProblems(t *testing.T) {
	spec := NewChartSpec(KindBar, []string{"a", "b"},
		NewSeries("A", 1, 2),
		NewSeries("A", 1, 2),
		NewSeries("", 1),
		NewSeries("C", 1, 2).SetColor("teal"),
	)
	spec.Options.LegendPosition = "middle"
	spec.Options.LegendSize = "huge"

	err := Validate(spec)
	require.Error(t, err)
	msg := err.Error()
	assert.True(t, strings.HasPrefix(msg, "validation failed:\n"))
	for _, want := range []string{
		`series 2: duplicate id "A"`,
		"series 3: id is empty",
		"series 3: 1 values for 2 labels",
		`series 4: color "teal" is not a hex color`,
		`legend position "middle" is invalid`,
		`legend size "huge" is invalid`,
	} {
		assert.Contains(t, msg, want)
	}
}

func TestValidateKinds(t *testing.T) {
	assert.ErrorContains(t, Validate(&ChartSpec{}), "kind is empty")
	assert.ErrorContains(t, Validate(NewChartSpec("pizza", []string{"a"}, NewSeries("A", 1))), `unsupported kind "pizza"`)
	assert.ErrorContains(t, Validate(nil), "spec is nil")
	assert.ErrorContains(t, Validate(NewChartSpec(KindPie, nil, ChartSeries{ID: "A"})), "pie slice has no value")
	assert.ErrorContains(t, Validate(NewChartSpec(KindScatter, nil, NewSeries("A", 1))), "needs {x,y} points")
}

func TestCheckRenderable(t *testing.T) {
	err := checkRenderable(&ChartSpec{Kind: KindTable, Table: &TableData{}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingData))
	var specErr *SpecError
	require.True(t, errors.As(err, &specErr))
	assert.Equal(t, KindTable, specErr.Kind)

	assert.ErrorIs(t, checkRenderable(NewChartSpec(KindBar, nil, NewSeries("A"))), ErrMissingData)
	assert.NoError(t, checkRenderable(NewChartSpec(KindBar, []string{"a"}, NewSeries("A", 1))))
}

func TestSpecErrorMessage(t *testing.T) {
	err := NewSpecError(KindLine, "Revenue", ErrShapeMismatch)
	assert.Equal(t, `chart "line" series "Revenue": series length does not match labels`, err.Error())
	assert.Equal(t, `chart "pie": missing chart data`, NewSpecError(KindPie, "", ErrMissingData).Error())
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestCheckRenderableDuplicateIDs(t *testing.T) {
	specs := []*ChartSpec{
		NewChartSpec(KindBar, []string{"a"}, NewSeries("X", 1), NewSeries("X", 99)),
		NewChartSpec(KindPie, nil, NewSeries("X", 1), NewSeries("Y", 2), NewSeries("X", 3)),
		NewChartSpec(KindScatter, nil,
			ChartSeries{ID: "S", Points: []ScatterPoint{{X: 1, Y: 1}}},
			ChartSeries{ID: "S", Points: []ScatterPoint{{X: 2, Y: 2}}}),
	}
	for _, spec := range specs {
		t.Run(string(spec.Kind), func(t *testing.T) {
			err := checkRenderable(spec)
			require.ErrorIs(t, err, ErrDuplicateSeries)
			var specErr *SpecError
			require.True(t, errors.As(err, &specErr))
			assert.NotEmpty(t, specErr.Series)

			tree := New().Render(spec, nil)
			require.True(t, tree.IsPlaceholder())
			assert.Equal(t, ReasonInvalid, tree.Placeholder.Reason)
			assert.Contains(t, tree.Placeholder.Message, "duplicate series id")
		})
	}

	// Validate reports the duplicate once, per series.
	msg := Validate(specs[0]).Error()
	assert.Equal(t, 1, strings.Count(msg, "duplicate"))
}
