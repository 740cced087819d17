package gochart

import "fmt"

// ResolvedRow holds the values of every series at one label (or one pie slice).
type ResolvedRow struct {
	Name   string           `json:"name"`
	Values map[string]Value `json:"values"`
}

// Get returns the value of a series in this row; missing series read as null.
func (r ResolvedRow) Get(id string) Value {
	return r.Values[id]
}

// Normalize converts labels and series into row-oriented data.
//
// Cartesian kinds get one row per label. Pie gets one row per series built
// from data[0]. Table, heatmap and scatter consume their own payloads and
// yield nil rows. When lenient is false a length mismatch is an error;
// otherwise missing reads become null and extra values are ignored.
func Normalize(spec *ChartSpec, lenient bool) ([]ResolvedRow, error) {
	switch spec.Kind {
	case KindTable, KindHeatmap, KindScatter:
		return nil, nil
	case KindPie:
		return normalizePie(spec), nil
	}

	if !lenient {
		for _, s := range spec.Series {
			if len(s.Data) != len(spec.Labels) {
				return nil, NewSpecError(spec.Kind, s.ID,
					fmt.Errorf("%w: %d values for %d labels", ErrShapeMismatch, len(s.Data), len(spec.Labels)))
			}
		}
	}

	rows := make([]ResolvedRow, len(spec.Labels))
	for i, label := range spec.Labels {
		row := ResolvedRow{Name: label, Values: make(map[string]Value, len(spec.Series))}
		for _, s := range spec.Series {
			if i < len(s.Data) {
				row.Values[s.ID] = s.Data[i]
			} else {
				row.Values[s.ID] = Null()
			}
		}
		rows[i] = row
	}
	return rows, nil
}

func normalizePie(spec *ChartSpec) []ResolvedRow {
	rows := make([]ResolvedRow, 0, len(spec.Series))
	for _, s := range spec.Series {
		v := Null()
		if len(s.Data) > 0 {
			v = s.Data[0]
		}
		rows = append(rows, ResolvedRow{Name: s.ID, Values: map[string]Value{s.ID: v}})
	}
	return rows
}

// column extracts one series' values from normalized rows.
func column(rows []ResolvedRow, id string) []Value {
	out := make([]Value, len(rows))
	for i, r := range rows {
		out[i] = r.Get(id)
	}
	return out
}
