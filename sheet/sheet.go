// Package sheet builds chart specs from spreadsheet ranges.
//
// The first non-empty row holds headers. For category kinds the first column
// holds labels and every further column is one series. Pie reads label/value
// rows as one slice each; heatmap reads x/y/value triples; scatter reads
// x/y and an optional z column; table passes cells through as text.
package sheet

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	gochart "github.com/VantageDataChat/GoChart"
	"github.com/xuri/excelize/v2"
)

// ErrNoData is returned when the sheet has no header row or no data rows.
var ErrNoData = errors.New("sheet has no data")

// Options selects what to import.
type Options struct {
	// Sheet defaults to the active sheet.
	Sheet string
	Kind  gochart.Kind
	Title string
}

// CellError reports a cell that could not be read as a number.
type CellError struct {
	Sheet string
	Cell  string
	Value string
}

func (e *CellError) Error() string {
	return fmt.Sprintf("%s!%s: %q is not a number", e.Sheet, e.Cell, e.Value)
}

// Load opens an xlsx file and builds a spec from one of its sheets.
func Load(path string, opts Options) (*gochart.ChartSpec, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()
	return FromFile(f, opts)
}

// FromFile builds a spec from an open workbook.
func FromFile(f *excelize.File, opts Options) (*gochart.ChartSpec, error) {
	name := opts.Sheet
	if name == "" {
		name = f.GetSheetName(f.GetActiveSheetIndex())
	}
	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", name, err)
	}
	rows = trimEmpty(rows)
	if len(rows) < 2 {
		return nil, fmt.Errorf("%s: %w", name, ErrNoData)
	}
	kind := opts.Kind
	if kind == "" {
		kind = gochart.KindBar
	}

	r := reader{sheet: name, header: rows[0], rows: rows[1:]}
	spec := gochart.NewChartSpec(kind, nil)
	spec.Title = opts.Title
	switch kind {
	case gochart.KindTable:
		spec.Table = r.table()
	case gochart.KindHeatmap:
		spec.Heatmap, err = r.heatmap()
	case gochart.KindScatter:
		spec.Series, err = r.scatter()
	case gochart.KindPie:
		spec.Series, err = r.pie()
	default:
		spec.Labels, spec.Series, err = r.categories()
	}
	if err != nil {
		return nil, err
	}
	return spec, nil
}

type reader struct {
	sheet  string
	header []string
	rows   [][]string
}

// cell returns the text at data row i, column j, or "" past the row end.
func (r *reader) cell(i, j int) string {
	if j < len(r.rows[i]) {
		return strings.TrimSpace(r.rows[i][j])
	}
	return ""
}

// number parses a data cell. Empty cells are null.
func (r *reader) number(i, j int) (gochart.Value, error) {
	s := r.cell(i, j)
	if s == "" {
		return gochart.Null(), nil
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		// header row is row 1, data starts at row 2
		cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
		return gochart.Null(), &CellError{Sheet: r.sheet, Cell: cell, Value: s}
	}
	return gochart.V(f), nil
}

func (r *reader) categories() ([]string, []gochart.ChartSeries, error) {
	if len(r.header) < 2 {
		return nil, nil, fmt.Errorf("%s: need a label column and a value column: %w", r.sheet, ErrNoData)
	}
	labels := make([]string, len(r.rows))
	for i := range r.rows {
		labels[i] = r.cell(i, 0)
	}
	series := make([]gochart.ChartSeries, 0, len(r.header)-1)
	for j := 1; j < len(r.header); j++ {
		s := gochart.ChartSeries{ID: strings.TrimSpace(r.header[j]), Data: make([]gochart.Value, len(r.rows))}
		for i := range r.rows {
			v, err := r.number(i, j)
			if err != nil {
				return nil, nil, err
			}
			s.Data[i] = v
		}
		series = append(series, s)
	}
	return labels, series, nil
}

func (r *reader) pie() ([]gochart.ChartSeries, error) {
	series := make([]gochart.ChartSeries, 0, len(r.rows))
	for i := range r.rows {
		v, err := r.number(i, 1)
		if err != nil {
			return nil, err
		}
		series = append(series, gochart.ChartSeries{ID: r.cell(i, 0), Data: []gochart.Value{v}})
	}
	return series, nil
}

func (r *reader) scatter() ([]gochart.ChartSeries, error) {
	if len(r.header) < 2 {
		return nil, fmt.Errorf("%s: need x and y columns: %w", r.sheet, ErrNoData)
	}
	s := gochart.ChartSeries{ID: strings.TrimSpace(r.header[1])}
	for i := range r.rows {
		x, err := r.number(i, 0)
		if err != nil {
			return nil, err
		}
		y, err := r.number(i, 1)
		if err != nil {
			return nil, err
		}
		if !x.Valid || !y.Valid {
			continue
		}
		p := gochart.ScatterPoint{X: x.Float, Y: y.Float}
		if len(r.header) > 2 {
			z, err := r.number(i, 2)
			if err != nil {
				return nil, err
			}
			if z.Valid {
				p.Z = &z.Float
			}
		}
		s.Points = append(s.Points, p)
	}
	return []gochart.ChartSeries{s}, nil
}

func (r *reader) heatmap() (*gochart.HeatmapData, error) {
	h := &gochart.HeatmapData{}
	for i := range r.rows {
		v, err := r.number(i, 2)
		if err != nil {
			return nil, err
		}
		if !v.Valid {
			continue
		}
		h.Cells = append(h.Cells, gochart.HeatCell{X: r.cell(i, 0), Y: r.cell(i, 1), Value: v.Float})
	}
	return h, nil
}

func (r *reader) table() *gochart.TableData {
	t := &gochart.TableData{Headers: make([]string, len(r.header))}
	for j, h := range r.header {
		t.Headers[j] = strings.TrimSpace(h)
	}
	for i := range r.rows {
		row := make([]string, len(t.Headers))
		for j := range row {
			row[j] = r.cell(i, j)
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// trimEmpty drops rows with no non-blank cell.
func trimEmpty(rows [][]string) [][]string {
	out := rows[:0:0]
	for _, row := range rows {
		for _, c := range row {
			if strings.TrimSpace(c) != "" {
				out = append(out, row)
				break
			}
		}
	}
	return out
}
