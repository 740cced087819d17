package gochart

import (
	"math"
	"strconv"
	"strings"
)

// Curve names recorded on path nodes.
const (
	CurveLinear    = "linear"
	CurveMonotoneX = "monotoneX"
)

func num(f float64) string {
	return strconv.FormatFloat(math.Round(f*100)/100, 'f', -1, 64)
}

// splitSegments breaks a sequence at invalid points so nulls become gaps.
func splitSegments(pts []Point, valid []bool) [][]Point {
	var segs [][]Point
	var cur []Point
	for i, p := range pts {
		if !valid[i] {
			if len(cur) > 0 {
				segs = append(segs, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, p)
	}
	if len(cur) > 0 {
		segs = append(segs, cur)
	}
	return segs
}

// writeCurve appends path commands through pts. With move set the path
// starts with M; otherwise it continues with L to the first point.
func writeCurve(sb *strings.Builder, pts []Point, curved, move bool) {
	if len(pts) == 0 {
		return
	}
	if move {
		sb.WriteString("M")
	} else {
		sb.WriteString("L")
	}
	sb.WriteString(num(pts[0].X) + "," + num(pts[0].Y))
	if !curved || len(pts) < 3 {
		for _, p := range pts[1:] {
			sb.WriteString("L" + num(p.X) + "," + num(p.Y))
		}
		return
	}
	t := monotoneTangents(pts)
	for i := 0; i < len(pts)-1; i++ {
		p0, p1 := pts[i], pts[i+1]
		dx := (p1.X - p0.X) / 3
		sb.WriteString("C" +
			num(p0.X+dx) + "," + num(p0.Y+dx*t[i]) + " " +
			num(p1.X-dx) + "," + num(p1.Y-dx*t[i+1]) + " " +
			num(p1.X) + "," + num(p1.Y))
	}
}

// linePath renders each segment as its own subpath.
func linePath(segs [][]Point, curved bool) string {
	var sb strings.Builder
	for _, seg := range segs {
		writeCurve(&sb, seg, curved, true)
	}
	return sb.String()
}

// monotoneTangents computes Fritsch-Carlson style tangents that keep a cubic
// interpolation monotone in y between points ordered by x.
func monotoneTangents(pts []Point) []float64 {
	n := len(pts)
	t := make([]float64, n)
	for i := 1; i < n-1; i++ {
		t[i] = slope3(pts[i-1], pts[i], pts[i+1])
	}
	t[0] = slope2(pts[0], pts[1], t[1])
	t[n-1] = slope2(pts[n-2], pts[n-1], t[n-2])
	return t
}

func slope3(p0, p1, p2 Point) float64 {
	h0, h1 := p1.X-p0.X, p2.X-p1.X
	if h0 == 0 || h1 == 0 {
		return 0
	}
	s0 := (p1.Y - p0.Y) / h0
	s1 := (p2.Y - p1.Y) / h1
	p := (s0*h1 + s1*h0) / (h0 + h1)
	v := (sign(s0) + sign(s1)) * math.Min(math.Min(math.Abs(s0), math.Abs(s1)), 0.5*math.Abs(p))
	if math.IsNaN(v) {
		return 0
	}
	return v
}

func slope2(p0, p1 Point, t float64) float64 {
	h := p1.X - p0.X
	if h == 0 {
		return t
	}
	return (3*(p1.Y-p0.Y)/h - t) / 2
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// arcPath draws a pie wedge. Angles are degrees clockwise from 12 o'clock.
func arcPath(cx, cy, r, start, end float64) string {
	if end-start >= 360 {
		// Two half arcs; a single arc cannot describe a full circle.
		return "M" + num(cx) + "," + num(cy-r) +
			"A" + num(r) + "," + num(r) + " 0 1,1 " + num(cx) + "," + num(cy+r) +
			"A" + num(r) + "," + num(r) + " 0 1,1 " + num(cx) + "," + num(cy-r) + "Z"
	}
	sx, sy := polar(cx, cy, r, start)
	ex, ey := polar(cx, cy, r, end)
	large := "0"
	if end-start > 180 {
		large = "1"
	}
	return "M" + num(cx) + "," + num(cy) +
		"L" + num(sx) + "," + num(sy) +
		"A" + num(r) + "," + num(r) + " 0 " + large + ",1 " + num(ex) + "," + num(ey) + "Z"
}

// polar converts a clockwise-from-top angle in degrees to a pixel position.
func polar(cx, cy, r, deg float64) (float64, float64) {
	rad := (deg - 90) * math.Pi / 180
	return cx + r*math.Cos(rad), cy + r*math.Sin(rad)
}
