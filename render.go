package gochart

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

// NodeKind is the primitive type of a render node.
type NodeKind string

const (
	NodeGroup  NodeKind = "group"
	NodeRect   NodeKind = "rect"
	NodePath   NodeKind = "path"
	NodeCircle NodeKind = "circle"
	NodeArc    NodeKind = "arc"
	NodeText   NodeKind = "text"
	NodeLine   NodeKind = "line"
	NodeTable  NodeKind = "table"
)

// Point is a pixel position.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is a pixel rectangle.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Right returns the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Inset shrinks the rectangle by the given margins, never below zero size.
func (r Rect) Inset(top, right, bottom, left float64) Rect {
	out := Rect{X: r.X + left, Y: r.Y + top, Width: r.Width - left - right, Height: r.Height - top - bottom}
	if out.Width < 0 {
		out.Width = 0
	}
	if out.Height < 0 {
		out.Height = 0
	}
	return out
}

// Node is one element of a render tree. Which fields are meaningful depends on Kind:
// rect uses X/Y/Width/Height, circle and arc use X/Y as the center, line uses
// X/Y to X2/Y2, path uses D and Segments, text uses X/Y as its anchor point.
type Node struct {
	Kind  NodeKind `json:"kind"`
	Role  string   `json:"role,omitempty"`
	ID    string   `json:"id,omitempty"`
	Label string   `json:"label,omitempty"`
	Index int      `json:"index"`

	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	X2     float64 `json:"x2,omitempty"`
	Y2     float64 `json:"y2,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	Radius       float64 `json:"radius,omitempty"`
	InnerRadius  float64 `json:"innerRadius,omitempty"`
	StartAngle   float64 `json:"startAngle,omitempty"`
	EndAngle     float64 `json:"endAngle,omitempty"`
	CornerRadius float64 `json:"cornerRadius,omitempty"`

	D        string    `json:"d,omitempty"`
	Segments [][]Point `json:"segments,omitempty"`
	Curve    string    `json:"curve,omitempty"`

	Fill        string         `json:"fill,omitempty"`
	Stroke      string         `json:"stroke,omitempty"`
	StrokeWidth float64        `json:"strokeWidth,omitempty"`
	Opacity     float64        `json:"opacity,omitempty"`
	Gradient    []GradientStop `json:"gradient,omitempty"`

	Text     string  `json:"text,omitempty"`
	Anchor   string  `json:"anchor,omitempty"`
	FontSize float64 `json:"fontSize,omitempty"`

	Value *float64 `json:"value,omitempty"`
	Base  *float64 `json:"base,omitempty"`
	Share *float64 `json:"share,omitempty"`

	Table    *TableData `json:"table,omitempty"`
	Children []*Node    `json:"children,omitempty"`
}

func group(role string, children ...*Node) *Node {
	return (&Node{Kind: NodeGroup, Role: role}).Add(children...)
}

// Add appends children and returns the node.
func (n *Node) Add(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// Walk visits the node and its descendants depth-first.
func (n *Node) Walk(fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// FindAll returns every descendant (including n) with the given role.
func (n *Node) FindAll(role string) []*Node {
	var out []*Node
	n.Walk(func(c *Node) {
		if c.Role == role {
			out = append(out, c)
		}
	})
	return out
}

func ptr(f float64) *float64 { return &f }

// Placeholder explains why a chart rendered no real content.
type Placeholder struct {
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// Placeholder reasons.
const (
	ReasonUnsupported = "unsupported"
	ReasonInvalid     = "invalid"
	ReasonPending     = "pending"
)

// RenderTree is the complete output of one render.
type RenderTree struct {
	Kind        Kind            `json:"kind"`
	Title       string          `json:"title,omitempty"`
	Width       float64         `json:"width"`
	Height      float64         `json:"height"`
	Frame       Rect            `json:"frame"`
	Scale       *ValueScale     `json:"scale,omitempty"`
	Root        *Node           `json:"root"`
	Legend      *Legend         `json:"legend,omitempty"`
	Tooltip     *Tooltip        `json:"tooltip,omitempty"`
	Metrics     DerivedMetrics  `json:"metrics"`
	Colors      ColorAssignment `json:"colors,omitempty"`
	Animate     bool            `json:"animate"`
	Placeholder *Placeholder    `json:"placeholder,omitempty"`
}

// IsPlaceholder reports whether the tree is a placeholder.
func (t *RenderTree) IsPlaceholder() bool { return t.Placeholder != nil }

// RenderInput is everything a renderer may read. Renderers must not mutate it.
type RenderInput struct {
	Spec    *ChartSpec
	Rows    []ResolvedRow
	Colors  ColorAssignment
	Options Options
	Frame   Rect
	Hover   *int
	Theme   *Theme
	// Format renders numbers for labels.
	Format func(float64) string
	// Share renders 0..1 proportions for labels.
	Share func(float64) string
}

// Plot is a renderer's output: the geometry root and, for value-axis kinds, its scale.
type Plot struct {
	Root  *Node
	Scale *ValueScale
}

// Renderer turns normalized input into geometry. Returning an error makes
// the engine emit a placeholder instead.
type Renderer func(in *RenderInput) (*Plot, error)

func defaultRenderers() map[Kind]Renderer {
	return map[Kind]Renderer{
		KindLine:       renderLine,
		KindBar:        renderBar,
		KindStackedBar: renderBar,
		KindArea:       renderArea,
		KindPie:        renderPie,
		KindScatter:    renderScatter,
		KindCombo:      renderCombo,
		KindTable:      renderTable,
		KindHeatmap:    renderHeatmap,
		KindWaterfall:  renderWaterfall,
		KindFunnel:     renderFunnel,
	}
}

// Engine renders chart specs. It is immutable after New and safe for concurrent use.
type Engine struct {
	theme     *Theme
	colors    *ColorResolver
	renderers map[Kind]Renderer
	logger    *zap.Logger
	viewport  Viewport
	lenient   bool
	format    *formatter
	fonts     *FontCache
}

// Option configures an Engine.
type Option func(*Engine)

// WithTheme sets the theme.
func WithTheme(t *Theme) Option {
	return func(e *Engine) {
		if t != nil {
			e.theme = t
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithViewport overrides the theme's output size.
func WithViewport(width, height float64) Option {
	return func(e *Engine) {
		if width > 0 && height > 0 {
			e.viewport = Viewport{Width: width, Height: height}
		}
	}
}

// WithLenientShapes pads short series with nulls instead of rejecting them.
func WithLenientShapes() Option {
	return func(e *Engine) { e.lenient = true }
}

// WithRenderer registers or replaces the renderer for a kind.
func WithRenderer(kind Kind, r Renderer) Option {
	return func(e *Engine) {
		if r != nil {
			e.renderers[kind] = r
		}
	}
}

// WithFontCache shares a font cache between engines. By default each engine
// builds its own over the theme's font directories.
func WithFontCache(fc *FontCache) Option {
	return func(e *Engine) { e.fonts = fc }
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		theme:     DefaultTheme(),
		renderers: defaultRenderers(),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.viewport.Width <= 0 || e.viewport.Height <= 0 {
		e.viewport = e.theme.Viewport
	}
	if e.viewport.Width <= 0 || e.viewport.Height <= 0 {
		e.viewport = DefaultTheme().Viewport
	}
	e.colors = NewColorResolver(e.theme)
	e.format = newFormatter(e.theme.Locale)
	if e.fonts == nil {
		e.fonts = NewFontCache(e.theme.FontDirs...)
	}
	return e
}

// measureText is the legend measure hook backed by the engine's font cache.
func (e *Engine) measureText(s string, size float64) float64 {
	return e.fonts.Measure(e.theme.FontFamily, s, size)
}

// Theme returns the engine's theme.
func (e *Engine) Theme() *Theme { return e.theme }

// Supports reports whether a renderer is registered for kind.
func (e *Engine) Supports(kind Kind) bool {
	_, ok := e.renderers[kind]
	return ok
}

// Render lays out spec. hover is an optional caller-owned index (label for
// cartesian kinds, slice for pie). Render never panics and never mutates spec;
// invalid input yields a placeholder tree.
func (e *Engine) Render(spec *ChartSpec, hover *int) (tree *RenderTree) {
	if spec == nil {
		return e.placeholder(&ChartSpec{}, ReasonInvalid, fmt.Errorf("%w: nil spec", ErrMissingData))
	}
	defer func() {
		if r := recover(); r != nil {
			tree = e.placeholder(spec, ReasonInvalid, fmt.Errorf("render panic: %v", r))
		}
	}()

	render, ok := e.renderers[spec.Kind]
	if !ok {
		return e.placeholder(spec, ReasonUnsupported, NewSpecError(spec.Kind, "", ErrUnsupportedKind))
	}
	if err := checkRenderable(spec); err != nil {
		return e.placeholder(spec, ReasonInvalid, err)
	}
	rows, err := Normalize(spec, e.lenient)
	if err != nil {
		return e.placeholder(spec, ReasonInvalid, err)
	}

	colors := e.colors.ResolveSpec(spec)
	tree = e.frameTree(spec)
	tree.Colors = colors

	outer := Rect{Width: tree.Width, Height: tree.Height}
	if spec.Title != "" {
		outer = outer.Inset(titleHeight, 0, 0, 0)
	}
	legend := buildLegend(spec, colors, e.theme)
	if legend != nil {
		outer = legend.layout(outer, e.measureText)
		tree.Legend = legend
	}
	tree.Frame = plotFrame(spec.Kind, outer)

	in := &RenderInput{
		Spec:    spec,
		Rows:    rows,
		Colors:  colors,
		Options: spec.Options,
		Frame:   tree.Frame,
		Hover:   hover,
		Theme:   e.theme,
		Format:  e.format.Number,
		Share:   e.format.Share,
	}
	plot, err := render(in)
	if err != nil {
		return e.placeholder(spec, ReasonInvalid, err)
	}
	tree.Root = group("chart", e.titleNode(spec, tree.Width), plot.Root)
	tree.Scale = plot.Scale
	tree.Metrics = e.metrics(spec, rows, hover)
	tree.Tooltip = buildTooltip(in, tree, e.format)

	e.logger.Debug("chart rendered",
		zap.String("kind", string(spec.Kind)),
		zap.Int("series", len(spec.Series)),
		zap.Int("rows", len(rows)))
	return tree
}

const (
	titleHeight   = 28
	titleFontSize = 16
	axisFontSize  = 11
)

func (e *Engine) frameTree(spec *ChartSpec) *RenderTree {
	return &RenderTree{
		Kind:    spec.Kind,
		Title:   spec.Title,
		Width:   e.viewport.Width,
		Height:  e.viewport.Height,
		Animate: spec.Options.Animate,
	}
}

func (e *Engine) titleNode(spec *ChartSpec, width float64) *Node {
	if spec.Title == "" {
		return nil
	}
	return &Node{
		Kind: NodeText, Role: "title", Text: spec.Title,
		X: width / 2, Y: titleHeight - 8, Anchor: "middle",
		FontSize: titleFontSize, Fill: e.theme.DarkTextColor,
	}
}

func (e *Engine) placeholder(spec *ChartSpec, reason string, err error) *RenderTree {
	msg := err.Error()
	if reason == ReasonUnsupported {
		msg = fmt.Sprintf("Unsupported chart type: %q", spec.Kind)
	}
	e.logger.Warn("chart rendered as placeholder",
		zap.String("kind", string(spec.Kind)),
		zap.String("reason", reason),
		zap.Error(err))
	tree := e.frameTree(spec)
	tree.Frame = Rect{Width: tree.Width, Height: tree.Height}
	tree.Placeholder = &Placeholder{Reason: reason, Message: msg}
	tree.Root = group("placeholder", &Node{
		Kind: NodeText, Role: "placeholder-text", Text: msg,
		X: tree.Width / 2, Y: tree.Height / 2, Anchor: "middle",
		FontSize: 14, Fill: e.theme.AxisTextColor,
	})
	return tree
}

// plotFrame reserves axis gutters for kinds that draw axes.
func plotFrame(kind Kind, outer Rect) Rect {
	switch kind {
	case KindPie, KindTable, KindFunnel:
		return outer.Inset(12, 12, 12, 12)
	case KindHeatmap:
		return outer.Inset(12, 12, 28, 64)
	default:
		return outer.Inset(12, 16, 28, 48)
	}
}

// metrics computes the derived metrics. Degenerate inputs only drop the metric.
func (e *Engine) metrics(spec *ChartSpec, rows []ResolvedRow, hover *int) DerivedMetrics {
	var m DerivedMetrics
	first := spec.FirstSeries()
	if first == nil || rows == nil || spec.Kind == KindPie {
		return m
	}
	data := column(rows, first.ID)
	if spec.Options.ShowComparison {
		if c, ok := Compare(data, hover); ok {
			m.Comparison = &c
			m.ComparisonText = spec.Options.ComparisonText
		} else {
			e.logger.Debug("comparison suppressed", zap.String("series", first.ID), zap.Error(ErrDegenerate))
		}
	}
	switch spec.Kind {
	case KindLine, KindBar, KindStackedBar, KindArea, KindCombo:
	default:
		return m
	}
	var (
		pct float64
		ok  bool
	)
	target := spec.SeriesByID(e.theme.TargetSeries)
	if target != nil && target.ID != first.ID {
		pct, ok = TargetPerformance(data, column(rows, target.ID))
	} else {
		pct, ok = TrendPerformance(data)
	}
	if ok {
		m.OverallPerformance = e.format.Percent(pct)
	} else {
		e.logger.Debug("overall performance suppressed", zap.String("series", first.ID), zap.Error(ErrDegenerate))
	}
	return m
}

// ValueScale maps data values to vertical pixel positions.
type ValueScale struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Step   float64 `json:"step"`
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

func newValueScale(lo, hi float64, frame Rect) *ValueScale {
	lo, hi, step := niceDomain(lo, hi, 5)
	return &ValueScale{Min: lo, Max: hi, Step: step, Top: frame.Y, Bottom: frame.Bottom()}
}

// Y returns the pixel row of v.
func (s *ValueScale) Y(v float64) float64 {
	return s.Bottom - (v-s.Min)*s.PixelsPerUnit()
}

// PixelsPerUnit is the pixel height of one data unit.
func (s *ValueScale) PixelsPerUnit() float64 {
	if s.Max == s.Min {
		return 0
	}
	return (s.Bottom - s.Top) / (s.Max - s.Min)
}

// Ticks returns the tick values from Min to Max.
func (s *ValueScale) Ticks() []float64 {
	if s.Step <= 0 {
		return []float64{s.Min, s.Max}
	}
	var ticks []float64
	for v := s.Min; v <= s.Max+s.Step/2; v += s.Step {
		ticks = append(ticks, math.Round(v/s.Step)*s.Step)
	}
	return ticks
}

// niceDomain widens [lo, hi] to include zero and round tick steps.
func niceDomain(lo, hi float64, ticks int) (float64, float64, float64) {
	lo, hi = math.Min(lo, 0), math.Max(hi, 0)
	if lo == hi {
		hi = lo + 1
	}
	step := niceNumber((hi-lo)/float64(ticks), true)
	return math.Floor(lo/step) * step, math.Ceil(hi/step) * step, step
}

func niceNumber(x float64, round bool) float64 {
	exp := math.Floor(math.Log10(x))
	f := x / math.Pow(10, exp)
	var nf float64
	switch {
	case round && f < 1.5, !round && f <= 1:
		nf = 1
	case round && f < 3, !round && f <= 2:
		nf = 2
	case round && f < 7, !round && f <= 5:
		nf = 5
	default:
		nf = 10
	}
	return nf * math.Pow(10, exp)
}

// bandScale divides a horizontal span into equal category bands.
type bandScale struct {
	x0, step float64
	padding  float64
}

func newBand(n int, frame Rect, padding float64) bandScale {
	if n < 1 {
		n = 1
	}
	return bandScale{x0: frame.X, step: frame.Width / float64(n), padding: padding}
}

func (b bandScale) Center(i int) float64 { return b.x0 + b.step*(float64(i)+0.5) }

func (b bandScale) Inner() float64 { return b.step * (1 - b.padding) }

// linearScale maps a numeric domain to a pixel span.
type linearScale struct {
	min, max float64
	from, to float64
}

func (s linearScale) At(v float64) float64 {
	if s.max == s.min {
		return (s.from + s.to) / 2
	}
	return s.from + (v-s.min)/(s.max-s.min)*(s.to-s.from)
}

// extent returns the min and max of the valid values of the given series.
// With stacked set it measures running sums per row instead.
func extent(rows []ResolvedRow, ids []string, stacked bool) (float64, float64) {
	lo, hi := 0.0, 0.0
	for _, r := range rows {
		sum := 0.0
		for _, id := range ids {
			v := r.Get(id)
			if !v.Valid {
				continue
			}
			x := v.Float
			if stacked {
				sum += x
				x = sum
			}
			lo, hi = math.Min(lo, x), math.Max(hi, x)
		}
	}
	return lo, hi
}

func seriesIDs(spec *ChartSpec) []string {
	ids := make([]string, len(spec.Series))
	for i, s := range spec.Series {
		ids[i] = s.ID
	}
	return ids
}

// cartesianAxes draws the value axis plus one label per category band.
func cartesianAxes(in *RenderInput, band bandScale, scale *ValueScale) *Node {
	axes := group("axes", valueAxis(in, scale)...)
	for i, r := range in.Rows {
		axes.Add(&Node{
			Kind: NodeText, Role: "category-label", Label: r.Name, Text: r.Name, Index: i,
			X: band.Center(i), Y: in.Frame.Bottom() + 16, Anchor: "middle",
			FontSize: axisFontSize, Fill: in.Theme.AxisTextColor,
		})
	}
	return axes
}

// valueAxis draws horizontal gridlines and tick labels for a value scale.
func valueAxis(in *RenderInput, scale *ValueScale) []*Node {
	var out []*Node
	for _, tick := range scale.Ticks() {
		y := scale.Y(tick)
		if in.Options.ShowGrid {
			out = append(out, &Node{
				Kind: NodeLine, Role: "grid",
				X: in.Frame.X, Y: y, X2: in.Frame.Right(), Y2: y,
				Stroke: in.Theme.GridColor, StrokeWidth: 1,
			})
		}
		out = append(out, &Node{
			Kind: NodeText, Role: "value-label", Text: in.Format(tick),
			X: in.Frame.X - 6, Y: y, Anchor: "end",
			FontSize: axisFontSize, Fill: in.Theme.AxisTextColor,
		})
	}
	return out
}
