package layout

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"

	"github.com/npillmayer/chartbox/core/font"
	"github.com/npillmayer/chartbox/core/geom"
	"github.com/npillmayer/chartbox/engine/chart"
	"github.com/npillmayer/chartbox/engine/chart/label"
)

// --- Stub chart components --------------------------------------------------

// fixedMeasure makes text metrics independent of any real font: every
// byte advances by adv, every line is line high.
type fixedMeasure struct {
	line, adv float64
}

func (m fixedMeasure) LineHeight(tc *font.TypeCase) float64 {
	return m.line
}

func (m fixedMeasure) Advance(frag string, tc *font.TypeCase) float64 {
	return float64(len(frag)) * m.adv
}

func makeText(s string) label.Text {
	t := label.NewText(s)
	t.SetMeasurer(fixedMeasure{line: 10, adv: 5})
	return t
}

type stubLegend struct {
	hint             geom.Size
	frame            float64
	scrollH, scrollV float64
}

func (s *stubLegend) IsEmpty() bool        { return s.hint.IsEmpty() }
func (s *stubLegend) FrameWidth() float64  { return s.frame }
func (s *stubLegend) SizeHint() geom.Size  { return s.hint }
func (s *stubLegend) HeightForWidth(w float64) float64 {
	return s.hint.H
}
func (s *stubLegend) ScrollExtent(o chart.Orientation) float64 {
	if o == chart.Horizontal {
		return s.scrollH
	}
	return s.scrollV
}

type stubLabel struct {
	text  label.Text
	frame float64
}

func (s *stubLabel) Text() label.Text      { return s.text }
func (s *stubLabel) Font() *font.TypeCase  { return nil }
func (s *stubLabel) FrameWidth() float64   { return s.frame }
func (s *stubLabel) HeightForWidth(w float64) float64 {
	return s.text.HeightForWidth(w)
}

type stubScale struct {
	dim         float64 // thickness of backbone, ticks and tick labels
	start, end  float64
	margin      float64
	ticks       bool
	tickLen     float64
	title       label.Text
	titleH      float64
	titleHeight func(length float64) float64 // overrides titleH when set
	minHint     geom.Size
	minStart    float64
	minEnd      float64
}

func (s *stubScale) Font() *font.TypeCase      { return nil }
func (s *stubScale) StartBorderDist() float64  { return s.start }
func (s *stubScale) EndBorderDist() float64    { return s.end }
func (s *stubScale) Margin() float64           { return s.margin }
func (s *stubScale) DrawsTicks() bool          { return s.ticks }
func (s *stubScale) MaxTickLength() float64    { return s.tickLen }
func (s *stubScale) Title() label.Text         { return s.title }
func (s *stubScale) MinimumSizeHint() geom.Size { return s.minHint }

func (s *stubScale) BorderDistHint() (float64, float64) {
	return s.minStart, s.minEnd
}

func (s *stubScale) DimForLength(length float64, f *font.TypeCase) float64 {
	return s.dim + s.TitleHeightForWidth(length)
}

func (s *stubScale) TitleHeightForWidth(w float64) float64 {
	if s.title.IsEmpty() {
		return 0
	}
	if s.titleHeight != nil {
		return s.titleHeight(w)
	}
	return s.titleH
}

type stubCanvas struct {
	margins [chart.AxisCount]float64
	minSize geom.Size
}

func (s *stubCanvas) ContentsMargins() [chart.AxisCount]float64 { return s.margins }
func (s *stubCanvas) MinimumSize() geom.Size                    { return s.minSize }

type stubChart struct {
	legend *stubLegend
	title  *stubLabel
	footer *stubLabel
	scales [chart.AxisCount]*stubScale
	canvas *stubCanvas
}

func (c *stubChart) Legend() chart.Legend {
	if c.legend == nil {
		return nil
	}
	return c.legend
}

func (c *stubChart) TitleLabel() chart.TextLabel {
	if c.title == nil {
		return nil
	}
	return c.title
}

func (c *stubChart) FooterLabel() chart.TextLabel {
	if c.footer == nil {
		return nil
	}
	return c.footer
}

func (c *stubChart) AxisEnabled(axis chart.AxisID) bool {
	return axis.IsValid() && c.scales[axis] != nil
}

func (c *stubChart) AxisWidget(axis chart.AxisID) chart.ScaleWidget {
	if !axis.IsValid() || c.scales[axis] == nil {
		return nil
	}
	return c.scales[axis]
}

func (c *stubChart) Canvas() chart.Canvas {
	if c.canvas == nil {
		return nil
	}
	return c.canvas
}

// --- Configuration ----------------------------------------------------------

func TestLayoutDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartbox.layout")
	defer teardown()
	l := New()
	assert.Equal(t, chart.LegendBottom, l.LegendPosition())
	assert.Equal(t, 0.33, l.LegendRatio())
	assert.Equal(t, 5.0, l.Spacing())
	for axis := chart.AxisID(0); axis < chart.AxisCount; axis++ {
		assert.Equal(t, 4.0, l.CanvasMargin(axis))
		assert.False(t, l.AlignCanvasToScale(axis))
	}
	assert.True(t, l.CanvasRect().IsEmpty())
}

func TestCanvasMarginClamped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartbox.layout")
	defer teardown()
	l := New()
	l.SetCanvasMargin(-7, -1)
	for axis := chart.AxisID(0); axis < chart.AxisCount; axis++ {
		assert.Equal(t, -1.0, l.CanvasMargin(axis))
	}
	l.SetCanvasMargin(9, chart.AxisTop)
	assert.Equal(t, 9.0, l.CanvasMargin(chart.AxisTop))
	assert.Equal(t, -1.0, l.CanvasMargin(chart.AxisLeft))
	assert.Equal(t, 0.0, l.CanvasMargin(chart.AxisID(17)))
}

func TestLegendRatioClamped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartbox.layout")
	defer teardown()
	l := New()
	l.SetLegendPosition(chart.LegendLeft, 0.0)
	assert.Equal(t, 0.5, l.LegendRatio()) // side legend default
	l.SetLegendRatio(3.0)
	assert.Equal(t, 1.0, l.LegendRatio())
	l.SetLegendRatio(0.25)
	assert.Equal(t, 0.25, l.LegendRatio())
	l.SetLegendPosition(chart.LegendTop, -1.0)
	assert.Equal(t, 0.33, l.LegendRatio())
}

func TestSpacingClamped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartbox.layout")
	defer teardown()
	l := New()
	l.SetSpacing(-3)
	assert.Equal(t, 0.0, l.Spacing())
}

func TestScaleRectInvalidAxis(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartbox.layout")
	defer teardown()
	l := New()
	l.SetScaleRect(chart.AxisID(-2), geom.NewRect(0, 0, 10, 10))
	assert.True(t, l.ScaleRect(chart.AxisID(-2)).IsEmpty())
	l.SetScaleRect(chart.AxisLeft, geom.NewRect(0, 0, 10, 10))
	assert.Equal(t, geom.NewRect(0, 0, 10, 10), l.ScaleRect(chart.AxisLeft))
}

// --- Activation -------------------------------------------------------------

func TestActivateBareCanvas(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartbox.layout")
	defer teardown()
	l := New()
	plot := &stubChart{}
	rect := geom.NewRect(0, 0, 800, 600)
	l.Activate(plot, rect, IgnoreNone)
	assert.Equal(t, rect, l.CanvasRect())
	assert.True(t, l.TitleRect().IsEmpty())
	assert.True(t, l.FooterRect().IsEmpty())
	assert.True(t, l.LegendRect().IsEmpty())
	for axis := chart.AxisID(0); axis < chart.AxisCount; axis++ {
		assert.True(t, l.ScaleRect(axis).IsEmpty())
	}
}

func TestActivateTitleAndFooterBands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartbox.layout")
	defer teardown()
	l := New()
	plot := &stubChart{
		title:  &stubLabel{text: makeText("Title")},
		footer: &stubLabel{text: makeText("Footer")},
	}
	l.Activate(plot, geom.NewRect(0, 0, 800, 600), IgnoreNone)
	assert.Equal(t, geom.NewRect(0, 0, 800, 10), l.TitleRect())
	assert.Equal(t, geom.NewRect(0, 590, 800, 10), l.FooterRect())
	// canvas sits between the bands, separated by the spacing
	assert.Equal(t, geom.NewRect(0, 15, 800, 570), l.CanvasRect())
}

func TestActivateIgnoresTitleOnRequest(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartbox.layout")
	defer teardown()
	l := New()
	plot := &stubChart{
		title: &stubLabel{text: makeText("Title")},
	}
	l.Activate(plot, geom.NewRect(0, 0, 800, 600), IgnoreTitle)
	assert.True(t, l.TitleRect().IsEmpty())
	assert.Equal(t, geom.NewRect(0, 0, 800, 600), l.CanvasRect())
}

func TestActivateScales(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartbox.layout")
	defer teardown()
	l := New()
	plot := &stubChart{
		canvas: &stubCanvas{},
	}
	plot.scales[chart.AxisLeft] = &stubScale{dim: 40}
	plot.scales[chart.AxisBottom] = &stubScale{dim: 30}
	l.Activate(plot, geom.NewRect(0, 0, 800, 600), IgnoreNone)

	assert.Equal(t, geom.NewRect(40, 0, 760, 570), l.CanvasRect())

	left := l.ScaleRect(chart.AxisLeft)
	bottom := l.ScaleRect(chart.AxisBottom)
	assert.Equal(t, 40.0, left.Width())
	assert.Equal(t, 30.0, bottom.Height())

	// the corner is shared: the left scale stops above the bottom
	// scale's tick area and the bottom scale starts right of the
	// left scale's backbone margin
	assert.Equal(t, geom.NewRect(0, 4, 40, 561), left)
	assert.Equal(t, 44.0, bottom.Left())
	assert.Equal(t, 570.0, bottom.Top())

	assert.False(t, left.Intersects(l.CanvasRect()))
	assert.False(t, bottom.Intersects(l.CanvasRect()))
	assert.False(t, left.Intersects(bottom))
}

func TestActivateTitleCenteredOverCanvas(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartbox.layout")
	defer teardown()
	l := New()
	plot := &stubChart{
		title:  &stubLabel{text: makeText("Title")},
		canvas: &stubCanvas{},
	}
	plot.scales[chart.AxisLeft] = &stubScale{dim: 40}
	l.Activate(plot, geom.NewRect(0, 0, 800, 600), IgnoreNone)

	// only one vertical axis: the title spans the canvas, not the plot
	assert.Equal(t, geom.NewRect(40, 0, 760, 10), l.TitleRect())
}

func TestActivateAxisTitleExpandsScale(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartbox.layout")
	defer teardown()
	l := New()
	plot := &stubChart{
		canvas: &stubCanvas{},
	}
	plot.scales[chart.AxisLeft] = &stubScale{
		dim:    40,
		title:  makeText("pressure"),
		titleH: 12,
	}
	l.Activate(plot, geom.NewRect(0, 0, 800, 600), IgnoreNone)
	assert.Equal(t, 52.0, l.ScaleRect(chart.AxisLeft).Width())
	assert.Equal(t, 52.0, l.CanvasRect().Left())
}

func TestActivateExpandsWrappingAxisTitle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartbox.layout")
	defer teardown()
	l := New()
	plot := &stubChart{
		canvas: &stubCanvas{},
	}
	// 280 units of title text wrap into ceil(280/length) lines of 10
	plot.scales[chart.AxisLeft] = &stubScale{
		dim:   40,
		title: makeText("pressure gradient across the probe array"),
		titleHeight: func(length float64) float64 {
			return math.Ceil(280/length) * 10
		},
	}
	plot.scales[chart.AxisBottom] = &stubScale{dim: 60}
	rect := geom.NewRect(0, 0, 300, 200)
	l.Activate(plot, rect, IgnoreNone)

	// the bottom axis shortens the left backbone to 134, where the
	// title needs 3 lines; a single expansion round would stop at 2
	// lines (backbone 197) and a width of 60
	assert.Equal(t, 70.0, l.ScaleRect(chart.AxisLeft).Width())
	assert.Equal(t, geom.NewRect(70, 0, 230, 140), l.CanvasRect())

	// converged dimensions must survive a re-run unchanged
	l.Activate(plot, rect, IgnoreNone)
	assert.Equal(t, 70.0, l.ScaleRect(chart.AxisLeft).Width())
	assert.Equal(t, geom.NewRect(70, 0, 230, 140), l.CanvasRect())
}

func fourAxisChart() *stubChart {
	plot := &stubChart{
		canvas: &stubCanvas{},
	}
	dims := [chart.AxisCount]float64{40, 45, 30, 25}
	for axis := chart.AxisID(0); axis < chart.AxisCount; axis++ {
		plot.scales[axis] = &stubScale{
			dim:     dims[axis],
			start:   2,
			end:     2,
			margin:  2,
			ticks:   true,
			tickLen: 6,
		}
	}
	return plot
}

func TestActivateAllFourAxes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartbox.layout")
	defer teardown()
	l := New()
	plot := fourAxisChart()
	plotRect := geom.NewRect(0, 0, 800, 600)
	l.Activate(plot, plotRect, IgnoreNone)

	canvas := l.CanvasRect()
	assert.Equal(t, geom.NewRect(40, 25, 715, 545), canvas)
	assert.Equal(t, geom.NewRect(0, 27, 40, 540), l.ScaleRect(chart.AxisLeft))
	assert.Equal(t, geom.NewRect(755, 27, 45, 540), l.ScaleRect(chart.AxisRight))
	assert.Equal(t, geom.NewRect(42, 570, 710, 30), l.ScaleRect(chart.AxisBottom))
	assert.Equal(t, geom.NewRect(42, 0, 710, 25), l.ScaleRect(chart.AxisTop))

	// every scale butts against its canvas edge
	assert.Equal(t, canvas.Left(), l.ScaleRect(chart.AxisLeft).Right())
	assert.Equal(t, canvas.Right(), l.ScaleRect(chart.AxisRight).Left())
	assert.Equal(t, canvas.Bottom(), l.ScaleRect(chart.AxisBottom).Top())
	assert.Equal(t, canvas.Top(), l.ScaleRect(chart.AxisTop).Bottom())

	// regions stay inside the plot and do not overlap
	rects := []geom.Rect{canvas}
	for axis := chart.AxisID(0); axis < chart.AxisCount; axis++ {
		rects = append(rects, l.ScaleRect(axis))
	}
	for i, r := range rects {
		assert.Equal(t, r, r.Intersected(plotRect))
		for _, other := range rects[i+1:] {
			assert.False(t, r.Intersects(other))
		}
	}
}

func TestActivateAllFourAxesAlignedToScales(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartbox.layout")
	defer teardown()
	l := New()
	l.SetAlignCanvasToScales(true)
	plot := fourAxisChart()
	l.Activate(plot, geom.NewRect(0, 0, 800, 600), IgnoreNone)

	canvas := l.CanvasRect()
	assert.Equal(t, geom.NewRect(40, 25, 715, 545), canvas)
	// vertical scales span between the canvas corners, horizontal
	// scales overhang by their border distances
	assert.Equal(t, geom.NewRect(0, 23, 40, 548), l.ScaleRect(chart.AxisLeft))
	assert.Equal(t, geom.NewRect(755, 23, 45, 548), l.ScaleRect(chart.AxisRight))
	assert.Equal(t, geom.NewRect(38, 570, 718, 30), l.ScaleRect(chart.AxisBottom))
	assert.Equal(t, geom.NewRect(38, 0, 718, 25), l.ScaleRect(chart.AxisTop))

	// the scales stop at the canvas backbone lines, never inside
	assert.Equal(t, canvas.Left(), l.ScaleRect(chart.AxisLeft).Right())
	assert.Equal(t, canvas.Right(), l.ScaleRect(chart.AxisRight).Left())
	assert.Equal(t, canvas.Bottom(), l.ScaleRect(chart.AxisBottom).Top())
	assert.Equal(t, canvas.Top(), l.ScaleRect(chart.AxisTop).Bottom())
	for axis := chart.AxisID(0); axis < chart.AxisCount; axis++ {
		assert.False(t, l.ScaleRect(axis).Intersects(canvas))
	}
}

func TestActivateBottomLegend(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartbox.layout")
	defer teardown()
	l := New()
	plot := &stubChart{
		legend: &stubLegend{hint: geom.Size{W: 100, H: 50}},
	}
	l.Activate(plot, geom.NewRect(0, 0, 800, 600), IgnoreNone)
	assert.Equal(t, geom.NewRect(0, 550, 800, 50), l.LegendRect())
	assert.Equal(t, geom.NewRect(0, 0, 800, 545), l.CanvasRect())
	assert.False(t, l.LegendRect().Intersects(l.CanvasRect()))
}

func TestActivateLeftLegend(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartbox.layout")
	defer teardown()
	l := New()
	l.SetLegendPosition(chart.LegendLeft, 0.0)
	plot := &stubChart{
		legend: &stubLegend{hint: geom.Size{W: 100, H: 400}},
	}
	l.Activate(plot, geom.NewRect(0, 0, 800, 600), IgnoreNone)
	assert.Equal(t, geom.NewRect(0, 0, 100, 600), l.LegendRect())
	assert.Equal(t, geom.NewRect(105, 0, 695, 600), l.CanvasRect())
}

func TestActivateLegendRatioCapsGrowth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartbox.layout")
	defer teardown()
	l := New()
	plot := &stubChart{
		legend: &stubLegend{hint: geom.Size{W: 100, H: 400}},
	}
	l.Activate(plot, geom.NewRect(0, 0, 800, 600), IgnoreNone)
	assert.InDelta(t, 600*0.33, l.LegendRect().Height(), 0.001)
}

func TestActivateRightLegendRatioCapsWidth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartbox.layout")
	defer teardown()
	l := New()
	l.SetLegendPosition(chart.LegendRight, 0.4)
	plot := &stubChart{
		legend: &stubLegend{hint: geom.Size{W: 500, H: 100}},
	}
	l.Activate(plot, geom.NewRect(0, 0, 800, 600), IgnoreNone)
	assert.InDelta(t, 800*0.4, l.LegendRect().Width(), 0.001)
	assert.Equal(t, 800.0, l.LegendRect().Right())
	assert.Equal(t, geom.NewRect(0, 0, 475, 600), l.CanvasRect())
	assert.False(t, l.LegendRect().Intersects(l.CanvasRect()))
}

func TestActivateAlignCanvasToBottomScale(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartbox.layout")
	defer teardown()
	l := New()
	l.SetAlignCanvasToScale(chart.AxisBottom, true)
	plot := &stubChart{
		canvas: &stubCanvas{},
	}
	// the left scale's lower border distance exceeds the bottom
	// scale's height, so the canvas has to give way at its bottom
	// edge instead of clipping the overhanging tick label
	plot.scales[chart.AxisLeft] = &stubScale{dim: 40, end: 40}
	plot.scales[chart.AxisBottom] = &stubScale{dim: 30}
	l.Activate(plot, geom.NewRect(0, 0, 800, 600), IgnoreNone)

	assert.Equal(t, geom.NewRect(40, 0, 760, 561), l.CanvasRect())
	// the bottom scale is realigned to start at the canvas bottom
	assert.Equal(t, l.CanvasRect().Bottom(), l.ScaleRect(chart.AxisBottom).Top())
}

func TestActivateIgnoresLegendOnRequest(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartbox.layout")
	defer teardown()
	l := New()
	plot := &stubChart{
		legend: &stubLegend{hint: geom.Size{W: 100, H: 50}},
	}
	l.Activate(plot, geom.NewRect(0, 0, 800, 600), IgnoreLegend)
	assert.True(t, l.LegendRect().IsEmpty())
	assert.Equal(t, geom.NewRect(0, 0, 800, 600), l.CanvasRect())
}

func TestActivateIsDeterministic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartbox.layout")
	defer teardown()
	plot := &stubChart{
		legend: &stubLegend{hint: geom.Size{W: 100, H: 50}},
		title:  &stubLabel{text: makeText("Title")},
		canvas: &stubCanvas{},
	}
	plot.scales[chart.AxisLeft] = &stubScale{dim: 40}
	plot.scales[chart.AxisBottom] = &stubScale{dim: 30}

	l1, l2 := New(), New()
	rect := geom.NewRect(10, 20, 640, 480)
	l1.Activate(plot, rect, IgnoreNone)
	l2.Activate(plot, rect, IgnoreNone)
	l2.Activate(plot, rect, IgnoreNone) // repeated runs do not drift
	assert.Equal(t, l1.CanvasRect(), l2.CanvasRect())
	assert.Equal(t, l1.TitleRect(), l2.TitleRect())
	assert.Equal(t, l1.LegendRect(), l2.LegendRect())
	for axis := chart.AxisID(0); axis < chart.AxisCount; axis++ {
		assert.Equal(t, l1.ScaleRect(axis), l2.ScaleRect(axis))
	}
}

func TestInvalidateClearsGeometries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartbox.layout")
	defer teardown()
	l := New()
	plot := &stubChart{
		title:  &stubLabel{text: makeText("Title")},
		canvas: &stubCanvas{},
	}
	plot.scales[chart.AxisLeft] = &stubScale{dim: 40}
	l.Activate(plot, geom.NewRect(0, 0, 800, 600), IgnoreNone)
	assert.False(t, l.CanvasRect().IsEmpty())

	l.Invalidate()
	assert.True(t, l.CanvasRect().IsEmpty())
	assert.True(t, l.TitleRect().IsEmpty())
	assert.True(t, l.FooterRect().IsEmpty())
	assert.True(t, l.LegendRect().IsEmpty())
	for axis := chart.AxisID(0); axis < chart.AxisCount; axis++ {
		assert.True(t, l.ScaleRect(axis).IsEmpty())
	}
}

func TestActivateNilChart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartbox.layout")
	defer teardown()
	l := New()
	l.Activate(nil, geom.NewRect(0, 0, 800, 600), IgnoreNone)
	assert.Equal(t, geom.NewRect(0, 0, 800, 600), l.CanvasRect())
}

// --- Minimum size -----------------------------------------------------------

func TestMinimumSize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartbox.layout")
	defer teardown()
	l := New()
	plot := &stubChart{
		canvas: &stubCanvas{},
	}
	plot.scales[chart.AxisLeft] = &stubScale{minHint: geom.Size{W: 40, H: 200}}
	plot.scales[chart.AxisBottom] = &stubScale{minHint: geom.Size{W: 300, H: 30}}

	min := l.MinimumSize(plot)
	// width: left scale + bottom scale incl canvas borders
	assert.Equal(t, 40.0+300+2, min.W)
	// height: bottom scale + left scale incl canvas borders
	assert.Equal(t, 30.0+200+2, min.H)
}

func TestMinimumSizeWithTitle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartbox.layout")
	defer teardown()
	l := New()
	plot := &stubChart{
		title:  &stubLabel{text: makeText("Title")},
		canvas: &stubCanvas{},
	}
	plot.scales[chart.AxisLeft] = &stubScale{minHint: geom.Size{W: 40, H: 200}}
	plot.scales[chart.AxisBottom] = &stubScale{minHint: geom.Size{W: 300, H: 30}}

	min := l.MinimumSize(plot)
	assert.Equal(t, 342.0, min.W)
	assert.Equal(t, 232.0+10+5, min.H) // title band plus spacing
}

func TestMinimumSizeCornerSharing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartbox.layout")
	defer teardown()
	l := New()
	plot := &stubChart{
		canvas: &stubCanvas{
			margins: [chart.AxisCount]float64{3, 0, 0, 0},
		},
	}
	plot.scales[chart.AxisLeft] = &stubScale{minHint: geom.Size{W: 40, H: 200}}
	plot.scales[chart.AxisBottom] = &stubScale{
		minHint:  geom.Size{W: 300, H: 30},
		minStart: 20,
	}

	// the uniform canvas border is the left frame margin (3) plus the
	// canvas margin (4) plus 1; the bottom scale's overhang of 20
	// shares 12 units with the left scale
	min := l.MinimumSize(plot)
	assert.Equal(t, 40.0+(300-12)+2*(3+1), min.W)
	assert.Equal(t, 30.0+200+2*(3+1), min.H)
}

func TestMinimumSizeWithLegend(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartbox.layout")
	defer teardown()
	l := New()
	plot := &stubChart{
		legend: &stubLegend{hint: geom.Size{W: 100, H: 50}},
		canvas: &stubCanvas{minSize: geom.Size{W: 200, H: 150}},
	}
	min := l.MinimumSize(plot)
	assert.Equal(t, 200.0, min.W)
	assert.Equal(t, 150.0+50+5, min.H) // legend plus spacing
}

func TestMinimumSizeNilChart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartbox.layout")
	defer teardown()
	l := New()
	assert.Equal(t, geom.Size{}, l.MinimumSize(nil))
}
