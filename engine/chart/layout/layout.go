package layout

import (
	"math"

	"github.com/npillmayer/chartbox/core/geom"
	"github.com/npillmayer/chartbox/engine/chart"
)

// Options select which chart decorations Activate and MinimumSize take
// into account. The zero value considers everything.
type Options uint8

const (
	// IgnoreLegend excludes the legend from the layout.
	IgnoreLegend Options = 1 << iota

	// IgnoreTitle excludes the title from the layout.
	IgnoreTitle

	// IgnoreFooter excludes the footer from the layout.
	IgnoreFooter

	// IgnoreScrollbars excludes the legend's scrollbar extents.
	IgnoreScrollbars

	// IgnoreFrames excludes frame widths and canvas content margins.
	IgnoreFrames

	// IgnoreNone considers all chart components.
	IgnoreNone Options = 0
)

// Layout distributes a plot rectangle among the regions of a chart:
// canvas, axis scales, title, footer, and legend.
//
// A Layout is not safe for concurrent use. Clients running layout
// passes from multiple goroutines have to synchronize access or use
// one Layout per goroutine.
type Layout struct {
	legendPos           chart.LegendPosition
	legendRatio         float64
	spacing             float64
	canvasMargin        [chart.AxisCount]float64
	alignCanvasToScales [chart.AxisCount]bool

	titleRect  geom.Rect
	footerRect geom.Rect
	legendRect geom.Rect
	canvasRect geom.Rect
	scaleRect  [chart.AxisCount]geom.Rect

	data layoutData
}

// New creates a layout with a bottom legend occupying at most a third
// of the plot, a canvas margin of 4 on every side, a spacing of 5, and
// canvas/scale alignment switched off.
func New() *Layout {
	l := &Layout{
		spacing: 5,
	}
	l.SetLegendPosition(chart.LegendBottom, 0.0)
	l.SetCanvasMargin(4, -1)
	l.SetAlignCanvasToScales(false)
	l.Invalidate()
	return l
}

// SetCanvasMargin changes the margin between the canvas border and the
// scale backbones. Margins below -1 are clamped to -1, which stands for
// "no margin handling". axis = -1 addresses all four sides at once;
// other invalid axes are ignored.
func (l *Layout) SetCanvasMargin(margin float64, axis chart.AxisID) {
	if margin < -1 {
		margin = -1
	}
	if axis == -1 {
		for a := range l.canvasMargin {
			l.canvasMargin[a] = margin
		}
	} else if axis.IsValid() {
		l.canvasMargin[axis] = margin
	}
}

// CanvasMargin returns the margin for axis, or 0 for an invalid axis.
func (l *Layout) CanvasMargin(axis chart.AxisID) float64 {
	if !axis.IsValid() {
		return 0
	}
	return l.canvasMargin[axis]
}

// SetAlignCanvasToScales switches the alignment of the canvas to the
// axis backbones on or off, for all four sides.
//
// When switched on, the part of a scale that overhangs the backbone,
// i.e. the half of the outermost tick label, is taken from the canvas
// instead of being added to the plot margins.
func (l *Layout) SetAlignCanvasToScales(on bool) {
	for a := range l.alignCanvasToScales {
		l.alignCanvasToScales[a] = on
	}
}

// SetAlignCanvasToScale switches backbone alignment for a single side.
func (l *Layout) SetAlignCanvasToScale(axis chart.AxisID, on bool) {
	if axis.IsValid() {
		l.alignCanvasToScales[axis] = on
	}
}

// AlignCanvasToScale tells whether the canvas is aligned to the
// backbone of axis. Invalid axes report false.
func (l *Layout) AlignCanvasToScale(axis chart.AxisID) bool {
	if !axis.IsValid() {
		return false
	}
	return l.alignCanvasToScales[axis]
}

// SetSpacing changes the gap between the chart regions. Negative
// spacings are clamped to 0.
func (l *Layout) SetSpacing(spacing float64) {
	l.spacing = math.Max(0, spacing)
}

// Spacing returns the gap between the chart regions.
func (l *Layout) Spacing() float64 {
	return l.spacing
}

// SetLegendPosition moves the legend to one of the four plot edges.
// ratio limits the fraction of the plot the legend may occupy in its
// growth direction. Ratios above 1 are clamped to 1; ratios of 0 or
// below select the default, which is 0.33 for top/bottom legends and
// 0.5 for left/right legends.
func (l *Layout) SetLegendPosition(pos chart.LegendPosition, ratio float64) {
	if ratio > 1.0 {
		ratio = 1.0
	}
	switch pos {
	case chart.LegendTop, chart.LegendBottom:
		if ratio <= 0.0 {
			ratio = 0.33
		}
	case chart.LegendLeft, chart.LegendRight:
		if ratio <= 0.0 {
			ratio = 0.5
		}
	default:
		return
	}
	l.legendRatio = ratio
	l.legendPos = pos
}

// LegendPosition returns the edge the legend is attached to.
func (l *Layout) LegendPosition() chart.LegendPosition {
	return l.legendPos
}

// SetLegendRatio limits the fraction of the plot the legend may occupy,
// keeping the current position.
func (l *Layout) SetLegendRatio(ratio float64) {
	l.SetLegendPosition(l.legendPos, ratio)
}

// LegendRatio returns the maximum fraction of the plot the legend may
// occupy.
func (l *Layout) LegendRatio() float64 {
	return l.legendRatio
}

// Invalidate resets all computed geometries to empty rectangles.
func (l *Layout) Invalidate() {
	l.titleRect = geom.Rect{}
	l.footerRect = geom.Rect{}
	l.legendRect = geom.Rect{}
	l.canvasRect = geom.Rect{}
	for a := range l.scaleRect {
		l.scaleRect[a] = geom.Rect{}
	}
}

// TitleRect returns the geometry computed for the title.
func (l *Layout) TitleRect() geom.Rect { return l.titleRect }

// SetTitleRect overrides the computed title geometry.
func (l *Layout) SetTitleRect(rect geom.Rect) { l.titleRect = rect }

// FooterRect returns the geometry computed for the footer.
func (l *Layout) FooterRect() geom.Rect { return l.footerRect }

// SetFooterRect overrides the computed footer geometry.
func (l *Layout) SetFooterRect(rect geom.Rect) { l.footerRect = rect }

// LegendRect returns the geometry computed for the legend.
func (l *Layout) LegendRect() geom.Rect { return l.legendRect }

// SetLegendRect overrides the computed legend geometry.
func (l *Layout) SetLegendRect(rect geom.Rect) { l.legendRect = rect }

// CanvasRect returns the geometry computed for the canvas.
func (l *Layout) CanvasRect() geom.Rect { return l.canvasRect }

// SetCanvasRect overrides the computed canvas geometry.
func (l *Layout) SetCanvasRect(rect geom.Rect) { l.canvasRect = rect }

// ScaleRect returns the geometry computed for the scale of axis, or an
// empty rectangle for an invalid axis.
func (l *Layout) ScaleRect(axis chart.AxisID) geom.Rect {
	if !axis.IsValid() {
		return geom.Rect{}
	}
	return l.scaleRect[axis]
}

// SetScaleRect overrides the computed geometry for the scale of axis.
// Invalid axes are ignored.
func (l *Layout) SetScaleRect(axis chart.AxisID, rect geom.Rect) {
	if axis.IsValid() {
		l.scaleRect[axis] = rect
	}
}

// Activate distributes plotRect among the regions of plot and stores
// the computed geometries. Previous results are discarded first.
func (l *Layout) Activate(plot chart.Chart, plotRect geom.Rect, options Options) {
	l.Invalidate()

	rect := plotRect // undistributed rest of the plot rect
	l.data.capture(plot, rect)

	if plot != nil {
		if legend := plot.Legend(); options&IgnoreLegend == 0 &&
			legend != nil && !legend.IsEmpty() {

			l.legendRect = l.layoutLegend(options, rect)

			// subtract the legend band from the undistributed rest
			rect = rect.CutOut(l.legendRect)

			switch l.legendPos {
			case chart.LegendLeft:
				rect.SetLeft(rect.Left() + l.spacing)
			case chart.LegendRight:
				rect.SetRight(rect.Right() - l.spacing)
			case chart.LegendTop:
				rect.SetTop(rect.Top() + l.spacing)
			case chart.LegendBottom:
				rect.SetBottom(rect.Bottom() - l.spacing)
			}
		}
	}

	/*
	 +---+-----------+---+
	 |       Title       |
	 +---+-----------+---+
	 |   |   Axis    |   |
	 +---+-----------+---+
	 | A |           | A |
	 | x |  Canvas   | x |
	 | i |           | i |
	 | s |           | s |
	 +---+-----------+---+
	 |   |   Axis    |   |
	 +---+-----------+---+
	 |      Footer       |
	 +---+-----------+---+
	*/

	// axis, title, and footer heights depend on each other; resolve
	// the dependency by iterative expansion of the line breaks
	dimTitle, dimFooter, dimAxes := l.expandLineBreaks(options, rect)

	if dimTitle > 0 {
		l.titleRect.SetRect(rect.Left(), rect.Top(), rect.Width(), dimTitle)
		rect.SetTop(l.titleRect.Bottom() + l.spacing)

		if l.data.scale[chart.AxisLeft].isEnabled != l.data.scale[chart.AxisRight].isEnabled {
			// one vertical axis missing: center the title over the canvas
			l.titleRect.SetLeft(rect.Left() + dimAxes[chart.AxisLeft])
			l.titleRect.SetWidth(rect.Width() - dimAxes[chart.AxisLeft] - dimAxes[chart.AxisRight])
		}
	}

	if dimFooter > 0 {
		l.footerRect.SetRect(rect.Left(), rect.Bottom()-dimFooter, rect.Width(), dimFooter)
		rect.SetBottom(l.footerRect.Top() - l.spacing)

		if l.data.scale[chart.AxisLeft].isEnabled != l.data.scale[chart.AxisRight].isEnabled {
			// one vertical axis missing: center the footer over the canvas
			l.footerRect.SetLeft(rect.Left() + dimAxes[chart.AxisLeft])
			l.footerRect.SetWidth(rect.Width() - dimAxes[chart.AxisLeft] - dimAxes[chart.AxisRight])
		}
	}

	l.canvasRect.SetRect(
		rect.Left()+dimAxes[chart.AxisLeft],
		rect.Top()+dimAxes[chart.AxisTop],
		rect.Width()-dimAxes[chart.AxisRight]-dimAxes[chart.AxisLeft],
		rect.Height()-dimAxes[chart.AxisBottom]-dimAxes[chart.AxisTop])

	for axis := chart.AxisID(0); axis < chart.AxisCount; axis++ {
		// set the rects for the axis scales
		if dimAxes[axis] <= 0 {
			continue
		}
		dim := dimAxes[axis]
		sc := l.canvasRect
		switch axis {
		case chart.AxisLeft:
			sc.SetLeft(l.canvasRect.Left() - dim)
			sc.SetWidth(dim)
		case chart.AxisRight:
			sc.SetLeft(l.canvasRect.Right())
			sc.SetWidth(dim)
		case chart.AxisBottom:
			sc.SetTop(l.canvasRect.Bottom())
			sc.SetHeight(dim)
		case chart.AxisTop:
			sc.SetTop(l.canvasRect.Top() - dim)
			sc.SetHeight(dim)
		}
		l.scaleRect[axis] = sc.Normalized()
	}

	/*
	 The canvas extends to the scale backbones. Without the alignment
	 below the outermost tick labels would overhang the canvas:

	 +---+-----------+---+
	 |  <-   Axis   ->   |
	 +-^-+-----------+-^-+
	 | | |           | | |
	 |   |           |   |
	 | A |           | A |
	 | x |  Canvas   | x |
	 | i |           | i |
	 | s |           | s |
	 |   |           |   |
	 | | |           | | |
	 +-v-+-----------+-v-+
	 |  <-   Axis   ->   |
	 +---+-----------+---+
	*/
	l.alignScales(options, &l.canvasRect, &l.scaleRect)

	if !l.legendRect.IsEmpty() {
		// align the legend to the canvas rather than to the full plot
		l.legendRect = l.alignLegend(l.canvasRect, l.legendRect)
	}

	tracer().Debugf("layout: canvas = %s", l.canvasRect)
}
