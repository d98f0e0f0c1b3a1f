package layout

import (
	"math"

	"github.com/npillmayer/chartbox/core/geom"
	"github.com/npillmayer/chartbox/engine/chart"
)

// layoutLegend cuts the legend's band out of rect, limited by the
// legend ratio in the growth direction.
func (l *Layout) layoutLegend(options Options, rect geom.Rect) geom.Rect {
	hint := l.data.legend.hint

	var dim float64
	if l.legendPos == chart.LegendLeft || l.legendPos == chart.LegendRight {
		dim = math.Min(hint.W, rect.Width()*l.legendRatio)
		if options&IgnoreScrollbars == 0 {
			if hint.H > rect.Height() {
				// a vertical scrollbar steals horizontal space
				dim += l.data.legend.hScrollExtent
			}
		}
	} else {
		dim = math.Min(hint.H, rect.Height()*l.legendRatio)
		dim = math.Max(dim, l.data.legend.vScrollExtent)
	}

	legendRect := rect
	switch l.legendPos {
	case chart.LegendLeft:
		legendRect.SetWidth(dim)
	case chart.LegendRight:
		legendRect.SetLeft(rect.Right() - dim)
		legendRect.SetWidth(dim)
	case chart.LegendTop:
		legendRect.SetHeight(dim)
	case chart.LegendBottom:
		legendRect.SetTop(rect.Bottom() - dim)
		legendRect.SetHeight(dim)
	}
	return legendRect
}

// alignLegend shrinks legendRect to the canvas extent when the legend
// does not need the full plot edge.
func (l *Layout) alignLegend(canvasRect, legendRect geom.Rect) geom.Rect {
	aligned := legendRect
	if l.legendPos == chart.LegendBottom || l.legendPos == chart.LegendTop {
		if l.data.legend.hint.W < canvasRect.Width() {
			aligned.SetLeft(canvasRect.Left())
			aligned.SetWidth(canvasRect.Width())
		}
	} else {
		if l.data.legend.hint.H < canvasRect.Height() {
			aligned.SetTop(canvasRect.Top())
			aligned.SetHeight(canvasRect.Height())
		}
	}
	return aligned
}
