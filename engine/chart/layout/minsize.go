package layout

import (
	"math"

	"github.com/npillmayer/chartbox/core/geom"
	"github.com/npillmayer/chartbox/engine/chart"
)

// MinimumSize returns the smallest overall size the chart needs to show
// all of its components without clipping. It is a pure measurement and
// does not touch the computed geometries.
func (l *Layout) MinimumSize(plot chart.Chart) geom.Size {
	if plot == nil {
		return geom.Size{}
	}

	type scaleHint struct {
		w, h       float64
		minLeft    float64
		minRight   float64
		tickOffset float64
	}
	var scaleData [chart.AxisCount]scaleHint
	var canvasBorder [chart.AxisCount]float64

	var contentsMargins [chart.AxisCount]float64
	var minCanvasSize geom.Size
	if canvas := plot.Canvas(); canvas != nil {
		contentsMargins = canvas.ContentsMargins()
		minCanvasSize = canvas.MinimumSize()
	}
	// the canvas frame is taken to be uniform here; its left margin
	// stands in for all four borders
	fw := contentsMargins[chart.AxisLeft]

	for axis := chart.AxisID(0); axis < chart.AxisCount; axis++ {
		if scl := plot.AxisWidget(axis); plot.AxisEnabled(axis) && scl != nil {
			sd := &scaleData[axis]

			hint := scl.MinimumSizeHint()
			sd.w = hint.W
			sd.h = hint.H
			sd.minLeft, sd.minRight = scl.BorderDistHint()
			sd.tickOffset = scl.Margin()
			if scl.DrawsTicks() {
				sd.tickOffset += math.Ceil(scl.MaxTickLength())
			}
		}
		canvasBorder[axis] = fw + l.canvasMargin[axis] + 1
	}

	for axis := chart.AxisID(0); axis < chart.AxisCount; axis++ {
		sd := &scaleData[axis]
		if sd.w > 0 && axis.IsHorizontal() {
			// overhanging tick labels of a horizontal axis may share
			// space with the vertical scales
			if sd.minLeft > canvasBorder[chart.AxisLeft] &&
				scaleData[chart.AxisLeft].w > 0 {

				shiftLeft := sd.minLeft - canvasBorder[chart.AxisLeft]
				if shiftLeft > scaleData[chart.AxisLeft].w {
					shiftLeft = scaleData[chart.AxisLeft].w
				}
				sd.w -= shiftLeft
			}
			if sd.minRight > canvasBorder[chart.AxisRight] &&
				scaleData[chart.AxisRight].w > 0 {

				shiftRight := sd.minRight - canvasBorder[chart.AxisRight]
				if shiftRight > scaleData[chart.AxisRight].w {
					shiftRight = scaleData[chart.AxisRight].w
				}
				sd.w -= shiftRight
			}
		}

		if sd.h > 0 && !axis.IsHorizontal() {
			if sd.minLeft > canvasBorder[chart.AxisBottom] &&
				scaleData[chart.AxisBottom].h > 0 {

				shiftBottom := sd.minLeft - canvasBorder[chart.AxisBottom]
				if shiftBottom > scaleData[chart.AxisBottom].tickOffset {
					shiftBottom = scaleData[chart.AxisBottom].tickOffset
				}
				sd.h -= shiftBottom
			}
			if sd.minLeft > canvasBorder[chart.AxisTop] &&
				scaleData[chart.AxisTop].h > 0 {

				shiftTop := sd.minRight - canvasBorder[chart.AxisTop]
				if shiftTop > scaleData[chart.AxisTop].tickOffset {
					shiftTop = scaleData[chart.AxisTop].tickOffset
				}
				sd.h -= shiftTop
			}
		}
	}

	w := scaleData[chart.AxisLeft].w + scaleData[chart.AxisRight].w
	cw := math.Max(scaleData[chart.AxisBottom].w, scaleData[chart.AxisTop].w) +
		2*(fw+1)
	w += math.Max(cw, minCanvasSize.W)

	h := scaleData[chart.AxisBottom].h + scaleData[chart.AxisTop].h
	cHeight := math.Max(scaleData[chart.AxisLeft].h, scaleData[chart.AxisRight].h) +
		2*(fw+1)
	h += math.Max(cHeight, minCanvasSize.H)

	for _, lbl := range []chart.TextLabel{plot.TitleLabel(), plot.FooterLabel()} {
		if lbl == nil || lbl.Text().IsEmpty() {
			continue
		}
		centerOnCanvas := !(plot.AxisEnabled(chart.AxisLeft) &&
			plot.AxisEnabled(chart.AxisRight))

		labelW := w
		if centerOnCanvas {
			labelW -= scaleData[chart.AxisLeft].w + scaleData[chart.AxisRight].w
		}

		labelH := lbl.HeightForWidth(labelW)
		if labelH > labelW {
			// compensate for a long label by growing the width
			w = labelH
			labelW = labelH
			if centerOnCanvas {
				w += scaleData[chart.AxisLeft].w + scaleData[chart.AxisRight].w
			}
			labelH = lbl.HeightForWidth(labelW)
		}
		h += labelH + l.spacing
	}

	if legend := plot.Legend(); legend != nil && !legend.IsEmpty() {
		if l.legendPos == chart.LegendLeft || l.legendPos == chart.LegendRight {
			legendW := legend.SizeHint().W
			legendH := legend.HeightForWidth(legendW)

			if legend.FrameWidth() > 0 {
				w += l.spacing
			}
			if legendH > h {
				legendW += legend.ScrollExtent(chart.Horizontal)
			}
			if l.legendRatio < 1.0 {
				legendW = math.Min(legendW, w/(1.0-l.legendRatio))
			}
			w += legendW + l.spacing
		} else {
			legendW := math.Min(legend.SizeHint().W, w)
			legendH := legend.HeightForWidth(legendW)

			if legend.FrameWidth() > 0 {
				h += l.spacing
			}
			if l.legendRatio < 1.0 {
				legendH = math.Min(legendH, h/(1.0-l.legendRatio))
			}
			h += legendH + l.spacing
		}
	}

	return geom.Size{W: w, H: h}
}
