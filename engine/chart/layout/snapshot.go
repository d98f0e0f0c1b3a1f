package layout

import (
	"math"

	"github.com/npillmayer/chartbox/core/font"
	"github.com/npillmayer/chartbox/core/geom"
	"github.com/npillmayer/chartbox/engine/chart"
	"github.com/npillmayer/chartbox/engine/chart/label"
)

// unrestricted is a backbone length long enough that no tick or title
// label ever wraps.
const unrestricted = float64(1 << 24)

// Activate must not call back into the chart components while it moves
// rectangles around, so all component metrics are captured up front
// into a layoutData snapshot.

type legendData struct {
	frameWidth    float64
	hScrollExtent float64
	vScrollExtent float64
	hint          geom.Size
}

type labelData struct {
	text       label.Text
	frameWidth float64
}

type scaleData struct {
	isEnabled       bool
	scaleWidget     chart.ScaleWidget
	scaleFont       *font.TypeCase
	start           float64
	end             float64
	baseLineOffset  float64
	tickOffset      float64
	dimWithoutTitle float64
}

type canvasData struct {
	contentsMargins [chart.AxisCount]float64
}

type layoutData struct {
	legend legendData
	title  labelData
	footer labelData
	scale  [chart.AxisCount]scaleData
	canvas canvasData
}

// capture snapshots the metrics of all chart components. Components
// reported as nil stay at their zero data, which layout code treats as
// absent.
func (d *layoutData) capture(plot chart.Chart, rect geom.Rect) {
	*d = layoutData{}
	if plot == nil {
		return
	}

	if legend := plot.Legend(); legend != nil {
		d.legend.frameWidth = legend.FrameWidth()
		d.legend.hScrollExtent = legend.ScrollExtent(chart.Horizontal)
		d.legend.vScrollExtent = legend.ScrollExtent(chart.Vertical)

		hint := legend.SizeHint()
		w := math.Min(hint.W, math.Floor(rect.Width()))
		h := legend.HeightForWidth(w)
		if h <= 0 {
			h = hint.H
		}
		d.legend.hint = geom.Size{W: w, H: h}
	}

	if lbl := plot.TitleLabel(); lbl != nil {
		d.title.text = lbl.Text()
		if !d.title.text.TestPaintAttribute(label.PaintUsingTextFont) {
			d.title.text.SetFont(lbl.Font())
		}
		d.title.frameWidth = lbl.FrameWidth()
	}

	if lbl := plot.FooterLabel(); lbl != nil {
		d.footer.text = lbl.Text()
		if !d.footer.text.TestPaintAttribute(label.PaintUsingTextFont) {
			d.footer.text.SetFont(lbl.Font())
		}
		d.footer.frameWidth = lbl.FrameWidth()
	}

	for axis := chart.AxisID(0); axis < chart.AxisCount; axis++ {
		scaleWidget := plot.AxisWidget(axis)
		if !plot.AxisEnabled(axis) || scaleWidget == nil {
			continue
		}
		sd := &d.scale[axis]
		sd.isEnabled = true
		sd.scaleWidget = scaleWidget
		sd.scaleFont = scaleWidget.Font()

		sd.start = scaleWidget.StartBorderDist()
		sd.end = scaleWidget.EndBorderDist()

		sd.baseLineOffset = scaleWidget.Margin()
		sd.tickOffset = scaleWidget.Margin()
		if scaleWidget.DrawsTicks() {
			sd.tickOffset += scaleWidget.MaxTickLength()
		}

		sd.dimWithoutTitle = scaleWidget.DimForLength(unrestricted, sd.scaleFont)
		if !scaleWidget.Title().IsEmpty() {
			sd.dimWithoutTitle -= scaleWidget.TitleHeightForWidth(unrestricted)
		}
	}

	if canvas := plot.Canvas(); canvas != nil {
		d.canvas.contentsMargins = canvas.ContentsMargins()
	}
}
