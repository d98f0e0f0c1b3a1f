package layout

import (
	"math"

	"github.com/npillmayer/chartbox/core/geom"
	"github.com/npillmayer/chartbox/engine/chart"
)

// expansionLimit bounds the expansion rounds. Each round can only grow
// dimensions, and a growth of one of the 4 axes, the title or the
// footer is what forces another round, so 6 rounds settle any
// well-behaved chart.
const expansionLimit = 6

// expandLineBreaks resolves the mutual dependency between the heights
// of title, footer, and horizontal axes on one side and the widths of
// the vertical axes on the other. Every grown band shortens the lines
// available to the other bands' wrapped text, so the dimensions are
// expanded iteratively until they no longer change.
func (l *Layout) expandLineBreaks(options Options, rect geom.Rect) (
	dimTitle, dimFooter float64, dimAxis [chart.AxisCount]float64) {

	var backboneOffset [chart.AxisCount]float64
	for axis := chart.AxisID(0); axis < chart.AxisCount; axis++ {
		backboneOffset[axis] = 0
		if options&IgnoreFrames == 0 {
			backboneOffset[axis] += l.data.canvas.contentsMargins[axis]
		}
		if !l.alignCanvasToScales[axis] {
			backboneOffset[axis] += l.canvasMargin[axis]
		}
	}

	done := false
	for iter := 0; !done && iter < expansionLimit; iter++ {
		done = true

		// the size for the 4 axes plus title and footer depends on
		// each other; expand all line breaks until the dimensions
		// remain unchanged

		if options&IgnoreTitle == 0 && !l.data.title.text.IsEmpty() {
			w := rect.Width()
			if l.data.scale[chart.AxisLeft].isEnabled != l.data.scale[chart.AxisRight].isEnabled {
				// centered over the canvas, not the complete plot
				w -= dimAxis[chart.AxisLeft] + dimAxis[chart.AxisRight]
			}
			d := math.Ceil(l.data.title.text.HeightForWidth(w))
			if options&IgnoreFrames == 0 {
				d += 2 * l.data.title.frameWidth
			}
			if d > dimTitle {
				dimTitle = d
				done = false
			}
		}

		if options&IgnoreFooter == 0 && !l.data.footer.text.IsEmpty() {
			w := rect.Width()
			if l.data.scale[chart.AxisLeft].isEnabled != l.data.scale[chart.AxisRight].isEnabled {
				// centered over the canvas, not the complete plot
				w -= dimAxis[chart.AxisLeft] + dimAxis[chart.AxisRight]
			}
			d := math.Ceil(l.data.footer.text.HeightForWidth(w))
			if options&IgnoreFrames == 0 {
				d += 2 * l.data.footer.frameWidth
			}
			if d > dimFooter {
				dimFooter = d
				done = false
			}
		}

		for axis := chart.AxisID(0); axis < chart.AxisCount; axis++ {
			sd := &l.data.scale[axis]
			if !sd.isEnabled {
				continue
			}

			var length float64
			if axis.IsHorizontal() {
				length = rect.Width() - dimAxis[chart.AxisLeft] - dimAxis[chart.AxisRight]
				length -= sd.start + sd.end
				if dimAxis[chart.AxisRight] > 0 {
					length -= 1
				}
				length += math.Min(dimAxis[chart.AxisLeft],
					sd.start-backboneOffset[chart.AxisLeft])
				length += math.Min(dimAxis[chart.AxisRight],
					sd.end-backboneOffset[chart.AxisRight])
			} else {
				length = rect.Height() - dimAxis[chart.AxisTop] - dimAxis[chart.AxisBottom]
				length -= sd.start + sd.end
				length -= 1

				if dimAxis[chart.AxisBottom] <= 0 {
					length -= 1
				}
				if dimAxis[chart.AxisTop] <= 0 {
					length -= 1
				}

				// a horizontal axis between the backbone and the
				// border of the canvas grants room for overlapping
				// labels
				if dimAxis[chart.AxisBottom] > 0 {
					length += math.Min(
						l.data.scale[chart.AxisBottom].tickOffset,
						sd.start-backboneOffset[chart.AxisBottom])
				}
				if dimAxis[chart.AxisTop] > 0 {
					length += math.Min(
						l.data.scale[chart.AxisTop].tickOffset,
						sd.end-backboneOffset[chart.AxisTop])
				}

				if dimTitle > 0 {
					length -= dimTitle + l.spacing
				}
			}

			d := sd.dimWithoutTitle
			if !sd.scaleWidget.Title().IsEmpty() {
				d += sd.scaleWidget.TitleHeightForWidth(math.Floor(length))
			}

			if d > dimAxis[axis] {
				dimAxis[axis] = d
				done = false
			}
		}
	}
	if !done {
		tracer().Infof("expansion of line breaks did not settle after %d rounds", expansionLimit)
	}
	return dimTitle, dimFooter, dimAxis
}
