package layout

import (
	"math"

	"github.com/npillmayer/chartbox/core/geom"
	"github.com/npillmayer/chartbox/engine/chart"
)

// alignScales stretches the axis scales into the empty plot corners and
// aligns their tick marks with the canvas borders. When a side's canvas
// alignment is on, overhanging tick labels eat into the canvas instead.
func (l *Layout) alignScales(options Options,
	canvasRect *geom.Rect, scaleRect *[chart.AxisCount]geom.Rect) {

	var backboneOffset [chart.AxisCount]float64
	for axis := chart.AxisID(0); axis < chart.AxisCount; axis++ {
		backboneOffset[axis] = 0
		if !l.alignCanvasToScales[axis] {
			backboneOffset[axis] += l.canvasMargin[axis]
		}
		if options&IgnoreFrames == 0 {
			backboneOffset[axis] += l.data.canvas.contentsMargins[axis]
		}
	}

	for axis := chart.AxisID(0); axis < chart.AxisCount; axis++ {
		if !scaleRect[axis].IsValid() {
			continue
		}

		startDist := l.data.scale[axis].start
		endDist := l.data.scale[axis].end

		axisRect := &scaleRect[axis]

		if axis.IsHorizontal() {
			leftScaleRect := scaleRect[chart.AxisLeft]
			leftOffset := backboneOffset[chart.AxisLeft] - startDist

			if leftScaleRect.IsValid() {
				dx := leftOffset + leftScaleRect.Width()
				if l.alignCanvasToScales[chart.AxisLeft] && dx < 0.0 {
					// the axis label overhang needs more space than
					// the width of the left scale
					cLeft := canvasRect.Left()
					canvasRect.SetLeft(math.Max(cLeft, axisRect.Left()-dx))
				} else {
					minLeft := leftScaleRect.Left()
					left := axisRect.Left() + leftOffset
					axisRect.SetLeft(math.Max(left, minLeft))
				}
			} else {
				if l.alignCanvasToScales[chart.AxisLeft] && leftOffset < 0 {
					canvasRect.SetLeft(math.Max(canvasRect.Left(),
						axisRect.Left()-leftOffset))
				} else if leftOffset > 0 {
					axisRect.SetLeft(axisRect.Left() + leftOffset)
				}
			}

			rightScaleRect := scaleRect[chart.AxisRight]
			rightOffset := backboneOffset[chart.AxisRight] - endDist + 1

			if rightScaleRect.IsValid() {
				dx := rightOffset + rightScaleRect.Width()
				if l.alignCanvasToScales[chart.AxisRight] && dx < 0 {
					// the axis label overhang needs more space than
					// the width of the right scale
					cRight := canvasRect.Right()
					canvasRect.SetRight(math.Min(cRight, axisRect.Right()+dx))
				}
				maxRight := rightScaleRect.Right()
				right := axisRect.Right() - rightOffset
				axisRect.SetRight(math.Min(right, maxRight))
			} else {
				if l.alignCanvasToScales[chart.AxisRight] && rightOffset < 0 {
					canvasRect.SetRight(math.Min(canvasRect.Right(),
						axisRect.Right()+rightOffset))
				} else if rightOffset > 0 {
					axisRect.SetRight(axisRect.Right() - rightOffset)
				}
			}
		} else {
			bottomScaleRect := scaleRect[chart.AxisBottom]
			bottomOffset := backboneOffset[chart.AxisBottom] - endDist + 1

			if bottomScaleRect.IsValid() {
				dy := bottomOffset + bottomScaleRect.Height()
				if l.alignCanvasToScales[chart.AxisBottom] && dy < 0.0 {
					// the axis label overhang needs more space than
					// the height of the bottom scale
					cBottom := canvasRect.Bottom()
					canvasRect.SetBottom(math.Min(cBottom, axisRect.Bottom()+dy))
				} else {
					maxBottom := bottomScaleRect.Top() +
						l.data.scale[chart.AxisBottom].tickOffset
					bottom := axisRect.Bottom() - bottomOffset
					axisRect.SetBottom(math.Min(bottom, maxBottom))
				}
			} else {
				if l.alignCanvasToScales[chart.AxisBottom] && bottomOffset < 0 {
					canvasRect.SetBottom(math.Min(canvasRect.Bottom(),
						axisRect.Bottom()+bottomOffset))
				} else if bottomOffset > 0 {
					axisRect.SetBottom(axisRect.Bottom() - bottomOffset)
				}
			}

			topScaleRect := scaleRect[chart.AxisTop]
			topOffset := backboneOffset[chart.AxisTop] - startDist

			if topScaleRect.IsValid() {
				dy := topOffset + topScaleRect.Height()
				if l.alignCanvasToScales[chart.AxisTop] && dy < 0 {
					// the axis label overhang needs more space than
					// the height of the top scale
					cTop := canvasRect.Top()
					canvasRect.SetTop(math.Max(cTop, axisRect.Top()-dy))
				} else {
					minTop := topScaleRect.Bottom() -
						l.data.scale[chart.AxisTop].tickOffset
					top := axisRect.Top() + topOffset
					axisRect.SetTop(math.Max(top, minTop))
				}
			} else {
				if l.alignCanvasToScales[chart.AxisTop] && topOffset < 0 {
					canvasRect.SetTop(math.Max(canvasRect.Top(),
						axisRect.Top()-topOffset))
				} else if topOffset > 0 {
					axisRect.SetTop(axisRect.Top() + topOffset)
				}
			}
		}
	}

	// the canvas is now aligned to the scale with the largest border
	// distances; realign the other scales to the canvas

	for axis := chart.AxisID(0); axis < chart.AxisCount; axis++ {
		sRect := &scaleRect[axis]
		if !sRect.IsValid() {
			continue
		}

		if axis.IsHorizontal() {
			if l.alignCanvasToScales[chart.AxisLeft] {
				x := canvasRect.Left() - l.data.scale[axis].start
				if options&IgnoreFrames == 0 {
					x += l.data.canvas.contentsMargins[chart.AxisLeft]
				}
				sRect.SetLeft(x)
			}
			if l.alignCanvasToScales[chart.AxisRight] {
				x := canvasRect.Right() - 1.0 + l.data.scale[axis].end
				if options&IgnoreFrames == 0 {
					x -= l.data.canvas.contentsMargins[chart.AxisRight]
				}
				sRect.SetRight(x)
			}
			if l.alignCanvasToScales[axis] {
				if axis == chart.AxisTop {
					sRect.SetBottom(canvasRect.Top())
				} else {
					sRect.SetTop(canvasRect.Bottom())
				}
			}
		} else {
			if l.alignCanvasToScales[chart.AxisTop] {
				y := canvasRect.Top() - l.data.scale[axis].start
				if options&IgnoreFrames == 0 {
					y += l.data.canvas.contentsMargins[chart.AxisTop]
				}
				sRect.SetTop(y)
			}
			if l.alignCanvasToScales[chart.AxisBottom] {
				y := canvasRect.Bottom() - 1.0 + l.data.scale[axis].end
				if options&IgnoreFrames == 0 {
					y -= l.data.canvas.contentsMargins[chart.AxisBottom]
				}
				sRect.SetBottom(y)
			}
			if l.alignCanvasToScales[axis] {
				if axis == chart.AxisLeft {
					sRect.SetRight(canvasRect.Left())
				} else {
					sRect.SetLeft(canvasRect.Right())
				}
			}
		}
	}
}
