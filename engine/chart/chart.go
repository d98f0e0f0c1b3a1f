package chart

import (
	"github.com/npillmayer/chartbox/core/font"
	"github.com/npillmayer/chartbox/core/geom"
	"github.com/npillmayer/chartbox/engine/chart/label"
)

// AxisID identifies one of the four axis scales of a chart. The set is
// fixed: two vertical scales (left, right) and two horizontal scales
// (bottom, top).
type AxisID int

// The four axes of a chart.
const (
	AxisLeft AxisID = iota
	AxisRight
	AxisBottom
	AxisTop

	// AxisCount is the fixed number of axes.
	AxisCount
)

// IsValid returns true for one of the four defined axes.
func (a AxisID) IsValid() bool {
	return a >= AxisLeft && a < AxisCount
}

// IsHorizontal returns true for the bottom and top axes, whose backbone
// runs horizontally.
func (a AxisID) IsHorizontal() bool {
	return a == AxisBottom || a == AxisTop
}

func (a AxisID) String() string {
	switch a {
	case AxisLeft:
		return "left axis"
	case AxisRight:
		return "right axis"
	case AxisBottom:
		return "bottom axis"
	case AxisTop:
		return "top axis"
	}
	return "no axis"
}

// LegendPosition denotes the edge of the plot a legend is attached to.
type LegendPosition int

// Legend positions.
const (
	LegendLeft LegendPosition = iota
	LegendRight
	LegendBottom
	LegendTop
)

func (pos LegendPosition) String() string {
	switch pos {
	case LegendLeft:
		return "left legend"
	case LegendRight:
		return "right legend"
	case LegendBottom:
		return "bottom legend"
	case LegendTop:
		return "top legend"
	}
	return "no legend"
}

// Orientation distinguishes the two directions of scrollbars and scales.
type Orientation int

// Orientations.
const (
	Horizontal Orientation = iota
	Vertical
)

// --- Collaborator interfaces -----------------------------------------------

// Legend is the layout engine's view of a chart legend. Implementations
// are queried read-only during a layout pass.
type Legend interface {
	// IsEmpty returns true if the legend currently has no items.
	IsEmpty() bool
	// FrameWidth is the thickness of the legend's frame, 0 for no frame.
	FrameWidth() float64
	// ScrollExtent is the extra space a scrollbar of the given orientation
	// would occupy.
	ScrollExtent(o Orientation) float64
	// SizeHint is the legend's preferred size.
	SizeHint() geom.Size
	// HeightForWidth returns the height the legend needs when constrained
	// to the given width. Non-positive results make the layout fall back
	// to the size hint's height.
	HeightForWidth(width float64) float64
}

// TextLabel is the layout engine's view of the title and footer labels.
type TextLabel interface {
	// Text returns the label's content.
	Text() label.Text
	// Font is the label widget's font, used for the text unless the text
	// insists on its own font.
	Font() *font.TypeCase
	// FrameWidth is the thickness of the label's frame, 0 for no frame.
	FrameWidth() float64
	// HeightForWidth returns the label's total height (text plus frame)
	// for a given width.
	HeightForWidth(width float64) float64
}

// ScaleWidget is the layout engine's view of an axis scale.
type ScaleWidget interface {
	// Font is the font used for the tick labels.
	Font() *font.TypeCase
	// StartBorderDist and EndBorderDist are the clearances the scale
	// currently needs before its first and after its last tick label.
	StartBorderDist() float64
	EndBorderDist() float64
	// BorderDistHint returns the minimal such clearances.
	BorderDistHint() (start, end float64)
	// Margin is the distance between the scale's backbone and its
	// canvas-facing edge, excluding tick marks.
	Margin() float64
	// DrawsTicks returns true if tick marks are part of the scale's
	// rendition.
	DrawsTicks() bool
	// MaxTickLength is the length of the longest tick mark.
	MaxTickLength() float64
	// DimForLength returns the thickness the scale needs, perpendicular
	// to its backbone, when the backbone has the given length.
	DimForLength(length float64, f *font.TypeCase) float64
	// Title returns the axis title, which may be empty.
	Title() label.Text
	// TitleHeightForWidth returns the height of the axis title band when
	// constrained to the given width.
	TitleHeightForWidth(width float64) float64
	// MinimumSizeHint is the smallest acceptable size for the scale.
	MinimumSizeHint() geom.Size
}

// Canvas is the layout engine's view of the central plotting area.
type Canvas interface {
	// ContentsMargins returns the canvas frame thickness per edge,
	// indexed by AxisID.
	ContentsMargins() [AxisCount]float64
	// MinimumSize is the smallest acceptable canvas size.
	MinimumSize() geom.Size
}

// Chart bundles the components the layout engine needs to see. Any of the
// component accessors may return nil, in which case the corresponding
// region simply does not take part in the layout.
type Chart interface {
	Legend() Legend
	TitleLabel() TextLabel
	FooterLabel() TextLabel
	AxisEnabled(axis AxisID) bool
	AxisWidget(axis AxisID) ScaleWidget
	Canvas() Canvas
}
