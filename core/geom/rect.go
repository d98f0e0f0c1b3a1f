package geom

import (
	"fmt"
	"math"
)

// Point is a location in the chart's coordinate space.
type Point struct {
	X, Y float64
}

// Size is a width/height pair.
type Size struct {
	W, H float64
}

// IsEmpty returns true if the size has no positive extent in at least one
// direction.
func (s Size) IsEmpty() bool {
	return s.W <= 0 || s.H <= 0
}

// ExpandedTo returns a size with each component being the maximum of s
// and other.
func (s Size) ExpandedTo(other Size) Size {
	return Size{math.Max(s.W, other.W), math.Max(s.H, other.H)}
}

// Rect is an axis-aligned rectangle with floating point edges.
// The zero Rect is invalid and serves as the "no region" sentinel.
type Rect struct {
	left, top, right, bottom float64
}

// NewRect creates a rectangle from an origin and an extent.
func NewRect(x, y, w, h float64) Rect {
	return Rect{left: x, top: y, right: x + w, bottom: y + h}
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 { return r.left }

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 { return r.top }

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 { return r.right }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.bottom }

// Width returns the horizontal extent. It may be negative for
// non-normalized rectangles.
func (r Rect) Width() float64 { return r.right - r.left }

// Height returns the vertical extent. It may be negative for
// non-normalized rectangles.
func (r Rect) Height() float64 { return r.bottom - r.top }

// Size returns the rectangle's extent.
func (r Rect) Size() Size { return Size{r.Width(), r.Height()} }

// SetLeft moves the left edge, keeping the right edge in place.
func (r *Rect) SetLeft(x float64) { r.left = x }

// SetTop moves the top edge, keeping the bottom edge in place.
func (r *Rect) SetTop(y float64) { r.top = y }

// SetRight moves the right edge, keeping the left edge in place.
func (r *Rect) SetRight(x float64) { r.right = x }

// SetBottom moves the bottom edge, keeping the top edge in place.
func (r *Rect) SetBottom(y float64) { r.bottom = y }

// SetWidth moves the right edge to give the rectangle width w.
func (r *Rect) SetWidth(w float64) { r.right = r.left + w }

// SetHeight moves the bottom edge to give the rectangle height h.
func (r *Rect) SetHeight(h float64) { r.bottom = r.top + h }

// SetRect replaces all four edges from an origin and an extent.
func (r *Rect) SetRect(x, y, w, h float64) {
	r.left, r.top, r.right, r.bottom = x, y, x+w, y+h
}

// Center returns the rectangle's midpoint.
func (r Rect) Center() Point {
	return Point{(r.left + r.right) / 2, (r.top + r.bottom) / 2}
}

// Translated returns a copy of r moved by (dx, dy).
func (r Rect) Translated(dx, dy float64) Rect {
	return Rect{r.left + dx, r.top + dy, r.right + dx, r.bottom + dy}
}

// Adjusted returns a copy of r with the given deltas added to its edges.
func (r Rect) Adjusted(dl, dt, dr, db float64) Rect {
	return Rect{r.left + dl, r.top + dt, r.right + dr, r.bottom + db}
}

// IsValid returns true if the rectangle has positive extent in both
// directions.
func (r Rect) IsValid() bool {
	return r.left < r.right && r.top < r.bottom
}

// IsEmpty is the complement of IsValid: zero or negative extent.
func (r Rect) IsEmpty() bool {
	return !r.IsValid()
}

// Normalized returns a rectangle with left ≤ right and top ≤ bottom,
// swapping edges where necessary.
func (r Rect) Normalized() Rect {
	if r.left > r.right {
		r.left, r.right = r.right, r.left
	}
	if r.top > r.bottom {
		r.top, r.bottom = r.bottom, r.top
	}
	return r
}

// Intersected returns the overlapping region of r and other, which is
// invalid if they do not overlap.
func (r Rect) Intersected(other Rect) Rect {
	return Rect{
		left:   math.Max(r.left, other.left),
		top:    math.Max(r.top, other.top),
		right:  math.Min(r.right, other.right),
		bottom: math.Min(r.bottom, other.bottom),
	}
}

// Intersects returns true if r and other share interior points.
// Rectangles that merely touch along an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.Intersected(other).IsValid()
}

// CutOut subtracts other from r and returns the bounding box of the
// remainder, provided other covers a full-width or full-height slab of r.
// This is the situation produced by legend placement, where the legend
// always occupies a slab anchored at one of the four edges. If other does
// not span r in either direction, r is returned unchanged.
func (r Rect) CutOut(other Rect) Rect {
	clipped := r.Intersected(other)
	if !clipped.IsValid() {
		return r
	}
	if clipped.top <= r.top && clipped.bottom >= r.bottom {
		// full-height slab
		if clipped.left <= r.left {
			r.left = clipped.right
			return r
		}
		if clipped.right >= r.right {
			r.right = clipped.left
			return r
		}
	}
	if clipped.left <= r.left && clipped.right >= r.right {
		// full-width slab
		if clipped.top <= r.top {
			r.top = clipped.bottom
			return r
		}
		if clipped.bottom >= r.bottom {
			r.bottom = clipped.top
			return r
		}
	}
	tracer().Infof("cut-out region %v does not span an edge of %v", other, r)
	return r
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.left, r.top, r.Width(), r.Height())
}
