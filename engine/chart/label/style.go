package label

import (
	"fmt"

	"github.com/npillmayer/cords/styled"
)

// StyleSet holds the styling of a run of label text.
type StyleSet struct {
	Bold       bool
	Italic     bool
	Underline  bool
	SizeFactor float64 // relative to the label's base font size, 1.0 = unscaled
}

// plainStyle is the style of unmarked text.
func plainStyle() StyleSet {
	return StyleSet{SizeFactor: 1.0}
}

// String is part of interface cords.styled.Style.
func (set StyleSet) String() string {
	return fmt.Sprintf("<style b=%v i=%v u=%v ×%.2f>", set.Bold, set.Italic,
		set.Underline, set.SizeFactor)
}

// Equals is part of interface cords.styled.Style, not intended for
// client usage.
func (set StyleSet) Equals(other styled.Style) bool {
	if o, ok := other.(StyleSet); ok {
		return o == set
	}
	return false
}

var _ styled.Style = StyleSet{}
