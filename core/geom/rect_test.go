package geom

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestRectEdges(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartbox.geom")
	defer teardown()
	//
	r := NewRect(10, 20, 100, 50)
	assert.Equal(t, 10.0, r.Left())
	assert.Equal(t, 20.0, r.Top())
	assert.Equal(t, 110.0, r.Right())
	assert.Equal(t, 70.0, r.Bottom())
	assert.Equal(t, Size{100, 50}, r.Size())
	//
	r.SetLeft(30)
	assert.Equal(t, 80.0, r.Width())
	r.SetWidth(100)
	assert.Equal(t, 130.0, r.Right())
}

func TestRectZeroIsInvalid(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartbox.geom")
	defer teardown()
	//
	var r Rect
	assert.False(t, r.IsValid())
	assert.True(t, r.IsEmpty())
}

func TestRectNormalized(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartbox.geom")
	defer teardown()
	//
	r := Rect{left: 50, top: 80, right: 10, bottom: 20}
	assert.True(t, r.IsEmpty())
	n := r.Normalized()
	assert.True(t, n.IsValid())
	assert.Equal(t, 10.0, n.Left())
	assert.Equal(t, 20.0, n.Top())
	assert.Equal(t, 40.0, n.Width())
}

func TestRectTransforms(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartbox.geom")
	defer teardown()
	//
	r := NewRect(10, 20, 100, 50)
	assert.Equal(t, Point{60, 45}, r.Center())
	assert.Equal(t, NewRect(15, 18, 100, 50), r.Translated(5, -2))
	assert.Equal(t, NewRect(11, 21, 98, 48), r.Adjusted(1, 1, -1, -1))
}

func TestRectIntersection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartbox.geom")
	defer teardown()
	//
	a := NewRect(0, 0, 100, 100)
	b := NewRect(50, 50, 100, 100)
	assert.True(t, a.Intersects(b))
	assert.Equal(t, NewRect(50, 50, 50, 50), a.Intersected(b))
	// touching edges do not intersect
	c := NewRect(100, 0, 10, 100)
	assert.False(t, a.Intersects(c))
}

func TestRectCutOut(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartbox.geom")
	defer teardown()
	//
	r := NewRect(0, 0, 800, 600)
	// legend slab on the right edge, spanning the full height
	legend := NewRect(700, 0, 100, 600)
	assert.Equal(t, NewRect(0, 0, 700, 600), r.CutOut(legend))
	// legend slab on the bottom edge
	legend = NewRect(0, 500, 800, 100)
	assert.Equal(t, NewRect(0, 0, 800, 500), r.CutOut(legend))
	// a rect not spanning any edge leaves r untouched
	blob := NewRect(100, 100, 10, 10)
	assert.Equal(t, r, r.CutOut(blob))
	// disjoint rect leaves r untouched
	away := NewRect(1000, 1000, 10, 10)
	assert.Equal(t, r, r.CutOut(away))
}
