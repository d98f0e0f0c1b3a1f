/*
Package layout organizes the geometry of a chart's visual regions.

A chart consists of a central canvas, up to four axis scales, a title,
a footer, and a legend. Activate distributes a given plot rectangle
among these regions and stores the resulting geometries, which remain
readable until the next Invalidate. The distribution is deterministic:
identical inputs produce identical rectangles.

The interesting part is the mutual dependency of the region sizes.
Wrapped label text is higher when its line is shorter, a vertical axis
narrows the line available to horizontal text, and a grown horizontal
band shortens the vertical axes in turn. Activate resolves this with a
fixed-point expansion and afterwards aligns the axis tick marks with the
canvas borders, spending the empty plot corners on overhanging tick
labels.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>

*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chartbox.layout'.
func tracer() tracing.Trace {
	return tracing.Select("chartbox.layout")
}
