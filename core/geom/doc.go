/*
Package geom implements the geometric primitives for chart layout.

Rectangles are stored by their edges, not by origin and extent, because
the layout algorithms mostly reason in terms of moving single edges:
an axis band is carved from a canvas rectangle by pushing one edge,
corner space is reclaimed by pulling another. The zero rectangle is
invalid and doubles as the sentinel for "this region is absent".

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>

*/
package geom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chartbox.geom'.
func tracer() tracing.Trace {
	return tracing.Select("chartbox.geom")
}
