/*
Package label implements the text model for chart labels: titles,
footers, and axis titles.

A label's text is either plain or rich. Rich text accepts a small HTML
subset (b, i, u, em, strong, big, small, br and block-level separators)
and is kept as a styled text rope, so that runs of differently styled
characters keep their identity through measurement.

Labels do not render; they answer metric queries, most importantly
height-for-width, which the layout engine's fixed-point expansion relies
on. Line wrapping honors the UAX#14 line breaking algorithm.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>

*/
package label

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chartbox.label'.
func tracer() tracing.Trace {
	return tracing.Select("chartbox.label")
}
