/*
Package chart defines the vocabulary shared by the chart layout engine:
axis identifiers, legend positions, and the interfaces of the components
a chart is built from.

The layout engine itself (package layout) never holds on to concrete
widget types. It talks to a chart through the read-only interfaces
defined here, and pulls all measurement-dependent values once per layout
pass into an immutable snapshot.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>

*/
package chart

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chartbox.chart'.
func tracer() tracing.Trace {
	return tracing.Select("chartbox.chart")
}
