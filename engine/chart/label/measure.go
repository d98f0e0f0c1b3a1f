package label

import (
	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"

	"github.com/npillmayer/chartbox/core/font"
)

// Measurer answers the metric queries label measurement is built from.
// Implementations must be safe for reuse across labels.
type Measurer interface {
	// LineHeight is the vertical advance between two baselines.
	LineHeight(f *font.TypeCase) float64
	// Advance is the horizontal extent of a string.
	Advance(s string, f *font.TypeCase) float64
}

// --- Face metrics -----------------------------------------------------------

type faceMeasurer struct{}

// FaceMetrics measures with the metrics of the typecase's font face.
// This is the default measurer for labels.
func FaceMetrics() Measurer {
	return faceMeasurer{}
}

func (faceMeasurer) LineHeight(f *font.TypeCase) float64 {
	if f == nil || f.Face() == nil {
		return 0
	}
	return fixed2float(f.Face().Metrics().Height)
}

func (faceMeasurer) Advance(s string, f *font.TypeCase) float64 {
	if f == nil || f.Face() == nil {
		return 0
	}
	return fixed2float(xfont.MeasureString(f.Face(), s))
}

func fixed2float(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}

// --- Monospace metrics ------------------------------------------------------

type monospace struct {
	em      float64
	context *uax11.Context
}

// Monospace returns a measurer for grid-like rendition, where every
// grapheme occupies one half-em cell (or two for wide East Asian
// characters). An em size of 0 defers to the typecase's point size.
//
// Monospace measurement is fully deterministic and independent of any
// font file, which makes it the measurer of choice for headless use.
func Monospace(em float64) Measurer {
	grapheme.SetupGraphemeClasses()
	return &monospace{
		em:      em,
		context: uax11.LatinContext,
	}
}

func (ms *monospace) emsize(f *font.TypeCase) float64 {
	if ms.em > 0 {
		return ms.em
	}
	if f != nil {
		return f.PtSize()
	}
	return 10
}

func (ms *monospace) LineHeight(f *font.TypeCase) float64 {
	return 1.2 * ms.emsize(f)
}

func (ms *monospace) Advance(s string, f *font.TypeCase) float64 {
	em := ms.emsize(f)
	gstr := grapheme.StringFromString(s)
	w := 0.0
	for i := 0; i < gstr.Len(); i++ {
		cells := uax11.Width([]byte(gstr.Nth(i)), ms.context)
		w += float64(cells) * em / 2
	}
	return w
}
