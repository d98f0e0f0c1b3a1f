/*
Package font manages the fonts used for chart labels and axis scales.

Nomenclature: a "scalable font" is a font program, i.e. a variant of a
typeface with a certain weight and slant, e.g. "Helvetica regular".
A "typecase" is a scaled font, i.e. a font prepared at a certain size,
e.g. "Helvetica regular 11pt". Please note that Go (Golang) does use the
terms "font" and "face" differently–actually more or less in an opposite
manner.

The layout engine never rasterizes glyphs; typecases exist to answer
metric queries (line height, string advance) for label measurement.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>

*/
package font

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/npillmayer/chartbox/core"
)

// tracer traces with key 'chartbox.font'.
func tracer() tracing.Trace {
	return tracing.Select("chartbox.font")
}

// ScalableFont is an unscaled font program, loaded from an OpenType or
// TrueType file.
type ScalableFont struct {
	Fontname string
	Filepath string     // file path, or "internal" for embedded fonts
	Binary   []byte     // raw data
	SFNT     *sfnt.Font // the font's container
}

// TypeCase is a scalable font prepared at a fixed size.
type TypeCase struct {
	scalableFontParent *ScalableFont
	face               xfont.Face // Go uses 'face' and 'font' in an inverse manner
	size               float64
}

// NullTypeCase returns a typecase without an underlying font program.
// Metric queries on it yield zero values.
func NullTypeCase() *TypeCase {
	return &TypeCase{
		face: nil,
		size: 10,
	}
}

// LoadOpenTypeFont reads a font file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "font file not readable: %s", fontfile)
	}
	f, err := ParseOpenTypeFont(bytez)
	if f != nil {
		f.Filepath = fontfile
	}
	return f, err
}

// ParseOpenTypeFont interprets binary font data.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "corrupt font data")
	}
	f.Fontname, _ = f.SFNT.Name(nil, sfnt.NameIDFull)
	return
}

// PrepareCase scales a font to a given size (in points).
// Sizes outside of 5pt…500pt are replaced by 10pt.
func (sf *ScalableFont) PrepareCase(fontsize float64) (*TypeCase, error) {
	typecase := &TypeCase{}
	typecase.scalableFontParent = sf
	if fontsize < 5.0 || fontsize > 500.0 {
		tracer().Infof("font size must be 5pt ≤ size ≤ 500pt, is %g (set to 10pt)", fontsize)
		fontsize = 10.0
	}
	options := &opentype.FaceOptions{
		Size: fontsize,
		DPI:  72,
	}
	f, err := opentype.NewFace(sf.SFNT, options)
	if err == nil {
		typecase.face = f
		typecase.size = fontsize
	}
	return typecase, err
}

// ScalableFontParent returns the font program this typecase was scaled from.
func (tc *TypeCase) ScalableFontParent() *ScalableFont {
	return tc.scalableFontParent
}

// PtSize returns the size of this typecase in points.
func (tc *TypeCase) PtSize() float64 {
	return tc.size
}

// Face returns the font face for metric queries. May be nil for the
// null typecase.
func (tc *TypeCase) Face() xfont.Face {
	return tc.face
}

// --- Fallback font ---------------------------------------------------------

// FallbackFont returns a font to be used if everything else failes. It is
// always present. Currently we use Go Sans.
func FallbackFont() *ScalableFont {
	fallbackFontLoading.Do(func() {
		fallbackFont = loadFallbackFont()
	})
	return fallbackFont
}

var fallbackFontLoading sync.Once

var fallbackFont *ScalableFont

func loadFallbackFont() *ScalableFont {
	var err error
	gofont := &ScalableFont{
		Fontname: "Go Sans",
		Filepath: "internal",
		Binary:   goregular.TTF,
	}
	gofont.SFNT, err = sfnt.Parse(gofont.Binary)
	if err != nil {
		panic("cannot load default font") // this cannot happen
	}
	return gofont
}

// --- Font Registry ---------------------------------------------------------

// Registry caches font programs and typecases under normalized names.
// It is safe for concurrent use.
type Registry struct {
	sync.Mutex
	fonts     map[string]*ScalableFont
	typecases map[string]*TypeCase
}

var globalFontRegistry *Registry

var globalRegistryCreation sync.Once

// GlobalRegistry is the application-wide font registry.
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalFontRegistry = NewRegistry()
	})
	return globalFontRegistry
}

// NewRegistry creates an empty font registry.
func NewRegistry() *Registry {
	fr := &Registry{
		fonts:     make(map[string]*ScalableFont),
		typecases: make(map[string]*TypeCase),
	}
	return fr
}

// StoreFont puts a font into the registry, keyed by its normalized name.
func (fr *Registry) StoreFont(f *ScalableFont) {
	if f == nil {
		tracer().Errorf("registry cannot store null font")
		return
	}
	fr.Lock()
	defer fr.Unlock()
	fname := NormalizeFontname(f.Fontname)
	tracer().Debugf("registry stores font %s as %s", f.Fontname, fname)
	fr.fonts[fname] = f
}

// TypeCase scales a registered font and caches the result. If the font is
// unknown, the fallback font is scaled instead and the returned error
// carries code EMISSING.
func (fr *Registry) TypeCase(name string, size float64) (*TypeCase, error) {
	tracer().Debugf("registry searches for font %s at %.2f", name, size)
	fname := NormalizeFontname(name)
	tname := NormalizeTypeCaseName(name, size)
	fr.Lock()
	defer fr.Unlock()
	if t, ok := fr.typecases[tname]; ok {
		return t, nil
	}
	if f, ok := fr.fonts[fname]; ok {
		t, err := f.PrepareCase(size)
		tracer().Infof("font registry has font %s, caches at %.2f", fname, size)
		t.scalableFontParent = f
		fr.typecases[tname] = t
		return t, err
	}
	tracer().Infof("registry does not contain font %s", name)
	err := core.Error(core.EMISSING, "font %s not found in registry", name)
	fname = NormalizeTypeCaseName("fallback", size)
	tname = fname
	if t, ok := fr.typecases[tname]; ok {
		return t, err
	}
	f := FallbackFont()
	t, _ := f.PrepareCase(size)
	tracer().Infof("font registry caches fallback font %s at %.2f", fname, size)
	fr.fonts[fname] = f
	fr.typecases[tname] = t
	return t, err
}

// NormalizeFontname derives a registry key from a font name.
func NormalizeFontname(fname string) string {
	fname = strings.TrimSpace(fname)
	fname = strings.ReplaceAll(fname, " ", "_")
	if dot := strings.LastIndex(fname, "."); dot > 0 {
		fname = fname[:dot]
	}
	fname = strings.ToLower(fname)
	return fname
}

// NormalizeTypeCaseName derives a registry key from a font name and a size.
func NormalizeTypeCaseName(fname string, size float64) string {
	fname = NormalizeFontname(fname)
	fname = fmt.Sprintf("%s-%.2f", fname, size)
	return fname
}
