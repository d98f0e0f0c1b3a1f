package font

import (
	"github.com/flopp/go-findfont"

	"github.com/npillmayer/chartbox/core"
)

// LocateFont tries to find a system font matching a family name pattern
// and loads it. If no match is found, an error with code EMISSING is
// returned together with the fallback font, so that callers always
// receive a usable font program.
func LocateFont(pattern string) (*ScalableFont, error) {
	fpath, err := findfont.Find(pattern)
	if err != nil {
		tracer().Infof("no system font for pattern '%s'", pattern)
		return FallbackFont(), core.WrapError(err, core.EMISSING, "font not found: %s", pattern)
	}
	tracer().Debugf("found system font %s", fpath)
	f, err := LoadOpenTypeFont(fpath)
	if err != nil {
		return FallbackFont(), err
	}
	return f, nil
}
