package label

import (
	"bufio"
	"strings"
	"sync"

	"github.com/npillmayer/cords/styled"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
	"golang.org/x/text/unicode/norm"

	"github.com/npillmayer/chartbox/core/font"
)

// Format selects how a label's source string is interpreted.
type Format int

// Label text formats.
const (
	// AutoText sniffs the source for markup and falls back to plain text.
	AutoText Format = iota
	PlainText
	RichText
)

// PaintAttribute is a bitset of rendition flags carried by a text.
type PaintAttribute uint8

// Paint attributes.
const (
	// PaintUsingTextFont marks a text as insisting on its own font,
	// protecting it from the label widget's font override.
	PaintUsingTextFont PaintAttribute = 1 << iota
)

// Text is the content of a chart label. The zero value is an empty
// plain text.
//
// Text is a value type; copies share the underlying style runs, which
// are immutable after construction.
type Text struct {
	src    string
	format Format // resolved to PlainText or RichText
	plain  string // src with markup stripped
	styles *styled.Text
	fnt    *font.TypeCase
	attrs  PaintAttribute
	meter  Measurer
}

// NewText creates a label text, auto-detecting markup.
func NewText(s string) Text {
	return NewTextWithFormat(s, AutoText)
}

// NewRichText creates a label text that is always parsed as markup.
func NewRichText(s string) Text {
	return NewTextWithFormat(s, RichText)
}

// NewTextWithFormat creates a label text with an explicit format.
func NewTextWithFormat(s string, f Format) Text {
	t := Text{src: s}
	rich := f == RichText || (f == AutoText && MightBeRichText(s))
	if rich {
		t.format = RichText
		t.plain, t.styles = parseMarkup(s)
	} else {
		t.format = PlainText
		t.plain = s
	}
	return t
}

// IsEmpty returns true if the text has no printable content.
func (t Text) IsEmpty() bool {
	return t.plain == ""
}

// String returns the text content with markup stripped.
func (t Text) String() string {
	return t.plain
}

// Format returns the resolved format, PlainText or RichText.
func (t Text) Format() Format {
	return t.format
}

// SetFont sets the font the text is measured with.
func (t *Text) SetFont(f *font.TypeCase) {
	t.fnt = f
}

// Font returns the text's font, nil if none has been set.
func (t Text) Font() *font.TypeCase {
	return t.fnt
}

// SetPaintAttribute switches a paint attribute on or off.
func (t *Text) SetPaintAttribute(a PaintAttribute, on bool) {
	if on {
		t.attrs |= a
	} else {
		t.attrs &^= a
	}
}

// TestPaintAttribute returns true if the given attribute is set.
func (t Text) TestPaintAttribute(a PaintAttribute) bool {
	return t.attrs&a != 0
}

// SetMeasurer overrides the measurer used for metric queries.
func (t *Text) SetMeasurer(m Measurer) {
	t.meter = m
}

// --- Measurement ------------------------------------------------------------

var defaultCaseLoading sync.Once
var defaultCase *font.TypeCase

func defaultTypeCase() *font.TypeCase {
	defaultCaseLoading.Do(func() {
		defaultCase, _ = font.FallbackFont().PrepareCase(10)
	})
	return defaultCase
}

func (t Text) measurer() Measurer {
	if t.meter != nil {
		return t.meter
	}
	return FaceMetrics()
}

func (t Text) effectiveFont() *font.TypeCase {
	if t.fnt != nil {
		return t.fnt
	}
	return defaultTypeCase()
}

// lineHeight is the baseline distance for this text, scaled up if any
// style run enlarges the font.
func (t Text) lineHeight() float64 {
	lh := t.measurer().LineHeight(t.effectiveFont())
	if t.styles != nil {
		maxFactor := 1.0
		t.styles.EachStyleRun(func(content string, sty styled.Style, pos uint64) error {
			if set, ok := sty.(StyleSet); ok && set.SizeFactor > maxFactor {
				maxFactor = set.SizeFactor
			}
			return nil
		})
		lh *= maxFactor
	}
	return lh
}

// advance measures a fragment which starts at byte position pos of the
// plain text, honoring the style run active there.
func (t Text) advance(frag string, pos uint64) float64 {
	adv := t.measurer().Advance(frag, t.effectiveFont())
	if t.styles != nil {
		if sty, _, err := t.styles.StyleAt(pos); err == nil {
			if set, ok := sty.(StyleSet); ok && set.SizeFactor > 0 {
				adv *= set.SizeFactor
			}
		}
	}
	return adv
}

// Width returns the horizontal extent of the text without any wrapping,
// i.e. the width of its widest hard line.
func (t Text) Width() float64 {
	if t.IsEmpty() {
		return 0
	}
	w := 0.0
	pos := uint64(0)
	for _, para := range strings.Split(t.plain, "\n") {
		if pw := t.advance(para, pos); pw > w {
			w = pw
		}
		pos += uint64(len(para)) + 1
	}
	return w
}

// HeightForWidth returns the height the text occupies when wrapped into
// lines no wider than w. Wrap opportunities follow UAX#14; a fragment
// without any break opportunity may overflow w and still counts as one
// line. Hard line breaks are honored unconditionally.
func (t Text) HeightForWidth(w float64) float64 {
	if t.IsEmpty() {
		return 0
	}
	lines := 0
	pos := uint64(0)
	for _, para := range strings.Split(t.plain, "\n") {
		lines += t.wrappedLineCount(para, pos, w)
		pos += uint64(len(para)) + 1
	}
	return float64(lines) * t.lineHeight()
}

func (t Text) wrappedLineCount(para string, pos uint64, w float64) int {
	if para == "" {
		return 1
	}
	seg := segment.NewSegmenter(uax14.NewLineWrap())
	seg.Init(bufio.NewReader(norm.NFC.Reader(strings.NewReader(para))))
	lines, cur := 1, 0.0
	off := pos
	for seg.Next() {
		frag := seg.Text()
		fragpos := off
		off += uint64(len(frag))
		adv := t.advance(frag, fragpos)
		if cur > 0 && cur+adv > w {
			lines++
			// a fragment moved to a fresh line sheds its leading blanks
			trimmed := strings.TrimLeft(frag, " \t")
			cur = t.advance(trimmed, fragpos+uint64(len(frag)-len(trimmed)))
			continue
		}
		cur += adv
	}
	tracer().Debugf("label text wraps into %d line(s) at width %.1f", lines, w)
	return lines
}
