package label

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/npillmayer/cords/styled"
	"golang.org/x/net/html"
)

// The markup subset understood by rich labels. Unknown tags are ignored
// but their content is kept.
const sizeStep = 1.2 // size factor applied by <big>/<small>

var tagPattern = regexp.MustCompile(`</?[A-Za-z][A-Za-z0-9]*[^>]*>`)

// MightBeRichText guesses whether a string contains label markup.
// Auto-format labels use this to decide between plain and rich parsing.
func MightBeRichText(s string) bool {
	return tagPattern.MatchString(s)
}

// parseMarkup strips the markup from src and collects style runs over the
// resulting plain text. The returned styled text is nil if parsing is
// impossible, in which case src is to be treated as plain text.
func parseMarkup(src string) (string, *styled.Text) {
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		tracer().Infof("label markup does not parse, treating as plain text")
		return src, nil
	}
	p := &markupParser{}
	p.walk(doc, plainStyle())
	plain := p.text.String()
	runs := styled.TextFromString(plain)
	for _, sp := range p.spans {
		if sp.to > sp.from {
			runs.Style(sp.set, sp.from, sp.to)
		}
	}
	return plain, runs
}

type styleSpan struct {
	set      StyleSet
	from, to uint64
}

type markupParser struct {
	text  strings.Builder
	spans []styleSpan
}

func (p *markupParser) walk(n *html.Node, set StyleSet) {
	switch n.Type {
	case html.TextNode:
		p.appendText(n.Data, set)
		return
	case html.ElementNode:
		switch n.Data {
		case "b", "strong":
			set.Bold = true
		case "i", "em":
			set.Italic = true
		case "u":
			set.Underline = true
		case "big":
			set.SizeFactor *= sizeStep
		case "small":
			set.SizeFactor /= sizeStep
		case "br":
			p.text.WriteByte('\n')
			return
		case "p", "div", "li", "h1", "h2", "h3", "h4", "tr":
			p.breakLine()
		case "style", "script", "head":
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		p.walk(c, set)
	}
	if n.Type == html.ElementNode {
		switch n.Data {
		case "p", "div", "li", "h1", "h2", "h3", "h4", "tr":
			p.breakLine()
		}
	}
}

// appendText writes a text node's content with whitespace runs collapsed
// to single spaces, recording a style span if the run is styled.
func (p *markupParser) appendText(s string, set StyleSet) {
	from := uint64(p.text.Len())
	prevSpace := p.atLineStart()
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !prevSpace {
				p.text.WriteByte(' ')
				prevSpace = true
			}
			continue
		}
		p.text.WriteRune(r)
		prevSpace = false
	}
	to := uint64(p.text.Len())
	if set != plainStyle() && to > from {
		p.spans = append(p.spans, styleSpan{set: set, from: from, to: to})
	}
}

func (p *markupParser) breakLine() {
	if p.text.Len() > 0 && !strings.HasSuffix(p.text.String(), "\n") {
		p.text.WriteByte('\n')
	}
}

func (p *markupParser) atLineStart() bool {
	s := p.text.String()
	return s == "" || strings.HasSuffix(s, "\n") || strings.HasSuffix(s, " ")
}
