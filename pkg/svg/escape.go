package svg

import "strings"

// ncr maps typographic characters to numeric character references. Some
// downstream rasterizers lack font coverage for these, so they go out as
// references; all other non-ASCII passes through unchanged.
var ncr = map[rune]string{
	'°': "&#176;",  // degree
	'±': "&#177;",  // plus-minus
	'×': "&#215;",  // multiplication
	'—': "&#8212;", // em dash
	'‘': "&#8216;", // left single quote
	'’': "&#8217;", // right single quote
	'“': "&#8220;", // left double quote
	'”': "&#8221;", // right double quote
	'²': "&#178;",  // superscript two
}

// Escape makes s safe as SVG text content or an attribute value: the five
// XML metacharacters are escaped and the typographic set above becomes
// numeric references. Always returns embeddable text, whatever the input.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&#39;")
		default:
			if ref, ok := ncr[r]; ok {
				b.WriteString(ref)
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}
