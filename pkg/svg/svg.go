// Package svg assembles self-contained SVG documents: an XML declaration,
// a namespaced root sized to the canvas, an optional embedded stylesheet,
// collected pattern/clip defs, and body elements in insertion order.
// Documents are write-once string builders; nothing here retains state
// between renders, and ids come from a per-document counter so identical
// inputs produce identical bytes.
package svg

import (
	"fmt"
	"strconv"
	"strings"
)

// Document accumulates one SVG drawing.
type Document struct {
	width  float64
	height float64
	css    string
	defs   []string
	body   []string
	idSeq  int
}

// New creates an empty document with the given canvas size in px.
func New(width, height float64) *Document {
	return &Document{width: width, height: height}
}

// Width returns the canvas width in px.
func (d *Document) Width() float64 { return d.width }

// Height returns the canvas height in px.
func (d *Document) Height() float64 { return d.height }

// SetStyle sets the embedded stylesheet body.
func (d *Document) SetStyle(css string) { d.css = css }

// NewID returns a document-unique id with the given prefix. The counter is
// monotonic per document, never random, so output stays deterministic.
func (d *Document) NewID(prefix string) string {
	d.idSeq++
	return prefix + "-" + strconv.Itoa(d.idSeq)
}

// Def appends raw markup to the <defs> block.
func (d *Document) Def(markup string) { d.defs = append(d.defs, markup) }

// Add appends a raw element to the document body.
func (d *Document) Add(markup string) { d.body = append(d.body, markup) }

// Addf appends a formatted element to the document body.
func (d *Document) Addf(format string, args ...any) {
	d.body = append(d.body, fmt.Sprintf(format, args...))
}

// OpenGroup starts a <g> element; attrs may be empty.
func (d *Document) OpenGroup(attrs string) {
	if attrs == "" {
		d.Add("<g>")
		return
	}
	d.Add("<g " + attrs + ">")
}

// CloseGroup ends the innermost open <g>.
func (d *Document) CloseGroup() { d.Add("</g>") }

// ---------------------------------------------------------------------------
// Element helpers
// ---------------------------------------------------------------------------

// attach joins an optional attribute tail onto an element head.
func attach(attrs string) string {
	if attrs == "" {
		return ""
	}
	return " " + attrs
}

// Line appends a line element.
func (d *Document) Line(x1, y1, x2, y2 float64, attrs string) {
	d.Addf(`<line x1="%s" y1="%s" x2="%s" y2="%s"%s/>`,
		Coord(x1), Coord(y1), Coord(x2), Coord(y2), attach(attrs))
}

// Rect appends a rectangle element.
func (d *Document) Rect(x, y, w, h float64, attrs string) {
	d.Addf(`<rect x="%s" y="%s" width="%s" height="%s"%s/>`,
		Coord(x), Coord(y), Coord(w), Coord(h), attach(attrs))
}

// Circle appends a circle element.
func (d *Document) Circle(cx, cy, r float64, attrs string) {
	d.Addf(`<circle cx="%s" cy="%s" r="%s"%s/>`,
		Coord(cx), Coord(cy), Coord(r), attach(attrs))
}

// Ellipse appends an ellipse element.
func (d *Document) Ellipse(cx, cy, rx, ry float64, attrs string) {
	d.Addf(`<ellipse cx="%s" cy="%s" rx="%s" ry="%s"%s/>`,
		Coord(cx), Coord(cy), Coord(rx), Coord(ry), attach(attrs))
}

// Path appends a path element with the given data attribute.
func (d *Document) Path(data, attrs string) {
	d.Addf(`<path d="%s"%s/>`, data, attach(attrs))
}

// Polygon appends a polygon element from pre-formatted point pairs.
func (d *Document) Polygon(points, attrs string) {
	d.Addf(`<polygon points="%s"%s/>`, points, attach(attrs))
}

// Polyline appends a polyline element from pre-formatted point pairs.
func (d *Document) Polyline(points, attrs string) {
	d.Addf(`<polyline points="%s"%s/>`, points, attach(attrs))
}

// Text appends a text element; content is escaped here, so callers pass
// raw strings.
func (d *Document) Text(x, y float64, attrs, content string) {
	d.Addf(`<text x="%s" y="%s"%s>%s</text>`,
		Coord(x), Coord(y), attach(attrs), Escape(content))
}

// ---------------------------------------------------------------------------
// Assembly
// ---------------------------------------------------------------------------

const header = `<?xml version="1.0" encoding="UTF-8"?>`

// String assembles the document. Safe to call more than once.
func (d *Document) String() string {
	var b strings.Builder
	b.WriteString(header + "\n")
	b.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`,
		Num(d.width), Num(d.height), Num(d.width), Num(d.height)))
	b.WriteString("\n")

	if d.css != "" {
		b.WriteString("  <style>\n")
		b.WriteString(d.css)
		if !strings.HasSuffix(d.css, "\n") {
			b.WriteString("\n")
		}
		b.WriteString("  </style>\n")
	}

	if len(d.defs) > 0 {
		b.WriteString("  <defs>\n")
		for _, def := range d.defs {
			b.WriteString("    ")
			b.WriteString(def)
			b.WriteString("\n")
		}
		b.WriteString("  </defs>\n")
	}

	for _, elem := range d.body {
		b.WriteString("  ")
		b.WriteString(elem)
		b.WriteString("\n")
	}

	b.WriteString("</svg>")
	return b.String()
}

// Coord formats a pixel coordinate with two decimals, the precision every
// geometric attribute in the document uses.
func Coord(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Num formats a number trimmed of trailing zeros, for sizes and labels.
func Num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
