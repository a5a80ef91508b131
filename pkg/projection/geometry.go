// Package projection is the 2D drawing engine: it converts a building model
// into scaled, convention-compliant floor plans, elevations and sections as
// SVG markup. Every projector is a pure function of the model and its
// options; malformed input degrades to a visible-but-harmless artifact, and
// identical input always produces identical bytes.
package projection

import (
	"math"
	"strings"

	"github.com/atelierpx/orthograph/pkg/model"
	"github.com/atelierpx/orthograph/pkg/svg"
)

// PolygonToPath converts a polygon in model mm to SVG path data at the
// given pixel scale: "M x,y L x,y ... Z". An empty polygon yields "".
func PolygonToPath(poly []model.Point, pxPerMM float64) string {
	if len(poly) == 0 {
		return ""
	}
	var b strings.Builder
	for i, p := range poly {
		if i == 0 {
			b.WriteString("M ")
		} else {
			b.WriteString(" L ")
		}
		b.WriteString(svg.Coord(p.X * pxPerMM))
		b.WriteByte(',')
		b.WriteString(svg.Coord(p.Y * pxPerMM))
	}
	b.WriteString(" Z")
	return b.String()
}

// InsetPolygon shrinks a polygon toward its centroid: each vertex moves
// inset mm closer on each axis, clamped so it never crosses the centroid.
// An axis-aligned rectangle comes back shrunk by exactly inset on every
// side, which is what the wall-thickness ring relies on.
func InsetPolygon(poly []model.Point, inset float64) []model.Point {
	if len(poly) == 0 {
		return nil
	}
	var cx, cy float64
	for _, p := range poly {
		cx += p.X
		cy += p.Y
	}
	n := float64(len(poly))
	cx /= n
	cy /= n

	out := make([]model.Point, len(poly))
	for i, p := range poly {
		out[i] = model.Point{
			X: insetCoord(p.X, cx, inset),
			Y: insetCoord(p.Y, cy, inset),
		}
	}
	return out
}

func insetCoord(v, center, inset float64) float64 {
	d := v - center
	if d == 0 {
		return v
	}
	scale := (math.Abs(d) - inset) / math.Abs(d)
	if scale < 0 {
		scale = 0
	}
	return center + d*scale
}

// BoundsOf returns the axis-aligned extent of a polygon in model mm.
func BoundsOf(poly []model.Point) model.BoundingBox {
	if len(poly) == 0 {
		return model.BoundingBox{}
	}
	b := model.BoundingBox{MinX: poly[0].X, MaxX: poly[0].X, MinY: poly[0].Y, MaxY: poly[0].Y}
	for _, p := range poly[1:] {
		b.MinX = min(b.MinX, p.X)
		b.MaxX = max(b.MaxX, p.X)
		b.MinY = min(b.MinY, p.Y)
		b.MaxY = max(b.MaxY, p.Y)
	}
	return b
}

// reversePolygon returns the polygon with winding order flipped, for the
// even-odd ring fill.
func reversePolygon(poly []model.Point) []model.Point {
	out := make([]model.Point, len(poly))
	for i, p := range poly {
		out[len(poly)-1-i] = p
	}
	return out
}

// posHash maps a position to a stable pseudo-random value in [0,1). The
// landscaping texture uses it instead of an entropy source so repeated
// renders stay byte-identical.
func posHash(x float64) float64 {
	v := math.Sin(x*12.9898) * 43758.5453
	return v - math.Floor(v)
}
