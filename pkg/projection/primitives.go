package projection

import (
	"fmt"
	"math"
	"strings"

	"github.com/atelierpx/orthograph/pkg/model"
	"github.com/atelierpx/orthograph/pkg/style"
	"github.com/atelierpx/orthograph/pkg/svg"
)

// baseCSS builds the embedded stylesheet every projector shares.
func baseCSS(t style.Theme) string {
	return fmt.Sprintf(`    text { font-family: %s; font-size: %spx; fill: %s; }
    .title { font-size: %spx; font-weight: bold; fill: %s; }
    .dim { font-size: 9px; fill: %s; }
    .small { font-size: 8px; fill: %s; }`,
		t.FontFamily, svg.Num(t.FontSize), t.Colors.Text,
		svg.Num(t.FontSize+2), t.Colors.TitleText,
		t.Colors.Dimension, t.Colors.Dimension)
}

// ---------------------------------------------------------------------------
// Dimension lines
// ---------------------------------------------------------------------------

const (
	dimTick  = 6 // extension tick half-length, px
	dimArrow = 7 // arrowhead length, px
)

// dimensionLine draws an axis-aligned dimension string: extension ticks at
// both ends, the dimension line, inward-pointing arrowheads and a centered
// label. vertical lays the run along Y and rotates the label -90.
func dimensionLine(d *svg.Document, t style.Theme, x1, y1, x2, y2 float64, text string, vertical bool) {
	stroke := fmt.Sprintf(`stroke="%s" stroke-width="0.8"`, t.Colors.Dimension)
	d.Line(x1, y1, x2, y2, stroke)

	if vertical {
		d.Line(x1-dimTick, y1, x1+dimTick, y1, stroke)
		d.Line(x2-dimTick, y2, x2+dimTick, y2, stroke)
		top, bottom := min(y1, y2), max(y1, y2)
		arrowhead(d, t, x1, top, 0, 1)
		arrowhead(d, t, x1, bottom, 0, -1)
		mid := (y1 + y2) / 2
		d.Addf(`<text x="%s" y="%s" class="dim" text-anchor="middle" transform="rotate(-90 %s %s)">%s</text>`,
			svg.Coord(x1-4), svg.Coord(mid), svg.Coord(x1-4), svg.Coord(mid), svg.Escape(text))
		return
	}

	d.Line(x1, y1-dimTick, x1, y1+dimTick, stroke)
	d.Line(x2, y2-dimTick, x2, y2+dimTick, stroke)
	left, right := min(x1, x2), max(x1, x2)
	arrowhead(d, t, left, y1, 1, 0)
	arrowhead(d, t, right, y1, -1, 0)
	d.Addf(`<text x="%s" y="%s" class="dim" text-anchor="middle">%s</text>`,
		svg.Coord((x1+x2)/2), svg.Coord(y1-4), svg.Escape(text))
}

// arrowhead draws a small filled triangle at (x, y) pointing against the
// (dx, dy) unit direction, i.e. the tip sits at the given point.
func arrowhead(d *svg.Document, t style.Theme, x, y, dx, dy float64) {
	bx, by := x+dx*dimArrow, y+dy*dimArrow
	px, py := -dy*2.5, dx*2.5
	d.Polygon(fmt.Sprintf("%s,%s %s,%s %s,%s",
		svg.Coord(x), svg.Coord(y),
		svg.Coord(bx+px), svg.Coord(by+py),
		svg.Coord(bx-px), svg.Coord(by-py)),
		fmt.Sprintf(`fill="%s"`, t.Colors.Dimension))
}

// ---------------------------------------------------------------------------
// Level markers
// ---------------------------------------------------------------------------

const levelLeader = 46 // leader line length, px

// levelMarker draws a datum annotation: a filled triangle pointer at the
// level, a fixed leader to the right and the label right-aligned above the
// leader end. dashed renders the leader as a reference line.
func levelMarker(d *svg.Document, t style.Theme, x, y float64, text string, dashed bool) {
	d.Polygon(fmt.Sprintf("%s,%s %s,%s %s,%s",
		svg.Coord(x), svg.Coord(y),
		svg.Coord(x-5), svg.Coord(y-9),
		svg.Coord(x+5), svg.Coord(y-9)),
		fmt.Sprintf(`fill="%s"`, t.Colors.Stroke))

	attrs := fmt.Sprintf(`stroke="%s" stroke-width="0.8"`, t.Colors.Stroke)
	if dashed {
		attrs += ` stroke-dasharray="5 3"`
	}
	d.Line(x, y, x+levelLeader, y, attrs)
	d.Addf(`<text x="%s" y="%s" class="dim" text-anchor="end">%s</text>`,
		svg.Coord(x+levelLeader), svg.Coord(y-3), svg.Escape(text))
}

// ---------------------------------------------------------------------------
// Hatch patterns and the poché ring
// ---------------------------------------------------------------------------

// hatchDef emits a reusable tile of rotated parallel lines and returns its
// fill reference.
func hatchDef(d *svg.Document, color string, angle, spacing, strokeWidth float64) string {
	id := d.NewID("hatch")
	d.Def(fmt.Sprintf(`<pattern id="%s" width="%s" height="%s" patternUnits="userSpaceOnUse" patternTransform="rotate(%s)"><line x1="0" y1="0" x2="0" y2="%s" stroke="%s" stroke-width="%s"/></pattern>`,
		id, svg.Num(spacing), svg.Num(spacing), svg.Num(angle),
		svg.Num(spacing), color, svg.Num(strokeWidth)))
	return "url(#" + id + ")"
}

// ringClipDef registers an even-odd clip over outer plus reversed inner and
// returns the clip-path id. Anything drawn under the clip shows only inside
// the ring between the two polygons.
func ringClipDef(d *svg.Document, outer, inner []model.Point, pxPerMM float64) string {
	id := d.NewID("ring")
	data := PolygonToPath(outer, pxPerMM) + " " + PolygonToPath(reversePolygon(inner), pxPerMM)
	d.Def(fmt.Sprintf(`<clipPath id="%s"><path d="%s" clip-rule="evenodd"/></clipPath>`, id, data))
	return id
}

// hatchLines emits a 45-degree line family covering the polygon bounds,
// in model mm scaled by pxPerMM. spacing is the perpendicular distance
// between lines in mm. Callers wrap the output in a clip group.
func hatchLines(d *svg.Document, t style.Theme, b model.BoundingBox, spacingMM, pxPerMM float64) {
	if spacingMM <= 0 || b.Width() <= 0 || b.Height() <= 0 {
		return
	}
	attrs := fmt.Sprintf(`stroke="%s" stroke-width="0.6"`, t.Colors.WallHatch)
	step := spacingMM * math.Sqrt2
	for c := b.MinX + b.MinY; c <= b.MaxX+b.MaxY; c += step {
		xs := max(b.MinX, c-b.MaxY)
		xe := min(b.MaxX, c-b.MinY)
		if xs > xe {
			continue
		}
		d.Line(xs*pxPerMM, (c-xs)*pxPerMM, xe*pxPerMM, (c-xe)*pxPerMM, attrs)
	}
}

// ---------------------------------------------------------------------------
// Material fills
// ---------------------------------------------------------------------------

// neutralFill is the fallback when a material has no usable color.
const neutralFill = "#c8c2b6"

// materialFill registers a tiled pattern for the named material and returns
// a fill value. Brick gets coursing, timber boarding, metal standing seams,
// stone ashlar joints; anything else falls back to a flat fill of the
// supplied or a neutral color.
func materialFill(d *svg.Document, t style.Theme, name, hexColor string) string {
	base := hexColor
	if base == "" {
		base = neutralFill
	}
	joint := t.Colors.StrokeLight

	lower := strings.ToLower(name)
	kw := func(subs ...string) bool {
		for _, sub := range subs {
			if strings.Contains(lower, sub) {
				return true
			}
		}
		return false
	}

	switch {
	case kw("brick"):
		id := d.NewID("mat")
		d.Def(fmt.Sprintf(`<pattern id="%s" width="24" height="16" patternUnits="userSpaceOnUse"><rect width="24" height="16" fill="%s"/><line x1="0" y1="8" x2="24" y2="8" stroke="%s" stroke-width="0.7"/><line x1="0" y1="16" x2="24" y2="16" stroke="%s" stroke-width="0.7"/><line x1="12" y1="0" x2="12" y2="8" stroke="%s" stroke-width="0.7"/><line x1="6" y1="8" x2="6" y2="16" stroke="%s" stroke-width="0.7"/><line x1="18" y1="8" x2="18" y2="16" stroke="%s" stroke-width="0.7"/></pattern>`,
			id, base, joint, joint, joint, joint, joint))
		return "url(#" + id + ")"
	case kw("timber", "clad", "wood"):
		id := d.NewID("mat")
		d.Def(fmt.Sprintf(`<pattern id="%s" width="12" height="12" patternUnits="userSpaceOnUse"><rect width="12" height="12" fill="%s"/><line x1="0" y1="0" x2="0" y2="12" stroke="%s" stroke-width="0.8"/></pattern>`,
			id, base, joint))
		return "url(#" + id + ")"
	case kw("zinc", "metal", "steel"):
		id := d.NewID("mat")
		d.Def(fmt.Sprintf(`<pattern id="%s" width="18" height="18" patternUnits="userSpaceOnUse"><rect width="18" height="18" fill="%s"/><line x1="0" y1="0" x2="0" y2="18" stroke="%s" stroke-width="1.2"/><line x1="2" y1="0" x2="2" y2="18" stroke="%s" stroke-width="0.5"/></pattern>`,
			id, base, joint, joint))
		return "url(#" + id + ")"
	case kw("stone", "ashlar"):
		id := d.NewID("mat")
		d.Def(fmt.Sprintf(`<pattern id="%s" width="28" height="14" patternUnits="userSpaceOnUse"><rect width="28" height="14" fill="%s"/><line x1="0" y1="7" x2="28" y2="7" stroke="%s" stroke-width="0.7"/><line x1="0" y1="14" x2="28" y2="14" stroke="%s" stroke-width="0.7"/><line x1="14" y1="0" x2="14" y2="7" stroke="%s" stroke-width="0.7"/><line x1="7" y1="7" x2="7" y2="14" stroke="%s" stroke-width="0.7"/><line x1="21" y1="7" x2="21" y2="14" stroke="%s" stroke-width="0.7"/></pattern>`,
			id, base, joint, joint, joint, joint, joint))
		return "url(#" + id + ")"
	default:
		return base
	}
}

// ---------------------------------------------------------------------------
// Sheet furniture: title block, north arrow, scale bar
// ---------------------------------------------------------------------------

const (
	titleBlockW = 260
	titleBlockH = 60
	sheetInset  = 20
)

// titleBlock draws the sheet title box anchored bottom-right: title,
// drawing number and the paper-scale label derived from the px/m scale.
func titleBlock(d *svg.Document, t style.Theme, title, number string, scale float64) {
	x := d.Width() - titleBlockW - sheetInset
	y := d.Height() - titleBlockH - sheetInset

	d.Rect(x, y, titleBlockW, titleBlockH,
		fmt.Sprintf(`fill="%s" stroke="%s" stroke-width="1.2"`, t.Colors.RoomFill, t.Colors.Stroke))
	d.Line(x, y+26, x+titleBlockW, y+26,
		fmt.Sprintf(`stroke="%s" stroke-width="0.8"`, t.Colors.Stroke))

	d.Addf(`<text x="%s" y="%s" class="title">%s</text>`,
		svg.Coord(x+10), svg.Coord(y+18), svg.Escape(title))
	d.Addf(`<text x="%s" y="%s" class="dim">Scale 1:%s</text>`,
		svg.Coord(x+10), svg.Coord(y+46), svg.Num(paperScale(scale)))
	d.Addf(`<text x="%s" y="%s" class="title" text-anchor="end">%s</text>`,
		svg.Coord(x+titleBlockW-10), svg.Coord(y+48), svg.Escape(number))
}

// paperScale converts px/m to the conventional 1:n label, one decimal.
func paperScale(scale float64) float64 {
	if scale <= 0 {
		scale = DefaultScale
	}
	return math.Round(1000/scale*10) / 10
}

// northArrow draws the plan north pointer centered at (cx, cy).
func northArrow(d *svg.Document, t style.Theme, cx, cy float64) {
	d.Polygon(fmt.Sprintf("%s,%s %s,%s %s,%s %s,%s",
		svg.Coord(cx), svg.Coord(cy-20),
		svg.Coord(cx+5), svg.Coord(cy+10),
		svg.Coord(cx), svg.Coord(cy+5),
		svg.Coord(cx-5), svg.Coord(cy+10)),
		fmt.Sprintf(`fill="%s" stroke="%s" stroke-width="1"`, t.Colors.Stroke, t.Colors.Stroke))
	d.Addf(`<text x="%s" y="%s" class="dim" text-anchor="middle">N</text>`,
		svg.Coord(cx), svg.Coord(cy-26))
}

// scaleBar draws an alternating 1 m bar, five metres long, at (x, y).
func scaleBar(d *svg.Document, t style.Theme, x, y, pxPerMM float64) {
	seg := 1000 * pxPerMM
	for i := 0; i < 5; i++ {
		fill := t.Colors.Stroke
		if i%2 == 1 {
			fill = t.Colors.RoomFill
		}
		d.Rect(x+float64(i)*seg, y, seg, 6,
			fmt.Sprintf(`fill="%s" stroke="%s" stroke-width="0.8"`, fill, t.Colors.Stroke))
	}
	d.Addf(`<text x="%s" y="%s" class="small">0</text>`, svg.Coord(x), svg.Coord(y-3))
	d.Addf(`<text x="%s" y="%s" class="small" text-anchor="end">5m</text>`,
		svg.Coord(x+5*seg), svg.Coord(y-3))
}
