package projection

import (
	"fmt"
	"math"
	"strconv"

	"github.com/atelierpx/orthograph/pkg/model"
	"github.com/atelierpx/orthograph/pkg/style"
	"github.com/atelierpx/orthograph/pkg/svg"
)

// paperFill is the sheet background for plans and sections.
const paperFill = "#ffffff"

// FloorPlan renders one storey as a scaled plan drawing: room fills, wall
// poché, opening symbols, stairs, labels, dimensions, cut-line markers and
// sheet furniture. A floor index outside the model degrades to a placeholder
// sheet instead of failing.
func FloorPlan(m *model.BuildingModel, floorIndex int, opts FloorPlanOptions) string {
	t := resolveTheme(opts.Styles, opts.Theme)
	scale := scaleOr(opts.Scale)
	pxPerMM := scale / 1000

	f := m.Floor(floorIndex)
	if f == nil {
		d := svg.New(sizeOr(opts.Width, defaultCanvasW), sizeOr(opts.Height, defaultCanvasH))
		d.SetStyle(baseCSS(t))
		return missingFloor(d, t, floorIndex)
	}

	b := planBounds(m)
	contentW := b.Width() * pxPerMM
	contentH := b.Height() * pxPerMM
	width := max(sizeOr(opts.Width, defaultCanvasW), contentW+2*canvasMargin)
	height := max(sizeOr(opts.Height, defaultCanvasH), contentH+2*canvasMargin)

	d := svg.New(width, height)
	d.SetStyle(baseCSS(t))
	d.Rect(0, 0, width, height, fmt.Sprintf(`fill="%s"`, paperFill))

	// One transform realizes the north-up mapping: everything inside the
	// group is raw model mm times pxPerMM, with Y growing upward.
	tx := (width-contentW)/2 - b.MinX*pxPerMM
	ty := (height-contentH)/2 + b.MaxY*pxPerMM
	sx := func(x float64) float64 { return tx + x*pxPerMM }
	sy := func(y float64) float64 { return ty - y*pxPerMM }

	d.OpenGroup(fmt.Sprintf(`transform="translate(%s,%s) scale(1,-1)"`, svg.Coord(tx), svg.Coord(ty)))

	for i := range f.Rooms {
		r := &f.Rooms[i]
		if len(r.Polygon) < 3 {
			continue
		}
		fill := t.Colors.RoomFill
		if r.Circulation() {
			fill = t.Colors.CirculationFill
		}
		d.Path(PolygonToPath(r.Polygon, pxPerMM),
			fmt.Sprintf(`fill="%s" stroke="%s" stroke-width="0.8"`, fill, t.Colors.StrokeLight))
	}

	drawWallRing(d, t, m, f, b, pxPerMM, enabled(opts.ShowWallHatch))

	for _, w := range f.InternalWalls() {
		if w.Degenerate() {
			continue
		}
		nx, ny := w.Normal()
		ht := w.ThicknessMM() / 2
		quad := []model.Point{
			{X: w.Start.X + nx*ht, Y: w.Start.Y + ny*ht},
			{X: w.End.X + nx*ht, Y: w.End.Y + ny*ht},
			{X: w.End.X - nx*ht, Y: w.End.Y - ny*ht},
			{X: w.Start.X - nx*ht, Y: w.Start.Y - ny*ht},
		}
		d.Path(PolygonToPath(quad, pxPerMM),
			fmt.Sprintf(`fill="%s" stroke="%s" stroke-width="1"`, t.Colors.WallFill, t.Colors.Stroke))
	}

	for i := range f.Openings {
		o := &f.Openings[i]
		planOpening(d, t, f.WallByID(o.WallID), o, pxPerMM)
	}

	for _, s := range m.Stairs {
		if s.FloorIndex == f.Index {
			planStair(d, t, s, pxPerMM)
		}
	}

	d.CloseGroup()

	// Text and sheet furniture stay outside the flipped group so they
	// render right-side-up.
	if enabled(opts.ShowFurniture) {
		for i := range f.Rooms {
			r := &f.Rooms[i]
			if len(r.Polygon) < 3 || r.Circulation() {
				continue
			}
			rb := r.Bounds()
			furnitureFor(d, t, r.Name,
				sx(rb.MinX)+6, sy(rb.MaxY)+6,
				rb.Width()*pxPerMM-12, rb.Height()*pxPerMM-12)
		}
	}

	if enabled(opts.ShowRoomLabels) {
		for i := range f.Rooms {
			r := &f.Rooms[i]
			if len(r.Polygon) < 3 {
				continue
			}
			roomLabel(d, r, sx, sy)
		}
	}

	for _, s := range m.Stairs {
		if s.FloorIndex == f.Index {
			w, l := stairSize(s)
			d.Text(sx(s.Position.X+w/2), sy(s.Position.Y+l/2),
				`class="small" text-anchor="middle"`, "UP")
		}
	}

	if enabled(opts.ShowDimensions) {
		yDim := sy(b.MinY) + 36
		dimensionLine(d, t, sx(b.MinX), yDim, sx(b.MaxX), yDim, dimLabel(b.Width()), false)
		xDim := sx(b.MinX) - 36
		dimensionLine(d, t, xDim, sy(b.MaxY), xDim, sy(b.MinY), dimLabel(b.Height()), true)
	}

	midX, midY := (b.MinX+b.MaxX)/2, (b.MinY+b.MaxY)/2
	cutMarker(d, t, "A", sx(b.MinX)-30, sy(midY), sx(b.MaxX)+30, sy(midY))
	cutMarker(d, t, "B", sx(midX), sy(b.MaxY)-30, sx(midX), sy(b.MinY)+30)

	northArrow(d, t, width-44, 54)
	scaleBar(d, t, sheetInset, height-sheetInset-6, pxPerMM)
	titleBlock(d, t, f.DisplayName()+" Floor Plan", PlanSheet(f.Index), scale)

	return d.String()
}

// PlanSheet returns the drawing number for a floor index.
func PlanSheet(i int) string {
	return fmt.Sprintf("A-10%d", i)
}

// missingFloor finishes the placeholder sheet for an out-of-range storey.
func missingFloor(d *svg.Document, t style.Theme, index int) string {
	w, h := d.Width(), d.Height()
	d.Rect(0, 0, w, h, fmt.Sprintf(`fill="%s"`, paperFill))
	d.Rect((w-400)/2, (h-300)/2, 400, 300,
		fmt.Sprintf(`fill="%s" stroke="%s" stroke-width="1.5" stroke-dasharray="8 4"`,
			t.Colors.RoomFill, t.Colors.StrokeLight))
	d.Text(w/2, h/2-6, `class="title" text-anchor="middle"`, "Floor not found")
	d.Text(w/2, h/2+16, `class="dim" text-anchor="middle"`,
		"No floor at index "+strconv.Itoa(index))
	return d.String()
}

// planBounds is the plan extent used for sizing and centering, falling back
// to the nominal envelope for models with no plan geometry.
func planBounds(m *model.BuildingModel) model.BoundingBox {
	b := m.FootprintBounds()
	if b.Width() > 0 && b.Height() > 0 {
		return b
	}
	dims := m.DimensionsMeters()
	return model.BoundingBox{MaxX: dims.Width * 1000, MaxY: dims.Depth * 1000}
}

// drawWallRing draws the external wall poché: footprint outline, inset
// inner face, even-odd mass fill and the diagonal hatch clipped to the
// ring between them.
func drawWallRing(d *svg.Document, t style.Theme, m *model.BuildingModel, f *model.Floor, b model.BoundingBox, pxPerMM float64, hatch bool) {
	outer := m.Envelope.Footprint
	if len(outer) < 3 {
		outer = []model.Point{
			{X: b.MinX, Y: b.MinY}, {X: b.MaxX, Y: b.MinY},
			{X: b.MaxX, Y: b.MaxY}, {X: b.MinX, Y: b.MaxY},
		}
	}
	inner := InsetPolygon(outer, externalThickness(f))

	ring := PolygonToPath(outer, pxPerMM) + " " + PolygonToPath(reversePolygon(inner), pxPerMM)
	d.Path(ring, fmt.Sprintf(`fill="%s" fill-rule="evenodd" stroke="%s" stroke-width="1.5"`,
		t.Colors.WallFill, t.Colors.Stroke))

	if !hatch {
		return
	}
	clip := ringClipDef(d, outer, inner, pxPerMM)
	d.OpenGroup(fmt.Sprintf(`clip-path="url(#%s)"`, clip))
	hatchLines(d, t, BoundsOf(outer), 3/pxPerMM, pxPerMM)
	d.CloseGroup()
}

// externalThickness picks the poché ring depth from the storey's external
// walls.
func externalThickness(f *model.Floor) float64 {
	for _, w := range f.ExternalWalls() {
		if !w.Degenerate() {
			return w.ThicknessMM()
		}
	}
	return 300
}

// roomLabel writes the name, area and plan dimensions at the room centroid.
func roomLabel(d *svg.Document, r *model.Room, sx, sy func(float64) float64) {
	c := r.Centroid()
	cx, cy := sx(c.X), sy(c.Y)
	d.Text(cx, cy-6, `text-anchor="middle"`, r.Name)
	if area := r.AreaSquareMeters(); area > 0 {
		d.Text(cx, cy+8, `class="dim" text-anchor="middle"`, fmt.Sprintf("%.1f m²", area))
	}
	if w, dep := r.SpanMM(); w > 0 && dep > 0 {
		d.Text(cx, cy+20, `class="small" text-anchor="middle"`,
			fmt.Sprintf("%.1f × %.1f", w/1000, dep/1000))
	}
}

// stairSize normalizes a stair's plan footprint, defaulting a missing
// flight to 900 x 2700 mm.
func stairSize(s model.Stair) (w, l float64) {
	w, l = s.Width, s.Length
	if w <= 0 {
		w = 900
	}
	if l <= 0 {
		l = 2700
	}
	return w, l
}

// planStair draws the flight inside the flipped group: outline, treads and
// the direction arrow. The UP label is added outside so it reads upright.
func planStair(d *svg.Document, t style.Theme, s model.Stair, pxPerMM float64) {
	w, l := stairSize(s)
	x, y := s.Position.X, s.Position.Y
	stroke := fmt.Sprintf(`stroke="%s" stroke-width="1"`, t.Colors.Stroke)

	d.Rect(x*pxPerMM, y*pxPerMM, w*pxPerMM, l*pxPerMM,
		fmt.Sprintf(`fill="%s" %s`, t.Colors.CirculationFill, stroke))

	treads := int(math.Round(l / 250))
	if treads < 3 {
		treads = 3
	}
	step := l / float64(treads)
	thin := fmt.Sprintf(`stroke="%s" stroke-width="0.7"`, t.Colors.Stroke)
	for i := 1; i < treads; i++ {
		ty := y + float64(i)*step
		d.Line(x*pxPerMM, ty*pxPerMM, (x+w)*pxPerMM, ty*pxPerMM, thin)
	}

	ax := x + w/2
	d.Line(ax*pxPerMM, (y+l*0.12)*pxPerMM, ax*pxPerMM, (y+l*0.82)*pxPerMM, thin)
	d.Polygon(fmt.Sprintf("%s,%s %s,%s %s,%s",
		svg.Coord(ax*pxPerMM), svg.Coord((y+l*0.9)*pxPerMM),
		svg.Coord((ax-80)*pxPerMM), svg.Coord((y+l*0.78)*pxPerMM),
		svg.Coord((ax+80)*pxPerMM), svg.Coord((y+l*0.78)*pxPerMM)),
		fmt.Sprintf(`fill="%s"`, t.Colors.Stroke))
}

// dimLabel formats a model length for a dimension string, in metres.
func dimLabel(mm float64) string {
	return strconv.FormatFloat(math.Round(mm/100)/10, 'f', 1, 64) + "m"
}

// cutMarker draws one section cut line with a circled letter tag and a
// view-direction arrow at each end.
func cutMarker(d *svg.Document, t style.Theme, letter string, x1, y1, x2, y2 float64) {
	d.Line(x1, y1, x2, y2,
		fmt.Sprintf(`stroke="%s" stroke-width="1.2" stroke-dasharray="10 4 2 4"`, t.Colors.Stroke))
	cutTag(d, t, letter, x1, y1, x2, y2)
	cutTag(d, t, letter, x2, y2, x1, y1)
}

// cutTag draws the circle, letter and arrow at one end of a cut line; the
// arrow points perpendicular to the line, toward the viewed half.
func cutTag(d *svg.Document, t style.Theme, letter string, x, y, ox, oy float64) {
	dx, dy := ox-x, oy-y
	hyp := math.Hypot(dx, dy)
	if hyp == 0 {
		hyp = 1
	}
	dx, dy = dx/hyp, dy/hyp
	px, py := dy, -dx

	d.Circle(x, y, 9, fmt.Sprintf(`fill="%s" stroke="%s" stroke-width="1.2"`, paperFill, t.Colors.Stroke))
	d.Text(x, y+3, `class="dim" text-anchor="middle"`, letter)
	d.Polygon(fmt.Sprintf("%s,%s %s,%s %s,%s",
		svg.Coord(x+px*18), svg.Coord(y+py*18),
		svg.Coord(x+px*10+dx*4), svg.Coord(y+py*10+dy*4),
		svg.Coord(x+px*10-dx*4), svg.Coord(y+py*10-dy*4)),
		fmt.Sprintf(`fill="%s"`, t.Colors.Stroke))
}
