package projection

import (
	"fmt"
	"math"
	"strings"

	"github.com/atelierpx/orthograph/pkg/model"
	"github.com/atelierpx/orthograph/pkg/style"
	"github.com/atelierpx/orthograph/pkg/svg"
)

// SectionAxis selects the cutting-plane orientation.
type SectionAxis string

const (
	// SectionLongitudinal cuts along the building's length; plan marker A-A.
	SectionLongitudinal SectionAxis = "longitudinal"
	// SectionTransverse cuts across the building; plan marker B-B.
	SectionTransverse SectionAxis = "transverse"
)

// Valid reports whether the axis is one of the two cutting planes.
func (a SectionAxis) Valid() bool {
	return a == SectionLongitudinal || a == SectionTransverse
}

const (
	foundationDepthMM  = 600
	foundationSpreadMM = 300
	riserMM            = 200 // standard riser used to derive tread counts
)

// Section renders a cutting-plane view: foundation, per-storey slabs and
// voids, cut walls with poché, stairs between floors, the roof profile with
// an insulation indicator, level markers and height dimensions. An invalid
// axis degrades to longitudinal.
func Section(m *model.BuildingModel, axis SectionAxis, opts SectionOptions) string {
	if !axis.Valid() {
		axis = SectionLongitudinal
	}
	t := resolveTheme(opts.Styles, opts.Theme)
	scale := scaleOr(opts.Scale)
	pxPerMM := scale / 1000

	// The cut runs the building's length for A-A, its depth for B-B; the
	// visible massing matches the facade perpendicular to the view.
	facade := model.FacadeNorth
	if axis == SectionTransverse {
		facade = model.FacadeEast
	}
	cw := m.FacadeWidthMM(facade)
	wallTop := m.WallTopMM()
	ridge := max(m.RidgeMM(), wallTop)

	contentW := cw * pxPerMM
	contentH := ridge * pxPerMM
	width := max(sizeOr(opts.Width, defaultCanvasW), contentW+2*canvasMargin)
	height := max(sizeOr(opts.Height, defaultCanvasH), contentH+2*canvasMargin)

	d := svg.New(width, height)
	d.SetStyle(baseCSS(t))
	d.Rect(0, 0, width, height, fmt.Sprintf(`fill="%s"`, paperFill))

	groundY := height - canvasMargin
	bx := (width - contentW) / 2
	ex := func(x float64) float64 { return bx + x*pxPerMM }
	ey := func(z float64) float64 { return groundY - z*pxPerMM }

	d.Rect(0, groundY, width, height-groundY, fmt.Sprintf(`fill="%s"`, t.Colors.GroundFill))
	d.Line(0, groundY, width, groundY, fmt.Sprintf(`stroke="%s" stroke-width="1.5"`, t.Colors.Stroke))

	drawFoundation(d, t, ex, ey, cw)

	hatch := hatchDef(d, t.Colors.WallHatch, 45, 6, 0.6)

	// Storeys: slab band at the bottom of each band, room void above it.
	for fi := range m.Floors {
		f := &m.Floors[fi]
		base, slab, h := f.BaseMM(), f.SlabMM(), f.HeightMM()
		clear := max(h-slab, 0)

		d.Rect(ex(0), ey(base+slab), contentW, slab*pxPerMM,
			fmt.Sprintf(`fill="%s" stroke="%s" stroke-width="1"`, t.Colors.WallFill, t.Colors.Stroke))
		d.Rect(ex(0), ey(base+slab), contentW, slab*pxPerMM, fmt.Sprintf(`fill="%s"`, hatch))

		d.Rect(ex(0), ey(base+slab+clear), contentW, clear*pxPerMM,
			fmt.Sprintf(`fill="%s" stroke="%s" stroke-width="0.5"`, t.Colors.RoomFill, t.Colors.StrokeLight))

		sectionRoomLabels(d, m, f, axis, ex, ey)

		d.Text(ex(cw)-8, ey(base+slab)-6, `class="small" text-anchor="end"`,
			fmt.Sprintf("%.2fm clear", clear/1000))
	}

	// Cut external walls at both extents, solid with poché hatch.
	thick := 300.0
	if f := m.Floor(0); f != nil {
		thick = externalThickness(f)
	}
	for _, x := range []float64{0, cw - thick} {
		d.Rect(ex(x), ey(wallTop), thick*pxPerMM, wallTop*pxPerMM,
			fmt.Sprintf(`fill="%s" stroke="%s" stroke-width="1.5"`, t.Colors.WallFill, t.Colors.Stroke))
		d.Rect(ex(x), ey(wallTop), thick*pxPerMM, wallTop*pxPerMM, fmt.Sprintf(`fill="%s"`, hatch))
	}

	for _, s := range m.Stairs {
		sectionStair(d, t, m, s, axis, ex, ey)
	}

	drawSectionRoof(d, t, m, facade, ex, ey)

	// Insulation indicator just below the topmost ceiling.
	if n := len(m.Floors); n > 0 {
		zigzagLine(d, t, ex(0), ex(cw), ey(m.Floors[n-1].TopMM()-150), 60*pxPerMM, 300*pxPerMM)
	}

	// Datum line with level markers, then dimensions.
	datumX := ex(cw) + 40
	d.Line(datumX, ey(ridge)-10, datumX, groundY+10,
		fmt.Sprintf(`stroke="%s" stroke-width="0.8" stroke-dasharray="8 4"`, t.Colors.Dimension))
	levelMarker(d, t, datumX, groundY, levelLabel(0), true)
	for i := range m.Floors {
		levelMarker(d, t, datumX, ey(m.Floors[i].TopMM()), levelLabel(m.Floors[i].TopMM()), false)
	}
	levelMarker(d, t, datumX, ey(ridge), levelLabel(ridge), false)

	if enabled(opts.ShowDimensions) {
		dimensionLine(d, t, datumX+54, ey(ridge), datumX+54, groundY, dimLabel(ridge), true)
		for i := range m.Floors {
			f := &m.Floors[i]
			dimensionLine(d, t, bx-30, ey(f.TopMM()), bx-30, ey(f.BaseMM()), dimLabel(f.HeightMM()), true)
		}
	}

	titleBlock(d, t, sectionTitle(axis), SectionSheet(axis), scale)
	return d.String()
}

// drawFoundation draws the strip foundation block under the building with
// poché hatch and a depth caption.
func drawFoundation(d *svg.Document, t style.Theme, ex, ey func(float64) float64, cw float64) {
	x := ex(-foundationSpreadMM)
	y := ey(0)
	w := ex(cw+foundationSpreadMM) - x
	h := ey(-foundationDepthMM) - y

	d.Rect(x, y, w, h, fmt.Sprintf(`fill="%s" stroke="%s" stroke-width="1.2"`,
		t.Colors.Foundation, t.Colors.Stroke))
	hatch := hatchDef(d, t.Colors.WallHatch, -45, 7, 0.6)
	d.Rect(x, y, w, h, fmt.Sprintf(`fill="%s"`, hatch))
	d.Text(x+w/2, y+h+12, `class="small" text-anchor="middle"`,
		fmt.Sprintf("Foundation %dmm deep", foundationDepthMM))
}

// sectionRoomLabels names the rooms the cutting plane passes through on
// one storey: a room qualifies when its center lies within half its
// smaller bounding-box dimension of the plane.
func sectionRoomLabels(d *svg.Document, m *model.BuildingModel, f *model.Floor, axis SectionAxis, ex, ey func(float64) float64) {
	fb := m.FootprintBounds()
	planeCoord := (fb.MinY + fb.MaxY) / 2
	axisMin := fb.MinX
	if axis == SectionTransverse {
		planeCoord = (fb.MinX + fb.MaxX) / 2
		axisMin = fb.MinY
	}

	for i := range f.Rooms {
		r := &f.Rooms[i]
		if len(r.Polygon) < 3 {
			continue
		}
		rb := r.Bounds()
		c := r.Centroid()
		perp, along := c.Y, c.X
		if axis == SectionTransverse {
			perp, along = c.X, c.Y
		}
		if math.Abs(perp-planeCoord) > min(rb.Width(), rb.Height())/2 {
			continue
		}
		mid := f.BaseMM() + (f.HeightMM()+f.SlabMM())/2
		d.Text(ex(along-axisMin), ey(mid), `class="dim" text-anchor="middle"`, r.Name)
	}
}

// sectionStair draws one flight cut through: a tread/riser zig-zag between
// consecutive floor levels over a connecting outline triangle.
func sectionStair(d *svg.Document, t style.Theme, m *model.BuildingModel, s model.Stair, axis SectionAxis, ex, ey func(float64) float64) {
	lower := m.Floor(s.FloorIndex)
	upper := m.Floor(s.FloorIndex + 1)
	if lower == nil || upper == nil {
		return
	}

	fb := m.FootprintBounds()
	along := s.Position.X - fb.MinX
	if axis == SectionTransverse {
		along = s.Position.Y - fb.MinY
	}
	_, run := stairSize(s)

	z0 := lower.BaseMM() + lower.SlabMM()
	z1 := upper.BaseMM() + upper.SlabMM()
	rise := z1 - z0
	if rise <= 0 {
		return
	}
	treads := int(rise / riserMM)
	if treads < 3 {
		treads = 3
	}

	d.Polygon(fmt.Sprintf("%s,%s %s,%s %s,%s",
		svg.Coord(ex(along)), svg.Coord(ey(z0)),
		svg.Coord(ex(along+run)), svg.Coord(ey(z0)),
		svg.Coord(ex(along+run)), svg.Coord(ey(z1))),
		fmt.Sprintf(`fill="%s"`, t.Colors.CirculationFill))

	treadD := run / float64(treads)
	riser := rise / float64(treads)
	pts := make([]string, 0, treads*2+1)
	pts = append(pts, svg.Coord(ex(along))+","+svg.Coord(ey(z0)))
	for i := 1; i <= treads; i++ {
		x := along + float64(i-1)*treadD
		z := z0 + float64(i)*riser
		pts = append(pts,
			svg.Coord(ex(x))+","+svg.Coord(ey(z)),
			svg.Coord(ex(x+treadD))+","+svg.Coord(ey(z)))
	}
	d.Polyline(strings.Join(pts, " "),
		fmt.Sprintf(`fill="none" stroke="%s" stroke-width="1.2"`, t.Colors.Stroke))
}

// drawSectionRoof draws the roof massing above the wall head, closed along
// the wall top.
func drawSectionRoof(d *svg.Document, t style.Theme, m *model.BuildingModel, facade model.Facade, ex, ey func(float64) float64) {
	profile := m.RoofProfile(facade)
	if len(profile) < 2 {
		return
	}
	pts := make([]string, 0, len(profile))
	for _, p := range profile {
		pts = append(pts, svg.Coord(ex(p.X))+","+svg.Coord(ey(p.Z)))
	}
	d.Polygon(strings.Join(pts, " "),
		fmt.Sprintf(`fill="%s" stroke="%s" stroke-width="1.5"`, t.Colors.RoofFill, t.Colors.Stroke))
}

// zigzagLine draws a sawtooth run between x1 and x2 at height y, the
// conventional insulation indicator.
func zigzagLine(d *svg.Document, t style.Theme, x1, x2, y, amp, wavelength float64) {
	if x2 <= x1 || wavelength <= 0 {
		return
	}
	pts := []string{svg.Coord(x1) + "," + svg.Coord(y)}
	up := true
	for x := x1 + wavelength/2; x < x2; x += wavelength / 2 {
		dy := amp
		if up {
			dy = -amp
		}
		pts = append(pts, svg.Coord(x)+","+svg.Coord(y+dy))
		up = !up
	}
	pts = append(pts, svg.Coord(x2)+","+svg.Coord(y))
	d.Polyline(strings.Join(pts, " "),
		fmt.Sprintf(`fill="none" stroke="%s" stroke-width="0.8"`, t.Colors.StrokeLight))
}

func sectionTitle(a SectionAxis) string {
	if a == SectionTransverse {
		return "Section B-B"
	}
	return "Section A-A"
}

// SectionSheet returns the drawing number for a cutting axis.
func SectionSheet(a SectionAxis) string {
	if a == SectionTransverse {
		return "A-301"
	}
	return "A-300"
}
