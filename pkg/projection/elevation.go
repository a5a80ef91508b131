package projection

import (
	"fmt"
	"strings"

	"github.com/atelierpx/orthograph/pkg/model"
	"github.com/atelierpx/orthograph/pkg/style"
	"github.com/atelierpx/orthograph/pkg/svg"
)

// dpcHeightMM is the damp-proof-course line height above ground.
const dpcHeightMM = 150

// Elevation renders one facade as an orthographic elevation: sky and
// landscaped ground, the wall mass in its exterior material, roof profile
// with eaves, every opening visible on the facade, level markers and
// overall dimensions. An invalid orientation degrades to north.
func Elevation(m *model.BuildingModel, facade model.Facade, opts ElevationOptions) string {
	if !facade.Valid() {
		facade = model.FacadeNorth
	}
	t := resolveTheme(opts.Styles, opts.Theme)
	scale := scaleOr(opts.Scale)
	pxPerMM := scale / 1000

	fw := m.FacadeWidthMM(facade)
	wallTop := m.WallTopMM()
	ridge := max(m.RidgeMM(), wallTop)

	contentW := fw * pxPerMM
	contentH := ridge * pxPerMM
	width := max(sizeOr(opts.Width, defaultCanvasW), contentW+2*canvasMargin)
	height := max(sizeOr(opts.Height, defaultCanvasH), contentH+2*canvasMargin)

	d := svg.New(width, height)
	d.SetStyle(baseCSS(t))

	groundY := height - canvasMargin
	bx := (width - contentW) / 2
	ex := func(x float64) float64 { return bx + x*pxPerMM }
	ey := func(z float64) float64 { return groundY - z*pxPerMM }

	d.Rect(0, 0, width, groundY, fmt.Sprintf(`fill="%s"`, t.Colors.SkyFill))
	d.Rect(0, groundY, width, height-groundY, fmt.Sprintf(`fill="%s"`, t.Colors.GroundFill))
	drawLandscape(d, t, width, groundY)

	// Wall mass in the dominant exterior material.
	var fill string
	if mat := m.ExteriorMaterial(); mat != nil {
		fill = materialFill(d, t, mat.Name, mat.HexColor)
	} else {
		fill = materialFill(d, t, "", "")
	}
	d.Rect(bx, ey(wallTop), contentW, wallTop*pxPerMM,
		fmt.Sprintf(`fill="%s" stroke="%s" stroke-width="1.5"`, fill, t.Colors.Stroke))

	d.Line(ex(0), ey(dpcHeightMM), ex(fw), ey(dpcHeightMM),
		fmt.Sprintf(`stroke="%s" stroke-width="0.8" stroke-dasharray="6 3"`, t.Colors.StrokeLight))

	drawRoof(d, t, m, facade, ex, ey, fw)

	// Openings, projected onto the facade axis.
	horiz := facade == model.FacadeNorth || facade == model.FacadeSouth
	axis := func(p model.Point) float64 {
		if horiz {
			return p.X
		}
		return p.Y
	}
	fb := m.FootprintBounds()
	axisMin := fb.MinX
	if !horiz {
		axisMin = fb.MinY
	}
	for _, fo := range m.OpeningsForFacade(facade) {
		o, fl, wall := fo.Opening, fo.Floor, fo.Wall
		var center float64
		switch {
		case wall != nil:
			a, b := axis(wall.Start), axis(wall.End)
			center = a + (b-a)*o.PlacementRatio(wall.Length()) - axisMin
		case o.X != nil:
			center = *o.X - axisMin
		default:
			center = o.PlacementRatio(0) * fw
		}
		w := o.WidthMM() * pxPerMM
		h := o.HeightMM() * pxPerMM
		base := fl.BaseMM() + o.SillMM(fl.HeightMM())
		x0 := ex(center) - w/2
		y0 := ey(base + o.HeightMM())
		if o.Type.IsDoor() {
			elevDoor(d, t, x0, y0, w, h)
		} else {
			elevWindow(d, t, x0, y0, w, h)
		}
	}

	// Datum and storey levels on the right, ridge on top.
	lx := ex(fw) + 8
	levelMarker(d, t, lx, groundY, levelLabel(0), true)
	for i := range m.Floors {
		levelMarker(d, t, lx, ey(m.Floors[i].TopMM()), levelLabel(m.Floors[i].TopMM()), false)
	}
	levelMarker(d, t, lx, ey(ridge), levelLabel(ridge), false)

	if enabled(opts.ShowDimensions) {
		dimensionLine(d, t, bx-34, ey(ridge), bx-34, groundY, dimLabel(ridge), true)
		dimensionLine(d, t, ex(0), groundY+28, ex(fw), groundY+28, dimLabel(fw), false)
	}

	titleBlock(d, t, facade.Name()+" Elevation", ElevationSheet(facade), scale)
	return d.String()
}

// drawLandscape lays deterministic grass and shrub texture on the ground
// line. Blade and shrub sizes come from the positional hash so repeated
// renders are byte-identical.
func drawLandscape(d *svg.Document, t style.Theme, width, groundY float64) {
	grass := fmt.Sprintf(`stroke="%s" stroke-width="1"`, t.Colors.Grass)
	for gx := 0.0; gx < width; gx += 9 {
		h := 4 + posHash(gx)*6
		d.Line(gx, groundY, gx+2, groundY-h, grass)
	}
	for _, fx := range []float64{0.07, 0.15, 0.86, 0.94} {
		cx := width * fx
		h := posHash(cx)
		rx := 10 + h*12
		ry := 6 + h*7
		d.Ellipse(cx, groundY-ry, rx, ry,
			fmt.Sprintf(`fill="%s" stroke="%s" stroke-width="0.8"`, t.Colors.Grass, t.Colors.StrokeLight))
	}
}

// drawRoof draws the facade's roof profile extended by the eaves overhang,
// with a fascia board and soffit shadow line.
func drawRoof(d *svg.Document, t style.Theme, m *model.BuildingModel, facade model.Facade, ex, ey func(float64) float64, fw float64) {
	profile := m.RoofProfile(facade)
	if len(profile) < 2 {
		return
	}
	ov := m.Roof.EavesMM()
	stretch := func(x float64) float64 {
		if fw <= 0 {
			return x
		}
		return -ov + x*(fw+2*ov)/fw
	}

	pts := make([]string, 0, len(profile))
	for _, p := range profile {
		pts = append(pts, svg.Coord(ex(stretch(p.X)))+","+svg.Coord(ey(p.Z)))
	}
	d.Polygon(strings.Join(pts, " "),
		fmt.Sprintf(`fill="%s" stroke="%s" stroke-width="1.5"`, t.Colors.RoofFill, t.Colors.Stroke))

	first, last := profile[0], profile[len(profile)-1]
	x1, y1 := ex(stretch(first.X)), ey(first.Z)
	x2, y2 := ex(stretch(last.X)), ey(last.Z)
	d.Line(x1, y1, x2, y2, fmt.Sprintf(`stroke="%s" stroke-width="2.5"`, t.Colors.Stroke))
	d.Line(x1, y1+4, x2, y2+4, fmt.Sprintf(`stroke="%s" stroke-width="0.8"`, t.Colors.StrokeLight))
}

// levelLabel formats a datum annotation in metres, with the conventional
// plus-minus zero at ground.
func levelLabel(mm float64) string {
	if mm == 0 {
		return "±0.00"
	}
	return fmt.Sprintf("+%.2f", mm/1000)
}

// ElevationSheet returns the drawing number for a facade.
func ElevationSheet(f model.Facade) string {
	switch f {
	case model.FacadeSouth:
		return "A-201"
	case model.FacadeEast:
		return "A-202"
	case model.FacadeWest:
		return "A-203"
	default:
		return "A-200"
	}
}
