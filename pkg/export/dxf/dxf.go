// Package dxf exports floor plans as DXF drawings for CAD interchange.
// Geometry stays in model millimetres, the unit CAD consumers expect, so
// no pixel scaling is involved.
package dxf

import (
	"fmt"
	"strconv"

	dxflib "github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"

	"github.com/atelierpx/orthograph/pkg/model"
	"github.com/atelierpx/orthograph/pkg/projection"
)

// Layer names in exported drawings.
const (
	LayerWalls   = "WALLS"
	LayerRooms   = "ROOMS"
	LayerDoors   = "DOORS"
	LayerWindows = "WINDOWS"
	LayerText    = "TEXT"
	LayerDims    = "DIMS"
)

const (
	textHeightMM = 200
	dimOffsetMM  = 500
	dimTickMM    = 150
)

// Build assembles the DXF drawing for one storey.
func Build(m *model.BuildingModel, floorIndex int) (*drawing.Drawing, error) {
	f := m.Floor(floorIndex)
	if f == nil {
		return nil, fmt.Errorf("dxf: no floor at index %d", floorIndex)
	}

	d := dxflib.NewDrawing()
	layers := []struct {
		name string
		c    color.ColorNumber
	}{
		{LayerWalls, color.White},
		{LayerRooms, color.ColorNumber(8)},
		{LayerDoors, color.Red},
		{LayerWindows, color.Blue},
		{LayerText, color.White},
		{LayerDims, color.Green},
	}
	for _, l := range layers {
		if _, err := d.AddLayer(l.name, l.c, dxflib.DefaultLineType, false); err != nil {
			return nil, fmt.Errorf("dxf: add layer %s: %w", l.name, err)
		}
	}

	if err := onLayer(d, LayerRooms, func() {
		for i := range f.Rooms {
			if len(f.Rooms[i].Polygon) < 3 {
				continue
			}
			d.LwPolyline(true, vertices(f.Rooms[i].Polygon)...)
		}
	}); err != nil {
		return nil, err
	}

	if err := onLayer(d, LayerWalls, func() { drawWalls(d, m, f) }); err != nil {
		return nil, err
	}

	if err := drawOpenings(d, f); err != nil {
		return nil, err
	}

	if err := onLayer(d, LayerText, func() {
		for i := range f.Rooms {
			r := &f.Rooms[i]
			if len(r.Polygon) < 3 {
				continue
			}
			c := r.Centroid()
			d.Text(r.Name, c.X, c.Y, 0, textHeightMM)
		}
	}); err != nil {
		return nil, err
	}

	if err := onLayer(d, LayerDims, func() { drawDims(d, m) }); err != nil {
		return nil, err
	}

	return d, nil
}

// Export writes one storey's plan to path.
func Export(m *model.BuildingModel, floorIndex int, path string) error {
	d, err := Build(m, floorIndex)
	if err != nil {
		return err
	}
	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("dxf: save %s: %w", path, err)
	}
	return nil
}

// onLayer runs draw with the named layer current.
func onLayer(d *drawing.Drawing, name string, draw func()) error {
	if err := d.ChangeLayer(name); err != nil {
		return fmt.Errorf("dxf: change layer %s: %w", name, err)
	}
	draw()
	return nil
}

func vertices(poly []model.Point) [][]float64 {
	out := make([][]float64, len(poly))
	for i, p := range poly {
		out[i] = []float64{p.X, p.Y}
	}
	return out
}

// drawWalls emits the external ring as two closed polylines (outer face and
// inset inner face) and each internal wall as its thickness offset quad.
func drawWalls(d *drawing.Drawing, m *model.BuildingModel, f *model.Floor) {
	outer := m.Envelope.Footprint
	if len(outer) < 3 {
		b := m.FootprintBounds()
		outer = []model.Point{
			{X: b.MinX, Y: b.MinY}, {X: b.MaxX, Y: b.MinY},
			{X: b.MaxX, Y: b.MaxY}, {X: b.MinX, Y: b.MaxY},
		}
	}
	thick := 300.0
	for _, w := range f.ExternalWalls() {
		if !w.Degenerate() {
			thick = w.ThicknessMM()
			break
		}
	}
	d.LwPolyline(true, vertices(outer)...)
	d.LwPolyline(true, vertices(projection.InsetPolygon(outer, thick))...)

	for _, w := range f.InternalWalls() {
		if w.Degenerate() {
			continue
		}
		nx, ny := w.Normal()
		ht := w.ThicknessMM() / 2
		d.LwPolyline(true,
			[]float64{w.Start.X + nx*ht, w.Start.Y + ny*ht},
			[]float64{w.End.X + nx*ht, w.End.Y + ny*ht},
			[]float64{w.End.X - nx*ht, w.End.Y - ny*ht},
			[]float64{w.Start.X - nx*ht, w.Start.Y - ny*ht})
	}
}

// drawOpenings emits door leaves on DOORS and window lines on WINDOWS.
// Openings on degenerate or unresolved walls are skipped, matching the
// plan projector.
func drawOpenings(d *drawing.Drawing, f *model.Floor) error {
	for i := range f.Openings {
		o := &f.Openings[i]
		w := f.WallByID(o.WallID)
		if w == nil || w.Degenerate() {
			continue
		}

		length := w.Length()
		ratio := o.PlacementRatio(length)
		c := w.PointAt(ratio)
		dx, dy := w.Direction()
		nx, ny := w.Normal()
		halfW := min(o.WidthMM()/2, length*0.45)
		halfT := w.ThicknessMM() / 2

		layer := LayerWindows
		if o.Type.IsDoor() {
			layer = LayerDoors
		}
		err := onLayer(d, layer, func() {
			// Jambs across the wall at both ends of the opening.
			for _, sw := range []float64{-1, 1} {
				jx, jy := c.X+dx*halfW*sw, c.Y+dy*halfW*sw
				d.Line(jx+nx*halfT, jy+ny*halfT, 0, jx-nx*halfT, jy-ny*halfT, 0)
			}
			if o.Type.IsDoor() {
				hx, hy := c.X-dx*halfW, c.Y-dy*halfW
				d.Line(hx, hy, 0, hx+nx*halfW*2, hy+ny*halfW*2, 0)
				return
			}
			for _, sn := range []float64{-1, 0, 1} {
				d.Line(c.X-dx*halfW+nx*halfT*sn, c.Y-dy*halfW+ny*halfT*sn, 0,
					c.X+dx*halfW+nx*halfT*sn, c.Y+dy*halfW+ny*halfT*sn, 0)
			}
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// drawDims emits overall width and depth runs with end ticks and mm labels.
func drawDims(d *drawing.Drawing, m *model.BuildingModel) {
	b := m.FootprintBounds()
	if b.Width() <= 0 || b.Height() <= 0 {
		return
	}

	y := b.MinY - dimOffsetMM
	d.Line(b.MinX, y, 0, b.MaxX, y, 0)
	d.Line(b.MinX, y-dimTickMM, 0, b.MinX, y+dimTickMM, 0)
	d.Line(b.MaxX, y-dimTickMM, 0, b.MaxX, y+dimTickMM, 0)
	d.Text(mmLabel(b.Width()), (b.MinX+b.MaxX)/2, y-textHeightMM*2, 0, textHeightMM)

	x := b.MinX - dimOffsetMM
	d.Line(x, b.MinY, 0, x, b.MaxY, 0)
	d.Line(x-dimTickMM, b.MinY, 0, x+dimTickMM, b.MinY, 0)
	d.Line(x-dimTickMM, b.MaxY, 0, x+dimTickMM, b.MaxY, 0)
	d.Text(mmLabel(b.Height()), x-textHeightMM*3, (b.MinY+b.MaxY)/2, 0, textHeightMM)
}

func mmLabel(v float64) string {
	return strconv.FormatFloat(v, 'f', 0, 64)
}
