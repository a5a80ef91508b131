package projection

import (
	"fmt"
	"math"

	"github.com/atelierpx/orthograph/pkg/model"
	"github.com/atelierpx/orthograph/pkg/style"
	"github.com/atelierpx/orthograph/pkg/svg"
)

// ---------------------------------------------------------------------------
// Plan symbols
// ---------------------------------------------------------------------------

// planOpening draws one opening on its wall inside the plan's flipped
// group, so coordinates are model mm times pxPerMM. Doors get a leaf and
// quarter-circle swing arc, windows a frame with a glazing line. The wall
// behind the symbol is broken by a gap polygon first.
func planOpening(d *svg.Document, t style.Theme, wall *model.Wall, o *model.Opening, pxPerMM float64) {
	if wall == nil || wall.Degenerate() {
		return
	}

	length := wall.Length()
	ratio := o.PlacementRatio(length)
	c := wall.PointAt(ratio)
	dx, dy := wall.Direction()
	nx, ny := wall.Normal()

	halfW := min(o.WidthMM()/2, length*0.45)
	halfT := wall.ThicknessMM()/2 + 20 // overshoot so the gap clears the wall stroke

	px := func(x, y float64) string {
		return svg.Coord(x*pxPerMM) + "," + svg.Coord(y*pxPerMM)
	}
	corner := func(sw, sn float64) (float64, float64) {
		return c.X + dx*halfW*sw + nx*halfT*sn, c.Y + dy*halfW*sw + ny*halfT*sn
	}

	// Break the wall.
	ax, ay := corner(-1, -1)
	bx, by := corner(1, -1)
	cx2, cy2 := corner(1, 1)
	ex, ey := corner(-1, 1)
	d.Polygon(fmt.Sprintf("%s %s %s %s", px(ax, ay), px(bx, by), px(cx2, cy2), px(ex, ey)),
		fmt.Sprintf(`fill="%s"`, t.Colors.RoomFill))

	stroke := fmt.Sprintf(`stroke="%s" stroke-width="1"`, t.Colors.Stroke)

	// Jambs across the wall thickness at both ends.
	d.Line(ax*pxPerMM, ay*pxPerMM, ex*pxPerMM, ey*pxPerMM, stroke)
	d.Line(bx*pxPerMM, by*pxPerMM, cx2*pxPerMM, cy2*pxPerMM, stroke)

	if o.Type.IsDoor() {
		planDoorLeaf(d, t, c, dx, dy, nx, ny, halfW, pxPerMM)
		return
	}

	// Window: wall faces plus the center glazing line.
	faceT := wall.ThicknessMM() / 2
	for _, sn := range []float64{-1, 0, 1} {
		x1, y1 := c.X-dx*halfW+nx*faceT*sn, c.Y-dy*halfW+ny*faceT*sn
		x2, y2 := c.X+dx*halfW+nx*faceT*sn, c.Y+dy*halfW+ny*faceT*sn
		w := "1"
		if sn == 0 {
			w = "0.7"
		}
		d.Line(x1*pxPerMM, y1*pxPerMM, x2*pxPerMM, y2*pxPerMM,
			fmt.Sprintf(`stroke="%s" stroke-width="%s"`, t.Colors.Stroke, w))
	}
}

// planDoorLeaf draws the open leaf and its swing arc. The hinge sits on the
// start-side jamb; the leaf opens to the wall's normal side.
func planDoorLeaf(d *svg.Document, t style.Theme, c model.Point, dx, dy, nx, ny, halfW, pxPerMM float64) {
	w := halfW * 2
	hx, hy := c.X-dx*halfW, c.Y-dy*halfW // hinge
	tx, ty := hx+nx*w, hy+ny*w           // leaf tip
	ex, ey := hx+dx*w, hy+dy*w           // far jamb

	d.Line(hx*pxPerMM, hy*pxPerMM, tx*pxPerMM, ty*pxPerMM,
		fmt.Sprintf(`stroke="%s" stroke-width="1.5"`, t.Colors.Stroke))

	r := svg.Coord(w * pxPerMM)
	d.Path(fmt.Sprintf("M %s,%s A %s,%s 0 0 1 %s,%s",
		svg.Coord(ex*pxPerMM), svg.Coord(ey*pxPerMM), r, r,
		svg.Coord(tx*pxPerMM), svg.Coord(ty*pxPerMM)),
		fmt.Sprintf(`fill="none" stroke="%s" stroke-width="0.7" stroke-dasharray="3 2"`, t.Colors.StrokeLight))
}

// ---------------------------------------------------------------------------
// Elevation symbols
// ---------------------------------------------------------------------------

// glazingDivisions derives the pane grid for one axis from its pixel size.
func glazingDivisions(px float64) int {
	n := int(math.Round(px / 30))
	if n < 1 {
		n = 1
	}
	return n
}

// elevWindow draws a window in facade view: frame, glass, glazing-bar grid
// sized to the opening, and a sill. Screen coordinates, y down.
func elevWindow(d *svg.Document, t style.Theme, x, y, w, h float64) {
	stroke := fmt.Sprintf(`stroke="%s" stroke-width="1"`, t.Colors.Stroke)
	thin := fmt.Sprintf(`stroke="%s" stroke-width="0.6"`, t.Colors.Stroke)

	d.Rect(x, y, w, h, fmt.Sprintf(`fill="%s" %s`, t.Colors.GlassFill, stroke))
	if w > 8 && h > 8 {
		d.Rect(x+2, y+2, w-4, h-4, `fill="none" `+thin)
	}

	cols := glazingDivisions(w)
	rows := glazingDivisions(h)
	for i := 1; i < cols; i++ {
		gx := x + w*float64(i)/float64(cols)
		d.Line(gx, y, gx, y+h, thin)
	}
	for i := 1; i < rows; i++ {
		gy := y + h*float64(i)/float64(rows)
		d.Line(x, gy, x+w, gy, thin)
	}

	d.Rect(x-3, y+h, w+6, 3, fmt.Sprintf(`fill="%s" %s`, t.Colors.RoomFill, thin))
}

// elevDoor draws a door in facade view: panel, two raised panels and a
// handle.
func elevDoor(d *svg.Document, t style.Theme, x, y, w, h float64) {
	stroke := fmt.Sprintf(`stroke="%s" stroke-width="1"`, t.Colors.Stroke)
	thin := fmt.Sprintf(`stroke="%s" stroke-width="0.6"`, t.Colors.Stroke)

	d.Rect(x, y, w, h, fmt.Sprintf(`fill="%s" %s`, t.Colors.CirculationFill, stroke))
	if w > 14 && h > 20 {
		d.Rect(x+w*0.18, y+h*0.12, w*0.64, h*0.3, `fill="none" `+thin)
		d.Rect(x+w*0.18, y+h*0.52, w*0.64, h*0.36, `fill="none" `+thin)
	}
	d.Circle(x+w*0.84, y+h*0.55, 1.8, fmt.Sprintf(`fill="%s"`, t.Colors.Stroke))
}
