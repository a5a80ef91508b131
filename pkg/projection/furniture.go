package projection

import (
	"fmt"
	"strings"

	"github.com/atelierpx/orthograph/pkg/style"
	"github.com/atelierpx/orthograph/pkg/svg"
)

// furnitureFor draws a stylized furniture set into the room's screen
// rectangle, keyword-matched on the room name. Rooms with no match draw
// nothing. Symbols are schematic: enough to read the room's use at plan
// scale, nothing more.
func furnitureFor(d *svg.Document, t style.Theme, name string, x, y, w, h float64) {
	if w < 30 || h < 30 {
		return
	}
	lower := strings.ToLower(name)
	f := furnisher{d: d, t: t, x: x, y: y, w: w, h: h}

	switch {
	case strings.Contains(lower, "kitchen") && strings.Contains(lower, "dining"):
		f.kitchenRun()
		f.diningTable(0.62, 0.68)
	case strings.Contains(lower, "kitchen"):
		f.kitchenRun()
	case strings.Contains(lower, "bath"), strings.Contains(lower, "shower"),
		strings.Contains(lower, "wc"), strings.Contains(lower, "ensuite"):
		f.bathroom()
	case strings.Contains(lower, "bed"):
		f.bed()
	case strings.Contains(lower, "dining"):
		f.diningTable(0.5, 0.5)
	case strings.Contains(lower, "living"), strings.Contains(lower, "lounge"),
		strings.Contains(lower, "sitting"):
		f.livingRoom()
	}
}

// furnisher draws glyphs scaled into one room rectangle.
type furnisher struct {
	d    *svg.Document
	t    style.Theme
	x, y float64
	w, h float64
}

func (f furnisher) line() string {
	return fmt.Sprintf(`fill="none" stroke="%s" stroke-width="0.8"`, f.t.Colors.StrokeLight)
}

// at maps fractional room coordinates to screen px.
func (f furnisher) at(fx, fy float64) (float64, float64) {
	return f.x + f.w*fx, f.y + f.h*fy
}

// bed: mattress with a pillow band and a fold line.
func (f furnisher) bed() {
	bx, by := f.at(0.12, 0.25)
	bw, bh := f.w*0.42, f.h*0.5
	f.d.Rect(bx, by, bw, bh, f.line())
	f.d.Rect(bx+3, by+3, bw*0.22, bh-6, f.line())
	f.d.Line(bx+bw*0.34, by, bx+bw*0.34, by+bh, f.line())
}

// livingRoom: sofa against the lower edge and a coffee table.
func (f furnisher) livingRoom() {
	sx, sy := f.at(0.15, 0.62)
	sw, sh := f.w*0.45, f.h*0.22
	f.d.Rect(sx, sy, sw, sh, f.line())
	f.d.Line(sx, sy+sh*0.4, sx+sw, sy+sh*0.4, f.line())
	f.d.Line(sx+sw/3, sy+sh*0.4, sx+sw/3, sy+sh, f.line())
	f.d.Line(sx+2*sw/3, sy+sh*0.4, sx+2*sw/3, sy+sh, f.line())

	cx, cy := f.at(0.38, 0.4)
	f.d.Circle(cx, cy, min(f.w, f.h)*0.07, f.line())
}

// kitchenRun: counter along the top edge with a sink and four hob rings.
func (f furnisher) kitchenRun() {
	kx, ky := f.at(0.08, 0.08)
	kw, depth := f.w*0.84, min(f.h*0.18, 24.0)
	f.d.Rect(kx, ky, kw, depth, f.line())

	sw := kw * 0.18
	f.d.Rect(kx+kw*0.08, ky+depth*0.2, sw, depth*0.6, f.line())

	r := depth * 0.18
	hx := kx + kw*0.62
	for i := 0; i < 4; i++ {
		col, row := float64(i%2), float64(i/2)
		f.d.Circle(hx+col*r*3, ky+depth*0.3+row*r*2.4, r, f.line())
	}
}

// diningTable: table with six chairs, centered at the given fraction.
func (f furnisher) diningTable(cx, cy float64) {
	tw, th := f.w*0.28, f.h*0.2
	tx, ty := f.at(cx, cy)
	tx, ty = tx-tw/2, ty-th/2
	f.d.Rect(tx, ty, tw, th, f.line())

	ch := min(tw, th) * 0.28
	for i := 0; i < 3; i++ {
		off := tw * (0.16 + 0.34*float64(i))
		f.d.Rect(tx+off-ch/2, ty-ch-2, ch, ch, f.line())
		f.d.Rect(tx+off-ch/2, ty+th+2, ch, ch, f.line())
	}
}

// bathroom: tub or shower depending on aspect, a WC and a basin.
func (f furnisher) bathroom() {
	if f.w >= f.h {
		bx, by := f.at(0.06, 0.1)
		f.d.Rect(bx, by, f.w*0.4, f.h*0.3, f.line())
		f.d.Ellipse(bx+f.w*0.2, by+f.h*0.15, f.w*0.15, f.h*0.1, f.line())
	} else {
		sx, sy := f.at(0.08, 0.06)
		side := min(f.w, f.h) * 0.34
		f.d.Rect(sx, sy, side, side, f.line())
		f.d.Line(sx, sy, sx+side, sy+side, f.line())
		f.d.Line(sx+side, sy, sx, sy+side, f.line())
	}

	wx, wy := f.at(0.75, 0.72)
	f.d.Ellipse(wx, wy, f.w*0.07, f.h*0.1, f.line())
	f.d.Rect(wx-f.w*0.07, wy+f.h*0.1, f.w*0.14, f.h*0.06, f.line())

	bx, by := f.at(0.25, 0.78)
	f.d.Circle(bx, by, min(f.w, f.h)*0.08, f.line())
}
