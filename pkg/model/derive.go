package model

import (
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Fallback dimensions in mm for models missing the relevant metadata.
const (
	defaultFloorHeight   = 2700
	defaultSlabThickness = 225
	defaultExternalThick = 300
	defaultInternalThick = 100
	defaultParapet       = 300
	defaultPitchDeg      = 35
	defaultMonoPitchDeg  = 15
)

// degenerateWallMM: walls shorter than this carry no hatch and no openings.
const degenerateWallMM = 1.0

// ringOf converts a polygon to a closed orb ring for planar math.
func ringOf(pts []Point) orb.Ring {
	if len(pts) == 0 {
		return nil
	}
	r := make(orb.Ring, 0, len(pts)+1)
	for _, p := range pts {
		r = append(r, orb.Point{p.X, p.Y})
	}
	if !r.Closed() {
		r = append(r, r[0])
	}
	return r
}

// ---------------------------------------------------------------------------
// Room
// ---------------------------------------------------------------------------

// Bounds returns the room's axis-aligned extent, deriving it from the
// polygon when the model carries no explicit box.
func (r *Room) Bounds() BoundingBox {
	if r.BoundingBox != nil {
		return *r.BoundingBox
	}
	ring := ringOf(r.Polygon)
	if ring == nil {
		return BoundingBox{}
	}
	b := ring.Bound()
	return BoundingBox{MinX: b.Min[0], MaxX: b.Max[0], MinY: b.Min[1], MaxY: b.Max[1]}
}

// Centroid returns the room's label anchor: the stored center when present,
// else the area centroid, else the vertex average for degenerate rings.
func (r *Room) Centroid() Point {
	if r.Center != nil {
		return *r.Center
	}
	ring := ringOf(r.Polygon)
	if ring == nil {
		return Point{}
	}
	c, area := planar.CentroidArea(ring)
	if math.Abs(area) > 1e-9 {
		return Point{X: c[0], Y: c[1]}
	}
	var sx, sy float64
	for _, p := range r.Polygon {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(r.Polygon))
	return Point{X: sx / n, Y: sy / n}
}

// AreaSquareMeters returns the room area, computing it from the polygon
// when areaM2 is absent.
func (r *Room) AreaSquareMeters() float64 {
	if r.AreaM2 > 0 {
		return r.AreaM2
	}
	ring := ringOf(r.Polygon)
	if ring == nil {
		return 0
	}
	return math.Abs(planar.Area(ring)) / 1e6
}

// SpanMM returns the room's width and depth in mm, preferring explicit
// fields (mm, then legacy metres) over the polygon extent.
func (r *Room) SpanMM() (w, d float64) {
	b := r.Bounds()
	w, d = b.Width(), b.Height()
	if r.WidthMM > 0 {
		w = r.WidthMM
	} else if r.Width > 0 {
		w = r.Width * 1000
	}
	if r.DepthMM > 0 {
		d = r.DepthMM
	} else if r.Depth > 0 {
		d = r.Depth * 1000
	}
	return w, d
}

// ContainsPoint reports whether p falls inside the room polygon.
func (r *Room) ContainsPoint(p Point) bool {
	ring := ringOf(r.Polygon)
	if ring == nil {
		return false
	}
	return planar.RingContains(ring, orb.Point{p.X, p.Y})
}

// Circulation reports whether the room is circulation space, by flag or by
// conventional name.
func (r *Room) Circulation() bool {
	if r.IsCirculation {
		return true
	}
	name := strings.ToLower(r.Name)
	for _, kw := range []string{"hall", "landing", "stair", "corridor"} {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

// ---------------------------------------------------------------------------
// Wall
// ---------------------------------------------------------------------------

// Length returns the wall's plan length in mm.
func (w *Wall) Length() float64 {
	return math.Hypot(w.End.X-w.Start.X, w.End.Y-w.Start.Y)
}

// Degenerate reports whether the wall is too short to draw.
func (w *Wall) Degenerate() bool {
	return w.Length() < degenerateWallMM
}

// PointAt returns the point at parameter t along the wall, 0=start 1=end.
func (w *Wall) PointAt(t float64) Point {
	return Point{
		X: w.Start.X + (w.End.X-w.Start.X)*t,
		Y: w.Start.Y + (w.End.Y-w.Start.Y)*t,
	}
}

// Midpoint returns the wall's center point.
func (w *Wall) Midpoint() Point { return w.PointAt(0.5) }

// Direction returns the unit vector from start to end. Zero for
// degenerate walls.
func (w *Wall) Direction() (dx, dy float64) {
	l := w.Length()
	if l == 0 {
		return 0, 0
	}
	return (w.End.X - w.Start.X) / l, (w.End.Y - w.Start.Y) / l
}

// Normal returns the unit vector perpendicular to the wall axis.
func (w *Wall) Normal() (nx, ny float64) {
	dx, dy := w.Direction()
	return -dy, dx
}

// ThicknessMM returns the wall thickness in mm, normalized, with
// per-kind defaults.
func (w *Wall) ThicknessMM() float64 {
	if t := lengthMM(w.Thickness); t > 0 {
		return t
	}
	if w.Kind == WallExternal {
		return defaultExternalThick
	}
	return defaultInternalThick
}

// ---------------------------------------------------------------------------
// Floor
// ---------------------------------------------------------------------------

// HeightMM returns the storey height in mm: floorHeight, else zTop-zBase,
// else the conventional default.
func (f *Floor) HeightMM() float64 {
	if h := lengthMM(f.FloorHeight); h > 0 {
		return h
	}
	if d := lengthMM(f.ZTop) - lengthMM(f.ZBase); d > 0 {
		return d
	}
	return defaultFloorHeight
}

// BaseMM returns the floor's base height above datum in mm.
func (f *Floor) BaseMM() float64 { return lengthMM(f.ZBase) }

// TopMM returns the floor's top height above datum in mm.
func (f *Floor) TopMM() float64 { return f.BaseMM() + f.HeightMM() }

// SlabMM returns the slab thickness in mm with a conventional default.
func (f *Floor) SlabMM() float64 {
	if t := lengthMM(f.Slab.Thickness); t > 0 {
		return t
	}
	return defaultSlabThickness
}

// WallByID returns the floor's wall with the given id, or nil.
func (f *Floor) WallByID(id string) *Wall {
	if id == "" {
		return nil
	}
	for i := range f.Walls {
		if f.Walls[i].ID == id {
			return &f.Walls[i]
		}
	}
	return nil
}

// ExternalWalls returns the floor's envelope walls.
func (f *Floor) ExternalWalls() []*Wall {
	var out []*Wall
	for i := range f.Walls {
		if f.Walls[i].Kind == WallExternal {
			out = append(out, &f.Walls[i])
		}
	}
	return out
}

// InternalWalls returns the floor's partition walls.
func (f *Floor) InternalWalls() []*Wall {
	var out []*Wall
	for i := range f.Walls {
		if f.Walls[i].Kind == WallInternal {
			out = append(out, &f.Walls[i])
		}
	}
	return out
}

// DisplayName returns the storey name used in titles: the stored name, or
// the UK convention (Ground, First, Level N).
func (f *Floor) DisplayName() string {
	if f.Name != "" {
		return f.Name
	}
	switch f.Index {
	case 0:
		return "Ground"
	case 1:
		return "First"
	default:
		return "Level " + strconv.Itoa(f.Index)
	}
}

// ---------------------------------------------------------------------------
// BuildingModel
// ---------------------------------------------------------------------------

// Dimensions is the overall building envelope in metres.
type Dimensions struct {
	Width       float64 `json:"width"`
	Depth       float64 `json:"depth"`
	RidgeHeight float64 `json:"ridgeHeight"`
}

// Floor returns the floor at index i, or nil when out of range.
func (m *BuildingModel) Floor(i int) *Floor {
	if i < 0 || i >= len(m.Floors) {
		return nil
	}
	return &m.Floors[i]
}

// FootprintBounds returns the building's plan extent in mm: the envelope
// footprint when present, else the union of every room and wall.
func (m *BuildingModel) FootprintBounds() BoundingBox {
	if ring := ringOf(m.Envelope.Footprint); ring != nil {
		b := ring.Bound()
		return BoundingBox{MinX: b.Min[0], MaxX: b.Max[0], MinY: b.Min[1], MaxY: b.Max[1]}
	}

	first := true
	var box BoundingBox
	grow := func(x, y float64) {
		if first {
			box = BoundingBox{MinX: x, MaxX: x, MinY: y, MaxY: y}
			first = false
			return
		}
		box.MinX = min(box.MinX, x)
		box.MaxX = max(box.MaxX, x)
		box.MinY = min(box.MinY, y)
		box.MaxY = max(box.MaxY, y)
	}
	for fi := range m.Floors {
		f := &m.Floors[fi]
		for ri := range f.Rooms {
			for _, p := range f.Rooms[ri].Polygon {
				grow(p.X, p.Y)
			}
		}
		for wi := range f.Walls {
			grow(f.Walls[wi].Start.X, f.Walls[wi].Start.Y)
			grow(f.Walls[wi].End.X, f.Walls[wi].End.Y)
		}
	}
	return box
}

// DimensionsMeters returns overall width, depth and ridge height in metres.
// Models with no plan geometry at all fall back to a nominal 10 x 8 m
// envelope so elevations and sections still produce a readable document.
func (m *BuildingModel) DimensionsMeters() Dimensions {
	b := m.FootprintBounds()
	w, d := b.Width()/1000, b.Height()/1000
	if w <= 0 {
		w = 10
	}
	if d <= 0 {
		d = 8
	}
	return Dimensions{Width: w, Depth: d, RidgeHeight: m.RidgeMM() / 1000}
}

// WallTopMM returns the wall-head (eaves) height above datum in mm.
func (m *BuildingModel) WallTopMM() float64 {
	if h := lengthMM(m.Envelope.Height); h > 0 {
		return h
	}
	var sum float64
	for i := range m.Floors {
		sum += m.Floors[i].HeightMM()
	}
	if sum > 0 {
		return sum
	}
	return defaultFloorHeight
}

// RidgeMM returns the ridge height above datum in mm, estimating from the
// roof pitch over the shorter plan span when the model carries none.
func (m *BuildingModel) RidgeMM() float64 {
	if h := lengthMM(m.Roof.RidgeHeight); h > 0 {
		return h
	}
	top := m.WallTopMM()
	b := m.FootprintBounds()
	span := min(b.Width(), b.Height())
	if span <= 0 {
		span = 8000
	}
	switch m.Roof.Type {
	case RoofFlat:
		return top + defaultParapet
	case RoofMono:
		pitch := m.Roof.PitchDeg
		if pitch <= 0 {
			pitch = defaultMonoPitchDeg
		}
		return top + math.Tan(pitch*math.Pi/180)*span
	default:
		pitch := m.Roof.PitchDeg
		if pitch <= 0 {
			pitch = defaultPitchDeg
		}
		return top + math.Tan(pitch*math.Pi/180)*span/2
	}
}

// EavesMM returns the roof overhang beyond the wall face in mm.
func (r *Roof) EavesMM() float64 {
	return lengthMM(r.Overhangs.Eaves)
}

// FacadeWidthMM returns the facade's horizontal extent: building width for
// north/south, depth for east/west.
func (m *BuildingModel) FacadeWidthMM(f Facade) float64 {
	dims := m.DimensionsMeters()
	if f == FacadeEast || f == FacadeWest {
		return dims.Depth * 1000
	}
	return dims.Width * 1000
}

// ridgeRunsEastWest reports whether the ridge runs along the X axis.
// The ridge follows the longer plan dimension.
func (m *BuildingModel) ridgeRunsEastWest() bool {
	dims := m.DimensionsMeters()
	return dims.Width >= dims.Depth
}

// RoofProfile returns the roof outline seen from facade f as points along
// the facade (x in [0, facadeWidth], z above datum, both mm). The caller
// closes the polygon along the wall head. Gable ends show the triangle;
// eaves sides show the ridge band; hips show the trapezoid; flat roofs a
// parapet; mono-pitch a wedge on the end facades.
func (m *BuildingModel) RoofProfile(f Facade) []ProfilePoint {
	fw := m.FacadeWidthMM(f)
	top := m.WallTopMM()
	ridge := m.RidgeMM()

	gableEnd := f == FacadeEast || f == FacadeWest
	if !m.ridgeRunsEastWest() {
		gableEnd = !gableEnd
	}

	switch m.Roof.Type {
	case RoofFlat:
		p := top + defaultParapet
		return []ProfilePoint{{0, top}, {0, p}, {fw, p}, {fw, top}}
	case RoofMono:
		if f == FacadeEast || f == FacadeWest {
			return []ProfilePoint{{0, top}, {0, ridge}, {fw, top}}
		}
		return []ProfilePoint{{0, top}, {0, ridge}, {fw, ridge}, {fw, top}}
	case RoofHip:
		if gableEnd {
			return []ProfilePoint{{0, top}, {fw / 2, ridge}, {fw, top}}
		}
		return []ProfilePoint{{0, top}, {fw * 0.25, ridge}, {fw * 0.75, ridge}, {fw, top}}
	default: // gable
		if gableEnd {
			return []ProfilePoint{{0, top}, {fw / 2, ridge}, {fw, top}}
		}
		return []ProfilePoint{{0, top}, {0, ridge}, {fw, ridge}, {fw, top}}
	}
}

// ExteriorMaterial returns the dominant facade material: the first entry
// whose application mentions walls, exteriors or facades, else the first
// material, else nil.
func (m *BuildingModel) ExteriorMaterial() *Material {
	for i := range m.Style.Materials {
		app := strings.ToLower(m.Style.Materials[i].Application)
		for _, kw := range []string{"wall", "exterior", "facade"} {
			if strings.Contains(app, kw) {
				return &m.Style.Materials[i]
			}
		}
	}
	if len(m.Style.Materials) > 0 {
		return &m.Style.Materials[0]
	}
	return nil
}

// FacadeFromID recovers the facade from legacy opening ids of the form
// {type}_{floor}_{facade}_{index}, e.g. "win_0_S_1". Empty when the id
// does not follow the convention.
func FacadeFromID(id string) Facade {
	parts := strings.Split(id, "_")
	if len(parts) >= 4 {
		if f := Facade(parts[2]); f.Valid() {
			return f
		}
	}
	return ""
}

// ResolveFacade returns the facade the opening belongs to: the stored
// field, then the host wall's facade, then the legacy id encoding.
func (o *Opening) ResolveFacade(f *Floor) Facade {
	if o.Facade.Valid() {
		return o.Facade
	}
	if f != nil {
		if w := f.WallByID(o.WallID); w != nil && w.Facade.Valid() {
			return w.Facade
		}
	}
	return FacadeFromID(o.ID)
}

// FacadeOpening is an opening resolved for elevation projection, with the
// floor that hosts it and its wall when one could be found.
type FacadeOpening struct {
	Opening *Opening
	Floor   *Floor
	Wall    *Wall // nil when no wall resolved
}

// OpeningsForFacade collects every opening visible on the facade, across
// all floors. Openings whose wallId resolves to a degenerate wall are
// dropped; openings whose wallId does not resolve fall back to any external
// wall on the requested facade.
func (m *BuildingModel) OpeningsForFacade(f Facade) []FacadeOpening {
	var out []FacadeOpening
	for fi := range m.Floors {
		floor := &m.Floors[fi]
		var fallback *Wall
		for _, w := range floor.ExternalWalls() {
			if w.Facade == f && !w.Degenerate() {
				fallback = w
				break
			}
		}
		for oi := range floor.Openings {
			o := &floor.Openings[oi]
			if o.ResolveFacade(floor) != f {
				continue
			}
			wall := floor.WallByID(o.WallID)
			if wall != nil && wall.Degenerate() {
				continue
			}
			if wall == nil {
				wall = fallback
			}
			out = append(out, FacadeOpening{Opening: o, Floor: floor, Wall: wall})
		}
	}
	return out
}
