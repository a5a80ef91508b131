// Package model defines the canonical building geometry consumed by the
// projection engine: floors, rooms, walls, openings, envelope and roof, in a
// single millimetre-based coordinate frame. The model is decoded once
// upstream and treated as read-only by every projector.
package model

// Point is a 2D coordinate in model millimetres. Plan views map model X to
// screen X and model Y to screen depth (sign-flipped) for north-up drawings.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ProfilePoint is a facade-plane coordinate: X runs along the facade,
// Z is height above the ground datum. Millimetres.
type ProfilePoint struct {
	X float64 `json:"x"`
	Z float64 `json:"z"`
}

// ---------------------------------------------------------------------------
// Enumerations
// ---------------------------------------------------------------------------

// Facade identifies one of the four cardinal elevations.
type Facade string

const (
	FacadeNorth Facade = "N"
	FacadeSouth Facade = "S"
	FacadeEast  Facade = "E"
	FacadeWest  Facade = "W"
)

// AllFacades returns the facades in drawing-set order (N, S, E, W).
func AllFacades() []Facade {
	return []Facade{FacadeNorth, FacadeSouth, FacadeEast, FacadeWest}
}

// Valid reports whether f is one of the four cardinal facades.
func (f Facade) Valid() bool {
	switch f {
	case FacadeNorth, FacadeSouth, FacadeEast, FacadeWest:
		return true
	}
	return false
}

// Name returns the long-form facade name used in drawing titles.
func (f Facade) Name() string {
	switch f {
	case FacadeNorth:
		return "North"
	case FacadeSouth:
		return "South"
	case FacadeEast:
		return "East"
	case FacadeWest:
		return "West"
	default:
		return string(f)
	}
}

// WallKind distinguishes envelope walls from partition walls.
type WallKind string

const (
	WallExternal WallKind = "external"
	WallInternal WallKind = "internal"
)

// OpeningType is the opening category. Legacy data also carries "entrance"
// and "patio", which render with door semantics.
type OpeningType string

const (
	OpeningWindow   OpeningType = "window"
	OpeningDoor     OpeningType = "door"
	OpeningEntrance OpeningType = "entrance"
	OpeningPatio    OpeningType = "patio"
)

// IsDoor reports whether the opening renders with door semantics
// (leaf, swing arc, zero default sill).
func (t OpeningType) IsDoor() bool {
	switch t {
	case OpeningDoor, OpeningEntrance, OpeningPatio:
		return true
	}
	return false
}

// RoofType selects the roof massing used when projecting elevations
// and sections.
type RoofType string

const (
	RoofGable RoofType = "gable"
	RoofHip   RoofType = "hip"
	RoofFlat  RoofType = "flat"
	RoofMono  RoofType = "mono"
)

// ---------------------------------------------------------------------------
// Geometry entities
// ---------------------------------------------------------------------------

// BoundingBox is an axis-aligned extent in model millimetres.
type BoundingBox struct {
	MinX float64 `json:"minX"`
	MaxX float64 `json:"maxX"`
	MinY float64 `json:"minY"`
	MaxY float64 `json:"maxY"`
}

// Width returns the X extent.
func (b BoundingBox) Width() float64 { return b.MaxX - b.MinX }

// Height returns the Y extent.
func (b BoundingBox) Height() float64 { return b.MaxY - b.MinY }

// Center returns the box midpoint.
func (b BoundingBox) Center() Point {
	return Point{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2}
}

// Room is one enclosed space on a floor. The polygon ring may arrive open or
// closed; accessors normalize. Legacy encodings carry width/depth in metres.
type Room struct {
	Name          string       `json:"name"`
	Polygon       []Point      `json:"polygon"`
	Center        *Point       `json:"center,omitempty"`
	AreaM2        float64      `json:"areaM2,omitempty"`
	IsCirculation bool         `json:"isCirculation,omitempty"`
	Width         float64      `json:"width,omitempty"`   // legacy metres
	Depth         float64      `json:"depth,omitempty"`   // legacy metres
	WidthMM       float64      `json:"widthMM,omitempty"`
	DepthMM       float64      `json:"depthMM,omitempty"`
	BoundingBox   *BoundingBox `json:"boundingBox,omitempty"`
}

// Wall is a straight wall segment in plan. External walls may carry the
// facade they belong to.
type Wall struct {
	ID            string   `json:"id"`
	Start         Point    `json:"start"`
	End           Point    `json:"end"`
	Kind          WallKind `json:"type"`
	Thickness     float64  `json:"thickness,omitempty"`
	Facade        Facade   `json:"facade,omitempty"`
	ConnectsRooms []string `json:"connectsRooms,omitempty"`
}

// Opening is a window or door hosted by a wall. Position encodings vary
// across legacy data; resolution lives in PlacementRatio and SillMM.
type Opening struct {
	ID         string        `json:"id,omitempty"`
	WallID     string        `json:"wallId,omitempty"`
	Type       OpeningType   `json:"type"`
	Width      float64       `json:"width,omitempty"`  // mm, or legacy metres
	Height     float64       `json:"height,omitempty"` // mm, or legacy metres
	Position   *PositionSpec `json:"position,omitempty"`
	PositionMM *float64      `json:"positionMM,omitempty"`
	SillHeight *float64      `json:"sillHeight,omitempty"`
	ZBase      *float64      `json:"zBase,omitempty"`
	X          *float64      `json:"x,omitempty"` // raw plan coordinate fallback
	IsEntrance bool          `json:"isEntrance,omitempty"`
	FloorIndex int           `json:"floorIndex,omitempty"`
	Facade     Facade        `json:"facade,omitempty"`
}

// Slab is the structural floor plate.
type Slab struct {
	Thickness float64 `json:"thickness,omitempty"` // mm
}

// Floor is one storey: its vertical band plus the plan entities it hosts.
type Floor struct {
	Index       int       `json:"index"`
	Name        string    `json:"name,omitempty"`
	ZBase       float64   `json:"zBase"`
	ZTop        float64   `json:"zTop,omitempty"`
	FloorHeight float64   `json:"floorHeight,omitempty"`
	Slab        Slab      `json:"slab"`
	Rooms       []Room    `json:"rooms,omitempty"`
	Walls       []Wall    `json:"walls,omitempty"`
	Openings    []Opening `json:"openings,omitempty"`
}

// Envelope is the building's outer footprint and wall-head height.
type Envelope struct {
	Footprint []Point `json:"footprint,omitempty"`
	Height    float64 `json:"height,omitempty"` // mm above datum
}

// Overhangs holds roof projection distances beyond the wall face.
type Overhangs struct {
	Eaves float64 `json:"eaves,omitempty"` // mm
}

// Roof describes the roof massing. RidgeHeight is absolute above datum.
type Roof struct {
	Type        RoofType  `json:"type,omitempty"`
	RidgeHeight float64   `json:"ridgeHeight,omitempty"`
	PitchDeg    float64   `json:"pitch,omitempty"`
	Overhangs   Overhangs `json:"overhangs"`
}

// Stair is a straight flight placed in plan. Position is the flight origin.
type Stair struct {
	Width      float64 `json:"width,omitempty"`  // mm
	Length     float64 `json:"length,omitempty"` // mm
	Position   Point   `json:"position"`
	FloorIndex int     `json:"floorIndex,omitempty"`
}

// Material is a styling entry; Application says where it applies
// ("external walls", "roof", ...).
type Material struct {
	Name        string `json:"name"`
	HexColor    string `json:"hexColor,omitempty"`
	Application string `json:"application,omitempty"`
}

// Style carries the model's material palette.
type Style struct {
	Materials []Material `json:"materials,omitempty"`
}

// BuildingModel is the root: everything the projectors need for a full
// drawing set. Consumed read-only; projectors never mutate it.
type BuildingModel struct {
	DesignID string   `json:"designId,omitempty"`
	Name     string   `json:"name,omitempty"`
	Floors   []Floor  `json:"floors"`
	Envelope Envelope `json:"envelope"`
	Roof     Roof     `json:"roof"`
	Stairs   []Stair  `json:"stairs,omitempty"`
	Style    Style    `json:"style"`
}

// lengthMM normalizes a length that may arrive in legacy metres: positive
// values under 100 are metres and scale up; everything else is already mm.
func lengthMM(v float64) float64 {
	if v > 0 && v < 100 {
		return v * 1000
	}
	return v
}
