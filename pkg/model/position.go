package model

import (
	"encoding/json"
	"fmt"
)

// Opening position arrives in three shapes across legacy data: an object
// {"x":0.4,"z":0.3} of normalized coordinates, a bare ratio, or a bare mm
// distance. PositionSpec keeps the decoded shape intact so the precedence
// rule in PlacementRatio can disambiguate once, in one place.

// PositionSpec is the tagged union for an opening's position field.
// Exactly one form is populated: object (X and/or Z) or bare Value.
type PositionSpec struct {
	X     *float64 // normalized [0,1] along the wall (object form)
	Z     *float64 // normalized [0,1] up the storey (object form)
	Value *float64 // bare number: ratio if <=1, else mm along the wall
}

var _ json.Unmarshaler = (*PositionSpec)(nil)
var _ json.Marshaler = (*PositionSpec)(nil)

// UnmarshalJSON accepts either the object form or a bare number.
func (p *PositionSpec) UnmarshalJSON(data []byte) error {
	*p = PositionSpec{}
	if string(data) == "null" {
		return nil
	}

	var obj struct {
		X *float64 `json:"x"`
		Z *float64 `json:"z"`
	}
	if err := json.Unmarshal(data, &obj); err == nil && (obj.X != nil || obj.Z != nil) {
		p.X = obj.X
		p.Z = obj.Z
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err == nil {
		p.Value = &v
		return nil
	}

	return fmt.Errorf("position: want object {x,z} or number, got %s", string(data))
}

// MarshalJSON re-emits whichever form the value was decoded from.
func (p *PositionSpec) MarshalJSON() ([]byte, error) {
	if p.Value != nil {
		return json.Marshal(*p.Value)
	}
	obj := map[string]float64{}
	if p.X != nil {
		obj["x"] = *p.X
	}
	if p.Z != nil {
		obj["z"] = *p.Z
	}
	return json.Marshal(obj)
}

// Placement ratio bounds. Symbols collapsing into a wall corner are
// unreadable, so resolved ratios never reach the ends.
const (
	ratioMin = 0.05
	ratioMax = 0.95
)

func clampRatio(r float64) float64 {
	if r < ratioMin {
		return ratioMin
	}
	if r > ratioMax {
		return ratioMax
	}
	return r
}

// PlacementRatio resolves the opening's position along its wall to a ratio
// in [0.05, 0.95]. Precedence: object-form x, then positionMM over the wall
// length, then a bare number (ratio if <=1, else mm over the wall length),
// then the wall midpoint. Floor-plan and elevation projectors both go
// through this single rule.
func (o *Opening) PlacementRatio(wallLength float64) float64 {
	ratio := 0.5
	switch {
	case o.Position != nil && o.Position.X != nil:
		ratio = *o.Position.X
	case o.PositionMM != nil && wallLength > 0:
		ratio = *o.PositionMM / wallLength
	case o.Position != nil && o.Position.Value != nil:
		v := *o.Position.Value
		if v <= 1 {
			ratio = v
		} else if wallLength > 0 {
			ratio = v / wallLength
		}
	}
	return clampRatio(ratio)
}

// Default opening dimensions in mm, applied when the model carries none.
const (
	defaultWindowWidth  = 1200
	defaultWindowHeight = 1200
	defaultWindowSill   = 900
	defaultDoorWidth    = 900
	defaultDoorHeight   = 2100
	defaultPatioWidth   = 2400
)

// WidthMM returns the opening width in mm, normalizing legacy metre values
// and falling back to per-type defaults.
func (o *Opening) WidthMM() float64 {
	if w := lengthMM(o.Width); w > 0 {
		return w
	}
	switch o.Type {
	case OpeningPatio:
		return defaultPatioWidth
	case OpeningDoor, OpeningEntrance:
		return defaultDoorWidth
	default:
		return defaultWindowWidth
	}
}

// HeightMM returns the opening height in mm with the same normalization.
func (o *Opening) HeightMM() float64 {
	if h := lengthMM(o.Height); h > 0 {
		return h
	}
	if o.Type.IsDoor() {
		return defaultDoorHeight
	}
	return defaultWindowHeight
}

// SillMM resolves the opening's sill height above the floor base.
// Precedence: sillHeight, then zBase, then the object-form position z scaled
// by the floor height, then the per-type default (900 for windows, 0 for
// doors).
func (o *Opening) SillMM(floorHeightMM float64) float64 {
	if o.SillHeight != nil {
		return lengthMM(*o.SillHeight)
	}
	if o.ZBase != nil {
		return lengthMM(*o.ZBase)
	}
	if o.Position != nil && o.Position.Z != nil && floorHeightMM > 0 {
		return *o.Position.Z * floorHeightMM
	}
	if o.Type.IsDoor() {
		return 0
	}
	return defaultWindowSill
}
