package projection

import "github.com/atelierpx/orthograph/pkg/style"

// Canvas defaults shared by all three projectors, in px.
const (
	// DefaultScale is the drawing scale in px per metre. At 50 px/m one
	// model mm is 0.05 px, which corresponds to a 1:20 paper scale label.
	DefaultScale = 50

	defaultCanvasW = 1000
	defaultCanvasH = 700
	canvasMargin   = 100
)

// FloorPlanOptions configure one floor-plan projection. The zero value
// renders everything with defaults; boolean layers default on, so use Bool
// to switch one off.
type FloorPlanOptions struct {
	Scale          float64 `json:"scale,omitempty"`  // px per metre
	Width          float64 `json:"width,omitempty"`  // canvas px
	Height         float64 `json:"height,omitempty"` // canvas px
	Theme          string  `json:"theme,omitempty"`
	ShowDimensions *bool   `json:"showDimensions,omitempty"`
	ShowRoomLabels *bool   `json:"showRoomLabels,omitempty"`
	ShowFurniture  *bool   `json:"showFurniture,omitempty"`
	ShowWallHatch  *bool   `json:"showWallHatch,omitempty"`

	// Styles is the theme lookup; nil means the built-in presets.
	Styles *style.Registry `json:"-"`
}

// ElevationOptions configure one elevation projection.
type ElevationOptions struct {
	Scale          float64 `json:"scale,omitempty"`
	Width          float64 `json:"width,omitempty"`
	Height         float64 `json:"height,omitempty"`
	Theme          string  `json:"theme,omitempty"`
	ShowDimensions *bool   `json:"showDimensions,omitempty"`

	Styles *style.Registry `json:"-"`
}

// SectionOptions configure one section projection.
type SectionOptions struct {
	Scale          float64 `json:"scale,omitempty"`
	Width          float64 `json:"width,omitempty"`
	Height         float64 `json:"height,omitempty"`
	Theme          string  `json:"theme,omitempty"`
	ShowDimensions *bool   `json:"showDimensions,omitempty"`

	Styles *style.Registry `json:"-"`
}

// Bool is a convenience for the optional layer toggles.
func Bool(v bool) *bool { return &v }

// enabled treats an unset toggle as on.
func enabled(p *bool) bool { return p == nil || *p }

func scaleOr(v float64) float64 {
	if v > 0 {
		return v
	}
	return DefaultScale
}

func sizeOr(v, fallback float64) float64 {
	if v > 0 {
		return v
	}
	return fallback
}

// resolveTheme looks the theme up in the supplied registry, or in the
// built-in presets when none was injected.
func resolveTheme(reg *style.Registry, name string) style.Theme {
	if reg == nil {
		reg = style.NewRegistry()
	}
	return reg.Get(name)
}
