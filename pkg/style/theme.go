// Package style holds the drawing theme presets: named color and typography
// tables consumed by the projectors when emitting stylesheets and inline
// attributes. Built-in presets cover the common cases; extra themes load
// from YAML and overlay the defaults.
package style

// Colors is the palette one theme provides. Every value is a CSS color.
type Colors struct {
	Stroke          string `yaml:"stroke"`
	StrokeLight     string `yaml:"stroke_light"`
	RoomFill        string `yaml:"room_fill"`
	CirculationFill string `yaml:"circulation_fill"`
	WallFill        string `yaml:"wall_fill"`
	WallHatch       string `yaml:"wall_hatch"`
	GroundFill      string `yaml:"ground_fill"`
	SkyFill         string `yaml:"sky_fill"`
	GlassFill       string `yaml:"glass_fill"`
	RoofFill        string `yaml:"roof_fill"`
	Dimension       string `yaml:"dimension"`
	Text            string `yaml:"text"`
	TitleText       string `yaml:"title_text"`
	Grass           string `yaml:"grass"`
	Foundation      string `yaml:"foundation"`
}

// Theme is one named preset.
type Theme struct {
	Name       string  `yaml:"name"`
	FontFamily string  `yaml:"font_family"`
	FontSize   float64 `yaml:"font_size"`
	Colors     Colors  `yaml:"colors"`
}

// DefaultName is the preset used when a requested theme is unknown.
const DefaultName = "architectural"

// architectural is the standard ink-on-paper drawing convention.
var architectural = Theme{
	Name:       DefaultName,
	FontFamily: "Helvetica, Arial, sans-serif",
	FontSize:   11,
	Colors: Colors{
		Stroke:          "#222222",
		StrokeLight:     "#8c8c8c",
		RoomFill:        "#fdfdfb",
		CirculationFill: "#f0ece1",
		WallFill:        "#2b2b2b",
		WallHatch:       "#4a4a4a",
		GroundFill:      "#d8d1c3",
		SkyFill:         "#eef3f7",
		GlassFill:       "#cfe0ea",
		RoofFill:        "#b7b1a6",
		Dimension:       "#555555",
		Text:            "#1a1a1a",
		TitleText:       "#111111",
		Grass:           "#7c8f5e",
		Foundation:      "#6e675d",
	},
}

// minimal strips the drawing to near-monochrome line work.
var minimal = Theme{
	Name:       "minimal",
	FontFamily: "Helvetica, Arial, sans-serif",
	FontSize:   10,
	Colors: Colors{
		Stroke:          "#333333",
		StrokeLight:     "#aaaaaa",
		RoomFill:        "#ffffff",
		CirculationFill: "#f5f5f5",
		WallFill:        "#444444",
		WallHatch:       "#666666",
		GroundFill:      "#e8e8e8",
		SkyFill:         "#ffffff",
		GlassFill:       "#eeeeee",
		RoofFill:        "#d5d5d5",
		Dimension:       "#777777",
		Text:            "#333333",
		TitleText:       "#222222",
		Grass:           "#bbbbbb",
		Foundation:      "#999999",
	},
}

// blueprint is light line work on a deep blue ground.
var blueprint = Theme{
	Name:       "blueprint",
	FontFamily: "Courier New, monospace",
	FontSize:   11,
	Colors: Colors{
		Stroke:          "#e9f1fb",
		StrokeLight:     "#9db8d6",
		RoomFill:        "#1d4a7d",
		CirculationFill: "#235687",
		WallFill:        "#e9f1fb",
		WallHatch:       "#c4d6ec",
		GroundFill:      "#163a63",
		SkyFill:         "#1d4a7d",
		GlassFill:       "#2f6ca3",
		RoofFill:        "#235687",
		Dimension:       "#c4d6ec",
		Text:            "#e9f1fb",
		TitleText:       "#ffffff",
		Grass:           "#9db8d6",
		Foundation:      "#0f2c4d",
	},
}

// presentation warms the palette for client-facing sheets.
var presentation = Theme{
	Name:       "presentation",
	FontFamily: "Georgia, 'Times New Roman', serif",
	FontSize:   11,
	Colors: Colors{
		Stroke:          "#3d3630",
		StrokeLight:     "#a89f93",
		RoomFill:        "#fbf7ef",
		CirculationFill: "#f1e7d4",
		WallFill:        "#4a4238",
		WallHatch:       "#6b6055",
		GroundFill:      "#cdbfa4",
		SkyFill:         "#dcebf2",
		GlassFill:       "#b8d4e3",
		RoofFill:        "#a3968a",
		Dimension:       "#6b6055",
		Text:            "#3d3630",
		TitleText:       "#2b2620",
		Grass:           "#8a9b64",
		Foundation:      "#7d7265",
	},
}

// Default returns the standard preset.
func Default() Theme { return architectural }

// fillDefaults overlays the default preset under any unset field, so
// partial YAML themes stay renderable.
func fillDefaults(t *Theme) {
	base := architectural
	if t.FontFamily == "" {
		t.FontFamily = base.FontFamily
	}
	if t.FontSize <= 0 {
		t.FontSize = base.FontSize
	}
	c, b := &t.Colors, base.Colors
	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	fill(&c.Stroke, b.Stroke)
	fill(&c.StrokeLight, b.StrokeLight)
	fill(&c.RoomFill, b.RoomFill)
	fill(&c.CirculationFill, b.CirculationFill)
	fill(&c.WallFill, b.WallFill)
	fill(&c.WallHatch, b.WallHatch)
	fill(&c.GroundFill, b.GroundFill)
	fill(&c.SkyFill, b.SkyFill)
	fill(&c.GlassFill, b.GlassFill)
	fill(&c.RoofFill, b.RoofFill)
	fill(&c.Dimension, b.Dimension)
	fill(&c.Text, b.Text)
	fill(&c.TitleText, b.TitleText)
	fill(&c.Grass, b.Grass)
	fill(&c.Foundation, b.Foundation)
}
