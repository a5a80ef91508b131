package projection

import (
	"strings"
	"testing"

	"github.com/atelierpx/orthograph/pkg/style"
	"github.com/atelierpx/orthograph/pkg/svg"
)

func TestPaperScale(t *testing.T) {
	tests := []struct {
		scale float64
		want  float64
	}{
		{50, 20},
		{48, 20.8},
		{100, 10},
		{20, 50},
		{0, 20}, // defaults
	}
	for _, tt := range tests {
		if got := paperScale(tt.scale); got != tt.want {
			t.Errorf("paperScale(%v) = %v, want %v", tt.scale, got, tt.want)
		}
	}
}

func TestGlazingDivisions(t *testing.T) {
	tests := []struct {
		px   float64
		want int
	}{
		{60, 2},
		{14, 1},
		{100, 3},
		{45, 2},
		{0, 1},
	}
	for _, tt := range tests {
		if got := glazingDivisions(tt.px); got != tt.want {
			t.Errorf("glazingDivisions(%v) = %d, want %d", tt.px, got, tt.want)
		}
	}
}

func TestDimLabel(t *testing.T) {
	tests := []struct {
		mm   float64
		want string
	}{
		{10000, "10.0m"},
		{8450, "8.5m"},
		{2700, "2.7m"},
	}
	for _, tt := range tests {
		if got := dimLabel(tt.mm); got != tt.want {
			t.Errorf("dimLabel(%v) = %q, want %q", tt.mm, got, tt.want)
		}
	}
}

func TestLevelLabel(t *testing.T) {
	tests := []struct {
		mm   float64
		want string
	}{
		{0, "±0.00"},
		{2700, "+2.70"},
		{5400, "+5.40"},
	}
	for _, tt := range tests {
		if got := levelLabel(tt.mm); got != tt.want {
			t.Errorf("levelLabel(%v) = %q, want %q", tt.mm, got, tt.want)
		}
	}
}

func TestHatchDefReturnsReference(t *testing.T) {
	d := svg.New(100, 100)
	ref := hatchDef(d, "#999999", 45, 6, 0.6)
	if ref != "url(#hatch-1)" {
		t.Fatalf("hatch ref = %q", ref)
	}
	if !strings.Contains(d.String(), `<pattern id="hatch-1"`) {
		t.Fatal("pattern def missing from document")
	}
}

func TestMaterialFill(t *testing.T) {
	theme := style.Default()

	t.Run("brick gets a pattern", func(t *testing.T) {
		d := svg.New(100, 100)
		ref := materialFill(d, theme, "Red Brick", "#9b6a55")
		if !strings.HasPrefix(ref, "url(#mat-") {
			t.Fatalf("brick fill = %q, want pattern reference", ref)
		}
		if !strings.Contains(d.String(), "#9b6a55") {
			t.Fatal("pattern lost the material color")
		}
	})

	t.Run("unknown material is a flat fill", func(t *testing.T) {
		d := svg.New(100, 100)
		if got := materialFill(d, theme, "Render", "#e8e4da"); got != "#e8e4da" {
			t.Fatalf("flat fill = %q", got)
		}
	})

	t.Run("missing color falls back to neutral", func(t *testing.T) {
		d := svg.New(100, 100)
		if got := materialFill(d, theme, "", ""); got != neutralFill {
			t.Fatalf("fallback fill = %q", got)
		}
	})
}

func TestTitleBlockContent(t *testing.T) {
	d := svg.New(1000, 700)
	titleBlock(d, style.Default(), "Ground Floor Plan", "A-100", 50)
	out := d.String()
	for _, want := range []string{"Ground Floor Plan", "A-100", "Scale 1:20"} {
		if !strings.Contains(out, want) {
			t.Errorf("title block missing %q", want)
		}
	}
}
