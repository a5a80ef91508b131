package model

import (
	"encoding/json"
	"testing"
)

func fp(v float64) *float64 { return &v }

func TestPositionSpecUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, p PositionSpec)
	}{
		{
			name:  "object form",
			input: `{"x":0.4,"z":0.3}`,
			check: func(t *testing.T, p PositionSpec) {
				if p.X == nil || *p.X != 0.4 {
					t.Errorf("X = %v, want 0.4", p.X)
				}
				if p.Z == nil || *p.Z != 0.3 {
					t.Errorf("Z = %v, want 0.3", p.Z)
				}
				if p.Value != nil {
					t.Errorf("Value = %v, want nil", *p.Value)
				}
			},
		},
		{
			name:  "object with x only",
			input: `{"x":0.7}`,
			check: func(t *testing.T, p PositionSpec) {
				if p.X == nil || *p.X != 0.7 {
					t.Errorf("X = %v, want 0.7", p.X)
				}
				if p.Z != nil {
					t.Errorf("Z = %v, want nil", *p.Z)
				}
			},
		},
		{
			name:  "bare number",
			input: `0.45`,
			check: func(t *testing.T, p PositionSpec) {
				if p.Value == nil || *p.Value != 0.45 {
					t.Errorf("Value = %v, want 0.45", p.Value)
				}
				if p.X != nil || p.Z != nil {
					t.Error("object fields set for bare number input")
				}
			},
		},
		{
			name:  "bare mm distance",
			input: `4500`,
			check: func(t *testing.T, p PositionSpec) {
				if p.Value == nil || *p.Value != 4500 {
					t.Errorf("Value = %v, want 4500", p.Value)
				}
			},
		},
		{
			name:  "null leaves all fields unset",
			input: `null`,
			check: func(t *testing.T, p PositionSpec) {
				if p.X != nil || p.Z != nil || p.Value != nil {
					t.Errorf("null decoded to %+v, want empty", p)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p PositionSpec
			if err := json.Unmarshal([]byte(tt.input), &p); err != nil {
				t.Fatalf("Unmarshal(%s): %v", tt.input, err)
			}
			tt.check(t, p)
		})
	}
}

func TestPositionSpecUnmarshalRejectsJunk(t *testing.T) {
	var p PositionSpec
	if err := json.Unmarshal([]byte(`"left"`), &p); err == nil {
		t.Error("expected error for string position, got nil")
	}
}

func TestPositionSpecMarshalRoundTrip(t *testing.T) {
	tests := []string{`{"x":0.4,"z":0.3}`, `0.45`, `{"x":0.7}`}
	for _, input := range tests {
		var p PositionSpec
		if err := json.Unmarshal([]byte(input), &p); err != nil {
			t.Fatalf("Unmarshal(%s): %v", input, err)
		}
		out, err := json.Marshal(&p)
		if err != nil {
			t.Fatalf("Marshal after %s: %v", input, err)
		}
		if string(out) != input {
			t.Errorf("round trip %s = %s", input, out)
		}
	}
}

func TestPlacementRatioPrecedence(t *testing.T) {
	tests := []struct {
		name    string
		opening Opening
		wallLen float64
		want    float64
	}{
		{
			name:    "object x wins over everything",
			opening: Opening{Position: &PositionSpec{X: fp(0.25)}, PositionMM: fp(9000)},
			wallLen: 10000,
			want:    0.25,
		},
		{
			name:    "positionMM over wall length",
			opening: Opening{PositionMM: fp(5000)},
			wallLen: 10000,
			want:    0.5,
		},
		{
			name:    "bare number as ratio when at most 1",
			opening: Opening{Position: &PositionSpec{Value: fp(0.6)}},
			wallLen: 10000,
			want:    0.6,
		},
		{
			name:    "bare number as mm when over 1",
			opening: Opening{Position: &PositionSpec{Value: fp(6000)}},
			wallLen: 10000,
			want:    0.6,
		},
		{
			name:    "absent position defaults to midpoint",
			opening: Opening{},
			wallLen: 10000,
			want:    0.5,
		},
		{
			name:    "positionMM with zero wall length falls through",
			opening: Opening{PositionMM: fp(5000)},
			wallLen: 0,
			want:    0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.opening.PlacementRatio(tt.wallLen)
			if got != tt.want {
				t.Errorf("PlacementRatio(%v) = %v, want %v", tt.wallLen, got, tt.want)
			}
		})
	}
}

func TestPlacementRatioAlwaysClamped(t *testing.T) {
	inputs := []Opening{
		{Position: &PositionSpec{X: fp(0)}},
		{Position: &PositionSpec{X: fp(1)}},
		{Position: &PositionSpec{X: fp(-3)}},
		{Position: &PositionSpec{X: fp(7.5)}},
		{PositionMM: fp(99999)},
		{PositionMM: fp(-500)},
		{Position: &PositionSpec{Value: fp(1)}},
		{Position: &PositionSpec{Value: fp(25000)}},
		{},
	}
	for i, o := range inputs {
		r := o.PlacementRatio(10000)
		if r < 0.05 || r > 0.95 {
			t.Errorf("input %d: ratio %v outside [0.05, 0.95]", i, r)
		}
	}
}

func TestOpeningDimensionNormalization(t *testing.T) {
	tests := []struct {
		name    string
		opening Opening
		width   float64
		height  float64
	}{
		{
			name:    "mm passes through",
			opening: Opening{Type: OpeningWindow, Width: 1200, Height: 1050},
			width:   1200,
			height:  1050,
		},
		{
			name:    "legacy metres scale up",
			opening: Opening{Type: OpeningWindow, Width: 1.2, Height: 1.05},
			width:   1200,
			height:  1050,
		},
		{
			name:    "window defaults",
			opening: Opening{Type: OpeningWindow},
			width:   1200,
			height:  1200,
		},
		{
			name:    "door defaults",
			opening: Opening{Type: OpeningDoor},
			width:   900,
			height:  2100,
		},
		{
			name:    "patio door defaults",
			opening: Opening{Type: OpeningPatio},
			width:   2400,
			height:  2100,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opening.WidthMM(); got != tt.width {
				t.Errorf("WidthMM() = %v, want %v", got, tt.width)
			}
			if got := tt.opening.HeightMM(); got != tt.height {
				t.Errorf("HeightMM() = %v, want %v", got, tt.height)
			}
		})
	}
}

func TestOpeningSillResolution(t *testing.T) {
	tests := []struct {
		name    string
		opening Opening
		want    float64
	}{
		{name: "explicit sill mm", opening: Opening{Type: OpeningWindow, SillHeight: fp(850)}, want: 850},
		{name: "explicit sill metres", opening: Opening{Type: OpeningWindow, SillHeight: fp(0.85)}, want: 850},
		{name: "explicit zero sill kept", opening: Opening{Type: OpeningDoor, SillHeight: fp(0)}, want: 0},
		{name: "zBase fallback", opening: Opening{Type: OpeningWindow, ZBase: fp(450)}, want: 450},
		{name: "position z scaled by floor height", opening: Opening{Type: OpeningWindow, Position: &PositionSpec{Z: fp(0.3)}}, want: 810},
		{name: "window default", opening: Opening{Type: OpeningWindow}, want: 900},
		{name: "door default", opening: Opening{Type: OpeningDoor}, want: 0},
		{name: "entrance counts as door", opening: Opening{Type: OpeningEntrance}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opening.SillMM(2700); got != tt.want {
				t.Errorf("SillMM(2700) = %v, want %v", got, tt.want)
			}
		})
	}
}
