package dxf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atelierpx/orthograph/pkg/model"
)

func fp(v float64) *float64 { return &v }

func planModel() *model.BuildingModel {
	return &model.BuildingModel{
		DesignID: "dsg-007",
		Envelope: model.Envelope{
			Footprint: []model.Point{{X: 0, Y: 0}, {X: 9000, Y: 0}, {X: 9000, Y: 6000}, {X: 0, Y: 6000}},
		},
		Floors: []model.Floor{{
			Index: 0, FloorHeight: 2700,
			Rooms: []model.Room{
				{Name: "Living Room", Polygon: []model.Point{{X: 0, Y: 0}, {X: 5000, Y: 0}, {X: 5000, Y: 6000}, {X: 0, Y: 6000}}},
				{Name: "Kitchen", Polygon: []model.Point{{X: 5000, Y: 0}, {X: 9000, Y: 0}, {X: 9000, Y: 6000}, {X: 5000, Y: 6000}}},
			},
			Walls: []model.Wall{
				{ID: "ext_S", Start: model.Point{X: 0, Y: 0}, End: model.Point{X: 9000, Y: 0}, Kind: model.WallExternal, Thickness: 300, Facade: model.FacadeSouth},
				{ID: "ext_N", Start: model.Point{X: 9000, Y: 6000}, End: model.Point{X: 0, Y: 6000}, Kind: model.WallExternal, Thickness: 300, Facade: model.FacadeNorth},
				{ID: "int_1", Start: model.Point{X: 5000, Y: 0}, End: model.Point{X: 5000, Y: 6000}, Kind: model.WallInternal, Thickness: 100},
			},
			Openings: []model.Opening{
				{ID: "win_S", WallID: "ext_S", Type: model.OpeningWindow, Width: 1200, Height: 1200, Position: &model.PositionSpec{X: fp(0.3)}},
				{ID: "door_S", WallID: "ext_S", Type: model.OpeningDoor, Width: 900, Height: 2100, Position: &model.PositionSpec{X: fp(0.7)}},
			},
		}},
	}
}

func TestBuildMissingFloor(t *testing.T) {
	if _, err := Build(planModel(), 7); err == nil {
		t.Fatal("expected an error for an out-of-range floor")
	}
}

func TestBuild(t *testing.T) {
	d, err := Build(planModel(), 0)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if d == nil {
		t.Fatal("nil drawing")
	}
}

func TestExportWritesLayers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.dxf")
	if err := Export(planModel(), 0, path); err != nil {
		t.Fatalf("Export: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	out := string(raw)

	for _, layer := range []string{LayerWalls, LayerRooms, LayerDoors, LayerWindows, LayerText, LayerDims} {
		if !strings.Contains(out, layer) {
			t.Errorf("layer %s missing from output", layer)
		}
	}
	if !strings.Contains(out, "LWPOLYLINE") {
		t.Error("no polylines in output")
	}
	if !strings.Contains(out, "Living Room") {
		t.Error("room label missing from output")
	}
}

func TestDegenerateWallSkipped(t *testing.T) {
	m := planModel()
	m.Floors[0].Walls = append(m.Floors[0].Walls, model.Wall{
		ID:    "stub",
		Start: model.Point{X: 100, Y: 100},
		End:   model.Point{X: 100, Y: 100},
		Kind:  model.WallInternal,
	})
	m.Floors[0].Openings = append(m.Floors[0].Openings, model.Opening{
		ID: "win_stub", WallID: "stub", Type: model.OpeningWindow, Width: 1200,
	})
	if _, err := Build(m, 0); err != nil {
		t.Fatalf("degenerate wall broke the export: %v", err)
	}
}
