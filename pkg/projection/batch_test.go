package projection

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestAllFloorPlansKeys(t *testing.T) {
	out := AllFloorPlans(testHouse(), BatchOptions{})
	for _, key := range []string{"floor_plan_ground", "floor_plan_first", "ground_floor", "first_floor"} {
		if _, ok := out[key]; !ok {
			t.Errorf("key %q missing", key)
		}
	}
	if out["ground_floor"] != out["floor_plan_ground"] {
		t.Fatal("legacy alias diverged from the primary key")
	}
	if len(out) != 4 {
		t.Fatalf("got %d entries, want 4", len(out))
	}
}

func TestAllFloorPlansLevelKeys(t *testing.T) {
	if got := PlanKey(2); got != "floor_plan_level2" {
		t.Fatalf("PlanKey(2) = %q", got)
	}
	if got := legacyPlanKey(2); got != "second_floor" {
		t.Fatalf("legacyPlanKey(2) = %q", got)
	}
	if got := legacyPlanKey(3); got != "" {
		t.Fatalf("legacyPlanKey(3) = %q, want empty", got)
	}
}

func TestAllElevationsKeys(t *testing.T) {
	out := AllElevations(testHouse(), BatchOptions{})
	if len(out) != 4 {
		t.Fatalf("got %d elevations, want 4", len(out))
	}
	for _, key := range []string{"north", "south", "east", "west"} {
		doc, ok := out[key]
		if !ok {
			t.Fatalf("key %q missing", key)
		}
		if !strings.HasPrefix(doc, `<?xml version="1.0" encoding="UTF-8"?>`) {
			t.Fatalf("%s elevation is not a complete document", key)
		}
	}
}

func TestAllSectionsKeys(t *testing.T) {
	out := AllSections(testHouse(), BatchOptions{})
	if len(out) != 2 {
		t.Fatalf("got %d sections, want 2", len(out))
	}
	if !strings.Contains(out["section_a_a"], "A-300") {
		t.Fatal("section_a_a is not the longitudinal sheet")
	}
	if !strings.Contains(out["section_b_b"], "A-301") {
		t.Fatal("section_b_b is not the transverse sheet")
	}
}

func TestAll2DBundle(t *testing.T) {
	m := testHouse()
	bundle := All2D(m, BatchOptions{})

	if len(bundle.Drawings) != 10 {
		t.Fatalf("got %d drawings, want 10", len(bundle.Drawings))
	}
	if bundle.Meta.DesignID != "dsg-042" {
		t.Fatalf("design id = %q", bundle.Meta.DesignID)
	}
	if bundle.Meta.FloorCount != 2 {
		t.Fatalf("floor count = %d", bundle.Meta.FloorCount)
	}
	if len(bundle.Meta.Facades) != 4 || bundle.Meta.Facades[0] != "North" {
		t.Fatalf("facade summary = %v", bundle.Meta.Facades)
	}
	if bundle.Meta.GeneratedAt.IsZero() {
		t.Fatal("generation timestamp missing")
	}
}

func TestAll2DGeneratesDesignID(t *testing.T) {
	m := testHouse()
	m.DesignID = ""
	bundle := All2D(m, BatchOptions{})
	if _, err := uuid.Parse(bundle.Meta.DesignID); err != nil {
		t.Fatalf("generated design id %q is not a UUID: %v", bundle.Meta.DesignID, err)
	}
}

func TestBatchOptionsPropagate(t *testing.T) {
	m := testHouse()
	small := AllFloorPlans(m, BatchOptions{Scale: 25})
	big := AllFloorPlans(m, BatchOptions{Scale: 100})
	if small["floor_plan_ground"] == big["floor_plan_ground"] {
		t.Fatal("scale option did not reach the projector")
	}
	themed := AllElevations(m, BatchOptions{Theme: "blueprint"})
	if themed["south"] == AllElevations(m, BatchOptions{})["south"] {
		t.Fatal("theme option did not reach the projector")
	}
}
