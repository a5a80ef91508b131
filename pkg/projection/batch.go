package projection

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/atelierpx/orthograph/pkg/model"
	"github.com/atelierpx/orthograph/pkg/style"
)

// BatchOptions configure a whole drawing set; every view inherits them.
type BatchOptions struct {
	Scale float64 `json:"scale,omitempty"`
	Theme string  `json:"theme,omitempty"`

	Styles *style.Registry `json:"-"`
}

func (o BatchOptions) plan() FloorPlanOptions {
	return FloorPlanOptions{Scale: o.Scale, Theme: o.Theme, Styles: o.Styles}
}

func (o BatchOptions) elevation() ElevationOptions {
	return ElevationOptions{Scale: o.Scale, Theme: o.Theme, Styles: o.Styles}
}

func (o BatchOptions) section() SectionOptions {
	return SectionOptions{Scale: o.Scale, Theme: o.Theme, Styles: o.Styles}
}

// PlanKey is the bundle key for a floor index.
func PlanKey(i int) string {
	switch i {
	case 0:
		return "floor_plan_ground"
	case 1:
		return "floor_plan_first"
	default:
		return fmt.Sprintf("floor_plan_level%d", i)
	}
}

// ElevationKey is the bundle key for a facade.
func ElevationKey(f model.Facade) string {
	return strings.ToLower(f.Name())
}

// SectionKey is the bundle key for a cutting plane.
func SectionKey(a SectionAxis) string {
	if a == SectionTransverse {
		return "section_b_b"
	}
	return "section_a_a"
}

// legacyPlanKey is the alias early consumers keyed plans by; empty when the
// index never had one.
func legacyPlanKey(i int) string {
	switch i {
	case 0:
		return "ground_floor"
	case 1:
		return "first_floor"
	case 2:
		return "second_floor"
	}
	return ""
}

// AllFloorPlans renders every storey, keyed by floor name plus the legacy
// aliases.
func AllFloorPlans(m *model.BuildingModel, opts BatchOptions) map[string]string {
	out := make(map[string]string, len(m.Floors)*2)
	for i := range m.Floors {
		doc := FloorPlan(m, i, opts.plan())
		out[PlanKey(i)] = doc
		if k := legacyPlanKey(i); k != "" {
			out[k] = doc
		}
	}
	return out
}

// AllElevations renders the four facades keyed by compass name.
func AllElevations(m *model.BuildingModel, opts BatchOptions) map[string]string {
	out := make(map[string]string, 4)
	for _, f := range model.AllFacades() {
		out[ElevationKey(f)] = Elevation(m, f, opts.elevation())
	}
	return out
}

// AllSections renders both cutting planes.
func AllSections(m *model.BuildingModel, opts BatchOptions) map[string]string {
	return map[string]string{
		SectionKey(SectionLongitudinal): Section(m, SectionLongitudinal, opts.section()),
		SectionKey(SectionTransverse):   Section(m, SectionTransverse, opts.section()),
	}
}

// Metadata summarizes one generated drawing set.
type Metadata struct {
	DesignID    string    `json:"designId"`
	GeneratedAt time.Time `json:"generatedAt"`
	FloorCount  int       `json:"floorCount"`
	Facades     []string  `json:"facades"`
}

// Bundle is a complete 2D drawing set plus its metadata.
type Bundle struct {
	Drawings map[string]string `json:"drawings"`
	Meta     Metadata          `json:"meta"`
}

// All2D renders the complete set: every floor plan, all four elevations and
// both sections. Models without a design id get a generated one so archive
// keys stay unique.
func All2D(m *model.BuildingModel, opts BatchOptions) Bundle {
	drawings := AllFloorPlans(m, opts)
	for k, v := range AllElevations(m, opts) {
		drawings[k] = v
	}
	for k, v := range AllSections(m, opts) {
		drawings[k] = v
	}

	id := m.DesignID
	if id == "" {
		id = uuid.NewString()
	}
	facades := make([]string, 0, 4)
	for _, f := range model.AllFacades() {
		facades = append(facades, f.Name())
	}

	return Bundle{
		Drawings: drawings,
		Meta: Metadata{
			DesignID:    id,
			GeneratedAt: time.Now().UTC(),
			FloorCount:  len(m.Floors),
			Facades:     facades,
		},
	}
}
