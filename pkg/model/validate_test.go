package model

import (
	"strings"
	"testing"
)

// hasError reports whether errs contains an error-severity finding whose
// message contains substr.
func hasError(errs []ValidationError, substr string) bool {
	for _, e := range errs {
		if e.Severity == SeverityError && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

// hasWarning reports whether warns contains a finding whose message
// contains substr.
func hasWarning(warns []ValidationWarning, substr string) bool {
	for _, w := range warns {
		if strings.Contains(w.Message, substr) {
			return true
		}
	}
	return false
}

func TestValidateCleanModel(t *testing.T) {
	m := buildTestHouse()
	if errs := Validate(m); len(errs) != 0 {
		t.Errorf("clean model produced %d findings: %v", len(errs), errs)
	}
	result := ValidateAll(m)
	if !result.OK() {
		t.Errorf("clean model not OK: %v", result.Errors)
	}
}

func TestValidateEmptyModel(t *testing.T) {
	errs := Validate(&BuildingModel{})
	if !hasError(errs, "no floors") {
		t.Errorf("missing no-floors error in %v", errs)
	}
}

func TestValidateDanglingWallReference(t *testing.T) {
	m := buildTestHouse()
	m.Floors[0].Openings[0].WallID = "missing_wall"
	errs := Validate(m)
	if !hasError(errs, "resolves to no wall") {
		t.Errorf("missing dangling-reference error in %v", errs)
	}
}

func TestValidateDegenerateWallIsWarning(t *testing.T) {
	m := buildTestHouse()
	m.Floors[0].Walls[4].End = m.Floors[0].Walls[4].Start
	result := ValidateAll(m)
	if !result.OK() {
		t.Errorf("degenerate wall should not block: %v", result.Errors)
	}
	if !hasWarning(result.Warnings, "degenerate wall") {
		t.Errorf("missing degenerate-wall warning in %v", result.Warnings)
	}
}

func TestValidateDuplicateWallID(t *testing.T) {
	m := buildTestHouse()
	m.Floors[0].Walls[5].ID = "ext_S"
	if errs := Validate(m); !hasError(errs, "duplicate wall id") {
		t.Errorf("missing duplicate-id error in %v", errs)
	}
}

func TestValidatePositionOutOfRange(t *testing.T) {
	m := buildTestHouse()
	m.Floors[0].Openings[0].Position = &PositionSpec{X: fp(1.4)}
	if errs := Validate(m); !hasError(errs, "outside [0,1]") {
		t.Errorf("missing out-of-range error in %v", errs)
	}
}

func TestValidateTwoPointRoom(t *testing.T) {
	m := buildTestHouse()
	m.Floors[0].Rooms[0].Polygon = []Point{{0, 0}, {1000, 0}}
	if errs := Validate(m); !hasError(errs, "polygon has 2 points") {
		t.Errorf("missing degenerate-polygon error in %v", errs)
	}
}

func TestGeometryWarningOverlappingRooms(t *testing.T) {
	m := buildTestHouse()
	m.Floors[0].Rooms[1].Polygon = []Point{{3000, 0}, {10000, 0}, {10000, 4500}, {3000, 4500}}
	result := ValidateAll(m)
	if !hasWarning(result.Warnings, "overlaps room") {
		t.Errorf("missing overlap warning in %v", result.Warnings)
	}
}

func TestGeometryWarningCornerTightOpening(t *testing.T) {
	m := buildTestHouse()
	m.Floors[0].Openings[0].Position = &PositionSpec{X: fp(0.05)}
	result := ValidateAll(m)
	if !hasWarning(result.Warnings, "wall corner") {
		t.Errorf("missing corner-clearance warning in %v", result.Warnings)
	}
}

func TestGeometryWarningOpeningWiderThanWall(t *testing.T) {
	m := buildTestHouse()
	m.Floors[0].Openings[0].Width = 12000
	result := ValidateAll(m)
	if !hasWarning(result.Warnings, "wider") {
		t.Errorf("missing width warning in %v", result.Warnings)
	}
}

func TestValidationErrorFormatting(t *testing.T) {
	e := ValidationError{Ref: "floor 0/wall ext_S", Message: "duplicate wall id", Severity: SeverityError}
	want := "[error] floor 0/wall ext_S: duplicate wall id"
	if got := e.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	modelLevel := ValidationError{Message: "model has no floors", Severity: SeverityError}
	if got := modelLevel.Error(); got != "[error] model has no floors" {
		t.Errorf("Error() = %q", got)
	}
}
