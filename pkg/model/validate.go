package model

import "fmt"

// Validation is advisory: it exists for upstream pipelines to surface data
// problems before rendering. Projectors never gate on it; malformed input
// degrades gracefully at draw time regardless of what is reported here.

// ValidationSeverity indicates whether a finding marks broken data or is
// merely informational.
type ValidationSeverity int

const (
	SeverityError   ValidationSeverity = iota // broken data
	SeverityWarning                           // informational
)

func (s ValidationSeverity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("ValidationSeverity(%d)", int(s))
	}
}

// ValidationError describes a single validation finding.
type ValidationError struct {
	Ref      string // entity path, e.g. "floor 0/wall ext_S" (empty if model-level)
	Message  string
	Severity ValidationSeverity
}

func (e ValidationError) Error() string {
	if e.Ref == "" {
		return fmt.Sprintf("[%s] %s", e.Severity, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Severity, e.Ref, e.Message)
}

// ValidationWarning describes a non-blocking advisory finding.
type ValidationWarning struct {
	Ref     string
	Message string
}

// ValidationResult bundles errors and warnings from all validation tiers.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationWarning
}

// OK reports whether no blocking errors were found.
func (r ValidationResult) OK() bool { return len(r.Errors) == 0 }

// Validate runs the structural checks on the model and returns the
// blocking findings. An empty slice means the model is structurally sound.
// Read-only; the model is never mutated.
func Validate(m *BuildingModel) []ValidationError {
	var errs []ValidationError
	errs = append(errs, validateFloors(m)...)
	errs = append(errs, validateRooms(m)...)
	errs = append(errs, validateWalls(m)...)
	errs = append(errs, validateOpenings(m)...)
	return errs
}

// ValidateAll runs the structural checks plus the geometric advisories and
// returns a ValidationResult with separated errors and warnings.
func ValidateAll(m *BuildingModel) ValidationResult {
	var result ValidationResult
	for _, e := range Validate(m) {
		if e.Severity == SeverityWarning {
			result.Warnings = append(result.Warnings, ValidationWarning{Ref: e.Ref, Message: e.Message})
		} else {
			result.Errors = append(result.Errors, e)
		}
	}
	result.Warnings = append(result.Warnings, geometryWarnings(m)...)
	return result
}

func floorRef(i int) string { return fmt.Sprintf("floor %d", i) }

// validateFloors checks the vertical band of every storey.
func validateFloors(m *BuildingModel) []ValidationError {
	var errs []ValidationError
	if len(m.Floors) == 0 {
		errs = append(errs, ValidationError{
			Message:  "model has no floors",
			Severity: SeverityError,
		})
	}
	for i := range m.Floors {
		f := &m.Floors[i]
		if f.FloorHeight < 0 {
			errs = append(errs, ValidationError{
				Ref:      floorRef(i),
				Message:  fmt.Sprintf("negative floor height %.1f", f.FloorHeight),
				Severity: SeverityError,
			})
		}
		if f.ZTop != 0 && lengthMM(f.ZTop) < lengthMM(f.ZBase) {
			errs = append(errs, ValidationError{
				Ref:      floorRef(i),
				Message:  "zTop below zBase",
				Severity: SeverityError,
			})
		}
	}
	return errs
}

// validateRooms rejects degenerate polygons.
func validateRooms(m *BuildingModel) []ValidationError {
	var errs []ValidationError
	for i := range m.Floors {
		for ri := range m.Floors[i].Rooms {
			r := &m.Floors[i].Rooms[ri]
			if len(r.Polygon) > 0 && len(r.Polygon) < 3 {
				errs = append(errs, ValidationError{
					Ref:      fmt.Sprintf("%s/room %q", floorRef(i), r.Name),
					Message:  fmt.Sprintf("polygon has %d points, need at least 3", len(r.Polygon)),
					Severity: SeverityError,
				})
			}
		}
	}
	return errs
}

// validateWalls checks wall identity and geometry.
func validateWalls(m *BuildingModel) []ValidationError {
	var errs []ValidationError
	for i := range m.Floors {
		f := &m.Floors[i]
		seen := make(map[string]bool, len(f.Walls))
		for wi := range f.Walls {
			w := &f.Walls[wi]
			if w.ID != "" {
				if seen[w.ID] {
					errs = append(errs, ValidationError{
						Ref:      fmt.Sprintf("%s/wall %s", floorRef(i), w.ID),
						Message:  "duplicate wall id",
						Severity: SeverityError,
					})
				}
				seen[w.ID] = true
			}
			if w.Degenerate() {
				errs = append(errs, ValidationError{
					Ref:      fmt.Sprintf("%s/wall %s", floorRef(i), w.ID),
					Message:  "degenerate wall (length under 1 mm), will be skipped",
					Severity: SeverityWarning,
				})
			}
		}
	}
	return errs
}

// validateOpenings checks wall references and position encodings.
func validateOpenings(m *BuildingModel) []ValidationError {
	var errs []ValidationError
	for i := range m.Floors {
		f := &m.Floors[i]
		for oi := range f.Openings {
			o := &f.Openings[oi]
			ref := fmt.Sprintf("%s/opening %s", floorRef(i), o.ID)
			if o.WallID != "" && f.WallByID(o.WallID) == nil {
				errs = append(errs, ValidationError{
					Ref:      ref,
					Message:  fmt.Sprintf("wallId %q resolves to no wall on this floor", o.WallID),
					Severity: SeverityError,
				})
			}
			if o.Position != nil && o.Position.X != nil {
				if x := *o.Position.X; x < 0 || x > 1 {
					errs = append(errs, ValidationError{
						Ref:      ref,
						Message:  fmt.Sprintf("position.x %.3f outside [0,1]", x),
						Severity: SeverityError,
					})
				}
			}
		}
	}
	return errs
}

// Openings resolving closer to a corner than this read badly at plan scale.
const cornerClearanceMM = 200

// geometryWarnings runs the advisory geometric checks: overlapping rooms,
// corner-tight openings, openings wider than their wall, very narrow rooms.
func geometryWarnings(m *BuildingModel) []ValidationWarning {
	var warns []ValidationWarning
	for i := range m.Floors {
		f := &m.Floors[i]

		for a := 0; a < len(f.Rooms); a++ {
			for b := a + 1; b < len(f.Rooms); b++ {
				if ow, oh := boxOverlap(f.Rooms[a].Bounds(), f.Rooms[b].Bounds()); ow > 100 && oh > 100 {
					warns = append(warns, ValidationWarning{
						Ref:     fmt.Sprintf("%s/room %q", floorRef(i), f.Rooms[a].Name),
						Message: fmt.Sprintf("overlaps room %q by %.0f x %.0f mm", f.Rooms[b].Name, ow, oh),
					})
				}
			}
		}

		for ri := range f.Rooms {
			r := &f.Rooms[ri]
			if w, d := r.SpanMM(); w > 0 && d > 0 && min(w, d) < 2000 {
				warns = append(warns, ValidationWarning{
					Ref:     fmt.Sprintf("%s/room %q", floorRef(i), r.Name),
					Message: fmt.Sprintf("narrow room, %.0f mm across", min(w, d)),
				})
			}
		}

		for oi := range f.Openings {
			o := &f.Openings[oi]
			w := f.WallByID(o.WallID)
			if w == nil || w.Degenerate() {
				continue
			}
			ref := fmt.Sprintf("%s/opening %s", floorRef(i), o.ID)
			length := w.Length()
			if o.WidthMM() > length {
				warns = append(warns, ValidationWarning{
					Ref:     ref,
					Message: fmt.Sprintf("wider (%.0f mm) than its wall (%.0f mm)", o.WidthMM(), length),
				})
				continue
			}
			ratio := o.PlacementRatio(length)
			edge := min(ratio*length, (1-ratio)*length) - o.WidthMM()/2
			if edge < cornerClearanceMM {
				warns = append(warns, ValidationWarning{
					Ref:     ref,
					Message: fmt.Sprintf("within %.0f mm of a wall corner", max(edge, 0)),
				})
			}
		}
	}
	return warns
}

// boxOverlap returns the intersection extents of two boxes, zero or
// negative when they do not overlap on that axis.
func boxOverlap(a, b BoundingBox) (w, h float64) {
	w = min(a.MaxX, b.MaxX) - max(a.MinX, b.MinX)
	h = min(a.MaxY, b.MaxY) - max(a.MinY, b.MinY)
	return w, h
}
