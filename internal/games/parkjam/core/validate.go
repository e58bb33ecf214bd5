package core

import "fmt"

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// ValidateLevel checks the structural invariants of a level.
// Checks:
//   - Positive duration and non-negative start score
//   - Exactly one target vehicle
//   - Vehicle IDs match their index
//   - Every vehicle has a positive size and starts within [MinPos, MaxPos]
//   - No two vehicles overlap at the start
func ValidateLevel(l Level) error {
	if l.Duration <= 0 {
		return ValidationError{
			Code:    "INVALID_DURATION",
			Message: fmt.Sprintf("level %d has non-positive duration %v", l.ID, l.Duration),
		}
	}
	if l.StartScore < 0 {
		return ValidationError{
			Code:    "INVALID_SCORE",
			Message: fmt.Sprintf("level %d has negative start score %d", l.ID, l.StartScore),
		}
	}

	if err := validateTarget(l); err != nil {
		return err
	}

	for i, v := range l.Vehicles {
		if err := validateVehicle(l.ID, i, v); err != nil {
			return err
		}
	}

	return validateNoOverlap(l)
}

// validateTarget checks that exactly one vehicle is the target.
func validateTarget(l Level) error {
	count := 0
	for _, v := range l.Vehicles {
		if v.Target {
			count++
		}
	}
	if count != 1 {
		return ValidationError{
			Code:    "TARGET_COUNT",
			Message: fmt.Sprintf("level %d has %d target vehicles, expected 1", l.ID, count),
		}
	}
	return nil
}

// validateVehicle checks a single vehicle's size and range.
func validateVehicle(level, i int, v Vehicle) error {
	if v.ID != i {
		return ValidationError{
			Code:    "VEHICLE_ID",
			Message: fmt.Sprintf("level %d: vehicle at index %d has id %d", level, i, v.ID),
		}
	}
	if v.Size.X <= 0 || v.Size.Z <= 0 {
		return ValidationError{
			Code:    "VEHICLE_SIZE",
			Message: fmt.Sprintf("level %d: vehicle %d has non-positive size", level, i),
		}
	}
	if v.MinPos > v.MaxPos {
		return ValidationError{
			Code:    "VEHICLE_RANGE",
			Message: fmt.Sprintf("level %d: vehicle %d has min %v > max %v", level, i, v.MinPos, v.MaxPos),
		}
	}
	if c := v.Coord(); c < v.MinPos || c > v.MaxPos {
		return ValidationError{
			Code:    "VEHICLE_RANGE",
			Message: fmt.Sprintf("level %d: vehicle %d starts at %v outside [%v, %v]", level, i, c, v.MinPos, v.MaxPos),
		}
	}
	return nil
}

// validateNoOverlap checks that no vehicles overlap in the starting layout.
func validateNoOverlap(l Level) error {
	for i, v := range l.Vehicles {
		if WouldCollide(l.Vehicles, i, v.Position) {
			return ValidationError{
				Code:    "VEHICLE_OVERLAP",
				Message: fmt.Sprintf("level %d: vehicle %d overlaps another vehicle at start", l.ID, i),
			}
		}
	}
	return nil
}
