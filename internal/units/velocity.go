// Package units provides shared constants and validation for velocity units
package units

// Unit constants
const (
	MPS  = "mps"
	KMPS = "kmps"
	FTPS = "ftps"
)

// ValidUnits contains all valid unit values
var ValidUnits = []string{MPS, KMPS, FTPS}

// IsValid checks if the given unit is in the list of valid units
func IsValid(unit string) bool {
	for _, validUnit := range ValidUnits {
		if unit == validUnit {
			return true
		}
	}
	return false
}

// GetValidUnitsString returns a comma-separated string of valid units for error messages
func GetValidUnitsString() string {
	return "mps, kmps, ftps"
}

// ConvertVelocity converts a velocity from meters per second to the
// target units. Grid files store velocities in m/s.
func ConvertVelocity(velMPS float64, targetUnits string) float64 {
	switch targetUnits {
	case MPS:
		return velMPS
	case KMPS:
		return velMPS / 1000
	case FTPS:
		return velMPS * 3.2808398950131
	default:
		return velMPS
	}
}
