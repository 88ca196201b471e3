package form

import (
	"math"
	"strconv"
	"strings"
)

// ParseArea reads the area field. Anything that is not a finite number becomes 0,
// which submission rejects as a missing area.
func ParseArea(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ParseCount reads a bedroom or bathroom choice
func ParseCount(field, raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &ValidationError{Field: field, Message: "Please choose a number of " + countNoun(field) + "."}
	}
	return n, nil
}

func countNoun(field string) string {
	switch field {
	case FieldBedrooms:
		return "bedrooms"
	case FieldBathrooms:
		return "bathrooms"
	default:
		return field
	}
}
