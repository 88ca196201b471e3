package form

import (
	"slices"

	"homeprice/internal/types"
)

// Defaults for a fresh form
const (
	DefaultArea      = 1000
	DefaultBedrooms  = 2
	DefaultBathrooms = 2

	MinRooms = 1
	MaxRooms = 5
)

// State is everything one browser session has entered or been shown.
// It is persisted between requests by a session store.
type State struct {
	Area             float64      `json:"area"`
	Bedrooms         int          `json:"bedrooms"`
	Bathrooms        int          `json:"bathrooms"`
	SelectedLocation string       `json:"selected_location"`
	Locations        []string     `json:"locations"`
	LocationsFetched bool         `json:"locations_fetched"`
	LastEstimate     *types.Price `json:"last_estimate,omitempty"`
	LastError        string       `json:"last_error,omitempty"`
}

// NewState returns the state of a form that was just opened
func NewState() *State {
	return &State{
		Area:      DefaultArea,
		Bedrooms:  DefaultBedrooms,
		Bathrooms: DefaultBathrooms,
	}
}

// HasLocation reports whether name is one of the fetched locations
func (s *State) HasLocation(name string) bool {
	return slices.Contains(s.Locations, name)
}
