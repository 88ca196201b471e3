package form

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"homeprice/internal/providers/predictor"
	"homeprice/internal/types"
)

// Form field names, shared by the page, the JSON API and the prediction service
const (
	FieldArea      = "total_sqft"
	FieldBedrooms  = "bhk"
	FieldBathrooms = "bath"
	FieldLocation  = "location"
)

// LocationProvider lists the locations the prediction model knows about
type LocationProvider interface {
	GetLocationNames(ctx context.Context) (*predictor.LocationsAPIResponse, error)
}

// EstimateProvider asks the prediction model for a price
type EstimateProvider interface {
	PredictHomePrice(ctx context.Context, in predictor.EstimateRequest) (*predictor.EstimateAPIResponse, error)
}

// Controller applies user input and service responses to one session's State.
// It is not safe for concurrent use; build one per request.
type Controller struct {
	state     *State
	locations LocationProvider
	estimator EstimateProvider
	logger    *slog.Logger
}

// NewController wraps state. A nil state starts a fresh form.
func NewController(state *State, locations LocationProvider, estimator EstimateProvider, logger *slog.Logger) *Controller {
	if state == nil {
		state = NewState()
	}
	return &Controller{
		state:     state,
		locations: locations,
		estimator: estimator,
		logger:    logger.With("component", "form-controller"),
	}
}

// State returns the state being mutated
func (c *Controller) State() *State {
	return c.state
}

// Init fetches the location list the first time the form is shown.
// On failure the list stays empty and the next Init retries.
func (c *Controller) Init(ctx context.Context) error {
	if c.state.LocationsFetched {
		return nil
	}

	resp, err := c.locations.GetLocationNames(ctx)
	if err != nil {
		c.logger.Error("error fetching locations", "error", err)
		return &NetworkError{Op: OpFetchLocations, Err: err}
	}

	c.state.Locations = sanitizeLocations(resp.Locations)
	c.state.LocationsFetched = true
	c.logger.Debug("loaded locations", "location_count", len(c.state.Locations))
	return nil
}

// SetArea stores the area in square feet.
func (c *Controller) SetArea(area float64) {
	c.state.Area = area
}

// SetBedrooms stores the bedroom count, rejecting values outside 1..5.
func (c *Controller) SetBedrooms(n int) error {
	if err := checkCount(FieldBedrooms, n); err != nil {
		return err
	}
	c.state.Bedrooms = n
	return nil
}

// SetBathrooms stores the bathroom count, rejecting values outside 1..5.
func (c *Controller) SetBathrooms(n int) error {
	if err := checkCount(FieldBathrooms, n); err != nil {
		return err
	}
	c.state.Bathrooms = n
	return nil
}

// SelectLocation records the chosen location. An empty name clears the selection.
// Membership in the location list is checked on submit.
func (c *Controller) SelectLocation(name string) {
	c.state.SelectedLocation = name
}

// EstimatePrice validates the form and asks the prediction service for a price.
// Area and location presence are checked before any network call. The location
// list is then fetched if needed and the selection must be one of its names.
// A *ValidationError means no estimate request was sent. A *NetworkError means a
// call failed; LastError then holds FailureMessage and any previous estimate is cleared.
func (c *Controller) EstimatePrice(ctx context.Context) error {
	if err := c.validate(); err != nil {
		return err
	}

	if err := c.Init(ctx); err != nil {
		c.fail()
		return err
	}

	if !c.state.HasLocation(c.state.SelectedLocation) {
		name := c.state.SelectedLocation
		c.state.SelectedLocation = ""
		return &ValidationError{Field: FieldLocation, Message: fmt.Sprintf("Unknown location %q.", name)}
	}

	resp, err := c.estimator.PredictHomePrice(ctx, predictor.EstimateRequest{
		TotalSqft: c.state.Area,
		BHK:       c.state.Bedrooms,
		Bath:      c.state.Bathrooms,
		Location:  c.state.SelectedLocation,
	})
	if err != nil {
		c.logger.Error("error fetching price",
			"total_sqft", c.state.Area,
			"bhk", c.state.Bedrooms,
			"bath", c.state.Bathrooms,
			"location", c.state.SelectedLocation,
			"error", err,
		)
		c.fail()
		return &NetworkError{Op: OpEstimatePrice, Err: err}
	}
	if resp == nil || resp.EstimatedPrice == nil {
		c.fail()
		return &NetworkError{Op: OpEstimatePrice, Err: predictor.ErrMissingEstimate}
	}

	price := types.NewPriceFromLakh(*resp.EstimatedPrice)
	c.state.LastEstimate = &price
	c.state.LastError = ""
	return nil
}

func (c *Controller) fail() {
	c.state.LastEstimate = nil
	c.state.LastError = FailureMessage
}

func (c *Controller) validate() error {
	area := c.state.Area
	if area == 0 || math.IsNaN(area) {
		return ErrAreaRequired
	}
	if area < 0 || math.IsInf(area, 0) {
		return ErrAreaNotPositive
	}
	if c.state.SelectedLocation == "" {
		return ErrLocationRequired
	}
	return nil
}

func checkCount(field string, n int) error {
	if n < MinRooms || n > MaxRooms {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("Number of %s must be between %d and %d.", countNoun(field), MinRooms, MaxRooms),
		}
	}
	return nil
}
