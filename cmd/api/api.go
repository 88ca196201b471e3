package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"homeprice/internal/form"
)

// LocationsResponse lists the locations the prediction model knows about
type LocationsResponse struct {
	Locations []string `json:"locations" example:"Indira Nagar,Whitefield"`
}

// EstimateRequest is the JSON body of the estimate endpoint
type EstimateRequest struct {
	TotalSqft float64 `json:"total_sqft" example:"1000"`       // Area in square feet
	BHK       int     `json:"bhk" example:"2"`                 // Bedroom count, 1-5
	Bath      int     `json:"bath" example:"2"`                // Bathroom count, 1-5
	Location  string  `json:"location" example:"Indira Nagar"` // One of the names from /api/locations
}

// EstimateResponse carries the estimate in Lakh
type EstimateResponse struct {
	EstimatedPrice float64 `json:"estimated_price" example:"83.2"`
	Display        string  `json:"display" example:"83.2 Lakh"`
}

// ErrorResponse is returned for every non-2xx API answer
type ErrorResponse struct {
	Error string `json:"error" example:"Please select a location."`
	Field string `json:"field,omitempty" example:"location"`
}

// handleGetLocations godoc
// @Summary List locations
// @Description List the locations accepted by the price prediction model
// @Tags estimate
// @Produce json
// @Success 200 {object} LocationsResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/locations [get]
func (app *App) handleGetLocations(c *gin.Context) {
	ctrl := app.controller(nil)
	if err := ctrl.Init(c.Request.Context()); err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "failed to fetch locations"})
		return
	}

	c.JSON(http.StatusOK, LocationsResponse{Locations: ctrl.State().Locations})
}

// handleEstimate godoc
// @Summary Estimate a house price
// @Description Validate the house attributes and ask the prediction model for a price in Lakh
// @Tags estimate
// @Accept json
// @Produce json
// @Param request body EstimateRequest true "House attributes"
// @Success 200 {object} EstimateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/estimate [post]
func (app *App) handleEstimate(c *gin.Context) {
	var input EstimateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	ctrl := app.controller(nil)
	ctrl.SetArea(input.TotalSqft)
	ctrl.SelectLocation(input.Location)
	err := ctrl.SetBedrooms(input.BHK)
	if err == nil {
		err = ctrl.SetBathrooms(input.Bath)
	}
	if err == nil {
		err = ctrl.EstimatePrice(c.Request.Context())
	}

	var validationErr *form.ValidationError
	var networkErr *form.NetworkError
	switch {
	case err == nil:
		price := ctrl.State().LastEstimate
		c.JSON(http.StatusOK, EstimateResponse{
			EstimatedPrice: price.Lakh,
			Display:        price.String() + " Lakh",
		})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: validationErr.Message, Field: validationErr.Field})
	case errors.As(err, &networkErr) && networkErr.Op == form.OpFetchLocations:
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "failed to fetch locations"})
	case errors.As(err, &networkErr):
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: form.FailureMessage})
	default:
		app.logger.Error("unexpected estimate failure", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to estimate price"})
	}
}
