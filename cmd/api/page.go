package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"homeprice/internal/form"
)

const pageTemplate = "index.html"

// EstimateForm is the form posted by the page. Values stay strings so the
// controller decides how to treat blanks and junk.
type EstimateForm struct {
	Area      string `form:"total_sqft"`
	Bedrooms  string `form:"bhk"`
	Bathrooms string `form:"bath"`
	Location  string `form:"location"`
}

// handleIndex renders the form for the caller's session, fetching the location
// list the first time. A failed fetch is only logged.
func (app *App) handleIndex(c *gin.Context) {
	id, state := app.loadSession(c)
	ctrl := app.controller(state)

	_ = ctrl.Init(c.Request.Context())

	app.saveSession(c, id, state)
	c.HTML(http.StatusOK, pageTemplate, ctrl.View(""))
}

// handleEstimateForm applies the posted fields and submits them for an estimate.
// Validation problems re-render the page with an alert and no estimate request is sent.
func (app *App) handleEstimateForm(c *gin.Context) {
	id, state := app.loadSession(c)
	ctrl := app.controller(state)
	ctx := c.Request.Context()

	var input EstimateForm
	if err := c.ShouldBind(&input); err != nil {
		_ = ctrl.Init(ctx)
		c.HTML(http.StatusBadRequest, pageTemplate, ctrl.View("Invalid form submission."))
		return
	}

	err := applyForm(ctrl, input)
	if err == nil {
		err = ctrl.EstimatePrice(ctx)
	}

	var validationErr *form.ValidationError
	var networkErr *form.NetworkError
	if errors.As(err, &validationErr) {
		// Validation runs before anything is fetched; a session that never
		// saw the page still needs the list to render the selector.
		_ = ctrl.Init(ctx)
	}

	app.saveSession(c, id, state)

	switch {
	case err == nil:
		c.HTML(http.StatusOK, pageTemplate, ctrl.View(""))
	case validationErr != nil:
		c.HTML(http.StatusUnprocessableEntity, pageTemplate, ctrl.View(validationErr.Message))
	case errors.As(err, &networkErr):
		c.HTML(http.StatusBadGateway, pageTemplate, ctrl.View(""))
	default:
		app.logger.Error("unexpected estimate failure", "error", err)
		c.HTML(http.StatusInternalServerError, pageTemplate, ctrl.View(""))
	}
}

// applyForm runs the input handlers for each posted field. Room counts that
// were not posted keep their current value.
func applyForm(ctrl *form.Controller, input EstimateForm) error {
	ctrl.SetArea(form.ParseArea(input.Area))

	if input.Bedrooms != "" {
		n, err := form.ParseCount(form.FieldBedrooms, input.Bedrooms)
		if err != nil {
			return err
		}
		if err := ctrl.SetBedrooms(n); err != nil {
			return err
		}
	}

	if input.Bathrooms != "" {
		n, err := form.ParseCount(form.FieldBathrooms, input.Bathrooms)
		if err != nil {
			return err
		}
		if err := ctrl.SetBathrooms(n); err != nil {
			return err
		}
	}

	ctrl.SelectLocation(input.Location)
	return nil
}
