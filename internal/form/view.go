package form

import "strconv"

// View is what the page template renders
type View struct {
	Area             string
	Bedrooms         int
	Bathrooms        int
	Choices          []int
	Locations        []string
	SelectedLocation string
	Estimate         string
	Error            string
	Alert            string
}

// View builds the render model. alert is a validation message to pop up, if any.
func (c *Controller) View(alert string) View {
	s := c.state
	v := View{
		Area:             strconv.FormatFloat(s.Area, 'f', -1, 64),
		Bedrooms:         s.Bedrooms,
		Bathrooms:        s.Bathrooms,
		Choices:          roomChoices(),
		Locations:        s.Locations,
		SelectedLocation: s.SelectedLocation,
		Error:            s.LastError,
		Alert:            alert,
	}
	if s.LastEstimate != nil {
		v.Estimate = s.LastEstimate.String()
	}
	return v
}

func roomChoices() []int {
	choices := make([]int, 0, MaxRooms-MinRooms+1)
	for n := MinRooms; n <= MaxRooms; n++ {
		choices = append(choices, n)
	}
	return choices
}
