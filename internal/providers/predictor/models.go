package predictor

// LocationsAPIResponse is the body of GET /get_location_names
type LocationsAPIResponse struct {
	Locations []string `json:"locations"`
}

// EstimateRequest is the form payload of POST /predict_home_price
type EstimateRequest struct {
	TotalSqft float64
	BHK       int
	Bath      int
	Location  string
}

// EstimateAPIResponse is the body of POST /predict_home_price.
// EstimatedPrice is in Lakh.
type EstimateAPIResponse struct {
	EstimatedPrice *float64 `json:"estimated_price"`
}
