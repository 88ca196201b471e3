package form

import "fmt"

// FailureMessage is shown to the user whenever the estimate call fails
const FailureMessage = "Failed to estimate price. Please try again."

// ValidationError is a user input problem. It is reported before any request is sent.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	ErrAreaRequired     = &ValidationError{Field: FieldArea, Message: "Please enter an area."}
	ErrAreaNotPositive  = &ValidationError{Field: FieldArea, Message: "Area must be a positive number."}
	ErrLocationRequired = &ValidationError{Field: FieldLocation, Message: "Please select a location."}
)

// NetworkError operations
const (
	OpFetchLocations = "fetch locations"
	OpEstimatePrice  = "estimate price"
)

// NetworkError is a failed call to the prediction service
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
