package types

import "strconv"

// RupeesPerLakh is the size of one Lakh
const RupeesPerLakh = 100000

// Price is a house price estimate as returned by the prediction service, in Lakh
type Price struct {
	Lakh float64 `json:"lakh"`
}

func NewPriceFromLakh(lakh float64) Price {
	return Price{Lakh: lakh}
}

// Rupees returns the estimate in rupees
func (p Price) Rupees() float64 {
	return p.Lakh * RupeesPerLakh
}

// String formats the Lakh amount with the fewest digits that round-trip, e.g. "83.2"
func (p Price) String() string {
	return strconv.FormatFloat(p.Lakh, 'f', -1, 64)
}
