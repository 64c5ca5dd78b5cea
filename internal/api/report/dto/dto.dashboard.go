// Package dto - input cho các endpoint dashboard.
package reportdto

// CurrencyRateInput body của PUT currency-rate
type CurrencyRateInput struct {
	Rate float64 `json:"rate" validate:"required"`
}

// DateRangeInput query của custom-range
type DateRangeInput struct {
	StartDate string `json:"startDate" validate:"required"`
	EndDate   string `json:"endDate" validate:"required"`
}
