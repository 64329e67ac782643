package models

import "fantasy-gp/internal/season"

// ErrorDetail is the error envelope body.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps every non-2xx body.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// SimulateResponse is returned from POST /api/v1/simulate.
type SimulateResponse struct {
	ID        string            `json:"id"`
	Seed      int64             `json:"seed"`
	Rounds    int               `json:"rounds"`
	Standings []season.Standing `json:"standings"`
	// Artifact is only present when the request asked for it.
	Artifact *season.Artifact `json:"artifact,omitempty"`
}

// PricesResponse serves an asset price history view over a completed run.
type PricesResponse struct {
	ID                string           `json:"id"`
	DriverPrices      map[string][]int `json:"driver_prices"`
	ConstructorPrices map[string][]int `json:"constructor_prices"`
}
