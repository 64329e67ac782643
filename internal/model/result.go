package model

// RaceResult is one driver's outcome for one round. Immutable once the
// round is generated; the scoring model only reads it.
type RaceResult struct {
	AssetID string `json:"asset_id"`

	// Position is the classified finishing position, 0 for DNF/DSQ.
	Position int `json:"position"`
	Grid     int `json:"grid"`
	// Gained is positions gained (positive) or lost (negative) vs grid.
	Gained int `json:"gained"`

	FastestLap bool `json:"fastest_lap"`

	DNF bool `json:"dnf"`
	DSQ bool `json:"dsq"`
	// LapsCompleted is only meaningful for a DNF; it drives the price penalty.
	LapsCompleted int `json:"laps_completed"`
	TotalLaps     int `json:"total_laps"`

	// SprintPosition is 0 when the round has no sprint or the driver
	// finished outside the sprint table.
	SprintPosition int `json:"sprint_position"`

	// Raw table points, filled by the generator from the rule set.
	RacePoints   int `json:"race_points"`
	SprintPoints int `json:"sprint_points"`
}

// RoundResult is the full result sheet for one round.
type RoundResult struct {
	Round     int  `json:"round"`
	Sprint    bool `json:"sprint"`
	TotalLaps int  `json:"total_laps"`

	// Finish is the classified finishing order (driver ids), then
	// non-finishers in canonical order. Iterate this, not ByAsset.
	Finish  []string              `json:"finish"`
	ByAsset map[string]RaceResult `json:"by_asset"`
}

// For returns the result for a driver. A missing entry reads as a zero
// result, so sparse rounds score zero points instead of failing.
func (rr *RoundResult) For(assetID string) RaceResult {
	if rr == nil {
		return RaceResult{AssetID: assetID}
	}
	if res, ok := rr.ByAsset[assetID]; ok {
		return res
	}
	return RaceResult{AssetID: assetID}
}
