package models

// SimulateRequest is the JSON body for POST /api/v1/simulate.
type SimulateRequest struct {
	// Seed defaults to the simulator convention (42) when omitted.
	Seed *int64 `json:"seed,omitempty"`
	// Rounds optionally overrides the season length.
	Rounds int `json:"rounds,omitempty"`
	// IncludeArtifact returns the full artifact inline instead of just the
	// summary sections.
	IncludeArtifact bool `json:"include_artifact,omitempty"`
}
