package model

// Breakdown itemizes one asset's fantasy points for one round.
// Produced fresh each round, never mutated afterwards.
type Breakdown struct {
	Base          int `json:"base"`
	Sprint        int `json:"sprint"`
	PositionBonus int `json:"position_bonus"`
	FastestLap    int `json:"fastest_lap"`
	Penalty       int `json:"penalty"`
	LockBonus     int `json:"lock_bonus"`

	AceDoubled bool `json:"ace_doubled"`

	Total int `json:"total"`
}

// RaceComponent is the race-derived portion of the breakdown: everything
// except the lock bonus. This is the part Ace doubling applies to.
func (b Breakdown) RaceComponent() int {
	return b.Base + b.Sprint + b.PositionBonus + b.FastestLap + b.Penalty
}
