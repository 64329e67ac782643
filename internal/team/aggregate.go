// Package team combines per-driver and constructor scores into a team
// round total, applying the stale-roster penalty and the externally
// supplied catch-up bonus, and maintains the user's season counters.
package team

import (
	"fantasy-gp/internal/model"
	"fantasy-gp/internal/rules"
	"fantasy-gp/internal/scoring"
)

// SlotScore pairs a roster slot with its round breakdown.
type SlotScore struct {
	AssetID   string          `json:"asset_id"`
	Breakdown model.Breakdown `json:"breakdown"`
}

// RoundSummary is one team's fully itemized round outcome.
type RoundSummary struct {
	UserID       string           `json:"user_id"`
	Round        int              `json:"round"`
	Drivers      []SlotScore      `json:"drivers"`
	Constructor  *SlotScore       `json:"constructor,omitempty"`
	StalePenalty int              `json:"stale_penalty"`
	CatchUp      int              `json:"catch_up"`
	Total        int              `json:"total"`
}

// StalePenalty is the deduction for going too long without a transfer.
func StalePenalty(r *rules.Rules, racesSinceTransfer int) int {
	over := racesSinceTransfer - r.StaleThreshold
	if over <= 0 {
		return 0
	}
	return over * r.StalePenaltyPerRace
}

// aceFor reports whether assetID is the user's eligible Ace at current
// market prices.
func aceFor(r *rules.Rules, m *model.Market, u *model.User, assetID string) bool {
	if u.AceID != assetID {
		return false
	}
	a := m.Get(assetID)
	return a != nil && a.Price <= r.AceMaxPrice
}

// Score computes and applies one round for a team: per-slot breakdowns,
// constructor averaging, stale counter update and penalty, catch-up bonus,
// and the user's running totals. catchUp comes from an external source and
// must be non-negative; there is no derivation for it in the engine.
//
// Empty slots contribute zero. Missing results read as zero via
// RoundResult.For, so sparse rounds never fail.
func Score(r *rules.Rules, m *model.Market, u *model.User, rr *model.RoundResult, catchUp int) RoundSummary {
	if catchUp < 0 {
		catchUp = 0
	}
	sum := RoundSummary{UserID: u.ID, Round: rr.Round, CatchUp: catchUp}

	total := 0
	for _, s := range u.Drivers {
		held := s.RacesHeld + 1 // the race being scored counts as held
		b := scoring.DriverScore(r, rr.For(s.AssetID), held, aceFor(r, m, u, s.AssetID))
		s.PointsEarned += b.Total
		total += b.Total
		sum.Drivers = append(sum.Drivers, SlotScore{AssetID: s.AssetID, Breakdown: b})
	}

	if s := u.Constructor; s != nil {
		if a := m.Get(s.AssetID); a != nil {
			raw1, raw2 := 0, 0
			if len(a.DriverIDs) > 0 {
				raw1 = scoring.RawScore(r, rr.For(a.DriverIDs[0])).Total
			}
			if len(a.DriverIDs) > 1 {
				raw2 = scoring.RawScore(r, rr.For(a.DriverIDs[1])).Total
			}
			held := s.RacesHeld + 1
			b := scoring.ConstructorScore(r, raw1, raw2, held, aceFor(r, m, u, s.AssetID))
			s.PointsEarned += b.Total
			total += b.Total
			sum.Constructor = &SlotScore{AssetID: s.AssetID, Breakdown: b}
		}
	}

	if u.TradedThisRound {
		u.RacesSinceTransfer = 0
	} else {
		u.RacesSinceTransfer++
	}
	sum.StalePenalty = StalePenalty(r, u.RacesSinceTransfer)

	sum.Total = total - sum.StalePenalty + catchUp
	u.RoundPoints = append(u.RoundPoints, sum.Total)
	u.TotalPoints += sum.Total
	return sum
}
