// Package scoring turns race results into fantasy point breakdowns: base
// and sprint table points, position-gained credit, fastest-lap bonus,
// DNF/DSQ penalties, loyalty lock bonuses, Ace doubling and constructor
// averaging. All functions are pure.
package scoring

import (
	"fantasy-gp/internal/model"
	"fantasy-gp/internal/rules"
)

// TablePoints returns the points for a finishing position from a
// position->points table, zero outside it. Positions are 1-based.
func TablePoints(table []int, position int) int {
	if position < 1 || position > len(table) {
		return 0
	}
	return table[position-1]
}

// RawScore is the team-independent part of a driver's round score. A
// DNF/DSQ replaces all position-derived points with the flat penalty;
// sprint points stand, since the sprint is its own session.
func RawScore(r *rules.Rules, res model.RaceResult) model.Breakdown {
	b := model.Breakdown{
		Sprint: TablePoints(r.SprintPoints, res.SprintPosition),
	}
	switch {
	case res.DSQ:
		b.Penalty = r.DSQPoints
	case res.DNF:
		b.Penalty = r.DNFPoints
	default:
		b.Base = TablePoints(r.RacePoints, res.Position)
		b.PositionBonus = res.Gained * r.PositionGainCredit
		if res.FastestLap && res.Position >= 1 && res.Position <= len(r.RacePoints) {
			b.FastestLap = r.FastestLapBonus
		}
	}
	b.Total = b.RaceComponent()
	return b
}

// LockBonus is the escalating per-race loyalty bonus for heldRaces of
// continuous ownership (the race being scored counts as held), plus the
// one-time full-season bonus at exactly the season length.
func LockBonus(r *rules.Rules, heldRaces int) int {
	var per int
	switch {
	case heldRaces <= 0:
		return 0
	case heldRaces <= 3:
		per = r.LockBonusTier1
	case heldRaces <= 6:
		per = r.LockBonusTier2
	default:
		per = r.LockBonusTier3
	}
	if heldRaces == r.SeasonRounds {
		return per + r.SeasonLockBonus
	}
	return per
}

// DriverScore applies the team-specific layers on top of a raw score:
// loyalty lock bonus and, for an eligible Ace, doubling of the
// race-derived component. The lock bonus is never doubled.
func DriverScore(r *rules.Rules, res model.RaceResult, heldRaces int, ace bool) model.Breakdown {
	b := RawScore(r, res)
	b.LockBonus = LockBonus(r, heldRaces)
	if ace {
		b.AceDoubled = true
		b.Total = 2*b.RaceComponent() + b.LockBonus
		return b
	}
	b.Total = b.RaceComponent() + b.LockBonus
	return b
}

// ConstructorScore averages the constructor's two drivers' raw totals with
// a mathematical floor (negative-safe), then adds the constructor's own
// lock bonus. Ace doubling applies to the averaged race component only.
func ConstructorScore(r *rules.Rules, raw1, raw2, heldRaces int, ace bool) model.Breakdown {
	avg := FloorDiv(raw1+raw2, 2)
	b := model.Breakdown{
		Base:      avg,
		LockBonus: LockBonus(r, heldRaces),
	}
	if ace {
		b.AceDoubled = true
		b.Total = 2*avg + b.LockBonus
		return b
	}
	b.Total = avg + b.LockBonus
	return b
}

// FloorDiv divides rounding toward negative infinity. Go's integer
// division truncates toward zero, which is wrong for negative DNF totals.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
