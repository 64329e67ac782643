// Package price implements the asset pricing model: price-tier
// classification, performance-band classification on the points/price
// ratio, the tier-by-band delta table, DNF penalties, and opening-price
// derivation. Everything here is pure; the rule set is passed explicitly.
package price

import "fantasy-gp/internal/rules"

// Tier is the price bracket controlling delta magnitude.
type Tier string

const (
	TierA Tier = "A"
	TierB Tier = "B"
	TierC Tier = "C"
)

// Performance is the points-per-price band.
type Performance string

const (
	Great    Performance = "great"
	Good     Performance = "good"
	Poor     Performance = "poor"
	Terrible Performance = "terrible"
)

// ClassifyTier maps a price to its bracket. A price exactly at a threshold
// belongs to the lower tier.
func ClassifyTier(r *rules.Rules, price int) Tier {
	switch {
	case price > r.TierAThreshold:
		return TierA
	case price > r.TierBThreshold:
		return TierB
	default:
		return TierC
	}
}

// ClassifyPerformance maps a round's points against the asset's price.
// Bands are evaluated highest-first; a ratio exactly on a boundary takes
// the higher band.
func ClassifyPerformance(r *rules.Rules, points, price int) Performance {
	if price <= 0 {
		return Terrible
	}
	ratio := float64(points) / float64(price)
	switch {
	case ratio >= r.GreatRatio:
		return Great
	case ratio >= r.GoodRatio:
		return Good
	case ratio >= r.PoorRatio:
		return Poor
	default:
		return Terrible
	}
}

// Delta looks up the raw price change for a tier/band pair.
func Delta(r *rules.Rules, tier Tier, perf Performance) int {
	var b rules.BandDeltas
	switch tier {
	case TierA:
		b = r.Deltas.A
	case TierB:
		b = r.Deltas.B
	default:
		b = r.Deltas.C
	}
	switch perf {
	case Great:
		return b.Great
	case Good:
		return b.Good
	case Poor:
		return b.Poor
	default:
		return b.Terrible
	}
}

// DNFPenalty is the extra price hit for a retirement, scaled linearly from
// the maximum (lap-1 DNF) down to the minimum (final-lap DNF).
func DNFPenalty(r *rules.Rules, lapsCompleted, totalLaps int) int {
	if totalLaps <= 0 {
		return r.DNFPricePenaltyMax
	}
	if lapsCompleted < 0 {
		lapsCompleted = 0
	}
	if lapsCompleted > totalLaps {
		lapsCompleted = totalLaps
	}
	span := r.DNFPricePenaltyMax - r.DNFPricePenaltyMin
	return r.DNFPricePenaltyMax - span*lapsCompleted/totalLaps
}

// Step computes the post-round price for an asset that finished normally:
// classify, look up the delta, clamp the delta to the per-race cap, then
// clamp the result to the global price bounds.
func Step(r *rules.Rules, current, points int) int {
	return step(r, current, points, false, 0, 0)
}

// StepDNF is Step for a retired asset; the DNF penalty composes with the
// performance delta before the bounds clamp.
func StepDNF(r *rules.Rules, current, points, lapsCompleted, totalLaps int) int {
	return step(r, current, points, true, lapsCompleted, totalLaps)
}

func step(r *rules.Rules, current, points int, dnf bool, lapsCompleted, totalLaps int) int {
	d := Delta(r, ClassifyTier(r, current), ClassifyPerformance(r, points, current))
	d = clamp(d, -r.MaxChangePerRace, r.MaxChangePerRace)
	if dnf {
		d -= DNFPenalty(r, lapsCompleted, totalLaps)
	}
	return clamp(current+d, r.MinPrice, r.MaxPrice)
}

// InitialPrice derives a new-season opening price from the prior season's
// cumulative total: points per race times the dollar scale, floored.
func InitialPrice(r *rules.Rules, priorPoints, raceCount int) int {
	if raceCount <= 0 {
		return r.MinPrice
	}
	p := int(float64(priorPoints) / float64(raceCount) * float64(r.DollarsPerAvgPoint))
	return clamp(p, r.MinPrice, r.MaxPrice)
}

// RollingAveragePrice prices an asset off the mean of its most recent
// point values. Entries beyond the window are ignored; the result is
// floored to a whole dollar.
func RollingAveragePrice(r *rules.Rules, recent []int) int {
	if len(recent) == 0 {
		return r.MinPrice
	}
	n := len(recent)
	if n > r.RecentWindow {
		n = r.RecentWindow
	}
	sum := 0
	for _, p := range recent[:n] {
		sum += p
	}
	avg := float64(sum) / float64(n)
	return clamp(int(avg*float64(r.DollarsPerAvgPoint)), r.MinPrice, r.MaxPrice)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
