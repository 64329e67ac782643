package strategy

import (
	"fantasy-gp/internal/model"
)

// CheapestFill signs the cheapest signable assets into every open slot and
// never sells. The baseline agent: it measures what pure auto-fill-like
// behavior earns.
type CheapestFill struct {
	AgentName string
}

func (s *CheapestFill) Name() string { return s.AgentName }
func (s *CheapestFill) Tag() string  { return "cheapest" }

func (s *CheapestFill) Decide(ctx Context) Decision {
	var d Decision
	byPrice := func(a, b *model.Asset) bool { return a.Price < b.Price }
	fillDrivers(ctx, &d, candidateDrivers(ctx, ctx.Team.Budget, byPrice))
	fillConstructor(ctx, &d, byPrice)
	d.AceID = pickAce(ctx, d)
	return d
}

// FormChaser fills open slots with the hottest recent form it can afford
// and dumps an owned driver whose form has collapsed when a clearly hotter
// replacement is on the market.
type FormChaser struct {
	AgentName string
	// MinFormEdge is how much hotter (window points) a replacement must be
	// before a swap is worth the fee.
	MinFormEdge int
}

func (s *FormChaser) Name() string { return s.AgentName }
func (s *FormChaser) Tag() string  { return "form" }

func (s *FormChaser) Decide(ctx Context) Decision {
	var d Decision
	byForm := func(a, b *model.Asset) bool { return a.RecentForm() > b.RecentForm() }

	// Swap out the coldest owned driver when the market clearly beats it.
	if len(ctx.Team.Drivers) > 0 && ctx.Round > 0 {
		var coldest *model.Asset
		for _, s := range ctx.Team.Drivers {
			a := ctx.Market.Get(s.AssetID)
			if a == nil {
				continue
			}
			if coldest == nil || a.RecentForm() < coldest.RecentForm() {
				coldest = a
			}
		}
		if coldest != nil {
			budget := ctx.Team.Budget + coldest.Price
			for _, cand := range candidateDrivers(ctx, budget, byForm) {
				if cand.RecentForm() >= coldest.RecentForm()+s.MinFormEdge {
					d.Sells = append(d.Sells, coldest.ID)
					d.Buys = append(d.Buys, cand.ID)
				}
				break
			}
		}
	}

	fillDrivers(ctx, &d, candidateDrivers(ctx, ctx.Team.Budget, byForm))
	fillConstructor(ctx, &d, byForm)
	d.AceID = pickAce(ctx, d)
	return d
}

// ValueSeeker buys the best recent form per dollar.
type ValueSeeker struct {
	AgentName string
}

func (s *ValueSeeker) Name() string { return s.AgentName }
func (s *ValueSeeker) Tag() string  { return "value" }

func (s *ValueSeeker) Decide(ctx Context) Decision {
	var d Decision
	byValue := func(a, b *model.Asset) bool { return valueRatio(a) > valueRatio(b) }
	fillDrivers(ctx, &d, candidateDrivers(ctx, ctx.Team.Budget, byValue))
	fillConstructor(ctx, &d, byValue)
	d.AceID = pickAce(ctx, d)
	return d
}

// StarChaser spends big: most expensive affordable assets first.
type StarChaser struct {
	AgentName string
}

func (s *StarChaser) Name() string { return s.AgentName }
func (s *StarChaser) Tag() string  { return "star" }

func (s *StarChaser) Decide(ctx Context) Decision {
	var d Decision
	byPriceDesc := func(a, b *model.Asset) bool { return a.Price > b.Price }
	fillDrivers(ctx, &d, candidateDrivers(ctx, ctx.Team.Budget, byPriceDesc))
	fillConstructor(ctx, &d, byPriceDesc)
	d.AceID = pickAce(ctx, d)
	return d
}

// Contrarian buys the biggest recent price fallers, betting on reversion.
type Contrarian struct {
	AgentName string
}

func (s *Contrarian) Name() string { return s.AgentName }
func (s *Contrarian) Tag() string  { return "contrarian" }

func (s *Contrarian) Decide(ctx Context) Decision {
	var d Decision
	byDrop := func(a, b *model.Asset) bool { return a.PriceDelta() < b.PriceDelta() }
	fillDrivers(ctx, &d, candidateDrivers(ctx, ctx.Team.Budget, byDrop))
	fillConstructor(ctx, &d, byDrop)
	d.AceID = pickAce(ctx, d)
	return d
}

// Cadence rebalances on a fixed schedule: every Every rounds it sells its
// worst-form driver and replaces it with the best-form driver it can then
// afford. Otherwise it just keeps slots filled.
type Cadence struct {
	AgentName string
	Every     int
}

func (s *Cadence) Name() string { return s.AgentName }
func (s *Cadence) Tag() string  { return "cadence" }

func (s *Cadence) Decide(ctx Context) Decision {
	var d Decision
	byForm := func(a, b *model.Asset) bool { return a.RecentForm() > b.RecentForm() }

	if s.Every > 0 && ctx.Round > 0 && ctx.Round%s.Every == 0 && len(ctx.Team.Drivers) > 0 {
		var worst *model.Asset
		for _, slot := range ctx.Team.Drivers {
			a := ctx.Market.Get(slot.AssetID)
			if a == nil {
				continue
			}
			if worst == nil || a.RecentForm() < worst.RecentForm() {
				worst = a
			}
		}
		if worst != nil {
			d.Sells = append(d.Sells, worst.ID)
			budget := ctx.Team.Budget + worst.Price
			for _, cand := range candidateDrivers(ctx, budget, byForm) {
				d.Buys = append(d.Buys, cand.ID)
				break
			}
		}
	}

	fillDrivers(ctx, &d, candidateDrivers(ctx, ctx.Team.Budget, byForm))
	fillConstructor(ctx, &d, byForm)
	d.AceID = pickAce(ctx, d)
	return d
}

// Loyalist fills once on value and then holds for the lock bonuses; it
// never sells voluntarily.
type Loyalist struct {
	AgentName string
}

func (s *Loyalist) Name() string { return s.AgentName }
func (s *Loyalist) Tag() string  { return "loyal" }

func (s *Loyalist) Decide(ctx Context) Decision {
	var d Decision
	byValue := func(a, b *model.Asset) bool { return valueRatio(a) > valueRatio(b) }
	fillDrivers(ctx, &d, candidateDrivers(ctx, ctx.Team.Budget, byValue))
	fillConstructor(ctx, &d, byValue)
	// Keep the Ace stable once set: re-aiming it every round churns away
	// from the loyalty identity of this agent.
	if ctx.Team.AceID != "" {
		d.AceID = ctx.Team.AceID
	} else {
		d.AceID = pickAce(ctx, d)
	}
	return d
}

// RandomPicker trades at random from the shared seeded stream. Useful as
// a balance control group.
type RandomPicker struct {
	AgentName string
	// SellChance in [0,1): probability of dumping a random owned driver.
	SellChance float64
}

func (s *RandomPicker) Name() string { return s.AgentName }
func (s *RandomPicker) Tag() string  { return "random" }

func (s *RandomPicker) Decide(ctx Context) Decision {
	var d Decision

	if len(ctx.Team.Drivers) > 0 && ctx.Rand.Float64() < s.SellChance {
		idx := ctx.Rand.Intn(len(ctx.Team.Drivers))
		d.Sells = append(d.Sells, ctx.Team.Drivers[idx].AssetID)
	}

	// Fill open slots with uniformly random signable drivers.
	budget := ctx.Team.Budget
	open := openDriverSlots(ctx) + len(d.Sells)
	for i := 0; i < open; i++ {
		cands := candidateDrivers(ctx, budget, func(a, b *model.Asset) bool { return false })
		var fresh []*model.Asset
		picked := make(map[string]bool, len(d.Buys))
		for _, id := range d.Buys {
			picked[id] = true
		}
		for _, a := range cands {
			if !picked[a.ID] {
				fresh = append(fresh, a)
			}
		}
		if len(fresh) == 0 {
			break
		}
		a := fresh[ctx.Rand.Intn(len(fresh))]
		d.Buys = append(d.Buys, a.ID)
		budget -= a.Price
	}

	fillConstructor(ctx, &d, func(a, b *model.Asset) bool { return a.Price < b.Price })
	d.AceID = pickAce(ctx, d)
	return d
}
