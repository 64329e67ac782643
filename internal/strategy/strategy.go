// Package strategy defines the agent decision contract and the heuristic
// implementations used by the season simulator. Every heuristic is
// deterministic given the same market state and the same seeded random
// stream; the Random agents draw exclusively from the injected generator.
package strategy

import (
	"math/rand"
	"sort"

	"fantasy-gp/internal/model"
	"fantasy-gp/internal/rules"
)

// Context is everything an agent may look at when deciding. The market is
// the pre-trade snapshot for the round: agents never observe each other's
// same-round trades.
type Context struct {
	Round  int
	Rules  *rules.Rules
	Market *model.Market
	Team   *model.User
	// Prior is the previous round's result sheet, nil on the first round.
	Prior *model.RoundResult
	// Rand is the shared seeded stream. Draw only what you need, in a
	// fixed order, or replays diverge.
	Rand *rand.Rand
}

// Decision is an agent's plan for the round. Illegal entries are rejected
// by the ledger, not retried.
type Decision struct {
	Sells            []string
	Buys             []string
	AceID            string
	SellConstructor  bool
	BuyConstructorID string
}

// Strategy is one agent's decision function.
type Strategy interface {
	Name() string
	// Tag groups agents of the same heuristic family for reporting.
	Tag() string
	Decide(ctx Context) Decision
}

// --- shared helpers ---

// openDriverSlots is how many driver slots the team has free.
func openDriverSlots(ctx Context) int {
	return ctx.Rules.TeamDrivers - len(ctx.Team.Drivers)
}

// signable reports whether the team could plausibly sign the asset this
// round with the given budget.
func signable(ctx Context, a *model.Asset, budget int) bool {
	return a.Active && !ctx.Team.Owns(a.ID) && !ctx.Team.LockedOut(a.ID, ctx.Round) && a.Price <= budget
}

// candidateDrivers returns signable drivers sorted by the given less
// function, stable over canonical market order.
func candidateDrivers(ctx Context, budget int, less func(a, b *model.Asset) bool) []*model.Asset {
	var out []*model.Asset
	for _, a := range ctx.Market.Drivers {
		if signable(ctx, a, budget) {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// fillDrivers appends buys for every open slot from ranked candidates,
// tracking a local budget so the plan is mostly feasible. The ledger has
// the final say.
func fillDrivers(ctx Context, d *Decision, ranked []*model.Asset) {
	budget := ctx.Team.Budget
	open := openDriverSlots(ctx)
	for _, a := range ranked {
		if open <= 0 {
			break
		}
		if a.Price > budget {
			continue
		}
		d.Buys = append(d.Buys, a.ID)
		budget -= a.Price
		open--
	}
}

// fillConstructor picks the first affordable constructor from ranked
// candidates if the slot is empty.
func fillConstructor(ctx Context, d *Decision, less func(a, b *model.Asset) bool) {
	if ctx.Team.Constructor != nil {
		return
	}
	var out []*model.Asset
	for _, a := range ctx.Market.Constructors {
		if signable(ctx, a, ctx.Team.Budget) {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	if len(out) > 0 {
		d.BuyConstructorID = out[0].ID
	}
}

// ownedAssets lists the team's owned assets (drivers then constructor) in
// roster order.
func ownedAssets(ctx Context) []*model.Asset {
	var out []*model.Asset
	for _, s := range ctx.Team.Drivers {
		if a := ctx.Market.Get(s.AssetID); a != nil {
			out = append(out, a)
		}
	}
	if s := ctx.Team.Constructor; s != nil {
		if a := ctx.Market.Get(s.AssetID); a != nil {
			out = append(out, a)
		}
	}
	return out
}

// pickAce chooses the owned, price-eligible asset with the best recent
// form; empty when nothing qualifies. Planned buys are also considered so
// a fresh roster can still set an Ace.
func pickAce(ctx Context, d Decision) string {
	var best *model.Asset
	consider := func(a *model.Asset) {
		if a == nil || a.Price > ctx.Rules.AceMaxPrice {
			return
		}
		if best == nil || a.RecentForm() > best.RecentForm() {
			best = a
		}
	}
	sold := make(map[string]bool, len(d.Sells))
	for _, id := range d.Sells {
		sold[id] = true
	}
	for _, a := range ownedAssets(ctx) {
		if !sold[a.ID] {
			consider(a)
		}
	}
	for _, id := range d.Buys {
		consider(ctx.Market.Get(id))
	}
	if d.BuyConstructorID != "" {
		consider(ctx.Market.Get(d.BuyConstructorID))
	}
	if best == nil {
		return ""
	}
	return best.ID
}

// valueRatio is recent form per dollar, the buy signal for value seekers.
func valueRatio(a *model.Asset) float64 {
	if a.Price <= 0 {
		return 0
	}
	return float64(a.RecentForm()) / float64(a.Price)
}
