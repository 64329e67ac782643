package season

import (
	"fmt"
	"math/rand"
	"sort"

	"fantasy-gp/internal/ledger"
	"fantasy-gp/internal/model"
	"fantasy-gp/internal/price"
	"fantasy-gp/internal/rules"
	"fantasy-gp/internal/scoring"
	"fantasy-gp/internal/strategy"
	"fantasy-gp/internal/team"
)

// DefaultSeed is the conventional simulator seed.
const DefaultSeed int64 = 42

// Engine runs a full season: a seeded race generator drives 25 strategy
// agents through the economy round by round. A round either completes in
// full or the simulation does not advance; there is no partial state.
type Engine struct {
	Rules *rules.Rules

	// CatchUp supplies the per-round catch-up bonus for a team. It is an
	// external input with no derivation in the engine; nil means zero.
	CatchUp func(round int, u *model.User) int
}

func New(r *rules.Rules) *Engine {
	return &Engine{Rules: r}
}

// Run simulates a season from a single integer seed. The same seed always
// produces the same artifact: race results, agent decisions, trades,
// prices and standings.
func (e *Engine) Run(seed int64) (*Artifact, error) {
	r := e.Rules
	if r == nil {
		return nil, fmt.Errorf("rules are nil")
	}
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}

	agents := strategy.Grid()
	if len(agents) != r.AgentCount {
		return nil, fmt.Errorf("agent grid has %d entries, rules want %d", len(agents), r.AgentCount)
	}

	market := NewSeasonMarket(r)
	rng := rand.New(rand.NewSource(seed))
	gen := NewGenerator(r, market, rng)
	led := ledger.New(r, market)

	users := make([]*model.User, len(agents))
	for i, ag := range agents {
		users[i] = model.NewUser(fmt.Sprintf("agent-%02d", i+1), ag.Name(), ag.Tag(), r.StartingBudget)
	}

	art := newArtifact(seed, r, market)
	var prior *model.RoundResult

	for round := 0; round < r.SeasonRounds; round++ {
		// 1. All agents decide against the same pre-trade snapshot.
		decisions := make([]strategy.Decision, len(agents))
		for i, ag := range agents {
			decisions[i] = ag.Decide(strategy.Context{
				Round:  round,
				Rules:  r,
				Market: market,
				Team:   users[i],
				Prior:  prior,
				Rand:   rng,
			})
		}

		// 2. Apply trades in agent order, sells before buys per agent.
		// Rejected trades are dropped, never retried.
		for i, d := range decisions {
			e.applyDecision(led, round, users[i], d)
		}

		// 3. Race.
		rr := gen.Round(round)

		// 4. Score teams against pre-update prices.
		for _, u := range users {
			catchUp := 0
			if e.CatchUp != nil {
				catchUp = e.CatchUp(round, u)
			}
			team.Score(r, market, u, rr, catchUp)
		}

		// 5. Update prices and asset stats.
		e.updatePrices(market, rr, art)

		// 6. Advance contracts: expiry, lockout, auto-fill.
		for _, u := range users {
			led.AdvanceContracts(round, u)
			led.AutoFill(round, u)
		}

		// 7. Snapshot.
		for _, u := range users {
			u.TradedThisRound = false
		}
		art.recordRound(rr)
		prior = rr
	}

	art.TradeLog = led.Log()
	art.Standings = finalStandings(users, market)
	art.finishAssetStats(market)
	return art, nil
}

func (e *Engine) applyDecision(led *ledger.Ledger, round int, u *model.User, d strategy.Decision) {
	for _, id := range d.Sells {
		_ = led.Sell(round, u, id, "strategy sell")
	}
	if d.SellConstructor && u.Constructor != nil {
		_ = led.Sell(round, u, u.Constructor.AssetID, "strategy sell")
	}
	for _, id := range d.Buys {
		_ = led.Buy(round, u, id, 0, "strategy buy")
	}
	if d.BuyConstructorID != "" {
		_ = led.Buy(round, u, d.BuyConstructorID, 0, "strategy buy")
	}
	if d.AceID != "" && u.Owns(d.AceID) {
		u.AceID = d.AceID
	}
	// An Ace sold this round must not linger.
	if u.AceID != "" && !u.Owns(u.AceID) {
		u.AceID = ""
	}
}

// updatePrices applies the price model to every asset off its raw round
// points and pre-round price. Constructors move on the floored average of
// their drivers' raw totals; the DNF penalty applies to drivers only.
func (e *Engine) updatePrices(market *model.Market, rr *model.RoundResult, art *Artifact) {
	r := e.Rules
	for _, a := range market.Drivers {
		res := rr.For(a.ID)
		pts := scoring.RawScore(r, res).Total
		a.PrevPrice = a.Price
		if res.DNF {
			a.Price = price.StepDNF(r, a.Price, pts, res.LapsCompleted, rr.TotalLaps)
		} else {
			a.Price = price.Step(r, a.Price, pts)
		}
		a.RecordPoints(pts, r.RecentWindow)
		art.recordAssetRound(a, res)
	}
	for _, c := range market.Constructors {
		raw1, raw2 := 0, 0
		if len(c.DriverIDs) > 0 {
			raw1 = scoring.RawScore(r, rr.For(c.DriverIDs[0])).Total
		}
		if len(c.DriverIDs) > 1 {
			raw2 = scoring.RawScore(r, rr.For(c.DriverIDs[1])).Total
		}
		pts := scoring.FloorDiv(raw1+raw2, 2)
		c.PrevPrice = c.Price
		c.Price = price.Step(r, c.Price, pts)
		c.RecordPoints(pts, r.RecentWindow)
		art.recordAssetRound(c, model.RaceResult{AssetID: c.ID})
	}
}

// finalStandings ranks users by season total descending; ties keep agent
// order.
func finalStandings(users []*model.User, market *model.Market) []Standing {
	idx := make([]int, len(users))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return users[idx[a]].TotalPoints > users[idx[b]].TotalPoints
	})

	out := make([]Standing, 0, len(users))
	for rank, i := range idx {
		u := users[i]
		out = append(out, Standing{
			Rank:         rank + 1,
			AgentIndex:   i,
			UserID:       u.ID,
			Name:         u.Name,
			Tag:          u.StrategyTag,
			Points:       u.TotalPoints,
			Budget:       u.Budget,
			TeamValue:    u.TeamValue(market),
			Transfers:    u.Transfers,
			LockedPoints: u.LockedPoints,
			RoundPoints:  u.RoundPoints,
		})
	}
	return out
}
