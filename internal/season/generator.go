package season

import (
	"math/rand"
	"sort"

	"fantasy-gp/internal/model"
	"fantasy-gp/internal/rules"
)

// Tuning for the synthetic race model. Strengths are prior-season points
// per race; the noise scales are in the same unit.
const (
	qualNoise = 5.5
	raceNoise = 7.0

	dsqChance = 0.01
	dnfChance = 0.12

	minLaps = 45
	maxLaps = 70

	// A sprint runs every fourth round, starting with the second.
	sprintInterval = 4
	sprintOffset   = 1
)

// Generator produces seeded pseudo-random round results. All draws happen
// in canonical driver order so a seed replays to identical seasons.
type Generator struct {
	rules    *rules.Rules
	market   *model.Market
	rng      *rand.Rand
	strength map[string]float64
}

func NewGenerator(r *rules.Rules, m *model.Market, rng *rand.Rand) *Generator {
	g := &Generator{
		rules:    r,
		market:   m,
		rng:      rng,
		strength: make(map[string]float64, len(m.Drivers)),
	}
	for _, a := range m.Drivers {
		g.strength[a.ID] = float64(a.PriorPoints) / float64(r.SeasonRounds)
	}
	return g
}

// SprintRound reports whether the round carries a sprint session.
func SprintRound(round int) bool {
	return round%sprintInterval == sprintOffset
}

type drawScore struct {
	id    string
	score float64
}

// rank sorts ids descending by score. Stable over canonical order so equal
// scores cannot reorder between runs.
func rank(scores []drawScore) []string {
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].score > scores[j].score })
	out := make([]string, len(scores))
	for i, s := range scores {
		out[i] = s.id
	}
	return out
}

// Round generates the full result sheet for one round.
func (g *Generator) Round(round int) *model.RoundResult {
	rr := &model.RoundResult{
		Round:     round,
		Sprint:    SprintRound(round),
		TotalLaps: minLaps + g.rng.Intn(maxLaps-minLaps+1),
		ByAsset:   make(map[string]model.RaceResult, len(g.market.Drivers)),
	}

	// Draw order per session: one pass over drivers in canonical order.
	qual := make([]drawScore, 0, len(g.market.Drivers))
	for _, a := range g.market.Drivers {
		qual = append(qual, drawScore{a.ID, g.strength[a.ID] + g.rng.NormFloat64()*qualNoise})
	}
	gridOrder := rank(qual)
	grid := make(map[string]int, len(gridOrder))
	for i, id := range gridOrder {
		grid[id] = i + 1
	}

	race := make([]drawScore, 0, len(g.market.Drivers))
	for _, a := range g.market.Drivers {
		race = append(race, drawScore{a.ID, g.strength[a.ID] + g.rng.NormFloat64()*raceNoise})
	}
	raceOrder := rank(race)

	type incident struct {
		dnf, dsq bool
		laps     int
	}
	incidents := make(map[string]incident, len(g.market.Drivers))
	for _, a := range g.market.Drivers {
		draw := g.rng.Float64()
		switch {
		case draw < dsqChance:
			incidents[a.ID] = incident{dsq: true}
		case draw < dsqChance+dnfChance:
			incidents[a.ID] = incident{dnf: true, laps: g.rng.Intn(rr.TotalLaps)}
		default:
			incidents[a.ID] = incident{}
		}
	}

	sprint := make(map[string]int, len(g.market.Drivers))
	if rr.Sprint {
		scores := make([]drawScore, 0, len(g.market.Drivers))
		for _, a := range g.market.Drivers {
			scores = append(scores, drawScore{a.ID, g.strength[a.ID] + g.rng.NormFloat64()*raceNoise})
		}
		for i, id := range rank(scores) {
			sprint[id] = i + 1
		}
	}

	// Classify: finishers keep their relative race order, non-finishers
	// drop out with position 0.
	pos := 0
	var finishers, retired []string
	for _, id := range raceOrder {
		if inc := incidents[id]; inc.dnf || inc.dsq {
			retired = append(retired, id)
			continue
		}
		pos++
		finishers = append(finishers, id)
		rr.ByAsset[id] = model.RaceResult{
			AssetID:        id,
			Position:       pos,
			Grid:           grid[id],
			Gained:         grid[id] - pos,
			TotalLaps:      rr.TotalLaps,
			SprintPosition: sprint[id],
			RacePoints:     tablePoints(g.rules.RacePoints, pos),
			SprintPoints:   tablePoints(g.rules.SprintPoints, sprint[id]),
		}
	}
	for _, id := range retired {
		inc := incidents[id]
		rr.ByAsset[id] = model.RaceResult{
			AssetID:        id,
			Grid:           grid[id],
			DNF:            inc.dnf,
			DSQ:            inc.dsq,
			LapsCompleted:  inc.laps,
			TotalLaps:      rr.TotalLaps,
			SprintPosition: sprint[id],
			SprintPoints:   tablePoints(g.rules.SprintPoints, sprint[id]),
		}
	}
	rr.Finish = append(finishers, retired...)

	// Fastest lap goes to a random finisher inside the points places.
	n := len(finishers)
	if n > len(g.rules.RacePoints) {
		n = len(g.rules.RacePoints)
	}
	if n > 0 {
		id := finishers[g.rng.Intn(n)]
		res := rr.ByAsset[id]
		res.FastestLap = true
		rr.ByAsset[id] = res
	}

	return rr
}

func tablePoints(table []int, position int) int {
	if position < 1 || position > len(table) {
		return 0
	}
	return table[position-1]
}
