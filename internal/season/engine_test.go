package season

import (
	"encoding/json"
	"math/rand"
	"testing"

	"fantasy-gp/internal/rules"
)

func runSeason(t *testing.T, r *rules.Rules, seed int64) *Artifact {
	t.Helper()
	art, err := New(r).Run(seed)
	if err != nil {
		t.Fatalf("season run failed: %v", err)
	}
	return art
}

func marshal(t *testing.T, a *Artifact) []byte {
	t.Helper()
	raw, err := json.Marshal(a)
	if err != nil {
		t.Fatal(err)
	}
	return raw
}

func TestRun_SameSeedSameArtifact(t *testing.T) {
	r := rules.Default()
	a := marshal(t, runSeason(t, r, DefaultSeed))
	b := marshal(t, runSeason(t, r, DefaultSeed))
	if string(a) != string(b) {
		t.Fatal("two runs with the same seed produced different artifacts")
	}
}

func TestRun_DifferentSeedsDiverge(t *testing.T) {
	r := rules.Default()
	a := runSeason(t, r, 1)
	b := runSeason(t, r, 2)

	same := true
	for i := range a.RoundTops {
		if len(a.RoundTops[i].Top) == 0 || len(b.RoundTops[i].Top) == 0 {
			continue
		}
		if a.RoundTops[i].Top[0].AssetID != b.RoundTops[i].Top[0].AssetID {
			same = false
			break
		}
	}
	if same {
		t.Error("every round winner identical across seeds; generator is ignoring the seed")
	}
}

func TestRun_StandingsRankedAndComplete(t *testing.T) {
	r := rules.Default()
	art := runSeason(t, r, DefaultSeed)

	if len(art.Standings) != r.AgentCount {
		t.Fatalf("standings has %d rows, want %d", len(art.Standings), r.AgentCount)
	}
	for i, s := range art.Standings {
		if s.Rank != i+1 {
			t.Errorf("row %d has rank %d", i, s.Rank)
		}
		if len(s.RoundPoints) != r.SeasonRounds {
			t.Errorf("%s has %d round entries, want %d", s.UserID, len(s.RoundPoints), r.SeasonRounds)
		}
		if i > 0 {
			prev := art.Standings[i-1]
			if s.Points > prev.Points {
				t.Errorf("standings not descending at row %d: %d > %d", i, s.Points, prev.Points)
			}
			if s.Points == prev.Points && s.AgentIndex < prev.AgentIndex {
				t.Errorf("tie at %d points broken against agent order", s.Points)
			}
		}
	}
}

func TestRun_PricesStayWithinBounds(t *testing.T) {
	r := rules.Default()
	art := runSeason(t, r, DefaultSeed)

	check := func(histories map[string][]int) {
		for id, hist := range histories {
			if len(hist) != r.SeasonRounds+1 {
				t.Errorf("%s has %d price entries, want %d", id, len(hist), r.SeasonRounds+1)
			}
			for round, p := range hist {
				if p < r.MinPrice || p > r.MaxPrice {
					t.Errorf("%s price %d at entry %d outside [%d,%d]", id, p, round, r.MinPrice, r.MaxPrice)
				}
			}
			for i := 1; i < len(hist); i++ {
				move := hist[i] - hist[i-1]
				// A DNF penalty can push the drop past the cap, never a gain.
				if move > r.MaxChangePerRace {
					t.Errorf("%s gained %d in one round, cap is %d", id, move, r.MaxChangePerRace)
				}
			}
		}
	}
	check(art.DriverPrices)
	check(art.ConstructorPrices)
}

func TestRun_BudgetsNeverNegative(t *testing.T) {
	art := runSeason(t, rules.Default(), DefaultSeed)
	for _, s := range art.Standings {
		if s.Budget < 0 {
			t.Errorf("%s finished with negative budget %d", s.UserID, s.Budget)
		}
	}
}

func TestRun_TradeLogIsConsistent(t *testing.T) {
	r := rules.Default()
	art := runSeason(t, r, DefaultSeed)

	if len(art.TradeLog) == 0 {
		t.Fatal("no trades in a full season")
	}
	seen := map[string]bool{}
	lastRound := 0
	for _, e := range art.TradeLog {
		if seen[e.ID] {
			t.Errorf("duplicate trade id %s", e.ID)
		}
		seen[e.ID] = true
		if e.Round < lastRound {
			t.Errorf("trade log not in round order: %d after %d", e.Round, lastRound)
		}
		lastRound = e.Round
		if e.Price <= 0 {
			t.Errorf("trade %s has price %d", e.ID, e.Price)
		}
	}
}

func TestRun_RejectsInvalidRules(t *testing.T) {
	r := rules.Default()
	r.MinPrice, r.MaxPrice = 100, 50
	if _, err := New(r).Run(DefaultSeed); err == nil {
		t.Fatal("expected error for invalid rules")
	}
	if _, err := (&Engine{}).Run(DefaultSeed); err == nil {
		t.Fatal("expected error for nil rules")
	}
}

func TestRun_ShortSeasonHonorsRoundCount(t *testing.T) {
	r := rules.Default()
	r.SeasonRounds = 6
	art := runSeason(t, r, DefaultSeed)
	if art.Rounds != 6 || len(art.RoundTops) != 6 {
		t.Errorf("rounds = %d, tops = %d, want 6", art.Rounds, len(art.RoundTops))
	}
}

func TestSprintRound_Cadence(t *testing.T) {
	want := map[int]bool{0: false, 1: true, 2: false, 4: false, 5: true, 9: true}
	for round, sprint := range want {
		if SprintRound(round) != sprint {
			t.Errorf("SprintRound(%d) = %v, want %v", round, SprintRound(round), sprint)
		}
	}
}

func TestGenerator_RoundIsInternallyConsistent(t *testing.T) {
	r := rules.Default()
	m := NewSeasonMarket(r)
	gen := NewGenerator(r, m, rand.New(rand.NewSource(7)))

	rr := gen.Round(1)
	if !rr.Sprint {
		t.Fatal("round 1 should carry a sprint")
	}
	if len(rr.Finish) != len(m.Drivers) {
		t.Fatalf("finish lists %d drivers, market has %d", len(rr.Finish), len(m.Drivers))
	}

	pos := 0
	fastest := 0
	for _, id := range rr.Finish {
		res := rr.ByAsset[id]
		if res.DNF || res.DSQ {
			if res.Position != 0 {
				t.Errorf("%s retired with position %d", id, res.Position)
			}
			if res.DNF && res.LapsCompleted >= rr.TotalLaps {
				t.Errorf("%s completed %d of %d laps yet DNF", id, res.LapsCompleted, rr.TotalLaps)
			}
			continue
		}
		pos++
		if res.Position != pos {
			t.Errorf("%s classified P%d, want P%d", id, res.Position, pos)
		}
		if res.Gained != res.Grid-res.Position {
			t.Errorf("%s gained %d, grid %d pos %d", id, res.Gained, res.Grid, res.Position)
		}
		if res.FastestLap {
			fastest++
			if res.Position > len(r.RacePoints) {
				t.Errorf("fastest lap outside the points places at P%d", res.Position)
			}
		}
	}
	if fastest != 1 {
		t.Errorf("%d fastest laps awarded, want exactly 1", fastest)
	}
}
