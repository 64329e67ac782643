package season

import (
	"fmt"
	"sort"
)

// PrintSummary writes the human-readable season report: final standings,
// per-strategy-tag averages, the top drivers, the most traded assets and
// the biggest price movers.
func PrintSummary(a *Artifact) {
	fmt.Printf("Season complete: seed=%d rounds=%d\n\n", a.Seed, a.Rounds)

	fmt.Printf("%-4s %-14s %-12s %-8s %-8s %-8s %-9s %-7s\n",
		"rank", "agent", "tag", "points", "budget", "value", "transfers", "locked")
	for _, s := range a.Standings {
		fmt.Printf("%-4d %-14s %-12s %-8d %-8d %-8d %-9d %-7d\n",
			s.Rank, s.Name, s.Tag, s.Points, s.Budget, s.TeamValue, s.Transfers, s.LockedPoints)
	}

	fmt.Println("\nStrategy averages:")
	for _, t := range tagAverages(a) {
		fmt.Printf("  %-12s %8.1f pts  (%d agents)\n", t.Tag, t.AvgPoints, t.Count)
	}

	fmt.Println("\nTop drivers:")
	for i, st := range topDrivers(a, 5) {
		fmt.Printf("  %d. %-18s %4d pts  %2d wins  %2d podiums  $%d -> $%d\n",
			i+1, st.Name, st.Points, st.Wins, st.Podiums, st.StartPrice, st.EndPrice)
	}

	fmt.Println("\nMost traded:")
	for _, mt := range mostTraded(a, 5) {
		fmt.Printf("  %-6s %4d trades\n", mt.AssetID, mt.Count)
	}

	fmt.Println("\nBiggest movers:")
	for _, st := range biggestMovers(a, 5) {
		fmt.Printf("  %-18s %+5d  ($%d -> $%d)\n", st.Name, st.EndPrice-st.StartPrice, st.StartPrice, st.EndPrice)
	}
}

// TagAverage is the mean season score of one strategy family.
type TagAverage struct {
	Tag       string
	Count     int
	AvgPoints float64
}

func tagAverages(a *Artifact) []TagAverage {
	sums := map[string]int{}
	counts := map[string]int{}
	var order []string
	for _, s := range a.Standings {
		if _, seen := counts[s.Tag]; !seen {
			order = append(order, s.Tag)
		}
		sums[s.Tag] += s.Points
		counts[s.Tag]++
	}
	out := make([]TagAverage, 0, len(order))
	for _, tag := range order {
		out = append(out, TagAverage{
			Tag:       tag,
			Count:     counts[tag],
			AvgPoints: float64(sums[tag]) / float64(counts[tag]),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].AvgPoints > out[j].AvgPoints })
	return out
}

func topDrivers(a *Artifact, n int) []AssetStats {
	var drivers []AssetStats
	for _, st := range a.AssetStats {
		if st.Kind == "driver" {
			drivers = append(drivers, st)
		}
	}
	sort.SliceStable(drivers, func(i, j int) bool { return drivers[i].Points > drivers[j].Points })
	if len(drivers) > n {
		drivers = drivers[:n]
	}
	return drivers
}

// TradeCount pairs an asset with how often it changed hands.
type TradeCount struct {
	AssetID string
	Count   int
}

func mostTraded(a *Artifact, n int) []TradeCount {
	counts := map[string]int{}
	var order []string
	for _, t := range a.TradeLog {
		if _, seen := counts[t.AssetID]; !seen {
			order = append(order, t.AssetID)
		}
		counts[t.AssetID]++
	}
	out := make([]TradeCount, 0, len(order))
	for _, id := range order {
		out = append(out, TradeCount{AssetID: id, Count: counts[id]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func biggestMovers(a *Artifact, n int) []AssetStats {
	movers := append([]AssetStats(nil), a.AssetStats...)
	abs := func(v int) int {
		if v < 0 {
			return -v
		}
		return v
	}
	sort.SliceStable(movers, func(i, j int) bool {
		return abs(movers[i].EndPrice-movers[i].StartPrice) > abs(movers[j].EndPrice-movers[j].StartPrice)
	})
	if len(movers) > n {
		movers = movers[:n]
	}
	return movers
}
