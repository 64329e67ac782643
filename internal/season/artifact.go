package season

import (
	"encoding/json"
	"os"

	"fantasy-gp/internal/model"
	"fantasy-gp/internal/rules"
)

// Standing is one row of the final season table.
type Standing struct {
	Rank         int    `json:"rank"`
	AgentIndex   int    `json:"agent_index"`
	UserID       string `json:"user_id"`
	Name         string `json:"name"`
	Tag          string `json:"tag"`
	Points       int    `json:"points"`
	Budget       int    `json:"budget"`
	TeamValue    int    `json:"team_value"`
	Transfers    int    `json:"transfers"`
	LockedPoints int    `json:"locked_points"`
	RoundPoints  []int  `json:"round_points"`
}

// AssetStats aggregates one asset's season.
type AssetStats struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Kind       string `json:"kind"`
	TeamID     string `json:"team_id,omitempty"`
	Points     int    `json:"points"`
	Wins       int    `json:"wins"`
	Podiums    int    `json:"podiums"`
	DNFs       int    `json:"dnfs"`
	StartPrice int    `json:"start_price"`
	EndPrice   int    `json:"end_price"`
	PeakPrice  int    `json:"peak_price"`
}

// TopResult is one classified finisher in a round's top ten.
type TopResult struct {
	Position int    `json:"position"`
	AssetID  string `json:"asset_id"`
	Points   int    `json:"points"`
}

// RoundTop is the leaderboard slice snapshotted for one round.
type RoundTop struct {
	Round  int         `json:"round"`
	Sprint bool        `json:"sprint"`
	Top    []TopResult `json:"top"`
}

// Artifact is the complete output of one season simulation, written as
// JSON and consumed by the exporter, the console summary and the API.
type Artifact struct {
	Seed   int64 `json:"seed"`
	Rounds int   `json:"rounds"`

	Standings []Standing `json:"standings"`

	// Price histories hold the opening price followed by one entry per
	// round, per asset id.
	DriverPrices      map[string][]int `json:"driver_prices"`
	ConstructorPrices map[string][]int `json:"constructor_prices"`

	AssetStats []AssetStats `json:"asset_stats"`

	TradeLog []model.TradeLogEntry `json:"trade_log"`

	RoundTops []RoundTop `json:"round_tops"`
}

func newArtifact(seed int64, r *rules.Rules, m *model.Market) *Artifact {
	a := &Artifact{
		Seed:              seed,
		Rounds:            r.SeasonRounds,
		DriverPrices:      make(map[string][]int, len(m.Drivers)),
		ConstructorPrices: make(map[string][]int, len(m.Constructors)),
	}
	for _, d := range m.Drivers {
		a.DriverPrices[d.ID] = []int{d.Price}
	}
	for _, c := range m.Constructors {
		a.ConstructorPrices[c.ID] = []int{c.Price}
	}
	return a
}

// statsFor lazily finds or creates the stats row for an asset, preserving
// first-seen order (canonical market order).
func (a *Artifact) statsFor(asset *model.Asset) *AssetStats {
	for i := range a.AssetStats {
		if a.AssetStats[i].ID == asset.ID {
			return &a.AssetStats[i]
		}
	}
	a.AssetStats = append(a.AssetStats, AssetStats{
		ID:         asset.ID,
		Name:       asset.Name,
		Kind:       string(asset.Kind),
		TeamID:     asset.TeamID,
		StartPrice: asset.PrevPrice,
		PeakPrice:  asset.PrevPrice,
	})
	return &a.AssetStats[len(a.AssetStats)-1]
}

// recordAssetRound captures an asset's post-round price and result facts.
// Called after the price model has stepped the asset.
func (a *Artifact) recordAssetRound(asset *model.Asset, res model.RaceResult) {
	st := a.statsFor(asset)
	if asset.Kind == model.KindDriver {
		a.DriverPrices[asset.ID] = append(a.DriverPrices[asset.ID], asset.Price)
		switch {
		case res.Position == 1:
			st.Wins++
			st.Podiums++
		case res.Position > 1 && res.Position <= 3:
			st.Podiums++
		case res.DNF:
			st.DNFs++
		}
	} else {
		a.ConstructorPrices[asset.ID] = append(a.ConstructorPrices[asset.ID], asset.Price)
	}
	if asset.Price > st.PeakPrice {
		st.PeakPrice = asset.Price
	}
}

// recordRound snapshots the round's top ten classified finishers.
func (a *Artifact) recordRound(rr *model.RoundResult) {
	top := RoundTop{Round: rr.Round, Sprint: rr.Sprint}
	for _, id := range rr.Finish {
		res := rr.ByAsset[id]
		if res.Position == 0 || res.Position > 10 {
			break
		}
		top.Top = append(top.Top, TopResult{
			Position: res.Position,
			AssetID:  id,
			Points:   res.RacePoints + res.SprintPoints,
		})
	}
	a.RoundTops = append(a.RoundTops, top)
}

// finishAssetStats fills the season-end figures once the loop completes.
func (a *Artifact) finishAssetStats(m *model.Market) {
	for i := range a.AssetStats {
		if asset := m.Get(a.AssetStats[i].ID); asset != nil {
			a.AssetStats[i].EndPrice = asset.Price
			a.AssetStats[i].Points = asset.SeasonPoints
		}
	}
}

// Write marshals the artifact to path as indented JSON.
func (a *Artifact) Write(path string) error {
	raw, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

// ReadArtifact loads a previously written artifact.
func ReadArtifact(path string) (*Artifact, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var a Artifact
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, err
	}
	return &a, nil
}
