// Package rules holds the immutable rule set the whole engine is
// parameterized on. Every pure function takes a *Rules explicitly so
// alternate rule sets can be tested without global state.
package rules

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// BandDeltas are the four performance-band price deltas for one tier.
type BandDeltas struct {
	Great    int `yaml:"great"`
	Good     int `yaml:"good"`
	Poor     int `yaml:"poor"`
	Terrible int `yaml:"terrible"`
}

// DeltaTable is the 3x4 tier-by-performance price-change lookup.
type DeltaTable struct {
	A BandDeltas `yaml:"a"`
	B BandDeltas `yaml:"b"`
	C BandDeltas `yaml:"c"`
}

// Rules is the on-disk configuration shape (YAML) and the in-memory rule
// set. Prices and points are whole integers throughout.
type Rules struct {
	SeasonRounds int `yaml:"season_rounds"`
	AgentCount   int `yaml:"agent_count"`

	TeamDrivers    int `yaml:"team_drivers"`
	StartingBudget int `yaml:"starting_budget"`

	MinPrice         int `yaml:"min_price"`
	MaxPrice         int `yaml:"max_price"`
	MaxChangePerRace int `yaml:"max_change_per_race"`

	// Tier thresholds: price > TierAThreshold is A, price > TierBThreshold
	// is B, otherwise C. A boundary price belongs to the lower tier.
	TierAThreshold int `yaml:"tier_a_threshold"`
	TierBThreshold int `yaml:"tier_b_threshold"`

	// Performance ratio bands on points/price, evaluated highest-first.
	GreatRatio float64 `yaml:"great_ratio"`
	GoodRatio  float64 `yaml:"good_ratio"`
	PoorRatio  float64 `yaml:"poor_ratio"`

	Deltas DeltaTable `yaml:"deltas"`

	// DNF price penalty, linear from Max (lap-1 retirement) to Min
	// (final-lap retirement). Composes with the performance delta.
	DNFPricePenaltyMax int `yaml:"dnf_price_penalty_max"`
	DNFPricePenaltyMin int `yaml:"dnf_price_penalty_min"`

	DollarsPerAvgPoint int `yaml:"dollars_per_avg_point"`
	RecentWindow       int `yaml:"recent_window"`

	RacePoints   []int `yaml:"race_points"`
	SprintPoints []int `yaml:"sprint_points"`

	PositionGainCredit int `yaml:"position_gain_credit"`
	FastestLapBonus    int `yaml:"fastest_lap_bonus"`
	DNFPoints          int `yaml:"dnf_points"`
	DSQPoints          int `yaml:"dsq_points"`

	AceMaxPrice int `yaml:"ace_max_price"`

	// Lock bonus per race held: tier 1 covers races 1-3, tier 2 races 4-6,
	// tier 3 races 7+. SeasonLockBonus pays once at exactly SeasonRounds.
	LockBonusTier1  int `yaml:"lock_bonus_tier1"`
	LockBonusTier2  int `yaml:"lock_bonus_tier2"`
	LockBonusTier3  int `yaml:"lock_bonus_tier3"`
	SeasonLockBonus int `yaml:"season_lock_bonus"`

	DefaultContractLength int     `yaml:"default_contract_length"`
	SellFeePct            float64 `yaml:"sell_fee_pct"`
	AutoSellCommissionPct float64 `yaml:"auto_sell_commission_pct"`
	LockoutRaces          int     `yaml:"lockout_races"`

	StaleThreshold      int `yaml:"stale_threshold"`
	StalePenaltyPerRace int `yaml:"stale_penalty_per_race"`
}

// Default returns the shipped rule set.
func Default() *Rules {
	return &Rules{
		SeasonRounds: 24,
		AgentCount:   25,

		TeamDrivers:    5,
		StartingBudget: 2500,

		MinPrice:         50,
		MaxPrice:         1000,
		MaxChangePerRace: 30,

		TierAThreshold: 400,
		TierBThreshold: 200,

		GreatRatio: 0.060,
		GoodRatio:  0.030,
		PoorRatio:  0.015,

		Deltas: DeltaTable{
			A: BandDeltas{Great: 25, Good: 15, Poor: -15, Terrible: -25},
			B: BandDeltas{Great: 20, Good: 10, Poor: -10, Terrible: -20},
			C: BandDeltas{Great: 15, Good: 5, Poor: -5, Terrible: -15},
		},

		DNFPricePenaltyMax: 30,
		DNFPricePenaltyMin: 5,

		DollarsPerAvgPoint: 32,
		RecentWindow:       5,

		RacePoints:   []int{25, 18, 15, 12, 10, 8, 6, 4, 2, 1},
		SprintPoints: []int{8, 7, 6, 5, 4, 3, 2, 1},

		PositionGainCredit: 1,
		FastestLapBonus:    10,
		DNFPoints:          -15,
		DSQPoints:          -20,

		AceMaxPrice: 300,

		LockBonusTier1:  1,
		LockBonusTier2:  2,
		LockBonusTier3:  3,
		SeasonLockBonus: 50,

		DefaultContractLength: 5,
		SellFeePct:            0.02,
		AutoSellCommissionPct: 0,
		LockoutRaces:          1,

		StaleThreshold:      5,
		StalePenaltyPerRace: 5,
	}
}

// Load reads a YAML rule file, overlays it on the defaults, and validates.
// An empty path returns the defaults unchanged.
func Load(path string) (*Rules, error) {
	r, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// LoadUnchecked loads and merges a rule file, but does not validate it.
// Useful for debugging/printing partial rule sets.
func LoadUnchecked(path string) (*Rules, error) {
	r := Default()
	if path == "" {
		return r, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	// Unmarshal directly over the defaults: omitted keys keep default values.
	if err := yaml.Unmarshal(raw, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate catches malformed rule sets up-front; these are programmer
// errors, not runtime conditions to recover from.
func (r *Rules) Validate() error {
	if r == nil {
		return errors.New("rules is nil")
	}
	if r.SeasonRounds <= 0 {
		return errors.New("season_rounds must be > 0")
	}
	if r.AgentCount <= 0 {
		return errors.New("agent_count must be > 0")
	}
	if r.TeamDrivers <= 0 {
		return errors.New("team_drivers must be > 0")
	}
	if r.StartingBudget <= 0 {
		return errors.New("starting_budget must be > 0")
	}
	if r.MinPrice <= 0 || r.MaxPrice <= r.MinPrice {
		return errors.New("prices must satisfy 0 < min_price < max_price")
	}
	if r.MaxChangePerRace <= 0 {
		return errors.New("max_change_per_race must be > 0")
	}
	if r.TierBThreshold <= 0 || r.TierAThreshold <= r.TierBThreshold {
		return errors.New("tier thresholds must satisfy 0 < tier_b < tier_a")
	}
	if !(r.GreatRatio > r.GoodRatio && r.GoodRatio > r.PoorRatio && r.PoorRatio > 0) {
		return errors.New("performance ratios must be strictly descending and positive")
	}
	if len(r.RacePoints) == 0 {
		return errors.New("race_points table is empty")
	}
	if len(r.SprintPoints) == 0 {
		return errors.New("sprint_points table is empty")
	}
	if r.DNFPricePenaltyMax < r.DNFPricePenaltyMin || r.DNFPricePenaltyMin < 0 {
		return errors.New("dnf price penalty bounds must satisfy 0 <= min <= max")
	}
	if r.DollarsPerAvgPoint <= 0 {
		return errors.New("dollars_per_avg_point must be > 0")
	}
	if r.RecentWindow <= 0 {
		return errors.New("recent_window must be > 0")
	}
	if r.LockBonusTier1 < 0 || r.LockBonusTier2 < r.LockBonusTier1 || r.LockBonusTier3 < r.LockBonusTier2 {
		return errors.New("lock bonus tiers must be non-negative and non-decreasing")
	}
	if r.DefaultContractLength <= 0 {
		return errors.New("default_contract_length must be > 0")
	}
	if r.SellFeePct < 0 || r.SellFeePct > 1 {
		return fmt.Errorf("sell_fee_pct %v out of [0,1]", r.SellFeePct)
	}
	if r.AutoSellCommissionPct < 0 || r.AutoSellCommissionPct > 1 {
		return fmt.Errorf("auto_sell_commission_pct %v out of [0,1]", r.AutoSellCommissionPct)
	}
	if r.LockoutRaces < 0 {
		return errors.New("lockout_races must be >= 0")
	}
	if r.StaleThreshold < 0 || r.StalePenaltyPerRace < 0 {
		return errors.New("stale roster settings must be >= 0")
	}
	return nil
}
