package rules

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default rule set invalid: %v", err)
	}
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	r, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if r.SeasonRounds != 24 || r.StartingBudget != 2500 {
		t.Errorf("unexpected defaults: rounds=%d budget=%d", r.SeasonRounds, r.StartingBudget)
	}
}

func TestLoad_OverlaysOnDefaults(t *testing.T) {
	path := writeRules(t, `
season_rounds: 10
starting_budget: 3000
deltas:
  a:
    great: 40
    good: 20
    poor: -20
    terrible: -40
`)
	r, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if r.SeasonRounds != 10 {
		t.Errorf("season_rounds = %d, want 10", r.SeasonRounds)
	}
	if r.StartingBudget != 3000 {
		t.Errorf("starting_budget = %d, want 3000", r.StartingBudget)
	}
	if r.Deltas.A.Great != 40 {
		t.Errorf("deltas.a.great = %d, want 40", r.Deltas.A.Great)
	}
	// Keys the file omits keep their defaults.
	if r.TierAThreshold != 400 {
		t.Errorf("tier_a_threshold = %d, want default 400", r.TierAThreshold)
	}
	if r.Deltas.B.Great != 20 {
		t.Errorf("deltas.b.great = %d, want default 20", r.Deltas.B.Great)
	}
}

func TestLoad_RejectsInvalidOverlay(t *testing.T) {
	path := writeRules(t, "min_price: 500\nmax_price: 100\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error for min_price > max_price")
	}
}

func TestLoad_RejectsMalformedYAML(t *testing.T) {
	path := writeRules(t, "season_rounds: [not a number\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/rules.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Rules)
	}{
		{"zero rounds", func(r *Rules) { r.SeasonRounds = 0 }},
		{"zero agents", func(r *Rules) { r.AgentCount = 0 }},
		{"inverted prices", func(r *Rules) { r.MinPrice, r.MaxPrice = 100, 50 }},
		{"inverted tiers", func(r *Rules) { r.TierAThreshold = r.TierBThreshold }},
		{"non-descending ratios", func(r *Rules) { r.GoodRatio = r.GreatRatio }},
		{"empty race table", func(r *Rules) { r.RacePoints = nil }},
		{"decreasing lock tiers", func(r *Rules) { r.LockBonusTier2 = 0 }},
		{"fee over 100%", func(r *Rules) { r.SellFeePct = 1.5 }},
		{"negative lockout", func(r *Rules) { r.LockoutRaces = -1 }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := Default()
			c.mutate(r)
			if err := r.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func writeRules(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
