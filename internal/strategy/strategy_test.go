package strategy

import (
	"math/rand"
	"reflect"
	"testing"

	"fantasy-gp/internal/model"
	"fantasy-gp/internal/rules"
)

func testContext(t *testing.T) Context {
	t.Helper()
	r := rules.Default()
	drivers := []*model.Asset{
		{ID: "D1", Name: "Driver One", Kind: model.KindDriver, Price: 500, PrevPrice: 520, Active: true, Recent: []int{20, 22}},
		{ID: "D2", Name: "Driver Two", Kind: model.KindDriver, Price: 300, PrevPrice: 280, Active: true, Recent: []int{15, 12}},
		{ID: "D3", Name: "Driver Three", Kind: model.KindDriver, Price: 150, PrevPrice: 155, Active: true, Recent: []int{8, 9}},
		{ID: "D4", Name: "Driver Four", Kind: model.KindDriver, Price: 100, PrevPrice: 100, Active: true, Recent: []int{4, 3}},
		{ID: "D5", Name: "Driver Five", Kind: model.KindDriver, Price: 80, PrevPrice: 90, Active: true, Recent: []int{2, 1}},
		{ID: "D6", Name: "Driver Six", Kind: model.KindDriver, Price: 60, PrevPrice: 60, Active: true},
	}
	constructors := []*model.Asset{
		{ID: "C1", Name: "Team One", Kind: model.KindConstructor, Price: 400, PrevPrice: 390, Active: true, Recent: []int{18, 16}},
		{ID: "C2", Name: "Team Two", Kind: model.KindConstructor, Price: 200, PrevPrice: 210, Active: true, Recent: []int{7, 6}},
	}
	return Context{
		Round:  1,
		Rules:  r,
		Market: model.NewMarket(drivers, constructors),
		Team:   model.NewUser("u1", "test user", "test", r.StartingBudget),
		Rand:   rand.New(rand.NewSource(1)),
	}
}

func TestGrid_FixedField(t *testing.T) {
	r := rules.Default()
	grid := Grid()
	if len(grid) != r.AgentCount {
		t.Fatalf("grid has %d agents, want %d", len(grid), r.AgentCount)
	}
	seen := map[string]bool{}
	for _, s := range grid {
		if s.Name() == "" || s.Tag() == "" {
			t.Errorf("agent with empty name or tag: %q/%q", s.Name(), s.Tag())
		}
		if seen[s.Name()] {
			t.Errorf("duplicate agent name %q", s.Name())
		}
		seen[s.Name()] = true
	}

	// Two calls produce the field in the same order.
	again := Grid()
	for i := range grid {
		if grid[i].Name() != again[i].Name() {
			t.Fatalf("grid order differs at %d: %q vs %q", i, grid[i].Name(), again[i].Name())
		}
	}
}

func TestCheapestFill_BuysAscendingByPrice(t *testing.T) {
	ctx := testContext(t)
	s := &CheapestFill{AgentName: "cheapest-01"}
	d := s.Decide(ctx)

	want := []string{"D6", "D5", "D4", "D3", "D2"}
	if !reflect.DeepEqual(d.Buys, want) {
		t.Errorf("buys = %v, want %v", d.Buys, want)
	}
	if d.BuyConstructorID != "C2" {
		t.Errorf("constructor = %q, want C2", d.BuyConstructorID)
	}
	if len(d.Sells) != 0 {
		t.Errorf("cheapest never sells, got %v", d.Sells)
	}
}

func TestStarChaser_BuysDescendingWithinBudget(t *testing.T) {
	ctx := testContext(t)
	s := &StarChaser{AgentName: "star-01"}
	d := s.Decide(ctx)

	// 500+300+150+100+80 = 1130, all affordable at 2500; then the most
	// expensive constructor from what remains.
	want := []string{"D1", "D2", "D3", "D4", "D5"}
	if !reflect.DeepEqual(d.Buys, want) {
		t.Errorf("buys = %v, want %v", d.Buys, want)
	}
	if d.BuyConstructorID != "C1" {
		t.Errorf("constructor = %q, want C1", d.BuyConstructorID)
	}
}

func TestContrarian_PrefersBiggestFaller(t *testing.T) {
	ctx := testContext(t)
	s := &Contrarian{AgentName: "contrarian-01"}
	d := s.Decide(ctx)

	// D1 fell 20, the biggest drop on the board.
	if len(d.Buys) == 0 || d.Buys[0] != "D1" {
		t.Errorf("buys = %v, want D1 first", d.Buys)
	}
}

func TestFormChaser_SwapsColdestForClearlyHotter(t *testing.T) {
	ctx := testContext(t)
	ctx.Team.Drivers = []*model.RosterSlot{
		{AssetID: "D5", ContractLength: 5}, // form 3
		{AssetID: "D4", ContractLength: 5}, // form 7
	}
	ctx.Team.Budget = 600

	d := (&FormChaser{AgentName: "form-01", MinFormEdge: 10}).Decide(ctx)
	// Hottest candidate is D1 (form 42), 42 >= 3+10: swap.
	if len(d.Sells) != 1 || d.Sells[0] != "D5" {
		t.Errorf("sells = %v, want [D5]", d.Sells)
	}
	if len(d.Buys) == 0 || d.Buys[0] != "D1" {
		t.Errorf("buys = %v, want D1 first", d.Buys)
	}

	// A huge edge requirement suppresses the swap.
	ctx2 := testContext(t)
	ctx2.Team.Drivers = []*model.RosterSlot{{AssetID: "D5", ContractLength: 5}}
	d2 := (&FormChaser{AgentName: "form-02", MinFormEdge: 100}).Decide(ctx2)
	if len(d2.Sells) != 0 {
		t.Errorf("sells = %v, want none with edge 100", d2.Sells)
	}
}

func TestCadence_TradesOnlyOnSchedule(t *testing.T) {
	s := &Cadence{AgentName: "cadence-01", Every: 3}

	ctx := testContext(t)
	ctx.Round = 2
	ctx.Team.Drivers = []*model.RosterSlot{{AssetID: "D5", ContractLength: 5}}
	if d := s.Decide(ctx); len(d.Sells) != 0 {
		t.Errorf("round 2 sells = %v, want none", d.Sells)
	}

	ctx.Round = 3
	if d := s.Decide(ctx); len(d.Sells) != 1 || d.Sells[0] != "D5" {
		t.Errorf("round 3 should sell the worst-form driver")
	}
}

func TestLoyalist_KeepsAceStable(t *testing.T) {
	ctx := testContext(t)
	ctx.Team.AceID = "D3"
	d := (&Loyalist{AgentName: "loyal-01"}).Decide(ctx)
	if d.AceID != "D3" {
		t.Errorf("ace = %q, want the existing D3", d.AceID)
	}
}

func TestRandomPicker_DeterministicForSeed(t *testing.T) {
	run := func() Decision {
		ctx := testContext(t)
		ctx.Team.Drivers = []*model.RosterSlot{{AssetID: "D4", ContractLength: 5}}
		return (&RandomPicker{AgentName: "random-01", SellChance: 0.5}).Decide(ctx)
	}
	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed produced different decisions:\n%+v\n%+v", a, b)
	}
}

func TestPickAce_RespectsPriceCeiling(t *testing.T) {
	ctx := testContext(t)
	d := Decision{Buys: []string{"D1", "D2"}}
	// D1 has the hottest form but sits above the 300 ceiling.
	if got := pickAce(ctx, d); got != "D2" {
		t.Errorf("ace = %q, want D2", got)
	}
}

func TestDecisionsStayWithinBudget(t *testing.T) {
	for _, s := range Grid() {
		ctx := testContext(t)
		ctx.Team.Budget = 400
		d := s.Decide(ctx)

		spend := 0
		for _, id := range d.Buys {
			spend += ctx.Market.Get(id).Price
		}
		if spend > ctx.Team.Budget {
			t.Errorf("%s driver plan spends %d of %d", s.Name(), spend, ctx.Team.Budget)
		}
	}
}
