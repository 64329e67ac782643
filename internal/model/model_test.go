package model

import "testing"

func TestActiveByPrice_SortsAndFilters(t *testing.T) {
	m := NewMarket(
		[]*Asset{
			{ID: "D1", Kind: KindDriver, Price: 300, Active: true},
			{ID: "D2", Kind: KindDriver, Price: 100, Active: true},
			{ID: "D3", Kind: KindDriver, Price: 200, Active: false},
			{ID: "D4", Kind: KindDriver, Price: 100, Active: true},
		},
		nil,
	)
	out := m.ActiveByPrice(KindDriver)
	want := []string{"D2", "D4", "D1"} // equal prices keep canonical order
	if len(out) != len(want) {
		t.Fatalf("got %d assets, want %d", len(out), len(want))
	}
	for i, a := range out {
		if a.ID != want[i] {
			t.Errorf("position %d = %s, want %s", i, a.ID, want[i])
		}
	}
}

func TestRecordPoints_WindowAndSeasonTotal(t *testing.T) {
	a := &Asset{ID: "D1"}
	for _, p := range []int{10, 20, 30, 40} {
		a.RecordPoints(p, 3)
	}
	if len(a.Recent) != 3 {
		t.Fatalf("window holds %d entries, want 3", len(a.Recent))
	}
	// Most recent first; the oldest entry fell off.
	if a.Recent[0] != 40 || a.Recent[2] != 20 {
		t.Errorf("recent = %v", a.Recent)
	}
	if a.RecentForm() != 90 {
		t.Errorf("form = %d, want 90", a.RecentForm())
	}
	if a.SeasonPoints != 100 {
		t.Errorf("season total = %d, want 100 (window must not trim it)", a.SeasonPoints)
	}
}

func TestRosterSlot_ContractArithmetic(t *testing.T) {
	s := &RosterSlot{ContractLength: 5, RacesHeld: 3}
	if s.RacesRemaining() != 2 {
		t.Errorf("remaining = %d, want 2", s.RacesRemaining())
	}
	if s.Expired() {
		t.Error("slot expired at 3 of 5")
	}
	s.RacesHeld = 5
	if !s.Expired() || s.RacesRemaining() != 0 {
		t.Errorf("slot at 5 of 5: expired=%v remaining=%d", s.Expired(), s.RacesRemaining())
	}
	s.RacesHeld = 7
	if s.RacesRemaining() != 0 {
		t.Errorf("remaining past expiry = %d, want 0", s.RacesRemaining())
	}
}

func TestUser_OwnershipAcrossSlots(t *testing.T) {
	u := NewUser("u1", "test", "test", 1000)
	u.Drivers = []*RosterSlot{{AssetID: "D1"}, {AssetID: "D2"}}
	u.Constructor = &RosterSlot{AssetID: "C1"}

	for _, id := range []string{"D1", "D2", "C1"} {
		if !u.Owns(id) {
			t.Errorf("should own %s", id)
		}
	}
	if u.Owns("D3") {
		t.Error("phantom ownership of D3")
	}

	u.RemoveDriver("D1")
	if u.Owns("D1") || len(u.Drivers) != 1 || u.Drivers[0].AssetID != "D2" {
		t.Errorf("after removal: drivers = %+v", u.Drivers)
	}
}

func TestUser_LockoutWindow(t *testing.T) {
	u := NewUser("u1", "test", "test", 1000)
	u.Lockouts["D1"] = 5
	if !u.LockedOut("D1", 4) {
		t.Error("round 4 should be barred")
	}
	if u.LockedOut("D1", 5) {
		t.Error("round 5 should be allowed")
	}
	if u.LockedOut("D2", 0) {
		t.Error("asset with no lockout entry is never barred")
	}
}

func TestRoundResult_MissingDriverReadsZero(t *testing.T) {
	rr := &RoundResult{Round: 3, ByAsset: map[string]RaceResult{
		"D1": {AssetID: "D1", Position: 2},
	}}
	if got := rr.For("D1").Position; got != 2 {
		t.Errorf("position = %d, want 2", got)
	}
	zero := rr.For("D9")
	if zero.Position != 0 || zero.RacePoints != 0 || zero.DNF {
		t.Errorf("missing driver = %+v, want zero result", zero)
	}

	var nilResult *RoundResult
	if got := nilResult.For("D1"); got.AssetID != "D1" {
		t.Errorf("nil round result should still read as zero, got %+v", got)
	}
}
