package model

// RosterSlot is one owned asset under a time-boxed contract.
// Created on buy, removed on sell or expiry.
type RosterSlot struct {
	AssetID        string `json:"asset_id"`
	PurchasePrice  int    `json:"purchase_price"`
	RacesHeld      int    `json:"races_held"`
	ContractLength int    `json:"contract_length"`
	// ReservePick marks a slot filled by auto-fill rather than a
	// deliberate choice.
	ReservePick bool `json:"reserve_pick"`

	// PointsEarned accumulates the fantasy points this slot produced while
	// held; banked as locked points if the contract expires.
	PointsEarned int `json:"points_earned"`
}

// RacesRemaining is how many races are left on the contract.
func (s *RosterSlot) RacesRemaining() int {
	rem := s.ContractLength - s.RacesHeld
	if rem < 0 {
		return 0
	}
	return rem
}

// Expired reports whether the contract has run its course.
func (s *RosterSlot) Expired() bool {
	return s.RacesHeld >= s.ContractLength
}

// User is one fantasy team: budget, roster, Ace designation and the
// counters the economy rules key off.
type User struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	StrategyTag string `json:"strategy_tag"`

	Budget int `json:"budget"`

	Drivers     []*RosterSlot `json:"drivers"`
	Constructor *RosterSlot   `json:"constructor,omitempty"`

	// AceID is the designated double-points asset (driver or constructor),
	// or empty.
	AceID string `json:"ace_id,omitempty"`

	RacesSinceTransfer int `json:"races_since_transfer"`
	// TradedThisRound is set by deliberate buys/sells and cleared by the
	// simulation loop after the stale counter is updated.
	TradedThisRound bool `json:"-"`

	TotalPoints  int   `json:"total_points"`
	RoundPoints  []int `json:"round_points"`
	LockedPoints int   `json:"locked_points"`
	Transfers    int   `json:"transfers"`

	// Lockouts maps asset id to the first round index at which the user
	// may re-sign it.
	Lockouts map[string]int `json:"lockouts,omitempty"`
}

func NewUser(id, name, tag string, budget int) *User {
	return &User{
		ID:          id,
		Name:        name,
		StrategyTag: tag,
		Budget:      budget,
		Lockouts:    make(map[string]int),
	}
}

// DriverSlot returns the slot holding assetID, or nil.
func (u *User) DriverSlot(assetID string) *RosterSlot {
	for _, s := range u.Drivers {
		if s.AssetID == assetID {
			return s
		}
	}
	return nil
}

// Owns reports whether the user holds assetID in any slot.
func (u *User) Owns(assetID string) bool {
	if u.Constructor != nil && u.Constructor.AssetID == assetID {
		return true
	}
	return u.DriverSlot(assetID) != nil
}

// LockedOut reports whether assetID is still barred at round.
func (u *User) LockedOut(assetID string, round int) bool {
	until, ok := u.Lockouts[assetID]
	return ok && round < until
}

// RemoveDriver drops the slot holding assetID, preserving roster order.
func (u *User) RemoveDriver(assetID string) {
	for i, s := range u.Drivers {
		if s.AssetID == assetID {
			u.Drivers = append(u.Drivers[:i], u.Drivers[i+1:]...)
			return
		}
	}
}

// TeamValue is the market value of everything owned at current prices.
func (u *User) TeamValue(m *Market) int {
	total := 0
	for _, s := range u.Drivers {
		if a := m.Get(s.AssetID); a != nil {
			total += a.Price
		}
	}
	if u.Constructor != nil {
		if a := m.Get(u.Constructor.AssetID); a != nil {
			total += a.Price
		}
	}
	return total
}
