// Package ledger owns roster-slot lifecycle: buys and sells with fees,
// contract expiry with auto-sell and lockout, and cheapest-first auto-fill.
// Invalid trades are rejected at this boundary with typed errors; callers
// in the simulation loop simply drop them and move on.
package ledger

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"fantasy-gp/internal/model"
	"fantasy-gp/internal/rules"
)

var (
	ErrUnknownAsset       = errors.New("unknown asset")
	ErrInactiveAsset      = errors.New("asset not active")
	ErrAlreadyOwned       = errors.New("asset already owned")
	ErrNotOwned           = errors.New("asset not owned")
	ErrLockedOut          = errors.New("asset locked out")
	ErrRosterFull         = errors.New("roster full")
	ErrInsufficientBudget = errors.New("insufficient budget")
)

// tradeLogNamespace seeds deterministic trade-log entry ids so identical
// seeds produce byte-identical logs.
var tradeLogNamespace = uuid.MustParse("8d1f1c62-3b0a-4a55-9a34-6f1f5a1f9d01")

// Ledger mutates user rosters against a shared market, recording every
// accepted trade in an append-only log.
type Ledger struct {
	rules  *rules.Rules
	market *model.Market

	log []model.TradeLogEntry
	seq int
}

func New(r *rules.Rules, m *model.Market) *Ledger {
	return &Ledger{rules: r, market: m}
}

// Log returns the append-only trade log.
func (l *Ledger) Log() []model.TradeLogEntry {
	return l.log
}

// Buy signs an asset for the user at current market price. contractLength
// of 0 means the default. A zero-fee slot is created; the purchase price
// is the current price.
func (l *Ledger) Buy(round int, u *model.User, assetID string, contractLength int, reason string) error {
	return l.buy(round, u, assetID, contractLength, reason, true, false)
}

// Sell disposes of an owned asset before expiry. The early-termination fee
// is a fixed percentage of current price per race remaining on the
// contract, deducted from the proceeds.
func (l *Ledger) Sell(round int, u *model.User, assetID string, reason string) error {
	a := l.market.Get(assetID)
	if a == nil {
		return ErrUnknownAsset
	}

	var slot *model.RosterSlot
	constructor := false
	if u.Constructor != nil && u.Constructor.AssetID == assetID {
		slot = u.Constructor
		constructor = true
	} else if slot = u.DriverSlot(assetID); slot == nil {
		return ErrNotOwned
	}

	fee := int(float64(a.Price) * l.rules.SellFeePct * float64(slot.RacesRemaining()))
	u.Budget += a.Price - fee

	if constructor {
		u.Constructor = nil
	} else {
		u.RemoveDriver(assetID)
	}
	if u.AceID == assetID {
		u.AceID = ""
	}
	u.TradedThisRound = true
	u.Transfers++

	action := model.ActionSell
	if constructor {
		action = model.ActionSellConstructor
	}
	l.append(round, u.ID, action, assetID, a.Price, fee, reason)
	return nil
}

func (l *Ledger) buy(round int, u *model.User, assetID string, contractLength int, reason string, deliberate, reserve bool) error {
	a := l.market.Get(assetID)
	if a == nil {
		return ErrUnknownAsset
	}
	if !a.Active {
		return ErrInactiveAsset
	}
	if u.Owns(assetID) {
		return ErrAlreadyOwned
	}
	if u.LockedOut(assetID, round) {
		return ErrLockedOut
	}
	if a.Price > u.Budget {
		return ErrInsufficientBudget
	}

	if contractLength <= 0 {
		contractLength = l.rules.DefaultContractLength
	}
	slot := &model.RosterSlot{
		AssetID:        assetID,
		PurchasePrice:  a.Price,
		ContractLength: contractLength,
		ReservePick:    reserve,
	}

	action := model.ActionBuy
	if a.Kind == model.KindConstructor {
		if u.Constructor != nil {
			return ErrRosterFull
		}
		u.Constructor = slot
		action = model.ActionBuyConstructor
	} else {
		if len(u.Drivers) >= l.rules.TeamDrivers {
			return ErrRosterFull
		}
		u.Drivers = append(u.Drivers, slot)
	}

	u.Budget -= a.Price
	if deliberate {
		u.TradedThisRound = true
		u.Transfers++
	}
	l.append(round, u.ID, action, assetID, a.Price, 0, reason)
	return nil
}

// AdvanceContracts runs round-end contract maintenance for one user:
// every active slot ages one race, expired slots are auto-sold at market
// price (commission only if the rate is non-zero), their earned points are
// banked as locked points, the asset is locked out for the configured
// number of races, and an expiring Ace is cleared.
func (l *Ledger) AdvanceContracts(round int, u *model.User) {
	for _, s := range u.Drivers {
		s.RacesHeld++
	}
	if u.Constructor != nil {
		u.Constructor.RacesHeld++
	}

	var keep []*model.RosterSlot
	for _, s := range u.Drivers {
		if s.Expired() {
			l.autoSell(round, u, s, model.ActionSell)
			continue
		}
		keep = append(keep, s)
	}
	u.Drivers = keep

	if u.Constructor != nil && u.Constructor.Expired() {
		l.autoSell(round, u, u.Constructor, model.ActionSellConstructor)
		u.Constructor = nil
	}
}

func (l *Ledger) autoSell(round int, u *model.User, s *model.RosterSlot, action model.TradeAction) {
	a := l.market.Get(s.AssetID)
	if a == nil {
		return
	}
	fee := int(float64(a.Price) * l.rules.AutoSellCommissionPct)
	u.Budget += a.Price - fee
	u.LockedPoints += s.PointsEarned
	u.Lockouts[s.AssetID] = round + 1 + l.rules.LockoutRaces
	if u.AceID == s.AssetID {
		u.AceID = ""
	}
	l.append(round, u.ID, action, s.AssetID, a.Price, fee, "contract expired")
}

// AutoFill refills empty driver slots (and an empty constructor slot) with
// the cheapest active assets the user can sign: not owned, not locked out,
// affordable. Fills are greedy and partial; if nothing is affordable the
// roster simply stays short. Filled slots are reserve picks on the default
// contract length. The next empty slot's round is round+1: lockouts from
// this round's expiries still apply.
func (l *Ledger) AutoFill(round int, u *model.User) {
	if len(u.Drivers) < l.rules.TeamDrivers {
		for _, a := range l.market.ActiveByPrice(model.KindDriver) {
			if len(u.Drivers) >= l.rules.TeamDrivers {
				break
			}
			if u.Owns(a.ID) || u.LockedOut(a.ID, round+1) || a.Price > u.Budget {
				continue
			}
			if err := l.buy(round, u, a.ID, 0, "auto-fill", false, true); err != nil {
				continue
			}
		}
	}

	if u.Constructor == nil {
		for _, a := range l.market.ActiveByPrice(model.KindConstructor) {
			if u.LockedOut(a.ID, round+1) || a.Price > u.Budget {
				continue
			}
			if err := l.buy(round, u, a.ID, 0, "auto-fill", false, true); err == nil {
				break
			}
		}
	}
}

func (l *Ledger) append(round int, userID string, action model.TradeAction, assetID string, price, fee int, reason string) {
	l.seq++
	key := fmt.Sprintf("%d|%d|%s|%s|%s", l.seq, round, userID, action, assetID)
	l.log = append(l.log, model.TradeLogEntry{
		ID:      uuid.NewSHA1(tradeLogNamespace, []byte(key)).String(),
		Round:   round,
		UserID:  userID,
		Action:  action,
		AssetID: assetID,
		Price:   price,
		Fee:     fee,
		Reason:  reason,
	})
}
