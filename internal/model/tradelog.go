package model

// TradeAction is the kind of ledger mutation a log entry records.
// Keep these values stable; they are intended for CSV output.
type TradeAction string

const (
	ActionBuy             TradeAction = "BUY"
	ActionSell            TradeAction = "SELL"
	ActionBuyConstructor  TradeAction = "BUY_CONSTRUCTOR"
	ActionSellConstructor TradeAction = "SELL_CONSTRUCTOR"
)

// TradeLogEntry is one row of the append-only audit trail.
type TradeLogEntry struct {
	ID      string      `json:"id"`
	Round   int         `json:"round"`
	UserID  string      `json:"user_id"`
	Action  TradeAction `json:"action"`
	AssetID string      `json:"asset_id"`
	Price   int         `json:"price"`
	Fee     int         `json:"fee"`
	Reason  string      `json:"reason"`
}
