package model

// AssetKind distinguishes the two tradable asset classes.
type AssetKind string

const (
	KindDriver      AssetKind = "driver"
	KindConstructor AssetKind = "constructor"
)

// Asset is a tradable driver or constructor.
// Units:
// - Price/PrevPrice: whole dollars
// - Recent: race+sprint points, most-recent-first, bounded window
type Asset struct {
	ID   string
	Name string
	Kind AssetKind

	// TeamID is the constructor an asset drives for (drivers only).
	TeamID string
	// DriverIDs are the two drivers feeding a constructor's score (constructors only).
	DriverIDs []string

	Price     int
	PrevPrice int

	Recent       []int
	SeasonPoints int

	// PriorPoints is the previous season's cumulative total, used to seed
	// the opening price.
	PriorPoints int

	Active bool
}

// PriceDelta is the change applied by the most recent price update.
func (a *Asset) PriceDelta() int {
	return a.Price - a.PrevPrice
}

// RecordPoints prepends a round's points to the rolling history, trimming
// to the window, and folds them into the season total.
func (a *Asset) RecordPoints(points, window int) {
	a.Recent = append([]int{points}, a.Recent...)
	if len(a.Recent) > window {
		a.Recent = a.Recent[:window]
	}
	a.SeasonPoints += points
}

// RecentForm is the sum of the rolling window. Assets with no history yet
// score zero, which keeps brand-new assets from looking hot.
func (a *Asset) RecentForm() int {
	total := 0
	for _, p := range a.Recent {
		total += p
	}
	return total
}
