package model

import "sort"

// Market holds every tradable asset for a season. Slice order is the
// canonical iteration order; it never changes after construction, which
// keeps seeded simulations replayable.
type Market struct {
	Drivers      []*Asset
	Constructors []*Asset

	byID map[string]*Asset
}

func NewMarket(drivers, constructors []*Asset) *Market {
	m := &Market{
		Drivers:      drivers,
		Constructors: constructors,
		byID:         make(map[string]*Asset, len(drivers)+len(constructors)),
	}
	for _, a := range drivers {
		m.byID[a.ID] = a
	}
	for _, a := range constructors {
		m.byID[a.ID] = a
	}
	return m
}

// Get returns the asset for id, or nil.
func (m *Market) Get(id string) *Asset {
	return m.byID[id]
}

// All returns drivers followed by constructors in canonical order.
func (m *Market) All() []*Asset {
	out := make([]*Asset, 0, len(m.Drivers)+len(m.Constructors))
	out = append(out, m.Drivers...)
	return append(out, m.Constructors...)
}

// ActiveByPrice returns the active assets of a kind sorted ascending by
// price. Equal prices keep canonical order so auto-fill stays deterministic.
func (m *Market) ActiveByPrice(kind AssetKind) []*Asset {
	src := m.Drivers
	if kind == KindConstructor {
		src = m.Constructors
	}
	out := make([]*Asset, 0, len(src))
	for _, a := range src {
		if a.Active {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	return out
}
