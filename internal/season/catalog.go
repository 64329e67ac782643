package season

import (
	"fantasy-gp/internal/model"
	"fantasy-gp/internal/price"
	"fantasy-gp/internal/rules"
)

// catalogEntry seeds one asset: id, display name, team affiliation and the
// prior-season point total its opening price derives from.
type catalogEntry struct {
	id, name, team string
	prior          int
}

// The shipped grid: 10 fictional constructors, two drivers each. Order is
// canonical and must not change between releases; seeded replays and the
// generator's draw order both depend on it.
var driverCatalog = []catalogEntry{
	{"KAL", "Dario Kallis", "VEL", 520},
	{"ROS", "Mika Rosvall", "VEL", 410},
	{"VAN", "Theo Vandermeer", "APX", 480},
	{"OKA", "Ren Okabe", "APX", 350},
	{"SOR", "Luca Soriano", "BOR", 390},
	{"LIN", "Axel Lindqvist", "BOR", 260},
	{"DUV", "Emile Duval", "MER", 330},
	{"CAS", "Rafael Castillo", "MER", 240},
	{"NOV", "Petr Novak", "CYC", 280},
	{"HAR", "Jonas Harlow", "CYC", 190},
	{"BRA", "Caio Braga", "SSR", 220},
	{"KOV", "Ilya Kovac", "SSR", 150},
	{"MOR", "Dante Moretti", "TMB", 180},
	{"ASH", "Freddie Ashworth", "TMB", 120},
	{"SIL", "Tomas Silva", "ORX", 140},
	{"QUE", "Marco Quesada", "ORX", 95},
	{"FER", "Niko Ferrand", "PUL", 100},
	{"WAL", "Erik Walden", "PUL", 70},
	{"TAN", "Kenji Tanabe", "HLX", 60},
	{"ZAB", "Stefan Zabel", "HLX", 45},
}

var constructorCatalog = []catalogEntry{
	{"VEL", "Velocita", "", 465},
	{"APX", "Apex GP", "", 415},
	{"BOR", "Borealis", "", 325},
	{"MER", "Meridian", "", 285},
	{"CYC", "Cyclone", "", 235},
	{"SSR", "Silverstream", "", 185},
	{"TMB", "Tempesta", "", 150},
	{"ORX", "Onyx", "", 117},
	{"PUL", "Pulsar", "", 85},
	{"HLX", "Helix", "", 52},
}

// NewSeasonMarket builds the season's market from the catalog, pricing
// every asset from its prior-season average.
func NewSeasonMarket(r *rules.Rules) *model.Market {
	drivers := make([]*model.Asset, 0, len(driverCatalog))
	for _, e := range driverCatalog {
		drivers = append(drivers, &model.Asset{
			ID:          e.id,
			Name:        e.name,
			Kind:        model.KindDriver,
			TeamID:      e.team,
			PriorPoints: e.prior,
			Price:       price.InitialPrice(r, e.prior, r.SeasonRounds),
			Active:      true,
		})
	}
	constructors := make([]*model.Asset, 0, len(constructorCatalog))
	for _, e := range constructorCatalog {
		c := &model.Asset{
			ID:          e.id,
			Name:        e.name,
			Kind:        model.KindConstructor,
			PriorPoints: e.prior,
			Price:       price.InitialPrice(r, e.prior, r.SeasonRounds),
			Active:      true,
		}
		for _, d := range driverCatalog {
			if d.team == e.id {
				c.DriverIDs = append(c.DriverIDs, d.id)
			}
		}
		constructors = append(constructors, c)
	}
	m := model.NewMarket(drivers, constructors)
	for _, a := range m.All() {
		a.PrevPrice = a.Price
	}
	return m
}
