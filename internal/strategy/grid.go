package strategy

import "fmt"

// Grid returns the fixed 25-agent field in evaluation order. The order is
// part of the game-balance contract: earlier agents commit budget first,
// and replays depend on it, so never reorder entries.
func Grid() []Strategy {
	n := func(tag string, i int) string { return fmt.Sprintf("%s-%02d", tag, i) }
	return []Strategy{
		&CheapestFill{AgentName: n("cheapest", 1)},
		&CheapestFill{AgentName: n("cheapest", 2)},
		&CheapestFill{AgentName: n("cheapest", 3)},
		&CheapestFill{AgentName: n("cheapest", 4)},

		&FormChaser{AgentName: n("form", 1), MinFormEdge: 5},
		&FormChaser{AgentName: n("form", 2), MinFormEdge: 10},
		&FormChaser{AgentName: n("form", 3), MinFormEdge: 15},
		&FormChaser{AgentName: n("form", 4), MinFormEdge: 20},

		&ValueSeeker{AgentName: n("value", 1)},
		&ValueSeeker{AgentName: n("value", 2)},
		&ValueSeeker{AgentName: n("value", 3)},
		&ValueSeeker{AgentName: n("value", 4)},

		&StarChaser{AgentName: n("star", 1)},
		&StarChaser{AgentName: n("star", 2)},
		&StarChaser{AgentName: n("star", 3)},

		&Contrarian{AgentName: n("contrarian", 1)},
		&Contrarian{AgentName: n("contrarian", 2)},
		&Contrarian{AgentName: n("contrarian", 3)},

		&Cadence{AgentName: n("cadence", 1), Every: 3},
		&Cadence{AgentName: n("cadence", 2), Every: 4},
		&Cadence{AgentName: n("cadence", 3), Every: 6},

		&Loyalist{AgentName: n("loyal", 1)},
		&Loyalist{AgentName: n("loyal", 2)},

		&RandomPicker{AgentName: n("random", 1), SellChance: 0.15},
		&RandomPicker{AgentName: n("random", 2), SellChance: 0.35},
	}
}
