package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"fantasy-gp/internal/rules"
	"fantasy-gp/internal/season"
)

// Season simulator. Usage:
//
//	sim [seed]
//
// The only argument is an optional integer seed (default 42). The run
// writes results/season_<seed>.json and prints the console summary.
func main() {
	seed := season.DefaultSeed
	if len(os.Args) > 1 {
		v, err := strconv.ParseInt(os.Args[1], 10, 64)
		if err != nil {
			fmt.Printf("invalid seed %q: must be an integer\n", os.Args[1])
			os.Exit(2)
		}
		seed = v
	}

	r := rules.Default()
	engine := season.New(r)
	art, err := engine.Run(seed)
	if err != nil {
		panic(err)
	}

	outPath := filepath.Join("results", fmt.Sprintf("season_%d.json", seed))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		panic(err)
	}
	if err := art.Write(outPath); err != nil {
		panic(err)
	}

	season.PrintSummary(art)
	fmt.Printf("\nWrote %s (%d trades, %d assets)\n", outPath, len(art.TradeLog), len(art.AssetStats))
}
