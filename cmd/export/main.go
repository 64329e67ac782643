package main

import (
	"flag"
	"fmt"
	"os"

	"fantasy-gp/internal/season"
)

// Converts a season artifact (JSON) into the tabular CSV file set:
// standings, driver stats, wide-format price histories, race results and
// the trade log.
func main() {
	inPath := flag.String("in", "results/season_42.json", "Path to a season artifact JSON")
	outDir := flag.String("out", "results/csv", "Directory for the CSV files")
	flag.Parse()

	art, err := season.ReadArtifact(*inPath)
	if err != nil {
		fmt.Printf("read artifact: %v\n", err)
		os.Exit(2)
	}

	if err := season.ExportCSVs(*outDir, art); err != nil {
		panic(err)
	}
	fmt.Printf("Exported seed=%d artifact to %s\n", art.Seed, *outDir)
}
