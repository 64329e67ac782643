package season

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"sort"
	"strconv"
)

// ExportCSVs converts an artifact into the tabular file set under dir:
// standings, driver stats, wide-format price histories, race results and
// the trade log.
func ExportCSVs(dir string, a *Artifact) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	steps := []struct {
		name  string
		write func(string, *Artifact) error
	}{
		{"standings.csv", writeStandingsCSV},
		{"driver_stats.csv", writeDriverStatsCSV},
		{"driver_prices.csv", func(p string, a *Artifact) error { return writePricesCSV(p, a.DriverPrices) }},
		{"constructor_prices.csv", func(p string, a *Artifact) error { return writePricesCSV(p, a.ConstructorPrices) }},
		{"race_results.csv", writeRaceResultsCSV},
		{"trade_log.csv", writeTradeLogCSV},
	}
	for _, s := range steps {
		if err := s.write(filepath.Join(dir, s.name), a); err != nil {
			return err
		}
	}
	return nil
}

func writeStandingsCSV(path string, a *Artifact) error {
	return writeCSV(path, []string{
		"rank", "user_id", "name", "tag", "points", "budget", "team_value", "transfers", "locked_points",
	}, func(w *csv.Writer) error {
		for _, s := range a.Standings {
			row := []string{
				strconv.Itoa(s.Rank),
				s.UserID,
				s.Name,
				s.Tag,
				strconv.Itoa(s.Points),
				strconv.Itoa(s.Budget),
				strconv.Itoa(s.TeamValue),
				strconv.Itoa(s.Transfers),
				strconv.Itoa(s.LockedPoints),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeDriverStatsCSV(path string, a *Artifact) error {
	return writeCSV(path, []string{
		"id", "name", "team", "points", "wins", "podiums", "dnfs", "start_price", "end_price", "peak_price",
	}, func(w *csv.Writer) error {
		for _, st := range a.AssetStats {
			if st.Kind != "driver" {
				continue
			}
			row := []string{
				st.ID,
				st.Name,
				st.TeamID,
				strconv.Itoa(st.Points),
				strconv.Itoa(st.Wins),
				strconv.Itoa(st.Podiums),
				strconv.Itoa(st.DNFs),
				strconv.Itoa(st.StartPrice),
				strconv.Itoa(st.EndPrice),
				strconv.Itoa(st.PeakPrice),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// writePricesCSV emits the wide format: one row per round, one column per
// asset, columns sorted by asset id.
func writePricesCSV(path string, prices map[string][]int) error {
	ids := make([]string, 0, len(prices))
	rows := 0
	for id, hist := range prices {
		ids = append(ids, id)
		if len(hist) > rows {
			rows = len(hist)
		}
	}
	sort.Strings(ids)

	return writeCSV(path, append([]string{"round"}, ids...), func(w *csv.Writer) error {
		for i := 0; i < rows; i++ {
			// Row 0 is the opening price, then one row per round.
			row := make([]string, 0, len(ids)+1)
			row = append(row, strconv.Itoa(i))
			for _, id := range ids {
				hist := prices[id]
				if i < len(hist) {
					row = append(row, strconv.Itoa(hist[i]))
				} else {
					row = append(row, "")
				}
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeRaceResultsCSV(path string, a *Artifact) error {
	return writeCSV(path, []string{
		"round", "sprint", "position", "asset_id", "points",
	}, func(w *csv.Writer) error {
		for _, rt := range a.RoundTops {
			for _, res := range rt.Top {
				row := []string{
					strconv.Itoa(rt.Round),
					strconv.FormatBool(rt.Sprint),
					strconv.Itoa(res.Position),
					res.AssetID,
					strconv.Itoa(res.Points),
				}
				if err := w.Write(row); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func writeTradeLogCSV(path string, a *Artifact) error {
	return writeCSV(path, []string{
		"id", "round", "user_id", "action", "asset_id", "price", "fee", "reason",
	}, func(w *csv.Writer) error {
		for _, t := range a.TradeLog {
			row := []string{
				t.ID,
				strconv.Itoa(t.Round),
				t.UserID,
				string(t.Action),
				t.AssetID,
				strconv.Itoa(t.Price),
				strconv.Itoa(t.Fee),
				t.Reason,
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeCSV(path string, header []string, body func(*csv.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(header); err != nil {
		return err
	}
	if err := body(w); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
