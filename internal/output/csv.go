// Package output serializes prop rows to CSV and JSON files.
package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/propsline/engine/internal/props"
)

// Columns is the fixed CSV column set, in output order.
var Columns = []string{
	"event_id",
	"home_team",
	"away_team",
	"commence_time",
	"bookmaker",
	"bookmaker_title",
	"bookmaker_last_update",
	"market_last_update",
	"market",
	"outcome",
	"description",
	"point",
	"price_american",
	"implied_prob",
	"no_vig_prob",
}

// WriteCSV writes rows as a header-plus-data CSV file at path. An empty row
// sequence produces an empty file, not an error. The file is fully
// regenerated on every call.
func WriteCSV(path string, rows []props.Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if len(rows) == 0 {
		return nil
	}

	w := csv.NewWriter(f)
	if err := w.Write(Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, r := range rows {
		if err := w.Write(record(r)); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}

	return nil
}

// record renders one row in Columns order. Absent numeric fields become
// empty cells.
func record(r props.Row) []string {
	return []string{
		r.EventID,
		r.HomeTeam,
		r.AwayTeam,
		r.CommenceTime,
		r.Bookmaker,
		r.BookmakerTitle,
		r.BookmakerLastUpdate,
		r.MarketLastUpdate,
		r.Market,
		r.Outcome,
		r.Description,
		formatFloat(r.Point),
		formatFloat(r.PriceAmerican),
		formatFloat(r.ImpliedProb),
		formatFloat(r.NoVigProb),
	}
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// ReadCSV loads a CSV file written by WriteCSV, returning the header and
// data records. An empty file yields a nil header and no records.
func ReadCSV(path string) (header []string, records [][]string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	all, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}

	if len(all) == 0 {
		return nil, nil, nil
	}

	return all[0], all[1:], nil
}
