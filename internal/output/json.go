package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/propsline/engine/internal/props"
)

// jsonRow mirrors the CSV column set; absent numeric fields serialize as null.
type jsonRow struct {
	EventID             string   `json:"event_id"`
	HomeTeam            string   `json:"home_team"`
	AwayTeam            string   `json:"away_team"`
	CommenceTime        string   `json:"commence_time"`
	Bookmaker           string   `json:"bookmaker"`
	BookmakerTitle      string   `json:"bookmaker_title"`
	BookmakerLastUpdate string   `json:"bookmaker_last_update,omitempty"`
	MarketLastUpdate    string   `json:"market_last_update,omitempty"`
	Market              string   `json:"market"`
	Outcome             string   `json:"outcome"`
	Description         string   `json:"description"`
	Point               *float64 `json:"point"`
	PriceAmerican       *float64 `json:"price_american"`
	ImpliedProb         *float64 `json:"implied_prob"`
	NoVigProb           *float64 `json:"no_vig_prob"`
}

// WriteJSON writes rows as a JSON array document at path. An empty row
// sequence produces an empty array document.
func WriteJSON(path string, rows []props.Row) error {
	out := make([]jsonRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, jsonRow{
			EventID:             r.EventID,
			HomeTeam:            r.HomeTeam,
			AwayTeam:            r.AwayTeam,
			CommenceTime:        r.CommenceTime,
			Bookmaker:           r.Bookmaker,
			BookmakerTitle:      r.BookmakerTitle,
			BookmakerLastUpdate: r.BookmakerLastUpdate,
			MarketLastUpdate:    r.MarketLastUpdate,
			Market:              r.Market,
			Outcome:             r.Outcome,
			Description:         r.Description,
			Point:               r.Point,
			PriceAmerican:       r.PriceAmerican,
			ImpliedProb:         r.ImpliedProb,
			NoVigProb:           r.NoVigProb,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal rows: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}
