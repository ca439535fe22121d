package props

import (
	"github.com/propsline/engine/internal/oddsapi"
	"github.com/propsline/engine/internal/oddsmath"
)

// Flatten converts the nested event→bookmaker→market→outcome tree into one
// Row per outcome, preserving traversal order. Empty branches contribute
// zero rows. Each row's implied probability is computed here; a missing or
// zero price leaves it unset.
func Flatten(events []oddsapi.Event) []Row {
	var rows []Row

	for _, event := range events {
		if event.ID == "" {
			continue
		}

		for _, bookmaker := range event.Bookmakers {
			for _, market := range bookmaker.Markets {
				for _, outcome := range market.Outcomes {
					rows = append(rows, Row{
						EventID:             event.ID,
						HomeTeam:            event.HomeTeam,
						AwayTeam:            event.AwayTeam,
						CommenceTime:        event.CommenceTime,
						Bookmaker:           bookmaker.Key,
						BookmakerTitle:      bookmaker.Title,
						BookmakerLastUpdate: bookmaker.LastUpdate,
						MarketLastUpdate:    market.LastUpdate,
						Market:              market.Key,
						Outcome:             outcome.Name,
						Description:         outcome.Description,
						Point:               outcome.Point,
						PriceAmerican:       outcome.Price,
						ImpliedProb:         impliedProb(outcome.Price),
					})
				}
			}
		}
	}

	return rows
}

// impliedProb converts a price to a rounded implied probability, nil when
// the price is absent or the degenerate 0.
func impliedProb(price *float64) *float64 {
	if price == nil {
		return nil
	}

	p, err := oddsmath.AmericanToImpliedProbability(*price)
	if err != nil {
		return nil
	}

	rounded := oddsmath.Round6(p)
	return &rounded
}
