// Package props flattens fetched odds into rows and computes per-pair
// no-vig probabilities.
package props

// Row is one fully denormalized outcome record: event, bookmaker and market
// fields joined onto the outcome, plus the two computed probability fields.
// Pointer fields distinguish "absent" from zero.
type Row struct {
	// EventID is the upstream event identifier
	EventID string

	// HomeTeam and AwayTeam name the matchup
	HomeTeam string
	AwayTeam string

	// CommenceTime is the ISO-8601 start timestamp
	CommenceTime string

	// Bookmaker is the book key (e.g. "fanduel"), BookmakerTitle its display name
	Bookmaker      string
	BookmakerTitle string

	// BookmakerLastUpdate and MarketLastUpdate are upstream refresh timestamps
	BookmakerLastUpdate string
	MarketLastUpdate    string

	// Market is the market-type key (e.g. "player_points")
	Market string

	// Outcome is the side label, "Over" or "Under" for props in scope
	Outcome string

	// Description identifies the subject, typically a player name
	Description string

	// Point is the numeric line the side is priced around
	Point *float64

	// PriceAmerican is the American odds price
	PriceAmerican *float64

	// ImpliedProb is the raw probability from this price alone, 6 dp
	ImpliedProb *float64

	// NoVigProb is the probability normalized within the Over/Under pair, 6 dp.
	// Left nil when the pair is incomplete or cannot be normalized.
	NoVigProb *float64
}

// PairKey identifies the two rows that form one Over/Under market: same
// event, same market type, same subject, same line. Grouping any coarser
// would normalize unrelated players' prices against each other.
type PairKey struct {
	EventID     string
	Market      string
	Description string
	Point       float64
	HasPoint    bool
}

// Key builds the row's pair key.
func (r Row) Key() PairKey {
	k := PairKey{
		EventID:     r.EventID,
		Market:      r.Market,
		Description: r.Description,
	}
	if r.Point != nil {
		k.Point = *r.Point
		k.HasPoint = true
	}
	return k
}
