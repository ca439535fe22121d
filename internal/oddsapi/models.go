package oddsapi

import "time"

// Event represents a sporting event from the events endpoint. When fetched
// via the per-event odds endpoint it also carries bookmaker odds.
type Event struct {
	ID           string      `json:"id"`
	SportKey     string      `json:"sport_key"`
	SportTitle   string      `json:"sport_title"`
	HomeTeam     string      `json:"home_team"`
	AwayTeam     string      `json:"away_team"`
	CommenceTime string      `json:"commence_time"` // ISO-8601
	Bookmakers   []Bookmaker `json:"bookmakers,omitempty"`
}

// Bookmaker is one book's offering for an event.
type Bookmaker struct {
	Key        string   `json:"key"`
	Title      string   `json:"title"`
	LastUpdate string   `json:"last_update,omitempty"`
	Markets    []Market `json:"markets"`
}

// Market is a single market type (e.g. player_points) offered by a bookmaker.
type Market struct {
	Key        string    `json:"key"`
	LastUpdate string    `json:"last_update,omitempty"`
	Outcomes   []Outcome `json:"outcomes"`
}

// Outcome is one priced side of a market. Point and Price are pointers so
// that an absent value is distinguishable from zero.
type Outcome struct {
	// Name is the side label, "Over" or "Under" for totals-style props
	Name string `json:"name"`

	// Description identifies the subject, typically a player name
	Description string `json:"description,omitempty"`

	// Point is the numeric line, e.g. 25.5
	Point *float64 `json:"point,omitempty"`

	// Price is the American odds price
	Price *float64 `json:"price,omitempty"`
}

// RateLimits carries the API quota headers returned with every response.
type RateLimits struct {
	RequestsRemaining int
	RequestsUsed      int
	FetchedAt         time.Time
}
