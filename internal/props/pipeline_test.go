package props

import (
	"math"
	"testing"

	"github.com/propsline/engine/internal/oddsapi"
)

// Exercises the full transform over a realistic event: flatten, filter to
// one bookmaker, then per-pair no-vig normalization.
func TestFlattenFilterNoVig(t *testing.T) {
	event := oddsapi.Event{
		ID:           "ev1",
		HomeTeam:     "Boston Celtics",
		AwayTeam:     "Miami Heat",
		CommenceTime: "2025-01-15T00:10:00Z",
		Bookmakers: []oddsapi.Bookmaker{
			{
				Key:   "fanduel",
				Title: "FanDuel",
				Markets: []oddsapi.Market{
					{
						Key: "player_points",
						Outcomes: []oddsapi.Outcome{
							{Name: "Over", Description: "Jayson Tatum", Point: f64(27.5), Price: f64(-150)},
							{Name: "Under", Description: "Jayson Tatum", Point: f64(27.5), Price: f64(130)},
							// lone Over with no matching Under
							{Name: "Over", Description: "Jaylen Brown", Point: f64(24.5), Price: f64(-110)},
						},
					},
					{
						// market outside the allow-list
						Key: "h2h",
						Outcomes: []oddsapi.Outcome{
							{Name: "Boston Celtics", Price: f64(-180)},
							{Name: "Miami Heat", Price: f64(155)},
						},
					},
				},
			},
			{
				// entire bookmaker should be filtered out
				Key:   "draftkings",
				Title: "DraftKings",
				Markets: []oddsapi.Market{
					{
						Key: "player_points",
						Outcomes: []oddsapi.Outcome{
							{Name: "Over", Description: "Jayson Tatum", Point: f64(27.5), Price: f64(-145)},
							{Name: "Under", Description: "Jayson Tatum", Point: f64(27.5), Price: f64(125)},
						},
					},
				},
			},
		},
	}

	rows := Flatten([]oddsapi.Event{event})
	if len(rows) != 7 {
		t.Fatalf("expected 7 flattened rows, got %d", len(rows))
	}

	kept := Filter(rows, "fanduel", []string{"player_points"})
	if len(kept) != 3 {
		t.Fatalf("expected 3 filtered rows, got %d", len(kept))
	}
	for _, r := range kept {
		if r.Bookmaker != "fanduel" || r.Market != "player_points" {
			t.Errorf("unexpected row after filter: %+v", r)
		}
	}

	AddNoVig(kept)

	var tatumOver, tatumUnder, brownOver *Row
	for i := range kept {
		switch {
		case kept[i].Description == "Jayson Tatum" && kept[i].Outcome == "Over":
			tatumOver = &kept[i]
		case kept[i].Description == "Jayson Tatum" && kept[i].Outcome == "Under":
			tatumUnder = &kept[i]
		case kept[i].Description == "Jaylen Brown":
			brownOver = &kept[i]
		}
	}

	if tatumOver == nil || tatumUnder == nil || brownOver == nil {
		t.Fatal("missing expected rows after pipeline")
	}

	if tatumOver.NoVigProb == nil || math.Abs(*tatumOver.NoVigProb-0.579832) > 1e-5 {
		t.Errorf("Tatum over no-vig = %v, want ~0.579832", tatumOver.NoVigProb)
	}
	if tatumUnder.NoVigProb == nil || math.Abs(*tatumUnder.NoVigProb-0.420168) > 1e-5 {
		t.Errorf("Tatum under no-vig = %v, want ~0.420168", tatumUnder.NoVigProb)
	}
	if sum := *tatumOver.NoVigProb + *tatumUnder.NoVigProb; math.Abs(sum-1.0) > 1e-5 {
		t.Errorf("pair sums to %f, want 1.0", sum)
	}

	// The unpaired row keeps its implied probability but no no-vig value.
	if brownOver.NoVigProb != nil {
		t.Errorf("unpaired row got no-vig %v, want unset", *brownOver.NoVigProb)
	}
	if brownOver.ImpliedProb == nil {
		t.Error("unpaired row lost its implied probability")
	}
}
