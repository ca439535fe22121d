package props

import (
	"math"
	"testing"
)

func pairRow(eventID, market, description string, point float64, outcome string, price float64) Row {
	implied := impliedProb(&price)
	return Row{
		EventID:       eventID,
		Bookmaker:     "fanduel",
		Market:        market,
		Outcome:       outcome,
		Description:   description,
		Point:         &point,
		PriceAmerican: &price,
		ImpliedProb:   implied,
	}
}

func TestAddNoVigPair(t *testing.T) {
	rows := []Row{
		pairRow("ev1", "player_points", "Jayson Tatum", 27.5, "Over", -150),
		pairRow("ev1", "player_points", "Jayson Tatum", 27.5, "Under", 130),
	}

	AddNoVig(rows)

	// -150 → 0.6, +130 → 0.434783, sum 1.034783
	// no-vig: 0.579832 / 0.420168
	if rows[0].NoVigProb == nil || math.Abs(*rows[0].NoVigProb-0.579832) > 1e-5 {
		t.Errorf("over no-vig = %v, want ~0.579832", rows[0].NoVigProb)
	}
	if rows[1].NoVigProb == nil || math.Abs(*rows[1].NoVigProb-0.420168) > 1e-5 {
		t.Errorf("under no-vig = %v, want ~0.420168", rows[1].NoVigProb)
	}

	sum := *rows[0].NoVigProb + *rows[1].NoVigProb
	if math.Abs(sum-1.0) > 1e-5 {
		t.Errorf("pair no-vig probabilities sum to %f, want 1.0", sum)
	}
}

func TestAddNoVigIncompleteGroups(t *testing.T) {
	rows := []Row{
		// lone Over, no Under
		pairRow("ev1", "player_points", "Jayson Tatum", 27.5, "Over", -150),
		// three rows sharing one key
		pairRow("ev1", "player_assists", "Bam Adebayo", 4.5, "Over", -110),
		pairRow("ev1", "player_assists", "Bam Adebayo", 4.5, "Under", -110),
		pairRow("ev1", "player_assists", "Bam Adebayo", 4.5, "Over", -105),
	}

	AddNoVig(rows)

	for i, r := range rows {
		if r.NoVigProb != nil {
			t.Errorf("row %d in incomplete group got no-vig %v, want unset", i, *r.NoVigProb)
		}
	}
}

func TestAddNoVigZeroSum(t *testing.T) {
	rows := []Row{
		pairRow("ev1", "player_points", "Jayson Tatum", 27.5, "Over", -150),
		pairRow("ev1", "player_points", "Jayson Tatum", 27.5, "Under", 130),
	}
	// Both prices absent: implied probabilities count as 0, sum is 0
	rows[0].PriceAmerican = nil
	rows[1].PriceAmerican = nil

	AddNoVig(rows)

	if rows[0].NoVigProb != nil || rows[1].NoVigProb != nil {
		t.Error("zero-sum pair should leave no-vig unset on both rows")
	}
}

func TestAddNoVigOneSidedPrice(t *testing.T) {
	rows := []Row{
		pairRow("ev1", "player_points", "Jayson Tatum", 27.5, "Over", -150),
		pairRow("ev1", "player_points", "Jayson Tatum", 27.5, "Under", 130),
	}
	// Missing Under price counts as 0 toward the sum, so Over takes the
	// whole probability mass.
	rows[1].PriceAmerican = nil

	AddNoVig(rows)

	if rows[0].NoVigProb == nil || *rows[0].NoVigProb != 1.0 {
		t.Errorf("over no-vig = %v, want 1.0", rows[0].NoVigProb)
	}
	if rows[1].NoVigProb == nil || *rows[1].NoVigProb != 0.0 {
		t.Errorf("under no-vig = %v, want 0.0", rows[1].NoVigProb)
	}
}

func TestAddNoVigDoesNotMixSubjects(t *testing.T) {
	// Two different players, each with only an Over: neither forms a pair,
	// even though together they would count two Over/Under rows.
	rows := []Row{
		pairRow("ev1", "player_points", "Jayson Tatum", 27.5, "Over", -150),
		pairRow("ev1", "player_points", "Jaylen Brown", 24.5, "Over", 130),
	}

	AddNoVig(rows)

	if rows[0].NoVigProb != nil || rows[1].NoVigProb != nil {
		t.Error("rows from different subjects must not be normalized together")
	}

	// Same player, different lines: still separate groups.
	rows = []Row{
		pairRow("ev1", "player_points", "Jayson Tatum", 27.5, "Over", -150),
		pairRow("ev1", "player_points", "Jayson Tatum", 28.5, "Under", 130),
	}

	AddNoVig(rows)

	if rows[0].NoVigProb != nil || rows[1].NoVigProb != nil {
		t.Error("rows with different points must not be normalized together")
	}
}

func TestAddNoVigMultiplePairs(t *testing.T) {
	rows := []Row{
		pairRow("ev1", "player_points", "Jayson Tatum", 27.5, "Over", -110),
		pairRow("ev1", "player_points", "Jayson Tatum", 27.5, "Under", -110),
		pairRow("ev2", "player_threes", "Stephen Curry", 4.5, "Over", -200),
		pairRow("ev2", "player_threes", "Stephen Curry", 4.5, "Under", 170),
	}

	AddNoVig(rows)

	// Symmetric -110/-110 → 0.5 each
	if rows[0].NoVigProb == nil || *rows[0].NoVigProb != 0.5 {
		t.Errorf("symmetric pair no-vig = %v, want 0.5", rows[0].NoVigProb)
	}

	for i := 2; i < 4; i++ {
		if rows[i].NoVigProb == nil {
			t.Fatalf("row %d missing no-vig", i)
		}
	}
	sum := *rows[2].NoVigProb + *rows[3].NoVigProb
	if math.Abs(sum-1.0) > 1e-5 {
		t.Errorf("second pair sums to %f, want 1.0", sum)
	}
}

func TestAddNoVigLeavesOtherFieldsAlone(t *testing.T) {
	rows := []Row{
		pairRow("ev1", "player_points", "Jayson Tatum", 27.5, "Over", -150),
		pairRow("ev1", "player_points", "Jayson Tatum", 27.5, "Under", 130),
	}
	before := rows[0]

	AddNoVig(rows)

	after := rows[0]
	after.NoVigProb = nil
	before.NoVigProb = nil
	if *after.ImpliedProb != *before.ImpliedProb || after.Description != before.Description {
		t.Error("AddNoVig altered fields other than NoVigProb")
	}
}
