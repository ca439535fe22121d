// Package oddsmath converts American odds prices into probabilities.
package oddsmath

import (
	"fmt"
	"math"
)

// AmericanToImpliedProbability converts an American odds price to its raw
// implied probability, bookmaker margin included.
// American +150 → 0.40
// American -150 → 0.60
func AmericanToImpliedProbability(american float64) (float64, error) {
	if american == 0 {
		return 0, fmt.Errorf("invalid American odds: price of 0 means no price")
	}

	if american > 0 {
		// Positive odds: 100 / (american + 100)
		return 100.0 / (american + 100.0), nil
	}

	// Negative odds: -american / (-american + 100)
	return -american / (-american + 100.0), nil
}

// Round6 rounds a probability to 6 decimal places for output.
func Round6(p float64) float64 {
	return math.Round(p*1e6) / 1e6
}
