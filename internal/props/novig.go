package props

import "github.com/propsline/engine/internal/oddsmath"

// AddNoVig computes the no-vig probability for every complete Over/Under
// pair, in place. Rows are grouped by pair key; a group qualifies only when
// it holds exactly two Over/Under rows whose implied probabilities sum to a
// positive total. Each qualifying row gets its own implied probability
// divided by the pair sum, rounded to 6 decimal places, so the pair sums to
// 1.0. Every other group is left with NoVigProb unset. No other field is
// touched.
func AddNoVig(rows []Row) {
	groups := make(map[PairKey][]int)
	for i, r := range rows {
		key := r.Key()
		groups[key] = append(groups[key], i)
	}

	for _, indices := range groups {
		// Defensive: the input should already be Over/Under only
		var pair []int
		for _, i := range indices {
			if isOverUnder(rows[i].Outcome) {
				pair = append(pair, i)
			}
		}

		if len(pair) != 2 {
			continue
		}

		// Probabilities come from the price unrounded; a missing or
		// unparseable price counts as 0 toward the pair sum.
		implied := make([]float64, len(pair))
		total := 0.0
		for j, i := range pair {
			implied[j] = rawImpliedProb(rows[i].PriceAmerican)
			total += implied[j]
		}

		if total <= 0 {
			continue
		}

		for j, i := range pair {
			noVig := oddsmath.Round6(implied[j] / total)
			rows[i].NoVigProb = &noVig
		}
	}
}

// rawImpliedProb converts a price to its unrounded implied probability,
// 0 when there is no usable price.
func rawImpliedProb(price *float64) float64 {
	if price == nil {
		return 0
	}

	p, err := oddsmath.AmericanToImpliedProbability(*price)
	if err != nil {
		return 0
	}

	return p
}
