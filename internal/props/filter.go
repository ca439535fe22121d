package props

import "strings"

// Filter returns only the rows for the target bookmaker (case-insensitive),
// with a market in the allow-list, and an Over or Under side. Relative order
// is preserved; everything else is dropped silently.
func Filter(rows []Row, bookmaker string, markets []string) []Row {
	wanted := make(map[string]bool, len(markets))
	for _, m := range markets {
		wanted[m] = true
	}

	target := strings.ToLower(bookmaker)

	var out []Row
	for _, r := range rows {
		if strings.ToLower(r.Bookmaker) != target {
			continue
		}
		if !wanted[r.Market] {
			continue
		}
		if !isOverUnder(r.Outcome) {
			continue
		}
		out = append(out, r)
	}

	return out
}

// isOverUnder reports whether the side label is Over or Under, any case.
func isOverUnder(outcome string) bool {
	switch strings.ToLower(outcome) {
	case "over", "under":
		return true
	}
	return false
}
