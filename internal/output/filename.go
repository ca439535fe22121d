package output

import (
	"fmt"
	"path/filepath"
	"time"
)

// StableCSVName is the fixed file name a downstream viewer reads; it is
// overwritten with the latest run's rows.
const StableCSVName = "cleaned_props.csv"

// DatedCSVName builds the date-stamped CSV name for a run, using the UTC
// date: fanduel_player_props_basketball_nba_20250115.csv
func DatedCSVName(bookmaker, sport string, t time.Time) string {
	return fmt.Sprintf("%s_player_props_%s_%s.csv", bookmaker, sport, t.UTC().Format("20060102"))
}

// DatedJSONName builds the date-stamped JSON name for a run.
func DatedJSONName(bookmaker, sport string, t time.Time) string {
	return fmt.Sprintf("%s_player_props_%s_%s.json", bookmaker, sport, t.UTC().Format("20060102"))
}

// InDir joins a file name onto the output directory.
func InDir(dir, name string) string {
	return filepath.Join(dir, name)
}
