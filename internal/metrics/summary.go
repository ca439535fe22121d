// Package metrics tracks per-run counters for the pipeline.
package metrics

import "log/slog"

// Summary accumulates counts over a single run. The pipeline is fully
// sequential, so no locking is needed.
type Summary struct {
	EventsListed      int
	EventsFetched     int
	EventsFailed      int
	RowsFlattened     int
	RowsKept          int
	PairsNormalized   int
	RowsUnpaired      int
	RequestsRemaining int
}

// RecordEventSuccess counts one fetched event and its flattened rows.
func (s *Summary) RecordEventSuccess(rows int) {
	s.EventsFetched++
	s.RowsFlattened += rows
}

// RecordEventFailure counts one skipped event.
func (s *Summary) RecordEventFailure() {
	s.EventsFailed++
}

// RecordNoVig tallies how many rows received a no-vig probability (two per
// pair) and how many were left unset.
func (s *Summary) RecordNoVig(withNoVig, withoutNoVig int) {
	s.PairsNormalized = withNoVig / 2
	s.RowsUnpaired = withoutNoVig
}

// Log emits the run summary as a single structured line.
func (s *Summary) Log() {
	slog.Info("run_summary",
		"events_listed", s.EventsListed,
		"events_fetched", s.EventsFetched,
		"events_failed", s.EventsFailed,
		"rows_flattened", s.RowsFlattened,
		"rows_kept", s.RowsKept,
		"pairs_normalized", s.PairsNormalized,
		"rows_unpaired", s.RowsUnpaired,
		"api_requests_remaining", s.RequestsRemaining,
	)
}
