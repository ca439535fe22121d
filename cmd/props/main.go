// Package main is the entry point for the propsline player-prop pipeline.
package main

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/propsline/engine/internal/config"
	"github.com/propsline/engine/internal/metrics"
	"github.com/propsline/engine/internal/oddsapi"
	"github.com/propsline/engine/internal/output"
	"github.com/propsline/engine/internal/props"
)

func main() {
	os.Exit(run())
}

// eventResult is the outcome of one per-event fetch: rows on success, the
// reason on failure. Failures never cross this boundary as anything else.
type eventResult struct {
	EventID string
	Rows    []props.Row
	Err     error
}

func run() int {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		return 1
	}

	// Initialize structured logger
	logger := setupLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	slog.Info("propsline starting",
		"version", "1.0.0",
	)

	slog.Info("config_loaded",
		"base_url", cfg.BaseURL,
		"sport", cfg.Sport,
		"regions", cfg.Regions,
		"bookmaker", cfg.Bookmaker,
		"markets", strings.Join(cfg.Markets, ","),
		"request_timeout", cfg.RequestTimeout,
		"output_dir", cfg.OutputDir,
		"api_key", cfg.MaskedAPIKey(),
	)

	ctx := context.Background()
	client := oddsapi.NewClient(cfg.BaseURL, cfg.APIKey, cfg.Sport, cfg.Regions, cfg.Markets, cfg.RequestTimeout)

	// Top-level events listing: fatal when unreachable
	slog.Info("fetching_events", "sport", cfg.Sport)
	events, err := client.Events(ctx)
	if err != nil {
		slog.Error("failed to fetch events", "error", err)
		return 1
	}
	slog.Info("events_fetched", "count", len(events))

	summary := &metrics.Summary{EventsListed: len(events)}

	// Per-event fetches are sequential; a failing event is logged and
	// contributes zero rows.
	var allRows []props.Row
	for _, event := range events {
		if event.ID == "" {
			continue
		}

		result := fetchEventRows(ctx, client, event.ID)
		if result.Err != nil {
			slog.Warn("skipping_event", "event_id", result.EventID, "error", result.Err)
			summary.RecordEventFailure()
			continue
		}

		allRows = append(allRows, result.Rows...)
		summary.RecordEventSuccess(len(result.Rows))
		slog.Info("event_processed", "event_id", result.EventID, "rows", len(result.Rows))
	}

	// Target bookmaker, allowed markets, Over/Under sides only
	kept := props.Filter(allRows, cfg.Bookmaker, cfg.Markets)
	summary.RowsKept = len(kept)

	// No-vig normalization per Over/Under pair
	props.AddNoVig(kept)
	summary.RecordNoVig(countNoVig(kept))

	if err := writeOutputs(cfg, kept); err != nil {
		slog.Error("failed to write outputs", "error", err)
		return 1
	}

	summary.RequestsRemaining = client.RateLimits().RequestsRemaining
	summary.Log()

	return 0
}

// fetchEventRows fetches one event's odds and flattens them into rows.
func fetchEventRows(ctx context.Context, client *oddsapi.Client, eventID string) eventResult {
	event, err := client.EventOdds(ctx, eventID)
	if err != nil {
		return eventResult{EventID: eventID, Err: err}
	}

	return eventResult{
		EventID: eventID,
		Rows:    props.Flatten([]oddsapi.Event{event}),
	}
}

// writeOutputs regenerates the dated CSV/JSON files and the stable CSV.
func writeOutputs(cfg *config.Config, rows []props.Row) error {
	now := time.Now()

	datedCSV := output.InDir(cfg.OutputDir, output.DatedCSVName(cfg.Bookmaker, cfg.Sport, now))
	if err := output.WriteCSV(datedCSV, rows); err != nil {
		return err
	}
	slog.Info("wrote_csv", "path", datedCSV, "rows", len(rows))

	datedJSON := output.InDir(cfg.OutputDir, output.DatedJSONName(cfg.Bookmaker, cfg.Sport, now))
	if err := output.WriteJSON(datedJSON, rows); err != nil {
		return err
	}
	slog.Info("wrote_json", "path", datedJSON, "rows", len(rows))

	stableCSV := output.InDir(cfg.OutputDir, output.StableCSVName)
	if err := output.WriteCSV(stableCSV, rows); err != nil {
		return err
	}
	slog.Info("wrote_csv", "path", stableCSV, "rows", len(rows))

	return nil
}

// countNoVig splits rows into those with and without a no-vig probability.
func countNoVig(rows []props.Row) (with, without int) {
	for _, r := range rows {
		if r.NoVigProb != nil {
			with++
		} else {
			without++
		}
	}
	return with, without
}

// setupLogger creates a structured logger with the specified level.
// Format: 2025-01-04 14:32:01 [INFO]  message key=value
func setupLogger(levelStr string) *slog.Logger {
	var level slog.Level
	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.Format("2006-01-02 15:04:05"))
				}
			}
			return a
		},
	}

	handler := slog.NewTextHandler(os.Stdout, opts)
	return slog.New(handler)
}
