// Package main is the entry point for the propsline terminal viewer. It
// renders the stable cleaned props CSV produced by the pipeline.
package main

import (
	"log/slog"
	"os"

	"github.com/propsline/engine/internal/output"
	"github.com/propsline/engine/internal/ui"
)

func main() {
	path := os.Getenv("CSV_PATH")
	if path == "" {
		path = output.StableCSVName
	}

	app := ui.NewApp(func() ([]string, [][]string, error) {
		return output.ReadCSV(path)
	})

	if err := app.Run(); err != nil {
		slog.Error("viewer_failed", "path", path, "error", err)
		os.Exit(1)
	}
}
