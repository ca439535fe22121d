// Package ui provides the terminal viewer for cleaned props files.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Loader reads the current header and records to display.
type Loader func() (header []string, records [][]string, err error)

// App is the props viewer application.
type App struct {
	app    *tview.Application
	view   *PropsTableView
	status *tview.TextView
	load   Loader
}

// NewApp creates a viewer backed by the given loader.
func NewApp(load Loader) *App {
	app := &App{
		app:    tview.NewApplication(),
		view:   NewPropsTableView(),
		status: tview.NewTextView().SetDynamicColors(true),
		load:   load,
	}

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(app.view.Widget(), 0, 1, true).
		AddItem(app.status, 1, 0, false)

	app.app.SetRoot(layout, true)
	app.setupKeyboard()

	return app
}

// setupKeyboard configures keyboard shortcuts.
func (a *App) setupKeyboard() {
	a.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlC:
			a.Stop()
			return nil
		case tcell.KeyRune:
			switch event.Rune() {
			case 'q', 'Q':
				a.Stop()
				return nil
			case 'r', 'R':
				a.refresh()
				return nil
			}
		}
		return event
	})
}

// Run loads the file once and starts the viewer (blocking).
func (a *App) Run() error {
	a.refresh()

	if err := a.app.Run(); err != nil {
		return fmt.Errorf("app run failed: %w", err)
	}

	return nil
}

// Stop gracefully stops the application.
func (a *App) Stop() {
	a.app.Stop()
}

// refresh reloads the file and redraws the table.
func (a *App) refresh() {
	header, records, err := a.load()
	if err != nil {
		a.status.SetText(fmt.Sprintf("[red]load failed: %v[-]  (r to retry, q to quit)", err))
		return
	}

	a.view.Update(header, records)
	a.status.SetText(fmt.Sprintf("%d rows  (r to reload, q to quit)", len(records)))
}
