package ui

import (
	"fmt"

	"github.com/rivo/tview"
)

// PropsTableView displays the rows of a cleaned props CSV.
type PropsTableView struct {
	table *tview.Table
}

// NewPropsTableView creates an empty props table.
func NewPropsTableView() *PropsTableView {
	table := tview.NewTable().
		SetBorders(false).
		SetFixed(1, 0).
		SetSelectable(true, false)

	table.SetTitle(" Player Props ").SetBorder(true)

	return &PropsTableView{table: table}
}

// Widget returns the tview primitive.
func (v *PropsTableView) Widget() tview.Primitive {
	return v.table
}

// Update replaces the table contents with the given header and records.
func (v *PropsTableView) Update(header []string, records [][]string) {
	v.table.Clear()

	if len(header) == 0 {
		v.table.SetTitle(" Player Props (empty) ")
		return
	}

	for col, name := range header {
		cell := tview.NewTableCell(name).
			SetTextColor(tview.Styles.SecondaryTextColor).
			SetAlign(tview.AlignLeft).
			SetSelectable(false)
		v.table.SetCell(0, col, cell)
	}

	for i, record := range records {
		row := i + 1
		for col, text := range record {
			if text == "" {
				text = "-"
			}
			cell := tview.NewTableCell(truncate(text, 24)).
				SetAlign(tview.AlignLeft)
			v.table.SetCell(row, col, cell)
		}
	}

	v.table.SetTitle(fmt.Sprintf(" Player Props (%d) ", len(records)))
	v.table.ScrollToBeginning()
}

// truncate shortens long cell values for display.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
