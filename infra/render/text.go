package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/archit-tiwari-26/timetable3.0/core/grid"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	lunchStyle  = lipgloss.NewStyle().Padding(0, 1).Faint(true)
)

// Text renders the canonical grid as a terminal table.
func Text(g *grid.Grid) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(append([]string{"Time"}, grid.Days[:]...)...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, tr := range g.Times {
		row := []string{tr.String()}
		for _, day := range grid.Days {
			row = append(row, strings.Join(CellLines(g.Cell(day, tr)), "\n"))
		}
		t.Row(row...)
	}
	return t.Render()
}

// FreeText renders a per-day free-slot listing.
func FreeText(free []grid.DayFree) string {
	var b strings.Builder
	for _, day := range free {
		b.WriteString(headerStyle.Render(day.Day))
		b.WriteByte('\n')
		if len(day.Ranges) == 0 {
			b.WriteString(lunchStyle.Render("No free slots"))
			b.WriteByte('\n')
			continue
		}
		for _, r := range day.Ranges {
			fmt.Fprintf(&b, "  %s\n", r)
		}
	}
	return b.String()
}

// CellLines converts one cell into display lines, shared by the terminal
// and raster renderers. Occupied cells keep source order.
func CellLines(cell grid.Cell) []string {
	switch cell.Kind {
	case grid.CellLunch:
		return []string{"Lunch Break"}
	case grid.CellFree:
		return []string{"Free"}
	default:
		lines := make([]string, 0, len(cell.Classes)*2)
		for _, sc := range cell.Classes {
			lines = append(lines, sc.EventName)
			detail := sc.RoomName + " | " + sc.TeacherName
			if len(sc.Batches) > 0 {
				detail += " | " + strings.Join(sc.Batches, "+")
			}
			lines = append(lines, detail)
		}
		return lines
	}
}
