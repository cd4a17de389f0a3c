package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strings"

	"github.com/archit-tiwari-26/timetable3.0/core/grid"
	"github.com/archit-tiwari-26/timetable3.0/infra/render"
)

type gridRow struct {
	StartTime int      `json:"start_time"`
	EndTime   int      `json:"end_time"`
	Cells     []string `json:"cells"`
}

type gridDoc struct {
	Days []string  `json:"days"`
	Rows []gridRow `json:"rows"`
}

// WriteJSON writes the canonical grid to w in JSON form, one row per time
// range with cells aligned to the day axis.
func WriteJSON(w io.Writer, g *grid.Grid) error {
	doc := gridDoc{Days: grid.Days[:]}
	for _, tr := range g.Times {
		row := gridRow{StartTime: tr.Start, EndTime: tr.End}
		for _, day := range grid.Days {
			row.Cells = append(row.Cells, cellText(g.Cell(day, tr)))
		}
		doc.Rows = append(doc.Rows, row)
	}
	return json.NewEncoder(w).Encode(doc)
}

// WriteCSV writes the canonical grid to w with a Time column followed by
// the five day columns.
func WriteCSV(w io.Writer, g *grid.Grid) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{"Time"}, grid.Days[:]...)); err != nil {
		return err
	}
	for _, tr := range g.Times {
		rec := []string{tr.String()}
		for _, day := range grid.Days {
			rec = append(rec, cellText(g.Cell(day, tr)))
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func cellText(cell grid.Cell) string {
	return strings.Join(render.CellLines(cell), "; ")
}
