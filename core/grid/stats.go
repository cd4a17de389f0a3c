package grid

import "gonum.org/v1/gonum/stat"

// DayUtilization summarizes how loaded one canonical day is. Lunch rows are
// excluded from all figures.
type DayUtilization struct {
	Day       string
	MeanLoad  float64 // mean scheduled classes per slot
	PeakLoad  int     // most classes stacked in a single slot
	FreeSlots int     // slots with nothing scheduled
}

// Utilization computes a per-day load summary over the canonical grid,
// backing the admin dashboard's occupancy preview.
func Utilization(g *Grid) []DayUtilization {
	out := make([]DayUtilization, 0, len(Days))
	for _, day := range Days {
		u := DayUtilization{Day: day}
		loads := make([]float64, 0, len(g.Times))
		for _, tr := range g.Times {
			cell := g.Cell(day, tr)
			if cell.Kind == CellLunch {
				continue
			}
			n := len(cell.Classes)
			loads = append(loads, float64(n))
			if n > u.PeakLoad {
				u.PeakLoad = n
			}
			if n == 0 {
				u.FreeSlots++
			}
		}
		if len(loads) > 0 {
			u.MeanLoad = stat.Mean(loads, nil)
		}
		out = append(out, u)
	}
	return out
}
