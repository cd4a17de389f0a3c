package grid

import (
	"fmt"
	"sort"

	"github.com/archit-tiwari-26/timetable3.0/core/model"
)

// Days is the canonical day axis. Rendering always uses exactly these five
// columns in this order: source days outside the list are dropped, and a
// canonical day missing from the source renders fully free.
var Days = [5]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// Lunch is the fixed display-convention lunch range. It is always present
// in the time axis and always rendered as a break, whatever the source data
// holds at that range.
var Lunch = TimeRange{Start: 12, End: 13}

// TimeRange is a (start, end) pair in whole hours.
type TimeRange struct {
	Start int `json:"start_time"`
	End   int `json:"end_time"`
}

func (r TimeRange) String() string {
	return fmt.Sprintf("%d:00 - %d:00", r.Start, r.End)
}

// CellKind classifies how a grid cell renders.
type CellKind int

const (
	CellFree CellKind = iota
	CellLunch
	CellOccupied
)

// Cell is the render state of one (day, time range) coordinate.
type Cell struct {
	Kind    CellKind
	Classes []model.ScheduledClass
}

type cellKey struct {
	day string
	tr  TimeRange
}

// Grid is the canonical day x time matrix derived from one timetable. It is
// rebuilt from scratch on every render and never cached, so partial
// timetable updates cannot leave a stale view behind.
type Grid struct {
	Times []TimeRange
	slots map[cellKey]model.TimeSlot
}

// Normalize builds the canonical grid for a timetable. The input may be
// empty or miss any number of canonical days; the result is always total
// over Days x Times.
func Normalize(tt model.Timetable) *Grid {
	set := map[TimeRange]struct{}{Lunch: {}}
	for _, day := range tt {
		for _, ts := range day.Timeslots {
			set[TimeRange{Start: ts.StartTime, End: ts.EndTime}] = struct{}{}
		}
	}
	times := make([]TimeRange, 0, len(set))
	for r := range set {
		times = append(times, r)
	}
	// Row order must be deterministic: it drives every render and the
	// exported document.
	sort.Slice(times, func(i, j int) bool {
		if times[i].Start != times[j].Start {
			return times[i].Start < times[j].Start
		}
		return times[i].End < times[j].End
	})

	slots := make(map[cellKey]model.TimeSlot)
	for _, day := range tt {
		if !canonicalDay(day.Day) {
			continue
		}
		for _, ts := range day.Timeslots {
			key := cellKey{day: day.Day, tr: TimeRange{Start: ts.StartTime, End: ts.EndTime}}
			slots[key] = ts
		}
	}
	return &Grid{Times: times, slots: slots}
}

// Cell returns the render state for a coordinate. Every coordinate of the
// axes yields a defined state: lunch, free, or occupied. Lunch overrides
// any classes the source happens to place at that range. Occupied cells
// keep their classes in source order without deduplication; the service is
// trusted to have resolved conflicts already.
func (g *Grid) Cell(day string, r TimeRange) Cell {
	if r == Lunch {
		return Cell{Kind: CellLunch}
	}
	ts, ok := g.slots[cellKey{day: day, tr: r}]
	if !ok || len(ts.ScheduledClasses) == 0 {
		return Cell{Kind: CellFree}
	}
	return Cell{Kind: CellOccupied, Classes: ts.ScheduledClasses}
}

func canonicalDay(day string) bool {
	for _, d := range Days {
		if d == day {
			return true
		}
	}
	return false
}
