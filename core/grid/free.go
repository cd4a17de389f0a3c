package grid

import (
	"sort"

	"github.com/archit-tiwari-26/timetable3.0/core/model"
)

// DayFree lists the contiguous free ranges of one canonical day. An empty
// Ranges means the day has no free slots.
type DayFree struct {
	Day    string
	Ranges []TimeRange
}

// DeriveFree regroups a server-shaped "free slots" timetable onto the
// canonical day axis. The free/occupied partition is trusted from the
// service; nothing is recomputed from occupancy here, and no lunch row is
// injected.
func DeriveFree(tt model.Timetable) []DayFree {
	byDay := make(map[string][]TimeRange)
	for _, day := range tt {
		for _, ts := range day.Timeslots {
			byDay[day.Day] = append(byDay[day.Day], TimeRange{Start: ts.StartTime, End: ts.EndTime})
		}
	}
	out := make([]DayFree, 0, len(Days))
	for _, d := range Days {
		ranges := byDay[d]
		sort.Slice(ranges, func(i, j int) bool {
			if ranges[i].Start != ranges[j].Start {
				return ranges[i].Start < ranges[j].Start
			}
			return ranges[i].End < ranges[j].End
		})
		out = append(out, DayFree{Day: d, Ranges: ranges})
	}
	return out
}
