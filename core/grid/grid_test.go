package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archit-tiwari-26/timetable3.0/core/model"
)

func TestNormalizeEmptyTimetable(t *testing.T) {
	g := Normalize(model.Timetable{})
	require.Len(t, g.Times, 1)
	assert.Equal(t, Lunch, g.Times[0])
	for _, day := range Days {
		assert.Equal(t, CellLunch, g.Cell(day, Lunch).Kind)
	}
}

func TestNormalizeSingleFreeSlot(t *testing.T) {
	tt := model.Timetable{
		{Day: "Monday", Timeslots: []model.TimeSlot{
			{StartTime: 9, EndTime: 10, ScheduledClasses: nil},
		}},
	}
	g := Normalize(tt)

	require.Equal(t, []TimeRange{{Start: 9, End: 10}, {Start: 12, End: 13}}, g.Times)
	assert.Equal(t, CellFree, g.Cell("Monday", TimeRange{Start: 9, End: 10}).Kind)
	assert.Equal(t, CellLunch, g.Cell("Monday", Lunch).Kind)
	for _, day := range []string{"Tuesday", "Wednesday", "Thursday", "Friday"} {
		assert.Equal(t, CellFree, g.Cell(day, TimeRange{Start: 9, End: 10}).Kind, day)
	}
}

func TestNormalizeTimeAxisOrdering(t *testing.T) {
	tt := model.Timetable{
		{Day: "Monday", Timeslots: []model.TimeSlot{
			{StartTime: 10, EndTime: 12},
			{StartTime: 8, EndTime: 10},
		}},
		{Day: "Friday", Timeslots: []model.TimeSlot{
			{StartTime: 8, EndTime: 9},
		}},
	}
	g := Normalize(tt)
	want := []TimeRange{
		{Start: 8, End: 9},
		{Start: 8, End: 10},
		{Start: 10, End: 12},
		{Start: 12, End: 13},
	}
	assert.Equal(t, want, g.Times)
}

func TestNormalizeLunchOverridesContent(t *testing.T) {
	tt := model.Timetable{
		{Day: "Wednesday", Timeslots: []model.TimeSlot{
			{StartTime: 12, EndTime: 13, ScheduledClasses: []model.ScheduledClass{
				{EventName: "Sneaky Lecture", RoomName: "M1", TeacherName: "Dr. A"},
			}},
		}},
	}
	g := Normalize(tt)
	cell := g.Cell("Wednesday", Lunch)
	assert.Equal(t, CellLunch, cell.Kind)
	assert.Empty(t, cell.Classes)
}

func TestNormalizeDropsNonCanonicalDays(t *testing.T) {
	tt := model.Timetable{
		{Day: "Saturday", Timeslots: []model.TimeSlot{
			{StartTime: 9, EndTime: 10, ScheduledClasses: []model.ScheduledClass{
				{EventName: "Weekend Lab"},
			}},
		}},
	}
	g := Normalize(tt)
	// The range still shapes the time axis, but no canonical cell is occupied.
	require.Contains(t, g.Times, TimeRange{Start: 9, End: 10})
	for _, day := range Days {
		assert.Equal(t, CellFree, g.Cell(day, TimeRange{Start: 9, End: 10}).Kind)
	}
}

func TestNormalizeStackedClassesKeepInputOrder(t *testing.T) {
	classes := []model.ScheduledClass{
		{EventName: "Course A Lecture 1", RoomName: "M1", TeacherName: "Dr. A", Batches: []string{"F1", "F2"}},
		{EventName: "Course A Lecture 1", RoomName: "M1", TeacherName: "Dr. A", Batches: []string{"F3", "F4"}},
		{EventName: "Course B Tutorial", RoomName: "T2", TeacherName: "Dr. B", Batches: []string{"F1"}},
	}
	tt := model.Timetable{
		{Day: "Tuesday", Timeslots: []model.TimeSlot{
			{StartTime: 10, EndTime: 11, ScheduledClasses: classes},
		}},
	}
	g := Normalize(tt)
	cell := g.Cell("Tuesday", TimeRange{Start: 10, End: 11})
	require.Equal(t, CellOccupied, cell.Kind)
	assert.Equal(t, classes, cell.Classes)
}

func TestNormalizeSevenDayInputStillFiveColumns(t *testing.T) {
	days := []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	var tt model.Timetable
	for _, d := range days {
		tt = append(tt, model.DaySchedule{Day: d, Timeslots: []model.TimeSlot{
			{StartTime: 9, EndTime: 10, ScheduledClasses: []model.ScheduledClass{{EventName: "X"}}},
		}})
	}
	g := Normalize(tt)
	occupied := 0
	for _, d := range Days {
		if g.Cell(d, TimeRange{Start: 9, End: 10}).Kind == CellOccupied {
			occupied++
		}
	}
	assert.Equal(t, 5, occupied)
	assert.Equal(t, CellFree, g.Cell("Saturday", TimeRange{Start: 9, End: 10}).Kind)
}
