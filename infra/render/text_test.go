package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/archit-tiwari-26/timetable3.0/core/grid"
	"github.com/archit-tiwari-26/timetable3.0/core/model"
)

func TestTextContainsDaysAndLunch(t *testing.T) {
	out := Text(grid.Normalize(model.Timetable{}))
	for _, day := range grid.Days {
		assert.Contains(t, out, day)
	}
	assert.Contains(t, out, "Lunch Break")
	assert.Contains(t, out, "12:00 - 13:00")
}

func TestCellLinesOccupied(t *testing.T) {
	cell := grid.Cell{Kind: grid.CellOccupied, Classes: []model.ScheduledClass{
		{EventName: "Course A Lecture 1", RoomName: "M1", TeacherName: "Dr. A", Batches: []string{"F1", "F2"}},
		{EventName: "Course B Tutorial", RoomName: "T1", TeacherName: "Dr. B"},
	}}
	lines := CellLines(cell)
	assert.Equal(t, []string{
		"Course A Lecture 1",
		"M1 | Dr. A | F1+F2",
		"Course B Tutorial",
		"T1 | Dr. B",
	}, lines)
}

func TestFreeTextEmptyDay(t *testing.T) {
	out := FreeText(grid.DeriveFree(model.Timetable{
		{Day: "Monday", Timeslots: []model.TimeSlot{{StartTime: 10, EndTime: 12}}},
	}))
	assert.Contains(t, out, "10:00 - 12:00")
	assert.Contains(t, out, "No free slots")
}

func TestRegistryPutLookup(t *testing.T) {
	reg := NewRegistry()
	_, ok := reg.Lookup(SurfaceFull)
	assert.False(t, ok)

	g := grid.Normalize(model.Timetable{})
	reg.Put(Surface{ID: SurfaceFull, Title: "Full Timetable", Grid: g})
	s, ok := reg.Lookup(SurfaceFull)
	assert.True(t, ok)
	assert.Equal(t, "Full Timetable", s.Title)
}
