package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archit-tiwari-26/timetable3.0/core/model"
)

func TestDeriveFreeGroupsOnCanonicalDays(t *testing.T) {
	tt := model.Timetable{
		{Day: "Wednesday", Timeslots: []model.TimeSlot{
			{StartTime: 14, EndTime: 17},
			{StartTime: 8, EndTime: 10},
		}},
		{Day: "Monday", Timeslots: []model.TimeSlot{
			{StartTime: 11, EndTime: 12},
		}},
		{Day: "Sunday", Timeslots: []model.TimeSlot{
			{StartTime: 8, EndTime: 18},
		}},
	}
	free := DeriveFree(tt)
	require.Len(t, free, 5)

	assert.Equal(t, "Monday", free[0].Day)
	assert.Equal(t, []TimeRange{{Start: 11, End: 12}}, free[0].Ranges)

	assert.Equal(t, "Wednesday", free[2].Day)
	assert.Equal(t, []TimeRange{{Start: 8, End: 10}, {Start: 14, End: 17}}, free[2].Ranges)

	// Days absent from the source have no free slots; Sunday is dropped.
	assert.Empty(t, free[1].Ranges)
	assert.Empty(t, free[3].Ranges)
	assert.Empty(t, free[4].Ranges)
}

func TestDeriveFreeEmptyTimetable(t *testing.T) {
	free := DeriveFree(model.Timetable{})
	require.Len(t, free, 5)
	for i, d := range Days {
		assert.Equal(t, d, free[i].Day)
		assert.Empty(t, free[i].Ranges)
	}
}

func TestDeriveFreeNoLunchInjection(t *testing.T) {
	tt := model.Timetable{
		{Day: "Monday", Timeslots: []model.TimeSlot{{StartTime: 9, EndTime: 10}}},
	}
	free := DeriveFree(tt)
	assert.NotContains(t, free[0].Ranges, Lunch)
}
