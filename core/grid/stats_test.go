package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archit-tiwari-26/timetable3.0/core/model"
)

func TestUtilizationExcludesLunch(t *testing.T) {
	tt := model.Timetable{
		{Day: "Monday", Timeslots: []model.TimeSlot{
			{StartTime: 9, EndTime: 10, ScheduledClasses: []model.ScheduledClass{{EventName: "A"}, {EventName: "B"}}},
			{StartTime: 10, EndTime: 11},
		}},
	}
	g := Normalize(tt)
	util := Utilization(g)
	require.Len(t, util, 5)

	mon := util[0]
	assert.Equal(t, "Monday", mon.Day)
	// Two non-lunch slots: loads 2 and 0.
	assert.InDelta(t, 1.0, mon.MeanLoad, 1e-9)
	assert.Equal(t, 2, mon.PeakLoad)
	assert.Equal(t, 1, mon.FreeSlots)

	tue := util[1]
	assert.Equal(t, 0.0, tue.MeanLoad)
	assert.Equal(t, 2, tue.FreeSlots)
}
