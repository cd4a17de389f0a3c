package model

// ScheduledClass is one occupied entry inside a timeslot, exactly as the
// scheduling service returns it. Duplicates are legal: two sections of the
// same course in the same room are told apart only by their position in the
// slot.
type ScheduledClass struct {
	EventName   string   `json:"event_name"`
	RoomName    string   `json:"room_name"`
	TeacherName string   `json:"teacher_name"`
	Batches     []string `json:"batches"`
}

// TimeSlot is a time range within one day. Times are whole hours on a 24h
// clock and StartTime < EndTime. An empty ScheduledClasses means the slot
// is free.
type TimeSlot struct {
	ID               int              `json:"id,omitempty"`
	StartTime        int              `json:"start_time"`
	EndTime          int              `json:"end_time"`
	Duration         int              `json:"duration,omitempty"`
	SlotType         string           `json:"slot_type,omitempty"`
	ScheduledClasses []ScheduledClass `json:"scheduled_classes"`
}

// DaySchedule groups the timeslots the service returned for a single day.
// Within one day no two timeslots share the same (start, end) pair.
type DaySchedule struct {
	Day       string     `json:"day"`
	Timeslots []TimeSlot `json:"timeslots"`
}

// Timetable is the per-day sequence returned by the timetable endpoints.
// The service may return any subset of days in any order.
type Timetable []DaySchedule
