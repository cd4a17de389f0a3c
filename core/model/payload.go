package model

// CoursePayload is the course creation body. TeacherIDs is the enriched
// form; the service may reject it with a 422, in which case the caller
// retries without it.
type CoursePayload struct {
	Name        string `json:"name"`
	CreditHours int    `json:"credit_hours"`
	TeacherIDs  []int  `json:"teacher_ids,omitempty"`
}

// Minimal strips the enriched fields, leaving only what every backend
// version accepts.
func (p CoursePayload) Minimal() CoursePayload {
	return CoursePayload{Name: p.Name, CreditHours: p.CreditHours}
}

// TeacherPayload is the faculty creation body.
type TeacherPayload struct {
	Name     string `json:"name"`
	MaxHours int    `json:"max_hours"`
}

// BatchPayload is the batch creation body.
type BatchPayload struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

// RoomPayload is the room creation body.
type RoomPayload struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	RoomType string `json:"room_type"`
}
