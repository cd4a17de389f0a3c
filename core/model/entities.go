package model

// Teacher is a faculty member known to the scheduling service.
type Teacher struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	MaxHours int    `json:"max_hours"`
}

// Course is a course entity. Teachers is populated by the service once
// assignments exist.
type Course struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	CreditHours int       `json:"credit_hours"`
	Teachers    []Teacher `json:"teachers,omitempty"`
}

// Batch is a student batch.
type Batch struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Size int    `json:"size"`
}

// Room is a physical room with a capacity and a type the solver matches
// against event requirements.
type Room struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	RoomType string `json:"room_type"`
}
