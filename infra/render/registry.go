package render

import (
	"sync"

	"github.com/archit-tiwari-26/timetable3.0/core/grid"
)

// Well-known surface ids, one per dashboard pane.
const (
	SurfaceBatch   = "batch-timetable"
	SurfaceTeacher = "teacher-timetable"
	SurfaceFull    = "full-timetable"
)

// Surface is a rendered grid registered for export under a stable id.
type Surface struct {
	ID    string
	Title string
	Grid  *grid.Grid
}

// Registry tracks the most recently rendered surface per id. The exporter
// looks surfaces up here; an id that was never rendered is a failed export
// precondition.
type Registry struct {
	mu       sync.Mutex
	surfaces map[string]Surface
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{surfaces: make(map[string]Surface)}
}

// Put registers or replaces the surface under its id.
func (r *Registry) Put(s Surface) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.surfaces[s.ID] = s
}

// Lookup returns the surface registered under id.
func (r *Registry) Lookup(id string) (Surface, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.surfaces[id]
	return s, ok
}
