package provision

import (
	"context"
	"fmt"

	"github.com/archit-tiwari-26/timetable3.0/core/logger"
	"github.com/archit-tiwari-26/timetable3.0/core/model"
	"github.com/archit-tiwari-26/timetable3.0/internal/eventbus"
)

// API is the subset of the service client the controllers drive.
type API interface {
	Batches(ctx context.Context) ([]model.Batch, error)
	Rooms(ctx context.Context) ([]model.Room, error)
	CreateBatch(ctx context.Context, p model.BatchPayload) (*model.Batch, error)
	CreateRoom(ctx context.Context, p model.RoomPayload) (*model.Room, error)
	CreateCourse(ctx context.Context, p model.CoursePayload) (*model.Course, error)
	AssignTeachers(ctx context.Context, courseID int, teacherIDs []int) error
}

// Config controls provisioning behavior.
type Config struct {
	// SkipExisting lists current entities first and skips generated names
	// that already exist, making repeated runs idempotent. Off by default:
	// the service itself has no idempotency key, so a re-run creates
	// additional entities.
	SkipExisting bool `json:"skip_existing"`
}

// BulkSpec holds the unit counts for quick setup.
type BulkSpec struct {
	Batches       int
	LectureRooms  int
	TutorialRooms int
	Labs          int
}

// Total returns the number of creation calls a full run would issue.
func (s BulkSpec) Total() int {
	return s.Batches + s.LectureRooms + s.TutorialRooms + s.Labs
}

// Event reports progress of a bulk run on the event bus.
type Event struct {
	Name    string
	Kind    string // "batch" or "room"
	Skipped bool
}

// Report summarizes a bulk run. Creation is strictly sequential: unit k
// goes out only after unit k-1 completed, so a failure leaves a known
// prefix already created. Nothing is rolled back; the caller inspects
// Created and decides how to proceed.
type Report struct {
	Created  []string
	Skipped  []string
	FailedAt string
	Err      error
}

// Failed reports whether the run stopped early.
func (r Report) Failed() bool { return r.Err != nil }

// Provisioner drives multi-step entity creation sequences against the
// scheduling service.
type Provisioner struct {
	api API
	cfg Config
	bus *eventbus.Bus[Event]
	log logger.Logger
}

// New creates a Provisioner. bus may be nil when no one listens for
// progress.
func New(api API, cfg Config, bus *eventbus.Bus[Event], log logger.Logger) *Provisioner {
	return &Provisioner{api: api, cfg: cfg, bus: bus, log: log}
}

type category struct {
	count    int
	prefix   string
	kind     string
	size     int    // batch size or room capacity
	roomType string // empty for batches
}

// Provision creates batches and rooms one at a time with deterministic
// generated names. The sequential await keeps F1 allocated before F2; a
// failure at any unit stops the run immediately.
func (p *Provisioner) Provision(ctx context.Context, spec BulkSpec) Report {
	existing, err := p.existingNames(ctx)
	if err != nil {
		return Report{Err: fmt.Errorf("list existing entities: %w", err)}
	}

	categories := []category{
		{count: spec.Batches, prefix: "F", kind: "batch", size: 30},
		{count: spec.LectureRooms, prefix: "M", kind: "room", size: 70, roomType: "Lecture_X"},
		{count: spec.TutorialRooms, prefix: "T", kind: "room", size: 40, roomType: "Tutorial_Y"},
		{count: spec.Labs, prefix: "L", kind: "room", size: 100, roomType: "Lab"},
	}

	var rep Report
	for _, cat := range categories {
		for i := 1; i <= cat.count; i++ {
			name := fmt.Sprintf("%s%d", cat.prefix, i)
			if existing[name] {
				rep.Skipped = append(rep.Skipped, name)
				p.publish(Event{Name: name, Kind: cat.kind, Skipped: true})
				continue
			}
			if err := p.createUnit(ctx, cat, name); err != nil {
				rep.FailedAt = name
				rep.Err = fmt.Errorf("create %s %s: %w", cat.kind, name, err)
				p.log.Errorf("bulk provisioning stopped at %s: %v", name, err)
				return rep
			}
			rep.Created = append(rep.Created, name)
			p.publish(Event{Name: name, Kind: cat.kind})
		}
	}
	p.log.Infof("provisioned %d entities (%d skipped)", len(rep.Created), len(rep.Skipped))
	return rep
}

func (p *Provisioner) createUnit(ctx context.Context, cat category, name string) error {
	if cat.kind == "batch" {
		_, err := p.api.CreateBatch(ctx, model.BatchPayload{Name: name, Size: cat.size})
		return err
	}
	_, err := p.api.CreateRoom(ctx, model.RoomPayload{Name: name, Capacity: cat.size, RoomType: cat.roomType})
	return err
}

func (p *Provisioner) existingNames(ctx context.Context) (map[string]bool, error) {
	if !p.cfg.SkipExisting {
		return nil, nil
	}
	names := make(map[string]bool)
	batches, err := p.api.Batches(ctx)
	if err != nil {
		return nil, err
	}
	for _, b := range batches {
		names[b.Name] = true
	}
	rooms, err := p.api.Rooms(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range rooms {
		names[r.Name] = true
	}
	return names, nil
}

func (p *Provisioner) publish(ev Event) {
	if p.bus != nil {
		p.bus.Publish(ev)
	}
}
