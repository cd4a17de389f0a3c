package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/archit-tiwari-26/timetable3.0/core/logger"
	"github.com/archit-tiwari-26/timetable3.0/core/metrics"
	"github.com/archit-tiwari-26/timetable3.0/core/model"
	infralogger "github.com/archit-tiwari-26/timetable3.0/infra/logger"
)

// Templated endpoint paths, used as metrics labels so cardinality stays
// bounded regardless of entity ids.
const (
	epCourses        = "/courses/"
	epTeachers       = "/teachers/"
	epBatches        = "/batches/"
	epRooms          = "/rooms/"
	epAssignTeachers = "/courses/{id}/assign-teachers/"
	epCourse         = "/courses/{id}"
	epTeacher        = "/teachers/{id}"
	epTeacherTT      = "/teachers/{id}/timetable/"
	epBatchTT        = "/batches/{id}/timetable/"
	epBatchFree      = "/batches/{id}/free-slots/"
	epFullTT         = "/timetable/full/"
	epFullPDF        = "/timetable/full/pdf/"
	epGenerate       = "/generate-timetable/"
	epAutoPrepare    = "/admin/auto-prepare/"
)

// TimetableResponse is the envelope every timetable endpoint returns.
type TimetableResponse struct {
	Message   string          `json:"message"`
	Timetable model.Timetable `json:"timetable"`
}

// Client is a typed wrapper around the scheduling service's HTTP API. All
// failures come back as errors; network errors are never retried here.
type Client struct {
	base *url.URL
	http *http.Client
	// Generation and auto-preparation block on the solver; they get an
	// unbounded client so the regular timeout cannot cut them short.
	longHTTP *http.Client
	sink     metrics.MetricsSink
	log      logger.Logger
}

// New creates a Client from the configuration. A nil sink disables request
// telemetry.
func New(cfg Config, sink metrics.MetricsSink) (*Client, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if sink == nil {
		sink = metrics.NopSink{}
	}
	return &Client{
		base:     base,
		http:     &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		longHTTP: &http.Client{},
		sink:     sink,
		log:      infralogger.New("api-client"),
	}, nil
}

// do issues one request and decodes a JSON response into out when out is
// non-nil. endpoint is the templated path used for telemetry, path the
// concrete one.
func (c *Client) do(ctx context.Context, hc *http.Client, method, endpoint, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	ref, err := url.Parse(path)
	if err != nil {
		return fmt.Errorf("parse path %s: %w", path, err)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base.ResolveReference(ref).String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.log.Debugw("issuing request", map[string]any{
		"method":     method,
		"endpoint":   endpoint,
		"request_id": requestID,
	})

	start := time.Now()
	resp, err := hc.Do(req)
	ev := metrics.RequestEvent{Method: method, Endpoint: endpoint, Duration: time.Since(start), Time: start}
	if err != nil {
		ev.Err = err.Error()
		c.record(ev)
		return fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()
	ev.Status = resp.StatusCode
	c.record(ev)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Status: resp.StatusCode, Detail: readDetail(resp.Body)}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return nil
}

func (c *Client) record(ev metrics.RequestEvent) {
	if err := c.sink.RecordRequest(ev); err != nil {
		c.log.Warnf("record request metric: %v", err)
	}
}

// readDetail extracts the service's "detail" field, falling back to the
// raw body.
func readDetail(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(data) == 0 {
		return ""
	}
	var payload struct {
		Detail any `json:"detail"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Detail != nil {
		if s, ok := payload.Detail.(string); ok {
			return s
		}
		if enc, err := json.Marshal(payload.Detail); err == nil {
			return string(enc)
		}
	}
	return strings.TrimSpace(string(data))
}

// --- entity listings ---

func (c *Client) Courses(ctx context.Context) ([]model.Course, error) {
	var out []model.Course
	err := c.do(ctx, c.http, http.MethodGet, epCourses, epCourses, nil, &out)
	return out, err
}

func (c *Client) Teachers(ctx context.Context) ([]model.Teacher, error) {
	var out []model.Teacher
	err := c.do(ctx, c.http, http.MethodGet, epTeachers, epTeachers, nil, &out)
	return out, err
}

func (c *Client) Batches(ctx context.Context) ([]model.Batch, error) {
	var out []model.Batch
	err := c.do(ctx, c.http, http.MethodGet, epBatches, epBatches, nil, &out)
	return out, err
}

func (c *Client) Rooms(ctx context.Context) ([]model.Room, error) {
	var out []model.Room
	err := c.do(ctx, c.http, http.MethodGet, epRooms, epRooms, nil, &out)
	return out, err
}

// --- entity creation ---

func (c *Client) CreateCourse(ctx context.Context, p model.CoursePayload) (*model.Course, error) {
	var out model.Course
	if err := c.do(ctx, c.http, http.MethodPost, epCourses, epCourses, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateTeacher(ctx context.Context, p model.TeacherPayload) (*model.Teacher, error) {
	var out model.Teacher
	if err := c.do(ctx, c.http, http.MethodPost, epTeachers, epTeachers, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateBatch(ctx context.Context, p model.BatchPayload) (*model.Batch, error) {
	var out model.Batch
	if err := c.do(ctx, c.http, http.MethodPost, epBatches, epBatches, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateRoom(ctx context.Context, p model.RoomPayload) (*model.Room, error) {
	var out model.Room
	if err := c.do(ctx, c.http, http.MethodPost, epRooms, epRooms, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AssignTeachers links the given teachers to an existing course.
func (c *Client) AssignTeachers(ctx context.Context, courseID int, teacherIDs []int) error {
	body := map[string][]int{"teacher_ids": teacherIDs}
	path := fmt.Sprintf("/courses/%d/assign-teachers/", courseID)
	return c.do(ctx, c.http, http.MethodPost, epAssignTeachers, path, body, nil)
}

// --- entity update and deletion ---

func (c *Client) UpdateCourse(ctx context.Context, id int, p model.CoursePayload) (*model.Course, error) {
	var out model.Course
	path := fmt.Sprintf("/courses/%d", id)
	if err := c.do(ctx, c.http, http.MethodPut, epCourse, path, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateTeacher(ctx context.Context, id int, p model.TeacherPayload) (*model.Teacher, error) {
	var out model.Teacher
	path := fmt.Sprintf("/teachers/%d", id)
	if err := c.do(ctx, c.http, http.MethodPut, epTeacher, path, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCourse(ctx context.Context, id int) error {
	path := fmt.Sprintf("/courses/%d", id)
	return c.do(ctx, c.http, http.MethodDelete, epCourse, path, nil, nil)
}

func (c *Client) DeleteTeacher(ctx context.Context, id int) error {
	path := fmt.Sprintf("/teachers/%d", id)
	return c.do(ctx, c.http, http.MethodDelete, epTeacher, path, nil, nil)
}

// --- timetable queries ---

func (c *Client) TeacherTimetable(ctx context.Context, id int) (*TimetableResponse, error) {
	var out TimetableResponse
	path := fmt.Sprintf("/teachers/%d/timetable/", id)
	if err := c.do(ctx, c.http, http.MethodGet, epTeacherTT, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) BatchTimetable(ctx context.Context, id int) (*TimetableResponse, error) {
	var out TimetableResponse
	path := fmt.Sprintf("/batches/%d/timetable/", id)
	if err := c.do(ctx, c.http, http.MethodGet, epBatchTT, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BatchFreeSlots returns the service's free/occupied partition for a batch.
// The client re-grids that partition but never recomputes it.
func (c *Client) BatchFreeSlots(ctx context.Context, id int) (*TimetableResponse, error) {
	var out TimetableResponse
	path := fmt.Sprintf("/batches/%d/free-slots/", id)
	if err := c.do(ctx, c.http, http.MethodGet, epBatchFree, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) FullTimetable(ctx context.Context) (*TimetableResponse, error) {
	var out TimetableResponse
	if err := c.do(ctx, c.http, http.MethodGet, epFullTT, epFullTT, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FullTimetablePDF streams the server-rendered PDF to w. The artifact is
// opaque to the client and distinct from the local snapshot export path.
func (c *Client) FullTimetablePDF(ctx context.Context, w io.Writer) error {
	ref, _ := url.Parse(epFullPDF)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base.ResolveReference(ref).String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	start := time.Now()
	resp, err := c.http.Do(req)
	ev := metrics.RequestEvent{Method: http.MethodGet, Endpoint: epFullPDF, Duration: time.Since(start), Time: start}
	if err != nil {
		ev.Err = err.Error()
		c.record(ev)
		return fmt.Errorf("download pdf: %w", err)
	}
	defer resp.Body.Close()
	ev.Status = resp.StatusCode
	c.record(ev)

	if resp.StatusCode != http.StatusOK {
		return &StatusError{Status: resp.StatusCode, Detail: readDetail(resp.Body)}
	}
	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("stream pdf: %w", err)
	}
	return nil
}

// --- generation ---

// Generate triggers timetable generation and blocks until the solver
// responds. Completion has no progress channel; the HTTP response is the
// only signal.
func (c *Client) Generate(ctx context.Context) (*TimetableResponse, error) {
	var out TimetableResponse
	if err := c.do(ctx, c.longHTTP, http.MethodPost, epGenerate, epGenerate, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AutoPrepare asks the service to create timeslots and schedulable events
// from the provisioned entities.
func (c *Client) AutoPrepare(ctx context.Context) error {
	return c.do(ctx, c.longHTTP, http.MethodPost, epAutoPrepare, epAutoPrepare, nil, nil)
}
