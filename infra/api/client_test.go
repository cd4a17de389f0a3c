package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coremetrics "github.com/archit-tiwari-26/timetable3.0/core/metrics"
	"github.com/archit-tiwari-26/timetable3.0/core/model"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := New(Config{BaseURL: srv.URL, TimeoutSeconds: 5}, coremetrics.NopSink{})
	require.NoError(t, err)
	return c, srv
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{}
	cfg.SetDefaults()
	assert.Equal(t, "http://localhost:8000", cfg.BaseURL)
	assert.Equal(t, 15, cfg.TimeoutSeconds)
	assert.NoError(t, cfg.Validate())

	bad := Config{BaseURL: "not a url"}
	assert.Error(t, bad.Validate())
}

func TestCoursesListing(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/courses/", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		_ = json.NewEncoder(w).Encode([]model.Course{
			{ID: 1, Name: "Course A", CreditHours: 4},
		})
	}))

	courses, err := c.Courses(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "Course A", courses[0].Name)
}

func TestCreateCourse422(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"detail": "unexpected field teacher_ids"}`))
	}))

	_, err := c.CreateCourse(context.Background(), model.CoursePayload{Name: "X", CreditHours: 4, TeacherIDs: []int{1}})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "unexpected field teacher_ids")
}

func TestCreateCourseOtherStatusIsNotValidation(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail": "oops"}`, http.StatusInternalServerError)
	}))

	_, err := c.CreateCourse(context.Background(), model.CoursePayload{Name: "X", CreditHours: 4})
	require.Error(t, err)
	assert.False(t, IsValidation(err))
}

func TestAssignTeachersBody(t *testing.T) {
	var got map[string][]int
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/courses/7/assign-teachers/", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"message": "Assigned 2 teachers to Course A"}`))
	}))

	require.NoError(t, c.AssignTeachers(context.Background(), 7, []int{1, 2}))
	assert.Equal(t, []int{1, 2}, got["teacher_ids"])
}

func TestBatchTimetableEnvelope(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/batches/3/timetable/", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"message": "Timetable for F3",
			"timetable": [
				{"day": "Monday", "timeslots": [
					{"start_time": 9, "end_time": 10, "scheduled_classes": [
						{"event_name": "Course A Lecture 1", "room_name": "M1",
						 "teacher_name": "Dr. A", "batches": ["F3", "F4"]}
					]}
				]}
			]
		}`))
	}))

	resp, err := c.BatchTimetable(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Timetable for F3", resp.Message)
	require.Len(t, resp.Timetable, 1)
	require.Len(t, resp.Timetable[0].Timeslots, 1)
	slot := resp.Timetable[0].Timeslots[0]
	assert.Equal(t, 9, slot.StartTime)
	require.Len(t, slot.ScheduledClasses, 1)
	assert.Equal(t, []string{"F3", "F4"}, slot.ScheduledClasses[0].Batches)
}

func TestDeleteCoursePath(t *testing.T) {
	var path, method string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path, method = r.URL.Path, r.Method
		w.WriteHeader(http.StatusOK)
	}))

	require.NoError(t, c.DeleteCourse(context.Background(), 9))
	assert.Equal(t, "/courses/9", path)
	assert.Equal(t, http.MethodDelete, method)
}

func TestFullTimetablePDFStreams(t *testing.T) {
	payload := []byte("%PDF-1.4 fake")
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/timetable/full/pdf/", r.URL.Path)
		_, _ = w.Write(payload)
	}))

	var buf testBuffer
	require.NoError(t, c.FullTimetablePDF(context.Background(), &buf))
	assert.Equal(t, payload, buf.data)
}

func TestNetworkErrorSurfaces(t *testing.T) {
	c, err := New(Config{BaseURL: "http://127.0.0.1:1", TimeoutSeconds: 1}, coremetrics.NopSink{})
	require.NoError(t, err)
	_, err = c.Courses(context.Background())
	require.Error(t, err)
	assert.False(t, IsValidation(err))
}

type testBuffer struct{ data []byte }

func (b *testBuffer) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)
	return len(p), nil
}
