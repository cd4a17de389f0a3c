package provision

import (
	"context"
	"errors"
	"fmt"

	"github.com/archit-tiwari-26/timetable3.0/core/model"
)

// ValidationError marks a semantic-validation rejection (HTTP 422) from the
// service. It is the only creation failure the course protocol retries.
type ValidationError interface {
	error
	Validation() bool
}

func isValidation(err error) bool {
	var v ValidationError
	return errors.As(err, &v) && v.Validation()
}

// CourseResult reports the outcome of the create-then-assign protocol.
// A non-nil AssignErr together with a non-nil Course is the partial-success
// state: the course exists but teacher linkage failed. That state must be
// surfaced to the user, never folded into a plain failure.
type CourseResult struct {
	Course      *model.Course
	UsedMinimal bool
	AssignErr   error
}

// Protocol states. Kept explicit so the retry contract stays auditable.
type courseState int

const (
	tryEnriched courseState = iota
	tryMinimal
	assign
)

// CreateCourse creates a course and links the given teachers. Creation is
// probed with the enriched payload first; a 422 downgrades to the minimal
// payload exactly once, any other creation error is terminal. The explicit
// assignment call after a successful creation is non-fatal: its failure is
// reported on the result but does not undo the creation.
func (p *Provisioner) CreateCourse(ctx context.Context, payload model.CoursePayload, teacherIDs []int) (CourseResult, error) {
	payload.TeacherIDs = teacherIDs

	var res CourseResult
	st := tryEnriched
	for {
		switch st {
		case tryEnriched:
			course, err := p.api.CreateCourse(ctx, payload)
			switch {
			case err == nil:
				res.Course = course
				st = assign
			case isValidation(err):
				p.log.Warnf("enriched course payload rejected, retrying minimal: %v", err)
				st = tryMinimal
			default:
				return CourseResult{}, fmt.Errorf("create course %q: %w", payload.Name, err)
			}

		case tryMinimal:
			course, err := p.api.CreateCourse(ctx, payload.Minimal())
			if err != nil {
				return CourseResult{UsedMinimal: true}, fmt.Errorf("create course %q (minimal payload): %w", payload.Name, err)
			}
			res.Course = course
			res.UsedMinimal = true
			st = assign

		case assign:
			if len(teacherIDs) > 0 {
				if err := p.api.AssignTeachers(ctx, res.Course.ID, teacherIDs); err != nil {
					p.log.Warnf("assign teachers to course %d failed (non-fatal): %v", res.Course.ID, err)
					res.AssignErr = err
				}
			}
			return res, nil
		}
	}
}
