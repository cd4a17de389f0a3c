package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/archit-tiwari-26/timetable3.0/core/grid"
	"github.com/archit-tiwari-26/timetable3.0/core/model"
	"github.com/archit-tiwari-26/timetable3.0/core/provision"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administration commands",
}

var provisionSpec provision.BulkSpec

var provisionCmd = &cobra.Command{
	Use:   "provision",
	Short: "Bulk-create batches and rooms with generated names",
	RunE:  runProvision,
}

var autoPrepareCmd = &cobra.Command{
	Use:   "auto-prepare",
	Short: "Let the service seed its own sample data",
	RunE:  runAutoPrepare,
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Trigger timetable generation",
	RunE:  runGenerate,
}

var courseCmd = &cobra.Command{
	Use:   "course",
	Short: "Course management",
}

var (
	courseCredits  int
	courseTeachers []int
	courseName     string
)

var courseAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a course and link its teachers",
	Args:  cobra.ExactArgs(1),
	RunE:  runCourseAdd,
}

var courseUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a course",
	Args:  cobra.ExactArgs(1),
	RunE:  runCourseUpdate,
}

var courseDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a course",
	Args:  cobra.ExactArgs(1),
	RunE:  runCourseDelete,
}

var adminFacultyCmd = &cobra.Command{
	Use:   "faculty",
	Short: "Faculty management",
}

var (
	facultyMaxHours int
	facultyName     string
)

var facultyAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a faculty member",
	Args:  cobra.ExactArgs(1),
	RunE:  runFacultyAdd,
}

var facultyUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a faculty member",
	Args:  cobra.ExactArgs(1),
	RunE:  runFacultyUpdate,
}

var facultyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a faculty member",
	Args:  cobra.ExactArgs(1),
	RunE:  runFacultyDelete,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List courses, faculties, batches and rooms",
	RunE:  runList,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Per-day utilization of the full timetable",
	RunE:  runStats,
}

var downloadPDFCmd = &cobra.Command{
	Use:   "download-pdf",
	Short: "Download the service-rendered full timetable PDF",
	RunE:  runDownloadPDF,
}

func init() {
	provisionCmd.Flags().IntVar(&provisionSpec.Batches, "batches", 3, "number of batches (F1..Fn)")
	provisionCmd.Flags().IntVar(&provisionSpec.LectureRooms, "lecture-rooms", 2, "number of lecture rooms (M1..Mn)")
	provisionCmd.Flags().IntVar(&provisionSpec.TutorialRooms, "tutorial-rooms", 2, "number of tutorial rooms (T1..Tn)")
	provisionCmd.Flags().IntVar(&provisionSpec.Labs, "labs", 1, "number of labs (L1..Ln)")

	courseAddCmd.Flags().IntVar(&courseCredits, "credit-hours", 3, "credit hours")
	courseAddCmd.Flags().IntSliceVar(&courseTeachers, "teacher-ids", nil, "teacher ids to assign")
	courseUpdateCmd.Flags().StringVar(&courseName, "name", "", "new name")
	courseUpdateCmd.Flags().IntVar(&courseCredits, "credit-hours", 3, "credit hours")
	courseCmd.AddCommand(courseAddCmd, courseUpdateCmd, courseDeleteCmd)

	facultyAddCmd.Flags().IntVar(&facultyMaxHours, "max-hours", 16, "weekly teaching hour cap")
	facultyUpdateCmd.Flags().StringVar(&facultyName, "name", "", "new name")
	facultyUpdateCmd.Flags().IntVar(&facultyMaxHours, "max-hours", 16, "weekly teaching hour cap")
	adminFacultyCmd.AddCommand(facultyAddCmd, facultyUpdateCmd, facultyDeleteCmd)

	adminCmd.AddCommand(provisionCmd, autoPrepareCmd, generateCmd, courseCmd,
		adminFacultyCmd, listCmd, statsCmd, downloadPDFCmd)
	rootCmd.AddCommand(adminCmd)
}

func runProvision(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	defer closeService(cmd, svc)
	ctx, stop := signalContext()
	defer stop()
	svc.StartMetrics(ctx)

	events, cancel := svc.Bus.Subscribe()
	done := make(chan struct{})
	go func() {
		defer close(done)
		for ev := range events {
			if ev.Skipped {
				cmd.Printf("skipped %s %s (already exists)\n", ev.Kind, ev.Name)
				continue
			}
			cmd.Printf("created %s %s\n", ev.Kind, ev.Name)
		}
	}()

	report := svc.Provisioner.Provision(ctx, provisionSpec)
	cancel()
	<-done

	if report.Failed() {
		return fmt.Errorf("provisioning stopped at %s after %d of %d units: %w",
			report.FailedAt, len(report.Created), provisionSpec.Total(), report.Err)
	}
	cmd.Printf("provisioned %d units (%d skipped)\n", len(report.Created), len(report.Skipped))
	return nil
}

func runAutoPrepare(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	defer closeService(cmd, svc)
	ctx, stop := signalContext()
	defer stop()
	svc.StartMetrics(ctx)

	if err := svc.Client.AutoPrepare(ctx); err != nil {
		return fmt.Errorf("auto-prepare: %w", err)
	}
	cmd.Println("sample data prepared")
	return nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	defer closeService(cmd, svc)
	ctx, stop := signalContext()
	defer stop()
	svc.StartMetrics(ctx)

	cmd.Println("generating timetable, this can take a while...")
	resp, err := svc.Client.Generate(ctx)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	if resp.Message != "" {
		cmd.Println(resp.Message)
	}
	return nil
}

func runCourseAdd(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	defer closeService(cmd, svc)
	ctx, stop := signalContext()
	defer stop()

	payload := model.CoursePayload{Name: args[0], CreditHours: courseCredits}
	res, err := svc.Provisioner.CreateCourse(ctx, payload, courseTeachers)
	if err != nil {
		return err
	}
	if res.UsedMinimal {
		cmd.Println("service rejected inline teacher ids, created with minimal payload")
	}
	cmd.Printf("created course %d (%s)\n", res.Course.ID, res.Course.Name)
	if res.AssignErr != nil {
		cmd.Printf("warning: course created but teacher assignment failed: %v\n", res.AssignErr)
	}
	return nil
}

func runCourseUpdate(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("course id must be a number: %q", args[0])
	}
	svc, err := newService()
	if err != nil {
		return err
	}
	defer closeService(cmd, svc)
	ctx, stop := signalContext()
	defer stop()

	course, err := svc.Client.UpdateCourse(ctx, id, model.CoursePayload{Name: courseName, CreditHours: courseCredits})
	if err != nil {
		return fmt.Errorf("update course: %w", err)
	}
	cmd.Printf("updated course %d (%s)\n", course.ID, course.Name)
	return nil
}

func runCourseDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("course id must be a number: %q", args[0])
	}
	svc, err := newService()
	if err != nil {
		return err
	}
	defer closeService(cmd, svc)
	ctx, stop := signalContext()
	defer stop()

	if err := svc.Client.DeleteCourse(ctx, id); err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	cmd.Printf("deleted course %d\n", id)
	return nil
}

func runFacultyAdd(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	defer closeService(cmd, svc)
	ctx, stop := signalContext()
	defer stop()

	teacher, err := svc.Client.CreateTeacher(ctx, model.TeacherPayload{Name: args[0], MaxHours: facultyMaxHours})
	if err != nil {
		return fmt.Errorf("create faculty: %w", err)
	}
	cmd.Printf("created faculty %d (%s)\n", teacher.ID, teacher.Name)
	return nil
}

func runFacultyUpdate(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("faculty id must be a number: %q", args[0])
	}
	svc, err := newService()
	if err != nil {
		return err
	}
	defer closeService(cmd, svc)
	ctx, stop := signalContext()
	defer stop()

	teacher, err := svc.Client.UpdateTeacher(ctx, id, model.TeacherPayload{Name: facultyName, MaxHours: facultyMaxHours})
	if err != nil {
		return fmt.Errorf("update faculty: %w", err)
	}
	cmd.Printf("updated faculty %d (%s)\n", teacher.ID, teacher.Name)
	return nil
}

func runFacultyDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("faculty id must be a number: %q", args[0])
	}
	svc, err := newService()
	if err != nil {
		return err
	}
	defer closeService(cmd, svc)
	ctx, stop := signalContext()
	defer stop()

	if err := svc.Client.DeleteTeacher(ctx, id); err != nil {
		return fmt.Errorf("delete faculty: %w", err)
	}
	cmd.Printf("deleted faculty %d\n", id)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	defer closeService(cmd, svc)
	ctx, stop := signalContext()
	defer stop()

	courses, err := svc.Client.Courses(ctx)
	if err != nil {
		return fmt.Errorf("list courses: %w", err)
	}
	teachers, err := svc.Client.Teachers(ctx)
	if err != nil {
		return fmt.Errorf("list faculties: %w", err)
	}
	batches, err := svc.Client.Batches(ctx)
	if err != nil {
		return fmt.Errorf("list batches: %w", err)
	}
	rooms, err := svc.Client.Rooms(ctx)
	if err != nil {
		return fmt.Errorf("list rooms: %w", err)
	}

	cmd.Printf("Courses (%d)\n", len(courses))
	for _, c := range courses {
		cmd.Printf("  %d  %s (%d credit hours)\n", c.ID, c.Name, c.CreditHours)
	}
	cmd.Printf("Faculties (%d)\n", len(teachers))
	for _, t := range teachers {
		cmd.Printf("  %d  %s (max %d h/week)\n", t.ID, t.Name, t.MaxHours)
	}
	cmd.Printf("Batches (%d)\n", len(batches))
	for _, b := range batches {
		cmd.Printf("  %d  %s (%d students)\n", b.ID, b.Name, b.Size)
	}
	cmd.Printf("Rooms (%d)\n", len(rooms))
	for _, r := range rooms {
		cmd.Printf("  %d  %s (%s, capacity %d)\n", r.ID, r.Name, r.RoomType, r.Capacity)
	}
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	defer closeService(cmd, svc)
	ctx, stop := signalContext()
	defer stop()

	resp, err := svc.Client.FullTimetable(ctx)
	if err != nil {
		return fmt.Errorf("fetch full timetable: %w", err)
	}
	g := grid.Normalize(resp.Timetable)
	for _, u := range grid.Utilization(g) {
		cmd.Printf("%-10s mean load %.2f, peak %d, %d free slots\n",
			u.Day, u.MeanLoad, u.PeakLoad, u.FreeSlots)
	}
	return nil
}

func runDownloadPDF(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	defer closeService(cmd, svc)
	ctx, stop := signalContext()
	defer stop()

	path := svc.ExportPath("full_timetable.pdf")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := svc.Client.FullTimetablePDF(ctx, f); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("download pdf: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	cmd.Println("saved", path)
	return nil
}
