package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/archit-tiwari-26/timetable3.0/core/grid"
	"github.com/archit-tiwari-26/timetable3.0/infra/render"
)

var (
	facultyPDF  bool
	facultyCSV  bool
	facultyJSON bool
)

var facultyCmd = &cobra.Command{
	Use:   "faculty",
	Short: "Faculty dashboard commands",
}

var facultyTimetableCmd = &cobra.Command{
	Use:   "timetable <teacher-id>",
	Short: "Show the timetable of a teacher",
	Args:  cobra.ExactArgs(1),
	RunE:  runFacultyTimetable,
}

var facultyFreeSlotsCmd = &cobra.Command{
	Use:   "free-slots <batch-id>",
	Short: "Show the free slots of a batch",
	Args:  cobra.ExactArgs(1),
	RunE:  runFacultyFreeSlots,
}

var facultyFullCmd = &cobra.Command{
	Use:   "full",
	Short: "Show the full institution timetable",
	RunE:  runFullTimetable,
}

func init() {
	facultyTimetableCmd.Flags().BoolVar(&facultyPDF, "pdf", false, "save a PDF snapshot")
	facultyTimetableCmd.Flags().BoolVar(&facultyCSV, "csv", false, "save a CSV export")
	facultyTimetableCmd.Flags().BoolVar(&facultyJSON, "json", false, "save a JSON export")
	facultyFullCmd.Flags().BoolVar(&fullPDF, "pdf", false, "save a PDF snapshot")
	facultyCmd.AddCommand(facultyTimetableCmd, facultyFreeSlotsCmd, facultyFullCmd)
	rootCmd.AddCommand(facultyCmd)
}

func runFacultyTimetable(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("teacher id must be a number: %q", args[0])
	}
	svc, err := newService()
	if err != nil {
		return err
	}
	defer closeService(cmd, svc)
	ctx, stop := signalContext()
	defer stop()

	resp, err := svc.Client.TeacherTimetable(ctx, id)
	if err != nil {
		return fmt.Errorf("fetch teacher timetable: %w", err)
	}
	title := fmt.Sprintf("Faculty %d Timetable", id)
	showTimetable(cmd, svc, resp, render.SurfaceTeacher, title)
	stem := fmt.Sprintf("faculty_%d_timetable", id)
	return exportGrid(cmd, svc, render.SurfaceTeacher, stem, facultyPDF, facultyCSV, facultyJSON)
}

func runFacultyFreeSlots(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("batch id must be a number: %q", args[0])
	}
	svc, err := newService()
	if err != nil {
		return err
	}
	defer closeService(cmd, svc)
	ctx, stop := signalContext()
	defer stop()

	resp, err := svc.Client.BatchFreeSlots(ctx, id)
	if err != nil {
		return fmt.Errorf("fetch free slots: %w", err)
	}
	if resp.Message != "" {
		cmd.Println(resp.Message)
	}
	cmd.Println(render.FreeText(grid.DeriveFree(resp.Timetable)))
	return nil
}
