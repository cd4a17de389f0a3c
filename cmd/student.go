package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/archit-tiwari-26/timetable3.0/core/grid"
	"github.com/archit-tiwari-26/timetable3.0/infra/render"
)

var (
	studentPDF  bool
	studentCSV  bool
	studentJSON bool
)

var studentCmd = &cobra.Command{
	Use:   "student",
	Short: "Student dashboard commands",
}

var studentTimetableCmd = &cobra.Command{
	Use:   "timetable <batch-id>",
	Short: "Show the timetable of a batch",
	Args:  cobra.ExactArgs(1),
	RunE:  runStudentTimetable,
}

var studentFreeSlotsCmd = &cobra.Command{
	Use:   "free-slots <batch-id>",
	Short: "Show the free slots of a batch",
	Args:  cobra.ExactArgs(1),
	RunE:  runStudentFreeSlots,
}

var studentFullCmd = &cobra.Command{
	Use:   "full",
	Short: "Show the full institution timetable",
	RunE:  runFullTimetable,
}

func init() {
	studentTimetableCmd.Flags().BoolVar(&studentPDF, "pdf", false, "save a PDF snapshot")
	studentTimetableCmd.Flags().BoolVar(&studentCSV, "csv", false, "save a CSV export")
	studentTimetableCmd.Flags().BoolVar(&studentJSON, "json", false, "save a JSON export")
	studentFullCmd.Flags().BoolVar(&fullPDF, "pdf", false, "save a PDF snapshot")
	studentCmd.AddCommand(studentTimetableCmd, studentFreeSlotsCmd, studentFullCmd)
	rootCmd.AddCommand(studentCmd)
}

func runStudentTimetable(cmd *cobra.Command, args []string) error {
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

	resp, err := svc.Client.BatchTimetable(ctx, id)
	if err != nil {
		return fmt.Errorf("fetch batch timetable: %w", err)
	}
	title := fmt.Sprintf("Batch %d Timetable", id)
	showTimetable(cmd, svc, resp, render.SurfaceBatch, title)
	stem := fmt.Sprintf("batch_%d_timetable", id)
	return exportGrid(cmd, svc, render.SurfaceBatch, stem, studentPDF, studentCSV, studentJSON)
}

func runStudentFreeSlots(cmd *cobra.Command, args []string) error {
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
