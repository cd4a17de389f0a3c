package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/archit-tiwari-26/timetable3.0/infra/render"
)

var fullPDF bool

// runFullTimetable backs both the student and faculty "full" subcommands;
// the institution-wide view is identical for every role.
func runFullTimetable(cmd *cobra.Command, args []string) error {
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
	showTimetable(cmd, svc, resp, render.SurfaceFull, "Full Timetable")
	return exportGrid(cmd, svc, render.SurfaceFull, "full_timetable", fullPDF, false, false)
}
