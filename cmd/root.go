package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/archit-tiwari-26/timetable3.0/app"
	"github.com/archit-tiwari-26/timetable3.0/config"
	"github.com/archit-tiwari-26/timetable3.0/core/grid"
	"github.com/archit-tiwari-26/timetable3.0/infra/api"
	"github.com/archit-tiwari-26/timetable3.0/infra/render"
	"github.com/archit-tiwari-26/timetable3.0/pkg/export"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "timetable",
	Short: "Client for the timetable scheduling service",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

// newService builds the service from the configured file, falling back to
// defaults when no file exists next to the binary.
func newService() (*app.Service, error) {
	var cfg *config.Config
	if _, err := os.Stat(cfgPath); errors.Is(err, os.ErrNotExist) {
		cfg = config.Default()
	} else {
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}
	return app.New(cfg)
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func closeService(cmd *cobra.Command, svc *app.Service) {
	if err := svc.Close(); err != nil {
		cmd.PrintErrln("service close:", err)
	}
}

// showTimetable normalizes a fetched timetable, registers it for export and
// prints the canonical grid.
func showTimetable(cmd *cobra.Command, svc *app.Service, resp *api.TimetableResponse, surfaceID, title string) *grid.Grid {
	g := grid.Normalize(resp.Timetable)
	svc.Registry.Put(render.Surface{ID: surfaceID, Title: title, Grid: g})
	if resp.Message != "" {
		cmd.Println(resp.Message)
	}
	cmd.Println(render.Text(g))
	return g
}

// exportGrid writes the registered surface in the requested formats.
func exportGrid(cmd *cobra.Command, svc *app.Service, surfaceID, stem string, pdf, csv, js bool) error {
	if pdf {
		path := svc.ExportPath(stem + ".pdf")
		if err := export.Snapshot(svc.Registry, surfaceID, path); err != nil {
			return fmt.Errorf("pdf export: %w", err)
		}
		cmd.Println("saved", path)
	}
	s, ok := svc.Registry.Lookup(surfaceID)
	if !ok {
		if csv || js {
			return export.ErrSourceMissing
		}
		return nil
	}
	if csv {
		path := svc.ExportPath(stem + ".csv")
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := export.WriteCSV(f, s.Grid); err != nil {
			f.Close()
			return fmt.Errorf("csv export: %w", err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		cmd.Println("saved", path)
	}
	if js {
		path := svc.ExportPath(stem + ".json")
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := export.WriteJSON(f, s.Grid); err != nil {
			f.Close()
			return fmt.Errorf("json export: %w", err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		cmd.Println("saved", path)
	}
	return nil
}
