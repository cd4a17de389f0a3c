package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/archit-tiwari-26/timetable3.0/config"
	coremetrics "github.com/archit-tiwari-26/timetable3.0/core/metrics"
	"github.com/archit-tiwari-26/timetable3.0/core/provision"
	"github.com/archit-tiwari-26/timetable3.0/infra/api"
	"github.com/archit-tiwari-26/timetable3.0/infra/logger"
	"github.com/archit-tiwari-26/timetable3.0/infra/metrics"
	"github.com/archit-tiwari-26/timetable3.0/infra/render"
	"github.com/archit-tiwari-26/timetable3.0/internal/eventbus"
)

// Service wires the fetch client, provisioning controller, render registry
// and metrics sinks for the dashboard commands.
type Service struct {
	Cfg         *config.Config
	Client      *api.Client
	Registry    *render.Registry
	Provisioner *provision.Provisioner
	Bus         *eventbus.Bus[provision.Event]

	sink coremetrics.MetricsSink
	log  logger.Logger
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	var sinks []coremetrics.MetricsSink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink()
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(
			cfg.Metrics.InfluxURL, cfg.Metrics.InfluxToken, cfg.Metrics.InfluxOrg, cfg.Metrics.InfluxBucket))
	}
	var sink coremetrics.MetricsSink = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	client, err := api.New(cfg.API, sink)
	if err != nil {
		return nil, fmt.Errorf("api client: %w", err)
	}

	bus := eventbus.New[provision.Event]()
	prov := provision.New(client, cfg.Provision, bus, logger.New("provision"))

	return &Service{
		Cfg:         cfg,
		Client:      client,
		Registry:    render.NewRegistry(),
		Provisioner: prov,
		Bus:         bus,
		sink:        sink,
		log:         logg,
	}, nil
}

// StartMetrics serves /metrics until ctx is canceled when Prometheus is
// enabled.
func (s *Service) StartMetrics(ctx context.Context) {
	if !s.Cfg.Metrics.PrometheusEnabled {
		return
	}
	go func() {
		if err := metrics.StartPromServer(ctx, s.Cfg.Metrics.PrometheusAddr); err != nil {
			s.log.Errorf("prom server: %v", err)
		}
	}()
}

// ExportPath resolves a document filename against the configured output
// directory.
func (s *Service) ExportPath(name string) string {
	return filepath.Join(s.Cfg.Export.OutputDir, name)
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	s.Bus.Close()
	return s.sink.Close()
}
