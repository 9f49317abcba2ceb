package app

import (
	"context"
	"fmt"

	"github.com/jmartal/chargeplan/config"
	"github.com/jmartal/chargeplan/core/charge"
	coremetrics "github.com/jmartal/chargeplan/core/metrics"
	"github.com/jmartal/chargeplan/core/model"
	"github.com/jmartal/chargeplan/core/planner"
	corestation "github.com/jmartal/chargeplan/core/station"
	"github.com/jmartal/chargeplan/infra/logger"
	"github.com/jmartal/chargeplan/infra/metrics"
	"github.com/jmartal/chargeplan/infra/station"
)

// TripRequest is the input to a planning call.
type TripRequest struct {
	Waypoints    []model.GeoPoint     `json:"waypoints"`
	StartPercent float64              `json:"startPercent"`
	Profile      model.VehicleProfile `json:"profile"`
}

// Service wires the configuration into a ready-to-use planner.
type Service struct {
	Planner   *planner.Planner
	directory *station.Directory
	log       logger.Logger
	promAddr  string
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	sink, err := coremetrics.NewMetricsSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}

	directory, err := station.NewDirectory(cfg.Provider, logger.New("station-directory"), sink)
	if err != nil {
		return nil, fmt.Errorf("station directory: %w", err)
	}

	formatter := corestation.NewFormatter(charge.NewCurve(cfg.Curve), cfg.CatalogProfile)
	pl, err := planner.New(cfg.Planner, directory, formatter, logger.New("planner"), sink)
	if err != nil {
		directory.Close()
		return nil, fmt.Errorf("planner: %w", err)
	}

	return &Service{Planner: pl, directory: directory, log: logg, promAddr: cfg.PromAddr}, nil
}

// Plan computes a charging plan for the request.
func (s *Service) Plan(ctx context.Context, req TripRequest) (model.ChargingPlan, error) {
	return s.Planner.Plan(ctx, req.Waypoints, req.StartPercent, req.Profile)
}

// Run exposes the Prometheus endpoint, when configured, until the context is
// canceled.
func (s *Service) Run(ctx context.Context) error {
	if s.promAddr == "" {
		<-ctx.Done()
		return nil
	}
	return metrics.StartPromServer(ctx, s.promAddr)
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	s.directory.Close()
	return nil
}
