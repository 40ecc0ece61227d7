package di

import (
	"go.uber.org/zap"

	"skilltree-backend/application/core"
	"skilltree-backend/infrastructure/config"
	"skilltree-backend/infrastructure/treeservice"
	"skilltree-backend/pkg/observability"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var logger *zap.Logger
	var err error

	if cfg.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, err
	}

	return logger, nil
}

// ProvideMetrics creates the Prometheus metrics collector
func ProvideMetrics() *observability.Collector {
	return observability.NewCollector("skilltree")
}

// ProvideTreeService creates the HTTP client for the remote graph service
func ProvideTreeService(cfg *config.Config, metrics *observability.Collector, logger *zap.Logger) core.TreeService {
	return treeservice.NewClient(
		cfg.GraphServiceURL,
		cfg.RequestTimeout,
		metrics,
		logger,
	)
}

// ProvideCore creates the application core
func ProvideCore(svc core.TreeService, cfg *config.Config, metrics *observability.Collector, logger *zap.Logger) *core.Core {
	return core.New(svc, cfg.EntryNodeID, metrics, logger)
}
