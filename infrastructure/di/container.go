package di

import (
	"go.uber.org/zap"

	"skilltree-backend/application/core"
	"skilltree-backend/infrastructure/config"
	"skilltree-backend/pkg/observability"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	Metrics     *observability.Collector
	TreeService core.TreeService
	Core        *core.Core
}
