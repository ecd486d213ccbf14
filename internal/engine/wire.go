//go:build wireinject
// +build wireinject

package engine

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/config"
)

// Initialize builds an Engine from configuration.
func Initialize(cfg config.Config, logger *zap.Logger, reg prometheus.Registerer) (*Engine, error) {
	wire.Build(ProviderSet)
	return nil, nil
}
