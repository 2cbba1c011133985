package session

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/shopdash/internal/config"
	"github.com/polkiloo/shopdash/internal/metrics"
)

// Module provides the view session store.
var Module = fx.Provide(newStore)

type storeParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

func newStore(p storeParams) *Store {
	return NewStore(Options{
		MaxSessions: p.Config.MaxSessions,
		TTL:         p.Config.SessionTTL,
		Gauge:       p.Metrics.Sessions,
		Logger:      p.Logger,
	})
}
