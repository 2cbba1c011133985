package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/shopdash/internal/app"
	"github.com/polkiloo/shopdash/internal/config"
	"github.com/polkiloo/shopdash/internal/logger"
	"github.com/polkiloo/shopdash/internal/metrics"
	"github.com/polkiloo/shopdash/internal/server/http/router"
	"github.com/polkiloo/shopdash/internal/session"
	"github.com/polkiloo/shopdash/internal/storage"
	"github.com/polkiloo/shopdash/internal/usecase"
)

// Module composes the application graph. Extra options are appended last so
// tests can replace any component.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		metrics.Module,
		storage.Module,
		session.Module,
		fx.Provide(
			func(s *session.Store) usecase.SessionStore { return s },
			func(m *metrics.Metrics) usecase.FetchObserver { return m },
		),
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
