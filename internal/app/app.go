package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/shopdash/internal/config"
	"github.com/polkiloo/shopdash/internal/metrics"
	"github.com/polkiloo/shopdash/internal/server/http/handlers"
	"github.com/polkiloo/shopdash/internal/session"
	"github.com/polkiloo/shopdash/internal/worker"
)

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		NewDashboardFacade,
		func(f *DashboardFacade) handlers.DashboardFacade { return f },
		newHTTPServer,
		newSessionJanitor,
	),
	fx.Invoke(registerLifecycle),
)

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Router,
	}
}

type janitorParams struct {
	fx.In

	Store   *session.Store
	Config  *config.Config
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

func newSessionJanitor(p janitorParams) *worker.SessionJanitor {
	return worker.NewSessionJanitor(p.Store, p.Config.SessionSweepInterval, p.Metrics.Evictions, p.Logger)
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Janitor    *worker.SessionJanitor
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting shopdash",
				slog.String("addr", p.Server.Addr),
				slog.String("order_source", string(p.Config.OrderSource())),
			)
			// The janitor outlives the start context.
			p.Janitor.Start(context.WithoutCancel(ctx))
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			p.Janitor.Stop()

			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			if err := p.Server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			p.Logger.Info("shopdash stopped")
			return nil
		},
	})
}
