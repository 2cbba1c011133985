package storage

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/shopdash/internal/adapter/source"
	"github.com/polkiloo/shopdash/internal/config"
	"github.com/polkiloo/shopdash/internal/domain/repository"
	"github.com/polkiloo/shopdash/internal/storage/memory"
	"github.com/polkiloo/shopdash/internal/storage/postgres"
)

// Module provides fixture repositories and an order source chosen by config.
var Module = fx.Options(
	memory.Module,
	fx.Provide(newOrderSource),
)

type sourceParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Ctx       context.Context
	Config    *config.Config
	Logger    *slog.Logger
	Fixtures  *memory.Storage
}

type sourceResult struct {
	fx.Out

	Orders repository.OrderRepository
	Health repository.HealthChecker
}

func newOrderSource(p sourceParams) (sourceResult, error) {
	kind := p.Config.OrderSource()
	p.Logger.Info("order source selected", slog.String("source", string(kind)))

	switch kind {
	case config.SourcePostgres:
		st, err := postgres.Open(p.Ctx, p.Lifecycle, p.Config.DatabaseURI, p.Fixtures.SeedOrders(), p.Logger)
		if err != nil {
			return sourceResult{}, err
		}
		return sourceResult{Orders: st.Orders(), Health: st}, nil
	case config.SourceHTTP:
		client, err := source.NewHTTPClient(p.Config.OrderSourceAddress, p.Logger)
		if err != nil {
			return sourceResult{}, err
		}
		return sourceResult{Orders: client, Health: client}, nil
	default:
		return sourceResult{Orders: p.Fixtures.Orders(), Health: p.Fixtures}, nil
	}
}
