package postgres

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/shopdash/internal/domain/model"
)

// Open connects to dsn, seeds an empty orders table and closes the pool when
// the application stops.
func Open(ctx context.Context, lc fx.Lifecycle, dsn string, seed []model.Order, logger *slog.Logger) (*Storage, error) {
	storage, err := New(ctx, dsn, logger)
	if err != nil {
		return nil, err
	}
	if _, err := storage.Seed(ctx, seed); err != nil {
		storage.Close()
		return nil, err
	}
	registerLifecycle(lc, storage)
	return storage, nil
}

func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})
}
