package memory

import (
	"log/slog"
	"time"

	"go.uber.org/fx"

	"github.com/polkiloo/shopdash/internal/config"
	"github.com/polkiloo/shopdash/internal/domain/repository"
)

// Module wires fixture storage and the repositories it always serves.
// The order repository is chosen by the storage selector.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(
		func(s *Storage) repository.Factory { return s },
		func(s *Storage) repository.UserRepository { return s.Users() },
		func(s *Storage) repository.DashboardRepository { return s.Dashboards() },
		func(s *Storage) repository.NotificationRepository { return s.Notifications() },
		func(s *Storage) repository.ActivityRepository { return s.Activities() },
	),
)

type storageParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) *Storage {
	return New(p.Config.SeedOrders, time.Now, p.Logger)
}
