package memory

import (
	"context"
	"log/slog"
	"time"

	domainErrors "github.com/polkiloo/shopdash/internal/domain/errors"
	"github.com/polkiloo/shopdash/internal/domain/model"
	"github.com/polkiloo/shopdash/internal/domain/repository"
)

// Storage serves fixture data from memory. Orders are generated once and never
// change; notifications and activities are computed relative to the clock on
// every call.
type Storage struct {
	orders    []model.Order
	users     []model.User
	dashboard model.Dashboard
	now       func() time.Time
	logger    *slog.Logger
}

type orderRepository struct {
	storage *Storage
}

type userRepository struct {
	storage *Storage
}

type dashboardRepository struct {
	storage *Storage
}

type notificationRepository struct {
	storage *Storage
}

type activityRepository struct {
	storage *Storage
}

// New builds storage with orderCount generated orders.
func New(orderCount int, now func() time.Time, logger *slog.Logger) *Storage {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &Storage{
		orders:    GenerateOrders(orderCount, now()),
		users:     Users(),
		dashboard: Dashboard(),
		now:       now,
		logger:    logger,
	}
	logger.Debug("fixture storage ready", slog.Int("orders", len(s.orders)))
	return s
}

// Factory methods for domain repositories.
func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Dashboards() repository.DashboardRepository {
	return &dashboardRepository{storage: s}
}

func (s *Storage) Notifications() repository.NotificationRepository {
	return &notificationRepository{storage: s}
}

func (s *Storage) Activities() repository.ActivityRepository {
	return &activityRepository{storage: s}
}

// SeedOrders returns a copy of the generated orders.
func (s *Storage) SeedOrders() []model.Order {
	out := make([]model.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// HealthCheck always succeeds unless ctx is done.
func (s *Storage) HealthCheck(ctx context.Context) error {
	return ctx.Err()
}

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.storage.SeedOrders(), nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]model.User, len(r.storage.users))
	copy(out, r.storage.users)
	return out, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, u := range r.storage.users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (r *dashboardRepository) Get(ctx context.Context) (*model.Dashboard, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d := r.storage.dashboard
	return &d, nil
}

func (r *notificationRepository) List(ctx context.Context) ([]model.Notification, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Notifications(r.storage.now()), nil
}

func (r *activityRepository) List(ctx context.Context) ([]model.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Activities(r.storage.now()), nil
}
