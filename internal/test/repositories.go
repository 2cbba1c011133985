package test

import (
	"context"
	"sync/atomic"

	domainErrors "github.com/polkiloo/shopdash/internal/domain/errors"
	"github.com/polkiloo/shopdash/internal/domain/model"
)

// OrderRepositoryStub returns a fixed order collection.
type OrderRepositoryStub struct {
	Orders []model.Order
	Err    error
	ListFn func(context.Context) ([]model.Order, error)

	calls int32
}

// List returns configured orders or error.
func (s *OrderRepositoryStub) List(ctx context.Context) ([]model.Order, error) {
	atomic.AddInt32(&s.calls, 1)
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.Order, len(s.Orders))
	copy(out, s.Orders)
	return out, nil
}

// Calls reports how many times List was invoked.
func (s *OrderRepositoryStub) Calls() int {
	return int(atomic.LoadInt32(&s.calls))
}

// UserRepositoryStub serves users from memory.
type UserRepositoryStub struct {
	Users []model.User
	Err   error
}

// List returns configured users.
func (s UserRepositoryStub) List(ctx context.Context) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Users, nil
}

// GetByID looks a user up by identifier.
func (s UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, u := range s.Users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// DashboardRepositoryStub returns a fixed dashboard.
type DashboardRepositoryStub struct {
	Dashboard *model.Dashboard
	Err       error
}

// Get returns configured dashboard.
func (s DashboardRepositoryStub) Get(ctx context.Context) (*model.Dashboard, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Dashboard == nil {
		return &model.Dashboard{}, nil
	}
	return s.Dashboard, nil
}

// NotificationRepositoryStub returns fixed notifications.
type NotificationRepositoryStub struct {
	Notifications []model.Notification
	Err           error
}

// List returns configured notifications.
func (s NotificationRepositoryStub) List(ctx context.Context) ([]model.Notification, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Notifications, nil
}

// ActivityRepositoryStub returns fixed activities.
type ActivityRepositoryStub struct {
	Activities []model.Activity
	Err        error
}

// List returns configured activities.
func (s ActivityRepositoryStub) List(ctx context.Context) ([]model.Activity, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Activities, nil
}

// HealthCheckerStub reports a fixed health state.
type HealthCheckerStub struct {
	Err error
}

// HealthCheck returns configured error.
func (s HealthCheckerStub) HealthCheck(ctx context.Context) error {
	return s.Err
}
