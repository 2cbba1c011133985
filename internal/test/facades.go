package test

import (
	"context"

	"github.com/polkiloo/shopdash/internal/domain/model"
	"github.com/polkiloo/shopdash/internal/orderview"
)

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	Orders []model.Order

	TableFn  func(context.Context, orderview.Query) (orderview.View, error)
	OpenFn   func(context.Context, orderview.Query) (string, orderview.View, error)
	ViewFn   func(context.Context, string) (orderview.View, error)
	UpdateFn func(context.Context, string, ...orderview.Operation) (orderview.View, error)
	CloseFn  func(context.Context, string) error
}

func (s OrderFacadeStub) controller(q orderview.Query) *orderview.Controller {
	c := orderview.NewController(s.Orders, orderview.WithQuery(q))
	c.GoToPage(q.Page)
	return c
}

// OrderTable delegates to override or projects configured orders.
func (s OrderFacadeStub) OrderTable(ctx context.Context, q orderview.Query) (orderview.View, error) {
	if s.TableFn != nil {
		return s.TableFn(ctx, q)
	}
	return s.controller(q).View(), nil
}

// OpenOrderView delegates to override or returns a fixed session id.
func (s OrderFacadeStub) OpenOrderView(ctx context.Context, q orderview.Query) (string, orderview.View, error) {
	if s.OpenFn != nil {
		return s.OpenFn(ctx, q)
	}
	return "session", s.controller(q).View(), nil
}

// OrderView delegates to override or renders the default view.
func (s OrderFacadeStub) OrderView(ctx context.Context, id string) (orderview.View, error) {
	if s.ViewFn != nil {
		return s.ViewFn(ctx, id)
	}
	return s.controller(orderview.DefaultQuery()).View(), nil
}

// UpdateOrderView delegates to override or applies ops to a fresh controller.
func (s OrderFacadeStub) UpdateOrderView(ctx context.Context, id string, ops ...orderview.Operation) (orderview.View, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, ops...)
	}
	c := s.controller(orderview.DefaultQuery())
	for _, op := range ops {
		op(c)
	}
	return c.View(), nil
}

// CloseOrderView delegates to override.
func (s OrderFacadeStub) CloseOrderView(ctx context.Context, id string) error {
	if s.CloseFn != nil {
		return s.CloseFn(ctx, id)
	}
	return nil
}

// OverviewFacadeStub simulates dashboard widgets.
type OverviewFacadeStub struct {
	DashboardValue   *model.Dashboard
	NotificationList []model.Notification
	ActivityList     []model.ActivityEntry
	ContactList      []model.User
	Err              error
}

// Dashboard returns configured dashboard.
func (s OverviewFacadeStub) Dashboard(ctx context.Context) (*model.Dashboard, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.DashboardValue == nil {
		return &model.Dashboard{}, nil
	}
	return s.DashboardValue, nil
}

// Notifications returns configured notifications.
func (s OverviewFacadeStub) Notifications(ctx context.Context) ([]model.Notification, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.NotificationList, nil
}

// Activities returns configured activities.
func (s OverviewFacadeStub) Activities(ctx context.Context) ([]model.ActivityEntry, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.ActivityList, nil
}

// Contacts returns configured contacts.
func (s OverviewFacadeStub) Contacts(ctx context.Context) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.ContactList, nil
}

// HealthFacadeStub reports a fixed health state.
type HealthFacadeStub struct {
	Err error
}

// Health returns configured error.
func (s HealthFacadeStub) Health(ctx context.Context) error {
	return s.Err
}

// DashboardFacadeStub aggregates facade dependencies for HTTP layer tests.
type DashboardFacadeStub struct {
	OrderFacadeStub
	OverviewFacadeStub
	HealthFacadeStub
}
