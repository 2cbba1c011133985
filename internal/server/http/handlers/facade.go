package handlers

import (
	"context"

	"github.com/polkiloo/shopdash/internal/domain/model"
	"github.com/polkiloo/shopdash/internal/orderview"
)

// OrderFacade exposes order table operations via HTTP.
type OrderFacade interface {
	OrderTable(ctx context.Context, q orderview.Query) (orderview.View, error)
	OpenOrderView(ctx context.Context, q orderview.Query) (string, orderview.View, error)
	OrderView(ctx context.Context, id string) (orderview.View, error)
	UpdateOrderView(ctx context.Context, id string, ops ...orderview.Operation) (orderview.View, error)
	CloseOrderView(ctx context.Context, id string) error
}

// OverviewFacade provides dashboard widgets and side panels.
type OverviewFacade interface {
	Dashboard(ctx context.Context) (*model.Dashboard, error)
	Notifications(ctx context.Context) ([]model.Notification, error)
	Activities(ctx context.Context) ([]model.ActivityEntry, error)
	Contacts(ctx context.Context) ([]model.User, error)
}

// HealthFacade reports readiness of the order source.
type HealthFacade interface {
	Health(ctx context.Context) error
}

// DashboardFacade aggregates the full set of operations used across handlers.
type DashboardFacade interface {
	OrderFacade
	OverviewFacade
	HealthFacade
}
