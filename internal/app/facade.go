package app

import (
	"context"

	"github.com/polkiloo/shopdash/internal/domain/model"
	"github.com/polkiloo/shopdash/internal/domain/repository"
	"github.com/polkiloo/shopdash/internal/orderview"
	"github.com/polkiloo/shopdash/internal/usecase"
)

// DashboardFacade joins the use cases behind the HTTP API.
type DashboardFacade struct {
	orders   *usecase.OrderUseCase
	overview *usecase.OverviewUseCase
	health   repository.HealthChecker
}

// NewDashboardFacade constructs DashboardFacade.
func NewDashboardFacade(orders *usecase.OrderUseCase, overview *usecase.OverviewUseCase, health repository.HealthChecker) *DashboardFacade {
	return &DashboardFacade{orders: orders, overview: overview, health: health}
}

func (f *DashboardFacade) OrderTable(ctx context.Context, q orderview.Query) (orderview.View, error) {
	return f.orders.Query(ctx, q)
}

func (f *DashboardFacade) OpenOrderView(ctx context.Context, q orderview.Query) (string, orderview.View, error) {
	return f.orders.CreateView(ctx, q)
}

func (f *DashboardFacade) OrderView(ctx context.Context, id string) (orderview.View, error) {
	return f.orders.View(ctx, id)
}

func (f *DashboardFacade) UpdateOrderView(ctx context.Context, id string, ops ...orderview.Operation) (orderview.View, error) {
	return f.orders.Apply(ctx, id, ops...)
}

func (f *DashboardFacade) CloseOrderView(ctx context.Context, id string) error {
	return f.orders.CloseView(ctx, id)
}

func (f *DashboardFacade) Dashboard(ctx context.Context) (*model.Dashboard, error) {
	return f.overview.Dashboard(ctx)
}

func (f *DashboardFacade) Notifications(ctx context.Context) ([]model.Notification, error) {
	return f.overview.Notifications(ctx)
}

func (f *DashboardFacade) Activities(ctx context.Context) ([]model.ActivityEntry, error) {
	return f.overview.Activities(ctx)
}

func (f *DashboardFacade) Contacts(ctx context.Context) ([]model.User, error) {
	return f.overview.Contacts(ctx)
}

func (f *DashboardFacade) Health(ctx context.Context) error {
	if f.health == nil {
		return nil
	}
	return f.health.HealthCheck(ctx)
}
