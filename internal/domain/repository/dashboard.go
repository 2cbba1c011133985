package repository

import (
	"context"

	"github.com/polkiloo/shopdash/internal/domain/model"
)

// DashboardRepository provides aggregated overview metrics.
type DashboardRepository interface {
	Get(ctx context.Context) (*model.Dashboard, error)
}

// NotificationRepository lists navbar notifications.
type NotificationRepository interface {
	List(ctx context.Context) ([]model.Notification, error)
}

// ActivityRepository lists recent user activities.
type ActivityRepository interface {
	List(ctx context.Context) ([]model.Activity, error)
}
