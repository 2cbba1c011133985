package repository

import (
	"context"

	"github.com/polkiloo/shopdash/internal/domain/model"
)

// OrderRepository is the data source of the order table. It returns the
// complete base collection; filtering and paging happen in memory.
type OrderRepository interface {
	List(ctx context.Context) ([]model.Order, error)
}

// HealthChecker reports whether the order source is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
