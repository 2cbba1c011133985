package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	domainErrors "github.com/polkiloo/shopdash/internal/domain/errors"
	"github.com/polkiloo/shopdash/internal/domain/model"
	"github.com/polkiloo/shopdash/internal/domain/repository"
	"github.com/polkiloo/shopdash/internal/orderview"
)

// SessionStore holds controllers of live order views.
type SessionStore interface {
	Create(controller *orderview.Controller) (string, error)
	With(id string, fn func(*orderview.Controller) error) error
	Delete(id string) error
}

// FetchObserver is notified about every order source fetch.
type FetchObserver interface {
	ObserveFetch(err error)
}

// OrderUseCase drives order table views.
type OrderUseCase struct {
	orders   repository.OrderRepository
	sessions SessionStore
	observer FetchObserver
	logger   *slog.Logger
	now      func() time.Time
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, sessions SessionStore, observer FetchObserver, logger *slog.Logger) *OrderUseCase {
	return &OrderUseCase{orders: orders, sessions: sessions, observer: observer, logger: logger, now: time.Now}
}

// Query renders a one-off projection without keeping state.
func (u *OrderUseCase) Query(ctx context.Context, q orderview.Query) (orderview.View, error) {
	base, err := u.load(ctx)
	if err != nil {
		return orderview.View{}, err
	}
	c := orderview.NewController(base, orderview.WithClock(u.now), orderview.WithQuery(q))
	c.GoToPage(q.Page)
	return c.View(), nil
}

// CreateView fetches the base collection once and opens a view session.
func (u *OrderUseCase) CreateView(ctx context.Context, q orderview.Query) (string, orderview.View, error) {
	base, err := u.load(ctx)
	if err != nil {
		return "", orderview.View{}, err
	}
	c := orderview.NewController(base, orderview.WithClock(u.now), orderview.WithQuery(q))
	c.GoToPage(q.Page)

	id, err := u.sessions.Create(c)
	if err != nil {
		return "", orderview.View{}, err
	}
	u.logger.Debug("order view created", slog.String("session", id), slog.Int("orders", len(base)))
	return id, c.View(), nil
}

// View returns the current projection of a session.
func (u *OrderUseCase) View(ctx context.Context, id string) (orderview.View, error) {
	return u.Apply(ctx, id)
}

// Apply runs ops in order against the session and returns the new projection.
func (u *OrderUseCase) Apply(ctx context.Context, id string, ops ...orderview.Operation) (orderview.View, error) {
	if err := ctx.Err(); err != nil {
		return orderview.View{}, err
	}
	if !ValidateSessionID(id) {
		return orderview.View{}, domainErrors.ErrSessionNotFound
	}
	var view orderview.View
	err := u.sessions.With(id, func(c *orderview.Controller) error {
		for _, op := range ops {
			op(c)
		}
		view = c.View()
		return nil
	})
	return view, err
}

// CloseView drops a session.
func (u *OrderUseCase) CloseView(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !ValidateSessionID(id) {
		return domainErrors.ErrSessionNotFound
	}
	return u.sessions.Delete(id)
}

func (u *OrderUseCase) load(ctx context.Context) ([]model.Order, error) {
	base, err := u.orders.List(ctx)
	if u.observer != nil {
		u.observer.ObserveFetch(err)
	}
	if err != nil {
		u.logger.Error("load orders failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("load orders: %w", err)
	}
	return base, nil
}

// SetSearch replaces the search text.
func SetSearch(text string) orderview.Operation {
	return func(c *orderview.Controller) { c.SetSearch(text) }
}

// SetSort changes sort key and direction. A blank key or direction keeps the
// current one.
func SetSort(key orderview.SortKey, dir orderview.SortDirection) orderview.Operation {
	return func(c *orderview.Controller) {
		k := key
		if k == "" {
			k = c.Query().SortKey
		}
		c.SetSort(k, dir)
	}
}

// ToggleSortDirection flips the sort direction.
func ToggleSortDirection() orderview.Operation {
	return func(c *orderview.Controller) { c.ToggleSortDirection() }
}

// GoToPage jumps to page n.
func GoToPage(n int) orderview.Operation {
	return func(c *orderview.Controller) { c.GoToPage(n) }
}

// NextPage advances one page.
func NextPage() orderview.Operation {
	return func(c *orderview.Controller) { c.GoToNext() }
}

// PreviousPage goes back one page.
func PreviousPage() orderview.Operation {
	return func(c *orderview.Controller) { c.GoToPrevious() }
}

// ToggleSelection flips selection of one order.
func ToggleSelection(orderID string) orderview.Operation {
	return func(c *orderview.Controller) { c.ToggleSelection(orderID) }
}

// ToggleVisibleSelection applies select-all to the visible page.
func ToggleVisibleSelection() orderview.Operation {
	return func(c *orderview.Controller) { c.ToggleSelectAllVisible() }
}
