package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	domainErrors "github.com/polkiloo/shopdash/internal/domain/errors"
	"github.com/polkiloo/shopdash/internal/domain/model"
	"github.com/polkiloo/shopdash/internal/orderview"
	"github.com/polkiloo/shopdash/internal/session"
	testhelpers "github.com/polkiloo/shopdash/internal/test"
)

var testNow = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

type observerStub struct {
	calls []error
}

func (o *observerStub) ObserveFetch(err error) {
	o.calls = append(o.calls, err)
}

func testOrders(n int) []model.Order {
	orders := make([]model.Order, n)
	for i := range orders {
		status := model.OrderStatusComplete
		if i%9 == 0 {
			status = model.OrderStatusPending
		}
		orders[i] = model.Order{
			ID:      fmt.Sprintf("ORD-%04d", i+1),
			User:    model.OrderOwner{Name: "Natali Craig"},
			Project: "Landing Page",
			Address: "Meadow Lane Oakland",
			Date:    testNow.Add(-time.Duration(i+1) * 36 * time.Hour),
			Status:  status,
		}
	}
	return orders
}

func newOrderUseCase(repo *testhelpers.OrderRepositoryStub, store SessionStore, observer FetchObserver) *OrderUseCase {
	uc := NewOrderUseCase(repo, store, observer, slog.New(slog.NewJSONHandler(io.Discard, nil)))
	uc.now = func() time.Time { return testNow }
	return uc
}

func newSessionStore(max int) *session.Store {
	return session.NewStore(session.Options{MaxSessions: max, TTL: time.Minute})
}

func TestOrderUseCaseQuery(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{Orders: testOrders(45)}
	observer := &observerStub{}
	uc := newOrderUseCase(repo, newSessionStore(1), observer)

	view, err := uc.Query(context.Background(), orderview.Query{Search: "pending", SortKey: orderview.SortKeyDate, Direction: orderview.SortDescending, Page: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.FilteredItems != 5 || view.TotalItems != 45 {
		t.Fatalf("expected 5 of 45, got %d of %d", view.FilteredItems, view.TotalItems)
	}
	if view.Page != 1 || view.TotalPages != 1 {
		t.Fatalf("expected page clamped to 1/1, got %d/%d", view.Page, view.TotalPages)
	}
	if !view.IsFiltered {
		t.Fatal("expected filtered view")
	}
	if len(observer.calls) != 1 || observer.calls[0] != nil {
		t.Fatalf("expected one successful fetch observed, got %v", observer.calls)
	}
}

func TestOrderUseCaseQueryHonoursPage(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{Orders: testOrders(45)}
	uc := newOrderUseCase(repo, newSessionStore(1), nil)

	view, err := uc.Query(context.Background(), orderview.Query{Page: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Page != 5 || len(view.Rows) != 5 {
		t.Fatalf("expected last page with 5 rows, got page %d with %d rows", view.Page, len(view.Rows))
	}
	if view.RangeStart != 41 || view.RangeEnd != 45 {
		t.Fatalf("expected range 41-45, got %d-%d", view.RangeStart, view.RangeEnd)
	}
}

func TestOrderUseCaseCreateView(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{Orders: testOrders(45)}
	store := newSessionStore(10)
	uc := newOrderUseCase(repo, store, nil)

	id, view, err := uc.CreateView(context.Background(), orderview.Query{Page: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ValidateSessionID(id) {
		t.Fatalf("expected uuid session id, got %q", id)
	}
	if view.Page != 2 {
		t.Fatalf("expected page 2, got %d", view.Page)
	}
	if store.Len() != 1 {
		t.Fatalf("expected one session, got %d", store.Len())
	}

	again, err := uc.View(context.Background(), id)
	if err != nil {
		t.Fatalf("view returned error: %v", err)
	}
	if again.Page != 2 {
		t.Fatalf("expected session to keep page 2, got %d", again.Page)
	}
	if repo.Calls() != 1 {
		t.Fatalf("expected base collection fetched once, got %d", repo.Calls())
	}
}

func TestOrderUseCaseCreateViewFetchFailure(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{Err: domainErrors.ErrSourceUnavailable}
	store := newSessionStore(10)
	observer := &observerStub{}
	uc := newOrderUseCase(repo, store, observer)

	_, _, err := uc.CreateView(context.Background(), orderview.DefaultQuery())
	if !errors.Is(err, domainErrors.ErrSourceUnavailable) {
		t.Fatalf("expected source unavailable, got %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("expected no session to be created, got %d", store.Len())
	}
	if len(observer.calls) != 1 || observer.calls[0] == nil {
		t.Fatalf("expected failed fetch observed, got %v", observer.calls)
	}
}

func TestOrderUseCaseCreateViewStoreFull(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{Orders: testOrders(3)}
	uc := newOrderUseCase(repo, newSessionStore(1), nil)

	if _, _, err := uc.CreateView(context.Background(), orderview.DefaultQuery()); err != nil {
		t.Fatalf("first view failed: %v", err)
	}
	if _, _, err := uc.CreateView(context.Background(), orderview.DefaultQuery()); !errors.Is(err, domainErrors.ErrTooManySessions) {
		t.Fatalf("expected too many sessions, got %v", err)
	}
}

func TestOrderUseCaseApply(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{Orders: testOrders(45)}
	uc := newOrderUseCase(repo, newSessionStore(10), nil)
	ctx := context.Background()

	id, _, err := uc.CreateView(ctx, orderview.DefaultQuery())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	view, err := uc.Apply(ctx, id, NextPage(), NextPage())
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if view.Page != 3 {
		t.Fatalf("expected page 3, got %d", view.Page)
	}

	view, err = uc.Apply(ctx, id, PreviousPage())
	if err != nil || view.Page != 2 {
		t.Fatalf("expected page 2, got %d err=%v", view.Page, err)
	}

	view, err = uc.Apply(ctx, id, SetSort(orderview.SortKeyID, orderview.SortAscending))
	if err != nil {
		t.Fatalf("sort failed: %v", err)
	}
	if view.Page != 1 || view.Rows[0].ID != "ORD-0001" {
		t.Fatalf("expected first page sorted by id, got page %d first %s", view.Page, view.Rows[0].ID)
	}

	view, err = uc.Apply(ctx, id, ToggleSortDirection())
	if err != nil || view.Rows[0].ID != "ORD-0045" {
		t.Fatalf("expected descending ids, got %v err=%v", view.Rows, err)
	}

	view, err = uc.Apply(ctx, id, ToggleSelection("ORD-0045"), ToggleVisibleSelection())
	if err != nil {
		t.Fatalf("selection failed: %v", err)
	}
	if view.SelectedCount != 10 || !view.AllSelected {
		t.Fatalf("expected whole page selected, got %d all=%v", view.SelectedCount, view.AllSelected)
	}

	view, err = uc.Apply(ctx, id, SetSearch("pending"), GoToPage(9))
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if view.FilteredItems != 5 || view.Page != 1 {
		t.Fatalf("expected 5 filtered on page 1, got %d on %d", view.FilteredItems, view.Page)
	}
	if view.SelectedCount != 10 {
		t.Fatalf("expected selection to survive search, got %d", view.SelectedCount)
	}
}

func TestOrderUseCaseUnknownSession(t *testing.T) {
	uc := newOrderUseCase(&testhelpers.OrderRepositoryStub{}, newSessionStore(1), nil)
	ctx := context.Background()

	for _, id := range []string{"not-a-uuid", "6f1d2c1e-7b1a-4a7e-9d55-0f7c7e4b8a10"} {
		if _, err := uc.View(ctx, id); !errors.Is(err, domainErrors.ErrSessionNotFound) {
			t.Fatalf("expected not found for %q, got %v", id, err)
		}
		if err := uc.CloseView(ctx, id); !errors.Is(err, domainErrors.ErrSessionNotFound) {
			t.Fatalf("expected not found on close for %q, got %v", id, err)
		}
	}
}

func TestOrderUseCaseCloseView(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{Orders: testOrders(2)}
	store := newSessionStore(10)
	uc := newOrderUseCase(repo, store, nil)
	ctx := context.Background()

	id, _, err := uc.CreateView(ctx, orderview.DefaultQuery())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := uc.CloseView(ctx, id); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if _, err := uc.View(ctx, id); !errors.Is(err, domainErrors.ErrSessionNotFound) {
		t.Fatalf("expected closed session to be gone, got %v", err)
	}
}

func TestOrderUseCaseCancelledContext(t *testing.T) {
	uc := newOrderUseCase(&testhelpers.OrderRepositoryStub{}, newSessionStore(1), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := uc.Apply(ctx, "6f1d2c1e-7b1a-4a7e-9d55-0f7c7e4b8a10"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled, got %v", err)
	}
	if err := uc.CloseView(ctx, "6f1d2c1e-7b1a-4a7e-9d55-0f7c7e4b8a10"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled on close, got %v", err)
	}
}

var _ SessionStore = (*session.Store)(nil)

func TestSetSortKeepsBlankParts(t *testing.T) {
	c := orderview.NewController(testOrders(12), orderview.WithClock(func() time.Time { return testNow }))

	SetSort("", orderview.SortAscending)(c)
	if q := c.Query(); q.SortKey != orderview.SortKeyDate || q.Direction != orderview.SortAscending {
		t.Fatalf("expected date asc, got %s %s", q.SortKey, q.Direction)
	}

	SetSort(orderview.SortKeyUser, "")(c)
	if q := c.Query(); q.SortKey != orderview.SortKeyUser || q.Direction != orderview.SortAscending {
		t.Fatalf("expected user asc, got %s %s", q.SortKey, q.Direction)
	}
}
