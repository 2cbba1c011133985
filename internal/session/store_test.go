package session

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	domainErrors "github.com/polkiloo/shopdash/internal/domain/errors"
	"github.com/polkiloo/shopdash/internal/domain/model"
	"github.com/polkiloo/shopdash/internal/orderview"
	"github.com/polkiloo/shopdash/internal/test"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type recordingGauge struct {
	mu    sync.Mutex
	value float64
}

func (g *recordingGauge) Set(v float64) {
	g.mu.Lock()
	g.value = v
	g.mu.Unlock()
}

func (g *recordingGauge) Value() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.value
}

func newController() *orderview.Controller {
	orders := make([]model.Order, 25)
	for i := range orders {
		orders[i] = model.Order{ID: fmt.Sprintf("ORD-%04d", i+1), Date: time.Unix(int64(1000-i), 0)}
	}
	return orderview.NewController(orders)
}

func TestStoreCreateAndWith(t *testing.T) {
	gauge := &recordingGauge{}
	store := NewStore(Options{MaxSessions: 2, TTL: time.Minute, Gauge: gauge})

	id, err := store.Create(newController())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == "" || store.Len() != 1 || gauge.Value() != 1 {
		t.Fatalf("unexpected state id=%q len=%d gauge=%v", id, store.Len(), gauge.Value())
	}

	err = store.With(id, func(c *orderview.Controller) error {
		c.GoToNext()
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var page int
	_ = store.With(id, func(c *orderview.Controller) error {
		page = c.View().Page
		return nil
	})
	if page != 2 {
		t.Fatalf("expected state to persist, got page %d", page)
	}

	sentinel := errors.New("stop")
	if err := store.With(id, func(*orderview.Controller) error { return sentinel }); !errors.Is(err, sentinel) {
		t.Fatalf("expected callback error, got %v", err)
	}
}

func TestStoreUnknownSession(t *testing.T) {
	store := NewStore(Options{})
	if err := store.With("missing", func(*orderview.Controller) error { return nil }); !errors.Is(err, domainErrors.ErrSessionNotFound) {
		t.Fatalf("expected session not found, got %v", err)
	}
	if err := store.Delete("missing"); !errors.Is(err, domainErrors.ErrSessionNotFound) {
		t.Fatalf("expected session not found, got %v", err)
	}
}

func TestStoreUsesInjectedIDs(t *testing.T) {
	var issued []string
	store := NewStore(Options{NewID: func() string {
		id := test.RandomASCIIString(16, 16)
		issued = append(issued, id)
		return id
	}})

	for range 3 {
		id, err := store.Create(newController())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != issued[len(issued)-1] || len(id) != 16 {
			t.Fatalf("expected injected id, got %q", id)
		}
	}

	for range 5 {
		unknown := test.RandomASCIIString(8, 12)
		err := store.With(unknown, func(*orderview.Controller) error { return nil })
		if !errors.Is(err, domainErrors.ErrSessionNotFound) {
			t.Fatalf("id %q: expected session not found, got %v", unknown, err)
		}
	}
	if store.Len() != 3 {
		t.Fatalf("expected 3 sessions, got %d", store.Len())
	}
}

func TestStoreDelete(t *testing.T) {
	gauge := &recordingGauge{}
	store := NewStore(Options{Gauge: gauge})
	id, _ := store.Create(newController())
	if err := store.Delete(id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.Len() != 0 || gauge.Value() != 0 {
		t.Fatalf("expected empty store")
	}
}

func TestStoreLimitEvictsIdleFirst(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	n := 0
	store := NewStore(Options{
		MaxSessions: 1,
		TTL:         time.Minute,
		Now:         clock.Now,
		NewID: func() string {
			n++
			return fmt.Sprintf("s%d", n)
		},
	})

	if _, err := store.Create(newController()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Create(newController()); !errors.Is(err, domainErrors.ErrTooManySessions) {
		t.Fatalf("expected too many sessions, got %v", err)
	}

	clock.Advance(2 * time.Minute)
	id, err := store.Create(newController())
	if err != nil {
		t.Fatalf("expected idle session to make room, got %v", err)
	}
	if id != "s2" || store.Len() != 1 {
		t.Fatalf("unexpected id %s len %d", id, store.Len())
	}
}

func TestStoreEvictIdle(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	gauge := &recordingGauge{}
	store := NewStore(Options{TTL: time.Minute, Now: clock.Now, Gauge: gauge})

	stale, _ := store.Create(newController())
	clock.Advance(45 * time.Second)
	fresh, _ := store.Create(newController())
	clock.Advance(30 * time.Second)

	if removed := store.EvictIdle(); removed != 1 {
		t.Fatalf("expected one eviction, got %d", removed)
	}
	if err := store.With(stale, func(*orderview.Controller) error { return nil }); !errors.Is(err, domainErrors.ErrSessionNotFound) {
		t.Fatalf("expected stale session gone, got %v", err)
	}
	if err := store.With(fresh, func(*orderview.Controller) error { return nil }); err != nil {
		t.Fatalf("expected fresh session kept, got %v", err)
	}
	if gauge.Value() != 1 {
		t.Fatalf("expected gauge 1, got %v", gauge.Value())
	}

	clock.Advance(59 * time.Second)
	if removed := store.EvictIdle(); removed != 0 {
		t.Fatalf("access must refresh idle timer, removed %d", removed)
	}
}

func TestStoreEvictIdleWithoutTTL(t *testing.T) {
	store := NewStore(Options{})
	_, _ = store.Create(newController())
	if store.EvictIdle() != 0 || store.Len() != 1 {
		t.Fatalf("expected no eviction without ttl")
	}
}

func TestStoreConcurrentAccess(t *testing.T) {
	store := NewStore(Options{})
	id, _ := store.Create(newController())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.With(id, func(c *orderview.Controller) error {
				c.ToggleSelection("ORD-0001")
				return nil
			})
		}()
	}
	wg.Wait()

	var selected int
	_ = store.With(id, func(c *orderview.Controller) error {
		selected = c.View().SelectedCount
		return nil
	})
	if selected != 0 {
		t.Fatalf("expected even number of toggles to clear selection, got %d", selected)
	}
}
