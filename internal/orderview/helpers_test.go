package orderview

import (
	"fmt"
	"time"

	"github.com/polkiloo/shopdash/internal/domain/model"
)

var fixedNow = time.Date(2024, time.May, 10, 15, 30, 0, 0, time.UTC)

var (
	testUsers     = []string{"Natali Craig", "Kate Morrison", "Drew Cano", "Orlando Diggs", "Andi Lane"}
	testProjects  = []string{"Landing Page", "CRM Admin pages", "Client Project", "Admin Dashboard", "App Landing Page"}
	testAddresses = []string{"Meadow Lane Oakland", "Larry San Francisco", "Bagwell Avenue Ocala", "Washburn Baton Rouge", "Nest Lane Olivette"}
	otherStatuses = []model.OrderStatus{model.OrderStatusInProgress, model.OrderStatusComplete, model.OrderStatusApproved, model.OrderStatusRejected}
)

func clock() time.Time { return fixedNow }

// makeOrders builds n orders with distinct dates, the first being the newest.
// Every ninth order is pending.
func makeOrders(n int) []model.Order {
	orders := make([]model.Order, n)
	for i := range orders {
		status := otherStatuses[i%len(otherStatuses)]
		if i%9 == 0 {
			status = model.OrderStatusPending
		}
		orders[i] = model.Order{
			ID:      fmt.Sprintf("ORD-%04d", i+1),
			User:    model.OrderOwner{Name: testUsers[i%len(testUsers)]},
			Project: testProjects[(i/2)%len(testProjects)],
			Address: testAddresses[(i/3)%len(testAddresses)],
			Date:    fixedNow.Add(-time.Duration(i+1) * 36 * time.Hour),
			Status:  status,
		}
	}
	return orders
}

func ids(orders []model.Order) []string {
	out := make([]string, len(orders))
	for i, o := range orders {
		out[i] = o.ID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
