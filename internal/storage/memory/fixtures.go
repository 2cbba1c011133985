package memory

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/shopdash/internal/domain/model"
)

var contacts = []struct {
	name   string
	gender model.Gender
}{
	{"Natali Craig", model.GenderGirl},
	{"Drew Cano", model.GenderBoy},
	{"Orlando Digs", model.GenderBoy},
	{"Andi Lane", model.GenderGirl},
	{"Kate Morrison", model.GenderGirl},
	{"Koray Okumus", model.GenderBoy},
}

var (
	projects = []string{
		"Landing Page",
		"CRM Admin pages",
		"Client Project",
		"Admin Dashboard",
		"App Landing Page",
	}
	addresses = []string{
		"Meadow Lane Oakland",
		"Larry San Francisco",
		"Bagwell Avenue Ocala",
		"Washburn Baton Rouge",
		"Nest Lane Olivette",
	}
	// Pending is assigned separately so the fixture has a predictable
	// number of pending orders.
	rotatingStatuses = []model.OrderStatus{
		model.OrderStatusInProgress,
		model.OrderStatusComplete,
		model.OrderStatusApproved,
		model.OrderStatusRejected,
	}
)

const pendingEvery = 9

// Users returns the contact list.
func Users() []model.User {
	users := make([]model.User, len(contacts))
	for i, c := range contacts {
		users[i] = model.User{
			ID:           int64(i),
			Name:         c.name,
			Gender:       c.gender,
			ProfileImage: model.AvatarURL(c.name, c.gender),
		}
	}
	return users
}

// GenerateOrders builds n deterministic orders placed before anchor, newest
// first. Every ninth order is pending.
func GenerateOrders(n int, anchor time.Time) []model.Order {
	users := Users()
	base := anchor.Truncate(time.Hour)
	orders := make([]model.Order, n)
	for i := range orders {
		user := users[i%len(users)]
		status := rotatingStatuses[i%len(rotatingStatuses)]
		if i%pendingEvery == pendingEvery-1 {
			status = model.OrderStatusPending
		}
		orders[i] = model.Order{
			ID:      fmt.Sprintf("ORD-%04d", i+1),
			User:    model.OrderOwner{Name: user.Name, Avatar: user.ProfileImage},
			Project: projects[(i*3)%len(projects)],
			Address: addresses[(i*7)%len(addresses)],
			Date:    base.Add(-time.Duration(i)*29*time.Hour - time.Duration(i%4)*13*time.Minute),
			Status:  status,
		}
	}
	return orders
}

// Notifications returns navbar notifications relative to now.
func Notifications(now time.Time) []model.Notification {
	return []model.Notification{
		{ID: 1, Type: model.NotificationTypeBug, Message: "You have a bug that needs attention", CreatedAt: now},
		{ID: 2, Type: model.NotificationTypeUser, Message: "New user registered", CreatedAt: now.Add(-59 * time.Minute)},
		{ID: 3, Type: model.NotificationTypeBug, Message: "You have a bug that needs attention", CreatedAt: now.Add(-12 * time.Hour)},
		{ID: 4, Type: model.NotificationTypeSubscription, Message: "Andi Lane subscribed to you", CreatedAt: atClock(now, 11, 59)},
	}
}

// Activities returns recent user activities relative to now.
func Activities(now time.Time) []model.Activity {
	return []model.Activity{
		{ID: 1, UserID: 0, Message: "You have a bug that needs attention", CreatedAt: now},
		{ID: 2, UserID: 1, Message: "Released a new version", CreatedAt: now.Add(-59 * time.Minute)},
		{ID: 3, UserID: 2, Message: "Submitted a bug", CreatedAt: now.Add(-12 * time.Hour)},
		{ID: 4, UserID: 3, Message: "Modified A data in Page X", CreatedAt: atClock(now, 11, 59)},
		{ID: 5, UserID: 4, Message: "Deleted a page in Project X", CreatedAt: time.Date(2023, time.February, 2, now.Hour(), now.Minute(), 0, 0, now.Location())},
	}
}

func atClock(now time.Time, hour, minute int) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, hour, minute, 0, 0, now.Location())
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func series(values ...string) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = money(v)
	}
	return out
}

// Dashboard returns the overview widgets.
func Dashboard() model.Dashboard {
	return model.Dashboard{
		Customers: model.Metric{Total: decimal.NewFromInt(3781), Growth: 11.01},
		Orders:    model.Metric{Total: decimal.NewFromInt(1219), Growth: -0.03},
		Revenue:   model.Metric{Total: decimal.NewFromInt(695), Growth: 15.03},
		Growth:    model.Growth{Percentage: 30.1, Change: 6.08},
		ProjectionsVsActuals: model.ProjectionSeries{
			Months:           []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"},
			Values:           series("16", "20", "17", "22", "15", "20"),
			ProjectionValues: series("20", "24", "21", "26", "18", "24"),
		},
		RevenueWeekly: model.WeeklyRevenue{
			CurrentWeek:      money("58211"),
			PreviousWeek:     money("68768"),
			Months:           []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"},
			CurrentWeekLine:  series("13", "9", "11", "16", "19", "21"),
			PreviousWeekLine: series("8", "17", "14", "10", "14", "23"),
		},
		RevenueByLocation: []model.LocationRevenue{
			{City: "New York", Amount: money("72")},
			{City: "San Francisco", Amount: money("39")},
			{City: "Sydney", Amount: money("25")},
			{City: "Singapore", Amount: money("61")},
		},
		TopSellingProducts: []model.ProductSales{
			{Name: "ASOS Ridley High Waist", Price: money("79.49"), Quantity: 82},
			{Name: "Marco Lightweight Shirt", Price: money("128.50"), Quantity: 37},
			{Name: "Half Sleeve Shirt", Price: money("39.99"), Quantity: 64},
			{Name: "Lightweight Jacket", Price: money("20.00"), Quantity: 184},
			{Name: "Marco Shoes", Price: money("79.49"), Quantity: 64},
		},
		TotalSales: []model.SalesSegment{
			{Type: "Direct", Amount: money("300.56")},
			{Type: "Affiliate", Amount: money("135.18")},
			{Type: "Sponsored", Amount: money("154.02")},
			{Type: "E-mail", Amount: money("48.96")},
		},
	}
}
