package dto

import "time"

// MetricResponse is a stat card value.
type MetricResponse struct {
	Total     string  `json:"total"`
	Formatted string  `json:"formatted"`
	Growth    float64 `json:"growth"`
}

// GrowthResponse is the growth percentage card.
type GrowthResponse struct {
	Percentage float64 `json:"percentage"`
	Change     float64 `json:"change"`
}

// ProjectionsResponse feeds the projections vs actuals bar chart.
type ProjectionsResponse struct {
	Months           []string `json:"months"`
	Values           []string `json:"values"`
	ProjectionValues []string `json:"projection_values"`
	Remainders       []string `json:"remainders"`
}

// WeeklyRevenueResponse feeds the revenue line chart.
type WeeklyRevenueResponse struct {
	CurrentWeek           string   `json:"current_week"`
	PreviousWeek          string   `json:"previous_week"`
	CurrentWeekFormatted  string   `json:"current_week_formatted"`
	PreviousWeekFormatted string   `json:"previous_week_formatted"`
	Months                []string `json:"months"`
	CurrentWeekLine       []string `json:"current_week_line"`
	PreviousWeekLine      []string `json:"previous_week_line"`
}

// LocationResponse is revenue of one city.
type LocationResponse struct {
	City      string `json:"city"`
	Amount    string `json:"amount"`
	Formatted string `json:"formatted"`
}

// ProductResponse is a row of the top selling products table.
type ProductResponse struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity int64  `json:"quantity"`
	Amount   string `json:"amount"`
}

// SalesSegmentResponse is a slice of the total sales donut.
type SalesSegmentResponse struct {
	Type      string  `json:"type"`
	Amount    string  `json:"amount"`
	Formatted string  `json:"formatted"`
	Share     float64 `json:"share"`
}

// TotalSalesResponse is the total sales donut.
type TotalSalesResponse struct {
	Total     string                 `json:"total"`
	Formatted string                 `json:"formatted"`
	Segments  []SalesSegmentResponse `json:"segments"`
}

// DashboardResponse aggregates every overview widget.
type DashboardResponse struct {
	Customers            MetricResponse        `json:"customers"`
	Orders               MetricResponse        `json:"orders"`
	Revenue              MetricResponse        `json:"revenue"`
	Growth               GrowthResponse        `json:"growth"`
	ProjectionsVsActuals ProjectionsResponse   `json:"projections_vs_actuals"`
	RevenueWeekly        WeeklyRevenueResponse `json:"revenue_weekly"`
	RevenueByLocation    []LocationResponse    `json:"revenue_by_location"`
	TopSellingProducts   []ProductResponse     `json:"top_selling_products"`
	TotalSales           TotalSalesResponse    `json:"total_sales"`
}

// NotificationResponse is a navbar notification.
type NotificationResponse struct {
	ID           int64     `json:"id"`
	Type         string    `json:"type"`
	Message      string    `json:"message"`
	CreatedAt    time.Time `json:"created_at"`
	ReadableTime string    `json:"readable_time"`
}

// NotificationsResponse lists notifications with the unread badge count.
type NotificationsResponse struct {
	Unread int                    `json:"unread"`
	Items  []NotificationResponse `json:"items"`
}

// ActivityResponse is an entry of the activity feed.
type ActivityResponse struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	Image        string    `json:"image"`
	Message      string    `json:"message"`
	CreatedAt    time.Time `json:"created_at"`
	ReadableTime string    `json:"readable_time"`
}

// ContactResponse is a contact list entry.
type ContactResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Gender string `json:"gender"`
	Image  string `json:"image"`
}

// HealthResponse reports service health.
type HealthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// ErrorResponse carries an error message.
type ErrorResponse struct {
	Error string `json:"error"`
}
