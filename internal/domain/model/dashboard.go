package model

import "github.com/shopspring/decimal"

// Metric is a headline figure with its growth delta in percent.
type Metric struct {
	Total  decimal.Decimal
	Growth float64
}

// Growth holds the growth percentage card.
type Growth struct {
	Percentage float64
	Change     float64
}

// ProjectionSeries compares monthly actual values against projections.
type ProjectionSeries struct {
	Months           []string
	Values           []decimal.Decimal
	ProjectionValues []decimal.Decimal
}

// WeeklyRevenue contrasts revenue of the current and previous week.
type WeeklyRevenue struct {
	CurrentWeek      decimal.Decimal
	PreviousWeek     decimal.Decimal
	Months           []string
	CurrentWeekLine  []decimal.Decimal
	PreviousWeekLine []decimal.Decimal
}

// LocationRevenue is revenue in thousands for a city.
type LocationRevenue struct {
	City   string
	Amount decimal.Decimal
}

// ProductSales describes a top selling product row.
type ProductSales struct {
	Name     string
	Price    decimal.Decimal
	Quantity int64
}

// Amount returns price multiplied by quantity.
func (p ProductSales) Amount() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(p.Quantity))
}

// SalesSegment is a slice of the total sales donut.
type SalesSegment struct {
	Type   string
	Amount decimal.Decimal
}

// Dashboard aggregates every widget of the eCommerce overview.
type Dashboard struct {
	Customers            Metric
	Orders               Metric
	Revenue              Metric
	Growth               Growth
	ProjectionsVsActuals ProjectionSeries
	RevenueWeekly        WeeklyRevenue
	RevenueByLocation    []LocationRevenue
	TopSellingProducts   []ProductSales
	TotalSales           []SalesSegment
}
