package handlers

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/shopdash/internal/domain/model"
	"github.com/polkiloo/shopdash/internal/orderview"
	"github.com/polkiloo/shopdash/internal/pkg/format"
	"github.com/polkiloo/shopdash/internal/server/http/dto"
)

const (
	orderIDPrefix   = "ORD-"
	displayIDPrefix = "#CM"
)

// DisplayID renders an order identifier the way the table shows it.
func DisplayID(id string) string {
	if strings.HasPrefix(id, orderIDPrefix) {
		return displayIDPrefix + strings.TrimPrefix(id, orderIDPrefix)
	}
	return id
}

// StatusTone returns the colour token of an order status.
func StatusTone(status model.OrderStatus) string {
	switch status {
	case model.OrderStatusInProgress:
		return "blue"
	case model.OrderStatusComplete:
		return "green"
	case model.OrderStatusPending:
		return "yellow"
	case model.OrderStatusApproved:
		return "emerald"
	case model.OrderStatusRejected:
		return "red"
	default:
		return "gray"
	}
}

func toOrderViewResponse(sessionID string, v orderview.View) dto.OrderViewResponse {
	selected := make(map[string]struct{}, len(v.SelectedIDs))
	for _, id := range v.SelectedIDs {
		selected[id] = struct{}{}
	}

	rows := make([]dto.OrderResponse, 0, len(v.Rows))
	for _, o := range v.Rows {
		_, isSelected := selected[o.ID]
		rows = append(rows, dto.OrderResponse{
			ID:           o.ID,
			DisplayID:    DisplayID(o.ID),
			User:         dto.OrderUserResponse{Name: o.User.Name, Avatar: o.User.Avatar},
			Project:      o.Project,
			Address:      o.Address,
			Date:         o.Date,
			ReadableDate: format.ReadableTime(o.Date, v.Now),
			Status:       string(o.Status),
			Tone:         StatusTone(o.Status),
			Selected:     isSelected,
		})
	}

	selectedIDs := v.SelectedIDs
	if selectedIDs == nil {
		selectedIDs = []string{}
	}

	return dto.OrderViewResponse{
		SessionID:        sessionID,
		Search:           v.Query.Search,
		Sort:             string(v.Query.SortKey),
		Direction:        string(v.Query.Direction),
		Page:             v.Page,
		TotalPages:       v.TotalPages,
		PageSize:         v.PageSize,
		TotalItems:       v.TotalItems,
		FilteredItems:    v.FilteredItems,
		RangeStart:       v.RangeStart,
		RangeEnd:         v.RangeEnd,
		IsFiltered:       v.IsFiltered,
		HasPrevious:      v.HasPrevious,
		HasNext:          v.HasNext,
		Orders:           rows,
		SelectedIDs:      selectedIDs,
		SelectedCount:    v.SelectedCount,
		AllSelected:      v.AllSelected,
		SomeSelected:     v.SomeSelected,
		SelectionSummary: v.SelectionSummary(),
	}
}

var hundred = decimal.NewFromInt(100)

func decimals(values []decimal.Decimal) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}
	return out
}

func toDashboardResponse(d *model.Dashboard) dto.DashboardResponse {
	projections := d.ProjectionsVsActuals
	remainders := make([]string, len(projections.Values))
	for i, actual := range projections.Values {
		remainder := decimal.Zero
		if i < len(projections.ProjectionValues) {
			remainder = projections.ProjectionValues[i].Sub(actual)
		}
		remainders[i] = remainder.String()
	}

	locations := make([]dto.LocationResponse, len(d.RevenueByLocation))
	for i, l := range d.RevenueByLocation {
		locations[i] = dto.LocationResponse{City: l.City, Amount: l.Amount.String(), Formatted: l.Amount.String() + "K"}
	}

	products := make([]dto.ProductResponse, len(d.TopSellingProducts))
	for i, p := range d.TopSellingProducts {
		products[i] = dto.ProductResponse{
			Name:     p.Name,
			Price:    format.Money(p.Price),
			Quantity: p.Quantity,
			Amount:   format.Money(p.Amount()),
		}
	}

	total := decimal.Zero
	for _, s := range d.TotalSales {
		total = total.Add(s.Amount)
	}
	segments := make([]dto.SalesSegmentResponse, len(d.TotalSales))
	for i, s := range d.TotalSales {
		share := 0.0
		if !total.IsZero() {
			share = s.Amount.Div(total).Mul(hundred).Round(2).InexactFloat64()
		}
		segments[i] = dto.SalesSegmentResponse{
			Type:      s.Type,
			Amount:    s.Amount.String(),
			Formatted: format.Money(s.Amount),
			Share:     share,
		}
	}

	return dto.DashboardResponse{
		Customers: dto.MetricResponse{Total: d.Customers.Total.String(), Formatted: format.Count(d.Customers.Total.IntPart()), Growth: d.Customers.Growth},
		Orders:    dto.MetricResponse{Total: d.Orders.Total.String(), Formatted: format.Count(d.Orders.Total.IntPart()), Growth: d.Orders.Growth},
		Revenue:   dto.MetricResponse{Total: d.Revenue.Total.String(), Formatted: format.Money(d.Revenue.Total), Growth: d.Revenue.Growth},
		Growth:    dto.GrowthResponse{Percentage: d.Growth.Percentage, Change: d.Growth.Change},
		ProjectionsVsActuals: dto.ProjectionsResponse{
			Months:           projections.Months,
			Values:           decimals(projections.Values),
			ProjectionValues: decimals(projections.ProjectionValues),
			Remainders:       remainders,
		},
		RevenueWeekly: dto.WeeklyRevenueResponse{
			CurrentWeek:           d.RevenueWeekly.CurrentWeek.String(),
			PreviousWeek:          d.RevenueWeekly.PreviousWeek.String(),
			CurrentWeekFormatted:  format.Money(d.RevenueWeekly.CurrentWeek),
			PreviousWeekFormatted: format.Money(d.RevenueWeekly.PreviousWeek),
			Months:                d.RevenueWeekly.Months,
			CurrentWeekLine:       decimals(d.RevenueWeekly.CurrentWeekLine),
			PreviousWeekLine:      decimals(d.RevenueWeekly.PreviousWeekLine),
		},
		RevenueByLocation:  locations,
		TopSellingProducts: products,
		TotalSales: dto.TotalSalesResponse{
			Total:     total.String(),
			Formatted: format.Money(total),
			Segments:  segments,
		},
	}
}

func toNotificationsResponse(items []model.Notification, now time.Time) dto.NotificationsResponse {
	out := make([]dto.NotificationResponse, len(items))
	for i, n := range items {
		out[i] = dto.NotificationResponse{
			ID:           n.ID,
			Type:         string(n.Type),
			Message:      n.Message,
			CreatedAt:    n.CreatedAt,
			ReadableTime: format.ReadableTime(n.CreatedAt, now),
		}
	}
	return dto.NotificationsResponse{Unread: len(items), Items: out}
}

func toActivityResponses(items []model.ActivityEntry, now time.Time) []dto.ActivityResponse {
	out := make([]dto.ActivityResponse, len(items))
	for i, a := range items {
		out[i] = dto.ActivityResponse{
			ID:           a.ID,
			UserID:       a.UserID,
			Image:        a.Image,
			Message:      a.Message,
			CreatedAt:    a.CreatedAt,
			ReadableTime: format.ReadableTime(a.CreatedAt, now),
		}
	}
	return out
}

func toContactResponses(users []model.User) []dto.ContactResponse {
	out := make([]dto.ContactResponse, len(users))
	for i, u := range users {
		out[i] = dto.ContactResponse{ID: u.ID, Name: u.Name, Gender: string(u.Gender), Image: u.ProfileImage}
	}
	return out
}
