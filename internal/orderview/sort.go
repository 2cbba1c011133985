package orderview

import (
	"sort"
	"strings"

	"github.com/polkiloo/shopdash/internal/domain/model"
)

// Sort returns a stably ordered copy of orders. String keys, the identifier
// included, compare lower-cased. Unsupported keys keep input order.
func Sort(orders []model.Order, key SortKey, direction SortDirection) []model.Order {
	sorted := make([]model.Order, len(orders))
	copy(sorted, orders)

	less := lessFunc(key)
	if less == nil {
		return sorted
	}

	if direction == SortDescending {
		sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[j], sorted[i]) })
	} else {
		sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	}
	return sorted
}

func lessFunc(key SortKey) func(a, b model.Order) bool {
	switch key {
	case SortKeyDate:
		return func(a, b model.Order) bool { return a.Date.Before(b.Date) }
	case SortKeyID:
		return byString(func(o model.Order) string { return o.ID })
	case SortKeyUser:
		return byString(func(o model.Order) string { return o.User.Name })
	case SortKeyProject:
		return byString(func(o model.Order) string { return o.Project })
	case SortKeyStatus:
		return byString(func(o model.Order) string { return string(o.Status) })
	case SortKeyAddress:
		return byString(func(o model.Order) string { return o.Address })
	default:
		return nil
	}
}

func byString(field func(model.Order) string) func(a, b model.Order) bool {
	return func(a, b model.Order) bool {
		return strings.ToLower(field(a)) < strings.ToLower(field(b))
	}
}
