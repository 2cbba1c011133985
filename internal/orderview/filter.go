package orderview

import (
	"strings"
	"time"

	"github.com/polkiloo/shopdash/internal/domain/model"
	"github.com/polkiloo/shopdash/internal/pkg/format"
)

// Filter returns orders where any searchable field contains query,
// case-insensitively. The readable date is computed against now, so the
// same order may stop matching a relative phrase as time passes.
// A blank query returns the input unchanged. Surrounding whitespace of a
// non-blank query is part of the match.
func Filter(orders []model.Order, query string, now time.Time) []model.Order {
	if strings.TrimSpace(query) == "" {
		return orders
	}
	q := strings.ToLower(query)

	result := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if matches(o, q, now) {
			result = append(result, o)
		}
	}
	return result
}

func matches(o model.Order, q string, now time.Time) bool {
	fields := [...]string{
		o.ID,
		o.User.Name,
		o.Project,
		o.Address,
		string(o.Status),
		format.ReadableTime(o.Date, now),
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
