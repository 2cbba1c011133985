package usecase

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/shopdash/internal/domain/errors"
	"github.com/polkiloo/shopdash/internal/orderview"
)

// ParsePage converts a page parameter. Blank input means the first page;
// out of range numbers are accepted and clamped later.
func ParsePage(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domainErrors.ErrInvalidPage
	}
	return n, nil
}

// ParseDirection converts a sort direction. Blank input yields fallback.
func ParseDirection(raw string, fallback orderview.SortDirection) (orderview.SortDirection, error) {
	if strings.TrimSpace(raw) == "" {
		return fallback, nil
	}
	dir, ok := orderview.ParseSortDirection(raw)
	if !ok {
		return "", domainErrors.ErrInvalidDirection
	}
	return dir, nil
}

// ParseSortKey normalises a sort key. Unknown keys pass through unchanged and
// leave the order untouched; blank input yields fallback.
func ParseSortKey(raw string, fallback orderview.SortKey) orderview.SortKey {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return fallback
	}
	return orderview.SortKey(raw)
}

// ValidateSessionID reports whether id looks like an issued session identifier.
func ValidateSessionID(id string) bool {
	return uuid.Validate(id) == nil
}
