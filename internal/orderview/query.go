package orderview

import "strings"

// SortKey names the order field used for ordering rows.
type SortKey string

const (
	SortKeyDate    SortKey = "date"
	SortKeyID      SortKey = "id"
	SortKeyUser    SortKey = "user"
	SortKeyProject SortKey = "project"
	SortKeyStatus  SortKey = "status"
	SortKeyAddress SortKey = "address"
)

// SortKeys lists supported keys in menu order.
var SortKeys = []SortKey{SortKeyDate, SortKeyID, SortKeyUser, SortKeyProject, SortKeyStatus, SortKeyAddress}

// Supported reports whether k has a defined ordering.
func (k SortKey) Supported() bool {
	for _, known := range SortKeys {
		if k == known {
			return true
		}
	}
	return false
}

// SortDirection selects ascending or descending order.
type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// Reverse returns the opposite direction.
func (d SortDirection) Reverse() SortDirection {
	if d == SortAscending {
		return SortDescending
	}
	return SortAscending
}

// ParseSortDirection accepts "asc" and "desc" in any case.
func ParseSortDirection(raw string) (SortDirection, bool) {
	switch SortDirection(strings.ToLower(strings.TrimSpace(raw))) {
	case SortAscending:
		return SortAscending, true
	case SortDescending:
		return SortDescending, true
	}
	return "", false
}

// Query holds user controlled parameters of the order table.
type Query struct {
	Search    string
	SortKey   SortKey
	Direction SortDirection
	Page      int
}

// DefaultQuery mirrors the initial table state: newest orders first.
func DefaultQuery() Query {
	return Query{SortKey: SortKeyDate, Direction: SortDescending, Page: 1}
}
