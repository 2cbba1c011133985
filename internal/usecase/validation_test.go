package usecase

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/shopdash/internal/domain/errors"
	"github.com/polkiloo/shopdash/internal/orderview"
)

func TestParsePage(t *testing.T) {
	cases := []struct {
		raw  string
		want int
		err  error
	}{
		{"", 1, nil},
		{" 3 ", 3, nil},
		{"0", 0, nil},
		{"-4", -4, nil},
		{"two", 0, domainErrors.ErrInvalidPage},
		{"1.5", 0, domainErrors.ErrInvalidPage},
	}
	for _, tc := range cases {
		got, err := ParsePage(tc.raw)
		if !errors.Is(err, tc.err) || (tc.err == nil && got != tc.want) {
			t.Errorf("%q: got %d, %v", tc.raw, got, err)
		}
	}
}

func TestParseDirection(t *testing.T) {
	if dir, err := ParseDirection("", orderview.SortDescending); err != nil || dir != orderview.SortDescending {
		t.Fatalf("expected fallback, got %s %v", dir, err)
	}
	if dir, err := ParseDirection("ASC", orderview.SortDescending); err != nil || dir != orderview.SortAscending {
		t.Fatalf("expected asc, got %s %v", dir, err)
	}
	if _, err := ParseDirection("sideways", orderview.SortDescending); !errors.Is(err, domainErrors.ErrInvalidDirection) {
		t.Fatalf("expected invalid direction, got %v", err)
	}
}

func TestParseSortKey(t *testing.T) {
	if got := ParseSortKey("", orderview.SortKeyDate); got != orderview.SortKeyDate {
		t.Fatalf("expected fallback, got %s", got)
	}
	if got := ParseSortKey(" Project ", orderview.SortKeyDate); got != orderview.SortKeyProject {
		t.Fatalf("expected project, got %s", got)
	}
	if got := ParseSortKey("price", orderview.SortKeyDate); got != orderview.SortKey("price") {
		t.Fatalf("expected pass through, got %s", got)
	}
}

func TestValidateSessionID(t *testing.T) {
	if !ValidateSessionID(uuid.NewString()) {
		t.Fatal("expected generated id to validate")
	}
	if ValidateSessionID("not-a-session") {
		t.Fatal("expected malformed id to be rejected")
	}
}
