package orderview

import (
	"fmt"
	"strings"
	"time"

	"github.com/polkiloo/shopdash/internal/domain/model"
)

// Operation mutates a Controller.
type Operation func(*Controller)

// Option customises a Controller.
type Option func(*Controller)

// WithClock overrides the time source used for readable date matching.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// WithQuery sets the initial query. The page is reset to 1.
func WithQuery(q Query) Option {
	return func(c *Controller) {
		if q.SortKey != "" {
			c.query.SortKey = q.SortKey
		}
		if q.Direction != "" {
			c.query.Direction = q.Direction
		}
		c.query.Search = q.Search
	}
}

// Controller turns the base order collection and user input into the rows of
// the visible page. It is not safe for concurrent use.
type Controller struct {
	base      []model.Order
	query     Query
	filtered  []model.Order
	sorted    []model.Order
	page      Page
	selection *Selection
	now       func() time.Time
}

// NewController builds a controller over the immutable base collection.
func NewController(base []model.Order, opts ...Option) *Controller {
	c := &Controller{
		base:      base,
		query:     DefaultQuery(),
		selection: NewSelection(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.refilter()
	return c
}

// SetSearch refilters and resorts the base collection and returns to page 1.
func (c *Controller) SetSearch(text string) {
	c.query.Search = text
	c.refilter()
}

// SetSort reorders the filtered collection and returns to page 1.
func (c *Controller) SetSort(key SortKey, direction SortDirection) {
	c.query.SortKey = key
	if direction != SortAscending && direction != SortDescending {
		direction = c.query.Direction
	}
	c.query.Direction = direction
	c.resort()
}

// ToggleSortDirection flips the direction and returns to page 1.
func (c *Controller) ToggleSortDirection() {
	c.query.Direction = c.query.Direction.Reverse()
	c.resort()
}

// GoToPage moves to page n clamped to the available range.
func (c *Controller) GoToPage(n int) {
	c.query.Page = n
	c.repaginate()
}

// GoToPrevious moves one page back, staying on the first page.
func (c *Controller) GoToPrevious() {
	c.GoToPage(c.page.Number - 1)
}

// GoToNext moves one page forward, staying on the last page.
func (c *Controller) GoToNext() {
	c.GoToPage(c.page.Number + 1)
}

// ToggleSelection flips selection of a single order.
func (c *Controller) ToggleSelection(id string) {
	c.selection.Toggle(id)
}

// ToggleSelectAllVisible applies select-all semantics to the visible page.
func (c *Controller) ToggleSelectAllVisible() {
	c.selection.ToggleAll(c.visibleIDs())
}

// Query returns current query state.
func (c *Controller) Query() Query {
	return c.query
}

// Selection exposes the selection tracker.
func (c *Controller) Selection() *Selection {
	return c.selection
}

// View is the render-ready projection of the controller state.
type View struct {
	Query         Query
	Rows          []model.Order
	Page          int
	TotalPages    int
	PageSize      int
	TotalItems    int
	FilteredItems int
	RangeStart    int
	RangeEnd      int
	IsFiltered    bool
	HasPrevious   bool
	HasNext       bool
	SelectedIDs   []string
	SelectedCount int
	AllSelected   bool
	SomeSelected  bool
	Now           time.Time
}

// View returns the current projection.
func (c *Controller) View() View {
	visible := c.visibleIDs()
	rows := make([]model.Order, len(c.page.Rows))
	copy(rows, c.page.Rows)

	v := View{
		Query:         c.query,
		Rows:          rows,
		Page:          c.page.Number,
		TotalPages:    c.page.TotalPages,
		PageSize:      PageSize,
		TotalItems:    len(c.base),
		FilteredItems: len(c.sorted),
		IsFiltered:    strings.TrimSpace(c.query.Search) != "" && len(c.sorted) != len(c.base),
		HasPrevious:   c.page.Number > 1,
		HasNext:       c.page.Number < c.page.TotalPages,
		SelectedIDs:   c.selection.IDs(),
		SelectedCount: c.selection.Len(),
		AllSelected:   c.selection.AllSelected(visible),
		SomeSelected:  c.selection.SomeSelected(visible),
		Now:           c.now(),
	}
	if len(rows) > 0 {
		v.RangeStart = c.page.Start + 1
		v.RangeEnd = c.page.End
	}
	return v
}

// SelectionSummary renders the "N orders selected" banner text, empty when
// nothing is selected.
func (v View) SelectionSummary() string {
	switch v.SelectedCount {
	case 0:
		return ""
	case 1:
		return "1 order selected"
	default:
		return fmt.Sprintf("%d orders selected", v.SelectedCount)
	}
}

func (c *Controller) refilter() {
	c.filtered = Filter(c.base, c.query.Search, c.now())
	c.resort()
}

func (c *Controller) resort() {
	c.sorted = Sort(c.filtered, c.query.SortKey, c.query.Direction)
	c.query.Page = 1
	c.repaginate()
}

func (c *Controller) repaginate() {
	c.page = Paginate(c.sorted, PageSize, c.query.Page)
	c.query.Page = c.page.Number
}

func (c *Controller) visibleIDs() []string {
	ids := make([]string, len(c.page.Rows))
	for i, o := range c.page.Rows {
		ids[i] = o.ID
	}
	return ids
}
