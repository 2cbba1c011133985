package orderview

import "sort"

// Selection tracks selected order identifiers independently of filtering,
// sorting and paging.
type Selection struct {
	ids map[string]struct{}
}

// NewSelection creates an empty selection.
func NewSelection() *Selection {
	return &Selection{ids: make(map[string]struct{})}
}

// Has reports membership of id.
func (s *Selection) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns number of selected identifiers.
func (s *Selection) Len() int {
	return len(s.ids)
}

// IDs returns selected identifiers in lexical order.
func (s *Selection) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Toggle flips membership of id.
func (s *Selection) Toggle(id string) {
	if s.Has(id) {
		delete(s.ids, id)
		return
	}
	s.ids[id] = struct{}{}
}

// SelectAll adds ids to the selection.
func (s *Selection) SelectAll(ids []string) {
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
}

// DeselectAll removes ids from the selection.
func (s *Selection) DeselectAll(ids []string) {
	for _, id := range ids {
		delete(s.ids, id)
	}
}

// AllSelected reports whether every visible id is selected. An empty page is
// never fully selected.
func (s *Selection) AllSelected(visible []string) bool {
	if len(visible) == 0 {
		return false
	}
	for _, id := range visible {
		if !s.Has(id) {
			return false
		}
	}
	return true
}

// SomeSelected reports a partial selection of the visible ids.
func (s *Selection) SomeSelected(visible []string) bool {
	selected := 0
	for _, id := range visible {
		if s.Has(id) {
			selected++
		}
	}
	return selected > 0 && selected < len(visible)
}

// ToggleAll deselects exactly the visible ids when all of them are selected
// and adds them otherwise. Selections outside visible are untouched.
func (s *Selection) ToggleAll(visible []string) {
	if s.AllSelected(visible) {
		s.DeselectAll(visible)
		return
	}
	s.SelectAll(visible)
}
