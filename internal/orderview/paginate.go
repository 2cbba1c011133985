package orderview

import "github.com/polkiloo/shopdash/internal/domain/model"

// PageSize is the number of rows shown per table page.
const PageSize = 10

// Page is a slice of the ordered collection.
type Page struct {
	Number     int
	TotalPages int
	Start      int
	End        int
	Rows       []model.Order
}

// TotalPages returns ceil(total/size), never less than one.
func TotalPages(total, size int) int {
	if size <= 0 {
		size = PageSize
	}
	pages := (total + size - 1) / size
	if pages < 1 {
		return 1
	}
	return pages
}

// ClampPage bounds page to [1, totalPages].
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Paginate returns the requested page clamped to the collection bounds.
func Paginate(orders []model.Order, size, page int) Page {
	if size <= 0 {
		size = PageSize
	}
	total := TotalPages(len(orders), size)
	number := ClampPage(page, total)

	start := (number - 1) * size
	if start > len(orders) {
		start = len(orders)
	}
	end := start + size
	if end > len(orders) {
		end = len(orders)
	}

	return Page{
		Number:     number,
		TotalPages: total,
		Start:      start,
		End:        end,
		Rows:       orders[start:end:end],
	}
}
