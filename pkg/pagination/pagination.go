// Package pagination computes page windows over a counted listing.
package pagination

import "strconv"

// Window is the resolved slice of a listing for one page.
type Window struct {
	Page       int
	Size       int
	TotalItems int64
	TotalPages int
	Offset     int64
}

func (w Window) HasPrev() bool { return w.Page > 1 }
func (w Window) HasNext() bool { return w.Page < w.TotalPages }

// Paginate resolves a requested page against total items. Requests below 1
// land on the first page, requests past the end on the last one. An empty
// listing still has one (empty) page.
func Paginate(total int64, size, requested int) Window {
	if size < 1 {
		size = 1
	}
	if total < 0 {
		total = 0
	}
	pages := int((total + int64(size) - 1) / int64(size))
	if pages < 1 {
		pages = 1
	}
	page := requested
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}
	return Window{
		Page:       page,
		Size:       size,
		TotalItems: total,
		TotalPages: pages,
		Offset:     int64(page-1) * int64(size),
	}
}

// ParsePage reads a page query value; anything that is not a positive
// integer becomes 1.
func ParsePage(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}
