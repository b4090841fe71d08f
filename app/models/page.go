package models

// Page describes a view over the full ordered rant sequence. Totals are
// always computed over the full assembled set, never the slice.
type Page struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// NewPage derives pagination metadata for a set of total items. page and
// limit must both be positive; callers validate that before building a page.
func NewPage(total, page, limit int) Page {
	totalPages := (total + limit - 1) / limit

	return Page{
		Page:        page,
		Limit:       limit,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}

// Bounds returns the [start, end) slice indices for this page over a
// sequence of total items, clamped so slicing is always in range.
func (p Page) Bounds(total int) (int, int) {
	start := (p.Page - 1) * p.Limit
	if start > total {
		start = total
	}
	end := start + p.Limit
	if end > total {
		end = total
	}
	return start, end
}
