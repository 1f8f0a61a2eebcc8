package pagination

import "strconv"

// MaxLimit caps a single page. The site never renders more than a few
// dozen cards, so an unbounded limit would only serve scraping.
const MaxLimit = 100

// Params is a validated page/limit pair. Page is 1-based.
type Params struct {
	Page  int
	Limit int
}

// Parse coerces raw page/limit query values, falling back to page 1 and
// the endpoint's default limit on anything non-positive or non-numeric.
func Parse(pageStr, limitStr string, defaultLimit int) Params {
	p := Params{Page: 1, Limit: defaultLimit}

	if pageStr != "" {
		if n, err := strconv.Atoi(pageStr); err == nil && n > 0 {
			p.Page = n
		}
	}
	if limitStr != "" {
		if n, err := strconv.Atoi(limitStr); err == nil && n > 0 && n <= MaxLimit {
			p.Limit = n
		}
	}

	return p
}

// FromInts applies the same fallbacks as Parse to values that arrived
// already decoded from a JSON body.
func FromInts(page, limit, defaultLimit int) Params {
	p := Params{Page: 1, Limit: defaultLimit}
	if page > 0 {
		p.Page = page
	}
	if limit > 0 && limit <= MaxLimit {
		p.Limit = limit
	}
	return p
}

// Skip returns the query offset for the current page.
func (p Params) Skip() int {
	return (p.Page - 1) * p.Limit
}

// Meta is the pagination block of list responses.
type Meta struct {
	Total       int64 `json:"total"`
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	Limit       int   `json:"limit"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// NewMeta computes the response meta from the total count of the same
// predicate the fetch ran against.
func NewMeta(p Params, total int64) *Meta {
	totalPages := int((total + int64(p.Limit) - 1) / int64(p.Limit))

	return &Meta{
		Total:       total,
		CurrentPage: p.Page,
		TotalPages:  totalPages,
		Limit:       p.Limit,
		HasNextPage: p.Page < totalPages,
		HasPrevPage: p.Page > 1,
	}
}
