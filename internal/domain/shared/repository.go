package shared

// Filter narrows a read of one table or view.
type Filter struct {
	Page     int // 1-based; zero means the first page
	PageSize int // zero means every matching row
	OrderBy  string
	OrderDir string // asc or desc
	// Filters holds column equality conditions; a nil value matches NULL.
	// Column names are checked against the relation before use.
	Filters map[string]any
}

// Where returns a copy of f with one more equality condition.
func (f Filter) Where(column string, value any) Filter {
	filters := make(map[string]any, len(f.Filters)+1)
	for k, v := range f.Filters {
		filters[k] = v
	}
	filters[column] = value
	f.Filters = filters
	return f
}

// Paginated is one page of a filtered read.
type Paginated[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

func NewPaginated[T any](items []T, total int64, page, pageSize int) Paginated[T] {
	p := Paginated[T]{Items: items, Total: total, Page: page, PageSize: pageSize}
	if pageSize > 0 {
		p.TotalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	return p
}

// HasNext reports whether a page follows this one.
func (p Paginated[T]) HasNext() bool {
	return p.Page < p.TotalPages
}
