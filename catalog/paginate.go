package catalog

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// Page selects one page of a result. Zero values mean the defaults.
type Page struct {
	Page  int
	Limit int
}

type PageResult[T any] struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Data  []T `json:"data"`
}

// Paginate slices items to the requested page. The page is at least 1 and the limit
// is clamped to [1, MaxLimit]; a page past the end yields empty data.
func Paginate[T any](items []T, p Page) PageResult[T] {
	page := p.Page
	if page < 1 {
		page = DefaultPage
	}

	limit := p.Limit
	switch {
	case limit == 0:
		limit = DefaultLimit
	case limit < 1:
		limit = 1
	case limit > MaxLimit:
		limit = MaxLimit
	}

	start := min((page-1)*limit, len(items))
	end := min(start+limit, len(items))

	data := make([]T, end-start)
	copy(data, items[start:end])

	return PageResult[T]{
		Total: len(items),
		Page:  page,
		Limit: limit,
		Data:  data,
	}
}

// All wraps an unpaginated list in the page shape.
func All[T any](items []T) PageResult[T] {
	return PageResult[T]{
		Total: len(items),
		Page:  1,
		Limit: len(items),
		Data:  items,
	}
}
