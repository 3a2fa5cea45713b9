package entity

// Page is one server-driven slice of a collection.
type Page[T any] struct {
	Items      []T `json:"data"`
	Page       int `json:"page,omitempty"`
	Limit      int `json:"limit,omitempty"`
	Total      int `json:"total,omitempty"`
	TotalPages int `json:"totalPages,omitempty"`
}

// TotalPagesOrDerived trusts the reported totalPages and only derives
// ceil(total/limit) when the backend did not send it.
func (p Page[T]) TotalPagesOrDerived() int {
	if p.TotalPages > 0 {
		return p.TotalPages
	}
	if p.Limit <= 0 || p.Total <= 0 {
		return 0
	}

	return (p.Total + p.Limit - 1) / p.Limit
}
