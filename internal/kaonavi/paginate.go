package kaonavi

// PageMeta mirrors the meta object the front-end pager consumes.
// NextPage and PreviousPage are null unless the matching flag is true.
type PageMeta struct {
	Limit           int  `json:"limit"`
	TotalPages      int  `json:"total_pages"`
	TotalCount      int  `json:"total_count"`
	CurrentPage     int  `json:"current_page"`
	HasNextPage     bool `json:"has_next_page"`
	NextPage        *int `json:"next_page"`
	HasPreviousPage bool `json:"has_previous_page"`
	PreviousPage    *int `json:"previous_page"`
}

// Page is one slice of a list plus its pagination metadata.
type Page[T any] struct {
	Records []T      `json:"records"`
	Meta    PageMeta `json:"meta"`
}

// Paginate slices items into the requested page. TotalPages is at
// least 1 even for an empty list, so page 1 of nothing is an empty
// page, not an error. A page outside [1, total_pages] (or a perPage
// below 1) fails with PageOutOfRangeError.
func Paginate[T any](items []T, perPage, page int) (Page[T], error) {
	if perPage < 1 {
		return Page[T]{}, &PageOutOfRangeError{Page: page, TotalPages: 0}
	}

	totalCount := len(items)
	totalPages := (totalCount + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 || page > totalPages {
		return Page[T]{}, &PageOutOfRangeError{Page: page, TotalPages: totalPages}
	}

	start := (page - 1) * perPage
	end := start + perPage
	if end > totalCount {
		end = totalCount
	}
	records := make([]T, 0, end-start)
	records = append(records, items[start:end]...)

	meta := PageMeta{
		Limit:       perPage,
		TotalPages:  totalPages,
		TotalCount:  totalCount,
		CurrentPage: page,
	}
	if page < totalPages {
		next := page + 1
		meta.HasNextPage = true
		meta.NextPage = &next
	}
	if page > 1 {
		previous := page - 1
		meta.HasPreviousPage = true
		meta.PreviousPage = &previous
	}

	return Page[T]{Records: records, Meta: meta}, nil
}
