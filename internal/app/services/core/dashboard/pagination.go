package dashboard

// TotalPages is never less than one, an empty list still has a first page.
func TotalPages(totalResults, perPage int) int {
	if perPage <= 0 || totalResults <= 0 {
		return 1
	}
	return (totalResults + perPage - 1) / perPage
}

// ClampPage returns requested when it lies within 1..totalPages and current
// otherwise.
func ClampPage(current, requested, totalPages int) int {
	if requested > 0 && requested <= totalPages {
		return requested
	}
	return current
}

func Paginate[T any](items []T, page, perPage int) []T {
	if page < 1 || perPage <= 0 {
		return []T{}
	}
	start := (page - 1) * perPage
	if start >= len(items) {
		return []T{}
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
