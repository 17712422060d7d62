package listing

// TotalPages is ceil(total / pageSize). A non-positive page size yields 0.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// paginate returns the slice for the 1-based page, clipped to the input.
// Pages before the first or past the last are empty.
func paginate[T any](items []T, currentPage, pageSize int) []T {
	total := len(items)
	start := (currentPage - 1) * pageSize
	end := start + pageSize
	if pageSize <= 0 || start < 0 || start >= total {
		return []T{}
	}
	if end > total {
		end = total
	}
	return items[start:end]
}
