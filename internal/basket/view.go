package basket

import "tavolo/internal/item"

// Page slices out the 1-based page of a filtered snapshot. Out-of-range pages
// yield an empty slice, never an error.
func Page(items []item.Item, page, size int) []item.Item {
	if page < 1 || size < 1 {
		return []item.Item{}
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []item.Item{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// TotalPages is ceil(n / size).
func TotalPages(n, size int) int {
	if size < 1 || n <= 0 {
		return 0
	}
	return (n + size - 1) / size
}
