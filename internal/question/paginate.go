package question

import "strconv"

// ParsePage reads a 1-based page number. Empty, malformed and values below 1 yield 1.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Paginate returns items[(page-1)*size : page*size], clamped to the slice.
// Pages past the end are empty, never nil.
func Paginate[T any](items []T, page, size int) []T {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		return []T{}
	}
	// Compare before multiplying so huge pages cannot overflow.
	if page-1 >= (len(items)+size-1)/size {
		return []T{}
	}
	start := (page - 1) * size
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
