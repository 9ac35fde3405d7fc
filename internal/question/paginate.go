package question

// Paginate returns the 1-indexed page of items holding pageSize elements per page. A page <= 0 or
// past the end yields an empty result; negative offsets never wrap. The result shares the backing
// array with items but has its capacity capped at its length.
func Paginate[T any](items []T, page, pageSize int) []T {
	if pageSize <= 0 || page < 1 || page-1 > len(items)/pageSize {
		return items[:0:0]
	}
	start := (page - 1) * pageSize
	if start > len(items) {
		start = len(items)
	}
	end := min(start+pageSize, len(items))
	return items[start:end:end]
}
