package datatable

// Paginate returns rows[page*size : page*size+size], bounded to the input.
// Pages past the end yield no rows.
func Paginate(rows []Row, page int, size int) []Row {
	size = NormalizePageSize(size)
	if page < 0 {
		return nil
	}
	start := page * size
	if start >= len(rows) {
		return nil
	}
	end := start + size
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

// PageCount returns the number of pages needed for total rows.
func PageCount(total int, size int) int {
	size = NormalizePageSize(size)
	if total <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// HasNext reports whether a page follows page for total rows.
func HasNext(total int, page int, size int) bool {
	size = NormalizePageSize(size)
	return (page+1)*size < total
}

// HasPrev reports whether page has a predecessor.
func HasPrev(page int) bool {
	return page > 0
}
