package utils

import (
	"net/http"
	"strconv"
)

type QueryOptions struct {
	Page  int
	Limit int
}

// ParseQueryOptions reads ?page and ?limit with the given default limit.
func ParseQueryOptions(r *http.Request, defaultLimit int) QueryOptions {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}

	limit, _ := strconv.Atoi(q.Get("limit"))
	if limit < 1 {
		limit = defaultLimit
	}

	return QueryOptions{Page: page, Limit: limit}
}

// PageCount returns the number of pages for total items at the given limit.
func PageCount(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return pages
}
