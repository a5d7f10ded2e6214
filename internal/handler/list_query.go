package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/GTDGit/fas_dashboard/internal/listing"
)

// maxPageSize caps pageSize; larger values fall back to it.
const maxPageSize = 500

type listQuery struct {
	criteria listing.Criteria
	page     int
	pageSize int
}

// parseListQuery reads search, status, type, page and pageSize. Page is
// zero-based. Malformed numbers are ignored in favour of the defaults.
func parseListQuery(c *gin.Context) listQuery {
	q := listQuery{
		criteria: listing.Criteria{
			Search: c.Query("search"),
			Status: c.DefaultQuery("status", listing.All),
			Type:   c.DefaultQuery("type", listing.All),
		},
		page:     0,
		pageSize: listing.DefaultPageSize,
	}
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			q.page = n
		}
	}
	if v := c.Query("pageSize"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			q.pageSize = min(n, maxPageSize)
		}
	}
	return q
}
