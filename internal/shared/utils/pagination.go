package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"libris/internal/shared/constants"
)

// Pagination holds parsed pagination parameters.
type Pagination struct {
	Page  int
	Limit int
}

// Offset returns the number of records to skip for this page.
func (p Pagination) Offset() int {
	return p.Limit * (p.Page - 1)
}

// ValidatePagination normalizes pagination parameters. Page defaults to
// DefaultPage if less than 1; Limit defaults to DefaultPageSize and is
// capped at MaxPageSize.
func ValidatePagination(page, limit int) Pagination {
	if page < 1 {
		page = constants.DefaultPage
	}
	if limit < 1 {
		limit = constants.DefaultPageSize
	}
	if limit > constants.MaxPageSize {
		limit = constants.MaxPageSize
	}
	return Pagination{Page: page, Limit: limit}
}

// ParsePagination reads page/limit from the query string, applying the
// defaults the listing endpoints document.
func ParsePagination(c *gin.Context) Pagination {
	return ValidatePagination(
		parseQueryInt(c, "page", constants.DefaultPage),
		parseQueryInt(c, "limit", constants.DefaultPageSize),
	)
}

func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n >= 1 {
			return n
		}
	}
	return defaultVal
}
