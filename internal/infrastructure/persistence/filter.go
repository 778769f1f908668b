package persistence

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/nutristock/backend/internal/domain/shared"
)

// applyFilter applies pagination and ordering from a shared.Filter to a query.
// The order column goes through an allowlist per call site; searchColumns are
// matched case-insensitively against the filter's Search term.
func applyFilter(query *gorm.DB, filter shared.Filter, orderable map[string]bool, searchColumns ...string) *gorm.DB {
	if filter.Search != "" && len(searchColumns) > 0 {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		conditions := make([]string, 0, len(searchColumns))
		args := make([]any, 0, len(searchColumns))
		for _, col := range searchColumns {
			conditions = append(conditions, fmt.Sprintf("LOWER(%s) LIKE ?", col))
			args = append(args, pattern)
		}
		query = query.Where(strings.Join(conditions, " OR "), args...)
	}

	if filter.OrderBy != "" && orderable[filter.OrderBy] {
		dir := "asc"
		if strings.EqualFold(filter.OrderDir, "desc") {
			dir = "desc"
		}
		query = query.Order(filter.OrderBy + " " + dir)
	}

	return query.Offset(filter.Offset()).Limit(filter.Limit())
}
