package sqlite

import (
	"fmt"
	"strings"
	"time"
)

// parseTime parses a stored RFC 3339 timestamp of the named column.
func parseTime(value, column string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %s: %w", column, err)
	}
	return t, nil
}

// appendLimitOffset appends a LIMIT/OFFSET clause for positive values.
// SQLite only accepts OFFSET after LIMIT, so an offset alone is paired
// with LIMIT -1 (no limit).
func appendLimitOffset(query *strings.Builder, args *[]any, limit, offset int) {
	switch {
	case limit > 0:
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	case offset > 0:
		query.WriteString(" LIMIT -1")
	default:
		return
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}
