package sqlite

import (
	"fmt"
	"strings"
	"time"
)

// Timestamps are stored as RFC3339 text in UTC with second precision, so
// lexical order in SQL matches time order.

func encodeTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func decodeTime(value, column string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s %q: %w", column, value, err)
	}
	return t.UTC(), nil
}

// selectQuery assembles a SELECT statement with optional AND-ed conditions,
// ordering and pagination.
type selectQuery struct {
	b     strings.Builder
	args  []any
	conds int
}

func newSelect(columns, table string) *selectQuery {
	q := &selectQuery{}
	fmt.Fprintf(&q.b, "SELECT %s FROM %s", columns, table)
	return q
}

func (q *selectQuery) where(cond string, args ...any) {
	if q.conds == 0 {
		q.b.WriteString(" WHERE ")
	} else {
		q.b.WriteString(" AND ")
	}
	q.conds++
	q.b.WriteString(cond)
	q.args = append(q.args, args...)
}

func (q *selectQuery) orderBy(clause string) {
	q.b.WriteString(" ORDER BY " + clause)
}

// paginate adds LIMIT and OFFSET for positive values. SQLite rejects
// OFFSET without LIMIT, so an offset alone gets LIMIT -1.
func (q *selectQuery) paginate(limit, offset int) {
	switch {
	case limit > 0:
		q.b.WriteString(" LIMIT ?")
		q.args = append(q.args, limit)
	case offset > 0:
		q.b.WriteString(" LIMIT -1")
	}
	if offset > 0 {
		q.b.WriteString(" OFFSET ?")
		q.args = append(q.args, offset)
	}
}

func (q *selectQuery) String() string {
	return q.b.String()
}

// containsPattern returns a LIKE pattern matching s anywhere, for use with
// ESCAPE '\'.
func containsPattern(s string) string {
	return "%" + strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s) + "%"
}
