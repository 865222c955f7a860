package postgres

import (
	"fmt"
	"strings"
)

// whereClause assembles a WHERE predicate as an ordered list of fragments and
// bind values. Placeholders are numbered from the position of the value in
// the final argument list, so any subset of optional filters stays aligned.
type whereClause struct {
	fragments []string
	args      []any
}

// newWhereClause starts from an always-true predicate so that conditions can
// be appended uniformly with AND.
func newWhereClause() *whereClause {
	return &whereClause{fragments: []string{"1=1"}}
}

// add appends a condition. format must contain exactly one %s, which is
// replaced by the placeholder bound to value.
func (w *whereClause) add(format string, value any) *whereClause {
	w.args = append(w.args, value)
	placeholder := fmt.Sprintf("$%d", len(w.args))
	w.fragments = append(w.fragments, fmt.Sprintf(format, placeholder))
	return w
}

// containsFold appends a case-insensitive substring match on column.
// Empty values are skipped. LIKE wildcards inside value are not escaped.
func (w *whereClause) containsFold(column, value string) *whereClause {
	if value == "" {
		return w
	}
	return w.add(column+" ILIKE %s", "%"+value+"%")
}

// String renders the predicate without the WHERE keyword.
func (w *whereClause) String() string {
	return strings.Join(w.fragments, " AND ")
}

// Args returns the bind values in placeholder order.
func (w *whereClause) Args() []any {
	return w.args
}
