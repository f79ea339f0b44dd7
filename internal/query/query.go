package query

// Direction orders a sort key.
type Direction int

const (
	Ascending  Direction = 1
	Descending Direction = -1
)

// Cond is an equality predicate on a single document field.
type Cond struct {
	Field string
	Value any
}

// Filter is a conjunction of conditions. An empty filter matches every document.
type Filter []Cond

// Eq builds a one-field filter.
func Eq(field string, value any) Filter {
	return Filter{{Field: field, Value: value}}
}

// And appends a condition.
func (f Filter) And(field string, value any) Filter {
	out := make(Filter, 0, len(f)+1)
	out = append(out, f...)
	return append(out, Cond{Field: field, Value: value})
}

// Lookup returns the value required for field, if any.
func (f Filter) Lookup(field string) (any, bool) {
	for _, c := range f {
		if c.Field == field {
			return c.Value, true
		}
	}
	return nil, false
}

// SortKey orders results by one field.
type SortKey struct {
	Field     string
	Direction Direction
}

// Query is a filter with optional ordering and truncation.
type Query struct {
	Filter Filter
	Sort   []SortKey
	Limit  Option[int64]
}
